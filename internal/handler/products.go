package handler

import (
	"net/http"

	"invencost/internal/dto"
	"invencost/internal/infra"
	"invencost/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductsHandler struct {
	svc            service.ProductService
	pdfStoragePath string
}

func NewProductsHandler(svc service.ProductService, pdfStoragePath string) *ProductsHandler {
	return &ProductsHandler{svc: svc, pdfStoragePath: pdfStoragePath}
}

// List godoc
// @Summary Lista de productos con coste y margen calculados
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Router /api/products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecipePDF streams the cost sheet for a product.
func (h *ProductsHandler) RecipePDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	path, err := infra.GenerateRecipePDF(p, h.pdfStoragePath)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.FileAttachment(path, "receta.pdf")
}
