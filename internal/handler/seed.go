package handler

import (
	"net/http"

	"invencost/internal/service"

	"github.com/gin-gonic/gin"
)

type SeedHandler struct{ svc service.SeedService }

func NewSeedHandler(svc service.SeedService) *SeedHandler { return &SeedHandler{svc: svc} }

// Seed loads the demo catalog. Idempotent: collections that already hold
// data are left untouched.
func (h *SeedHandler) Seed(c *gin.Context) {
	if err := h.svc.Seed(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Datos inicializados correctamente"})
}
