package infra

// pdf.go — recipe cost sheet generation using go-pdf/fpdf.
// Produces an A4 sheet with:
//   - Product name and description header
//   - Recipe table (ingredient, quantity, unit, unit cost, line cost)
//   - Total calculated cost, sale price and profit margin
//
// The output file is saved to storagePath/receta_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"invencost/internal/costing"
	"invencost/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateRecipePDF writes the cost sheet for a product and returns the
// absolute path to the generated file. The product must carry its recipe
// lines with ingredients preloaded.
func GenerateRecipePDF(p *model.Product, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("receta_%d.pdf", p.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, "Ficha de Costes", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 8, p.Name, "", 1, "L", false, 0, "")
	if p.Description != nil && *p.Description != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(contentW, 5, *p.Description, "", "L", false)
	}
	pdf.Ln(3)

	// ── Recipe table ─────────────────────────────────────────────────────────
	col1 := contentW * 0.38 // ingredient
	col2 := contentW * 0.15 // quantity
	col3 := contentW * 0.12 // unit
	col4 := contentW * 0.17 // unit cost
	col5 := contentW * 0.18 // line cost

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 7, "Ingrediente", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Cantidad", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 7, "Unidad", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col4, 7, "Coste unit.", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 7, "Coste línea", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range p.Recipes {
		lineCost := line.Ingredient.CostPrice.Mul(line.Quantity)
		pdf.CellFormat(col1, 6, line.Ingredient.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, line.Quantity.String(), "", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 6, line.Ingredient.Unit, "", 0, "C", false, 0, "")
		pdf.CellFormat(col4, 6, line.Ingredient.CostPrice.StringFixed(2)+" €", "", 0, "R", false, 0, "")
		pdf.CellFormat(col5, 6, lineCost.StringFixed(2)+" €", "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	cost := costing.Cost(p.Recipes)
	margin := costing.Margin(p.Price, cost)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1+col2+col3+col4, 7, "Coste total:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col5, 7, cost.StringFixed(2)+" €", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(col1+col2+col3+col4, 6, "Precio de venta:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col5, 6, p.Price.StringFixed(2)+" €", "", 1, "R", false, 0, "")

	pdf.CellFormat(col1+col2+col3+col4, 6, "Margen:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col5, 6, margin.StringFixed(2)+" €", "", 1, "R", false, 0, "")
	pdf.CellFormat(col1+col2+col3+col4, 6, "Margen %:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col5, 6, costing.MarginPercent(margin, p.Price).StringFixed(1)+" %", "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
