// Package recipe holds the in-memory builder for a product's recipe while
// the product is being composed, before it is submitted to the API. All
// validation happens here, locally, so bad lines never reach the network.
package recipe

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"invencost/internal/costing"
	"invencost/internal/model"
)

var (
	// ErrValidation: no ingredient selected or a non-positive quantity.
	ErrValidation = errors.New("seleccione un ingrediente y una cantidad válida")
	// ErrNotFound: the ingredient id is not in the known ingredient set.
	ErrNotFound = errors.New("ingrediente no encontrado")
	// ErrDuplicate: the ingredient is already in the working recipe.
	ErrDuplicate = errors.New("este ingrediente ya está en la receta")
)

// Editor accumulates recipe lines against a known ingredient catalog.
type Editor struct {
	catalog map[uint]model.Ingredient
	lines   []model.ProductRecipe
}

// NewEditor builds an editor over the ingredient catalog the form offers.
func NewEditor(catalog []model.Ingredient) *Editor {
	byID := make(map[uint]model.Ingredient, len(catalog))
	for _, ing := range catalog {
		byID[ing.ID] = ing
	}
	return &Editor{catalog: byID}
}

// AddLine appends a line for the ingredient. It fails with ErrValidation for
// a zero ingredient id or non-positive quantity, ErrNotFound for an unknown
// id, and ErrDuplicate when the ingredient is already in the recipe.
func (e *Editor) AddLine(ingredientID uint, quantity decimal.Decimal) error {
	if ingredientID == 0 || !quantity.IsPositive() {
		return ErrValidation
	}
	ing, ok := e.catalog[ingredientID]
	if !ok {
		return ErrNotFound
	}
	for _, line := range e.lines {
		if line.Ingredient.ID == ingredientID {
			return ErrDuplicate
		}
	}
	e.lines = append(e.lines, model.ProductRecipe{
		IngredientID: ing.ID,
		Ingredient:   ing,
		Quantity:     quantity,
	})
	return nil
}

// RemoveLine removes the line at index. The index always comes from the
// currently displayed list, so an out-of-range value is a programming error,
// not a recoverable condition.
func (e *Editor) RemoveLine(index int) {
	if index < 0 || index >= len(e.lines) {
		panic(fmt.Sprintf("recipe: RemoveLine index %d out of range [0,%d)", index, len(e.lines)))
	}
	e.lines = append(e.lines[:index], e.lines[index+1:]...)
}

// Lines returns a copy of the working recipe in insertion order.
func (e *Editor) Lines() []model.ProductRecipe {
	out := make([]model.ProductRecipe, len(e.lines))
	copy(out, e.lines)
	return out
}

// TotalCost is the cost of the working recipe.
func (e *Editor) TotalCost() decimal.Decimal {
	return costing.Cost(e.lines)
}

// EstimatedMargin previews the margin the product would have at price.
func (e *Editor) EstimatedMargin(price decimal.Decimal) decimal.Decimal {
	return costing.Margin(price, e.TotalCost())
}
