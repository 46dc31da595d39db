package dto

import "github.com/shopspring/decimal"

// RecipeLineRequest is one ingredient line inside a product creation payload.
type RecipeLineRequest struct {
	IngredientID uint            `json:"ingredientId" validate:"required,min=1"`
	Quantity     decimal.Decimal `json:"quantity"     validate:"required,gt=0"`
}

// CreateProductRequest validates a new product with its recipe.
type CreateProductRequest struct {
	Name        string              `json:"name"        validate:"required,max=100"`
	Description *string             `json:"description" validate:"omitempty,max=500"`
	Price       decimal.Decimal     `json:"price"       validate:"required,gt=0"`
	Stock       int                 `json:"stock"       validate:"min=0"`
	Recipe      []RecipeLineRequest `json:"recipe"      validate:"omitempty,dive"`
}
