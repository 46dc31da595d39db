package dto

import "github.com/shopspring/decimal"

// CreateIngredientRequest validates a new ingredient. Unit is restricted to
// the vocabulary the forms offer.
type CreateIngredientRequest struct {
	Name         string          `json:"name"         validate:"required,max=100"`
	CostPrice    decimal.Decimal `json:"costPrice"    validate:"required,gt=0"`
	CurrentStock decimal.Decimal `json:"currentStock" validate:"min=0"`
	Unit         string          `json:"unit"         validate:"required,oneof=kg g L ml unidad paquete"`
}

// UpdateIngredientRequest mirrors the create payload; all fields are sent.
type UpdateIngredientRequest struct {
	Name         string          `json:"name"         validate:"required,max=100"`
	CostPrice    decimal.Decimal `json:"costPrice"    validate:"required,gt=0"`
	CurrentStock decimal.Decimal `json:"currentStock" validate:"min=0"`
	Unit         string          `json:"unit"         validate:"required,oneof=kg g L ml unidad paquete"`
}
