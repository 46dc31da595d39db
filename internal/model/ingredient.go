package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the fixed boundary below which an ingredient is
// considered low on stock (strictly less than).
var LowStockThreshold = decimal.NewFromInt(10)

// Units is the fixed vocabulary accepted for Ingredient.Unit.
var Units = []string{"kg", "g", "L", "ml", "unidad", "paquete"}

// Ingredient is a raw material used in product recipes. CurrentStock counts
// raw-material units on hand and is independent of any product's stock.
type Ingredient struct {
	ID           uint            `gorm:"primaryKey" json:"id,omitempty"`
	Name         string          `gorm:"size:100;not null" json:"name"`
	CostPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"costPrice"`
	CurrentStock decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"currentStock"`
	Unit         string          `gorm:"size:20;not null" json:"unit"`
	CreatedAt    time.Time       `json:"-"`
	UpdatedAt    time.Time       `json:"-"`
}

// LowStock reports whether the ingredient is below the low-stock boundary.
func (i Ingredient) LowStock() bool {
	return i.CurrentStock.LessThan(LowStockThreshold)
}
