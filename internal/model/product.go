package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRecipe is one line of a product's bill of materials: a single
// ingredient and the quantity consumed per unit produced. An ingredient may
// appear at most once in a product's recipe.
type ProductRecipe struct {
	ID           uint            `gorm:"primaryKey" json:"id,omitempty"`
	ProductID    uint            `gorm:"index;not null" json:"-"`
	IngredientID uint            `gorm:"not null" json:"-"`
	Ingredient   Ingredient      `gorm:"foreignKey:IngredientID" json:"ingredient"`
	Quantity     decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"quantity"`
}

// Product is a sellable item. CalculatedCost and ProfitMargin are derived
// from the recipe lines on every read and never stored; nil means the server
// has not computed them for this copy of the record.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id,omitempty"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Description *string         `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	// Stock is finished units on hand — not to be confused with the
	// CurrentStock of the ingredients in the recipe.
	Stock     int             `gorm:"not null" json:"stock"`
	Recipes   []ProductRecipe `gorm:"foreignKey:ProductID" json:"recipes,omitempty"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`

	CalculatedCost *decimal.Decimal `gorm:"-" json:"calculatedCost,omitempty"`
	ProfitMargin   *decimal.Decimal `gorm:"-" json:"profitMargin,omitempty"`
}
