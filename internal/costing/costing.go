// Package costing computes product costs and margins from recipe lines.
// All functions are pure; validation of quantities and prices is the caller's
// responsibility (the recipe editor rejects bad input before it gets here).
package costing

import (
	"github.com/shopspring/decimal"

	"invencost/internal/model"
)

// Cost returns the total ingredient cost of a recipe: the sum of
// costPrice * quantity over all lines. An empty or nil recipe costs zero.
// Negative or zero quantities are summed as given.
func Cost(lines []model.ProductRecipe) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Ingredient.CostPrice.Mul(line.Quantity))
	}
	return total
}

// Margin returns price - cost. No clamping: a negative result signals a
// loss-making product.
func Margin(price, cost decimal.Decimal) decimal.Decimal {
	return price.Sub(cost)
}

// MarginPercent returns (margin / price) * 100, or zero when price is zero
// or negative so the caller never has to guard a division.
func MarginPercent(margin, price decimal.Decimal) decimal.Decimal {
	if !price.IsPositive() {
		return decimal.Zero
	}
	return margin.Div(price).Mul(decimal.NewFromInt(100))
}

// Apply computes CalculatedCost and ProfitMargin in place from the product's
// own recipe lines. The server runs this on every product read.
func Apply(p *model.Product) {
	cost := Cost(p.Recipes)
	margin := Margin(p.Price, cost)
	p.CalculatedCost = &cost
	p.ProfitMargin = &margin
}
