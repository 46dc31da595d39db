// Package dashboard aggregates summary statistics over the product and
// ingredient collections. Compute is pure and is re-run whenever either
// collection changes; the server exposes the result on /api/dashboard and
// the CLI replicates it locally.
package dashboard

import (
	"github.com/shopspring/decimal"

	"invencost/internal/model"
)

// RecentLimit is how many recent products the dashboard shows.
const RecentLimit = 5

// Metrics is the dashboard summary.
type Metrics struct {
	TotalProducts          int             `json:"totalProducts"`
	TotalValue             decimal.Decimal `json:"totalValue"`
	AverageMargin          decimal.Decimal `json:"averageMargin"`
	NegativeMarginProducts int             `json:"negativeMarginProducts"`
	TotalIngredients       int             `json:"totalIngredients"`
	LowStockIngredients    int             `json:"lowStockIngredients"`
}

// Summary bundles the metrics with the product lists the dashboard renders.
type Summary struct {
	Metrics        Metrics         `json:"metrics"`
	NegativeMargin []model.Product `json:"negativeMarginProducts"`
	// Recent holds the last products in arrival order, most recent first.
	Recent []model.Product `json:"recentProducts"`
}

// Compute derives the summary from the two collections. Arrival order of
// products is the source of truth for recency; average margin only counts
// products whose margin is defined and never divides by zero.
func Compute(products []model.Product, ingredients []model.Ingredient) Summary {
	m := Metrics{
		TotalProducts:    len(products),
		TotalValue:       decimal.Zero,
		AverageMargin:    decimal.Zero,
		TotalIngredients: len(ingredients),
	}

	var negative []model.Product
	marginSum := decimal.Zero
	withMargin := 0

	for _, p := range products {
		m.TotalValue = m.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		if p.ProfitMargin == nil {
			continue
		}
		marginSum = marginSum.Add(*p.ProfitMargin)
		withMargin++
		if p.ProfitMargin.IsNegative() {
			negative = append(negative, p)
		}
	}
	if withMargin > 0 {
		m.AverageMargin = marginSum.Div(decimal.NewFromInt(int64(withMargin)))
	}
	m.NegativeMarginProducts = len(negative)

	for _, i := range ingredients {
		if i.LowStock() {
			m.LowStockIngredients++
		}
	}

	return Summary{
		Metrics:        m,
		NegativeMargin: negative,
		Recent:         recent(products),
	}
}

// recent returns the trailing RecentLimit products reversed.
func recent(products []model.Product) []model.Product {
	start := len(products) - RecentLimit
	if start < 0 {
		start = 0
	}
	tail := products[start:]
	out := make([]model.Product, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		out = append(out, tail[i])
	}
	return out
}
