package listview

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invencost/internal/model"
)

func product(id uint, name string, price string, stock int) model.Product {
	return model.Product{ID: id, Name: name, Price: decimal.RequireFromString(price), Stock: stock}
}

func withDescription(p model.Product, desc string) model.Product {
	p.Description = &desc
	return p
}

func names(ps []model.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestFilterMatchesNameAndDescription(t *testing.T) {
	v := New([]model.Product{
		product(1, "Tortilla de Patatas", "8.50", 10),
		withDescription(product(2, "Gazpacho", "6.50", 15), "Sopa fría con tomate"),
		product(3, "Paella", "12.00", 8),
	})

	v.SetSearchTerm("TOMATE")
	assert.Equal(t, []string{"Gazpacho"}, names(v.Filtered()))

	v.SetSearchTerm("tortilla")
	assert.Equal(t, []string{"Tortilla de Patatas"}, names(v.Filtered()))
}

func TestFilterEmptyTermYieldsAll(t *testing.T) {
	v := New([]model.Product{product(1, "A", "1", 1), product(2, "B", "1", 1)})
	v.SetSearchTerm("   ")
	assert.Len(t, v.Filtered(), 2)
}

func TestFilterMissingDescriptionNeverMatches(t *testing.T) {
	v := New([]model.Product{product(1, "Pan", "1.20", 5)})
	v.SetSearchTerm("tostado")
	assert.Empty(t, v.Filtered())
}

func TestFilterIsIdempotent(t *testing.T) {
	v := New([]model.Product{
		product(1, "Croquetas", "9.50", 12),
		product(2, "Paella", "12.00", 8),
	})
	v.SetSearchTerm("paella")
	first := names(v.Filtered())
	v.SetSearchTerm("paella")
	assert.Equal(t, first, names(v.Filtered()))
}

func TestSortToggleAndReset(t *testing.T) {
	v := New([]model.Product{
		product(1, "b", "2.00", 0),
		product(2, "a", "1.00", 0),
		product(3, "c", "3.00", 0),
	})

	v.ToggleSort(SortByPrice)
	assert.Equal(t, Ascending, v.Direction())
	assert.Equal(t, []string{"a", "b", "c"}, names(v.Filtered()))

	// Same field flips direction.
	v.ToggleSort(SortByPrice)
	assert.Equal(t, Descending, v.Direction())
	assert.Equal(t, []string{"c", "b", "a"}, names(v.Filtered()))

	// New field resets to ascending.
	v.ToggleSort(SortByName)
	assert.Equal(t, Ascending, v.Direction())
	assert.Equal(t, []string{"a", "b", "c"}, names(v.Filtered()))
}

func TestSortRoundTripOnDistinctKeys(t *testing.T) {
	src := []model.Product{
		product(1, "x", "5.00", 0),
		product(2, "y", "3.00", 0),
		product(3, "z", "9.00", 0),
	}
	v := New(src)
	v.ToggleSort(SortByPrice) // asc
	v.ToggleSort(SortByPrice) // desc
	desc := names(v.Filtered())
	// Descending is the exact reverse for distinct prices.
	assert.Equal(t, []string{"z", "x", "y"}, desc)
}

func TestSortNameCaseInsensitive(t *testing.T) {
	v := New([]model.Product{
		product(1, "banana", "1", 0),
		product(2, "Almendra", "1", 0),
	})
	v.ToggleSort(SortByName)
	assert.Equal(t, []string{"Almendra", "banana"}, names(v.Filtered()))
}

func TestSortStableOnTies(t *testing.T) {
	v := New([]model.Product{
		product(1, "first", "5.00", 0),
		product(2, "second", "5.00", 0),
		product(3, "third", "5.00", 0),
	})
	v.ToggleSort(SortByPrice)
	assert.Equal(t, []string{"first", "second", "third"}, names(v.Filtered()))
}

func TestPagination(t *testing.T) {
	src := make([]model.Product, 23)
	for i := range src {
		src[i] = product(uint(i+1), fmt.Sprintf("p%02d", i+1), "1.00", 1)
	}
	v := New(src)

	require.Equal(t, 3, v.TotalPages())
	assert.Len(t, v.Page(), 10)

	require.True(t, v.GoToPage(3))
	assert.Len(t, v.Page(), 3)

	// Out-of-range requests are rejected, not clamped.
	assert.False(t, v.GoToPage(4))
	assert.False(t, v.GoToPage(0))
	assert.Equal(t, 3, v.CurrentPage())
}

func TestPageResetsOnFilterAndSortChange(t *testing.T) {
	src := make([]model.Product, 25)
	for i := range src {
		src[i] = product(uint(i+1), fmt.Sprintf("p%02d", i+1), "1.00", i)
	}
	v := New(src)

	require.True(t, v.GoToPage(2))
	v.SetSearchTerm("p")
	assert.Equal(t, 1, v.CurrentPage())

	require.True(t, v.GoToPage(3))
	v.ToggleSort(SortByStock)
	assert.Equal(t, 1, v.CurrentPage())
}

func TestRecomputationIsDeterministic(t *testing.T) {
	src := []model.Product{
		product(3, "c", "1.00", 2),
		product(1, "a", "3.00", 1),
		product(2, "b", "2.00", 3),
	}
	a := New(src)
	b := New(src)
	a.SetSearchTerm("")
	a.ToggleSort(SortByPrice)
	b.SetSearchTerm("")
	b.ToggleSort(SortByPrice)
	assert.Equal(t, names(a.Page()), names(b.Page()))
}
