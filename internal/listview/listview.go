// Package listview implements the client-side product list pipeline:
// filter → sort → paginate, always in that order, over an in-memory
// collection loaded from the API. The view is a pure function of its inputs
// (collection, search term, sort field/direction, current page); every
// mutator recomputes the whole pipeline.
package listview

import (
	"sort"
	"strings"

	"invencost/internal/model"
)

// SortField selects the key a product list is ordered by.
type SortField string

const (
	SortByID    SortField = "id"
	SortByName  SortField = "name"
	SortByPrice SortField = "price"
	SortByStock SortField = "stock"
)

// Direction is the sort order.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// DefaultPageSize is the fixed page length of the product list.
const DefaultPageSize = 10

// View holds the transform state for one product listing.
type View struct {
	source   []model.Product
	filtered []model.Product

	term     string
	field    SortField
	dir      Direction
	page     int
	pageSize int
}

// New builds a view over products with the default state: no search term,
// sorted by id ascending, page 1, page size 10.
func New(products []model.Product) *View {
	v := &View{
		source:   products,
		field:    SortByID,
		dir:      Ascending,
		page:     1,
		pageSize: DefaultPageSize,
	}
	v.apply()
	return v
}

// Reload replaces the source collection, keeping search and sort state.
// The current page resets to 1.
func (v *View) Reload(products []model.Product) {
	v.source = products
	v.apply()
}

// SetSearchTerm applies a new search term and resets to page 1. Empty or
// whitespace-only terms yield the unfiltered collection.
func (v *View) SetSearchTerm(term string) {
	v.term = term
	v.apply()
}

// ToggleSort sorts by field. Selecting the active field flips the direction;
// selecting a new field resets to ascending. Resets to page 1.
func (v *View) ToggleSort(field SortField) {
	if v.field == field {
		if v.dir == Ascending {
			v.dir = Descending
		} else {
			v.dir = Ascending
		}
	} else {
		v.field = field
		v.dir = Ascending
	}
	v.apply()
}

// GoToPage moves to page p. Requests below 1 or beyond the last page are
// rejected (no-op), not clamped; the return value reports whether the page
// changed.
func (v *View) GoToPage(p int) bool {
	if p < 1 || p > v.TotalPages() {
		return false
	}
	v.page = p
	return true
}

// Page returns the products of the current page.
func (v *View) Page() []model.Product {
	start := (v.page - 1) * v.pageSize
	if start >= len(v.filtered) {
		return nil
	}
	end := start + v.pageSize
	if end > len(v.filtered) {
		end = len(v.filtered)
	}
	return v.filtered[start:end]
}

// Filtered returns the full collection after filter and sort, before paging.
func (v *View) Filtered() []model.Product { return v.filtered }

// TotalPages returns ceil(len(filtered) / pageSize); zero for an empty result.
func (v *View) TotalPages() int {
	return (len(v.filtered) + v.pageSize - 1) / v.pageSize
}

func (v *View) SearchTerm() string  { return v.term }
func (v *View) Field() SortField    { return v.field }
func (v *View) Direction() Direction { return v.dir }
func (v *View) CurrentPage() int    { return v.page }

// apply recomputes filter and sort from scratch and resets to page 1.
func (v *View) apply() {
	result := make([]model.Product, len(v.source))
	copy(result, v.source)

	if term := strings.TrimSpace(v.term); term != "" {
		needle := strings.ToLower(term)
		result = result[:0]
		for _, p := range v.source {
			if matches(p, needle) {
				result = append(result, p)
			}
		}
	}

	// SliceStable: equal keys keep their relative source order. The original
	// behavior left ties unspecified; a stable sort is the documented choice.
	sort.SliceStable(result, func(i, j int) bool {
		less, greater := compare(result[i], result[j], v.field)
		if v.dir == Ascending {
			return less
		}
		return greater
	})

	v.filtered = result
	v.page = 1
}

// matches does a case-insensitive substring check against name and
// description. A missing description never matches a non-empty term.
func matches(p model.Product, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	return p.Description != nil && strings.Contains(strings.ToLower(*p.Description), needle)
}

func compare(a, b model.Product, field SortField) (less, greater bool) {
	switch field {
	case SortByName:
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		return an < bn, an > bn
	case SortByPrice:
		cmp := a.Price.Cmp(b.Price)
		return cmp < 0, cmp > 0
	case SortByStock:
		return a.Stock < b.Stock, a.Stock > b.Stock
	default: // id — zero (unpersisted) sorts as 0
		return a.ID < b.ID, a.ID > b.ID
	}
}
