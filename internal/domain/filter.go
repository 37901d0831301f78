package domain

// CategoryAll is the sentinel category meaning "do not filter by category".
const CategoryAll = "All"

// Sort orders accepted by the catalog query engine.
const (
	SortRelevance  = "relevance"
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortRatingDesc = "rating_desc"
	SortNewest     = "newest"
)

// IsValidSort reports whether s names a supported sort order.
func IsValidSort(s string) bool {
	switch s {
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortRatingDesc, SortNewest:
		return true
	}
	return false
}

// FilterState captures the full set of catalog filters. Zero values disable
// the corresponding predicate, except MaxPrice where a negative value means
// "no upper bound".
type FilterState struct {
	Query     string
	Category  string
	Brands    []string
	MinPrice  int64
	MaxPrice  int64
	MinRating float64
	Sort      string
}

// DefaultFilterState returns the state that matches every product.
func DefaultFilterState() FilterState {
	return FilterState{
		Category: CategoryAll,
		MaxPrice: -1,
		Sort:     SortRelevance,
	}
}

// FiltersCategory reports whether the category predicate is active.
func (f *FilterState) FiltersCategory() bool {
	return f.Category != "" && f.Category != CategoryAll
}

// HasBrand reports whether brand is in the selected brand set.
func (f *FilterState) HasBrand(brand string) bool {
	for _, b := range f.Brands {
		if b == brand {
			return true
		}
	}
	return false
}
