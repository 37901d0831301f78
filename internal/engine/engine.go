// Package engine implements the catalog query pipeline: a conjunction of
// filter predicates followed by a stable sort. It is pure and operates on
// in-memory product slices.
package engine

import (
	"sort"
	"strings"

	"github.com/utafrali/storefront/internal/domain"
)

// Apply returns the products matching every active predicate in f, ordered
// according to f.Sort. The input slice is never mutated; matching products
// keep their relative catalog order unless a sort reorders them.
func Apply(products []domain.Product, f domain.FilterState) []domain.Product {
	matched := make([]domain.Product, 0, len(products))
	for i := range products {
		if Matches(&products[i], &f) {
			matched = append(matched, products[i])
		}
	}
	Sort(matched, f.Sort)
	return matched
}

// Matches reports whether p passes every active predicate in f. Predicates
// with zero values are inactive and pass everything.
func Matches(p *domain.Product, f *domain.FilterState) bool {
	return matchesQuery(p, f.Query) &&
		matchesCategory(p, f) &&
		matchesBrand(p, f) &&
		matchesPrice(p, f) &&
		matchesRating(p, f.MinRating)
}

// matchesQuery is a case-insensitive substring match over the product's name,
// description, brand and category.
func matchesQuery(p *domain.Product, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

func matchesCategory(p *domain.Product, f *domain.FilterState) bool {
	if !f.FiltersCategory() {
		return true
	}
	return p.Category == f.Category
}

func matchesBrand(p *domain.Product, f *domain.FilterState) bool {
	if len(f.Brands) == 0 {
		return true
	}
	return f.HasBrand(p.Brand)
}

// matchesPrice checks the effective (post-discount) price against the
// inclusive [MinPrice, MaxPrice] range. A negative MaxPrice means unbounded.
func matchesPrice(p *domain.Product, f *domain.FilterState) bool {
	price := p.EffectivePrice()
	if price < f.MinPrice {
		return false
	}
	if f.MaxPrice >= 0 && price > f.MaxPrice {
		return false
	}
	return true
}

func matchesRating(p *domain.Product, minRating float64) bool {
	if minRating <= 0 {
		return true
	}
	return p.Rating >= minRating
}

// Sort reorders products in place according to the named sort order. The sort
// is stable, so ties keep their existing relative order. Relevance and
// unknown orders leave the slice untouched.
func Sort(products []domain.Product, order string) {
	switch order {
	case domain.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case domain.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case domain.SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case domain.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}
