// Package memory provides in-memory repository implementations. The catalog
// is seeded at construction time and read-only afterwards; cart and user
// stores are mutable and safe for concurrent use.
package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/errors"
)

// CatalogRepository serves a fixed product catalog from memory.
type CatalogRepository struct {
	products []domain.Product
	byID     map[string]int
	bySlug   map[string]int
}

// NewCatalogRepository builds a catalog over the given products. Index order
// is preserved and becomes the catalog's natural order.
func NewCatalogRepository(products []domain.Product) *CatalogRepository {
	r := &CatalogRepository{
		products: products,
		byID:     make(map[string]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}
	for i := range products {
		r.byID[products[i].ID] = i
		r.bySlug[products[i].Slug] = i
	}
	return r
}

// List returns a copy of the full catalog in natural order.
func (r *CatalogRepository) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *CatalogRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("product", id)
	}
	p := r.products[i]
	return &p, nil
}

func (r *CatalogRepository) GetBySlug(_ context.Context, slug string) (*domain.Product, error) {
	i, ok := r.bySlug[slug]
	if !ok {
		return nil, errors.NotFound("product", slug)
	}
	p := r.products[i]
	return &p, nil
}

// Categories returns the distinct category names sorted alphabetically.
func (r *CatalogRepository) Categories(_ context.Context) ([]string, error) {
	return r.distinct(func(p *domain.Product) string { return p.Category }), nil
}

// Brands returns the distinct brand names sorted alphabetically.
func (r *CatalogRepository) Brands(_ context.Context) ([]string, error) {
	return r.distinct(func(p *domain.Product) string { return p.Brand }), nil
}

func (r *CatalogRepository) distinct(key func(*domain.Product) string) []string {
	seen := make(map[string]struct{}, len(r.products))
	out := make([]string, 0, len(r.products))
	for i := range r.products {
		k := key(&r.products[i])
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
