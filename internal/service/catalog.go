package service

import (
	"context"
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/engine"
	"github.com/utafrali/storefront/internal/repository"
)

const (
	defaultFeaturedLimit = 4
	defaultRelatedLimit  = 4
)

// CatalogService serves product reads and runs the filter pipeline.
type CatalogService struct {
	catalog repository.CatalogRepository
	logger  *slog.Logger
}

func NewCatalogService(catalog repository.CatalogRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, logger: logger}
}

// Search runs the filter pipeline over the catalog. An unknown sort order
// falls back to relevance rather than failing the request.
func (s *CatalogService) Search(ctx context.Context, filter domain.FilterState) ([]domain.Product, error) {
	if filter.Sort != "" && !domain.IsValidSort(filter.Sort) {
		s.logger.WarnContext(ctx, "unknown sort order, using relevance",
			slog.String("sort", filter.Sort),
		)
		filter.Sort = domain.SortRelevance
	}

	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	return engine.Apply(products, filter), nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.catalog.GetByID(ctx, id)
}

func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.catalog.GetBySlug(ctx, slug)
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.catalog.Categories(ctx)
}

func (s *CatalogService) Brands(ctx context.Context) ([]string, error) {
	return s.catalog.Brands(ctx)
}

// Featured returns products that are either discounted or rated 4.5 and
// above, in catalog order, capped at limit.
func (s *CatalogService) Featured(ctx context.Context, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}

	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, limit)
	for i := range products {
		if !products[i].HasDiscount() && products[i].Rating < 4.5 {
			continue
		}
		out = append(out, products[i])
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// Related returns other products in the same category as the given product,
// in catalog order, capped at limit.
func (s *CatalogService) Related(ctx context.Context, productID string, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}

	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, limit)
	for i := range products {
		if products[i].ID == product.ID || products[i].Category != product.Category {
			continue
		}
		out = append(out, products[i])
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
