// Package http exposes the storefront REST API.
package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/httputil"
	"github.com/utafrali/storefront/pkg/pagination"
)

// CatalogHandler serves product listing and detail endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

func NewCatalogHandler(catalog *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// List handles GET /products. Filters arrive as query parameters; prices are
// in cents.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r)

	products, err := h.catalog.Search(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	params := pagination.FromRequest(r)
	page := pagination.Slice(products, params)
	httputil.WriteJSON(w, http.StatusOK, pagination.NewResult(page, len(products), params))
}

// GetByID handles GET /products/{id}.
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// GetBySlug handles GET /products/slug/{slug}.
func (h *CatalogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetProductBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// Related handles GET /products/{id}/related.
func (h *CatalogHandler) Related(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Related(r.Context(), chi.URLParam(r, "id"), intQuery(r, "limit"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: products})
}

// Featured handles GET /products/featured.
func (h *CatalogHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Featured(r.Context(), intQuery(r, "limit"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: products})
}

// Categories handles GET /categories.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: categories})
}

// Brands handles GET /brands.
func (h *CatalogHandler) Brands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.catalog.Brands(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: brands})
}

func parseFilter(r *http.Request) domain.FilterState {
	q := r.URL.Query()
	filter := domain.DefaultFilterState()

	filter.Query = q.Get("q")
	if category := q.Get("category"); category != "" {
		filter.Category = category
	}
	for _, raw := range q["brand"] {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				filter.Brands = append(filter.Brands, b)
			}
		}
	}
	if v, err := strconv.ParseInt(q.Get("min_price"), 10, 64); err == nil && v >= 0 {
		filter.MinPrice = v
	}
	if v, err := strconv.ParseInt(q.Get("max_price"), 10, 64); err == nil && v >= 0 {
		filter.MaxPrice = v
	}
	if v, err := strconv.ParseFloat(q.Get("min_rating"), 64); err == nil && v > 0 {
		filter.MinRating = v
	}
	if sort := q.Get("sort"); sort != "" {
		filter.Sort = sort
	}
	return filter
}

func intQuery(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
