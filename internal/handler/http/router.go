package http

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/health"
	"github.com/utafrali/storefront/pkg/middleware"
)

// NewTokenValidator adapts the auth service's JWT validation for the auth
// middleware.
func NewTokenValidator(auth *service.AuthService) middleware.TokenValidator {
	return func(token string) (*middleware.Claims, error) {
		claims, err := auth.ValidateAccessToken(token)
		if err != nil {
			return nil, err
		}
		return &middleware.Claims{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
	}
}

// RouterConfig wires the handlers and cross-cutting middleware into the
// service router.
type RouterConfig struct {
	ServiceName   string
	Catalog       *CatalogHandler
	Cart          *CartHandler
	Auth          *AuthHandler
	Checkout      *CheckoutHandler
	Health        *health.Handler
	ValidateToken middleware.TokenValidator
	PprofCIDRs    []string
	Logger        *slog.Logger
}

// NewRouter assembles the full HTTP surface: operational endpoints at the
// root, the API under /api/v1.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics(cfg.ServiceName))
	r.Use(middleware.Tracing(cfg.ServiceName))
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())
	middleware.RegisterPprof(r, cfg.PprofCIDRs, cfg.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		// Catalog reads are safe to cache briefly.
		r.Group(func(r chi.Router) {
			r.Use(middleware.CacheControl(60))

			r.Get("/products", cfg.Catalog.List)
			r.Get("/products/featured", cfg.Catalog.Featured)
			r.Get("/products/slug/{slug}", cfg.Catalog.GetBySlug)
			r.Get("/products/{id}", cfg.Catalog.GetByID)
			r.Get("/products/{id}/related", cfg.Catalog.Related)
			r.Get("/categories", cfg.Catalog.Categories)
			r.Get("/brands", cfg.Catalog.Brands)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.Auth.Register)
			r.Post("/login", cfg.Auth.Login)
			r.Post("/refresh", cfg.Auth.Refresh)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.ValidateToken))
				r.Post("/logout", cfg.Auth.Logout)
				r.Get("/me", cfg.Auth.Me)
			})
		})

		// Cart endpoints serve both guests and signed-in users.
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(cfg.ValidateToken))

			r.Get("/cart", cfg.Cart.Get)
			r.Delete("/cart", cfg.Cart.Clear)
			r.Post("/cart/items", cfg.Cart.AddItem)
			r.Put("/cart/items/{productId}", cfg.Cart.UpdateQuantity)
			r.Delete("/cart/items/{productId}", cfg.Cart.RemoveItem)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.ValidateToken))
			r.Post("/checkout", cfg.Checkout.PlaceOrder)
		})
	})

	return r
}
