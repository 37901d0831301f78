// Package app wires configuration, storage, messaging and the HTTP server
// into a runnable storefront service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/utafrali/storefront/internal/auth"
	"github.com/utafrali/storefront/internal/config"
	"github.com/utafrali/storefront/internal/event"
	httphandler "github.com/utafrali/storefront/internal/handler/http"
	"github.com/utafrali/storefront/internal/repository"
	"github.com/utafrali/storefront/internal/repository/memory"
	redisrepo "github.com/utafrali/storefront/internal/repository/redis"
	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/health"
	"github.com/utafrali/storefront/pkg/kafka"
	"github.com/utafrali/storefront/pkg/tracing"
)

// App owns the service's long-lived resources.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	server      *http.Server
	redisClient *goredis.Client
	producer    *kafka.Producer
	shutdownTr  func(context.Context) error
}

// New builds the full dependency graph. Redis and Kafka are optional: when
// disabled (or unreachable at startup) the app falls back to in-memory
// storage and no-op event publishing.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: logger}

	shutdownTr, err := tracing.InitTracer(context.Background(), tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		OTLPEndpoint: cfg.Tracing.Endpoint,
		ServiceName:  cfg.Service.Name,
		Environment:  cfg.Service.Environment,
		SampleRate:   1.0,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	a.shutdownTr = shutdownTr

	healthHandler := health.NewHandler()

	carts := a.buildCartRepository(healthHandler)
	publisher := a.buildPublisher(healthHandler)

	catalog := memory.NewCatalogRepository(memory.SeedProducts())
	users, err := memory.NewUserRepositoryWithDemoUsers()
	if err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	authSvc := service.NewAuthService(users, memory.NewRefreshTokenRepository(), jwtManager, logger)

	router := httphandler.NewRouter(httphandler.RouterConfig{
		ServiceName:   cfg.Service.Name,
		Catalog:       httphandler.NewCatalogHandler(service.NewCatalogService(catalog, logger), logger),
		Cart:          httphandler.NewCartHandler(service.NewCartService(carts, catalog, publisher, logger), logger),
		Auth:          httphandler.NewAuthHandler(authSvc, logger),
		Checkout:      httphandler.NewCheckoutHandler(service.NewCheckoutService(carts, publisher, logger, cfg.Checkout.TaxRatePercent), logger),
		Health:        healthHandler,
		ValidateToken: httphandler.NewTokenValidator(authSvc),
		PprofCIDRs:    cfg.HTTP.PprofCIDRs,
		Logger:        logger,
	})

	a.server = &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}
	return a, nil
}

func (a *App) buildCartRepository(h *health.Handler) repository.CartRepository {
	if !a.cfg.Redis.Enabled {
		a.logger.Info("redis disabled, using in-memory cart store")
		return memory.NewCartRepository()
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		a.logger.Warn("redis unreachable, falling back to in-memory cart store",
			slog.String("addr", a.cfg.Redis.Addr),
			slog.String("error", err.Error()),
		)
		_ = client.Close()
		return memory.NewCartRepository()
	}

	a.redisClient = client
	h.Register("redis", func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	a.logger.Info("connected to redis", slog.String("addr", a.cfg.Redis.Addr))
	return redisrepo.NewCartRepository(client, a.cfg.Redis.CartTTL)
}

func (a *App) buildPublisher(h *health.Handler) event.Publisher {
	if !a.cfg.Kafka.Enabled {
		a.logger.Info("kafka disabled, events will be dropped")
		return event.NoopPublisher{}
	}

	producer := kafka.NewProducer(kafka.DefaultProducerConfig(a.cfg.Kafka.Brokers), a.logger)
	a.producer = producer
	h.Register("kafka", producer.Ping)
	return event.NewProducer(producer, a.logger)
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// everything down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http shutdown failed", slog.String("error", err.Error()))
	}
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close failed", slog.String("error", err.Error()))
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Error("redis close failed", slog.String("error", err.Error()))
		}
	}
	if a.shutdownTr != nil {
		if err := a.shutdownTr(shutdownCtx); err != nil {
			a.logger.Error("tracer shutdown failed", slog.String("error", err.Error()))
		}
	}
	return nil
}
