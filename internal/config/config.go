// Package config defines the environment-driven configuration for the
// storefront API.
package config

import (
	"fmt"
	"time"

	"github.com/utafrali/storefront/pkg/config"
)

type Config struct {
	Service  ServiceConfig
	HTTP     HTTPConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	Checkout CheckoutConfig
	Tracing  TracingConfig
}

type ServiceConfig struct {
	Name        string `env:"SERVICE_NAME" envDefault:"storefront-api"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

type HTTPConfig struct {
	Port            int           `env:"HTTP_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"15s"`
	PprofCIDRs      []string      `env:"HTTP_PPROF_ALLOWED_CIDRS" envDefault:"127.0.0.1/32"`
}

// RedisConfig controls the cart store. When disabled the service falls back
// to the in-memory cart repository.
type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED" envDefault:"false"`
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD" envDefault:""`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	CartTTL  time.Duration `env:"REDIS_CART_TTL" envDefault:"168h"`
}

// KafkaConfig controls event publishing. When disabled events are dropped.
type KafkaConfig struct {
	Enabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
}

type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	Issuer     string        `env:"JWT_ISSUER" envDefault:"storefront"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL" envDefault:"15m"`
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL" envDefault:"168h"`
}

type CheckoutConfig struct {
	TaxRatePercent int `env:"CHECKOUT_TAX_RATE_PERCENT" envDefault:"7"`
}

type TracingConfig struct {
	Enabled  bool   `env:"TRACING_ENABLED" envDefault:"false"`
	Endpoint string `env:"TRACING_ENDPOINT" envDefault:"localhost:4318"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT out of range: %d", c.HTTP.Port)
	}
	if c.Checkout.TaxRatePercent < 0 || c.Checkout.TaxRatePercent > 100 {
		return fmt.Errorf("CHECKOUT_TAX_RATE_PERCENT out of range: %d", c.Checkout.TaxRatePercent)
	}
	return nil
}

// Addr returns the host:port listen address for the HTTP server.
func (c *HTTPConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
