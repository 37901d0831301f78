package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/auth"
	"github.com/utafrali/storefront/internal/event"
	"github.com/utafrali/storefront/internal/repository/memory"
	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/health"
)

type testEnv struct {
	server *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	pub := event.NoopPublisher{}

	catalog := memory.NewCatalogRepository(memory.SeedProducts())
	carts := memory.NewCartRepository()
	users, err := memory.NewUserRepositoryWithDemoUsers()
	require.NoError(t, err)

	jwtManager := auth.NewJWTManager("test-secret", "storefront", 15*time.Minute, 24*time.Hour)
	authSvc := service.NewAuthService(users, memory.NewRefreshTokenRepository(), jwtManager, log)

	router := NewRouter(RouterConfig{
		ServiceName:   "storefront-api",
		Catalog:       NewCatalogHandler(service.NewCatalogService(catalog, log), log),
		Cart:          NewCartHandler(service.NewCartService(carts, catalog, pub, log), log),
		Auth:          NewAuthHandler(authSvc, log),
		Checkout:      NewCheckoutHandler(service.NewCheckoutService(carts, pub, log, service.DefaultTaxRatePercent), log),
		Health:        health.NewHandler(),
		ValidateToken: NewTokenValidator(authSvc),
		Logger:        log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return &testEnv{server: server}
}

// do sends a JSON request and decodes the response body into out when out is
// non-nil. Extra headers come in key/value pairs.
func (e *testEnv) do(t *testing.T, method, path string, body any, out any, headers ...string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// login authenticates one of the demo accounts and returns a bearer header
// value.
func (e *testEnv) login(t *testing.T, email string) string {
	t.Helper()

	var body struct {
		Data struct {
			Tokens struct {
				AccessToken string `json:"access_token"`
			} `json:"tokens"`
		} `json:"data"`
	}
	resp := e.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": "password123",
	}, &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body.Data.Tokens.AccessToken)
	return "Bearer " + body.Data.Tokens.AccessToken
}
