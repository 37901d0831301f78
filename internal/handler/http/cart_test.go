package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartItemJSON struct {
	ProductID string `json:"product_id"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type cartJSON struct {
	Data struct {
		OwnerID    string         `json:"owner_id"`
		Items      []cartItemJSON `json:"items"`
		TotalItems int            `json:"total_items"`
		TotalPrice int64          `json:"total_price"`
	} `json:"data"`
}

func TestCartRequiresOwner(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/cart", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGuestCartFlow(t *testing.T) {
	env := newTestEnv(t)

	var cart cartJSON
	resp := env.do(t, http.MethodGet, "/api/v1/cart", nil, &cart, sessionHeader, "guest-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, cart.Data.Items)

	// Add three headphones; unit price is the discounted price.
	resp = env.do(t, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"product_id": "1", "quantity": 3}, &cart, sessionHeader, "guest-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, cart.Data.Items, 1)
	assert.Equal(t, int64(22499), cart.Data.Items[0].UnitPrice)
	assert.Equal(t, 3, cart.Data.TotalItems)
	assert.Equal(t, int64(67497), cart.Data.TotalPrice)

	// Another session sees its own empty cart.
	resp = env.do(t, http.MethodGet, "/api/v1/cart", nil, &cart, sessionHeader, "guest-2")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, cart.Data.Items)
}

func TestAddItemDefaultsQuantity(t *testing.T) {
	env := newTestEnv(t)

	var cart cartJSON
	resp := env.do(t, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"product_id": "7"}, &cart, sessionHeader, "guest-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, cart.Data.Items, 1)
	assert.Equal(t, 1, cart.Data.Items[0].Quantity)
}

func TestAddItemValidation(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"quantity": 2}, nil, sessionHeader, "guest-1")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"product_id": "no-such-product"}, nil, sessionHeader, "guest-1")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateQuantityEndpoint(t *testing.T) {
	env := newTestEnv(t)

	var cart cartJSON
	env.do(t, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"product_id": "3", "quantity": 2}, nil, sessionHeader, "guest-1")

	resp := env.do(t, http.MethodPut, "/api/v1/cart/items/3",
		map[string]any{"quantity": 5}, &cart, sessionHeader, "guest-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, cart.Data.Items[0].Quantity)

	// Quantity zero is a no-op, not an error.
	resp = env.do(t, http.MethodPut, "/api/v1/cart/items/3",
		map[string]any{"quantity": 0}, &cart, sessionHeader, "guest-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, cart.Data.Items[0].Quantity)

	// Requests above the stock ceiling clamp to it.
	resp = env.do(t, http.MethodPut, "/api/v1/cart/items/3",
		map[string]any{"quantity": 500}, &cart, sessionHeader, "guest-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 35, cart.Data.Items[0].Quantity)
}

func TestRemoveItemEndpoint(t *testing.T) {
	env := newTestEnv(t)

	var cart cartJSON
	env.do(t, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"product_id": "1"}, nil, sessionHeader, "guest-1")

	resp := env.do(t, http.MethodDelete, "/api/v1/cart/items/1", nil, &cart, sessionHeader, "guest-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, cart.Data.Items)

	// Removing an absent product succeeds and changes nothing.
	resp = env.do(t, http.MethodDelete, "/api/v1/cart/items/1", nil, &cart, sessionHeader, "guest-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, cart.Data.Items)
}

func TestClearCartEndpoint(t *testing.T) {
	env := newTestEnv(t)

	var cart cartJSON
	env.do(t, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"product_id": "1", "quantity": 2}, nil, sessionHeader, "guest-1")

	resp := env.do(t, http.MethodDelete, "/api/v1/cart", nil, &cart, sessionHeader, "guest-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, cart.Data.Items)
	assert.Equal(t, 0, cart.Data.TotalItems)
}

func TestAuthenticatedCartIsSeparateFromGuest(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.login(t, "user@example.com")

	var cart cartJSON
	resp := env.do(t, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"product_id": "7", "quantity": 2}, &cart, "Authorization", bearer)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, cart.Data.TotalItems)

	// The bearer token wins over a session header sent alongside it.
	resp = env.do(t, http.MethodGet, "/api/v1/cart", nil, &cart,
		"Authorization", bearer, sessionHeader, "guest-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, cart.Data.TotalItems)

	resp = env.do(t, http.MethodGet, "/api/v1/cart", nil, &cart, sessionHeader, "guest-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, cart.Data.Items)
}
