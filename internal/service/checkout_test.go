package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/repository/memory"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

func newCheckoutTestServices() (*CartService, *CheckoutService, *recordingPublisher) {
	pub := &recordingPublisher{}
	carts := memory.NewCartRepository()
	catalog := memory.NewCatalogRepository(memory.SeedProducts())
	cartSvc := NewCartService(carts, catalog, pub, testLogger())
	checkoutSvc := NewCheckoutService(carts, pub, testLogger(), DefaultTaxRatePercent)
	return cartSvc, checkoutSvc, pub
}

func TestPlaceOrder(t *testing.T) {
	cartSvc, checkoutSvc, pub := newCheckoutTestServices()
	ctx := context.Background()

	_, err := cartSvc.AddItem(ctx, "user-1", "1", 3)
	require.NoError(t, err)

	order, err := checkoutSvc.PlaceOrder(ctx, "user-1", "user@example.com")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	assert.Equal(t, "user-1", order.UserID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, int64(67497), order.Subtotal)
	assert.Equal(t, int64(4725), order.Tax)
	assert.Equal(t, int64(72222), order.Total)
	assert.Equal(t, "USD", order.Currency)

	require.Len(t, pub.placed, 1)
	assert.Equal(t, order.OrderNumber, pub.placed[0].OrderNumber)
	assert.Len(t, pub.cleared, 1)

	// The cart is cleared by checkout.
	cart, err := cartSvc.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	_, checkoutSvc, pub := newCheckoutTestServices()

	_, err := checkoutSvc.PlaceOrder(context.Background(), "user-1", "user@example.com")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Empty(t, pub.placed)
}

func TestPlaceOrderMultipleLines(t *testing.T) {
	cartSvc, checkoutSvc, _ := newCheckoutTestServices()
	ctx := context.Background()

	_, err := cartSvc.AddItem(ctx, "user-1", "2", 2)
	require.NoError(t, err)
	_, err = cartSvc.AddItem(ctx, "user-1", "7", 1)
	require.NoError(t, err)

	order, err := checkoutSvc.PlaceOrder(ctx, "user-1", "user@example.com")
	require.NoError(t, err)

	subtotal := int64(2*2499 + 2999)
	assert.Equal(t, subtotal, order.Subtotal)
	assert.Equal(t, (subtotal*7+50)/100, order.Tax)
	assert.Equal(t, subtotal+order.Tax, order.Total)
	assert.Len(t, order.Items, 2)
}
