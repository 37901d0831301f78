package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/event"
	"github.com/utafrali/storefront/internal/repository"
	"github.com/utafrali/storefront/pkg/errors"
)

// DefaultTaxRatePercent is the sales tax applied to the order subtotal.
const DefaultTaxRatePercent = 7

// CheckoutService turns a non-empty cart into an order confirmation.
type CheckoutService struct {
	carts      repository.CartRepository
	publisher  event.Publisher
	logger     *slog.Logger
	taxPercent int64
}

func NewCheckoutService(carts repository.CartRepository, publisher event.Publisher, logger *slog.Logger, taxPercent int) *CheckoutService {
	if taxPercent < 0 {
		taxPercent = DefaultTaxRatePercent
	}
	return &CheckoutService{
		carts:      carts,
		publisher:  publisher,
		logger:     logger,
		taxPercent: int64(taxPercent),
	}
}

// PlaceOrder snapshots the user's cart into an order, publishes the order
// event, and clears the cart. Checking out an empty cart is rejected.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID, email string) (*domain.Order, error) {
	cart, err := s.carts.Get(ctx, userID)
	if errors.Is(err, errors.ErrNotFound) {
		return nil, errors.InvalidInput("cart is empty")
	}
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, errors.InvalidInput("cart is empty")
	}

	lines := make([]domain.OrderLine, len(cart.Items))
	for i, item := range cart.Items {
		lines[i] = domain.OrderLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
		}
	}

	subtotal := cart.TotalPrice()
	tax := (subtotal*s.taxPercent + 50) / 100
	now := time.Now().UTC()

	order := &domain.Order{
		ID:          uuid.NewString(),
		OrderNumber: newOrderNumber(now),
		UserID:      userID,
		Email:       email,
		Items:       lines,
		Subtotal:    subtotal,
		Tax:         tax,
		Total:       subtotal + tax,
		Currency:    cart.Currency,
		PlacedAt:    now,
	}

	if err := s.carts.Delete(ctx, userID); err != nil {
		return nil, err
	}
	s.publisher.OrderPlaced(ctx, order)
	s.publisher.CartCleared(ctx, cart)

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_number", order.OrderNumber),
		slog.String("user_id", userID),
		slog.Int64("total", order.Total),
	)
	return order, nil
}

func newOrderNumber(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", t.Format("20060102"), suffix)
}
