// Package service holds the storefront business logic, between the HTTP
// handlers and the repositories.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/event"
	"github.com/utafrali/storefront/internal/repository"
	"github.com/utafrali/storefront/pkg/errors"
)

// CartService implements the cart lifecycle: add, update quantity, remove,
// clear. Quantities are always clamped to the product's stock ceiling, and
// requests that change nothing are silent no-ops.
type CartService struct {
	carts     repository.CartRepository
	catalog   repository.CatalogRepository
	publisher event.Publisher
	logger    *slog.Logger
}

func NewCartService(carts repository.CartRepository, catalog repository.CatalogRepository, publisher event.Publisher, logger *slog.Logger) *CartService {
	return &CartService{
		carts:     carts,
		catalog:   catalog,
		publisher: publisher,
		logger:    logger,
	}
}

// GetCart returns the owner's cart, or a fresh empty cart when none is
// stored. The empty cart is not persisted until it is first mutated.
func (s *CartService) GetCart(ctx context.Context, ownerID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, ownerID)
	if errors.Is(err, errors.ErrNotFound) {
		return domain.NewCart(uuid.NewString(), ownerID), nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem puts quantity units of the product into the cart, merging into an
// existing line when the product is already present. The resulting quantity
// is clamped to available stock.
func (s *CartService) AddItem(ctx context.Context, ownerID, productID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, errors.InvalidInput("quantity must be at least 1")
	}

	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Stock <= 0 {
		return nil, errors.Conflict("product is out of stock")
	}

	cart, err := s.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if i := cart.FindItemIndex(productID); i >= 0 {
		cart.Items[i].Quantity = s.clamp(ctx, cart.Items[i].Quantity+quantity, &cart.Items[i])
	} else {
		item := domain.CartItem{
			ProductID:    product.ID,
			Name:         product.Name,
			UnitPrice:    product.EffectivePrice(),
			ImageURL:     product.Thumbnail,
			StockCeiling: product.Stock,
		}
		item.Quantity = s.clamp(ctx, quantity, &item)
		cart.Items = append(cart.Items, item)
	}

	return s.persist(ctx, cart)
}

// UpdateQuantity sets the line quantity for productID. Quantities below one,
// unknown products, and values equal to the current quantity all leave the
// cart untouched.
func (s *CartService) UpdateQuantity(ctx context.Context, ownerID, productID string, quantity int) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	i := cart.FindItemIndex(productID)
	if i < 0 || quantity < 1 {
		return cart, nil
	}

	next := s.clamp(ctx, quantity, &cart.Items[i])
	if next == cart.Items[i].Quantity {
		return cart, nil
	}
	cart.Items[i].Quantity = next

	return s.persist(ctx, cart)
}

// RemoveItem drops the product's line from the cart. Removing a product that
// is not in the cart is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, ownerID, productID string) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	i := cart.FindItemIndex(productID)
	if i < 0 {
		return cart, nil
	}
	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

	return s.persist(ctx, cart)
}

// ClearCart deletes the owner's cart and returns a fresh empty one.
func (s *CartService) ClearCart(ctx context.Context, ownerID string) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.carts.Delete(ctx, ownerID); err != nil {
		return nil, err
	}
	s.publisher.CartCleared(ctx, cart)

	return domain.NewCart(uuid.NewString(), ownerID), nil
}

func (s *CartService) persist(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	cart.UpdatedAt = time.Now().UTC()
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	s.publisher.CartUpdated(ctx, cart)
	return cart, nil
}

// clamp caps the requested quantity at the item's stock ceiling, logging a
// warning when the cap kicks in.
func (s *CartService) clamp(ctx context.Context, quantity int, item *domain.CartItem) int {
	if item.StockCeiling > 0 && quantity > item.StockCeiling {
		s.logger.WarnContext(ctx, "quantity clamped to stock ceiling",
			slog.String("product_id", item.ProductID),
			slog.Int("requested", quantity),
			slog.Int("ceiling", item.StockCeiling),
		)
		return item.StockCeiling
	}
	return quantity
}
