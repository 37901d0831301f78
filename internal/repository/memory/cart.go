package memory

import (
	"context"
	"sync"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/errors"
)

// CartRepository keeps carts in process memory, keyed by owner. It backs
// local development and tests; production deployments use the redis store.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]*domain.Cart)}
}

func (r *CartRepository) Get(_ context.Context, ownerID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[ownerID]
	if !ok {
		return nil, errors.NotFound("cart", ownerID)
	}
	cp := *cart
	cp.Items = make([]domain.CartItem, len(cart.Items))
	copy(cp.Items, cart.Items)
	return &cp, nil
}

func (r *CartRepository) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *cart
	cp.Items = make([]domain.CartItem, len(cart.Items))
	copy(cp.Items, cart.Items)
	r.carts[cart.OwnerID] = &cp
	return nil
}

func (r *CartRepository) Delete(_ context.Context, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, ownerID)
	return nil
}
