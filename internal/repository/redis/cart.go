// Package redis implements the cart repository over a Redis instance. Each
// cart is stored as a JSON snapshot under a single key with a sliding TTL, so
// abandoned carts expire on their own.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/errors"
)

const keyPrefix = "cart:"

// DefaultTTL is how long an untouched cart survives before Redis drops it.
const DefaultTTL = 7 * 24 * time.Hour

// CartRepository persists carts in Redis.
type CartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartRepository wraps client. A non-positive ttl falls back to DefaultTTL.
func NewCartRepository(client *redis.Client, ttl time.Duration) *CartRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CartRepository{client: client, ttl: ttl}
}

func cartKey(ownerID string) string {
	return keyPrefix + ownerID
}

func (r *CartRepository) Get(ctx context.Context, ownerID string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(ownerID)).Bytes()
	if err == redis.Nil {
		return nil, errors.NotFound("cart", ownerID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "get cart from redis")
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("unmarshal cart %s", ownerID))
	}
	return &cart, nil
}

// Save writes the cart snapshot and resets its TTL.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "marshal cart")
	}
	if err := r.client.Set(ctx, cartKey(cart.OwnerID), data, r.ttl).Err(); err != nil {
		return errors.Wrap(err, "save cart to redis")
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, ownerID string) error {
	if err := r.client.Del(ctx, cartKey(ownerID)).Err(); err != nil {
		return errors.Wrap(err, "delete cart from redis")
	}
	return nil
}
