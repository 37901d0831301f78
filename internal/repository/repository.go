// Package repository defines the storage contracts consumed by the service
// layer. Implementations live in the memory and redis subpackages.
package repository

import (
	"context"

	"github.com/utafrali/storefront/internal/domain"
)

// CatalogRepository provides read access to the product catalog.
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Brands(ctx context.Context) ([]string, error)
}

// CartRepository stores one cart per owner.
type CartRepository interface {
	Get(ctx context.Context, ownerID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, ownerID string) error
}

// UserRepository stores registered accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RefreshTokenRepository tracks issued refresh tokens so they can be revoked
// on logout and rotated on refresh.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID, token string) error
	Validate(ctx context.Context, userID, token string) (bool, error)
	Revoke(ctx context.Context, userID string) error
}
