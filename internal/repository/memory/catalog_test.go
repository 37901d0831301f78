package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/utafrali/storefront/pkg/errors"
)

func TestCatalogList(t *testing.T) {
	repo := NewCatalogRepository(SeedProducts())

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 8)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "8", products[7].ID)
}

func TestCatalogGetByID(t *testing.T) {
	repo := NewCatalogRepository(SeedProducts())

	p, err := repo.GetByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Smart Fitness Watch", p.Name)
	assert.Equal(t, int64(16999), p.EffectivePrice())

	_, err = repo.GetByID(context.Background(), "999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogGetBySlug(t *testing.T) {
	repo := NewCatalogRepository(SeedProducts())

	p, err := repo.GetBySlug(context.Background(), "premium-wireless-headphones")
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)

	_, err = repo.GetBySlug(context.Background(), "no-such-product")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogCategoriesAndBrands(t *testing.T) {
	repo := NewCatalogRepository(SeedProducts())

	categories, err := repo.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Accessories",
		"Beauty & Personal Care",
		"Clothing",
		"Electronics",
		"Home & Office",
		"Kitchen & Dining",
	}, categories)

	brands, err := repo.Brands(context.Background())
	require.NoError(t, err)
	assert.Len(t, brands, 8)
	assert.Contains(t, brands, "AudioTech")
	assert.Contains(t, brands, "PureGlow")
}

func TestCatalogListReturnsCopy(t *testing.T) {
	repo := NewCatalogRepository(SeedProducts())

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	products[0].Name = "mutated"

	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Premium Wireless Headphones", again[0].Name)
}
