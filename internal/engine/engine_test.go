package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/domain"
)

func testCatalog() []domain.Product {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Product{
		{ID: "1", Name: "Premium Wireless Headphones", Description: "Noise-cancelling over-ear headphones", Price: 24999, DiscountPercent: 10, Rating: 4.5, Stock: 45, Brand: "AudioTech", Category: "Electronics", CreatedAt: base},
		{ID: "2", Name: "Slim Fit T-shirt", Description: "Soft cotton t-shirt", Price: 2499, Rating: 4.2, Stock: 120, Brand: "Urban Styles", Category: "Clothing", CreatedAt: base.AddDate(0, 0, 1)},
		{ID: "3", Name: "Smart Fitness Watch", Description: "Tracks heart rate and workouts", Price: 19999, DiscountPercent: 15, Rating: 4.7, Stock: 35, Brand: "TechFit", Category: "Electronics", CreatedAt: base.AddDate(0, 0, 2)},
		{ID: "4", Name: "Leather Crossbody Bag", Description: "Handcrafted genuine leather", Price: 8999, Rating: 4.4, Stock: 28, Brand: "LuxLeather", Category: "Accessories", CreatedAt: base.AddDate(0, 0, 3)},
		{ID: "5", Name: "Professional DSLR Camera", Description: "Full-frame sensor with 4K video", Price: 149999, DiscountPercent: 8, Rating: 4.9, Stock: 12, Brand: "FotoMaster", Category: "Electronics", CreatedAt: base.AddDate(0, 0, 4)},
		{ID: "6", Name: "Minimalist Desk Lamp", Description: "Adjustable LED desk lamp", Price: 5999, Rating: 4.3, Stock: 50, Brand: "HomeLight", Category: "Home & Office", CreatedAt: base.AddDate(0, 0, 5)},
		{ID: "7", Name: "Stainless Steel Water Bottle", Description: "Keeps drinks cold for 24 hours", Price: 2999, Rating: 4.6, Stock: 100, Brand: "HydroLife", Category: "Kitchen & Dining", CreatedAt: base.AddDate(0, 0, 6)},
		{ID: "8", Name: "Organic Skincare Set", Description: "Natural ingredients for daily care", Price: 7999, DiscountPercent: 5, Rating: 4.8, Stock: 30, Brand: "PureGlow", Category: "Beauty & Personal Care", CreatedAt: base.AddDate(0, 0, 7)},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApplyNoFilters(t *testing.T) {
	catalog := testCatalog()
	got := Apply(catalog, domain.DefaultFilterState())
	assert.Equal(t, ids(catalog), ids(got), "default state must match everything in catalog order")
}

func TestApplyQuery(t *testing.T) {
	catalog := testCatalog()

	got := Apply(catalog, domain.FilterState{Query: "watch", MaxPrice: -1})
	assert.Equal(t, []string{"3"}, ids(got))

	got = Apply(catalog, domain.FilterState{Query: "WATCH", MaxPrice: -1})
	assert.Equal(t, []string{"3"}, ids(got), "matching is case-insensitive")

	got = Apply(catalog, domain.FilterState{Query: "audiotech", MaxPrice: -1})
	assert.Equal(t, []string{"1"}, ids(got), "brand text is searchable")

	got = Apply(catalog, domain.FilterState{Query: "  leather  ", MaxPrice: -1})
	assert.Equal(t, []string{"4"}, ids(got), "query is trimmed before matching")

	got = Apply(catalog, domain.FilterState{Query: "zzz-no-match", MaxPrice: -1})
	assert.Empty(t, got)
}

func TestApplyCategory(t *testing.T) {
	catalog := testCatalog()

	got := Apply(catalog, domain.FilterState{Category: "Electronics", MaxPrice: -1})
	assert.Equal(t, []string{"1", "3", "5"}, ids(got))

	got = Apply(catalog, domain.FilterState{Category: domain.CategoryAll, MaxPrice: -1})
	assert.Len(t, got, len(catalog))
}

func TestApplyBrands(t *testing.T) {
	catalog := testCatalog()

	got := Apply(catalog, domain.FilterState{Brands: []string{"AudioTech", "HydroLife"}, MaxPrice: -1})
	assert.Equal(t, []string{"1", "7"}, ids(got))

	got = Apply(catalog, domain.FilterState{Brands: []string{}, MaxPrice: -1})
	assert.Len(t, got, len(catalog), "empty brand set passes all products")
}

func TestApplyPriceRangeUsesEffectivePrice(t *testing.T) {
	catalog := testCatalog()

	// The watch lists at $199.99 but sells at $169.99 after its discount, so
	// it falls inside a $170 cap while its list price would not.
	got := Apply(catalog, domain.FilterState{MinPrice: 0, MaxPrice: 17000})
	assert.Contains(t, ids(got), "3")
	assert.NotContains(t, ids(got), "1")
	assert.NotContains(t, ids(got), "5")
}

func TestApplyPriceAndRatingCombined(t *testing.T) {
	catalog := testCatalog()

	got := Apply(catalog, domain.FilterState{MinPrice: 0, MaxPrice: 10000, MinRating: 4.5})
	assert.Equal(t, []string{"7", "8"}, ids(got))
}

func TestApplyMinRatingBoundary(t *testing.T) {
	catalog := testCatalog()

	got := Apply(catalog, domain.FilterState{MinRating: 4.5, MaxPrice: -1})
	assert.Equal(t, []string{"1", "3", "5", "7", "8"}, ids(got), "boundary rating is inclusive")

	got = Apply(catalog, domain.FilterState{MinRating: 0, MaxPrice: -1})
	assert.Len(t, got, len(catalog), "zero rating disables the predicate")
}

func TestSortPriceAsc(t *testing.T) {
	catalog := testCatalog()
	got := Apply(catalog, domain.FilterState{MaxPrice: -1, Sort: domain.SortPriceAsc})
	require.Len(t, got, len(catalog))
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].EffectivePrice(), got[i].EffectivePrice())
	}
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "5", got[len(got)-1].ID)
}

func TestSortPriceDesc(t *testing.T) {
	catalog := testCatalog()
	got := Apply(catalog, domain.FilterState{MaxPrice: -1, Sort: domain.SortPriceDesc})
	require.Len(t, got, len(catalog))
	assert.Equal(t, "5", got[0].ID)
	assert.Equal(t, "2", got[len(got)-1].ID)
}

func TestSortRatingDesc(t *testing.T) {
	catalog := testCatalog()
	got := Apply(catalog, domain.FilterState{MaxPrice: -1, Sort: domain.SortRatingDesc})
	require.Len(t, got, len(catalog))
	assert.Equal(t, "5", got[0].ID)
	assert.Equal(t, "8", got[1].ID)
	assert.Equal(t, "2", got[len(got)-1].ID)
}

func TestSortNewest(t *testing.T) {
	catalog := testCatalog()
	got := Apply(catalog, domain.FilterState{MaxPrice: -1, Sort: domain.SortNewest})
	require.Len(t, got, len(catalog))
	assert.Equal(t, "8", got[0].ID)
	assert.Equal(t, "1", got[len(got)-1].ID)
}

func TestSortIsStable(t *testing.T) {
	base := time.Now().UTC()
	products := []domain.Product{
		{ID: "a", Price: 1000, Rating: 4.0, CreatedAt: base},
		{ID: "b", Price: 1000, Rating: 4.0, CreatedAt: base},
		{ID: "c", Price: 1000, Rating: 4.0, CreatedAt: base},
	}
	for _, order := range []string{domain.SortPriceAsc, domain.SortPriceDesc, domain.SortRatingDesc, domain.SortRelevance} {
		got := Apply(products, domain.FilterState{MaxPrice: -1, Sort: order})
		assert.Equal(t, []string{"a", "b", "c"}, ids(got), order)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	Apply(catalog, domain.FilterState{MaxPrice: -1, Sort: domain.SortPriceDesc})
	assert.Equal(t, "1", catalog[0].ID)
	assert.Equal(t, "8", catalog[len(catalog)-1].ID)
}
