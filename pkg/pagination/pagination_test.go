package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/products", nil)

	p := FromRequest(r)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestFromRequest_CustomValues(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/products?page=3&per_page=10", nil)

	p := FromRequest(r)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)
}

func TestFromRequest_InvalidValuesIgnored(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/products?page=-1&per_page=9999", nil)

	p := FromRequest(r)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

func TestSlice_WithinBounds(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got := Slice(items, Params{Page: 2, PerPage: 2, Offset: 2})

	assert.Equal(t, []int{3, 4}, got)
}

func TestSlice_LastPartialPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got := Slice(items, Params{Page: 3, PerPage: 2, Offset: 4})

	assert.Equal(t, []int{5}, got)
}

func TestSlice_OffsetPastEnd(t *testing.T) {
	items := []int{1, 2, 3}

	got := Slice(items, Params{Page: 10, PerPage: 20, Offset: 180})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNewResult_ComputesPages(t *testing.T) {
	res := NewResult([]string{"a", "b"}, 5, Params{Page: 1, PerPage: 2})

	assert.Equal(t, 5, res.TotalCount)
	assert.Equal(t, 3, res.TotalPages)
	assert.True(t, res.HasNext)
	assert.False(t, res.HasPrev)
}

func TestNewResult_LastPage(t *testing.T) {
	res := NewResult([]string{"e"}, 5, Params{Page: 3, PerPage: 2})

	assert.False(t, res.HasNext)
	assert.True(t, res.HasPrev)
}

func TestNewResult_NilDataBecomesEmptySlice(t *testing.T) {
	res := NewResult[string](nil, 0, Params{Page: 1, PerPage: 20})

	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
	assert.Equal(t, 0, res.TotalPages)
}
