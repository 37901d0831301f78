package domain

import "time"

// CartItem is a line in the cart. UnitPrice is the effective price in cents at
// the time the item was added; StockCeiling caps Quantity at the product's
// available stock.
type CartItem struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	UnitPrice    int64  `json:"unit_price"`
	ImageURL     string `json:"image_url,omitempty"`
	StockCeiling int    `json:"stock_ceiling"`
	Quantity     int    `json:"quantity"`
}

// Subtotal returns UnitPrice * Quantity in cents.
func (i *CartItem) Subtotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// Cart is the mutable shopping cart for a single owner, identified either by
// an authenticated user ID or a guest session ID.
type Cart struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	Items     []CartItem `json:"items"`
	Currency  string     `json:"currency"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart returns an empty cart for the given owner.
func NewCart(id, ownerID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		ID:        id,
		OwnerID:   ownerID,
		Items:     []CartItem{},
		Currency:  "USD",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TotalItems returns the sum of all line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for i := range c.Items {
		total += c.Items[i].Quantity
	}
	return total
}

// TotalPrice returns the sum of all line subtotals in cents.
func (c *Cart) TotalPrice() int64 {
	var total int64
	for i := range c.Items {
		total += c.Items[i].Subtotal()
	}
	return total
}

// FindItemIndex returns the index of the line holding productID, or -1 when
// the product is not in the cart.
func (c *Cart) FindItemIndex(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
