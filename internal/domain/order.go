package domain

import "time"

// OrderLine is a snapshot of a cart line at checkout time.
type OrderLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

// Order is the confirmation produced by checkout. Amounts are in cents; Tax
// is computed on the subtotal at the configured rate.
type Order struct {
	ID          string      `json:"id"`
	OrderNumber string      `json:"order_number"`
	UserID      string      `json:"user_id"`
	Email       string      `json:"email"`
	Items       []OrderLine `json:"items"`
	Subtotal    int64       `json:"subtotal"`
	Tax         int64       `json:"tax"`
	Total       int64       `json:"total"`
	Currency    string      `json:"currency"`
	PlacedAt    time.Time   `json:"placed_at"`
}
