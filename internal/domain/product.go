package domain

import "time"

// Product represents an immutable catalog entry. All monetary amounts are in
// cents.
type Product struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Slug            string            `json:"slug"`
	Description     string            `json:"description"`
	Price           int64             `json:"price"`
	DiscountPercent int               `json:"discount_percent,omitempty"`
	Rating          float64           `json:"rating"`
	Stock           int               `json:"stock"`
	Brand           string            `json:"brand"`
	Category        string            `json:"category"`
	Thumbnail       string            `json:"thumbnail"`
	Images          []string          `json:"images,omitempty"`
	Features        []string          `json:"features,omitempty"`
	Specifications  map[string]string `json:"specifications,omitempty"`
	Reviews         []Review          `json:"reviews,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// Review represents a customer review attached to a product.
type Review struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	UserName string    `json:"user_name"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}

// EffectivePrice returns the price the customer actually pays: the list price
// with the discount percentage applied, rounded half-up to the nearest cent.
// A discount outside (0, 100] is treated as no discount.
func (p *Product) EffectivePrice() int64 {
	if p.DiscountPercent <= 0 || p.DiscountPercent > 100 {
		return p.Price
	}
	return (p.Price*int64(100-p.DiscountPercent) + 50) / 100
}

// HasDiscount reports whether the product carries an active discount.
func (p *Product) HasDiscount() bool {
	return p.DiscountPercent > 0 && p.DiscountPercent <= 100
}
