package domain

import (
	"strings"
	"time"
)

// Cart is a customer's mutable basket. Exactly one exists per customer; it
// is created on first use and reused across sessions. Checkout drains its
// lines but never deletes the cart row itself.
type Cart struct {
	id        string
	customer  string
	createdAt time.Time
}

// NewCart creates a cart for a customer.
func NewCart(id, customerID string, now time.Time) (*Cart, error) {
	if customerID == "" {
		return nil, ErrAuthRequired
	}
	return &Cart{
		id:        id,
		customer:  customerID,
		createdAt: now,
	}, nil
}

func (c *Cart) ID() string           { return c.id }
func (c *Cart) CustomerID() string   { return c.customer }
func (c *Cart) CreatedAt() time.Time { return c.createdAt }

// CartItem is one basket line. At most one line exists per
// (cart, product, size, color) combination; adding the same variant again
// merges into the existing line's quantity.
type CartItem struct {
	cartID    string
	productID string
	size      string
	color     string
	quantity  int64
}

// NewCartItem validates and normalizes a basket line. Absent size/color
// normalize to empty strings so the variant key is stable.
func NewCartItem(cartID, productID string, quantity int64, size, color string) (*CartItem, error) {
	if productID == "" {
		return nil, ErrProductNotFound
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &CartItem{
		cartID:    cartID,
		productID: productID,
		size:      strings.TrimSpace(size),
		color:     strings.TrimSpace(color),
		quantity:  quantity,
	}, nil
}

func (ci *CartItem) CartID() string    { return ci.cartID }
func (ci *CartItem) ProductID() string { return ci.productID }
func (ci *CartItem) Size() string      { return ci.size }
func (ci *CartItem) Color() string     { return ci.color }
func (ci *CartItem) Quantity() int64   { return ci.quantity }

// SameVariant reports whether another selection targets this line's
// (product, size, color) combination.
func (ci *CartItem) SameVariant(productID, size, color string) bool {
	return ci.productID == productID &&
		ci.size == strings.TrimSpace(size) &&
		ci.color == strings.TrimSpace(color)
}

// Merge increases the line quantity by qty. Repeated adds of the same
// variant go through here instead of inserting a duplicate row.
func (ci *CartItem) Merge(qty int64) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	ci.quantity += qty
	return nil
}
