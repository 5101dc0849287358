package repo

import (
	"time"

	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/models/m_cart"
	"github.com/murkotick/order-processing-service/internal/models/m_cart_item"
)

// CartRepo is the Spanner implementation of the cart write-side
// repository. It returns *spanner.Mutation objects but never applies them.
type CartRepo struct{}

func NewCartRepo() *CartRepo {
	return &CartRepo{}
}

// InsertMut builds the insert for a new cart row. The primary key is a
// generated id; the unique index on customer_id is the safety net against
// two concurrent first-adds creating two carts.
func (r *CartRepo) InsertMut(c *domain.Cart) *spanner.Mutation {
	if c == nil {
		return nil
	}
	return m_cart.InsertMutation(c.ID(), c.CustomerID(), c.CreatedAt().UTC())
}

// InsertItemMut builds the insert for a new basket line. The composite
// primary key (cart, product, size, color) rejects a duplicate variant
// that slipped past the read-then-merge step.
func (r *CartRepo) InsertItemMut(item *domain.CartItem, now time.Time) *spanner.Mutation {
	if item == nil {
		return nil
	}
	return m_cart_item.InsertMutation(item.CartID(), item.ProductID(),
		item.Size(), item.Color(), item.Quantity(), now.UTC())
}

// UpdateItemQuantityMut rewrites a line's quantity after a merge or an
// explicit set.
func (r *CartRepo) UpdateItemQuantityMut(item *domain.CartItem) *spanner.Mutation {
	if item == nil {
		return nil
	}
	return m_cart_item.UpdateQuantityMutation(item.CartID(), item.ProductID(),
		item.Size(), item.Color(), item.Quantity())
}

// DeleteItemMut deletes one line. Deleting an absent line is a no-op.
func (r *CartRepo) DeleteItemMut(cartID, productID, size, color string) *spanner.Mutation {
	return m_cart_item.DeleteMutation(cartID, productID, size, color)
}

// DrainMut deletes all lines of a cart, leaving the cart row for reuse.
func (r *CartRepo) DrainMut(cartID string) *spanner.Mutation {
	return m_cart_item.DeleteAllMutation(cartID)
}
