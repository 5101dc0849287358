package contracts

import (
	"time"

	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/order-processing-service/internal/app/shop/domain"
)

// Write-side repository interfaces. Methods return Spanner mutations;
// they never apply them. Usecases collect the mutations into a plan and
// hand it to the Committer (or buffer them in a checkout transaction).

// CartRepo builds mutations for carts and their lines.
type CartRepo interface {
	// InsertMut returns a mutation that inserts the cart row.
	InsertMut(c *domain.Cart) *spanner.Mutation

	// InsertItemMut returns a mutation that inserts a new cart line.
	InsertItemMut(item *domain.CartItem, now time.Time) *spanner.Mutation

	// UpdateItemQuantityMut returns a mutation that rewrites a line's quantity.
	UpdateItemQuantityMut(item *domain.CartItem) *spanner.Mutation

	// DeleteItemMut returns a mutation that deletes one line (idempotent).
	DeleteItemMut(cartID, productID, size, color string) *spanner.Mutation

	// DrainMut returns a mutation that deletes every line of the cart.
	// The cart row persists for reuse.
	DrainMut(cartID string) *spanner.Mutation
}

// OrderRepo builds mutations for orders, their lines and the delivery address.
type OrderRepo interface {
	// InsertMut returns the order-row insert.
	InsertMut(o *domain.Order) *spanner.Mutation

	// ItemMuts returns one insert per price-locked order line.
	ItemMuts(o *domain.Order) []*spanner.Mutation

	// AddressMut returns the delivery-address insert for the order.
	AddressMut(o *domain.Order) *spanner.Mutation

	// UpdateStatusMut returns the status update (or nil when the aggregate
	// carries no status change).
	UpdateStatusMut(o *domain.Order) *spanner.Mutation

	// UpdateAddressMut returns the contact-field correction update.
	UpdateAddressMut(orderID string, addr domain.DeliveryAddress) *spanner.Mutation
}

// PaymentSlipRepo builds mutations for payment slips.
type PaymentSlipRepo interface {
	InsertMut(s *domain.PaymentSlip) *spanner.Mutation

	// UpdateMut returns the review update according to the aggregate's
	// ChangeTracker (or nil).
	UpdateMut(s *domain.PaymentSlip) *spanner.Mutation
}

// ProductRepo builds mutations for catalog products.
type ProductRepo interface {
	InsertMut(p *domain.Product) *spanner.Mutation

	// UpdateMut returns a mutation updating only the dirty fields (or nil).
	UpdateMut(p *domain.Product) *spanner.Mutation

	// StockMut returns a mutation writing an absolute stock value, computed
	// from a read inside the same transaction.
	StockMut(productID string, stock int64, now time.Time) *spanner.Mutation
}
