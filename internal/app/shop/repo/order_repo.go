package repo

import (
	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/models/m_delivery_address"
	"github.com/murkotick/order-processing-service/internal/models/m_order"
	"github.com/murkotick/order-processing-service/internal/models/m_order_item"
)

// OrderRepo is the Spanner implementation of the order write-side
// repository. It returns *spanner.Mutation objects but never applies them.
type OrderRepo struct{}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{}
}

// buildInsertValues constructs the values map used for order insertion.
// Unexported so tests in this package can inspect the map without relying
// on spanner.Mutation internals.
func buildInsertValues(o *domain.Order) map[string]interface{} {
	total := o.Total()
	return m_order.BuildInsertMap(
		o.ID(),
		o.CustomerID(),
		total.Numerator(),
		total.Denominator(),
		string(o.Method()),
		string(o.Status()),
		o.CreatedAt().UTC(),
	)
}

// InsertMut builds the insert for a new order row.
func (r *OrderRepo) InsertMut(o *domain.Order) *spanner.Mutation {
	if o == nil {
		return nil
	}
	return m_order.InsertMutation(buildInsertValues(o))
}

// ItemMuts builds one insert per order line. The line price is the
// product price as read at checkout time; nothing ever updates these rows.
func (r *OrderRepo) ItemMuts(o *domain.Order) []*spanner.Mutation {
	if o == nil {
		return nil
	}
	items := o.Items()
	muts := make([]*spanner.Mutation, 0, len(items))
	for _, it := range items {
		price := it.Price()
		muts = append(muts, m_order_item.InsertMutation(
			o.ID(), it.ProductID(), it.Size(), it.Color(),
			it.Quantity(), price.Numerator(), price.Denominator()))
	}
	return muts
}

// AddressMut builds the delivery-address insert for the order.
func (r *OrderRepo) AddressMut(o *domain.Order) *spanner.Mutation {
	if o == nil {
		return nil
	}
	addr := o.Address()
	return m_delivery_address.InsertMutation(o.ID(),
		addr.FullName(), addr.Phone(), addr.Address())
}

// UpdateStatusMut builds the status update using the aggregate's
// ChangeTracker. Returns nil when the status did not change, so a no-op
// transition writes nothing.
func (r *OrderRepo) UpdateStatusMut(o *domain.Order) *spanner.Mutation {
	if o == nil || !o.Changes().Dirty(domain.FieldOrderStatus) {
		return nil
	}
	return m_order.UpdateStatusMutation(o.ID(), string(o.Status()), o.UpdatedAt().UTC())
}

// UpdateAddressMut builds the contact-field correction update.
func (r *OrderRepo) UpdateAddressMut(orderID string, addr domain.DeliveryAddress) *spanner.Mutation {
	return m_delivery_address.UpdateMutation(orderID,
		addr.FullName(), addr.Phone(), addr.Address())
}
