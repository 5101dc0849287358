package domain

import (
	"time"
)

// Field constants for change tracking on the Order aggregate.
const (
	FieldOrderStatus = "status"
)

// PaymentMethod enumerates the accepted payment methods. The string values
// are a persisted contract and must not change.
type PaymentMethod string

const (
	// PaymentMethodWalletPay is an out-of-band mobile wallet transfer,
	// confirmed later via a payment slip.
	PaymentMethodWalletPay PaymentMethod = "wallet-pay"

	// PaymentMethodCashOnDelivery is settled at delivery time.
	PaymentMethodCashOnDelivery PaymentMethod = "cash-on-delivery"
)

// ParsePaymentMethod validates a raw payment method value.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMethodWalletPay, PaymentMethodCashOnDelivery:
		return PaymentMethod(s), nil
	}
	return "", ErrInvalidPaymentMethod
}

// InitialStatus returns the order entry state for this payment method.
func (m PaymentMethod) InitialStatus() OrderStatus {
	if m == PaymentMethodWalletPay {
		return OrderStatusPendingPayment
	}
	return OrderStatusPendingConfirmation
}

// OrderStatus enumerates the order lifecycle states. The string values are
// a persisted contract and must not change. The storage layer does not
// enforce a transition graph: any of the seven values is reachable from
// any other.
type OrderStatus string

const (
	OrderStatusPendingPayment      OrderStatus = "pending_payment"
	OrderStatusPendingConfirmation OrderStatus = "pending_confirmation"
	OrderStatusPaid                OrderStatus = "paid"
	OrderStatusConfirmed           OrderStatus = "confirmed"
	OrderStatusShipped             OrderStatus = "shipped"
	OrderStatusDelivered           OrderStatus = "delivered"
	OrderStatusCancelled           OrderStatus = "cancelled"
)

// ParseOrderStatus validates a raw status value.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPendingPayment, OrderStatusPendingConfirmation,
		OrderStatusPaid, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), nil
	}
	return "", ErrInvalidOrderStatus
}

// Notifiable reports whether reaching this status announces a customer
// notification. Entry states are never announced.
func (s OrderStatus) Notifiable() bool {
	switch s {
	case OrderStatusPaid, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is one price-locked line of an order. It is immutable: the
// price is copied from the product at checkout time and never recomputed.
type OrderItem struct {
	productID string
	quantity  int64
	price     *Money
	size      string
	color     string
}

// NewOrderItem builds an order line from a cart line joined with the
// current product price.
func NewOrderItem(productID string, quantity int64, price *Money, size, color string) (OrderItem, error) {
	if productID == "" {
		return OrderItem{}, ErrProductNotFound
	}
	if quantity <= 0 {
		return OrderItem{}, ErrInvalidQuantity
	}
	if price == nil || price.IsNegative() {
		return OrderItem{}, ErrNegativePrice
	}
	return OrderItem{
		productID: productID,
		quantity:  quantity,
		price:     price,
		size:      size,
		color:     color,
	}, nil
}

func (i OrderItem) ProductID() string { return i.productID }
func (i OrderItem) Quantity() int64   { return i.quantity }
func (i OrderItem) Price() *Money     { return i.price }
func (i OrderItem) Size() string      { return i.size }
func (i OrderItem) Color() string     { return i.color }

// LineTotal returns price x quantity.
func (i OrderItem) LineTotal() *Money {
	return i.price.MultiplyInt(i.quantity)
}

// Order is the aggregate root for the order lifecycle. Everything except
// status is immutable after creation: the items and total form the order
// snapshot that later catalog edits cannot alter.
type Order struct {
	id        string
	customer  string
	items     []OrderItem
	total     *Money
	method    PaymentMethod
	status    OrderStatus
	address   DeliveryAddress
	createdAt time.Time
	updatedAt time.Time
	changes   *ChangeTracker
	events    []DomainEvent
}

// NewOrder converts a drained cart into an order. The total is computed
// once here, from the supplied price-locked items, and never again.
// An empty item set or a zero total cannot produce an order.
func NewOrder(id, customerID string, method PaymentMethod, items []OrderItem, address DeliveryAddress, now time.Time) (*Order, error) {
	if customerID == "" {
		return nil, ErrAuthRequired
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	total := Zero()
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	if !total.IsPositive() {
		return nil, ErrEmptyCart
	}

	o := &Order{
		id:        id,
		customer:  customerID,
		items:     items,
		total:     total,
		method:    method,
		status:    method.InitialStatus(),
		address:   address,
		createdAt: now,
		updatedAt: now,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}

	o.events = append(o.events, &OrderCreatedEvent{
		OrderID:       o.id,
		CustomerID:    o.customer,
		PaymentMethod: o.method,
		Total:         o.total,
		CreatedAt:     now,
	})

	return o, nil
}

// ReconstructOrder rebuilds an Order from persisted state.
// Used by usecases when loading from the read model; items and address may
// be omitted when the operation only touches status.
func ReconstructOrder(id, customerID string, total *Money, method PaymentMethod,
	status OrderStatus, createdAt, updatedAt time.Time) *Order {
	return &Order{
		id:        id,
		customer:  customerID,
		total:     total,
		method:    method,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}
}

func (o *Order) ID() string                { return o.id }
func (o *Order) CustomerID() string        { return o.customer }
func (o *Order) Items() []OrderItem        { return o.items }
func (o *Order) Total() *Money             { return o.total }
func (o *Order) Method() PaymentMethod     { return o.method }
func (o *Order) Status() OrderStatus       { return o.status }
func (o *Order) Address() DeliveryAddress  { return o.address }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
func (o *Order) UpdatedAt() time.Time      { return o.updatedAt }
func (o *Order) Changes() *ChangeTracker   { return o.changes }
func (o *Order) DomainEvents() []DomainEvent { return o.events }

// ChangeStatus moves the order to newStatus. A no-op update (same value)
// changes nothing and raises no event. A real change to a notifiable
// status raises OrderStatusChanged; changes to entry states are recorded
// silently.
func (o *Order) ChangeStatus(newStatus OrderStatus, now time.Time) bool {
	if newStatus == o.status {
		return false
	}

	o.status = newStatus
	o.updatedAt = now
	o.changes.MarkDirty(FieldOrderStatus)

	if newStatus.Notifiable() {
		o.events = append(o.events, &OrderStatusChangedEvent{
			OrderID:   o.id,
			NewStatus: newStatus,
			ChangedAt: now,
		})
	}

	return true
}

// ClearEvents clears the accumulated domain events.
// Should be called after events have been written to the outbox.
func (o *Order) ClearEvents() {
	o.events = make([]DomainEvent, 0)
}
