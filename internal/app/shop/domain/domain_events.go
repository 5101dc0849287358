package domain

import "time"

// DomainEvent is a marker interface for all domain events.
// Events are persisted to the transactional outbox in the same commit as
// the write that produced them and delivered asynchronously afterwards.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// OrderCreatedEvent is raised when a checkout produces a new order.
type OrderCreatedEvent struct {
	OrderID       string
	CustomerID    string
	PaymentMethod PaymentMethod
	Total         *Money
	CreatedAt     time.Time
}

func (e *OrderCreatedEvent) EventType() string {
	return "order.created"
}

func (e *OrderCreatedEvent) AggregateID() string {
	return e.OrderID
}

func (e *OrderCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// OrderStatusChangedEvent is raised when an order's status changes to a
// customer-notifiable value. Entry states (pending_payment,
// pending_confirmation) and no-op updates never raise it.
type OrderStatusChangedEvent struct {
	OrderID   string
	NewStatus OrderStatus
	ChangedAt time.Time
}

func (e *OrderStatusChangedEvent) EventType() string {
	return "order.status_changed"
}

func (e *OrderStatusChangedEvent) AggregateID() string {
	return e.OrderID
}

func (e *OrderStatusChangedEvent) OccurredAt() time.Time {
	return e.ChangedAt
}

// PaymentSlipUploadedEvent is raised when a customer uploads proof of a
// wallet payment; it drives the admin review notification.
type PaymentSlipUploadedEvent struct {
	SlipID     string
	OrderID    string
	ImageRef   string
	UploadedAt time.Time
}

func (e *PaymentSlipUploadedEvent) EventType() string {
	return "payment_slip.uploaded"
}

func (e *PaymentSlipUploadedEvent) AggregateID() string {
	return e.OrderID
}

func (e *PaymentSlipUploadedEvent) OccurredAt() time.Time {
	return e.UploadedAt
}
