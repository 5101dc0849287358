package m_order

// Field constants for the orders table.
const (
	TableName = "orders"

	ColOrderID          = "order_id"
	ColCustomerID       = "customer_id"
	ColTotalNumerator   = "total_numerator"
	ColTotalDenominator = "total_denominator"
	ColPaymentMethod    = "payment_method"
	ColStatus           = "status"
	ColCreatedAt        = "created_at"
	ColUpdatedAt        = "updated_at"
)
