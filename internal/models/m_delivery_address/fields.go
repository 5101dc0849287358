package m_delivery_address

// Field constants for the delivery_addresses table (one row per order).
const (
	TableName = "delivery_addresses"

	ColOrderID  = "order_id"
	ColFullName = "full_name"
	ColPhone    = "phone"
	ColAddress  = "address"
)
