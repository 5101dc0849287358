package m_cart

// Field constants for the carts table.
const (
	TableName = "carts"

	ColCartID     = "cart_id"
	ColCustomerID = "customer_id"
	ColCreatedAt  = "created_at"
)
