package m_cart_item

// Field constants for the cart_items table. The primary key is
// (cart_id, product_id, size, color); absent size/color are stored
// as empty strings so the variant uniqueness constraint holds.
const (
	TableName = "cart_items"

	ColCartID    = "cart_id"
	ColProductID = "product_id"
	ColSize      = "size"
	ColColor     = "color"
	ColQuantity  = "quantity"
	ColAddedAt   = "added_at"
)
