package m_order_item

// Field constants for the order_items table. Rows are immutable after
// creation: price_numerator/price_denominator hold the product price as
// copied at checkout time.
const (
	TableName = "order_items"

	ColOrderID          = "order_id"
	ColProductID        = "product_id"
	ColSize             = "size"
	ColColor            = "color"
	ColQuantity         = "quantity"
	ColPriceNumerator   = "price_numerator"
	ColPriceDenominator = "price_denominator"
)
