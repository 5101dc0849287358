package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID        = "product_id"
	ColName             = "name"
	ColCategory         = "category"
	ColPriceNumerator   = "price_numerator"
	ColPriceDenominator = "price_denominator"
	ColStock            = "stock"
	ColIsPreorder       = "is_preorder"
	ColIsActive         = "is_active"
	ColSizes            = "sizes"
	ColColors           = "colors"
	ColCreatedAt        = "created_at"
	ColUpdatedAt        = "updated_at"
)
