package dto

// Read-model DTOs. Money travels as numerator/denominator int64 pairs
// exactly as stored; timestamps use *string (RFC3339) to mirror how they
// come from Spanner. Use the utils helpers to parse them into time.Time.

// CartDTO identifies a customer's cart.
type CartDTO struct {
	CartID     string
	CustomerID string
}

// CartItemDTO is one basket line.
type CartItemDTO struct {
	CartID    string
	ProductID string
	Size      string
	Color     string
	Quantity  int64
}

// CartTotalDTO is the live cart total: sum of quantity x current price
// over lines whose product is active.
type CartTotalDTO struct {
	Numerator   int64
	Denominator int64

	// Decimal is the two-decimal display string of the total.
	Decimal string
}

// OrderDTO contains the order-row fields.
type OrderDTO struct {
	OrderID       string
	CustomerID    string
	TotalNum      int64
	TotalDen      int64
	PaymentMethod string
	Status        string
	CreatedAt     *string
	UpdatedAt     *string
}

// OrderItemDTO is one price-locked order line.
type OrderItemDTO struct {
	ProductID string
	Size      string
	Color     string
	Quantity  int64
	PriceNum  int64
	PriceDen  int64
}

// DeliveryAddressDTO holds the order's contact fields.
type DeliveryAddressDTO struct {
	FullName string
	Phone    string
	Address  string
}

// OrderDetailDTO aggregates an order with its lines and address for the
// admin detail view.
type OrderDetailDTO struct {
	Order   OrderDTO
	Items   []OrderItemDTO
	Address *DeliveryAddressDTO
}

// PaymentSlipDTO contains the payment-slip fields.
type PaymentSlipDTO struct {
	SlipID     string
	OrderID    string
	ImageRef   string
	Verified   bool
	UploadedAt *string
	VerifiedAt *string
}

// UnverifiedSlipDTO is one row of the admin review queue: the slip joined
// with its order's total and customer identity, oldest first.
type UnverifiedSlipDTO struct {
	SlipID     string
	OrderID    string
	CustomerID string
	ImageRef   string
	TotalNum   int64
	TotalDen   int64
	UploadedAt *string
}

// ProductDTO contains full product fields returned by read queries.
type ProductDTO struct {
	ProductID  string
	Name       string
	Category   string
	PriceNum   int64
	PriceDen   int64
	Stock      *int64
	IsPreorder bool
	IsActive   bool
	Sizes      []string
	Colors     []string
	CreatedAt  *string
	UpdatedAt  *string
}

// ProductSummaryDTO is a compact DTO for list queries.
type ProductSummaryDTO struct {
	ProductID  string
	Name       string
	Category   string
	PriceNum   int64
	PriceDen   int64
	IsPreorder bool
}
