package contracts

import (
	"context"

	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
)

// Read-side interfaces consumed by usecases. Split per concern so fakes in
// interactor tests only implement what the usecase under test touches.

// CartReads resolves carts and individual lines for the cart engine.
type CartReads interface {
	// CartByCustomer returns the customer's cart, or ok=false when absent.
	CartByCustomer(ctx context.Context, customerID string) (c *dto.CartDTO, ok bool, err error)

	// CartItem returns one line by its full variant key, or ok=false.
	CartItem(ctx context.Context, cartID, productID, size, color string) (it *dto.CartItemDTO, ok bool, err error)
}

// OrderReads loads order rows for lifecycle operations.
type OrderReads interface {
	// Order returns the order or domain.ErrOrderNotFound.
	Order(ctx context.Context, orderID string) (*dto.OrderDTO, error)
}

// SlipReads loads payment slips for the verification workflow.
type SlipReads interface {
	// Slip returns the slip or domain.ErrSlipNotFound.
	Slip(ctx context.Context, slipID string) (*dto.PaymentSlipDTO, error)
}

// ProductReads loads catalog products for cart and admin operations.
type ProductReads interface {
	// Product returns the product or domain.ErrProductNotFound.
	Product(ctx context.Context, productID string) (*dto.ProductDTO, error)
}

// Roles is the capability lookup backing the explicit admin checks at the
// entry of every admin-only operation.
type Roles interface {
	IsAdmin(ctx context.Context, customerID string) (bool, error)
}
