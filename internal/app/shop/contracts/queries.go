package contracts

import (
	"context"

	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
)

// Queries is the composed read-side surface served to handlers. The Spanner
// implementation lives in the queries package.
type Queries interface {
	// CartTotal sums quantity x current price over the customer's cart,
	// skipping lines whose product is inactive. An absent or empty cart
	// yields a zero total.
	CartTotal(ctx context.Context, customerID string) (*dto.CartTotalDTO, error)

	// OrderDetail returns the order with its lines and delivery address,
	// or domain.ErrOrderNotFound.
	OrderDetail(ctx context.Context, orderID string) (*dto.OrderDetailDTO, error)

	// ListOrders pages orders newest first. customerID narrows to one
	// customer; empty means all customers. status optionally filters.
	ListOrders(ctx context.Context, customerID string, status *string, limit, offset int) ([]*dto.OrderDTO, error)

	// ListUnverifiedSlips pages the admin review queue, oldest upload first.
	ListUnverifiedSlips(ctx context.Context, limit, offset int) ([]*dto.UnverifiedSlipDTO, error)

	// GetProduct returns the product or domain.ErrProductNotFound.
	GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error)

	// ListProducts pages the catalog with an optional category filter.
	ListProducts(ctx context.Context, category *string, activeOnly bool, limit, offset int) ([]*dto.ProductSummaryDTO, error)
}
