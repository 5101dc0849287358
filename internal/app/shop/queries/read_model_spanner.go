package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/get_cart_total"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/get_order_detail"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/get_product"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/list_orders"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/list_products"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/list_unverified_slips"
)

// SpannerReadModel is the infrastructure adapter behind every read-side
// contract: contracts.Queries for the handlers, and the per-concern reads
// (CartReads, OrderReads, SlipReads, ProductReads) for the interactors.
// It composes the individual query implementations.
type SpannerReadModel struct {
	client *spanner.Client

	cartTotalQ    *get_cart_total.SpannerCartTotalQuery
	orderDetailQ  *get_order_detail.SpannerOrderDetailQuery
	listOrdersQ   *list_orders.SpannerListOrdersQuery
	unverifiedQ   *list_unverified_slips.SpannerUnverifiedSlipsQuery
	getProductQ   *get_product.SpannerGetProductQuery
	listProductsQ *list_products.SpannerListProductsQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		client:        client,
		cartTotalQ:    get_cart_total.NewSpannerCartTotalQuery(client),
		orderDetailQ:  get_order_detail.NewSpannerOrderDetailQuery(client),
		listOrdersQ:   list_orders.NewSpannerListOrdersQuery(client),
		unverifiedQ:   list_unverified_slips.NewSpannerUnverifiedSlipsQuery(client),
		getProductQ:   get_product.NewSpannerGetProductQuery(client),
		listProductsQ: list_products.NewSpannerListProductsQuery(client),
	}
}

func (rm *SpannerReadModel) CartTotal(ctx context.Context, customerID string) (*dto.CartTotalDTO, error) {
	return rm.cartTotalQ.CartTotal(ctx, customerID)
}

func (rm *SpannerReadModel) OrderDetail(ctx context.Context, orderID string) (*dto.OrderDetailDTO, error) {
	return rm.orderDetailQ.OrderDetail(ctx, orderID)
}

func (rm *SpannerReadModel) ListOrders(ctx context.Context, customerID string, status *string, limit, offset int) ([]*dto.OrderDTO, error) {
	return rm.listOrdersQ.ListOrders(ctx, customerID, status, limit, offset)
}

func (rm *SpannerReadModel) ListUnverifiedSlips(ctx context.Context, limit, offset int) ([]*dto.UnverifiedSlipDTO, error) {
	return rm.unverifiedQ.ListUnverifiedSlips(ctx, limit, offset)
}

func (rm *SpannerReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return rm.getProductQ.GetProduct(ctx, productID)
}

func (rm *SpannerReadModel) ListProducts(ctx context.Context, category *string, activeOnly bool, limit, offset int) ([]*dto.ProductSummaryDTO, error) {
	return rm.listProductsQ.ListProducts(ctx, category, activeOnly, limit, offset)
}
