package shop

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/get_cart_total"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/get_order_detail"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/get_product"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/list_orders"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/list_products"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/list_unverified_slips"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/add_cart_item"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/checkout"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/create_product"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/get_or_create_cart"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/remove_cart_item"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/set_cart_item_quantity"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/update_delivery_address"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/update_order_status"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/update_product"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/upload_payment_slip"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/verify_payment_slip"
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	GetOrCreateCart *get_or_create_cart.Interactor
	AddCartItem     *add_cart_item.Interactor
	SetItemQuantity *set_cart_item_quantity.Interactor
	RemoveCartItem  *remove_cart_item.Interactor
	Checkout        *checkout.Interactor
	UpdateStatus    *update_order_status.Interactor
	UploadSlip      *upload_payment_slip.Interactor
	VerifySlip      *verify_payment_slip.Interactor
	CreateProduct   *create_product.Interactor
	UpdateProduct   *update_product.Interactor
	UpdateOrderAddr *update_delivery_address.Interactor
}

// Queries groups read handlers.
type Queries struct {
	CartTotal       *get_cart_total.Handler
	OrderDetail     *get_order_detail.Handler
	ListOrders      *list_orders.Handler
	UnverifiedSlips *list_unverified_slips.Handler
	GetProduct      *get_product.Handler
	ListProducts    *list_products.Handler
}

// Handler is a thin transport adapter. It validates input, maps transport
// requests to application requests and delegates to CQRS handlers. The
// caller identity travels in the request; authorization decisions stay in
// the application layer.
type Handler struct {
	commands Commands
	queries  Queries
}

func NewHandler(cmd Commands, qry Queries) *Handler {
	return &Handler{commands: cmd, queries: qry}
}

// ---- cart ----

type GetOrCreateCartRequest struct {
	CustomerID string
}

type GetOrCreateCartReply struct {
	CartID string
}

func (h *Handler) GetOrCreateCart(ctx context.Context, req *GetOrCreateCartRequest) (*GetOrCreateCartReply, error) {
	if req == nil || req.CustomerID == "" {
		return nil, status.Error(codes.InvalidArgument, "customer_id is required")
	}

	id, err := h.commands.GetOrCreateCart.Execute(ctx, get_or_create_cart.Request{CustomerID: req.CustomerID})
	if err != nil {
		return nil, mapError(err)
	}
	return &GetOrCreateCartReply{CartID: id}, nil
}

type AddCartItemRequest struct {
	CustomerID string
	ProductID  string
	Quantity   int64
	Size       string
	Color      string
}

func (h *Handler) AddCartItem(ctx context.Context, req *AddCartItemRequest) error {
	if err := validateAddCartItem(req); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	err := h.commands.AddCartItem.Execute(ctx, add_cart_item.Request{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Size:       req.Size,
		Color:      req.Color,
	})
	return mapError(err)
}

type SetCartItemQuantityRequest struct {
	CustomerID string
	ProductID  string
	Size       string
	Color      string
	Quantity   int64
}

func (h *Handler) SetCartItemQuantity(ctx context.Context, req *SetCartItemQuantityRequest) error {
	if req == nil || req.CustomerID == "" || req.ProductID == "" {
		return status.Error(codes.InvalidArgument, "customer_id and product_id are required")
	}

	err := h.commands.SetItemQuantity.Execute(ctx, set_cart_item_quantity.Request{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Size:       req.Size,
		Color:      req.Color,
		Quantity:   req.Quantity,
	})
	return mapError(err)
}

type RemoveCartItemRequest struct {
	CustomerID string
	ProductID  string
	Size       string
	Color      string
}

func (h *Handler) RemoveCartItem(ctx context.Context, req *RemoveCartItemRequest) error {
	if req == nil || req.CustomerID == "" || req.ProductID == "" {
		return status.Error(codes.InvalidArgument, "customer_id and product_id are required")
	}

	err := h.commands.RemoveCartItem.Execute(ctx, remove_cart_item.Request{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Size:       req.Size,
		Color:      req.Color,
	})
	return mapError(err)
}

type GetCartTotalRequest struct {
	CustomerID string
}

func (h *Handler) GetCartTotal(ctx context.Context, req *GetCartTotalRequest) (*dto.CartTotalDTO, error) {
	if req == nil || req.CustomerID == "" {
		return nil, status.Error(codes.InvalidArgument, "customer_id is required")
	}

	total, err := h.queries.CartTotal.Execute(ctx, req.CustomerID)
	if err != nil {
		return nil, mapError(err)
	}
	return total, nil
}

// ---- checkout and orders ----

type CheckoutRequest struct {
	CustomerID    string
	PaymentMethod string
	FullName      string
	Phone         string
	Address       string
}

type CheckoutReply struct {
	OrderID string
	Status  string
	Total   string
}

func (h *Handler) Checkout(ctx context.Context, req *CheckoutRequest) (*CheckoutReply, error) {
	if err := validateCheckout(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := h.commands.Checkout.Execute(ctx, checkout.Request{
		CustomerID:    req.CustomerID,
		PaymentMethod: req.PaymentMethod,
		FullName:      req.FullName,
		Phone:         req.Phone,
		Address:       req.Address,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &CheckoutReply{
		OrderID: res.OrderID,
		Status:  string(res.Status),
		Total:   res.Total.String(),
	}, nil
}

type UpdateOrderStatusRequest struct {
	CallerID  string
	OrderID   string
	NewStatus string
}

func (h *Handler) UpdateOrderStatus(ctx context.Context, req *UpdateOrderStatusRequest) error {
	if req == nil || req.OrderID == "" || req.NewStatus == "" {
		return status.Error(codes.InvalidArgument, "order_id and new_status are required")
	}

	err := h.commands.UpdateStatus.Execute(ctx, update_order_status.Request{
		CallerID:  req.CallerID,
		OrderID:   req.OrderID,
		NewStatus: req.NewStatus,
	})
	return mapError(err)
}

type UpdateDeliveryAddressRequest struct {
	CallerID string
	OrderID  string
	FullName string
	Phone    string
	Address  string
}

func (h *Handler) UpdateDeliveryAddress(ctx context.Context, req *UpdateDeliveryAddressRequest) error {
	if req == nil || req.OrderID == "" {
		return status.Error(codes.InvalidArgument, "order_id is required")
	}

	err := h.commands.UpdateOrderAddr.Execute(ctx, update_delivery_address.Request{
		CallerID: req.CallerID,
		OrderID:  req.OrderID,
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	return mapError(err)
}

type GetOrderDetailRequest struct {
	CallerID string
	OrderID  string
}

func (h *Handler) GetOrderDetail(ctx context.Context, req *GetOrderDetailRequest) (*dto.OrderDetailDTO, error) {
	if req == nil || req.OrderID == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	detail, err := h.queries.OrderDetail.Execute(ctx, req.CallerID, req.OrderID)
	if err != nil {
		return nil, mapError(err)
	}
	return detail, nil
}

type ListOrdersRequest struct {
	CallerID   string
	CustomerID string
	Status     *string
	PageSize   int
	PageToken  string
}

type ListOrdersReply struct {
	Orders        []*dto.OrderDTO
	NextPageToken string
}

func (h *Handler) ListOrders(ctx context.Context, req *ListOrdersRequest) (*ListOrdersReply, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	limit := req.PageSize
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	offset, err := decodePageToken(req.PageToken)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid page_token")
	}

	orders, err := h.queries.ListOrders.Execute(ctx, list_orders.Request{
		CallerID:   req.CallerID,
		CustomerID: req.CustomerID,
		Status:     req.Status,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, mapError(err)
	}

	next := ""
	if len(orders) == limit {
		next = encodePageToken(offset + limit)
	}
	return &ListOrdersReply{Orders: orders, NextPageToken: next}, nil
}

// ---- payment slips ----

type UploadPaymentSlipRequest struct {
	CustomerID string
	OrderID    string
	ImageRef   string
}

type UploadPaymentSlipReply struct {
	SlipID string
}

func (h *Handler) UploadPaymentSlip(ctx context.Context, req *UploadPaymentSlipRequest) (*UploadPaymentSlipReply, error) {
	if req == nil || req.OrderID == "" || req.ImageRef == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id and image_ref are required")
	}

	id, err := h.commands.UploadSlip.Execute(ctx, upload_payment_slip.Request{
		CustomerID: req.CustomerID,
		OrderID:    req.OrderID,
		ImageRef:   req.ImageRef,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &UploadPaymentSlipReply{SlipID: id}, nil
}

type VerifyPaymentSlipRequest struct {
	CallerID string
	SlipID   string
	Verified bool
}

func (h *Handler) VerifyPaymentSlip(ctx context.Context, req *VerifyPaymentSlipRequest) error {
	if req == nil || req.SlipID == "" {
		return status.Error(codes.InvalidArgument, "slip_id is required")
	}

	err := h.commands.VerifySlip.Execute(ctx, verify_payment_slip.Request{
		CallerID: req.CallerID,
		SlipID:   req.SlipID,
		Verified: req.Verified,
	})
	return mapError(err)
}

type ListUnverifiedSlipsRequest struct {
	CallerID  string
	PageSize  int
	PageToken string
}

type ListUnverifiedSlipsReply struct {
	Slips         []*dto.UnverifiedSlipDTO
	NextPageToken string
}

func (h *Handler) ListUnverifiedSlips(ctx context.Context, req *ListUnverifiedSlipsRequest) (*ListUnverifiedSlipsReply, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	limit := req.PageSize
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	offset, err := decodePageToken(req.PageToken)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid page_token")
	}

	slips, err := h.queries.UnverifiedSlips.Execute(ctx, req.CallerID, limit, offset)
	if err != nil {
		return nil, mapError(err)
	}

	next := ""
	if len(slips) == limit {
		next = encodePageToken(offset + limit)
	}
	return &ListUnverifiedSlipsReply{Slips: slips, NextPageToken: next}, nil
}

// ---- catalog ----

type CreateProductRequest struct {
	CallerID   string
	Name       string
	Category   string
	PriceNum   int64
	PriceDen   int64
	Stock      *int64
	IsPreorder bool
	Sizes      []string
	Colors     []string
}

type CreateProductReply struct {
	ProductID string
}

func (h *Handler) CreateProduct(ctx context.Context, req *CreateProductRequest) (*CreateProductReply, error) {
	if err := validateCreateProduct(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	id, err := h.commands.CreateProduct.Execute(ctx, create_product.Request{
		CallerID:   req.CallerID,
		Name:       req.Name,
		Category:   req.Category,
		PriceNum:   req.PriceNum,
		PriceDen:   req.PriceDen,
		Stock:      req.Stock,
		IsPreorder: req.IsPreorder,
		Sizes:      req.Sizes,
		Colors:     req.Colors,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &CreateProductReply{ProductID: id}, nil
}

type UpdateProductRequest struct {
	CallerID  string
	ProductID string

	Name       *string
	Category   *string
	PriceNum   *int64
	PriceDen   *int64
	Stock      *int64
	StockSet   bool
	IsPreorder *bool
	IsActive   *bool
	Sizes      []string
	Colors     []string
}

func (h *Handler) UpdateProduct(ctx context.Context, req *UpdateProductRequest) error {
	if err := validateUpdateProduct(req); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	err := h.commands.UpdateProduct.Execute(ctx, update_product.Request{
		CallerID:   req.CallerID,
		ProductID:  req.ProductID,
		Name:       req.Name,
		Category:   req.Category,
		PriceNum:   req.PriceNum,
		PriceDen:   req.PriceDen,
		Stock:      req.Stock,
		StockSet:   req.StockSet,
		IsPreorder: req.IsPreorder,
		IsActive:   req.IsActive,
		Sizes:      req.Sizes,
		Colors:     req.Colors,
	})
	return mapError(err)
}

type GetProductRequest struct {
	ProductID string
}

func (h *Handler) GetProduct(ctx context.Context, req *GetProductRequest) (*dto.ProductDTO, error) {
	if req == nil || req.ProductID == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}

	product, err := h.queries.GetProduct.Execute(ctx, req.ProductID)
	if err != nil {
		return nil, mapError(err)
	}
	return product, nil
}

type ListProductsRequest struct {
	Category   *string
	ActiveOnly bool
	PageSize   int
	PageToken  string
}

type ListProductsReply struct {
	Products      []*dto.ProductSummaryDTO
	NextPageToken string
}

func (h *Handler) ListProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsReply, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	limit := req.PageSize
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	offset, err := decodePageToken(req.PageToken)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid page_token")
	}

	products, err := h.queries.ListProducts.Execute(ctx, req.Category, req.ActiveOnly, limit, offset)
	if err != nil {
		return nil, mapError(err)
	}

	next := ""
	if len(products) == limit {
		next = encodePageToken(offset + limit)
	}
	return &ListProductsReply{Products: products, NextPageToken: next}, nil
}
