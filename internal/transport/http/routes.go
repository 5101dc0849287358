package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	grpcshop "github.com/murkotick/order-processing-service/internal/transport/grpc/shop"
)

// ---- cart ----

func (g *Gateway) getOrCreateCart(c *gin.Context) {
	reply, err := g.handler.GetOrCreateCart(c.Request.Context(), &grpcshop.GetOrCreateCartRequest{
		CustomerID: callerID(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart_id": reply.CartID})
}

func (g *Gateway) getCartTotal(c *gin.Context) {
	total, err := g.handler.GetCartTotal(c.Request.Context(), &grpcshop.GetCartTotalRequest{
		CustomerID: callerID(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"numerator":   total.Numerator,
		"denominator": total.Denominator,
		"total":       total.Decimal,
	})
}

type cartItemBody struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

func (g *Gateway) addCartItem(c *gin.Context) {
	var body cartItemBody
	if err := c.BindJSON(&body); err != nil {
		return
	}

	err := g.handler.AddCartItem(c.Request.Context(), &grpcshop.AddCartItemRequest{
		CustomerID: callerID(c),
		ProductID:  body.ProductID,
		Quantity:   body.Quantity,
		Size:       body.Size,
		Color:      body.Color,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (g *Gateway) setCartItemQuantity(c *gin.Context) {
	var body cartItemBody
	if err := c.BindJSON(&body); err != nil {
		return
	}

	err := g.handler.SetCartItemQuantity(c.Request.Context(), &grpcshop.SetCartItemQuantityRequest{
		CustomerID: callerID(c),
		ProductID:  body.ProductID,
		Size:       body.Size,
		Color:      body.Color,
		Quantity:   body.Quantity,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (g *Gateway) removeCartItem(c *gin.Context) {
	err := g.handler.RemoveCartItem(c.Request.Context(), &grpcshop.RemoveCartItemRequest{
		CustomerID: callerID(c),
		ProductID:  c.Query("product_id"),
		Size:       c.Query("size"),
		Color:      c.Query("color"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- checkout and orders ----

type checkoutBody struct {
	PaymentMethod string `json:"payment_method"`
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

func (g *Gateway) checkout(c *gin.Context) {
	var body checkoutBody
	if err := c.BindJSON(&body); err != nil {
		return
	}

	reply, err := g.handler.Checkout(c.Request.Context(), &grpcshop.CheckoutRequest{
		CustomerID:    callerID(c),
		PaymentMethod: body.PaymentMethod,
		FullName:      body.FullName,
		Phone:         body.Phone,
		Address:       body.Address,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"order_id": reply.OrderID,
		"status":   reply.Status,
		"total":    reply.Total,
	})
}

func (g *Gateway) listOrders(c *gin.Context) {
	var statusFilter *string
	if s := c.Query("status"); s != "" {
		statusFilter = &s
	}

	reply, err := g.handler.ListOrders(c.Request.Context(), &grpcshop.ListOrdersRequest{
		CallerID:   callerID(c),
		CustomerID: c.DefaultQuery("customer_id", callerID(c)),
		Status:     statusFilter,
		PageSize:   intQuery(c, "page_size"),
		PageToken:  c.Query("page_token"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders":          reply.Orders,
		"next_page_token": reply.NextPageToken,
	})
}

func (g *Gateway) getOrderDetail(c *gin.Context) {
	detail, err := g.handler.GetOrderDetail(c.Request.Context(), &grpcshop.GetOrderDetailRequest{
		CallerID: callerID(c),
		OrderID:  c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

type statusBody struct {
	Status string `json:"status"`
}

func (g *Gateway) updateOrderStatus(c *gin.Context) {
	var body statusBody
	if err := c.BindJSON(&body); err != nil {
		return
	}

	err := g.handler.UpdateOrderStatus(c.Request.Context(), &grpcshop.UpdateOrderStatusRequest{
		CallerID:  callerID(c),
		OrderID:   c.Param("id"),
		NewStatus: body.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type addressBody struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (g *Gateway) updateDeliveryAddress(c *gin.Context) {
	var body addressBody
	if err := c.BindJSON(&body); err != nil {
		return
	}

	err := g.handler.UpdateDeliveryAddress(c.Request.Context(), &grpcshop.UpdateDeliveryAddressRequest{
		CallerID: callerID(c),
		OrderID:  c.Param("id"),
		FullName: body.FullName,
		Phone:    body.Phone,
		Address:  body.Address,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- payment slips ----

type slipBody struct {
	ImageRef string `json:"image_ref"`
}

func (g *Gateway) uploadPaymentSlip(c *gin.Context) {
	var body slipBody
	if err := c.BindJSON(&body); err != nil {
		return
	}

	reply, err := g.handler.UploadPaymentSlip(c.Request.Context(), &grpcshop.UploadPaymentSlipRequest{
		CustomerID: callerID(c),
		OrderID:    c.Param("id"),
		ImageRef:   body.ImageRef,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"slip_id": reply.SlipID})
}

func (g *Gateway) listUnverifiedSlips(c *gin.Context) {
	reply, err := g.handler.ListUnverifiedSlips(c.Request.Context(), &grpcshop.ListUnverifiedSlipsRequest{
		CallerID:  callerID(c),
		PageSize:  intQuery(c, "page_size"),
		PageToken: c.Query("page_token"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"slips":           reply.Slips,
		"next_page_token": reply.NextPageToken,
	})
}

type verifyBody struct {
	Verified bool `json:"verified"`
}

func (g *Gateway) verifyPaymentSlip(c *gin.Context) {
	var body verifyBody
	if err := c.BindJSON(&body); err != nil {
		return
	}

	err := g.handler.VerifyPaymentSlip(c.Request.Context(), &grpcshop.VerifyPaymentSlipRequest{
		CallerID: callerID(c),
		SlipID:   c.Param("id"),
		Verified: body.Verified,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- catalog ----

type createProductBody struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	PriceNum   int64    `json:"price_numerator"`
	PriceDen   int64    `json:"price_denominator"`
	Stock      *int64   `json:"stock"`
	IsPreorder bool     `json:"is_preorder"`
	Sizes      []string `json:"sizes"`
	Colors     []string `json:"colors"`
}

func (g *Gateway) createProduct(c *gin.Context) {
	var body createProductBody
	if err := c.BindJSON(&body); err != nil {
		return
	}

	reply, err := g.handler.CreateProduct(c.Request.Context(), &grpcshop.CreateProductRequest{
		CallerID:   callerID(c),
		Name:       body.Name,
		Category:   body.Category,
		PriceNum:   body.PriceNum,
		PriceDen:   body.PriceDen,
		Stock:      body.Stock,
		IsPreorder: body.IsPreorder,
		Sizes:      body.Sizes,
		Colors:     body.Colors,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product_id": reply.ProductID})
}

type updateProductBody struct {
	Name       *string  `json:"name"`
	Category   *string  `json:"category"`
	PriceNum   *int64   `json:"price_numerator"`
	PriceDen   *int64   `json:"price_denominator"`
	Stock      *int64   `json:"stock"`
	StockSet   bool     `json:"stock_set"`
	IsPreorder *bool    `json:"is_preorder"`
	IsActive   *bool    `json:"is_active"`
	Sizes      []string `json:"sizes"`
	Colors     []string `json:"colors"`
}

func (g *Gateway) updateProduct(c *gin.Context) {
	var body updateProductBody
	if err := c.BindJSON(&body); err != nil {
		return
	}

	err := g.handler.UpdateProduct(c.Request.Context(), &grpcshop.UpdateProductRequest{
		CallerID:   callerID(c),
		ProductID:  c.Param("id"),
		Name:       body.Name,
		Category:   body.Category,
		PriceNum:   body.PriceNum,
		PriceDen:   body.PriceDen,
		Stock:      body.Stock,
		StockSet:   body.StockSet,
		IsPreorder: body.IsPreorder,
		IsActive:   body.IsActive,
		Sizes:      body.Sizes,
		Colors:     body.Colors,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (g *Gateway) getProduct(c *gin.Context) {
	product, err := g.handler.GetProduct(c.Request.Context(), &grpcshop.GetProductRequest{
		ProductID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (g *Gateway) listProducts(c *gin.Context) {
	var category *string
	if s := c.Query("category"); s != "" {
		category = &s
	}

	reply, err := g.handler.ListProducts(c.Request.Context(), &grpcshop.ListProductsRequest{
		Category:   category,
		ActiveOnly: c.DefaultQuery("active_only", "true") == "true",
		PageSize:   intQuery(c, "page_size"),
		PageToken:  c.Query("page_token"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products":        reply.Products,
		"next_page_token": reply.NextPageToken,
	})
}

func intQuery(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
