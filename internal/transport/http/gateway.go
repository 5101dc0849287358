package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	grpcshop "github.com/murkotick/order-processing-service/internal/transport/grpc/shop"
)

// Gateway exposes the shop operations over HTTP. It is a thin routing
// layer over the transport handler: gRPC status codes from the handler
// translate to HTTP statuses here.
//
// The caller identity arrives in the X-Customer-Id header. Verifying that
// identity is an upstream concern (API gateway / auth proxy).
type Gateway struct {
	handler *grpcshop.Handler
	logger  *zap.Logger
	router  *gin.Engine
}

func NewGateway(handler *grpcshop.Handler, logger *zap.Logger) *Gateway {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	g := &Gateway{
		handler: handler,
		logger:  logger,
		router:  router,
	}
	g.setupRoutes()
	return g
}

func (g *Gateway) Router() *gin.Engine {
	return g.router
}

func (g *Gateway) Start(addr string) error {
	g.logger.Info("http gateway starting", zap.String("address", addr))
	return g.router.Run(addr)
}

func (g *Gateway) setupRoutes() {
	g.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := g.router.Group("/api/v1")
	{
		cart := v1.Group("/cart")
		{
			cart.POST("", g.getOrCreateCart)
			cart.GET("/total", g.getCartTotal)
			cart.POST("/items", g.addCartItem)
			cart.PUT("/items", g.setCartItemQuantity)
			cart.DELETE("/items", g.removeCartItem)
		}

		v1.POST("/checkout", g.checkout)

		orders := v1.Group("/orders")
		{
			orders.GET("", g.listOrders)
			orders.GET("/:id", g.getOrderDetail)
			orders.PUT("/:id/status", g.updateOrderStatus)
			orders.PUT("/:id/address", g.updateDeliveryAddress)
			orders.POST("/:id/slips", g.uploadPaymentSlip)
		}

		slips := v1.Group("/slips")
		{
			slips.GET("/unverified", g.listUnverifiedSlips)
			slips.POST("/:id/verify", g.verifyPaymentSlip)
		}

		products := v1.Group("/products")
		{
			products.POST("", g.createProduct)
			products.GET("", g.listProducts)
			products.GET("/:id", g.getProduct)
			products.PATCH("/:id", g.updateProduct)
		}
	}
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

func callerID(c *gin.Context) string {
	return c.GetHeader("X-Customer-Id")
}

// writeError maps a gRPC status error from the transport handler onto the
// HTTP response.
func writeError(c *gin.Context, err error) {
	st, _ := status.FromError(err)
	c.JSON(httpStatus(st.Code()), gin.H{"error": st.Message()})
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.FailedPrecondition:
		return http.StatusUnprocessableEntity
	case codes.Aborted, codes.AlreadyExists:
		return http.StatusConflict
	case codes.Canceled:
		return http.StatusRequestTimeout
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}
