package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/murkotick/order-processing-service/internal/app/shop/outbox"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/get_cart_total"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/get_order_detail"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/get_product"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/list_orders"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/list_products"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/list_unverified_slips"
	"github.com/murkotick/order-processing-service/internal/app/shop/repo"
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
	"github.com/murkotick/order-processing-service/internal/pkg/clock"
	"github.com/murkotick/order-processing-service/internal/pkg/config"
	committer "github.com/murkotick/order-processing-service/internal/pkg/committer"
	grpcshop "github.com/murkotick/order-processing-service/internal/transport/grpc/shop"
	httptransport "github.com/murkotick/order-processing-service/internal/transport/http"
)

func main() {
	configPath := flag.String("config", "", "optional path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		logger.Info("shutdown signal received")
		cancel()
	}()

	client, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		logger.Fatal("spanner client", zap.Error(err))
	}
	defer client.Close()

	clk := clock.RealClock{}
	cartRepo := repo.NewCartRepo()
	orderRepo := repo.NewOrderRepo()
	slipRepo := repo.NewPaymentSlipRepo()
	productRepo := repo.NewProductRepo()
	outboxRepo := repo.NewOutboxRepo()
	cm := committer.NewAdapter(client)
	checkoutStore := repo.NewCheckoutStore(client)
	readModel := queries.NewSpannerReadModel(client)
	roles := queries.NewSpannerRoles(client)

	// CQRS wiring
	cmds := grpcshop.Commands{
		GetOrCreateCart: get_or_create_cart.NewInteractor(cartRepo, cm, readModel, clk),
		AddCartItem:     add_cart_item.NewInteractor(cartRepo, cm, readModel, readModel, clk),
		SetItemQuantity: set_cart_item_quantity.NewInteractor(cartRepo, cm, readModel),
		RemoveCartItem:  remove_cart_item.NewInteractor(cartRepo, cm, readModel),
		Checkout:        checkout.NewInteractor(checkoutStore, cartRepo, orderRepo, productRepo, outboxRepo, clk),
		UpdateStatus:    update_order_status.NewInteractor(orderRepo, outboxRepo, cm, readModel, roles, clk),
		UploadSlip:      upload_payment_slip.NewInteractor(slipRepo, outboxRepo, cm, readModel, clk),
		VerifySlip:      verify_payment_slip.NewInteractor(slipRepo, orderRepo, outboxRepo, cm, readModel, readModel, roles, clk),
		CreateProduct:   create_product.NewInteractor(productRepo, cm, roles, clk),
		UpdateProduct:   update_product.NewInteractor(productRepo, cm, readModel, roles, clk),
		UpdateOrderAddr: update_delivery_address.NewInteractor(orderRepo, cm, readModel, roles),
	}
	qrys := grpcshop.Queries{
		CartTotal:       get_cart_total.NewHandler(readModel),
		OrderDetail:     get_order_detail.NewHandler(readModel, roles),
		ListOrders:      list_orders.NewHandler(readModel, roles),
		UnverifiedSlips: list_unverified_slips.NewHandler(readModel, roles),
		GetProduct:      get_product.NewHandler(readModel),
		ListProducts:    list_products.NewHandler(readModel),
	}
	handler := grpcshop.NewHandler(cmds, qrys)

	// Outbox dispatcher drains committed events in the background.
	dispatcher := outbox.NewDispatcher(
		repo.NewOutboxStore(client),
		&outbox.LogNotifier{Log: logger},
		logger,
		clk,
		cfg.Outbox.PollInterval,
		cfg.Outbox.BatchSize,
	)
	go dispatcher.Run(ctx)

	// HTTP gateway carries the public API surface.
	gateway := httptransport.NewGateway(handler, logger)
	go func() {
		if err := gateway.Start(cfg.Server.HTTPAddr); err != nil {
			logger.Error("http gateway", zap.Error(err))
			cancel()
		}
	}()

	// gRPC side serves health and reflection; the service surface itself is
	// registered by the generated bindings once the API proto lands.
	srv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	reflection.Register(srv)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Fatal("listen", zap.String("addr", cfg.Server.GRPCAddr), zap.Error(err))
	}

	go func() {
		logger.Info("gRPC server listening", zap.String("addr", cfg.Server.GRPCAddr))
		if err := srv.Serve(lis); err != nil {
			logger.Error("grpc serve", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	healthSrv.Shutdown()
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		srv.Stop()
	}

	logger.Info("server stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
