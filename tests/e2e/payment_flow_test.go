package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/app/shop/outbox"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/get_order_detail"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/list_unverified_slips"
	"github.com/murkotick/order-processing-service/internal/app/shop/repo"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/add_cart_item"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/checkout"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/create_product"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/update_order_status"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/upload_payment_slip"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/verify_payment_slip"
)

// placeWalletOrder creates a product, fills a fresh cart and checks out
// with wallet-pay, returning the customer and order ids.
func placeWalletOrder(ctx context.Context, t *testing.T) (customer, orderID string) {
	t.Helper()
	customer = newCustomer()
	productID := mustCreateProduct(ctx, t, create_product.Request{
		Name:     "Ceramic Mug",
		Category: "homeware",
		PriceNum: 35000,
		PriceDen: 100,
	})
	require.NoError(t, addItemUC.Execute(ctx, add_cart_item.Request{
		CustomerID: customer, ProductID: productID, Quantity: 1,
	}))
	res, err := checkoutUC.Execute(ctx, checkout.Request{
		CustomerID:    customer,
		PaymentMethod: "wallet-pay",
		FullName:      "Ada Murk",
		Phone:         "+66-81-000-0000",
		Address:       "1 Sukhumvit Rd, Bangkok",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPendingPayment, res.Status)
	return customer, res.OrderID
}

func TestPaymentSlipFlow_UploadVerifyPaid(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	customer, orderID := placeWalletOrder(ctx, t)

	clk.Advance(time.Second)
	slipID, err := uploadSlipUC.Execute(ctx, upload_payment_slip.Request{
		CustomerID: customer,
		OrderID:    orderID,
		ImageRef:   "slips/" + orderID + ".jpg",
	})
	require.NoError(t, err)
	require.NotEmpty(t, slipID)

	// The slip sits in the admin review queue.
	queueQ := list_unverified_slips.NewHandler(readModel, roles)
	queue, err := queueQ.Execute(ctx, adminID, 100, 0)
	require.NoError(t, err)
	found := false
	for _, s := range queue {
		if s.SlipID == slipID {
			found = true
			assert.Equal(t, orderID, s.OrderID)
			assert.Equal(t, customer, s.CustomerID)
		}
	}
	require.True(t, found, "uploaded slip must appear in the review queue")

	clk.Advance(time.Second)
	require.NoError(t, verifySlipUC.Execute(ctx, verify_payment_slip.Request{
		CallerID: adminID,
		SlipID:   slipID,
		Verified: true,
	}))

	// The order moved to paid in the same commit.
	detailQ := get_order_detail.NewHandler(readModel, roles)
	detail, err := detailQ.Execute(ctx, customer, orderID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.OrderStatusPaid), detail.Order.Status)

	// The verified slip is gone from the queue.
	queue, err = queueQ.Execute(ctx, adminID, 100, 0)
	require.NoError(t, err)
	for _, s := range queue {
		assert.NotEqual(t, slipID, s.SlipID)
	}

	events := mustFetchOutboxEvents(ctx, t, spClient, orderID)
	require.Len(t, events, 3)
	assert.Equal(t, "order.created", events[0].EventType)
	assert.Equal(t, "payment_slip.uploaded", events[1].EventType)
	assert.Equal(t, "order.status_changed", events[2].EventType)
}

func TestPaymentSlipFlow_RejectionKeepsOrderPending(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	customer, orderID := placeWalletOrder(ctx, t)

	clk.Advance(time.Second)
	slipID, err := uploadSlipUC.Execute(ctx, upload_payment_slip.Request{
		CustomerID: customer,
		OrderID:    orderID,
		ImageRef:   "slips/" + orderID + ".jpg",
	})
	require.NoError(t, err)

	clk.Advance(time.Second)
	require.NoError(t, verifySlipUC.Execute(ctx, verify_payment_slip.Request{
		CallerID: adminID,
		SlipID:   slipID,
		Verified: false,
	}))

	detailQ := get_order_detail.NewHandler(readModel, roles)
	detail, err := detailQ.Execute(ctx, customer, orderID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.OrderStatusPendingPayment), detail.Order.Status)

	// A rejected slip stays in the queue for resubmission review.
	queueQ := list_unverified_slips.NewHandler(readModel, roles)
	queue, err := queueQ.Execute(ctx, adminID, 100, 0)
	require.NoError(t, err)
	found := false
	for _, s := range queue {
		if s.SlipID == slipID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestOrderStatusProgressionRaisesNotifications(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	customer, orderID := placeWalletOrder(ctx, t)

	clk.Advance(time.Second)
	require.NoError(t, updateStatusUC.Execute(ctx, update_order_status.Request{
		CallerID: adminID, OrderID: orderID, NewStatus: "paid",
	}))
	clk.Advance(time.Second)
	require.NoError(t, updateStatusUC.Execute(ctx, update_order_status.Request{
		CallerID: adminID, OrderID: orderID, NewStatus: "shipped",
	}))
	// Repeating the current status writes nothing and raises nothing.
	clk.Advance(time.Second)
	require.NoError(t, updateStatusUC.Execute(ctx, update_order_status.Request{
		CallerID: adminID, OrderID: orderID, NewStatus: "shipped",
	}))

	detailQ := get_order_detail.NewHandler(readModel, roles)
	detail, err := detailQ.Execute(ctx, customer, orderID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.OrderStatusShipped), detail.Order.Status)

	events := mustFetchOutboxEvents(ctx, t, spClient, orderID)
	require.Len(t, events, 3)
	assert.Equal(t, "order.created", events[0].EventType)
	assert.Equal(t, "order.status_changed", events[1].EventType)
	assert.Equal(t, "order.status_changed", events[2].EventType)
}

func TestOutboxDispatcherDrainsPendingEvents(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, orderID := placeWalletOrder(ctx, t)

	d := outbox.NewDispatcher(
		repo.NewOutboxStore(spClient),
		&outbox.LogNotifier{Log: zap.NewNop()},
		zap.NewNop(),
		clk,
		time.Second,
		100,
	)
	require.NoError(t, d.DispatchOnce(ctx))

	events := mustFetchOutboxEvents(ctx, t, spClient, orderID)
	require.NotEmpty(t, events)
	for _, e := range events {
		assert.Equal(t, "processed", e.Status)
	}
}
