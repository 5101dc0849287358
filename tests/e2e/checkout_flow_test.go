package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/get_cart_total"
	"github.com/murkotick/order-processing-service/internal/app/shop/queries/get_order_detail"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/add_cart_item"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/checkout"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/create_product"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/get_or_create_cart"
	"github.com/murkotick/order-processing-service/internal/app/shop/usecases/update_product"
)

func TestCheckoutFlow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	customer := newCustomer()

	stock := int64(10)
	tracked := mustCreateProduct(ctx, t, create_product.Request{
		Name:     "Canvas Tote",
		Category: "bags",
		PriceNum: 100000,
		PriceDen: 100,
		Stock:    &stock,
		Sizes:    []string{"one-size"},
		Colors:   []string{"natural", "black"},
	})
	preorder := mustCreateProduct(ctx, t, create_product.Request{
		Name:       "Enamel Pin",
		Category:   "accessories",
		PriceNum:   50000,
		PriceDen:   100,
		IsPreorder: true,
	})

	// Two variants of the tracked product plus a preorder line.
	require.NoError(t, addItemUC.Execute(ctx, add_cart_item.Request{
		CustomerID: customer, ProductID: tracked, Quantity: 2, Size: "one-size", Color: "natural",
	}))
	require.NoError(t, addItemUC.Execute(ctx, add_cart_item.Request{
		CustomerID: customer, ProductID: tracked, Quantity: 3, Size: "one-size", Color: "black",
	}))
	require.NoError(t, addItemUC.Execute(ctx, add_cart_item.Request{
		CustomerID: customer, ProductID: preorder, Quantity: 1,
	}))

	totalQ := get_cart_total.NewHandler(readModel)
	total, err := totalQ.Execute(ctx, customer)
	require.NoError(t, err)
	assert.Equal(t, "5500.00", total.Decimal)

	res, err := checkoutUC.Execute(ctx, checkout.Request{
		CustomerID:    customer,
		PaymentMethod: "cash-on-delivery",
		FullName:      "Ada Murk",
		Phone:         "+66-81-000-0000",
		Address:       "1 Sukhumvit Rd, Bangkok",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.OrderID)
	assert.Equal(t, domain.OrderStatusPendingConfirmation, res.Status)
	assert.Equal(t, "5500.00", res.Total.String())

	// Tracked stock decremented once by the summed variant quantities;
	// preorder stock untouched (still NULL).
	assert.Equal(t, int64(5), readStock(ctx, t, tracked).Int64)
	assert.False(t, readStock(ctx, t, preorder).Valid)

	// Cart is drained but survives for reuse.
	cartID, err := getCartUC.Execute(ctx, get_or_create_cart.Request{CustomerID: customer})
	require.NoError(t, err)
	assert.Zero(t, countCartLines(ctx, t, cartID))

	// Order detail carries the price-locked lines and the address.
	detailQ := get_order_detail.NewHandler(readModel, roles)
	detail, err := detailQ.Execute(ctx, customer, res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, customer, detail.Order.CustomerID)
	assert.Len(t, detail.Items, 3)
	require.NotNil(t, detail.Address)
	assert.Equal(t, "Ada Murk", detail.Address.FullName)

	// Cash-on-delivery enters at pending_confirmation with no notification.
	events := mustFetchOutboxEvents(ctx, t, spClient, res.OrderID)
	require.Len(t, events, 1)
	assert.Equal(t, "order.created", events[0].EventType)
	assert.Equal(t, "pending", events[0].Status)
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	customer := newCustomer()
	_, err := getCartUC.Execute(ctx, get_or_create_cart.Request{CustomerID: customer})
	require.NoError(t, err)

	_, err = checkoutUC.Execute(ctx, checkout.Request{
		CustomerID:    customer,
		PaymentMethod: "wallet-pay",
		FullName:      "Ada Murk",
		Phone:         "+66-81-000-0000",
		Address:       "1 Sukhumvit Rd, Bangkok",
	})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

// Order lines lock the price at checkout time. A later catalog price
// change must not reprice an order already placed.
func TestCheckout_PriceLockedAgainstLaterChange(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	customer := newCustomer()
	productID := mustCreateProduct(ctx, t, create_product.Request{
		Name:     "Linen Shirt",
		Category: "clothing",
		PriceNum: 79900,
		PriceDen: 100,
	})

	require.NoError(t, addItemUC.Execute(ctx, add_cart_item.Request{
		CustomerID: customer, ProductID: productID, Quantity: 1, Size: "M", Color: "white",
	}))

	res, err := checkoutUC.Execute(ctx, checkout.Request{
		CustomerID:    customer,
		PaymentMethod: "wallet-pay",
		FullName:      "Ada Murk",
		Phone:         "+66-81-000-0000",
		Address:       "1 Sukhumvit Rd, Bangkok",
	})
	require.NoError(t, err)
	assert.Equal(t, "799.00", res.Total.String())

	num := int64(99900)
	den := int64(100)
	require.NoError(t, updateProductUC.Execute(ctx, update_product.Request{
		CallerID:  adminID,
		ProductID: productID,
		PriceNum:  &num,
		PriceDen:  &den,
	}))

	detailQ := get_order_detail.NewHandler(readModel, roles)
	detail, err := detailQ.Execute(ctx, customer, res.OrderID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, int64(79900), detail.Items[0].PriceNum)
	assert.Equal(t, int64(100), detail.Items[0].PriceDen)
}

// Deactivated products drop out of the live cart total but checkout
// still honours the line that was already in the basket.
func TestCartTotal_ExcludesDeactivatedProducts(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	customer := newCustomer()
	keepID := mustCreateProduct(ctx, t, create_product.Request{
		Name:     "Wool Scarf",
		Category: "accessories",
		PriceNum: 30000,
		PriceDen: 100,
	})
	dropID := mustCreateProduct(ctx, t, create_product.Request{
		Name:     "Felt Hat",
		Category: "accessories",
		PriceNum: 45000,
		PriceDen: 100,
	})

	require.NoError(t, addItemUC.Execute(ctx, add_cart_item.Request{
		CustomerID: customer, ProductID: keepID, Quantity: 1,
	}))
	require.NoError(t, addItemUC.Execute(ctx, add_cart_item.Request{
		CustomerID: customer, ProductID: dropID, Quantity: 1,
	}))

	inactive := false
	require.NoError(t, updateProductUC.Execute(ctx, update_product.Request{
		CallerID:  adminID,
		ProductID: dropID,
		IsActive:  &inactive,
	}))

	totalQ := get_cart_total.NewHandler(readModel)
	total, err := totalQ.Execute(ctx, customer)
	require.NoError(t, err)
	assert.Equal(t, "300.00", total.Decimal)
}
