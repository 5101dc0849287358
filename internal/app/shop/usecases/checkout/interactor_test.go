package checkout

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/app/shop/repo"
	"github.com/murkotick/order-processing-service/internal/pkg/clock"
)

// fakeTx replays canned cart state and records what gets buffered.
type fakeTx struct {
	cartID   string
	hasCart  bool
	lines    []contracts.CheckoutLine
	buffered []*spanner.Mutation
}

func (f *fakeTx) CartID(_ context.Context, _ string) (string, bool, error) {
	return f.cartID, f.hasCart, nil
}

func (f *fakeTx) Lines(_ context.Context, _ string) ([]contracts.CheckoutLine, error) {
	return f.lines, nil
}

func (f *fakeTx) Buffer(muts []*spanner.Mutation) error {
	f.buffered = append(f.buffered, muts...)
	return nil
}

type fakeStore struct {
	tx   *fakeTx
	runs int
}

func (f *fakeStore) Run(ctx context.Context, work func(ctx context.Context, tx contracts.CheckoutTx) error) error {
	f.runs++
	return work(ctx, f.tx)
}

func newInteractor(store contracts.CheckoutStore) *Interactor {
	return NewInteractor(store,
		repo.NewCartRepo(),
		repo.NewOrderRepo(),
		repo.NewProductRepo(),
		repo.NewOutboxRepo(),
		clock.NewFake(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)))
}

func validRequest() Request {
	return Request{
		CustomerID:    "cust-1",
		PaymentMethod: "cash-on-delivery",
		FullName:      "Ada Lovelace",
		Phone:         "+66-555-0100",
		Address:       "1 Analytical Way",
	}
}

// TestCheckout_MixedBasket covers the full conversion: a tracked product
// and a preorder product check out together, the preorder line leaves
// stock alone, and the whole write set goes through one buffer.
func TestCheckout_MixedBasket(t *testing.T) {
	stockA := int64(10)
	tx := &fakeTx{
		cartID:  "cart-1",
		hasCart: true,
		lines: []contracts.CheckoutLine{
			{ProductID: "prod-a", Quantity: 2, PriceNum: 100000, PriceDen: 100, Stock: &stockA},
			{ProductID: "prod-b", Quantity: 1, PriceNum: 50000, PriceDen: 100, IsPreorder: true},
		},
	}
	store := &fakeStore{tx: tx}

	res, err := newInteractor(store).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "2500.00", res.Total.String())
	assert.Equal(t, domain.OrderStatusPendingConfirmation, res.Status)
	assert.NotEmpty(t, res.OrderID)

	// order + 2 items + address + 1 stock write + drain + 1 outbox event
	assert.Len(t, tx.buffered, 7)
}

// recordingProductRepo wraps the real repo and captures stock writes.
type recordingProductRepo struct {
	*repo.ProductRepo
	stockWrites map[string][]int64
}

func (r *recordingProductRepo) StockMut(productID string, stock int64, now time.Time) *spanner.Mutation {
	if r.stockWrites == nil {
		r.stockWrites = make(map[string][]int64)
	}
	r.stockWrites[productID] = append(r.stockWrites[productID], stock)
	return r.ProductRepo.StockMut(productID, stock, now)
}

// TestCheckout_MultiVariantAggregatesStockWrite: a tracked product held
// in the cart under two variants decrements once, by the summed
// quantity. Two absolute writes from the same read would land the last
// line's value and double-write the products row in one commit.
func TestCheckout_MultiVariantAggregatesStockWrite(t *testing.T) {
	stockA := int64(10)
	tx := &fakeTx{
		cartID:  "cart-1",
		hasCart: true,
		lines: []contracts.CheckoutLine{
			{ProductID: "prod-a", Quantity: 2, Size: "M", Color: "white", PriceNum: 100000, PriceDen: 100, Stock: &stockA},
			{ProductID: "prod-a", Quantity: 3, Size: "L", Color: "black", PriceNum: 100000, PriceDen: 100, Stock: &stockA},
		},
	}
	store := &fakeStore{tx: tx}
	products := &recordingProductRepo{ProductRepo: repo.NewProductRepo()}

	it := NewInteractor(store,
		repo.NewCartRepo(),
		repo.NewOrderRepo(),
		products,
		repo.NewOutboxRepo(),
		clock.NewFake(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)))

	res, err := it.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "5000.00", res.Total.String())

	assert.Equal(t, []int64{5}, products.stockWrites["prod-a"])
	// order + 2 items + address + 1 stock write + drain + 1 outbox event
	assert.Len(t, tx.buffered, 7)
}

func TestCheckout_UntrackedStockSkipsDecrement(t *testing.T) {
	tx := &fakeTx{
		cartID:  "cart-1",
		hasCart: true,
		lines: []contracts.CheckoutLine{
			{ProductID: "prod-a", Quantity: 3, PriceNum: 999, PriceDen: 100, Stock: nil},
		},
	}
	store := &fakeStore{tx: tx}

	_, err := newInteractor(store).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// order + item + address + drain + outbox; no stock mutation
	assert.Len(t, tx.buffered, 5)
}

func TestCheckout_NoCartIsEmptyCart(t *testing.T) {
	store := &fakeStore{tx: &fakeTx{hasCart: false}}

	_, err := newInteractor(store).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckout_NoLinesIsEmptyCart(t *testing.T) {
	store := &fakeStore{tx: &fakeTx{cartID: "cart-1", hasCart: true}}

	_, err := newInteractor(store).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckout_ValidationBeforeTransaction(t *testing.T) {
	store := &fakeStore{tx: &fakeTx{}}
	it := newInteractor(store)

	req := validRequest()
	req.PaymentMethod = "credit-card"
	_, err := it.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentMethod)

	req = validRequest()
	req.Phone = ""
	_, err = it.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrMissingDeliveryField)

	req = validRequest()
	req.CustomerID = ""
	_, err = it.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)

	// none of the rejected requests should have opened a transaction
	assert.Zero(t, store.runs)
}
