package verify_payment_slip

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
	"github.com/murkotick/order-processing-service/internal/app/shop/repo"
	"github.com/murkotick/order-processing-service/internal/pkg/clock"
	commitplan "github.com/murkotick/order-processing-service/internal/pkg/committer"
)

type fakeCommitter struct {
	plans []*commitplan.Plan
}

func (f *fakeCommitter) Apply(_ context.Context, plan *commitplan.Plan) error {
	f.plans = append(f.plans, plan)
	return nil
}

type fakeSlipReads struct {
	slip *dto.PaymentSlipDTO
	err  error
}

func (f *fakeSlipReads) Slip(_ context.Context, _ string) (*dto.PaymentSlipDTO, error) {
	return f.slip, f.err
}

type fakeOrderReads struct {
	order *dto.OrderDTO
	calls int
}

func (f *fakeOrderReads) Order(_ context.Context, _ string) (*dto.OrderDTO, error) {
	f.calls++
	return f.order, nil
}

type fakeRoles struct{}

func (fakeRoles) IsAdmin(_ context.Context, customerID string) (bool, error) {
	return customerID == "admin-1", nil
}

func slipDTO() *dto.PaymentSlipDTO {
	uploaded := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC).Format(time.RFC3339)
	return &dto.PaymentSlipDTO{
		SlipID:     "slip-1",
		OrderID:    "order-1",
		ImageRef:   "slips/abc.jpg",
		Verified:   false,
		UploadedAt: &uploaded,
	}
}

func orderDTO(status string) *dto.OrderDTO {
	created := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC).Format(time.RFC3339)
	return &dto.OrderDTO{
		OrderID:       "order-1",
		CustomerID:    "cust-1",
		TotalNum:      250000,
		TotalDen:      100,
		PaymentMethod: "wallet-pay",
		Status:        status,
		CreatedAt:     &created,
		UpdatedAt:     &created,
	}
}

func newTestInteractor(slips *fakeSlipReads, orders *fakeOrderReads, cm *fakeCommitter) *Interactor {
	return NewInteractor(
		repo.NewPaymentSlipRepo(),
		repo.NewOrderRepo(),
		repo.NewOutboxRepo(),
		cm,
		slips,
		orders,
		fakeRoles{},
		clock.NewFake(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)),
	)
}

// TestVerify_AcceptMovesOrderToPaid: accepting a slip updates the slip,
// moves the order to paid and queues the notification, all in one plan.
func TestVerify_AcceptMovesOrderToPaid(t *testing.T) {
	cm := &fakeCommitter{}
	orders := &fakeOrderReads{order: orderDTO("pending_payment")}
	it := newTestInteractor(&fakeSlipReads{slip: slipDTO()}, orders, cm)

	err := it.Execute(context.Background(), Request{CallerID: "admin-1", SlipID: "slip-1", Verified: true})
	require.NoError(t, err)

	require.Len(t, cm.plans, 1)
	// slip update + order status update + one outbox event
	assert.Len(t, cm.plans[0].Mutations(), 3)
}

// TestVerify_RejectTouchesOnlySlip: rejection records the verdict and
// leaves the order untouched.
func TestVerify_RejectTouchesOnlySlip(t *testing.T) {
	cm := &fakeCommitter{}
	orders := &fakeOrderReads{order: orderDTO("pending_payment")}
	it := newTestInteractor(&fakeSlipReads{slip: slipDTO()}, orders, cm)

	err := it.Execute(context.Background(), Request{CallerID: "admin-1", SlipID: "slip-1", Verified: false})
	require.NoError(t, err)

	require.Len(t, cm.plans, 1)
	assert.Len(t, cm.plans[0].Mutations(), 1)
	assert.Zero(t, orders.calls)
}

// TestVerify_AcceptOnPaidOrderSkipsStatusWrite: verifying a second slip
// for an already-paid order re-records the verdict but writes no status
// change and raises nothing.
func TestVerify_AcceptOnPaidOrderSkipsStatusWrite(t *testing.T) {
	cm := &fakeCommitter{}
	orders := &fakeOrderReads{order: orderDTO("paid")}
	it := newTestInteractor(&fakeSlipReads{slip: slipDTO()}, orders, cm)

	err := it.Execute(context.Background(), Request{CallerID: "admin-1", SlipID: "slip-1", Verified: true})
	require.NoError(t, err)

	require.Len(t, cm.plans, 1)
	assert.Len(t, cm.plans[0].Mutations(), 1)
}

func TestVerify_RequiresAdmin(t *testing.T) {
	cm := &fakeCommitter{}
	it := newTestInteractor(&fakeSlipReads{slip: slipDTO()}, &fakeOrderReads{}, cm)

	err := it.Execute(context.Background(), Request{CallerID: "cust-1", SlipID: "slip-1", Verified: true})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.Empty(t, cm.plans)
}

func TestVerify_SlipNotFound(t *testing.T) {
	cm := &fakeCommitter{}
	it := newTestInteractor(&fakeSlipReads{err: domain.ErrSlipNotFound}, &fakeOrderReads{}, cm)

	err := it.Execute(context.Background(), Request{CallerID: "admin-1", SlipID: "nope", Verified: true})
	assert.ErrorIs(t, err, domain.ErrSlipNotFound)
}
