package upload_payment_slip

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	shared "github.com/murkotick/order-processing-service/internal/app/shop/usecases/shared"
	"github.com/murkotick/order-processing-service/internal/pkg/clock"
	commitplan "github.com/murkotick/order-processing-service/internal/pkg/committer"
)

// Request attaches uploaded payment proof to the caller's own order.
// ImageRef points at already-stored slip media; this service never
// handles the bytes themselves.
type Request struct {
	CustomerID string
	OrderID    string
	ImageRef   string
}

type Interactor struct {
	SlipRepo   contracts.PaymentSlipRepo
	OutboxRepo contracts.OutboxRepo
	Committer  contracts.Committer
	OrderReads contracts.OrderReads
	Clock      clock.Clock
}

func NewInteractor(slipRepo contracts.PaymentSlipRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, orderReads contracts.OrderReads, clk clock.Clock) *Interactor {
	return &Interactor{
		SlipRepo:   slipRepo,
		OutboxRepo: outboxRepo,
		Committer:  committer,
		OrderReads: orderReads,
		Clock:      clk,
	}
}

// Execute stores the slip and queues the review notification. Repeated
// uploads for one order each get their own slip row; the review queue
// shows them all.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	if req.CustomerID == "" {
		return "", domain.ErrAuthRequired
	}

	order, err := it.OrderReads.Order(ctx, req.OrderID)
	if err != nil {
		return "", err
	}
	if order.CustomerID != req.CustomerID {
		return "", domain.ErrPermissionDenied
	}

	now := it.Clock.Now()

	slip, err := domain.NewPaymentSlip(uuid.New().String(), req.OrderID, req.ImageRef, now)
	if err != nil {
		return "", err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.SlipRepo.InsertMut(slip))

	for _, ev := range slip.DomainEvents() {
		payload, err := shared.MarshalDomainEventPayload(ev)
		if err != nil {
			return "", err
		}
		plan.Add(it.OutboxRepo.InsertMut(&contracts.OutboxEvent{
			EventID:      uuid.New().String(),
			EventType:    ev.EventType(),
			AggregateID:  ev.AggregateID(),
			PayloadJSON:  payload,
			Status:       "pending",
			CreatedAtUTC: now,
		}))
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}

	return slip.ID(), nil
}
