package verify_payment_slip

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	shared "github.com/murkotick/order-processing-service/internal/app/shop/usecases/shared"
	"github.com/murkotick/order-processing-service/internal/pkg/clock"
	commitplan "github.com/murkotick/order-processing-service/internal/pkg/committer"
)

// Request records the admin verdict on a payment slip.
type Request struct {
	CallerID string
	SlipID   string
	Verified bool
}

// Interactor reviews a slip. Accepting it also moves the order to paid;
// both writes and the notification event land in one commit. Rejecting
// only records the verdict, the order stays where it was.
type Interactor struct {
	SlipRepo   contracts.PaymentSlipRepo
	OrderRepo  contracts.OrderRepo
	OutboxRepo contracts.OutboxRepo
	Committer  contracts.Committer
	SlipReads  contracts.SlipReads
	OrderReads contracts.OrderReads
	Roles      contracts.Roles
	Clock      clock.Clock
}

func NewInteractor(slipRepo contracts.PaymentSlipRepo, orderRepo contracts.OrderRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, slipReads contracts.SlipReads, orderReads contracts.OrderReads, roles contracts.Roles, clk clock.Clock) *Interactor {
	return &Interactor{
		SlipRepo:   slipRepo,
		OrderRepo:  orderRepo,
		OutboxRepo: outboxRepo,
		Committer:  committer,
		SlipReads:  slipReads,
		OrderReads: orderReads,
		Roles:      roles,
		Clock:      clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	if err := shared.RequireAdmin(ctx, it.Roles, req.CallerID); err != nil {
		return err
	}

	now := it.Clock.Now()

	slipDTO, err := it.SlipReads.Slip(ctx, req.SlipID)
	if err != nil {
		return err
	}

	slip := shared.SlipFromDTO(slipDTO)
	slip.Review(req.Verified, now)

	plan := commitplan.NewPlan()
	plan.Add(it.SlipRepo.UpdateMut(slip))

	events := slip.DomainEvents()

	if req.Verified {
		orderDTO, err := it.OrderReads.Order(ctx, slip.OrderID())
		if err != nil {
			return err
		}
		order, err := shared.OrderFromDTO(orderDTO)
		if err != nil {
			return err
		}
		if order.ChangeStatus(domain.OrderStatusPaid, now) {
			plan.Add(it.OrderRepo.UpdateStatusMut(order))
			events = append(events, order.DomainEvents()...)
		}
	}

	for _, ev := range events {
		payload, err := shared.MarshalDomainEventPayload(ev)
		if err != nil {
			return err
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

	return it.Committer.Apply(ctx, plan)
}
