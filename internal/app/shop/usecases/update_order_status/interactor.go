package update_order_status

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	shared "github.com/murkotick/order-processing-service/internal/app/shop/usecases/shared"
	"github.com/murkotick/order-processing-service/internal/pkg/clock"
	commitplan "github.com/murkotick/order-processing-service/internal/pkg/committer"
)

// Request moves an order to a new lifecycle status. Admin only.
type Request struct {
	CallerID  string
	OrderID   string
	NewStatus string
}

// Interactor applies the status change and persists the matching
// notification event in the same commit. Setting the status an order
// already has writes nothing and raises nothing.
type Interactor struct {
	OrderRepo  contracts.OrderRepo
	OutboxRepo contracts.OutboxRepo
	Committer  contracts.Committer
	OrderReads contracts.OrderReads
	Roles      contracts.Roles
	Clock      clock.Clock
}

func NewInteractor(orderRepo contracts.OrderRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, orderReads contracts.OrderReads, roles contracts.Roles, clk clock.Clock) *Interactor {
	return &Interactor{
		OrderRepo:  orderRepo,
		OutboxRepo: outboxRepo,
		Committer:  committer,
		OrderReads: orderReads,
		Roles:      roles,
		Clock:      clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	if err := shared.RequireAdmin(ctx, it.Roles, req.CallerID); err != nil {
		return err
	}

	newStatus, err := domain.ParseOrderStatus(req.NewStatus)
	if err != nil {
		return err
	}

	now := it.Clock.Now()

	dtoOut, err := it.OrderReads.Order(ctx, req.OrderID)
	if err != nil {
		return err
	}

	order, err := shared.OrderFromDTO(dtoOut)
	if err != nil {
		return err
	}

	if !order.ChangeStatus(newStatus, now) {
		return nil
	}

	plan := commitplan.NewPlan()
	plan.Add(it.OrderRepo.UpdateStatusMut(order))

	for _, ev := range order.DomainEvents() {
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
