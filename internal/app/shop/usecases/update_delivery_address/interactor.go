package update_delivery_address

import (
	"context"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	commitplan "github.com/murkotick/order-processing-service/internal/pkg/committer"
)

// Request corrects the contact fields on an order. Allowed for the
// order's owner and for admins; the order's items and total stay frozen.
type Request struct {
	CallerID string
	OrderID  string

	FullName string
	Phone    string
	Address  string
}

type Interactor struct {
	OrderRepo  contracts.OrderRepo
	Committer  contracts.Committer
	OrderReads contracts.OrderReads
	Roles      contracts.Roles
}

func NewInteractor(orderRepo contracts.OrderRepo, committer contracts.Committer, orderReads contracts.OrderReads, roles contracts.Roles) *Interactor {
	return &Interactor{
		OrderRepo:  orderRepo,
		Committer:  committer,
		OrderReads: orderReads,
		Roles:      roles,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	if req.CallerID == "" {
		return domain.ErrAuthRequired
	}

	order, err := it.OrderReads.Order(ctx, req.OrderID)
	if err != nil {
		return err
	}

	if order.CustomerID != req.CallerID {
		admin, err := it.Roles.IsAdmin(ctx, req.CallerID)
		if err != nil {
			return err
		}
		if !admin {
			return domain.ErrPermissionDenied
		}
	}

	addr, err := domain.NewDeliveryAddress(req.FullName, req.Phone, req.Address)
	if err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.OrderRepo.UpdateAddressMut(req.OrderID, addr))

	return it.Committer.Apply(ctx, plan)
}
