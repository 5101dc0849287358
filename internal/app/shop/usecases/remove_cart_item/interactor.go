package remove_cart_item

import (
	"context"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	commitplan "github.com/murkotick/order-processing-service/internal/pkg/committer"
)

// Request removes one variant line from the customer's cart. Removing an
// absent line is a no-op, not an error.
type Request struct {
	CustomerID string
	ProductID  string
	Size       string
	Color      string
}

type Interactor struct {
	CartRepo  contracts.CartRepo
	Committer contracts.Committer
	CartReads contracts.CartReads
}

func NewInteractor(cartRepo contracts.CartRepo, committer contracts.Committer, cartReads contracts.CartReads) *Interactor {
	return &Interactor{
		CartRepo:  cartRepo,
		Committer: committer,
		CartReads: cartReads,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	if req.CustomerID == "" {
		return domain.ErrAuthRequired
	}

	cart, ok, err := it.CartReads.CartByCustomer(ctx, req.CustomerID)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	probe, err := domain.NewCartItem(cart.CartID, req.ProductID, 1, req.Size, req.Color)
	if err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.CartRepo.DeleteItemMut(cart.CartID, probe.ProductID(), probe.Size(), probe.Color()))

	return it.Committer.Apply(ctx, plan)
}
