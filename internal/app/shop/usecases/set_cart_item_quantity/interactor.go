package set_cart_item_quantity

import (
	"context"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	commitplan "github.com/murkotick/order-processing-service/internal/pkg/committer"
)

// Request rewrites one cart line's quantity. A quantity of zero or less
// removes the line.
type Request struct {
	CustomerID string
	ProductID  string
	Size       string
	Color      string
	Quantity   int64
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
		return domain.ErrCartItemNotFound
	}

	// Normalize the variant key through the domain constructor; the
	// quantity passed is a placeholder when the request is a removal.
	probe, err := domain.NewCartItem(cart.CartID, req.ProductID, 1, req.Size, req.Color)
	if err != nil {
		return err
	}

	_, found, err := it.CartReads.CartItem(ctx, cart.CartID, probe.ProductID(), probe.Size(), probe.Color())
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrCartItemNotFound
	}

	plan := commitplan.NewPlan()

	if req.Quantity <= 0 {
		plan.Add(it.CartRepo.DeleteItemMut(cart.CartID, probe.ProductID(), probe.Size(), probe.Color()))
	} else {
		item, err := domain.NewCartItem(cart.CartID, req.ProductID, req.Quantity, req.Size, req.Color)
		if err != nil {
			return err
		}
		plan.Add(it.CartRepo.UpdateItemQuantityMut(item))
	}

	return it.Committer.Apply(ctx, plan)
}
