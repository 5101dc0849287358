package get_or_create_cart

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/pkg/clock"
	commitplan "github.com/murkotick/order-processing-service/internal/pkg/committer"
)

// Request identifies the customer whose cart is wanted.
type Request struct {
	CustomerID string
}

// Interactor returns the customer's cart, creating it on first use. The
// unique index on carts(customer_id) is the backstop for concurrent first
// calls: the loser's insert aborts and it re-reads the winner's cart.
type Interactor struct {
	CartRepo  contracts.CartRepo
	Committer contracts.Committer
	CartReads contracts.CartReads
	Clock     clock.Clock
}

func NewInteractor(cartRepo contracts.CartRepo, committer contracts.Committer, cartReads contracts.CartReads, clk clock.Clock) *Interactor {
	return &Interactor{
		CartRepo:  cartRepo,
		Committer: committer,
		CartReads: cartReads,
		Clock:     clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	if req.CustomerID == "" {
		return "", domain.ErrAuthRequired
	}

	existing, ok, err := it.CartReads.CartByCustomer(ctx, req.CustomerID)
	if err != nil {
		return "", err
	}
	if ok {
		return existing.CartID, nil
	}

	now := it.Clock.Now()
	cart, err := domain.NewCart(uuid.New().String(), req.CustomerID, now)
	if err != nil {
		return "", err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.CartRepo.InsertMut(cart))

	if err := it.Committer.Apply(ctx, plan); err != nil {
		if spanner.ErrCode(err) == codes.AlreadyExists {
			winner, ok, rerr := it.CartReads.CartByCustomer(ctx, req.CustomerID)
			if rerr != nil {
				return "", rerr
			}
			if ok {
				return winner.CartID, nil
			}
		}
		return "", err
	}

	return cart.ID(), nil
}
