package add_cart_item

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

// Request adds a product variant to the customer's cart.
type Request struct {
	CustomerID string
	ProductID  string
	Quantity   int64
	Size       string
	Color      string
}

// Interactor merges the selection into an existing line of the same
// (product, size, color) variant, or inserts a new line. The composite
// primary key on cart_items is the safety net: two concurrent first adds
// of the same variant collide there and the loser reports a conflict.
type Interactor struct {
	CartRepo     contracts.CartRepo
	Committer    contracts.Committer
	CartReads    contracts.CartReads
	ProductReads contracts.ProductReads
	Clock        clock.Clock
}

func NewInteractor(cartRepo contracts.CartRepo, committer contracts.Committer, cartReads contracts.CartReads, productReads contracts.ProductReads, clk clock.Clock) *Interactor {
	return &Interactor{
		CartRepo:     cartRepo,
		Committer:    committer,
		CartReads:    cartReads,
		ProductReads: productReads,
		Clock:        clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	if req.CustomerID == "" {
		return domain.ErrAuthRequired
	}

	// The product must exist; adding to cart does not require it to be
	// active, deactivation only hides it from totals.
	if _, err := it.ProductReads.Product(ctx, req.ProductID); err != nil {
		return err
	}

	now := it.Clock.Now()
	plan := commitplan.NewPlan()

	cartDTO, ok, err := it.CartReads.CartByCustomer(ctx, req.CustomerID)
	if err != nil {
		return err
	}

	var cartID string
	if ok {
		cartID = cartDTO.CartID
	} else {
		cart, err := domain.NewCart(uuid.New().String(), req.CustomerID, now)
		if err != nil {
			return err
		}
		cartID = cart.ID()
		plan.Add(it.CartRepo.InsertMut(cart))
	}

	item, err := domain.NewCartItem(cartID, req.ProductID, req.Quantity, req.Size, req.Color)
	if err != nil {
		return err
	}

	if ok {
		existing, found, err := it.CartReads.CartItem(ctx, cartID, item.ProductID(), item.Size(), item.Color())
		if err != nil {
			return err
		}
		if found {
			merged, err := domain.NewCartItem(cartID, item.ProductID(), existing.Quantity, item.Size(), item.Color())
			if err != nil {
				return err
			}
			if err := merged.Merge(req.Quantity); err != nil {
				return err
			}
			plan.Add(it.CartRepo.UpdateItemQuantityMut(merged))

			return it.Committer.Apply(ctx, plan)
		}
	}

	plan.Add(it.CartRepo.InsertItemMut(item, now))

	if err := it.Committer.Apply(ctx, plan); err != nil {
		// Lost a race on the variant's primary key (or on cart creation).
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}
