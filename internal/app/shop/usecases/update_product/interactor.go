package update_product

import (
	"context"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	shared "github.com/murkotick/order-processing-service/internal/app/shop/usecases/shared"
	"github.com/murkotick/order-processing-service/internal/app/shop/utils"
	"github.com/murkotick/order-processing-service/internal/pkg/clock"
	commitplan "github.com/murkotick/order-processing-service/internal/pkg/committer"
)

// Request carries a partial product update. Nil pointers leave the field
// untouched. Admin only.
//
// A price change affects future carts and checkouts only; order lines
// already written keep their locked price.
type Request struct {
	CallerID  string
	ProductID string

	Name     *string
	Category *string
	PriceNum *int64
	PriceDen *int64

	// Stock is an absolute restock value. StockSet distinguishes
	// "set stock to nil (untracked)" from "leave stock alone".
	Stock    *int64
	StockSet bool

	IsPreorder *bool
	IsActive   *bool
	Sizes      []string
	Colors     []string
}

// Interactor applies partial updates through the aggregate's change
// tracker, so the commit touches only the columns that moved.
type Interactor struct {
	ProductRepo  contracts.ProductRepo
	Committer    contracts.Committer
	ProductReads contracts.ProductReads
	Roles        contracts.Roles
	Clock        clock.Clock
}

func NewInteractor(productRepo contracts.ProductRepo, committer contracts.Committer, productReads contracts.ProductReads, roles contracts.Roles, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo:  productRepo,
		Committer:    committer,
		ProductReads: productReads,
		Roles:        roles,
		Clock:        clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	if err := shared.RequireAdmin(ctx, it.Roles, req.CallerID); err != nil {
		return err
	}

	now := it.Clock.Now()

	dtoOut, err := it.ProductReads.Product(ctx, req.ProductID)
	if err != nil {
		return err
	}

	product := domain.ReconstructProduct(
		dtoOut.ProductID,
		dtoOut.Name,
		dtoOut.Category,
		domain.NewMoney(dtoOut.PriceNum, dtoOut.PriceDen),
		dtoOut.Stock,
		dtoOut.IsPreorder,
		dtoOut.IsActive,
		dtoOut.Sizes,
		dtoOut.Colors,
		utils.TimeOrZero(utils.ParseTimePtr(dtoOut.CreatedAt)),
		utils.TimeOrZero(utils.ParseTimePtr(dtoOut.UpdatedAt)),
	)

	updName := ""
	if req.Name != nil {
		updName = *req.Name
	}
	updCategory := ""
	if req.Category != nil {
		updCategory = *req.Category
	}
	if err := product.UpdateDetails(updName, updCategory, req.Sizes, req.Colors, now); err != nil {
		return err
	}

	if req.PriceNum != nil && req.PriceDen != nil {
		if err := product.UpdatePrice(domain.NewMoney(*req.PriceNum, *req.PriceDen), now); err != nil {
			return err
		}
	}

	if req.StockSet {
		product.SetStock(req.Stock, now)
	}

	if req.IsPreorder != nil {
		product.SetPreorder(*req.IsPreorder, now)
	}

	if req.IsActive != nil {
		if *req.IsActive {
			product.Activate(now)
		} else {
			product.Deactivate(now)
		}
	}

	mut := it.ProductRepo.UpdateMut(product)
	if mut == nil {
		return nil
	}

	plan := commitplan.NewPlan()
	plan.Add(mut)

	return it.Committer.Apply(ctx, plan)
}
