package create_product

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	shared "github.com/murkotick/order-processing-service/internal/app/shop/usecases/shared"
	"github.com/murkotick/order-processing-service/internal/pkg/clock"
	commitplan "github.com/murkotick/order-processing-service/internal/pkg/committer"
)

// Request is the application-level create-product request. Admin only.
type Request struct {
	CallerID   string
	Name       string
	Category   string
	PriceNum   int64 // numerator
	PriceDen   int64 // denominator
	Stock      *int64
	IsPreorder bool
	Sizes      []string
	Colors     []string
}

type Interactor struct {
	ProductRepo contracts.ProductRepo
	Committer   contracts.Committer
	Roles       contracts.Roles
	Clock       clock.Clock
}

func NewInteractor(productRepo contracts.ProductRepo, committer contracts.Committer, roles contracts.Roles, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: productRepo,
		Committer:   committer,
		Roles:       roles,
		Clock:       clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	if err := shared.RequireAdmin(ctx, it.Roles, req.CallerID); err != nil {
		return "", err
	}

	now := it.Clock.Now()

	price := domain.NewMoney(req.PriceNum, req.PriceDen)
	product, err := domain.NewProduct(uuid.New().String(), req.Name, req.Category,
		price, req.Stock, req.IsPreorder, req.Sizes, req.Colors, now)
	if err != nil {
		return "", err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.InsertMut(product))

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}

	return product.ID(), nil
}
