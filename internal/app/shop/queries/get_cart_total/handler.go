package get_cart_total

import (
	"context"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
)

type Handler struct {
	queries contracts.Queries
}

func NewHandler(q contracts.Queries) *Handler {
	return &Handler{queries: q}
}

func (h *Handler) Execute(ctx context.Context, customerID string) (*dto.CartTotalDTO, error) {
	if customerID == "" {
		return nil, domain.ErrAuthRequired
	}
	return h.queries.CartTotal(ctx, customerID)
}
