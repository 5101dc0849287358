package list_products

import (
	"context"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
)

type Handler struct {
	queries contracts.Queries
}

func NewHandler(q contracts.Queries) *Handler {
	return &Handler{queries: q}
}

func (h *Handler) Execute(ctx context.Context, category *string, activeOnly bool, limit, offset int) ([]*dto.ProductSummaryDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return h.queries.ListProducts(ctx, category, activeOnly, limit, offset)
}
