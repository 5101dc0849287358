package get_product

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

func (h *Handler) Execute(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return h.queries.GetProduct(ctx, productID)
}
