package get_order_detail

import (
	"context"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
)

// Handler serves the order detail view to the order's owner or to an admin.
type Handler struct {
	queries contracts.Queries
	roles   contracts.Roles
}

func NewHandler(q contracts.Queries, roles contracts.Roles) *Handler {
	return &Handler{queries: q, roles: roles}
}

func (h *Handler) Execute(ctx context.Context, callerID, orderID string) (*dto.OrderDetailDTO, error) {
	if callerID == "" {
		return nil, domain.ErrAuthRequired
	}

	detail, err := h.queries.OrderDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if detail.Order.CustomerID != callerID {
		admin, err := h.roles.IsAdmin(ctx, callerID)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, domain.ErrPermissionDenied
		}
	}

	return detail, nil
}
