package list_orders

import (
	"context"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
)

// Request filters the order listing. CustomerID empty means all customers,
// which only admins may ask for. Status, when set, must be a known status.
type Request struct {
	CallerID   string
	CustomerID string
	Status     *string
	Limit      int
	Offset     int
}

type Handler struct {
	queries contracts.Queries
	roles   contracts.Roles
}

func NewHandler(q contracts.Queries, roles contracts.Roles) *Handler {
	return &Handler{queries: q, roles: roles}
}

func (h *Handler) Execute(ctx context.Context, req Request) ([]*dto.OrderDTO, error) {
	if req.CallerID == "" {
		return nil, domain.ErrAuthRequired
	}

	if req.Status != nil {
		if _, err := domain.ParseOrderStatus(*req.Status); err != nil {
			return nil, err
		}
	}

	// Listing someone else's orders, or all orders, is an admin view.
	if req.CustomerID != req.CallerID {
		admin, err := h.roles.IsAdmin(ctx, req.CallerID)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, domain.ErrPermissionDenied
		}
	}

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	return h.queries.ListOrders(ctx, req.CustomerID, req.Status, limit, offset)
}
