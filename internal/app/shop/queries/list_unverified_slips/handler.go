package list_unverified_slips

import (
	"context"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
)

// Handler serves the slip review queue. Admin only.
type Handler struct {
	queries contracts.Queries
	roles   contracts.Roles
}

func NewHandler(q contracts.Queries, roles contracts.Roles) *Handler {
	return &Handler{queries: q, roles: roles}
}

func (h *Handler) Execute(ctx context.Context, callerID string, limit, offset int) ([]*dto.UnverifiedSlipDTO, error) {
	if callerID == "" {
		return nil, domain.ErrAuthRequired
	}
	admin, err := h.roles.IsAdmin(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, domain.ErrPermissionDenied
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	return h.queries.ListUnverifiedSlips(ctx, limit, offset)
}
