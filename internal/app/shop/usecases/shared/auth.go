package shared

import (
	"context"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
)

// RequireAdmin guards admin-only operations. An empty caller is an
// authentication failure, a known non-admin caller a permission failure.
func RequireAdmin(ctx context.Context, roles contracts.Roles, callerID string) error {
	if callerID == "" {
		return domain.ErrAuthRequired
	}
	admin, err := roles.IsAdmin(ctx, callerID)
	if err != nil {
		return err
	}
	if !admin {
		return domain.ErrPermissionDenied
	}
	return nil
}
