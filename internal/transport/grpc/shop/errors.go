package shop

import (
	"context"
	"errors"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
)

// mapError translates domain sentinel errors into proper gRPC status codes.
// Unknown errors become codes.Internal.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	// Identity and access
	if errors.Is(err, domain.ErrAuthRequired) {
		return status.Error(codes.Unauthenticated, err.Error())
	}
	if errors.Is(err, domain.ErrPermissionDenied) {
		return status.Error(codes.PermissionDenied, err.Error())
	}

	// Not found
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrSlipNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCartItemNotFound),
		errors.Is(err, spanner.ErrRowNotFound):
		return status.Error(codes.NotFound, err.Error())
	}

	// Invalid argument (validation)
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPaymentMethod),
		errors.Is(err, domain.ErrInvalidOrderStatus),
		errors.Is(err, domain.ErrMissingDeliveryField),
		errors.Is(err, domain.ErrMissingImageRef),
		errors.Is(err, domain.ErrEmptyProductName),
		errors.Is(err, domain.ErrProductNameTooLong),
		errors.Is(err, domain.ErrEmptyProductCategory),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrZeroPrice):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	// Failed precondition (business rules / state)
	if errors.Is(err, domain.ErrEmptyCart) {
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	// Lost a write race
	if errors.Is(err, domain.ErrConflict) {
		return status.Error(codes.Aborted, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}
