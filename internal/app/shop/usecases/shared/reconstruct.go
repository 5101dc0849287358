package shared

import (
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
	"github.com/murkotick/order-processing-service/internal/app/shop/utils"
)

// OrderFromDTO rebuilds the order aggregate from a read-model row for
// status-only operations.
func OrderFromDTO(d *dto.OrderDTO) (*domain.Order, error) {
	method, err := domain.ParsePaymentMethod(d.PaymentMethod)
	if err != nil {
		return nil, err
	}
	status, err := domain.ParseOrderStatus(d.Status)
	if err != nil {
		return nil, err
	}

	createdAt := utils.TimeOrZero(utils.ParseTimePtr(d.CreatedAt))
	updatedAt := utils.TimeOrZero(utils.ParseTimePtr(d.UpdatedAt))

	return domain.ReconstructOrder(
		d.OrderID,
		d.CustomerID,
		domain.NewMoney(d.TotalNum, d.TotalDen),
		method,
		status,
		createdAt,
		updatedAt,
	), nil
}

// SlipFromDTO rebuilds the payment-slip aggregate from a read-model row.
func SlipFromDTO(d *dto.PaymentSlipDTO) *domain.PaymentSlip {
	uploadedAt := utils.TimeOrZero(utils.ParseTimePtr(d.UploadedAt))
	verifiedAt := utils.ParseTimePtr(d.VerifiedAt)

	return domain.ReconstructPaymentSlip(
		d.SlipID,
		d.OrderID,
		d.ImageRef,
		d.Verified,
		uploadedAt,
		verifiedAt,
	)
}
