package repo

import (
	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/models/m_payment_slip"
)

// PaymentSlipRepo builds mutations for the payment_slips table.
type PaymentSlipRepo struct{}

func NewPaymentSlipRepo() *PaymentSlipRepo {
	return &PaymentSlipRepo{}
}

func (r *PaymentSlipRepo) InsertMut(s *domain.PaymentSlip) *spanner.Mutation {
	if s == nil {
		return nil
	}
	values := m_payment_slip.BuildInsertMap(s.ID(), s.OrderID(), s.ImageRef(), s.UploadedAt().UTC())
	return m_payment_slip.InsertMutation(values)
}

// UpdateMut builds the review update. Returns nil when the review verdict
// was never applied to the aggregate.
func (r *PaymentSlipRepo) UpdateMut(s *domain.PaymentSlip) *spanner.Mutation {
	if s == nil || !s.Changes().Dirty(domain.FieldSlipVerified) {
		return nil
	}
	return m_payment_slip.UpdateReviewMutation(s.ID(), s.Verified(), s.VerifiedAt())
}
