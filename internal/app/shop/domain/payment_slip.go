package domain

import "time"

// Field constants for change tracking on the PaymentSlip aggregate.
const (
	FieldSlipVerified   = "verified"
	FieldSlipVerifiedAt = "verified_at"
)

// PaymentSlip is customer-submitted proof of an out-of-band wallet
// payment. Admin review is the sole writer of verified/verified_at.
type PaymentSlip struct {
	id         string
	orderID    string
	imageRef   string
	verified   bool
	uploadedAt time.Time
	verifiedAt *time.Time
	changes    *ChangeTracker
	events     []DomainEvent
}

// NewPaymentSlip records a freshly uploaded slip. It starts unverified and
// raises PaymentSlipUploaded for the admin review queue.
func NewPaymentSlip(id, orderID, imageRef string, now time.Time) (*PaymentSlip, error) {
	if orderID == "" {
		return nil, ErrOrderNotFound
	}
	if imageRef == "" {
		return nil, ErrMissingImageRef
	}

	s := &PaymentSlip{
		id:         id,
		orderID:    orderID,
		imageRef:   imageRef,
		uploadedAt: now,
		changes:    NewChangeTracker(),
		events:     make([]DomainEvent, 0),
	}

	s.events = append(s.events, &PaymentSlipUploadedEvent{
		SlipID:     s.id,
		OrderID:    s.orderID,
		ImageRef:   s.imageRef,
		UploadedAt: now,
	})

	return s, nil
}

// ReconstructPaymentSlip rebuilds a PaymentSlip from persisted state.
func ReconstructPaymentSlip(id, orderID, imageRef string, verified bool,
	uploadedAt time.Time, verifiedAt *time.Time) *PaymentSlip {
	return &PaymentSlip{
		id:         id,
		orderID:    orderID,
		imageRef:   imageRef,
		verified:   verified,
		uploadedAt: uploadedAt,
		verifiedAt: verifiedAt,
		changes:    NewChangeTracker(),
		events:     make([]DomainEvent, 0),
	}
}

func (s *PaymentSlip) ID() string                  { return s.id }
func (s *PaymentSlip) OrderID() string             { return s.orderID }
func (s *PaymentSlip) ImageRef() string            { return s.imageRef }
func (s *PaymentSlip) Verified() bool              { return s.verified }
func (s *PaymentSlip) UploadedAt() time.Time       { return s.uploadedAt }
func (s *PaymentSlip) VerifiedAt() *time.Time      { return s.verifiedAt }
func (s *PaymentSlip) Changes() *ChangeTracker     { return s.changes }
func (s *PaymentSlip) DomainEvents() []DomainEvent { return s.events }

// Review records the admin decision. Accepting stamps verified_at;
// rejecting clears it. Rejection does not cancel the order - that stays a
// separate explicit admin decision.
func (s *PaymentSlip) Review(verified bool, now time.Time) {
	s.verified = verified
	if verified {
		at := now
		s.verifiedAt = &at
	} else {
		s.verifiedAt = nil
	}
	s.changes.MarkDirty(FieldSlipVerified)
	s.changes.MarkDirty(FieldSlipVerifiedAt)
}

// ClearEvents clears the accumulated domain events.
func (s *PaymentSlip) ClearEvents() {
	s.events = make([]DomainEvent, 0)
}
