package m_payment_slip

// Field constants for the payment_slips table.
const (
	TableName = "payment_slips"

	ColSlipID     = "slip_id"
	ColOrderID    = "order_id"
	ColImageRef   = "image_ref"
	ColVerified   = "verified"
	ColUploadedAt = "uploaded_at"
	ColVerifiedAt = "verified_at"
)
