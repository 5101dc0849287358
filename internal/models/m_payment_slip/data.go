package m_payment_slip

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares the fields for a freshly uploaded slip.
// verified_at starts NULL; only admin review sets it.
func BuildInsertMap(slipID, orderID, imageRef string, uploadedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColSlipID:     slipID,
		ColOrderID:    orderID,
		ColImageRef:   imageRef,
		ColVerified:   false,
		ColUploadedAt: uploadedAt,
		ColVerifiedAt: nil,
	}
}

// InsertMutation builds a spanner.Insert mutation for a payment slip.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateReviewMutation builds the verification update keyed by slip_id.
// verifiedAt must be nil when verified is false.
func UpdateReviewMutation(slipID string, verified bool, verifiedAt *time.Time) *spanner.Mutation {
	var at interface{}
	if verifiedAt != nil {
		at = verifiedAt.UTC()
	}
	return spanner.Update(TableName,
		[]string{ColSlipID, ColVerified, ColVerifiedAt},
		[]interface{}{slipID, verified, at})
}
