package m_order

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for an order using a map of values.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateStatusMutation builds the status update keyed by order_id.
// The status column is the only mutable order column after creation.
func UpdateStatusMutation(orderID, status string, updatedAt time.Time) *spanner.Mutation {
	return spanner.Update(TableName,
		[]string{ColOrderID, ColStatus, ColUpdatedAt},
		[]interface{}{orderID, status, updatedAt})
}

// BuildInsertMap prepares the canonical order fields for insertion.
func BuildInsertMap(orderID, customerID string, totalNum, totalDen int64,
	paymentMethod, status string, createdAt time.Time) map[string]interface{} {

	return map[string]interface{}{
		ColOrderID:          orderID,
		ColCustomerID:       customerID,
		ColTotalNumerator:   totalNum,
		ColTotalDenominator: totalDen,
		ColPaymentMethod:    paymentMethod,
		ColStatus:           status,
		ColCreatedAt:        createdAt,
		ColUpdatedAt:        createdAt,
	}
}
