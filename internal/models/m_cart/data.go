package m_cart

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds the insert for a new cart row.
func InsertMutation(cartID, customerID string, createdAt time.Time) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{ColCartID, ColCustomerID, ColCreatedAt},
		[]interface{}{cartID, customerID, createdAt})
}
