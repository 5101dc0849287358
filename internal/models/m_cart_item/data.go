package m_cart_item

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds the insert for a new cart line.
func InsertMutation(cartID, productID, size, color string, quantity int64, addedAt time.Time) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{ColCartID, ColProductID, ColSize, ColColor, ColQuantity, ColAddedAt},
		[]interface{}{cartID, productID, size, color, quantity, addedAt})
}

// UpdateQuantityMutation builds an update of a single line's quantity.
func UpdateQuantityMutation(cartID, productID, size, color string, quantity int64) *spanner.Mutation {
	return spanner.Update(TableName,
		[]string{ColCartID, ColProductID, ColSize, ColColor, ColQuantity},
		[]interface{}{cartID, productID, size, color, quantity})
}

// DeleteMutation deletes one line by its full variant key. Spanner deletes
// are idempotent, so removing an absent line is not an error.
func DeleteMutation(cartID, productID, size, color string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{cartID, productID, size, color})
}

// DeleteAllMutation deletes every line of a cart via a key-prefix range.
// The cart row itself is untouched.
func DeleteAllMutation(cartID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{cartID}.AsPrefix())
}
