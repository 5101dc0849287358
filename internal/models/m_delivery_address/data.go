package m_delivery_address

import "cloud.google.com/go/spanner"

// InsertMutation builds the insert for an order's delivery address.
func InsertMutation(orderID, fullName, phone, address string) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{ColOrderID, ColFullName, ColPhone, ColAddress},
		[]interface{}{orderID, fullName, phone, address})
}

// UpdateMutation builds the contact-field update keyed by order_id.
// Used for post-checkout corrections by the owner or an admin.
func UpdateMutation(orderID, fullName, phone, address string) *spanner.Mutation {
	return spanner.Update(TableName,
		[]string{ColOrderID, ColFullName, ColPhone, ColAddress},
		[]interface{}{orderID, fullName, phone, address})
}
