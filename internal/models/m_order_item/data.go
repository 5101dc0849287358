package m_order_item

import "cloud.google.com/go/spanner"

// InsertMutation builds the insert for one price-locked order line.
func InsertMutation(orderID, productID, size, color string, quantity, priceNum, priceDen int64) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{ColOrderID, ColProductID, ColSize, ColColor, ColQuantity, ColPriceNumerator, ColPriceDenominator},
		[]interface{}{orderID, productID, size, color, quantity, priceNum, priceDen})
}
