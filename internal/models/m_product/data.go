package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for a product using a map of values.
// Expected keys are the column names declared in fields.go.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation keyed by product_id.
// The values map should NOT include the product_id key.
func UpdateMutation(productID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColProductID}
	vals := []interface{}{productID}

	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	return spanner.Update(TableName, cols, vals)
}

// BuildInsertMap prepares the canonical fields for insertion.
// stock may be nil (untracked, e.g. preorder products).
func BuildInsertMap(productID, name, category string, priceNum, priceDen int64,
	stock *int64, isPreorder, isActive bool, sizes, colors []string,
	createdAt, updatedAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		ColProductID:        productID,
		ColName:             name,
		ColCategory:         category,
		ColPriceNumerator:   priceNum,
		ColPriceDenominator: priceDen,
		ColIsPreorder:       isPreorder,
		ColIsActive:         isActive,
		ColSizes:            sizes,
		ColColors:           colors,
		ColCreatedAt:        createdAt,
		ColUpdatedAt:        updatedAt,
	}

	if stock != nil {
		m[ColStock] = *stock
	} else {
		m[ColStock] = nil
	}

	return m
}
