package list_products

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
)

// SpannerListProductsQuery lists catalog products with an optional category filter.
type SpannerListProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListProductsQuery(client *spanner.Client) *SpannerListProductsQuery {
	return &SpannerListProductsQuery{Client: client}
}

func (q *SpannerListProductsQuery) ListProducts(ctx context.Context, category *string, activeOnly bool, limit, offset int) ([]*dto.ProductSummaryDTO, error) {
	baseSQL := `SELECT product_id, name, category,
	                   price_numerator, price_denominator, is_preorder
	              FROM products
	             WHERE TRUE`
	params := map[string]interface{}{}

	if activeOnly {
		baseSQL += " AND is_active"
	}
	if category != nil {
		baseSQL += " AND category = @category"
		params["category"] = *category
	}
	baseSQL += " ORDER BY name ASC LIMIT @limit OFFSET @offset"
	params["limit"] = limit
	params["offset"] = offset

	stmt := spanner.Statement{SQL: baseSQL, Params: params}
	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []*dto.ProductSummaryDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		var p dto.ProductSummaryDTO
		if err := row.Columns(&p.ProductID, &p.Name, &p.Category,
			&p.PriceNum, &p.PriceDen, &p.IsPreorder); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
}
