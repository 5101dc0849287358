package list_orders

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
)

// SpannerListOrdersQuery pages orders newest first, optionally narrowed to
// one customer and one status.
type SpannerListOrdersQuery struct {
	Client *spanner.Client
}

func NewSpannerListOrdersQuery(client *spanner.Client) *SpannerListOrdersQuery {
	return &SpannerListOrdersQuery{Client: client}
}

func (q *SpannerListOrdersQuery) ListOrders(ctx context.Context, customerID string, status *string, limit, offset int) ([]*dto.OrderDTO, error) {
	baseSQL := `SELECT order_id, customer_id, total_numerator, total_denominator,
	                   payment_method, status, created_at, updated_at
	              FROM orders
	             WHERE TRUE`
	params := map[string]interface{}{}

	if customerID != "" {
		baseSQL += " AND customer_id = @customer_id"
		params["customer_id"] = customerID
	}
	if status != nil {
		baseSQL += " AND status = @status"
		params["status"] = *status
	}
	baseSQL += " ORDER BY created_at DESC LIMIT @limit OFFSET @offset"
	params["limit"] = limit
	params["offset"] = offset

	stmt := spanner.Statement{SQL: baseSQL, Params: params}
	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []*dto.OrderDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		var (
			o                    dto.OrderDTO
			createdAt, updatedAt time.Time
		)
		if err := row.Columns(&o.OrderID, &o.CustomerID, &o.TotalNum, &o.TotalDen,
			&o.PaymentMethod, &o.Status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		c := createdAt.UTC().Format(time.RFC3339)
		o.CreatedAt = &c
		u := updatedAt.UTC().Format(time.RFC3339)
		o.UpdatedAt = &u

		out = append(out, &o)
	}
}
