package list_unverified_slips

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
)

// SpannerUnverifiedSlipsQuery pages the admin review queue: slips awaiting
// a verdict joined with their order's total and customer, oldest first.
type SpannerUnverifiedSlipsQuery struct {
	Client *spanner.Client
}

func NewSpannerUnverifiedSlipsQuery(client *spanner.Client) *SpannerUnverifiedSlipsQuery {
	return &SpannerUnverifiedSlipsQuery{Client: client}
}

func (q *SpannerUnverifiedSlipsQuery) ListUnverifiedSlips(ctx context.Context, limit, offset int) ([]*dto.UnverifiedSlipDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT s.slip_id, s.order_id, o.customer_id, s.image_ref,
		             o.total_numerator, o.total_denominator, s.uploaded_at
		        FROM payment_slips s
		        JOIN orders o ON o.order_id = s.order_id
		       WHERE NOT s.verified
		       ORDER BY s.uploaded_at ASC
		       LIMIT @limit OFFSET @offset`,
		Params: map[string]interface{}{"limit": limit, "offset": offset},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []*dto.UnverifiedSlipDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		var (
			s          dto.UnverifiedSlipDTO
			uploadedAt time.Time
		)
		if err := row.Columns(&s.SlipID, &s.OrderID, &s.CustomerID, &s.ImageRef,
			&s.TotalNum, &s.TotalDen, &uploadedAt); err != nil {
			return nil, err
		}

		u := uploadedAt.UTC().Format(time.RFC3339)
		s.UploadedAt = &u

		out = append(out, &s)
	}
}
