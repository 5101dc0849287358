package get_product

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
)

// SpannerGetProductQuery is a concrete query implementation that reads from Spanner directly.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT product_id, name, category,
		             price_numerator, price_denominator,
		             stock, is_preorder, is_active, sizes, colors,
		             created_at, updated_at
		        FROM products
		       WHERE product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	var (
		p                    dto.ProductDTO
		stock                spanner.NullInt64
		createdAt, updatedAt time.Time
	)
	if err := row.Columns(&p.ProductID, &p.Name, &p.Category,
		&p.PriceNum, &p.PriceDen,
		&stock, &p.IsPreorder, &p.IsActive, &p.Sizes, &p.Colors,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if stock.Valid {
		s := stock.Int64
		p.Stock = &s
	}

	c := createdAt.UTC().Format(time.RFC3339)
	p.CreatedAt = &c
	u := updatedAt.UTC().Format(time.RFC3339)
	p.UpdatedAt = &u

	return &p, nil
}
