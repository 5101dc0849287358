package get_cart_total

import (
	"context"
	"math/big"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
)

// SpannerCartTotalQuery computes the live basket total from Spanner directly.
type SpannerCartTotalQuery struct {
	Client *spanner.Client
}

func NewSpannerCartTotalQuery(client *spanner.Client) *SpannerCartTotalQuery {
	return &SpannerCartTotalQuery{Client: client}
}

// CartTotal sums quantity x current price over the customer's cart lines.
// Lines whose product has been deactivated are excluded from the total;
// they only count again if the product comes back. An absent cart is a
// zero total, not an error.
func (q *SpannerCartTotalQuery) CartTotal(ctx context.Context, customerID string) (*dto.CartTotalDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT ci.quantity, p.price_numerator, p.price_denominator
		        FROM carts c
		        JOIN cart_items ci ON ci.cart_id = c.cart_id
		        JOIN products p ON p.product_id = ci.product_id
		       WHERE c.customer_id = @customer_id
		         AND p.is_active`,
		Params: map[string]interface{}{"customer_id": customerID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	total := new(big.Rat)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var quantity, priceNum, priceDen int64
		if err := row.Columns(&quantity, &priceNum, &priceDen); err != nil {
			return nil, err
		}

		line := new(big.Rat).SetFrac(big.NewInt(priceNum), big.NewInt(priceDen))
		line.Mul(line, new(big.Rat).SetInt64(quantity))
		total.Add(total, line)
	}

	return &dto.CartTotalDTO{
		Numerator:   total.Num().Int64(),
		Denominator: total.Denom().Int64(),
		Decimal:     total.FloatString(2),
	}, nil
}
