package repo

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
)

// CheckoutStore runs checkout work inside a single Spanner read-write
// transaction. The in-transaction cart reads are what serialize concurrent
// checkouts of the same cart: the loser re-runs and finds the cart drained.
type CheckoutStore struct {
	client *spanner.Client
}

func NewCheckoutStore(client *spanner.Client) *CheckoutStore {
	return &CheckoutStore{client: client}
}

func (s *CheckoutStore) Run(ctx context.Context, work func(ctx context.Context, tx contracts.CheckoutTx) error) error {
	_, err := s.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		return work(ctx, &checkoutTx{txn: txn})
	})
	return err
}

type checkoutTx struct {
	txn *spanner.ReadWriteTransaction
}

func (t *checkoutTx) CartID(ctx context.Context, customerID string) (string, bool, error) {
	stmt := spanner.Statement{
		SQL: `SELECT cart_id FROM carts WHERE customer_id = @customer_id`,
		Params: map[string]interface{}{
			"customer_id": customerID,
		},
	}

	iter := t.txn.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	var cartID string
	if err := row.Columns(&cartID); err != nil {
		return "", false, err
	}
	return cartID, true, nil
}

// Lines joins the cart lines with their products so the caller gets the
// current price and stock in the same transaction that drains the cart.
// No is_active filter here: a deactivated product already in the basket
// still checks out at its current price.
func (t *checkoutTx) Lines(ctx context.Context, cartID string) ([]contracts.CheckoutLine, error) {
	stmt := spanner.Statement{
		SQL: `SELECT ci.product_id, ci.quantity, ci.size, ci.color,
		             p.price_numerator, p.price_denominator, p.stock, p.is_preorder
		        FROM cart_items ci
		        JOIN products p ON p.product_id = ci.product_id
		       WHERE ci.cart_id = @cart_id
		       ORDER BY ci.product_id, ci.size, ci.color`,
		Params: map[string]interface{}{
			"cart_id": cartID,
		},
	}

	iter := t.txn.Query(ctx, stmt)
	defer iter.Stop()

	var lines []contracts.CheckoutLine
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var l contracts.CheckoutLine
		if err := row.Columns(&l.ProductID, &l.Quantity, &l.Size, &l.Color,
			&l.PriceNum, &l.PriceDen, &l.Stock, &l.IsPreorder); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, nil
}

func (t *checkoutTx) Buffer(muts []*spanner.Mutation) error {
	return t.txn.BufferWrite(muts)
}
