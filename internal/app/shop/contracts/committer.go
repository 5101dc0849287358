package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	commitplan "github.com/murkotick/order-processing-service/internal/pkg/committer"
)

// Committer is the small abstraction usecases call to apply a collection
// of mutations atomically. It keeps usecases independent of the Spanner
// driver details.
type Committer interface {
	// Apply atomically applies the provided mutation plan.
	Apply(ctx context.Context, plan *commitplan.Plan) error
}

// CheckoutTx is the view of the running checkout transaction exposed to
// the checkout usecase. Reads happen inside the same read-write
// transaction as the buffered writes, so two concurrent checkouts against
// one cart serialize: the loser re-reads a drained cart and fails with
// EmptyCart instead of double-spending it.
type CheckoutTx interface {
	// CartID resolves the customer's cart. ok is false when no cart row exists.
	CartID(ctx context.Context, customerID string) (id string, ok bool, err error)

	// Lines returns the cart's lines joined with the current product rows.
	// Lines whose product no longer exists are dropped by the join.
	Lines(ctx context.Context, cartID string) ([]CheckoutLine, error)

	// Buffer stages mutations for the transaction's commit.
	Buffer(muts []*spanner.Mutation) error
}

// CheckoutStore runs a checkout work function inside one atomic
// read-write transaction. The work function may be retried by the driver
// on transient aborts and must therefore be side-effect free outside the
// transaction.
type CheckoutStore interface {
	Run(ctx context.Context, work func(ctx context.Context, tx CheckoutTx) error) error
}

// CheckoutLine is one cart line joined with its product as read inside
// the checkout transaction.
type CheckoutLine struct {
	ProductID  string
	Quantity   int64
	Size       string
	Color      string
	PriceNum   int64
	PriceDen   int64
	Stock      *int64 // nil when inventory is untracked
	IsPreorder bool
}
