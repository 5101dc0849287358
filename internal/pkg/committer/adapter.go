package committer

import (
	"context"
	"errors"

	"cloud.google.com/go/spanner"
)

// Adapter applies a plan through one Spanner read-write transaction.
// An empty plan commits nothing and succeeds.
type Adapter struct {
	client *spanner.Client
}

func NewAdapter(client *spanner.Client) *Adapter {
	return &Adapter{client: client}
}

func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}
	if a.client == nil {
		return errors.New("committer: spanner client is nil")
	}

	_, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		return tx.BufferWrite(plan.Mutations())
	})
	return err
}
