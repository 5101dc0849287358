package queries

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
)

// SpannerRoles answers admin checks from the admin_roles table.
type SpannerRoles struct {
	client *spanner.Client
}

func NewSpannerRoles(client *spanner.Client) *SpannerRoles {
	return &SpannerRoles{client: client}
}

func (r *SpannerRoles) IsAdmin(ctx context.Context, customerID string) (bool, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT customer_id FROM admin_roles WHERE customer_id = @customer_id`,
		Params: map[string]interface{}{"customer_id": customerID},
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
