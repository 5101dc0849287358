package repo

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/models/m_outbox"
)

// OutboxRepo is the Spanner implementation of the transactional outbox repository.
// It returns *spanner.Mutation but never applies it.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) *spanner.Mutation {
	if e == nil {
		return nil
	}

	values := m_outbox.BuildInsertMap(
		e.EventID,
		e.EventType,
		e.AggregateID,
		e.PayloadJSON,
		e.Status,
		e.CreatedAtUTC,
	)
	return m_outbox.InsertMutation(values)
}

// OutboxStore is the dispatcher-facing side of the outbox: it reads pending
// events and marks them processed after delivery, each in its own commit.
type OutboxStore struct {
	client *spanner.Client
}

func NewOutboxStore(client *spanner.Client) *OutboxStore {
	return &OutboxStore{client: client}
}

// Pending returns up to limit undelivered events, oldest first.
func (s *OutboxStore) Pending(ctx context.Context, limit int64) ([]*contracts.OutboxEvent, error) {
	stmt := spanner.Statement{
		SQL: `SELECT event_id, event_type, aggregate_id, payload, status, created_at
		        FROM outbox_events
		       WHERE status = @status
		       ORDER BY created_at ASC
		       LIMIT @limit`,
		Params: map[string]interface{}{
			"status": m_outbox.StatusPending,
			"limit":  limit,
		},
	}

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var events []*contracts.OutboxEvent
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var e contracts.OutboxEvent
		if err := row.Columns(&e.EventID, &e.EventType, &e.AggregateID,
			&e.PayloadJSON, &e.Status, &e.CreatedAtUTC); err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, nil
}

// MarkProcessed flips one event to processed. Called once per delivered
// event so a crash mid-batch redelivers only the remainder.
func (s *OutboxStore) MarkProcessed(ctx context.Context, eventID string, processedAt time.Time) error {
	_, err := s.client.Apply(ctx, []*spanner.Mutation{
		m_outbox.MarkProcessedMutation(eventID, processedAt.UTC()),
	})
	return err
}
