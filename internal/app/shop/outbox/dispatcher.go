package outbox

import (
	"context"
	"time"

	"go.uber.org/zap"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/pkg/clock"
)

// Notifier delivers one outbox event to the outside world. Delivery is
// at-least-once: a crash between Notify and MarkProcessed redelivers.
// Implementations must therefore tolerate duplicates.
type Notifier interface {
	Notify(ctx context.Context, e *contracts.OutboxEvent) error
}

// LogNotifier writes events to the structured log. It stands in for a
// real push channel in development and in tests.
type LogNotifier struct {
	Log *zap.Logger
}

func (n *LogNotifier) Notify(_ context.Context, e *contracts.OutboxEvent) error {
	n.Log.Info("outbox event",
		zap.String("event_id", e.EventID),
		zap.String("event_type", e.EventType),
		zap.String("aggregate_id", e.AggregateID),
		zap.String("payload", e.PayloadJSON))
	return nil
}

// Store is the persistence surface the dispatcher polls.
type Store interface {
	Pending(ctx context.Context, limit int64) ([]*contracts.OutboxEvent, error)
	MarkProcessed(ctx context.Context, eventID string, processedAt time.Time) error
}

// Dispatcher drains pending outbox events in the background. Events are
// delivered oldest first; a failed delivery stops the batch so ordering
// per aggregate holds across retries.
type Dispatcher struct {
	store    Store
	notifier Notifier
	log      *zap.Logger
	clock    clock.Clock

	interval time.Duration
	batch    int64
}

func NewDispatcher(store Store, notifier Notifier, log *zap.Logger, clk clock.Clock, interval time.Duration, batch int64) *Dispatcher {
	if interval <= 0 {
		interval = time.Second
	}
	if batch <= 0 {
		batch = 100
	}
	return &Dispatcher{
		store:    store,
		notifier: notifier,
		log:      log,
		clock:    clk,
		interval: interval,
		batch:    batch,
	}
}

// Run polls until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.DispatchOnce(ctx); err != nil {
				d.log.Warn("outbox dispatch failed", zap.Error(err))
			}
		}
	}
}

// DispatchOnce delivers one batch of pending events.
func (d *Dispatcher) DispatchOnce(ctx context.Context) error {
	events, err := d.store.Pending(ctx, d.batch)
	if err != nil {
		return err
	}

	for _, e := range events {
		if err := d.notifier.Notify(ctx, e); err != nil {
			return err
		}
		if err := d.store.MarkProcessed(ctx, e.EventID, d.clock.Now()); err != nil {
			return err
		}
	}
	return nil
}
