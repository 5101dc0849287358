package m_outbox

// Columns of the outbox_events table. Rows are enriched order and
// payment-slip domain events, committed with the business write and
// drained by the dispatcher.
const (
	TableName = "outbox_events"

	ColEventID     = "event_id"
	ColEventType   = "event_type"
	ColAggregateID = "aggregate_id"
	ColPayload     = "payload"
	ColStatus      = "status"
	ColCreatedAt   = "created_at"
	ColProcessedAt = "processed_at"
)
