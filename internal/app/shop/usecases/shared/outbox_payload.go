package shared

import (
	"encoding/json"
	"fmt"

	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload suitable for the outbox.
//
// The domain layer intentionally avoids serialization concerns; this adapter extracts primitives
// (e.g., Money as numerator/denominator) to keep payloads useful.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	switch e := ev.(type) {
	case *domain.OrderCreatedEvent:
		payload := map[string]interface{}{
			"order_id":       e.OrderID,
			"customer_id":    e.CustomerID,
			"payment_method": string(e.PaymentMethod),
			"total": map[string]interface{}{
				"numerator":   e.Total.Numerator(),
				"denominator": e.Total.Denominator(),
				"decimal":     e.Total.String(),
			},
			"created_at": e.CreatedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.OrderStatusChangedEvent:
		payload := map[string]interface{}{
			"order_id":    e.OrderID,
			"new_status":  string(e.NewStatus),
			"changed_at":  e.ChangedAt,
			"occurred_at": e.OccurredAt(),
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.PaymentSlipUploadedEvent:
		payload := map[string]interface{}{
			"slip_id":     e.SlipID,
			"order_id":    e.OrderID,
			"image_ref":   e.ImageRef,
			"uploaded_at": e.UploadedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err
	}

	// Fallback: try to marshal the event directly.
	b, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
	}
	return string(b), nil
}
