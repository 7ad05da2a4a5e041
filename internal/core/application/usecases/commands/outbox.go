package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// Wire payloads of the domain events staged in the outbox. Identifiers and
// money are flattened to primitives so consumers need no knowledge of the
// domain types.
type (
	orderCreatedPayload struct {
		OrderID    string    `json:"order_id"`
		CustomerID string    `json:"customer_id"`
		OccurredAt time.Time `json:"occurred_at"`
	}

	orderConfirmedPayload struct {
		OrderID       string    `json:"order_id"`
		TotalAmount   int64     `json:"total_amount"`
		TotalCurrency string    `json:"total_currency"`
		OccurredAt    time.Time `json:"occurred_at"`
	}
)

// outboxMessagesFromEvents serializes the aggregate's domain events into
// outbox messages, preserving their order.
func outboxMessagesFromEvents(events []order.OrderEvent) ([]ports.OutboxMessage, error) {
	messages := make([]ports.OutboxMessage, 0, len(events))
	for _, event := range events {
		message, err := outboxMessageFromEvent(event)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, nil
}

func outboxMessageFromEvent(event order.OrderEvent) (ports.OutboxMessage, error) {
	var payload any

	switch e := event.(type) {
	case order.OrderCreatedEvent:
		payload = orderCreatedPayload{
			OrderID:    e.OrderID().String(),
			CustomerID: e.CustomerID().String(),
			OccurredAt: e.OccurredAt(),
		}
	case order.OrderConfirmedEvent:
		payload = orderConfirmedPayload{
			OrderID:       e.OrderID().String(),
			TotalAmount:   e.Total().Amount(),
			TotalCurrency: e.Total().Currency(),
			OccurredAt:    e.OccurredAt(),
		}
	default:
		return ports.OutboxMessage{}, errs.NewValueIsInvalidErrorWithCause("event",
			fmt.Errorf("%q has no outbox payload mapping", event.EventName()))
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:         kernel.NewUUID(),
		EventName:  event.EventName(),
		Payload:    data,
		OccurredAt: event.OccurredAt(),
	}, nil
}
