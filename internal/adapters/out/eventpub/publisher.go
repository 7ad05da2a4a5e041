// Package eventpub delivers staged domain events to the outside world.
// The current implementation writes them to the structured log, which is
// enough for local development and keeps the relay pipeline exercised
// end to end. Swapping in a message broker only requires another
// EventPublisher implementation.
package eventpub

import (
	"context"
	"log/slog"

	"ordering/internal/core/ports"
)

// SlogEventPublisher publishes outbox messages as structured log records.
type SlogEventPublisher struct {
	logger *slog.Logger
}

// NewSlogEventPublisher creates a publisher writing to the given logger.
func NewSlogEventPublisher(logger *slog.Logger) *SlogEventPublisher {
	return &SlogEventPublisher{
		logger: logger.With("component", "event_publisher"),
	}
}

// Publish emits the message as one log record with the raw payload attached.
func (p *SlogEventPublisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	if err := message.ID.Validate(); err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "domain event published",
		"message_id", message.ID.String(),
		"event_name", message.EventName,
		"occurred_at", message.OccurredAt,
		"payload", string(message.Payload),
	)

	return nil
}
