package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// OutboxMessage is a serialized domain event staged for publication.
// Messages are written in the same transaction as the aggregate they came
// from and relayed to the publisher afterwards, which yields at-least-once
// delivery.
type OutboxMessage struct {
	ID          kernel.UUID
	EventName   string
	Payload     []byte
	OccurredAt  time.Time
	PublishedAt *time.Time
}

// OutboxRepository stages domain events for asynchronous publication.
type OutboxRepository interface {
	// Enqueue stores messages for later publication. Call it within the
	// transaction that persists the aggregate the events belong to.
	Enqueue(ctx context.Context, messages []OutboxMessage) error

	// PullPending returns up to limit unpublished messages in insertion order.
	PullPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished records that a message has been handed to the publisher.
	MarkPublished(ctx context.Context, id kernel.UUID) error
}
