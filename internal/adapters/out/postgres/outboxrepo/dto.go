// Package outboxrepo provides persistence for the transactional outbox.
// Domain events serialized by the application layer are stored next to the
// aggregates they came from and relayed to the publisher asynchronously.
package outboxrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxMessageDTO represents the database structure for staged domain events.
// A NULL published_at marks the message as pending.
type OutboxMessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventName   string     `gorm:"type:varchar(255);not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null"`
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
// Overrides GORM's default naming convention to use "outbox_messages".
func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

// fromPort converts an outbox message to its database representation.
func fromPort(message ports.OutboxMessage) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:          message.ID.Bytes(),
		EventName:   message.EventName,
		Payload:     message.Payload,
		OccurredAt:  message.OccurredAt,
		PublishedAt: message.PublishedAt,
	}
}

// toPort converts a database DTO back to an outbox message.
func toPort(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		EventName:   dto.EventName,
		Payload:     dto.Payload,
		OccurredAt:  dto.OccurredAt,
		PublishedAt: dto.PublishedAt,
	}, nil
}
