package ports

import "context"

// EventPublisher delivers staged domain events to the outside world.
// Implementations decide the medium; the core only guarantees that a
// message is marked published after Publish returns nil.
type EventPublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}
