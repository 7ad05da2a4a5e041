package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OutboxRelayJob moves staged domain events from the outbox to the event
// publisher. Runs every second so that events reach subscribers shortly
// after the transaction that produced them commits.
type OutboxRelayJob struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates a relay job pulling at most batchSize pending
// messages per tick.
func NewOutboxRelayJob(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	batchSize int,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		outbox:    outbox,
		publisher: publisher,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the outbox relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.relayPending(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the outbox relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

// relayPending publishes one batch of pending messages. Each message is
// marked published only after the publisher accepted it; a failure leaves
// the message pending for the next tick, so delivery is at-least-once.
func (j *OutboxRelayJob) relayPending(ctx context.Context) error {
	messages, err := j.outbox.PullPending(ctx, j.batchSize)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if err = j.publisher.Publish(ctx, message); err != nil {
			return err
		}

		if err = j.outbox.MarkPublished(ctx, message.ID); err != nil {
			return err
		}
	}

	return nil
}
