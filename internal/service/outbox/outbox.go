package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"hangpay/internal/model"
)

const (
	maxAttempts    = 5
	baseBackoff    = 30 * time.Second
	defaultBatch   = 20
	defaultWorkers = 3
)

//go:generate mockgen -package mocks -destination ./mocks/dispatcher_repo.go . DispatcherRepository
type DispatcherRepository interface {
	// ClaimDue claims up to limit pending messages whose next attempt is
	// due, incrementing their attempt counter. Claimed rows are leased so
	// concurrent dispatchers never double-send.
	ClaimDue(ctx context.Context, limit int) ([]model.OutboxMessage, error)

	MarkSent(ctx context.Context, id int64) error

	// Reschedule pushes the next attempt out to the given time.
	Reschedule(ctx context.Context, id int64, nextAttempt time.Time) error

	MarkFailed(ctx context.Context, id int64) error
}

//go:generate mockgen -package mocks -destination ./mocks/mailer.go . Mailer
type Mailer interface {
	Deliver(ctx context.Context, kind string, payload json.RawMessage) error
}

// Dispatcher drains the notification outbox. Delivery failures back off
// exponentially and give up after maxAttempts; nothing here ever touches
// wallet or withdrawal state.
type Dispatcher struct {
	PollInterval time.Duration
	BatchSize    int
	WorkersNum   int

	repo   DispatcherRepository
	mailer Mailer
}

func NewDispatcher(
	interval time.Duration,
	repo DispatcherRepository,
	mailer Mailer,
) *Dispatcher {
	return &Dispatcher{
		PollInterval: interval,
		BatchSize:    defaultBatch,
		WorkersNum:   defaultWorkers,
		repo:         repo,
		mailer:       mailer,
	}
}

func (d *Dispatcher) Run(ctx context.Context) error {
	tick := time.NewTicker(d.PollInterval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			if ctx.Err() != nil {
				continue
			}

			if err := d.dispatchBatch(ctx); err != nil {
				return fmt.Errorf("outbox dispatcher error: %w", err)
			}
		}
	}
}

func (d *Dispatcher) dispatchBatch(ctx context.Context) error {
	messages, err := d.repo.ClaimDue(ctx, d.BatchSize)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return nil
	}
	slog.Debug("claimed outbox messages", slog.Int("count", len(messages)))

	jobs := make(chan model.OutboxMessage, d.BatchSize)
	worker := func() error {
		for msg := range jobs {
			if ctx.Err() != nil {
				return nil
			}
			d.deliverOne(ctx, msg)
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < d.WorkersNum; i++ {
		g.Go(worker)
	}

Loop:
	for _, msg := range messages {
		select {
		case jobs <- msg:
		case <-ctx.Done():
			break Loop
		}
	}

	close(jobs)
	return g.Wait()
}

// deliverOne never returns an error: a failed delivery is rescheduled or
// dead-lettered, and bookkeeping failures are only logged.
func (d *Dispatcher) deliverOne(ctx context.Context, msg model.OutboxMessage) {
	if err := d.mailer.Deliver(ctx, msg.Kind, msg.Payload); err != nil {
		slog.Warn(
			"notification delivery failed",
			slog.Int64("id", msg.ID),
			slog.String("kind", msg.Kind),
			slog.Int("attempts", msg.Attempts),
			slog.Any("error", err),
		)

		if msg.Attempts >= maxAttempts {
			if err := d.repo.MarkFailed(ctx, msg.ID); err != nil {
				slog.Error(
					"failed to dead-letter outbox message",
					slog.Int64("id", msg.ID),
					slog.Any("error", err),
				)
			}
			return
		}

		next := time.Now().Add(backoff(msg.Attempts))
		if err := d.repo.Reschedule(ctx, msg.ID, next); err != nil {
			slog.Error(
				"failed to reschedule outbox message",
				slog.Int64("id", msg.ID),
				slog.Any("error", err),
			)
		}
		return
	}

	if err := d.repo.MarkSent(ctx, msg.ID); err != nil {
		slog.Error(
			"failed to mark outbox message sent",
			slog.Int64("id", msg.ID),
			slog.Any("error", err),
		)
	}
}

// backoff doubles per attempt: 30s, 1m, 2m, 4m, 8m.
func backoff(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	return baseBackoff << (attempts - 1)
}
