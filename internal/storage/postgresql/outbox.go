package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hangpay/internal/model"
	"hangpay/internal/service/outbox"
)

var (
	_ model.OutboxRepository      = (*OutboxRepo)(nil)
	_ outbox.DispatcherRepository = (*OutboxRepo)(nil)
)

type OutboxRepo struct {
	baseRepo
}

func (r *OutboxRepo) Enqueue(
	ctx context.Context,
	kind string,
	payload json.RawMessage,
) error {
	q := `
		INSERT INTO outbox_messages (kind, payload)
		VALUES ($1, $2)
	`

	if _, err := r.db.Exec(ctx, q, kind, payload); err != nil {
		return fmt.Errorf("failed to enqueue outbox message: %w", err)
	}

	return nil
}

// ClaimDue picks due pending messages under SKIP LOCKED and bumps their
// attempt counter with a short lease, so a crashed dispatcher run only
// delays delivery instead of losing it.
func (r *OutboxRepo) ClaimDue(
	ctx context.Context,
	limit int,
) ([]model.OutboxMessage, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	qSelect := `
		SELECT id FROM outbox_messages
		WHERE status = 'pending' AND next_attempt_at <= NOW()
		ORDER BY next_attempt_at, id
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	`

	rows, err := tx.Query(ctx, qSelect, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query tx: %w", err)
	}

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan row: %w", err)
	}
	if len(ids) == 0 {
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit tx: %w", err)
		}
		return nil, nil
	}

	qUpdate := `
		UPDATE outbox_messages AS m
		SET attempts = attempts + 1,
			next_attempt_at = NOW() + INTERVAL '1 minute'
		WHERE m.id = ANY($1)
		RETURNING m.id, m.kind, m.payload, m.status, m.attempts,
			m.next_attempt_at, m.created_at
	`

	rows2, err := tx.Query(ctx, qUpdate, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query tx: %w", err)
	}

	var messages []model.OutboxMessage
	for rows2.Next() {
		var m model.OutboxMessage
		if err := rows2.Scan(
			&m.ID,
			&m.Kind,
			&m.Payload,
			&m.Status,
			&m.Attempts,
			&m.NextAttemptAt,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows2.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan row: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit tx: %w", err)
	}

	return messages, nil
}

func (r *OutboxRepo) MarkSent(ctx context.Context, id int64) error {
	q := `
		UPDATE outbox_messages
		SET status = 'sent', sent_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.Exec(ctx, q, id); err != nil {
		return fmt.Errorf("failed to mark outbox message sent: %w", err)
	}

	return nil
}

func (r *OutboxRepo) Reschedule(
	ctx context.Context,
	id int64,
	nextAttempt time.Time,
) error {
	q := `
		UPDATE outbox_messages
		SET next_attempt_at = $2
		WHERE id = $1 AND status = 'pending'
	`

	if _, err := r.db.Exec(ctx, q, id, nextAttempt); err != nil {
		return fmt.Errorf("failed to reschedule outbox message: %w", err)
	}

	return nil
}

func (r *OutboxRepo) MarkFailed(ctx context.Context, id int64) error {
	q := `
		UPDATE outbox_messages
		SET status = 'failed'
		WHERE id = $1
	`

	if _, err := r.db.Exec(ctx, q, id); err != nil {
		return fmt.Errorf("failed to mark outbox message failed: %w", err)
	}

	return nil
}
