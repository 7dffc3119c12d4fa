package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"hangpay/internal/model"
)

var (
	_ model.EventDirectory = (*EventsRepo)(nil)
	_ model.GroupDirectory = (*GroupsRepo)(nil)
)

// EventsRepo and GroupsRepo are read-only views over directory tables owned
// by the rest of the platform. Authorization is their only consumer.

type EventsRepo struct {
	baseRepo
}

func (r *EventsRepo) CreatorID(
	ctx context.Context,
	eventID int64,
) (int64, error) {
	var creatorID int64
	row := r.db.QueryRow(
		ctx,
		`SELECT creator_id FROM events WHERE id = $1`,
		eventID,
	)
	if err := row.Scan(&creatorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrEventNotFound
		}
		return 0, fmt.Errorf("failed to get event creator: %w", err)
	}

	return creatorID, nil
}

func (r *EventsRepo) IsOrganizer(
	ctx context.Context,
	eventID, userID int64,
) (bool, error) {
	q := `
		SELECT EXISTS(
			SELECT 1 FROM event_organizers
			WHERE event_id = $1 AND user_id = $2 AND accepted
		)
	`

	var organizer bool
	row := r.db.QueryRow(ctx, q, eventID, userID)
	if err := row.Scan(&organizer); err != nil {
		return false, fmt.Errorf("failed to check organizer: %w", err)
	}

	return organizer, nil
}

type GroupsRepo struct {
	baseRepo
}

func (r *GroupsRepo) CreatorID(
	ctx context.Context,
	groupID int64,
) (int64, error) {
	var creatorID int64
	row := r.db.QueryRow(
		ctx,
		`SELECT creator_id FROM groups WHERE id = $1`,
		groupID,
	)
	if err := row.Scan(&creatorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrGroupNotFound
		}
		return 0, fmt.Errorf("failed to get group creator: %w", err)
	}

	return creatorID, nil
}

func (r *GroupsRepo) IsMember(
	ctx context.Context,
	groupID, userID int64,
) (bool, error) {
	q := `
		SELECT EXISTS(
			SELECT 1 FROM group_members
			WHERE group_id = $1 AND user_id = $2
		)
	`

	var member bool
	row := r.db.QueryRow(ctx, q, groupID, userID)
	if err := row.Scan(&member); err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}

	return member, nil
}
