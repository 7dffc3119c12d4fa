package model

import (
	"context"
	"errors"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrGroupNotFound = errors.New("group not found")
)

// EventDirectory exposes the read-only event facts the authorization rules
// need. The events themselves are owned by the ticketing side of the
// platform.
//
//go:generate mockgen -package mocks -destination ../service/authz/mocks/event_directory.go . EventDirectory
type EventDirectory interface {
	CreatorID(ctx context.Context, eventID int64) (int64, error)

	// IsOrganizer reports whether the user is an accepted co-organizer of
	// the event. Pending invitations do not count.
	IsOrganizer(ctx context.Context, eventID, userID int64) (bool, error)
}

// GroupDirectory exposes the read-only group facts the authorization rules
// need.
//
//go:generate mockgen -package mocks -destination ../service/authz/mocks/group_directory.go . GroupDirectory
type GroupDirectory interface {
	CreatorID(ctx context.Context, groupID int64) (int64, error)

	// IsMember reports whether the user belongs to the group in any role.
	IsMember(ctx context.Context, groupID, userID int64) (bool, error)
}
