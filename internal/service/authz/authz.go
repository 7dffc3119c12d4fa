package authz

import (
	"context"
	"errors"
	"fmt"

	"hangpay/internal/model"
)

// Decision is the outcome of one authorization check. Reason is set only
// when access is denied and is safe to show to the caller.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Service answers who may view and who may withdraw from a wallet. It is a
// pure read over the event and group directories and has no side effects.
type Service struct {
	events model.EventDirectory
	groups model.GroupDirectory
}

func NewService(events model.EventDirectory, groups model.GroupDirectory) *Service {
	return &Service{
		events: events,
		groups: groups,
	}
}

func (s *Service) CanView(
	ctx context.Context,
	owner model.WalletOwner,
	userID int64,
	isAdmin bool,
) (Decision, error) {
	if isAdmin {
		return allow(), nil
	}

	switch owner.Type {
	case model.OwnerTypePlatform:
		return deny("platform wallet is restricted to administrators"), nil

	case model.OwnerTypeEvent:
		creatorID, err := s.events.CreatorID(ctx, owner.ID)
		if err != nil {
			return Decision{}, fmt.Errorf("event lookup: %w", err)
		}
		if creatorID == userID {
			return allow(), nil
		}
		organizer, err := s.events.IsOrganizer(ctx, owner.ID, userID)
		if err != nil {
			return Decision{}, fmt.Errorf("organizer lookup: %w", err)
		}
		if organizer {
			return allow(), nil
		}
		return deny("only the event creator or co-organizers may view this wallet"), nil

	case model.OwnerTypeGroup:
		creatorID, err := s.groups.CreatorID(ctx, owner.ID)
		if err != nil {
			return Decision{}, fmt.Errorf("group lookup: %w", err)
		}
		if creatorID == userID {
			return allow(), nil
		}
		member, err := s.groups.IsMember(ctx, owner.ID, userID)
		if err != nil {
			return Decision{}, fmt.Errorf("membership lookup: %w", err)
		}
		if member {
			return allow(), nil
		}
		return deny("only group members may view this wallet"), nil

	default:
		return deny(fmt.Sprintf("unknown owner type %q", owner.Type)), nil
	}
}

// CanWithdraw is stricter than CanView: only the creator may withdraw, and
// the platform wallet is never withdrawable. Admin status grants nothing
// here.
func (s *Service) CanWithdraw(
	ctx context.Context,
	owner model.WalletOwner,
	userID int64,
) (Decision, error) {
	switch owner.Type {
	case model.OwnerTypePlatform:
		return deny("platform wallet withdrawals are not supported"), nil

	case model.OwnerTypeEvent:
		creatorID, err := s.events.CreatorID(ctx, owner.ID)
		if err != nil {
			return Decision{}, fmt.Errorf("event lookup: %w", err)
		}
		if creatorID != userID {
			return deny("only the event creator may withdraw"), nil
		}
		return allow(), nil

	case model.OwnerTypeGroup:
		creatorID, err := s.groups.CreatorID(ctx, owner.ID)
		if err != nil {
			return Decision{}, fmt.Errorf("group lookup: %w", err)
		}
		if creatorID != userID {
			return deny("only the group creator may withdraw"), nil
		}
		return allow(), nil

	default:
		return deny(fmt.Sprintf("unknown owner type %q", owner.Type)), nil
	}
}

// DeniedError converts a denial into the shared sentinel so callers can map
// it uniformly.
func DeniedError(d Decision) error {
	if d.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", model.ErrNotAuthorized, d.Reason)
}

// IsNotFound reports whether an authorization lookup failed because the
// owner itself does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, model.ErrEventNotFound) ||
		errors.Is(err, model.ErrGroupNotFound)
}
