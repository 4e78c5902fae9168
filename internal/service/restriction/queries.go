package restriction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

// RestrictionStatus is the public view of a user's restriction state.
type RestrictionStatus struct {
	IsRestricted bool
	Restriction  *domain.UserRestriction
	History      []domain.UserRestriction
}

// Status returns whether the user is currently restricted, the active
// restriction if any, and the full restriction history.
func (s *Service) Status(ctx context.Context, userID uuid.UUID) (RestrictionStatus, error) {
	if userID == uuid.Nil {
		return RestrictionStatus{}, domain.NewValidationError("user_id", "required")
	}

	active, err := s.restrictions.ActiveForUser(ctx, userID, s.now())
	if err != nil {
		return RestrictionStatus{}, fmt.Errorf("check active restriction: %w", err)
	}
	history, err := s.restrictions.ListForUser(ctx, userID)
	if err != nil {
		return RestrictionStatus{}, fmt.Errorf("list restrictions: %w", err)
	}

	return RestrictionStatus{
		IsRestricted: active != nil,
		Restriction:  active,
		History:      history,
	}, nil
}

// EnsureNotRestricted returns domain.ErrRestricted when the user has an
// active editing ban. Gate for the topic/object/rating mutation endpoints,
// which live outside this module.
func (s *Service) EnsureNotRestricted(ctx context.Context, userID uuid.UUID) error {
	active, err := s.restrictions.ActiveForUser(ctx, userID, s.now())
	if err != nil {
		return fmt.Errorf("check active restriction: %w", err)
	}
	if active != nil {
		return fmt.Errorf("restricted until %s: %w", active.EndAt.UTC().Format(time.RFC3339), domain.ErrRestricted)
	}
	return nil
}
