// Package history exposes the append-only edit-history ledger: who created,
// edited, or deleted which entity and when.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

type historyRepo interface {
	Append(ctx context.Context, e domain.EditHistoryEntry) (domain.EditHistoryEntry, error)
	ListByTarget(ctx context.Context, targetType domain.TargetType, targetID uuid.UUID) ([]domain.EditHistoryEntry, error)
	DistinctEditors(ctx context.Context, targetType domain.TargetType, targetID uuid.UUID) ([]domain.EditorSummary, error)
}

// Service provides ledger appends and queries.
type Service struct {
	entries historyRepo
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new history service.
func NewService(log *slog.Logger, entries historyRepo) *Service {
	return &Service{
		entries: entries,
		now:     time.Now,
		log:     log.With("service", "history"),
	}
}

// Append records one ledger entry. Entries are immutable once written.
func (s *Service) Append(ctx context.Context, input AppendInput) (domain.EditHistoryEntry, error) {
	if err := input.Validate(); err != nil {
		return domain.EditHistoryEntry{}, err
	}

	entry, err := s.entries.Append(ctx, domain.EditHistoryEntry{
		ID:         uuid.New(),
		TargetType: input.TargetType,
		TargetID:   input.TargetID,
		EditorID:   input.EditorID,
		Action:     input.Action,
		OldValue:   input.OldValue,
		NewValue:   input.NewValue,
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		return domain.EditHistoryEntry{}, fmt.Errorf("append history entry: %w", err)
	}
	return entry, nil
}

// History returns a target's ledger entries, oldest first.
func (s *Service) History(ctx context.Context, targetType domain.TargetType, targetID uuid.UUID) ([]domain.EditHistoryEntry, error) {
	if err := validateTarget(targetType, targetID); err != nil {
		return nil, err
	}
	entries, err := s.entries.ListByTarget(ctx, targetType, targetID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

// DistinctEditors returns one summary per editor of the target, ordered by
// each editor's first touch.
func (s *Service) DistinctEditors(ctx context.Context, targetType domain.TargetType, targetID uuid.UUID) ([]domain.EditorSummary, error) {
	if err := validateTarget(targetType, targetID); err != nil {
		return nil, err
	}
	editors, err := s.entries.DistinctEditors(ctx, targetType, targetID)
	if err != nil {
		return nil, fmt.Errorf("list editors: %w", err)
	}
	return editors, nil
}

func validateTarget(targetType domain.TargetType, targetID uuid.UUID) error {
	var errs []domain.FieldError
	if !targetType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target_type", Message: "must be TOPIC, OBJECT or RATING"})
	}
	if targetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
