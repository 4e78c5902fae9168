package history

import (
	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

// AppendInput holds the parameters for one ledger entry.
type AppendInput struct {
	TargetType domain.TargetType
	TargetID   uuid.UUID
	EditorID   uuid.UUID
	Action     domain.HistoryAction
	OldValue   map[string]any
	NewValue   map[string]any
}

// Validate checks all fields and collects all errors.
func (i AppendInput) Validate() error {
	var errs []domain.FieldError

	if !i.TargetType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target_type", Message: "must be TOPIC, OBJECT or RATING"})
	}
	if i.TargetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target_id", Message: "required"})
	}
	if i.EditorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "editor_id", Message: "required"})
	}
	if !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "must be CREATE, EDIT or DELETE"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
