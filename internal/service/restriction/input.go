package restriction

import (
	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

// RateUserInput holds the parameters for rating another user.
type RateUserInput struct {
	RatedUserID uuid.UUID
	Value       domain.UserRatingValue
}

// Validate checks all fields and collects all errors.
func (i RateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.RatedUserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "rated_user_id", Message: "required"})
	}
	if !i.Value.IsValid() {
		errs = append(errs, domain.FieldError{Field: "value", Message: "must be LIKE or DISLIKE"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
