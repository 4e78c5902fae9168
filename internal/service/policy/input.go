package policy

import (
	"strings"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

// UpdateInput holds the parameters for replacing the moderation policy.
type UpdateInput struct {
	DailyTopicLimit      int
	DailyObjectLimit     int
	DailyRatingLimit     int
	DailyUserRatingLimit int
	DislikeTriggerStep   int
	RestrictionHours     int
	BlockedTerms         []string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	limits := []struct {
		field string
		value int
	}{
		{"daily_topic_limit", i.DailyTopicLimit},
		{"daily_object_limit", i.DailyObjectLimit},
		{"daily_rating_limit", i.DailyRatingLimit},
		{"daily_user_rating_limit", i.DailyUserRatingLimit},
		{"dislike_trigger_step", i.DislikeTriggerStep},
		{"restriction_hours", i.RestrictionHours},
	}
	for _, l := range limits {
		if l.value <= 0 {
			errs = append(errs, domain.FieldError{Field: l.field, Message: "must be positive"})
		}
	}

	for _, term := range i.BlockedTerms {
		if strings.TrimSpace(term) == "" {
			errs = append(errs, domain.FieldError{Field: "blocked_terms", Message: "terms must not be blank"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) toPolicy() domain.ModerationPolicy {
	terms := make([]string, 0, len(i.BlockedTerms))
	for _, term := range i.BlockedTerms {
		terms = append(terms, strings.TrimSpace(term))
	}
	return domain.ModerationPolicy{
		DailyTopicLimit:      i.DailyTopicLimit,
		DailyObjectLimit:     i.DailyObjectLimit,
		DailyRatingLimit:     i.DailyRatingLimit,
		DailyUserRatingLimit: i.DailyUserRatingLimit,
		DislikeTriggerStep:   i.DislikeTriggerStep,
		RestrictionHours:     i.RestrictionHours,
		BlockedTerms:         terms,
	}
}
