package domain

import (
	"time"

	"github.com/google/uuid"
)

// RestrictionKindEditingBan is the only restriction kind currently issued.
const RestrictionKindEditingBan = "editing_ban"

// UserRestriction is a time-boxed denial of write access to an account,
// auto-triggered by accumulated peer dislikes. Restrictions are never deleted;
// they expire by time comparison.
type UserRestriction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      string
	StartAt   time.Time
	EndAt     time.Time
	Reason    string
	CreatedAt time.Time
}

// ActiveAt reports whether the restriction covers the instant t.
// The interval is half-open: startAt <= t < endAt.
func (r *UserRestriction) ActiveAt(t time.Time) bool {
	return !t.Before(r.StartAt) && t.Before(r.EndAt)
}

// UserRating is a peer like/dislike of a user. Dislikes feed the automatic
// restriction policy.
type UserRating struct {
	ID          uuid.UUID
	RaterID     uuid.UUID
	RatedUserID uuid.UUID
	Value       UserRatingValue
	CreatedAt   time.Time
}
