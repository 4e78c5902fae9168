package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyUsageCounter is a per-user, per-calendar-day tally of one creation
// action kind. A counter for a new day simply does not exist until the first
// increment; a read that finds no row means zero.
type DailyUsageCounter struct {
	UserID uuid.UUID
	Day    time.Time // date truncated to midnight UTC
	Kind   UsageKind
	Count  int
}

// UsageDay truncates t to the UTC calendar date used as a counter key.
func UsageDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameUsageDay reports whether a and b fall on the same UTC calendar date.
func SameUsageDay(a, b time.Time) bool {
	return UsageDay(a).Equal(UsageDay(b))
}
