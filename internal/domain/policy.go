package domain

import "time"

// ModerationPolicy is the persistent moderation configuration: daily creation
// caps, the automatic-restriction parameters, and the blocked-term list for
// the content policy. It lives in storage, not process memory, so admin
// changes survive restarts and are visible to every handler.
type ModerationPolicy struct {
	DailyTopicLimit      int
	DailyObjectLimit     int
	DailyRatingLimit     int
	DailyUserRatingLimit int

	// DislikeTriggerStep is the cumulative-dislike interval that triggers a
	// restriction check (every Nth dislike).
	DislikeTriggerStep int

	// RestrictionHours is the length of an automatic editing ban.
	RestrictionHours int

	// BlockedTerms are case-insensitive substrings rejected in proposal
	// reasons and proposed values.
	BlockedTerms []string

	UpdatedAt time.Time
}

// DefaultModerationPolicy returns the policy used until an admin changes it.
func DefaultModerationPolicy() ModerationPolicy {
	return ModerationPolicy{
		DailyTopicLimit:      4,
		DailyObjectLimit:     32,
		DailyRatingLimit:     64,
		DailyUserRatingLimit: 32,
		DislikeTriggerStep:   5,
		RestrictionHours:     24,
	}
}

// LimitFor returns the daily cap for the given usage kind.
func (p ModerationPolicy) LimitFor(kind UsageKind) int {
	switch kind {
	case UsageKindTopic:
		return p.DailyTopicLimit
	case UsageKindObject:
		return p.DailyObjectLimit
	case UsageKindRating:
		return p.DailyRatingLimit
	case UsageKindUserRating:
		return p.DailyUserRatingLimit
	}
	return 0
}
