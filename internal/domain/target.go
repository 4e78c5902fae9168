package domain

import "time"

// TargetSnapshot is a point-in-time view of a governed entity: its editable
// fields plus the timestamps the modification cooldown needs. The field set
// is opaque to the governance core; only the entity gateway knows the
// per-type columns behind it.
type TargetSnapshot struct {
	Fields    map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}
