package domain

import (
	"time"

	"github.com/google/uuid"
)

// EditHistoryEntry is one record of the append-only edit-history ledger:
// who created, edited, or deleted which entity and when. Entries are never
// mutated; they are removed only as a cascading consequence of the target
// entity's own deletion.
type EditHistoryEntry struct {
	ID         uuid.UUID
	TargetType TargetType
	TargetID   uuid.UUID
	EditorID   uuid.UUID
	Action     HistoryAction
	OldValue   map[string]any // nullable snapshot before the change
	NewValue   map[string]any // nullable snapshot after the change
	CreatedAt  time.Time
}

// EditorSummary is the per-editor aggregation of a target's history,
// used to render "edited by A, B, C".
type EditorSummary struct {
	EditorID    uuid.UUID
	EditCount   int
	FirstEditAt time.Time
	LastEditAt  time.Time
}
