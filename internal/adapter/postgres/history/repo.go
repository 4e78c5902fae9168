// Package history implements the append-only edit-history ledger using
// PostgreSQL. Entries are never updated; deletion happens only as a cascade
// when the entity gateway removes the target entity itself.
package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres"
	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

const table = "edit_history"

var columns = []string{
	"id", "target_type", "target_id", "editor_id", "action",
	"old_value", "new_value", "created_at",
}

// Repo provides edit-history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Append inserts a ledger entry and returns the persisted row.
func (r *Repo) Append(ctx context.Context, e domain.EditHistoryEntry) (domain.EditHistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	oldJSON, err := marshalSnapshot(e.OldValue)
	if err != nil {
		return domain.EditHistoryEntry{}, fmt.Errorf("history marshal old_value: %w", err)
	}
	newJSON, err := marshalSnapshot(e.NewValue)
	if err != nil {
		return domain.EditHistoryEntry{}, fmt.Errorf("history marshal new_value: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(e.ID, e.TargetType, e.TargetID, e.EditorID, e.Action,
			oldJSON, newJSON, e.CreatedAt).
		Suffix("RETURNING id, target_type, target_id, editor_id, action, old_value, new_value, created_at").
		ToSql()
	if err != nil {
		return domain.EditHistoryEntry{}, fmt.Errorf("history build insert: %w", err)
	}

	entry, err := scanEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.EditHistoryEntry{}, postgres.MapError(err, "edit_history", e.ID)
	}
	return entry, nil
}

// ListByTarget returns the history of a target, oldest first.
func (r *Repo) ListByTarget(ctx context.Context, targetType domain.TargetType, targetID uuid.UUID) ([]domain.EditHistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"target_type": targetType, "target_id": targetID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("history build list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("history list: %w", err)
	}
	defer rows.Close()

	var entries []domain.EditHistoryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("history scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history rows: %w", err)
	}

	return entries, nil
}

// DistinctEditors groups a target's history by editor and returns one summary
// per editor, ordered by first edit.
func (r *Repo) DistinctEditors(ctx context.Context, targetType domain.TargetType, targetID uuid.UUID) ([]domain.EditorSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("editor_id", "COUNT(*)", "MIN(created_at)", "MAX(created_at)").
		From(table).
		Where(squirrel.Eq{"target_type": targetType, "target_id": targetID}).
		GroupBy("editor_id").
		OrderBy("MIN(created_at) ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("history build editors: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("history editors: %w", err)
	}
	defer rows.Close()

	var editors []domain.EditorSummary
	for rows.Next() {
		var s domain.EditorSummary
		if err := rows.Scan(&s.EditorID, &s.EditCount, &s.FirstEditAt, &s.LastEditAt); err != nil {
			return nil, fmt.Errorf("history editors scan: %w", err)
		}
		editors = append(editors, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history editors rows: %w", err)
	}

	return editors, nil
}

func marshalSnapshot(m map[string]any) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func scanEntry(row pgx.Row) (domain.EditHistoryEntry, error) {
	var (
		e       domain.EditHistoryEntry
		oldJSON []byte
		newJSON []byte
	)
	err := row.Scan(&e.ID, &e.TargetType, &e.TargetID, &e.EditorID, &e.Action,
		&oldJSON, &newJSON, &e.CreatedAt)
	if err != nil {
		return domain.EditHistoryEntry{}, err
	}

	if len(oldJSON) > 0 {
		e.OldValue = make(map[string]any)
		if err := json.Unmarshal(oldJSON, &e.OldValue); err != nil {
			return domain.EditHistoryEntry{}, fmt.Errorf("edit_history %s unmarshal old_value: %w", e.ID, err)
		}
	}
	if len(newJSON) > 0 {
		e.NewValue = make(map[string]any)
		if err := json.Unmarshal(newJSON, &e.NewValue); err != nil {
			return domain.EditHistoryEntry{}, fmt.Errorf("edit_history %s unmarshal new_value: %w", e.ID, err)
		}
	}

	return e, nil
}
