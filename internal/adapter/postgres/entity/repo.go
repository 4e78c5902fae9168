// Package entity implements the gateway through which approved proposals
// touch the mutable content tables. Updates are column-whitelisted per target
// type; anything outside the whitelist is rejected before SQL is built.
package entity

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres"
	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

type tableSpec struct {
	table   string
	allowed map[string]struct{}
}

var specs = map[domain.TargetType]tableSpec{
	domain.TargetTypeTopic: {
		table:   "topics",
		allowed: map[string]struct{}{"name": {}, "description": {}},
	},
	domain.TargetTypeObject: {
		table:   "objects",
		allowed: map[string]struct{}{"name": {}, "tags": {}},
	},
	domain.TargetTypeRating: {
		table:   "ratings",
		allowed: map[string]struct{}{"score": {}, "review": {}},
	},
}

// Gateway applies governed mutations to topics, objects and ratings.
type Gateway struct {
	pool *pgxpool.Pool
}

// New creates a new entity gateway.
func New(pool *pgxpool.Pool) *Gateway {
	return &Gateway{pool: pool}
}

// Exists reports whether the target row is present.
func (g *Gateway) Exists(ctx context.Context, tt domain.TargetType, id uuid.UUID) (bool, error) {
	spec, err := specFor(tt)
	if err != nil {
		return false, err
	}
	q := postgres.QuerierFromCtx(ctx, g.pool)

	sql, args, err := postgres.Builder().
		Select("1").
		From(spec.table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("entity build exists: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, string(tt), id)
	}
	defer rows.Close()

	return rows.Next(), rows.Err()
}

// Get returns the target's editable fields and timestamps.
func (g *Gateway) Get(ctx context.Context, tt domain.TargetType, id uuid.UUID) (domain.TargetSnapshot, error) {
	spec, err := specFor(tt)
	if err != nil {
		return domain.TargetSnapshot{}, err
	}
	q := postgres.QuerierFromCtx(ctx, g.pool)

	cols := fieldColumns(tt)
	sql, args, err := postgres.Builder().
		Select(append(cols, "created_at", "updated_at")...).
		From(spec.table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.TargetSnapshot{}, fmt.Errorf("entity build select: %w", err)
	}

	dests := make([]any, len(cols)+2)
	vals := make([]any, len(cols))
	for i := range vals {
		dests[i] = &vals[i]
	}
	snap := domain.TargetSnapshot{Fields: make(map[string]any, len(cols))}
	dests[len(cols)] = &snap.CreatedAt
	dests[len(cols)+1] = &snap.UpdatedAt

	if err := q.QueryRow(ctx, sql, args...).Scan(dests...); err != nil {
		return domain.TargetSnapshot{}, postgres.MapError(err, string(tt), id)
	}
	for i, c := range cols {
		snap.Fields[c] = vals[i]
	}
	return snap, nil
}

// Update applies the whitelisted fields from value to the target row and
// bumps updated_at. An unknown or empty field set maps to domain.ErrValidation
// and a missing row to domain.ErrNotFound.
func (g *Gateway) Update(ctx context.Context, tt domain.TargetType, id uuid.UUID, value map[string]any) error {
	spec, err := specFor(tt)
	if err != nil {
		return err
	}
	if len(value) == 0 {
		return domain.NewValidationError("proposed_value", "must not be empty")
	}

	upd := postgres.Builder().Update(spec.table)
	for field, v := range value {
		if _, ok := spec.allowed[field]; !ok {
			return domain.NewValidationError("proposed_value", fmt.Sprintf("field %q is not editable on %s", field, tt))
		}
		upd = upd.Set(field, normalize(v))
	}
	upd = upd.Set("updated_at", squirrel.Expr("now()")).Where(squirrel.Eq{"id": id})

	sql, args, err := upd.ToSql()
	if err != nil {
		return fmt.Errorf("entity build update: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, g.pool)
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, string(tt), id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", tt, id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the target row together with its ledger entries. Child rows
// go with their parent via foreign keys; their ledger entries are removed
// here because the ledger's target reference is polymorphic.
func (g *Gateway) Delete(ctx context.Context, tt domain.TargetType, id uuid.UUID) error {
	spec, err := specFor(tt)
	if err != nil {
		return err
	}
	q := postgres.QuerierFromCtx(ctx, g.pool)

	for _, stmt := range historyCleanup(tt) {
		if _, err := q.Exec(ctx, stmt, id); err != nil {
			return postgres.MapError(err, string(tt), id)
		}
	}

	sql, args, err := postgres.Builder().
		Delete(spec.table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("entity build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, string(tt), id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", tt, id, domain.ErrNotFound)
	}
	return nil
}

func historyCleanup(tt domain.TargetType) []string {
	switch tt {
	case domain.TargetTypeTopic:
		return []string{
			`DELETE FROM edit_history WHERE target_type = 'RATING' AND target_id IN (
				SELECT r.id FROM ratings r JOIN objects o ON r.object_id = o.id WHERE o.topic_id = $1)`,
			`DELETE FROM edit_history WHERE target_type = 'OBJECT' AND target_id IN (
				SELECT id FROM objects WHERE topic_id = $1)`,
			`DELETE FROM edit_history WHERE target_type = 'TOPIC' AND target_id = $1`,
		}
	case domain.TargetTypeObject:
		return []string{
			`DELETE FROM edit_history WHERE target_type = 'RATING' AND target_id IN (
				SELECT id FROM ratings WHERE object_id = $1)`,
			`DELETE FROM edit_history WHERE target_type = 'OBJECT' AND target_id = $1`,
		}
	default:
		return []string{
			`DELETE FROM edit_history WHERE target_type = 'RATING' AND target_id = $1`,
		}
	}
}

func specFor(tt domain.TargetType) (tableSpec, error) {
	spec, ok := specs[tt]
	if !ok {
		return tableSpec{}, domain.NewValidationError("target_type", fmt.Sprintf("unknown target type %q", tt))
	}
	return spec, nil
}

func fieldColumns(tt domain.TargetType) []string {
	switch tt {
	case domain.TargetTypeTopic:
		return []string{"name", "description"}
	case domain.TargetTypeObject:
		return []string{"name", "tags"}
	default:
		return []string{"score", "review"}
	}
}

// normalize converts JSON-decoded values into shapes pgx can bind, most
// notably []any payloads destined for text[] columns.
func normalize(v any) any {
	arr, ok := v.([]any)
	if !ok {
		return v
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		out = append(out, fmt.Sprint(e))
	}
	return out
}
