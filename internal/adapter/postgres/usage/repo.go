// Package usage implements the daily usage counter repository using
// PostgreSQL. The conditional upsert makes check-and-increment a single
// atomic statement, so two near-cap requests can never both pass.
package usage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres"
	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

const table = "daily_usage_counters"

// Repo provides daily usage counter persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new usage repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// IncrementIfBelow increments the (user, day, kind) counter if its current
// value is below limit. Returns the new count and true on success, or the
// unchanged state and false when the cap is already reached. A missing row
// counts as zero. The statement is atomic; no surrounding transaction is
// needed for correctness under concurrency.
func (r *Repo) IncrementIfBelow(ctx context.Context, userID uuid.UUID, day time.Time, kind domain.UsageKind, limit int) (int, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
		INSERT INTO daily_usage_counters (user_id, day, kind, count)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (user_id, day, kind) DO UPDATE
		SET count = daily_usage_counters.count + 1
		WHERE daily_usage_counters.count < $4
		RETURNING count`

	var count int
	err := q.QueryRow(ctx, sql, userID, day, kind, limit).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Upsert matched an existing row at or above the limit.
			current, getErr := r.Get(ctx, userID, day, kind)
			if getErr != nil {
				return 0, false, getErr
			}
			return current, false, nil
		}
		return 0, false, postgres.MapError(err, "usage_counter", userID)
	}

	return count, true, nil
}

// Get returns the counter value for (user, day, kind); zero if no row exists.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, day time.Time, kind domain.UsageKind) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("count").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "day": day, "kind": kind}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("usage build get: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, postgres.MapError(err, "usage_counter", userID)
	}
	return count, nil
}
