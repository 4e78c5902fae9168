// Package restriction implements the user-restriction repository using
// PostgreSQL. Restrictions are never deleted; expiry is a time comparison
// at read time.
package restriction

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

const table = "user_restrictions"

var columns = []string{"id", "user_id", "kind", "start_at", "end_at", "reason", "created_at"}

// Repo provides restriction persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new restriction repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a restriction and returns the persisted row.
func (r *Repo) Create(ctx context.Context, res domain.UserRestriction) (domain.UserRestriction, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(res.ID, res.UserID, res.Kind, res.StartAt, res.EndAt, res.Reason, res.CreatedAt).
		Suffix("RETURNING id, user_id, kind, start_at, end_at, reason, created_at").
		ToSql()
	if err != nil {
		return domain.UserRestriction{}, fmt.Errorf("restriction build insert: %w", err)
	}

	created, err := scanRestriction(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.UserRestriction{}, postgres.MapError(err, "restriction", res.ID)
	}
	return created, nil
}

// ActiveForUser returns the active restriction with the latest end time for a
// user at the given instant, or nil if none is active.
func (r *Repo) ActiveForUser(ctx context.Context, userID uuid.UUID, at time.Time) (*domain.UserRestriction, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.And{
			squirrel.Eq{"user_id": userID},
			squirrel.LtOrEq{"start_at": at},
			squirrel.Gt{"end_at": at},
		}).
		OrderBy("end_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("restriction build active: %w", err)
	}

	res, err := scanRestriction(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, postgres.MapError(err, "restriction", userID)
	}
	return &res, nil
}

// ListForUser returns all restrictions ever issued to a user, newest first.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.UserRestriction, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("restriction build list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("restriction list: %w", err)
	}
	defer rows.Close()

	var restrictions []domain.UserRestriction
	for rows.Next() {
		res, err := scanRestriction(rows)
		if err != nil {
			return nil, fmt.Errorf("restriction scan: %w", err)
		}
		restrictions = append(restrictions, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("restriction rows: %w", err)
	}

	return restrictions, nil
}

// LockUser serializes restriction evaluation for one user within the current
// transaction. Two concurrent dislike events for the same user cannot both
// open a ban window: the second waits on this advisory lock and then sees the
// first one's restriction.
func (r *Repo) LockUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, userID); err != nil {
		return fmt.Errorf("restriction lock user %s: %w", userID, err)
	}
	return nil
}

func scanRestriction(row pgx.Row) (domain.UserRestriction, error) {
	var res domain.UserRestriction
	err := row.Scan(&res.ID, &res.UserID, &res.Kind, &res.StartAt, &res.EndAt, &res.Reason, &res.CreatedAt)
	if err != nil {
		return domain.UserRestriction{}, err
	}
	return res, nil
}
