// Package userrating implements the peer-rating repository using PostgreSQL.
// One row per (rater, rated) pair; re-rating replaces the value.
package userrating

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres"
	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

const table = "user_ratings"

// Repo provides peer-rating persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user-rating repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert records a peer rating, replacing any previous rating of the same
// user by the same rater. Returns the persisted row.
func (r *Repo) Upsert(ctx context.Context, rating domain.UserRating) (domain.UserRating, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "rater_id", "rated_user_id", "value", "created_at").
		Values(rating.ID, rating.RaterID, rating.RatedUserID, rating.Value, rating.CreatedAt).
		Suffix(`ON CONFLICT (rater_id, rated_user_id) DO UPDATE SET value = EXCLUDED.value
			RETURNING id, rater_id, rated_user_id, value, created_at`).
		ToSql()
	if err != nil {
		return domain.UserRating{}, fmt.Errorf("user_rating build upsert: %w", err)
	}

	var saved domain.UserRating
	err = q.QueryRow(ctx, sql, args...).Scan(
		&saved.ID, &saved.RaterID, &saved.RatedUserID, &saved.Value, &saved.CreatedAt)
	if err != nil {
		return domain.UserRating{}, postgres.MapError(err, "user_rating", rating.ID)
	}
	return saved, nil
}

// CountDislikes returns the number of users currently disliking the given user.
func (r *Repo) CountDislikes(ctx context.Context, ratedUserID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"rated_user_id": ratedUserID, "value": domain.UserRatingDislike}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("user_rating build count: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "user_rating", ratedUserID)
	}
	return count, nil
}
