// Package policy persists the single moderation policy row.
package policy

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres"
	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

const table = "moderation_policy"

var columns = []string{
	"daily_topic_limit", "daily_object_limit", "daily_rating_limit",
	"daily_user_rating_limit", "dislike_trigger_step", "restriction_hours",
	"blocked_terms", "updated_at",
}

// Repo reads and writes the moderation policy.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new policy repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the current policy.
func (r *Repo) Get(ctx context.Context) (domain.ModerationPolicy, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return domain.ModerationPolicy{}, fmt.Errorf("policy build select: %w", err)
	}

	var p domain.ModerationPolicy
	err = q.QueryRow(ctx, sql, args...).Scan(
		&p.DailyTopicLimit, &p.DailyObjectLimit, &p.DailyRatingLimit,
		&p.DailyUserRatingLimit, &p.DislikeTriggerStep, &p.RestrictionHours,
		&p.BlockedTerms, &p.UpdatedAt,
	)
	if err != nil {
		return domain.ModerationPolicy{}, postgres.MapError(err, "moderation policy", uuid.Nil)
	}
	return p, nil
}

// Update replaces the policy row and returns the stored version.
func (r *Repo) Update(ctx context.Context, p domain.ModerationPolicy) (domain.ModerationPolicy, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	terms := p.BlockedTerms
	if terms == nil {
		terms = []string{}
	}

	sql, args, err := postgres.Builder().
		Update(table).
		Set("daily_topic_limit", p.DailyTopicLimit).
		Set("daily_object_limit", p.DailyObjectLimit).
		Set("daily_rating_limit", p.DailyRatingLimit).
		Set("daily_user_rating_limit", p.DailyUserRatingLimit).
		Set("dislike_trigger_step", p.DislikeTriggerStep).
		Set("restriction_hours", p.RestrictionHours).
		Set("blocked_terms", terms).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": 1}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.ModerationPolicy{}, fmt.Errorf("policy build update: %w", err)
	}

	var stored domain.ModerationPolicy
	err = q.QueryRow(ctx, sql, args...).Scan(
		&stored.DailyTopicLimit, &stored.DailyObjectLimit, &stored.DailyRatingLimit,
		&stored.DailyUserRatingLimit, &stored.DislikeTriggerStep, &stored.RestrictionHours,
		&stored.BlockedTerms, &stored.UpdatedAt,
	)
	if err != nil {
		return domain.ModerationPolicy{}, postgres.MapError(err, "moderation policy", uuid.Nil)
	}
	return stored, nil
}
