// Package restriction implements peer user-ratings and the automatic editing
// bans they trigger. Every 5th cumulative dislike (configurable) opens a 24h
// ban unless one is already active; bans expire by time comparison only.
package restriction

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

type restrictionRepo interface {
	Create(ctx context.Context, r domain.UserRestriction) (domain.UserRestriction, error)
	ActiveForUser(ctx context.Context, userID uuid.UUID, at time.Time) (*domain.UserRestriction, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.UserRestriction, error)
	LockUser(ctx context.Context, userID uuid.UUID) error
}

type userRatingRepo interface {
	Upsert(ctx context.Context, rating domain.UserRating) (domain.UserRating, error)
	CountDislikes(ctx context.Context, ratedUserID uuid.UUID) (int, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
}

type rateLimiter interface {
	CheckAndIncrement(ctx context.Context, userID uuid.UUID, kind domain.UsageKind) error
}

type policyProvider interface {
	Snapshot() domain.ModerationPolicy
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides peer ratings and restriction queries.
type Service struct {
	restrictions restrictionRepo
	ratings      userRatingRepo
	users        userRepo
	limiter      rateLimiter
	policy       policyProvider
	tx           txManager
	now          func() time.Time
	log          *slog.Logger
}

// NewService creates a new restriction service.
func NewService(
	log *slog.Logger,
	restrictions restrictionRepo,
	ratings userRatingRepo,
	users userRepo,
	limiter rateLimiter,
	policy policyProvider,
	tx txManager,
) *Service {
	return &Service{
		restrictions: restrictions,
		ratings:      ratings,
		users:        users,
		limiter:      limiter,
		policy:       policy,
		tx:           tx,
		now:          time.Now,
		log:          log.With("service", "restriction"),
	}
}
