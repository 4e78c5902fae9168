// Package ratelimit enforces the server-authoritative per-user daily creation
// caps and the once-per-day modification cooldown. Counters live in storage;
// the check-and-increment is a single atomic statement, so concurrent requests
// near a cap can never both pass.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
	"github.com/xunjianyin/rank-anything-sub000/pkg/ctxutil"
)

type usageRepo interface {
	IncrementIfBelow(ctx context.Context, userID uuid.UUID, day time.Time, kind domain.UsageKind, limit int) (int, bool, error)
	Get(ctx context.Context, userID uuid.UUID, day time.Time, kind domain.UsageKind) (int, error)
}

type policyProvider interface {
	Snapshot() domain.ModerationPolicy
}

// Service provides daily usage accounting.
type Service struct {
	usage  usageRepo
	policy policyProvider
	now    func() time.Time
	log    *slog.Logger
}

// NewService creates a new rate limit service.
func NewService(log *slog.Logger, usage usageRepo, policy policyProvider) *Service {
	return &Service{
		usage:  usage,
		policy: policy,
		now:    time.Now,
		log:    log.With("service", "ratelimit"),
	}
}

// CheckAndIncrement consumes one unit of the caller's daily allowance for the
// given action kind. Admin sessions are unlimited and leave the counter
// untouched. A reached cap maps to domain.ErrRateLimited with the cap value
// in the message.
func (s *Service) CheckAndIncrement(ctx context.Context, userID uuid.UUID, kind domain.UsageKind) error {
	if !kind.IsValid() {
		return domain.NewValidationError("kind", fmt.Sprintf("unknown usage kind %q", kind))
	}
	if ctxutil.IsAdminCtx(ctx) {
		return nil
	}

	limit := s.policy.Snapshot().LimitFor(kind)
	day := domain.UsageDay(s.now())

	count, ok, err := s.usage.IncrementIfBelow(ctx, userID, day, kind, limit)
	if err != nil {
		return fmt.Errorf("increment usage counter: %w", err)
	}
	if !ok {
		s.log.InfoContext(ctx, "daily limit reached",
			slog.String("user_id", userID.String()),
			slog.String("kind", string(kind)),
			slog.Int("limit", limit),
		)
		return fmt.Errorf("%s daily limit of %d reached: %w", kind, limit, domain.ErrRateLimited)
	}

	s.log.DebugContext(ctx, "usage counted",
		slog.String("user_id", userID.String()),
		slog.String("kind", string(kind)),
		slog.Int("count", count),
	)
	return nil
}

// Remaining reports how much of today's allowance is left for the kind.
// Quota display for the entity endpoints, which live outside this module.
func (s *Service) Remaining(ctx context.Context, userID uuid.UUID, kind domain.UsageKind) (int, error) {
	limit := s.policy.Snapshot().LimitFor(kind)
	count, err := s.usage.Get(ctx, userID, domain.UsageDay(s.now()), kind)
	if err != nil {
		return 0, fmt.Errorf("read usage counter: %w", err)
	}
	if count >= limit {
		return 0, nil
	}
	return limit - count, nil
}

// CanModify reports whether the cooldown allows editing an entity with the
// given timestamps right now. Gate for the entity mutation endpoints, which
// live outside this module.
func (s *Service) CanModify(createdAt, updatedAt time.Time) bool {
	return CanModifyToday(createdAt, updatedAt, s.now())
}

// CanModifyToday implements the modification cooldown: an entity edited
// earlier today cannot be edited again until the next UTC day. A row whose
// updatedAt still equals createdAt has never been edited, so its first edit
// is allowed at any time.
func CanModifyToday(createdAt, updatedAt, now time.Time) bool {
	if !domain.SameUsageDay(updatedAt, now) {
		return true
	}
	return updatedAt.Equal(createdAt)
}
