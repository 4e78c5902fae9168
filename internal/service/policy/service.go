// Package policy manages the persistent moderation policy: daily creation
// caps, restriction parameters and the blocked-term list. The stored row is
// the source of truth; services read a process-local snapshot that is swapped
// atomically on every update, so admin changes take effect without a restart.
package policy

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
	"github.com/xunjianyin/rank-anything-sub000/pkg/ctxutil"
)

type policyRepo interface {
	Get(ctx context.Context) (domain.ModerationPolicy, error)
	Update(ctx context.Context, p domain.ModerationPolicy) (domain.ModerationPolicy, error)
}

// Service provides moderation policy reads and admin updates.
type Service struct {
	repo    policyRepo
	current atomic.Pointer[domain.ModerationPolicy]
	log     *slog.Logger
}

// NewService creates a new policy service. The snapshot starts at the
// compiled-in defaults until Load or Update replaces it.
func NewService(log *slog.Logger, repo policyRepo) *Service {
	s := &Service{
		repo: repo,
		log:  log.With("service", "policy"),
	}
	def := domain.DefaultModerationPolicy()
	s.current.Store(&def)
	return s
}

// Load reads the stored policy and installs it as the current snapshot.
// Called once at startup.
func (s *Service) Load(ctx context.Context) error {
	p, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("load moderation policy: %w", err)
	}
	s.current.Store(&p)
	return nil
}

// Snapshot returns the current policy without touching storage.
func (s *Service) Snapshot() domain.ModerationPolicy {
	return *s.current.Load()
}

// Get returns the stored policy. Admin only.
func (s *Service) Get(ctx context.Context) (domain.ModerationPolicy, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ModerationPolicy{}, domain.ErrForbidden
	}
	return s.repo.Get(ctx)
}

// Update validates and persists a new policy, then swaps the snapshot.
// Admin only.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.ModerationPolicy, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ModerationPolicy{}, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return domain.ModerationPolicy{}, err
	}

	stored, err := s.repo.Update(ctx, input.toPolicy())
	if err != nil {
		return domain.ModerationPolicy{}, fmt.Errorf("update moderation policy: %w", err)
	}
	s.current.Store(&stored)

	s.log.InfoContext(ctx, "moderation policy updated",
		slog.Int("daily_topic_limit", stored.DailyTopicLimit),
		slog.Int("dislike_trigger_step", stored.DislikeTriggerStep),
		slog.Int("restriction_hours", stored.RestrictionHours),
		slog.Int("blocked_terms", len(stored.BlockedTerms)),
	)
	return stored, nil
}
