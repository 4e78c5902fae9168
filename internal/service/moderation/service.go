// Package moderation implements community governance of entity changes:
// proposals, voting and execution. Any user may propose an edit or deletion;
// a strict majority of cast votes (or an admin override) applies it through
// the entity gateway and records it in the edit-history ledger.
package moderation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

type proposalRepo interface {
	Create(ctx context.Context, p domain.Proposal) (domain.Proposal, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Proposal, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Proposal, error)
	List(ctx context.Context, status *domain.ProposalStatus, limit, offset int) ([]domain.Proposal, error)
	MarkApproved(ctx context.Context, id uuid.UUID) error
	MarkRejected(ctx context.Context, id uuid.UUID) error
}

type voteRepo interface {
	Create(ctx context.Context, v domain.Vote) (domain.Vote, error)
	Tally(ctx context.Context, proposalID uuid.UUID) (domain.Tally, error)
	ListByProposal(ctx context.Context, proposalID uuid.UUID) ([]domain.Vote, error)
}

type entityGateway interface {
	Exists(ctx context.Context, tt domain.TargetType, id uuid.UUID) (bool, error)
	Get(ctx context.Context, tt domain.TargetType, id uuid.UUID) (domain.TargetSnapshot, error)
	Update(ctx context.Context, tt domain.TargetType, id uuid.UUID, value map[string]any) error
	Delete(ctx context.Context, tt domain.TargetType, id uuid.UUID) error
}

type ledger interface {
	Append(ctx context.Context, e domain.EditHistoryEntry) (domain.EditHistoryEntry, error)
}

type contentPolicy interface {
	CheckText(texts ...string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides proposal, voting and execution operations.
type Service struct {
	proposals proposalRepo
	votes     voteRepo
	gateway   entityGateway
	ledger    ledger
	content   contentPolicy
	tx        txManager
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new moderation service.
func NewService(
	log *slog.Logger,
	proposals proposalRepo,
	votes voteRepo,
	gateway entityGateway,
	ledger ledger,
	content contentPolicy,
	tx txManager,
) *Service {
	return &Service{
		proposals: proposals,
		votes:     votes,
		gateway:   gateway,
		ledger:    ledger,
		content:   content,
		tx:        tx,
		now:       time.Now,
		log:       log.With("service", "moderation"),
	}
}
