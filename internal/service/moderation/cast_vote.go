package moderation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
	"github.com/xunjianyin/rank-anything-sub000/pkg/ctxutil"
)

// CastVote records the caller's approve/reject vote on a pending proposal.
// A voter gets at most one vote per proposal and votes are immutable; voting
// does not trigger execution.
func (s *Service) CastVote(ctx context.Context, input CastVoteInput) (domain.Vote, error) {
	voterID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Vote{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.Vote{}, err
	}

	var vote domain.Vote
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Row lock so voting serializes against concurrent finalization:
		// once execution commits, this read sees the terminal status.
		proposal, err := s.proposals.GetByIDForUpdate(txCtx, input.ProposalID)
		if err != nil {
			return fmt.Errorf("get proposal: %w", err)
		}
		if proposal.Status != domain.ProposalStatusPending {
			return fmt.Errorf("proposal is %s: %w", proposal.Status, domain.ErrConflict)
		}

		vote, err = s.votes.Create(txCtx, domain.Vote{
			ID:         uuid.New(),
			ProposalID: input.ProposalID,
			VoterID:    voterID,
			Approve:    input.Approve,
			CreatedAt:  s.now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("cast vote: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Vote{}, err
	}

	s.log.InfoContext(ctx, "vote cast",
		"proposal_id", vote.ProposalID,
		"approve", vote.Approve,
	)
	return vote, nil
}
