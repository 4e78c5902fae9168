package moderation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

// ProposalDetails is a proposal together with its current vote tally.
type ProposalDetails struct {
	Proposal domain.Proposal
	Tally    domain.Tally
}

// GetProposal returns a single proposal with its tally.
func (s *Service) GetProposal(ctx context.Context, id uuid.UUID) (ProposalDetails, error) {
	if id == uuid.Nil {
		return ProposalDetails{}, domain.NewValidationError("proposal_id", "is required")
	}

	proposal, err := s.proposals.GetByID(ctx, id)
	if err != nil {
		return ProposalDetails{}, fmt.Errorf("get proposal: %w", err)
	}
	tally, err := s.votes.Tally(ctx, id)
	if err != nil {
		return ProposalDetails{}, fmt.Errorf("tally votes: %w", err)
	}

	return ProposalDetails{Proposal: proposal, Tally: tally}, nil
}

// ListProposals returns proposals newest first, optionally filtered by status.
func (s *Service) ListProposals(ctx context.Context, input ListProposalsInput) ([]domain.Proposal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	proposals, err := s.proposals.List(ctx, input.Status, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	return proposals, nil
}

// GetVotes returns every vote cast on a proposal, oldest first.
func (s *Service) GetVotes(ctx context.Context, proposalID uuid.UUID) ([]domain.Vote, error) {
	if proposalID == uuid.Nil {
		return nil, domain.NewValidationError("proposal_id", "is required")
	}
	if _, err := s.proposals.GetByID(ctx, proposalID); err != nil {
		return nil, fmt.Errorf("get proposal: %w", err)
	}

	votes, err := s.votes.ListByProposal(ctx, proposalID)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	return votes, nil
}
