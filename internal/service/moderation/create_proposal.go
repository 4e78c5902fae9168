package moderation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
	"github.com/xunjianyin/rank-anything-sub000/pkg/ctxutil"
)

// CreateProposal submits a new edit or delete proposal against an existing
// entity. The proposal starts PENDING and awaits votes or an admin decision.
func (s *Service) CreateProposal(ctx context.Context, input CreateProposalInput) (domain.Proposal, error) {
	proposerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Proposal{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.Proposal{}, err
	}
	if err := s.content.CheckText(proposalTexts(input)...); err != nil {
		return domain.Proposal{}, err
	}

	exists, err := s.gateway.Exists(ctx, input.TargetType, input.TargetID)
	if err != nil {
		return domain.Proposal{}, fmt.Errorf("check target: %w", err)
	}
	if !exists {
		return domain.Proposal{}, fmt.Errorf("%s %s: %w", input.TargetType, input.TargetID, domain.ErrNotFound)
	}

	proposal, err := s.proposals.Create(ctx, domain.Proposal{
		ID:            uuid.New(),
		Kind:          input.Kind,
		TargetType:    input.TargetType,
		TargetID:      input.TargetID,
		ProposerID:    proposerID,
		ProposedValue: input.ProposedValue,
		Reason:        input.Reason,
		Status:        domain.ProposalStatusPending,
		CreatedAt:     s.now().UTC(),
	})
	if err != nil {
		return domain.Proposal{}, fmt.Errorf("create proposal: %w", err)
	}

	s.log.InfoContext(ctx, "proposal created",
		"proposal_id", proposal.ID,
		"kind", proposal.Kind,
		"target_type", proposal.TargetType,
		"target_id", proposal.TargetID,
	)
	return proposal, nil
}

// proposalTexts collects the free-text parts of a proposal for the content
// policy check: the reason plus every string (or string-slice element) in the
// proposed value.
func proposalTexts(input CreateProposalInput) []string {
	var texts []string
	if input.Reason != nil {
		texts = append(texts, *input.Reason)
	}
	for _, v := range input.ProposedValue {
		switch val := v.(type) {
		case string:
			texts = append(texts, val)
		case []string:
			texts = append(texts, val...)
		case []any:
			for _, item := range val {
				if s, ok := item.(string); ok {
					texts = append(texts, s)
				}
			}
		}
	}
	return texts
}
