package moderation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
	"github.com/xunjianyin/rank-anything-sub000/pkg/ctxutil"
)

// AdminDecision is an administrator's verdict on a proposal.
type AdminDecision string

const (
	AdminDecisionApprove AdminDecision = "APPROVE"
	AdminDecisionReject  AdminDecision = "REJECT"
)

func (d AdminDecision) IsValid() bool {
	switch d {
	case AdminDecisionApprove, AdminDecisionReject:
		return true
	}
	return false
}

// ExecuteByQuorum applies a pending proposal if the votes cast carry a strict
// majority of approvals. The proposal load, tally, entity mutation, status
// flip and ledger append all run in one transaction; on any failure the
// proposal stays PENDING and the entity is untouched.
func (s *Service) ExecuteByQuorum(ctx context.Context, proposalID uuid.UUID) (domain.Proposal, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.Proposal{}, domain.ErrUnauthorized
	}
	if proposalID == uuid.Nil {
		return domain.Proposal{}, domain.NewValidationError("proposal_id", "is required")
	}

	var executed domain.Proposal
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		proposal, err := s.proposals.GetByIDForUpdate(txCtx, proposalID)
		if err != nil {
			return fmt.Errorf("get proposal: %w", err)
		}
		if proposal.Status != domain.ProposalStatusPending {
			return fmt.Errorf("proposal is %s: %w", proposal.Status, domain.ErrConflict)
		}

		tally, err := s.votes.Tally(txCtx, proposalID)
		if err != nil {
			return fmt.Errorf("tally votes: %w", err)
		}
		if !tally.HasQuorum() {
			return fmt.Errorf("%d approvals of %d votes: %w",
				tally.Approvals, tally.Total, domain.ErrQuorumNotMet)
		}

		executed, err = s.applyAndFinalize(txCtx, proposal)
		return err
	})
	if err != nil {
		return domain.Proposal{}, err
	}

	s.log.InfoContext(ctx, "proposal executed by quorum",
		"proposal_id", executed.ID,
		"kind", executed.Kind,
	)
	return executed, nil
}

// ExecuteByAdmin finalizes a proposal by administrator fiat, skipping the
// quorum rule entirely. Approval applies the mutation and records history;
// rejection only flips the status. This is the only path that can finalize a
// proposal with zero votes.
func (s *Service) ExecuteByAdmin(ctx context.Context, proposalID uuid.UUID, decision AdminDecision) (domain.Proposal, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.Proposal{}, domain.ErrForbidden
	}
	if proposalID == uuid.Nil {
		return domain.Proposal{}, domain.NewValidationError("proposal_id", "is required")
	}
	if !decision.IsValid() {
		return domain.Proposal{}, domain.NewValidationError("decision",
			fmt.Sprintf("must be one of: %s, %s", AdminDecisionApprove, AdminDecisionReject))
	}

	var finalized domain.Proposal
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		proposal, err := s.proposals.GetByIDForUpdate(txCtx, proposalID)
		if err != nil {
			return fmt.Errorf("get proposal: %w", err)
		}
		if proposal.Status != domain.ProposalStatusPending {
			return fmt.Errorf("proposal is %s: %w", proposal.Status, domain.ErrConflict)
		}

		if decision == AdminDecisionReject {
			if err := s.proposals.MarkRejected(txCtx, proposal.ID); err != nil {
				return fmt.Errorf("mark rejected: %w", err)
			}
			proposal.Status = domain.ProposalStatusRejected
			finalized = proposal
			return nil
		}

		finalized, err = s.applyAndFinalize(txCtx, proposal)
		return err
	})
	if err != nil {
		return domain.Proposal{}, err
	}

	s.log.InfoContext(ctx, "proposal finalized by admin",
		"proposal_id", finalized.ID,
		"decision", decision,
		"status", finalized.Status,
	)
	return finalized, nil
}

// applyAndFinalize dispatches the proposal's mutation to the entity gateway,
// marks it approved and appends the ledger entry. Must run inside a
// transaction. A target that vanished between proposal and execution surfaces
// as ErrInvalidTarget; the rollback leaves the proposal PENDING.
func (s *Service) applyAndFinalize(ctx context.Context, proposal domain.Proposal) (domain.Proposal, error) {
	snapshot, err := s.gateway.Get(ctx, proposal.TargetType, proposal.TargetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Proposal{}, fmt.Errorf("%s %s is gone: %w",
				proposal.TargetType, proposal.TargetID, domain.ErrInvalidTarget)
		}
		return domain.Proposal{}, fmt.Errorf("load target: %w", err)
	}

	var action domain.HistoryAction
	var newValue map[string]any

	switch proposal.Kind {
	case domain.ProposalKindEdit:
		action = domain.HistoryActionEdit
		if err := s.gateway.Update(ctx, proposal.TargetType, proposal.TargetID, proposal.ProposedValue); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Proposal{}, fmt.Errorf("%s %s is gone: %w",
					proposal.TargetType, proposal.TargetID, domain.ErrInvalidTarget)
			}
			return domain.Proposal{}, fmt.Errorf("apply edit: %w", err)
		}
		updated, err := s.gateway.Get(ctx, proposal.TargetType, proposal.TargetID)
		if err != nil {
			return domain.Proposal{}, fmt.Errorf("load updated target: %w", err)
		}
		newValue = updated.Fields
	case domain.ProposalKindDelete:
		action = domain.HistoryActionDelete
		if err := s.gateway.Delete(ctx, proposal.TargetType, proposal.TargetID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Proposal{}, fmt.Errorf("%s %s is gone: %w",
					proposal.TargetType, proposal.TargetID, domain.ErrInvalidTarget)
			}
			return domain.Proposal{}, fmt.Errorf("apply delete: %w", err)
		}
	default:
		return domain.Proposal{}, fmt.Errorf("kind %s: %w", proposal.Kind, domain.ErrInvalidTarget)
	}

	if err := s.proposals.MarkApproved(ctx, proposal.ID); err != nil {
		return domain.Proposal{}, fmt.Errorf("mark approved: %w", err)
	}

	if _, err := s.ledger.Append(ctx, domain.EditHistoryEntry{
		ID:         uuid.New(),
		TargetType: proposal.TargetType,
		TargetID:   proposal.TargetID,
		EditorID:   proposal.ProposerID,
		Action:     action,
		OldValue:   snapshot.Fields,
		NewValue:   newValue,
		CreatedAt:  s.now().UTC(),
	}); err != nil {
		return domain.Proposal{}, fmt.Errorf("append history: %w", err)
	}

	proposal.Status = domain.ProposalStatusApproved
	return proposal, nil
}
