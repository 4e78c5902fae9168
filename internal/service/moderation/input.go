package moderation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

const (
	maxReasonLength = 2000

	defaultListLimit = 50
	maxListLimit     = 200
)

// CreateProposalInput carries the data for submitting a new proposal.
type CreateProposalInput struct {
	Kind          domain.ProposalKind
	TargetType    domain.TargetType
	TargetID      uuid.UUID
	ProposedValue map[string]any
	Reason        *string
}

func (in *CreateProposalInput) Validate() error {
	var errs []domain.FieldError

	if !in.Kind.IsValid() {
		errs = append(errs, domain.FieldError{
			Field:   "kind",
			Message: fmt.Sprintf("must be one of: %s, %s", domain.ProposalKindEdit, domain.ProposalKindDelete),
		})
	}
	if !in.TargetType.IsValid() {
		errs = append(errs, domain.FieldError{
			Field:   "target_type",
			Message: fmt.Sprintf("must be one of: %s, %s, %s", domain.TargetTypeTopic, domain.TargetTypeObject, domain.TargetTypeRating),
		})
	}
	if in.TargetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target_id", Message: "is required"})
	}
	switch in.Kind {
	case domain.ProposalKindEdit:
		if len(in.ProposedValue) == 0 {
			errs = append(errs, domain.FieldError{Field: "proposed_value", Message: "is required for EDIT proposals"})
		}
	case domain.ProposalKindDelete:
		if len(in.ProposedValue) != 0 {
			errs = append(errs, domain.FieldError{Field: "proposed_value", Message: "must be empty for DELETE proposals"})
		}
	}
	if in.Reason != nil {
		if strings.TrimSpace(*in.Reason) == "" {
			errs = append(errs, domain.FieldError{Field: "reason", Message: "must not be blank when provided"})
		} else if len(*in.Reason) > maxReasonLength {
			errs = append(errs, domain.FieldError{Field: "reason", Message: fmt.Sprintf("must be at most %d characters", maxReasonLength)})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListProposalsInput carries the filters for listing proposals.
type ListProposalsInput struct {
	Status *domain.ProposalStatus
	Limit  int
	Offset int
}

func (in *ListProposalsInput) Validate() error {
	var errs []domain.FieldError

	if in.Status != nil && !in.Status.IsValid() {
		errs = append(errs, domain.FieldError{
			Field:   "status",
			Message: fmt.Sprintf("must be one of: %s, %s, %s", domain.ProposalStatusPending, domain.ProposalStatusApproved, domain.ProposalStatusRejected),
		})
	}
	if in.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if in.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	if in.Limit == 0 {
		in.Limit = defaultListLimit
	}
	if in.Limit > maxListLimit {
		in.Limit = maxListLimit
	}
	return nil
}

// CastVoteInput carries a voter's decision on a proposal.
type CastVoteInput struct {
	ProposalID uuid.UUID
	Approve    bool
}

func (in *CastVoteInput) Validate() error {
	if in.ProposalID == uuid.Nil {
		return domain.NewValidationError("proposal_id", "is required")
	}
	return nil
}
