package domain

import (
	"time"

	"github.com/google/uuid"
)

// Proposal is a pending request to edit or delete a topic, object, or rating,
// subject to community or admin approval. Once a proposal leaves PENDING it is
// immutable.
type Proposal struct {
	ID            uuid.UUID
	Kind          ProposalKind
	TargetType    TargetType
	TargetID      uuid.UUID
	ProposerID    uuid.UUID
	ProposedValue map[string]any // opaque payload, semantics owned by the entity gateway
	Reason        *string
	Status        ProposalStatus
	CreatedAt     time.Time
}

// Vote is a single voter's decision on a proposal. At most one vote exists per
// (proposal, voter) pair; votes are immutable once cast.
type Vote struct {
	ID         uuid.UUID
	ProposalID uuid.UUID
	VoterID    uuid.UUID
	Approve    bool
	CreatedAt  time.Time
}

// Tally is the vote count for a proposal.
type Tally struct {
	Total     int
	Approvals int
}

// HasQuorum reports whether the tally carries a strict majority of the votes
// actually cast. Zero votes never meet quorum.
func (t Tally) HasQuorum() bool {
	return t.Total > 0 && t.Approvals*2 > t.Total
}
