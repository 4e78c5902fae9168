package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
	"github.com/xunjianyin/rank-anything-sub000/internal/service/moderation"
)

type moderationService interface {
	CreateProposal(ctx context.Context, input moderation.CreateProposalInput) (domain.Proposal, error)
	GetProposal(ctx context.Context, id uuid.UUID) (moderation.ProposalDetails, error)
	ListProposals(ctx context.Context, input moderation.ListProposalsInput) ([]domain.Proposal, error)
	GetVotes(ctx context.Context, proposalID uuid.UUID) ([]domain.Vote, error)
	CastVote(ctx context.Context, input moderation.CastVoteInput) (domain.Vote, error)
	ExecuteByQuorum(ctx context.Context, proposalID uuid.UUID) (domain.Proposal, error)
	ExecuteByAdmin(ctx context.Context, proposalID uuid.UUID, decision moderation.AdminDecision) (domain.Proposal, error)
}

// ProposalHandler serves the proposal, vote and execution endpoints.
type ProposalHandler struct {
	svc moderationService
	log *slog.Logger
}

// NewProposalHandler creates a ProposalHandler.
func NewProposalHandler(svc moderationService, logger *slog.Logger) *ProposalHandler {
	return &ProposalHandler{svc: svc, log: logger.With("handler", "proposals")}
}

type createProposalRequest struct {
	Kind          string         `json:"kind"`
	TargetType    string         `json:"targetType"`
	TargetID      string         `json:"targetId"`
	ProposedValue map[string]any `json:"proposedValue,omitempty"`
	Reason        *string        `json:"reason,omitempty"`
}

type castVoteRequest struct {
	Approve bool `json:"approve"`
}

type proposalResponse struct {
	ID            string         `json:"id"`
	Kind          string         `json:"kind"`
	TargetType    string         `json:"targetType"`
	TargetID      string         `json:"targetId"`
	ProposerID    string         `json:"proposerId"`
	ProposedValue map[string]any `json:"proposedValue,omitempty"`
	Reason        *string        `json:"reason,omitempty"`
	Status        string         `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type tallyResponse struct {
	Total     int `json:"total"`
	Approvals int `json:"approvals"`
}

type proposalDetailsResponse struct {
	proposalResponse
	Tally tallyResponse `json:"tally"`
}

type voteResponse struct {
	ID         string    `json:"id"`
	ProposalID string    `json:"proposalId"`
	VoterID    string    `json:"voterId"`
	Approve    bool      `json:"approve"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toProposalResponse(p domain.Proposal) proposalResponse {
	return proposalResponse{
		ID:            p.ID.String(),
		Kind:          p.Kind.String(),
		TargetType:    p.TargetType.String(),
		TargetID:      p.TargetID.String(),
		ProposerID:    p.ProposerID.String(),
		ProposedValue: p.ProposedValue,
		Reason:        p.Reason,
		Status:        p.Status.String(),
		CreatedAt:     p.CreatedAt,
	}
}

func toVoteResponse(v domain.Vote) voteResponse {
	return voteResponse{
		ID:         v.ID.String(),
		ProposalID: v.ProposalID.String(),
		VoterID:    v.VoterID.String(),
		Approve:    v.Approve,
		CreatedAt:  v.CreatedAt,
	}
}

// Create submits a new proposal.
// POST /api/proposals
func (h *ProposalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProposalRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.log, err)
		return
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		handleError(w, h.log, domain.NewValidationError("targetId", "must be a valid UUID"))
		return
	}

	proposal, err := h.svc.CreateProposal(r.Context(), moderation.CreateProposalInput{
		Kind:          domain.ProposalKind(req.Kind),
		TargetType:    domain.TargetType(req.TargetType),
		TargetID:      targetID,
		ProposedValue: req.ProposedValue,
		Reason:        req.Reason,
	})
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProposalResponse(proposal))
}

// List returns proposals newest first, optionally filtered by status.
// GET /api/proposals?status=&limit=&offset=
func (h *ProposalHandler) List(w http.ResponseWriter, r *http.Request) {
	input := moderation.ListProposalsInput{}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.ProposalStatus(raw)
		input.Status = &status
	}
	var err error
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		handleError(w, h.log, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset"); err != nil {
		handleError(w, h.log, err)
		return
	}

	proposals, err := h.svc.ListProposals(r.Context(), input)
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	resp := make([]proposalResponse, 0, len(proposals))
	for _, p := range proposals {
		resp = append(resp, toProposalResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single proposal with its vote tally.
// GET /api/proposals/{id}
func (h *ProposalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	details, err := h.svc.GetProposal(r.Context(), id)
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, proposalDetailsResponse{
		proposalResponse: toProposalResponse(details.Proposal),
		Tally: tallyResponse{
			Total:     details.Tally.Total,
			Approvals: details.Tally.Approvals,
		},
	})
}

// Votes returns every vote cast on a proposal.
// GET /api/proposals/{id}/votes
func (h *ProposalHandler) Votes(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	votes, err := h.svc.GetVotes(r.Context(), id)
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	resp := make([]voteResponse, 0, len(votes))
	for _, v := range votes {
		resp = append(resp, toVoteResponse(v))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Vote records the caller's decision on a proposal.
// POST /api/proposals/{id}/vote
func (h *ProposalHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	var req castVoteRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.log, err)
		return
	}

	vote, err := h.svc.CastVote(r.Context(), moderation.CastVoteInput{
		ProposalID: id,
		Approve:    req.Approve,
	})
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toVoteResponse(vote))
}

// Execute applies a proposal through the quorum path.
// POST /api/proposals/{id}/execute
func (h *ProposalHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	proposal, err := h.svc.ExecuteByQuorum(r.Context(), id)
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProposalResponse(proposal))
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}
