package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
	"github.com/xunjianyin/rank-anything-sub000/internal/service/moderation"
	"github.com/xunjianyin/rank-anything-sub000/internal/service/policy"
)

type policyService interface {
	Get(ctx context.Context) (domain.ModerationPolicy, error)
	Update(ctx context.Context, input policy.UpdateInput) (domain.ModerationPolicy, error)
}

// AdminHandler serves the admin-only proposal override and policy endpoints.
// The services enforce the admin flag themselves; non-admin callers get 403.
type AdminHandler struct {
	moderation moderationService
	policy     policyService
	log        *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(moderation moderationService, policy policyService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		moderation: moderation,
		policy:     policy,
		log:        logger.With("handler", "admin"),
	}
}

type policyRequest struct {
	DailyTopicLimit      int      `json:"dailyTopicLimit"`
	DailyObjectLimit     int      `json:"dailyObjectLimit"`
	DailyRatingLimit     int      `json:"dailyRatingLimit"`
	DailyUserRatingLimit int      `json:"dailyUserRatingLimit"`
	DislikeTriggerStep   int      `json:"dislikeTriggerStep"`
	RestrictionHours     int      `json:"restrictionHours"`
	BlockedTerms         []string `json:"blockedTerms"`
}

type policyResponse struct {
	DailyTopicLimit      int       `json:"dailyTopicLimit"`
	DailyObjectLimit     int       `json:"dailyObjectLimit"`
	DailyRatingLimit     int       `json:"dailyRatingLimit"`
	DailyUserRatingLimit int       `json:"dailyUserRatingLimit"`
	DislikeTriggerStep   int       `json:"dislikeTriggerStep"`
	RestrictionHours     int       `json:"restrictionHours"`
	BlockedTerms         []string  `json:"blockedTerms"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func toPolicyResponse(p domain.ModerationPolicy) policyResponse {
	terms := p.BlockedTerms
	if terms == nil {
		terms = []string{}
	}
	return policyResponse{
		DailyTopicLimit:      p.DailyTopicLimit,
		DailyObjectLimit:     p.DailyObjectLimit,
		DailyRatingLimit:     p.DailyRatingLimit,
		DailyUserRatingLimit: p.DailyUserRatingLimit,
		DislikeTriggerStep:   p.DislikeTriggerStep,
		RestrictionHours:     p.RestrictionHours,
		BlockedTerms:         terms,
		UpdatedAt:            p.UpdatedAt,
	}
}

// ApproveProposal finalizes a proposal by admin override, applying it.
// POST /api/admin/proposals/{id}/approve
func (h *AdminHandler) ApproveProposal(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, moderation.AdminDecisionApprove)
}

// RejectProposal finalizes a proposal by admin override without applying it.
// POST /api/admin/proposals/{id}/reject
func (h *AdminHandler) RejectProposal(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, moderation.AdminDecisionReject)
}

func (h *AdminHandler) decide(w http.ResponseWriter, r *http.Request, decision moderation.AdminDecision) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	proposal, err := h.moderation.ExecuteByAdmin(r.Context(), id, decision)
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProposalResponse(proposal))
}

// GetPolicy returns the current moderation policy.
// GET /api/admin/policy
func (h *AdminHandler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	current, err := h.policy.Get(r.Context())
	if err != nil {
		handleError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPolicyResponse(current))
}

// UpdatePolicy replaces the moderation policy.
// PUT /api/admin/policy
func (h *AdminHandler) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	var req policyRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.log, err)
		return
	}

	updated, err := h.policy.Update(r.Context(), policy.UpdateInput{
		DailyTopicLimit:      req.DailyTopicLimit,
		DailyObjectLimit:     req.DailyObjectLimit,
		DailyRatingLimit:     req.DailyRatingLimit,
		DailyUserRatingLimit: req.DailyUserRatingLimit,
		DislikeTriggerStep:   req.DislikeTriggerStep,
		RestrictionHours:     req.RestrictionHours,
		BlockedTerms:         req.BlockedTerms,
	})
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPolicyResponse(updated))
}
