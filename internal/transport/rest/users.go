package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
	"github.com/xunjianyin/rank-anything-sub000/internal/service/restriction"
)

type restrictionService interface {
	Status(ctx context.Context, userID uuid.UUID) (restriction.RestrictionStatus, error)
	RateUser(ctx context.Context, input restriction.RateUserInput) (domain.UserRating, error)
}

// UserHandler serves the per-user restriction and peer-rating endpoints.
type UserHandler struct {
	svc restrictionService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc restrictionService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "users")}
}

type restrictionResponse struct {
	ID      string    `json:"id"`
	UserID  string    `json:"userId"`
	Kind    string    `json:"kind"`
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
	Reason  string    `json:"reason"`
}

type restrictionStatusResponse struct {
	IsRestricted bool                  `json:"isRestricted"`
	Restriction  *restrictionResponse  `json:"restriction,omitempty"`
	History      []restrictionResponse `json:"history"`
}

type rateUserRequest struct {
	Value string `json:"value"`
}

type userRatingResponse struct {
	ID          string    `json:"id"`
	RaterID     string    `json:"raterId"`
	RatedUserID string    `json:"ratedUserId"`
	Value       string    `json:"value"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toRestrictionResponse(r domain.UserRestriction) restrictionResponse {
	return restrictionResponse{
		ID:      r.ID.String(),
		UserID:  r.UserID.String(),
		Kind:    r.Kind,
		StartAt: r.StartAt,
		EndAt:   r.EndAt,
		Reason:  r.Reason,
	}
}

// Restrictions returns whether a user is currently restricted plus the full
// restriction history.
// GET /api/users/{id}/restrictions
func (h *UserHandler) Restrictions(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	status, err := h.svc.Status(r.Context(), userID)
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	resp := restrictionStatusResponse{
		IsRestricted: status.IsRestricted,
		History:      make([]restrictionResponse, 0, len(status.History)),
	}
	if status.Restriction != nil {
		active := toRestrictionResponse(*status.Restriction)
		resp.Restriction = &active
	}
	for _, item := range status.History {
		resp.History = append(resp.History, toRestrictionResponse(item))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Rate records the caller's like/dislike of another user.
// POST /api/users/{id}/rate
func (h *UserHandler) Rate(w http.ResponseWriter, r *http.Request) {
	ratedUserID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	var req rateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.log, err)
		return
	}

	rating, err := h.svc.RateUser(r.Context(), restriction.RateUserInput{
		RatedUserID: ratedUserID,
		Value:       domain.UserRatingValue(req.Value),
	})
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, userRatingResponse{
		ID:          rating.ID.String(),
		RaterID:     rating.RaterID.String(),
		RatedUserID: rating.RatedUserID.String(),
		Value:       rating.Value.String(),
		CreatedAt:   rating.CreatedAt,
	})
}
