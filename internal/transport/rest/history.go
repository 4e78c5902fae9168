package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

type historyService interface {
	History(ctx context.Context, targetType domain.TargetType, targetID uuid.UUID) ([]domain.EditHistoryEntry, error)
	DistinctEditors(ctx context.Context, targetType domain.TargetType, targetID uuid.UUID) ([]domain.EditorSummary, error)
}

// HistoryHandler serves the edit-history ledger endpoints.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

type historyEntryResponse struct {
	ID         string         `json:"id"`
	TargetType string         `json:"targetType"`
	TargetID   string         `json:"targetId"`
	EditorID   string         `json:"editorId"`
	Action     string         `json:"action"`
	OldValue   map[string]any `json:"oldValue,omitempty"`
	NewValue   map[string]any `json:"newValue,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type editorSummaryResponse struct {
	EditorID    string    `json:"editorId"`
	EditCount   int       `json:"editCount"`
	FirstEditAt time.Time `json:"firstEditAt"`
	LastEditAt  time.Time `json:"lastEditAt"`
}

// History returns a target's edit history, oldest first.
// GET /api/edit-history/{targetType}/{targetID}
func (h *HistoryHandler) History(w http.ResponseWriter, r *http.Request) {
	targetType, targetID, err := targetFromPath(r)
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	entries, err := h.svc.History(r.Context(), targetType, targetID)
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	resp := make([]historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, historyEntryResponse{
			ID:         e.ID.String(),
			TargetType: e.TargetType.String(),
			TargetID:   e.TargetID.String(),
			EditorID:   e.EditorID.String(),
			Action:     e.Action.String(),
			OldValue:   e.OldValue,
			NewValue:   e.NewValue,
			CreatedAt:  e.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Editors returns the distinct editors of a target, ordered by first edit.
// GET /api/editors/{targetType}/{targetID}
func (h *HistoryHandler) Editors(w http.ResponseWriter, r *http.Request) {
	targetType, targetID, err := targetFromPath(r)
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	editors, err := h.svc.DistinctEditors(r.Context(), targetType, targetID)
	if err != nil {
		handleError(w, h.log, err)
		return
	}

	resp := make([]editorSummaryResponse, 0, len(editors))
	for _, e := range editors {
		resp = append(resp, editorSummaryResponse{
			EditorID:    e.EditorID.String(),
			EditCount:   e.EditCount,
			FirstEditAt: e.FirstEditAt,
			LastEditAt:  e.LastEditAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func targetFromPath(r *http.Request) (domain.TargetType, uuid.UUID, error) {
	targetType := domain.TargetType(strings.ToUpper(r.PathValue("targetType")))
	if !targetType.IsValid() {
		return "", uuid.Nil, domain.NewValidationError("targetType", "must be one of: TOPIC, OBJECT, RATING")
	}
	targetID, err := uuid.Parse(r.PathValue("targetID"))
	if err != nil {
		return "", uuid.Nil, domain.NewValidationError("targetID", "must be a valid UUID")
	}
	return targetType, targetID, nil
}
