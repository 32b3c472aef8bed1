package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pulsefeed/ranking-service/internal/domain"
)

// Ranker is the engine surface the HTTP layer consumes.
type Ranker interface {
	Rank(ctx context.Context, userID string, limit, offset int) (*domain.RankedResult, error)
	RecordInteraction(ctx context.Context, userID, itemID string, kind domain.InteractionKind) error
}

type Handler struct {
	engine Ranker
}

func NewHandler(engine Ranker) *Handler {
	return &Handler{engine: engine}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}
