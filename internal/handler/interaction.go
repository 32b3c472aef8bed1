package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pulsefeed/ranking-service/internal/domain"
)

// POST /users/{userID}/interactions
func (h *Handler) PostInteraction(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}

	var req InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "item_id is required")
		return
	}
	kind := domain.InteractionKind(req.Kind)
	if !domain.ValidInteractionKind(kind) {
		writeError(w, http.StatusBadRequest, "invalid_parameter",
			fmt.Sprintf("Unknown interaction kind %q", req.Kind))
		return
	}

	if err := h.engine.RecordInteraction(r.Context(), userID, req.ItemID, kind); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, "item_not_found",
				fmt.Sprintf("Item %s does not exist", req.ItemID))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
