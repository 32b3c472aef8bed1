package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pulsefeed/ranking-service/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 50
	maxOffset    = 1000
)

// GET /users/{userID}/feed
func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}

	// Parse and validate limit
	limit := defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > maxLimit {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	// Parse and validate offset
	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil || parsed < 0 || parsed > maxOffset {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid offset parameter")
			return
		}
		offset = parsed
	}

	result, err := h.engine.Rank(r.Context(), userID, limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user_not_found",
				fmt.Sprintf("User %s does not exist", userID))
			return
		}
		if errors.Is(err, domain.ErrInvalidLimit) || errors.Is(err, domain.ErrInvalidOffset) {
			writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
			return
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			writeError(w, http.StatusServiceUnavailable, "request_timeout",
				"Request timed out, please try again")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	resp := FeedResponse{
		UserID: userID,
		Items:  result.Items,
		Meta: FeedMeta{
			CacheHit:        result.CacheHit,
			GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
			TotalCount:      len(result.Items),
			DegradedSignals: result.DegradedSignals,
		},
	}

	writeJSON(w, http.StatusOK, resp)
}
