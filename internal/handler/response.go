package handler

import "github.com/pulsefeed/ranking-service/internal/domain"

type FeedMeta struct {
	CacheHit        bool     `json:"cache_hit"`
	GeneratedAt     string   `json:"generated_at"`
	TotalCount      int      `json:"total_count"`
	DegradedSignals []string `json:"degraded_signals,omitempty"`
}

type FeedResponse struct {
	UserID string              `json:"user_id"`
	Items  []domain.RankedItem `json:"items"`
	Meta   FeedMeta            `json:"metadata"`
}

type InteractionRequest struct {
	ItemID string `json:"item_id"`
	Kind   string `json:"kind"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
