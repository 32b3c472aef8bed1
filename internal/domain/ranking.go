package domain

// ScoreMap maps candidate item id to a score produced by a single scorer.
// Scores from one scorer are comparable to each other but not across scorers
// until weighted by the combiner. A missing entry reads as 0.
type ScoreMap map[string]float64

// RankedItem is one entry of the final ranking, carrying its blended score
// for observability.
type RankedItem struct {
	ItemID string  `json:"item_id"`
	Score  float64 `json:"score"`
}

// RankedResult is the engine's output: an ordered page of item ids. It is
// created fresh per request and never cached as authoritative state.
type RankedResult struct {
	Items []RankedItem `json:"items"`
	// DegradedSignals names the scorers (or collaborators) that timed out or
	// failed while this ranking was computed. Empty on a fully healthy run
	// and on cache hits.
	DegradedSignals []string `json:"degraded_signals,omitempty"`
	CacheHit        bool     `json:"cache_hit"`
}
