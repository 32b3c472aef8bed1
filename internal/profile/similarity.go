package profile

import "hash/fnv"

// SimilarityStrategy judges how behaviorally similar a candidate neighbor is
// to the requesting user. Implementations must return a weight in [0,1] and
// be deterministic for a given pair. A learned behavioral model can be
// substituted here without touching the Builder contract.
type SimilarityStrategy interface {
	Similarity(userID, neighborID string) float64
}

// HashSimilarity is the default strategy: a stable FNV-1a hash of the user
// pair mapped into [0.3, 0.9]. It stands in for a real behavioral model
// while keeping rankings reproducible across runs.
type HashSimilarity struct{}

const (
	hashSimMin  = 0.3
	hashSimSpan = 0.6
)

func (HashSimilarity) Similarity(userID, neighborID string) float64 {
	h := fnv.New64a()
	h.Write([]byte(userID))
	h.Write([]byte{0})
	h.Write([]byte(neighborID))
	frac := float64(h.Sum64()%10000) / 10000.0
	return hashSimMin + frac*hashSimSpan
}
