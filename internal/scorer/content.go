package scorer

import (
	"math"
	"time"

	"github.com/pulsefeed/ranking-service/internal/domain"
	"github.com/pulsefeed/ranking-service/internal/feature"
)

const (
	contentSimilarityWeight = 0.6
	contentFreshnessWeight  = 0.2
	contentQualityWeight    = 0.2

	// freshnessHorizon is how long an item takes to decay to zero freshness.
	freshnessHorizonHours = 168.0
)

// Content scores candidates by cosine similarity between the user's
// preference vector and each candidate's feature vector, blended with
// freshness and the editorial quality prior.
type Content struct{}

func NewContent() *Content {
	return &Content{}
}

// Score is pure: same profile, candidates and clock always produce the same
// map. A profile with no preference signal yields an empty map so the caller
// falls back to trending. Self-authored candidates are excluded entirely.
func (s *Content) Score(p *domain.UserProfile, candidates []domain.CandidateItem, now time.Time) domain.ScoreMap {
	scores := make(domain.ScoreMap)
	if !p.HasPreferenceSignal() {
		return scores
	}

	for _, c := range candidates {
		if c.AuthorID == p.UserID {
			continue
		}
		similarity := feature.Cosine(p.Preferences, feature.Extract(c))
		scores[c.ID] = contentSimilarityWeight*similarity +
			contentFreshnessWeight*Freshness(c.CreatedAt, now) +
			contentQualityWeight*(c.QualityPrior/10)
	}

	return scores
}

// Freshness decays linearly from 1 at age zero to 0 at the horizon; items
// older than that clamp to 0 rather than going negative.
func Freshness(createdAt, now time.Time) float64 {
	hours := now.Sub(createdAt).Hours()
	return math.Max(0, 1-hours/freshnessHorizonHours)
}
