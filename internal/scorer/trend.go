package scorer

import (
	"sort"
	"time"

	"github.com/pulsefeed/ranking-service/internal/domain"
)

// Trend scores candidates by engagement velocity within a recent window,
// independent of the requesting user.
type Trend struct {
	window time.Duration
	cutoff int
}

// NewTrend builds a trend scorer restricted to items newer than window, with
// positional boosts assigned to the top cutoff items.
func NewTrend(window time.Duration, cutoff int) *Trend {
	if window <= 0 {
		window = 24 * time.Hour
	}
	if cutoff <= 0 {
		cutoff = 50
	}
	return &Trend{window: window, cutoff: cutoff}
}

type trending struct {
	id         string
	velocity   float64
	engagement float64
}

// Score ranks in-window candidates by (velocity desc, engagement desc, id
// asc) and converts the rank into a positional boost in [0,1]. Items outside
// the window or the cutoff get no entry.
func (s *Trend) Score(candidates []domain.CandidateItem, now time.Time) domain.ScoreMap {
	ranked := make([]trending, 0, len(candidates))
	for _, c := range candidates {
		age := now.Sub(c.CreatedAt)
		if age > s.window || age < 0 {
			continue
		}
		// The 1-hour floor keeps velocity finite for items seconds old.
		hours := age.Hours()
		if hours < 1 {
			hours = 1
		}
		ranked = append(ranked, trending{
			id:         c.ID,
			velocity:   float64(c.Stats.Views) / hours,
			engagement: trendEngagement(c.Stats),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].velocity != ranked[j].velocity {
			return ranked[i].velocity > ranked[j].velocity
		}
		if ranked[i].engagement != ranked[j].engagement {
			return ranked[i].engagement > ranked[j].engagement
		}
		return ranked[i].id < ranked[j].id
	})

	scores := make(domain.ScoreMap, len(ranked))
	for rank, t := range ranked {
		if rank >= s.cutoff {
			break
		}
		scores[t.id] = 1 - float64(rank)/float64(s.cutoff)
	}
	return scores
}

// trendEngagement extends the approval engagement with saves, which signal
// durable interest for trending purposes.
func trendEngagement(s domain.EngagementStats) float64 {
	return approvalEngagement(s) + 1.2*float64(s.Saves)
}
