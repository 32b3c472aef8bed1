// Package scorer holds the three independent scoring signals, the weighted
// combiner that blends them, and the diversity selector applied to the
// blended ranking.
package scorer

import (
	"context"
	"fmt"

	"github.com/pulsefeed/ranking-service/internal/domain"
)

// NeighborItemStore fetches the recently-approved items of a behavioral
// neighbor, with engagement counts attached.
type NeighborItemStore interface {
	GetUserApprovedItems(ctx context.Context, userID string, maxCount int) ([]domain.CandidateItem, error)
}

// Behavioral scores candidates by the preference-weighted engagement of the
// user's behavioral neighbors.
type Behavioral struct {
	store     NeighborItemStore
	itemLimit int
}

func NewBehavioral(store NeighborItemStore, itemLimit int) *Behavioral {
	if itemLimit <= 0 {
		itemLimit = 20
	}
	return &Behavioral{store: store, itemLimit: itemLimit}
}

// Score accumulates weight x engagement for every neighbor-approved item that
// is also in the candidate pool. Neighbors are walked in the profile's fixed
// order (descending weight, ties by id) so accumulation is reproducible.
// Candidates untouched by any neighbor get no entry: the combiner reads them
// as 0.
func (s *Behavioral) Score(ctx context.Context, p *domain.UserProfile, candidates []domain.CandidateItem) (domain.ScoreMap, error) {
	scores := make(domain.ScoreMap)
	if len(p.Neighbors) == 0 {
		return scores, nil
	}

	inPool := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		inPool[c.ID] = true
	}

	for _, n := range p.Neighbors {
		items, err := s.store.GetUserApprovedItems(ctx, n.UserID, s.itemLimit)
		if err != nil {
			return nil, fmt.Errorf("fetch approved items for neighbor %s: %w", n.UserID, err)
		}
		for _, item := range items {
			if !inPool[item.ID] {
				continue
			}
			scores[item.ID] += n.Weight * approvalEngagement(item.Stats)
		}
	}

	return scores, nil
}

// approvalEngagement weighs the engagement counters the way neighbor approval
// strength is measured: shares count double, reactions one and a half.
func approvalEngagement(s domain.EngagementStats) float64 {
	return float64(s.Approvals) + 1.5*float64(s.Reactions) + 2*float64(s.Shares)
}
