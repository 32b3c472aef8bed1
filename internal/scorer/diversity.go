package scorer

import (
	"sort"

	"github.com/pulsefeed/ranking-service/internal/domain"
)

// DiversityConfig caps repetition within the selected window. The constants
// are empirical defaults, exposed as configuration rather than fixed law.
type DiversityConfig struct {
	// MaxPerType caps items of one content type within the window.
	MaxPerType int `koanf:"max_per_type"`
	// MaxPerAuthor caps items by one author within the window.
	MaxPerAuthor int `koanf:"max_per_author"`
	// Window is how many selected items the caps apply to; beyond it the
	// selector stops filtering so output is never starved.
	Window int `koanf:"window"`
}

func DefaultDiversityConfig() DiversityConfig {
	return DiversityConfig{
		MaxPerType:   3,
		MaxPerAuthor: 2,
		Window:       20,
	}
}

// Ranked pairs a candidate with its blended score.
type Ranked struct {
	Item  domain.CandidateItem
	Score float64
}

// Order turns a combined score map into a deterministic ranking: descending
// score, ties broken by ascending item id. Candidates without a score entry
// are omitted.
func Order(scores domain.ScoreMap, candidates []domain.CandidateItem) []Ranked {
	ranked := make([]Ranked, 0, len(scores))
	for _, c := range candidates {
		if score, ok := scores[c.ID]; ok {
			ranked = append(ranked, Ranked{Item: c, Score: score})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Item.ID < ranked[j].Item.ID
	})
	return ranked
}

// SelectDiverse greedily walks the sorted ranking applying the repetition
// caps, then backfills skipped candidates in their original order if the caps
// left the result short. Diversity filtering alone never returns fewer than
// min(limit, len(sorted)) items.
func SelectDiverse(sorted []Ranked, limit int, cfg DiversityConfig) []Ranked {
	if limit <= 0 {
		return nil
	}

	selected := make([]Ranked, 0, limit)
	var skipped []Ranked
	typeCount := make(map[domain.ContentType]int)
	authorCount := make(map[string]int)

	for _, rc := range sorted {
		if len(selected) == limit {
			break
		}
		if len(selected) < cfg.Window &&
			(typeCount[rc.Item.ContentType] >= cfg.MaxPerType ||
				authorCount[rc.Item.AuthorID] >= cfg.MaxPerAuthor) {
			skipped = append(skipped, rc)
			continue
		}
		selected = append(selected, rc)
		typeCount[rc.Item.ContentType]++
		authorCount[rc.Item.AuthorID]++
	}

	for _, rc := range skipped {
		if len(selected) == limit {
			break
		}
		selected = append(selected, rc)
	}

	return selected
}
