package scorer

import (
	"fmt"
	"math"

	"github.com/pulsefeed/ranking-service/internal/domain"
)

// Weights blends the three scoring signals. They are configuration defaults,
// tunable at deploy time.
type Weights struct {
	Behavioral float64 `koanf:"behavioral"`
	Content    float64 `koanf:"content"`
	Trend      float64 `koanf:"trend"`
}

func DefaultWeights() Weights {
	return Weights{
		Behavioral: 0.4,
		Content:    0.4,
		Trend:      0.2,
	}
}

// Validate checks the weights are non-negative and sum to 1 within tolerance.
func (w Weights) Validate() error {
	if w.Behavioral < 0 || w.Content < 0 || w.Trend < 0 {
		return fmt.Errorf("ranking weights must be non-negative: %+v", w)
	}
	sum := w.Behavioral + w.Content + w.Trend
	if math.Abs(sum-1) > 0.01 {
		return fmt.Errorf("ranking weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}

// Combine merges the per-signal score maps into one blended score per
// candidate over the union of their keys. Missing entries read as 0. It is a
// pure function of its inputs: no normalization is applied, only relative
// ordering matters downstream.
func Combine(behavioral, content, trend domain.ScoreMap, w Weights) domain.ScoreMap {
	out := make(domain.ScoreMap, len(content))
	for id, score := range behavioral {
		out[id] += score * w.Behavioral
	}
	for id, score := range content {
		out[id] += score * w.Content
	}
	for id, score := range trend {
		out[id] += score * w.Trend
	}
	return out
}
