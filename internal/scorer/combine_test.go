package scorer

import (
	"math"
	"reflect"
	"testing"

	"github.com/pulsefeed/ranking-service/internal/domain"
)

func TestCombineWeightedSum(t *testing.T) {
	behavioral := domain.ScoreMap{"x": 10}
	content := domain.ScoreMap{"x": 0.5}
	trend := domain.ScoreMap{}

	out := Combine(behavioral, content, trend, DefaultWeights())

	// 10*0.4 + 0.5*0.4 + 0*0.2 = 4.2
	if got := out["x"]; math.Abs(got-4.2) > 1e-9 {
		t.Errorf("combined = %f, want 4.2", got)
	}
}

func TestCombineUnion(t *testing.T) {
	out := Combine(
		domain.ScoreMap{"a": 1},
		domain.ScoreMap{"b": 1},
		domain.ScoreMap{"c": 1},
		DefaultWeights(),
	)

	if len(out) != 3 {
		t.Fatalf("expected union of 3 ids, got %d", len(out))
	}
	if out["a"] != 0.4 || out["b"] != 0.4 || math.Abs(out["c"]-0.2) > 1e-9 {
		t.Errorf("unexpected union scores: %v", out)
	}
}

func TestCombineDeterministic(t *testing.T) {
	behavioral := domain.ScoreMap{"a": 3, "b": 1, "c": 7}
	content := domain.ScoreMap{"b": 0.9, "d": 0.2}
	trend := domain.ScoreMap{"a": 0.5, "d": 1}

	first := Combine(behavioral, content, trend, DefaultWeights())
	second := Combine(behavioral, content, trend, DefaultWeights())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different outputs: %v vs %v", first, second)
	}
}

func TestWeightsValidate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Errorf("default weights should validate: %v", err)
	}
	if err := (Weights{Behavioral: 0.5, Content: 0.5, Trend: 0.5}).Validate(); err == nil {
		t.Error("weights summing to 1.5 should fail validation")
	}
	if err := (Weights{Behavioral: -0.2, Content: 1, Trend: 0.2}).Validate(); err == nil {
		t.Error("negative weight should fail validation")
	}
}
