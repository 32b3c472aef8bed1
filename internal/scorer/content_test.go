package scorer

import (
	"math"
	"testing"
	"time"

	"github.com/pulsefeed/ranking-service/internal/domain"
)

func memeStoryProfile(userID string) *domain.UserProfile {
	p := &domain.UserProfile{UserID: userID}
	p.Preferences[domain.FeatureTypeMeme] = 0.7
	p.Preferences[domain.FeatureTypeStory] = 0.3
	return p
}

func TestContentRelativeOrdering(t *testing.T) {
	now := time.Now()
	p := memeStoryProfile("u1")

	candidates := []domain.CandidateItem{
		{ID: "A", AuthorID: "a1", ContentType: domain.TypeMeme, QualityPrior: 8, CreatedAt: now},
		{ID: "B", AuthorID: "a2", ContentType: domain.TypeStory, QualityPrior: 6, CreatedAt: now.Add(-5 * time.Hour)},
		{ID: "C", AuthorID: "a3", ContentType: domain.TypeVideo, QualityPrior: 9, CreatedAt: now.Add(-48 * time.Hour)},
	}

	scores := NewContent().Score(p, candidates, now)

	if !(scores["A"] > scores["B"]) {
		t.Errorf("expected A > B, got A=%f B=%f", scores["A"], scores["B"])
	}
	if !(scores["B"] > scores["C"]) {
		t.Errorf("expected B > C, got B=%f C=%f", scores["B"], scores["C"])
	}
}

func TestContentExactScore(t *testing.T) {
	now := time.Now()
	p := &domain.UserProfile{UserID: "u1"}
	p.Preferences[domain.FeatureTypeMeme] = 1

	item := domain.CandidateItem{
		ID: "A", AuthorID: "a1",
		ContentType:  domain.TypeMeme,
		QualityPrior: domain.DefaultQualityPrior,
		CreatedAt:    now,
	}

	scores := NewContent().Score(p, []domain.CandidateItem{item}, now)

	// similarity 1, freshness 1, quality 0.5 -> 0.6 + 0.2 + 0.1 = 0.9
	if got := scores["A"]; math.Abs(got-0.9) > 1e-9 {
		t.Errorf("score = %f, want 0.9", got)
	}
}

func TestContentExcludesSelfAuthored(t *testing.T) {
	now := time.Now()
	p := memeStoryProfile("u1")

	candidates := []domain.CandidateItem{
		{ID: "own", AuthorID: "u1", ContentType: domain.TypeMeme, QualityPrior: 9, CreatedAt: now},
		{ID: "other", AuthorID: "a2", ContentType: domain.TypeMeme, QualityPrior: 5, CreatedAt: now},
	}

	scores := NewContent().Score(p, candidates, now)

	if _, ok := scores["own"]; ok {
		t.Error("self-authored content must be excluded, not down-weighted")
	}
	if _, ok := scores["other"]; !ok {
		t.Error("other-authored content should be scored")
	}
}

func TestContentEmptyProfile(t *testing.T) {
	now := time.Now()
	p := &domain.UserProfile{UserID: "u1"}

	scores := NewContent().Score(p, []domain.CandidateItem{
		{ID: "A", AuthorID: "a1", ContentType: domain.TypeMeme, CreatedAt: now},
	}, now)

	if len(scores) != 0 {
		t.Errorf("empty profile must yield an empty map, got %v", scores)
	}
}

func TestFreshness(t *testing.T) {
	now := time.Now()

	if got := Freshness(now, now); got != 1 {
		t.Errorf("freshness at age 0 = %f, want exactly 1", got)
	}
	if got := Freshness(now.Add(-168*time.Hour), now); got != 0 {
		t.Errorf("freshness at 168h = %f, want 0", got)
	}
	if got := Freshness(now.Add(-400*time.Hour), now); got != 0 {
		t.Errorf("freshness past horizon = %f, want clamp to 0", got)
	}

	// Monotonically non-increasing in age.
	prev := 2.0
	for _, hours := range []int{0, 1, 24, 84, 167, 168, 300} {
		f := Freshness(now.Add(-time.Duration(hours)*time.Hour), now)
		if f > prev {
			t.Errorf("freshness increased with age at %dh: %f > %f", hours, f, prev)
		}
		prev = f
	}
}
