package scorer

import (
	"fmt"
	"testing"

	"github.com/pulsefeed/ranking-service/internal/domain"
)

func rankedFixture(n int, contentType domain.ContentType, author string) []Ranked {
	out := make([]Ranked, n)
	for i := range out {
		out[i] = Ranked{
			Item: domain.CandidateItem{
				ID:          fmt.Sprintf("%s-%s-%02d", contentType, author, i),
				ContentType: contentType,
				AuthorID:    author,
			},
			Score: float64(n - i),
		}
	}
	return out
}

func TestOrderDeterministicTieBreak(t *testing.T) {
	scores := domain.ScoreMap{"b": 1, "a": 1, "c": 2}
	candidates := []domain.CandidateItem{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "unscored"}}

	ranked := Order(scores, candidates)

	want := []string{"c", "a", "b"}
	if len(ranked) != len(want) {
		t.Fatalf("got %d ranked, want %d", len(ranked), len(want))
	}
	for i, id := range want {
		if ranked[i].Item.ID != id {
			t.Errorf("ranked[%d] = %s, want %s", i, ranked[i].Item.ID, id)
		}
	}
}

func TestSelectDiverseTypeCap(t *testing.T) {
	// 10 memes from distinct authors followed by lower-scored stories.
	var sorted []Ranked
	for i := 0; i < 10; i++ {
		sorted = append(sorted, Ranked{
			Item:  domain.CandidateItem{ID: fmt.Sprintf("m%d", i), ContentType: domain.TypeMeme, AuthorID: fmt.Sprintf("a%d", i)},
			Score: float64(100 - i),
		})
	}
	for i := 0; i < 10; i++ {
		sorted = append(sorted, Ranked{
			Item:  domain.CandidateItem{ID: fmt.Sprintf("s%d", i), ContentType: domain.TypeStory, AuthorID: fmt.Sprintf("b%d", i)},
			Score: float64(50 - i),
		})
	}

	selected := SelectDiverse(sorted, 6, DefaultDiversityConfig())

	if len(selected) != 6 {
		t.Fatalf("got %d selected, want 6", len(selected))
	}
	memes := 0
	for _, rc := range selected {
		if rc.Item.ContentType == domain.TypeMeme {
			memes++
		}
	}
	if memes != 3 {
		t.Errorf("memes selected = %d, want capped at 3", memes)
	}
}

func TestSelectDiverseAuthorCap(t *testing.T) {
	var sorted []Ranked
	for i := 0; i < 5; i++ {
		sorted = append(sorted, Ranked{
			Item:  domain.CandidateItem{ID: fmt.Sprintf("x%d", i), ContentType: domain.ContentTypes[i], AuthorID: "prolific"},
			Score: float64(100 - i),
		})
	}
	for i := 0; i < 5; i++ {
		sorted = append(sorted, Ranked{
			Item:  domain.CandidateItem{ID: fmt.Sprintf("y%d", i), ContentType: domain.ContentTypes[i], AuthorID: fmt.Sprintf("a%d", i)},
			Score: float64(50 - i),
		})
	}

	selected := SelectDiverse(sorted, 7, DefaultDiversityConfig())

	byProlific := 0
	for _, rc := range selected {
		if rc.Item.AuthorID == "prolific" {
			byProlific++
		}
	}
	if byProlific != 2 {
		t.Errorf("prolific author items = %d, want capped at 2", byProlific)
	}
}

func TestSelectDiverseBackfill(t *testing.T) {
	// Every candidate is the same type and author: caps alone would allow
	// only 2, but the selector must backfill to the requested length.
	sorted := rankedFixture(8, domain.TypeMeme, "solo")

	selected := SelectDiverse(sorted, 5, DefaultDiversityConfig())

	if len(selected) != 5 {
		t.Fatalf("got %d selected, want backfill to 5", len(selected))
	}
}

func TestSelectDiverseNeverShort(t *testing.T) {
	sorted := rankedFixture(3, domain.TypeVideo, "solo")

	selected := SelectDiverse(sorted, 10, DefaultDiversityConfig())

	if len(selected) != 3 {
		t.Errorf("got %d selected, want min(limit, available) = 3", len(selected))
	}
}

func TestSelectDiverseCapsOffBeyondWindow(t *testing.T) {
	cfg := DiversityConfig{MaxPerType: 1, MaxPerAuthor: 1, Window: 2}
	sorted := rankedFixture(6, domain.TypePhoto, "solo")

	selected := SelectDiverse(sorted, 6, cfg)

	// Only one item passes the caps; backfill restores the skipped rest in
	// their original order so output is never starved.
	if len(selected) != 6 {
		t.Fatalf("got %d selected, want 6", len(selected))
	}
	// Highest-scored item still leads.
	if selected[0].Item.ID != sorted[0].Item.ID {
		t.Errorf("top item = %s, want %s", selected[0].Item.ID, sorted[0].Item.ID)
	}
}
