package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pulsefeed/ranking-service/internal/domain"
)

type stubRanker struct {
	result     *domain.RankedResult
	rankErr    error
	recorded   []string
	recordErr  error
	lastLimit  int
	lastOffset int
	lastUserID string
	lastItemID string
	lastKind   domain.InteractionKind
}

func (s *stubRanker) Rank(_ context.Context, userID string, limit, offset int) (*domain.RankedResult, error) {
	s.lastUserID, s.lastLimit, s.lastOffset = userID, limit, offset
	return s.result, s.rankErr
}

func (s *stubRanker) RecordInteraction(_ context.Context, userID, itemID string, kind domain.InteractionKind) error {
	s.lastUserID, s.lastItemID, s.lastKind = userID, itemID, kind
	s.recorded = append(s.recorded, itemID)
	return s.recordErr
}

func testRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/users/{userID}/feed", h.GetFeed)
	r.Post("/users/{userID}/interactions", h.PostInteraction)
	return r
}

func TestGetFeed(t *testing.T) {
	stub := &stubRanker{result: &domain.RankedResult{
		Items:    []domain.RankedItem{{ItemID: "a", Score: 1.5}, {ItemID: "b", Score: 0.7}},
		CacheHit: true,
	}}
	srv := testRouter(NewHandler(stub))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/u1/feed?limit=10&offset=5", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if stub.lastUserID != "u1" || stub.lastLimit != 10 || stub.lastOffset != 5 {
		t.Errorf("engine called with (%s, %d, %d)", stub.lastUserID, stub.lastLimit, stub.lastOffset)
	}

	var resp FeedResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != 2 || resp.Items[0].ItemID != "a" {
		t.Errorf("unexpected items: %+v", resp.Items)
	}
	if !resp.Meta.CacheHit || resp.Meta.TotalCount != 2 {
		t.Errorf("unexpected metadata: %+v", resp.Meta)
	}
}

func TestGetFeedInvalidLimit(t *testing.T) {
	srv := testRouter(NewHandler(&stubRanker{}))

	for _, q := range []string{"limit=0", "limit=-1", "limit=999", "limit=abc", "offset=-2"} {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/u1/feed?"+q, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", q, rec.Code)
		}
	}
}

func TestGetFeedUserNotFound(t *testing.T) {
	srv := testRouter(NewHandler(&stubRanker{rankErr: domain.ErrUserNotFound}))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/ghost/feed", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestPostInteraction(t *testing.T) {
	stub := &stubRanker{}
	srv := testRouter(NewHandler(stub))

	body := strings.NewReader(`{"item_id":"item-1","kind":"approval"}`)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/u1/interactions", body))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if stub.lastItemID != "item-1" || stub.lastKind != domain.InteractionApproval {
		t.Errorf("recorded (%s, %s)", stub.lastItemID, stub.lastKind)
	}
}

func TestPostInteractionInvalidKind(t *testing.T) {
	srv := testRouter(NewHandler(&stubRanker{}))

	body := strings.NewReader(`{"item_id":"item-1","kind":"upvote"}`)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/u1/interactions", body))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPostInteractionItemNotFound(t *testing.T) {
	srv := testRouter(NewHandler(&stubRanker{recordErr: domain.ErrItemNotFound}))

	body := strings.NewReader(`{"item_id":"nope","kind":"share"}`)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/u1/interactions", body))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
