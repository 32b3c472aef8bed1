// Package engine orchestrates one ranking request: profile build, candidate
// fetch, concurrent scoring, combining, diversity selection and pagination.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pulsefeed/ranking-service/internal/domain"
	"github.com/pulsefeed/ranking-service/internal/metrics"
	"github.com/pulsefeed/ranking-service/internal/profile"
	"github.com/pulsefeed/ranking-service/internal/scorer"
)

// CandidateSource supplies the bounded pool of eligible items. Filtering out
// moderation-removed items is the source's responsibility, not the engine's.
type CandidateSource interface {
	FetchEligibleCandidates(ctx context.Context, excludeUserID string, maxAge time.Duration, maxCount int) ([]domain.CandidateItem, error)
}

// InteractionStore records new engagement events.
type InteractionStore interface {
	AddInteraction(ctx context.Context, userID, itemID string, kind domain.InteractionKind) error
}

// RankingCache holds the full per-user ordering between requests.
type RankingCache interface {
	GetRanking(ctx context.Context, userID string) ([]domain.RankedItem, bool, error)
	SetRanking(ctx context.Context, userID string, items []domain.RankedItem) error
	Invalidate(ctx context.Context, userID string) error
}

// Config bounds one ranking request.
type Config struct {
	CandidatePoolSize int
	CandidateMaxAge   time.Duration
	// ScorerTimeout is the individual budget of each scoring signal; a
	// scorer that misses it degrades to an empty map instead of failing the
	// request.
	ScorerTimeout time.Duration
	// MaxRankDepth is how deep the full ordering is computed and cached;
	// every (limit, offset) page is a slice of it.
	MaxRankDepth int
	Weights      scorer.Weights
	Diversity    scorer.DiversityConfig
}

func DefaultConfig() Config {
	return Config{
		CandidatePoolSize: 200,
		CandidateMaxAge:   168 * time.Hour,
		ScorerTimeout:     2 * time.Second,
		MaxRankDepth:      100,
		Weights:           scorer.DefaultWeights(),
		Diversity:         scorer.DefaultDiversityConfig(),
	}
}

type Engine struct {
	profiles     *profile.Builder
	source       CandidateSource
	interactions InteractionStore
	cache        RankingCache
	behavioral   *scorer.Behavioral
	content      *scorer.Content
	trend        *scorer.Trend
	cfg          Config
}

func New(
	profiles *profile.Builder,
	source CandidateSource,
	interactions InteractionStore,
	cache RankingCache,
	behavioral *scorer.Behavioral,
	content *scorer.Content,
	trend *scorer.Trend,
	cfg Config,
) *Engine {
	def := DefaultConfig()
	if cfg.CandidatePoolSize <= 0 {
		cfg.CandidatePoolSize = def.CandidatePoolSize
	}
	if cfg.CandidateMaxAge <= 0 {
		cfg.CandidateMaxAge = def.CandidateMaxAge
	}
	if cfg.ScorerTimeout <= 0 {
		cfg.ScorerTimeout = def.ScorerTimeout
	}
	if cfg.MaxRankDepth <= 0 {
		cfg.MaxRankDepth = def.MaxRankDepth
	}
	return &Engine{
		profiles:     profiles,
		source:       source,
		interactions: interactions,
		cache:        cache,
		behavioral:   behavioral,
		content:      content,
		trend:        trend,
		cfg:          cfg,
	}
}

// Rank produces the ordered, diversified page [offset, offset+limit) of the
// user's ranking. Callers always receive a RankedResult for any data
// condition; an error is returned only for invalid parameters or an unknown
// user.
func (e *Engine) Rank(ctx context.Context, userID string, limit, offset int) (*domain.RankedResult, error) {
	if limit <= 0 {
		return nil, domain.ErrInvalidLimit
	}
	if offset < 0 {
		return nil, domain.ErrInvalidOffset
	}

	cached, found, err := e.cache.GetRanking(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("ranking cache get failed")
	}
	if found {
		metrics.CacheHits.Inc()
		return &domain.RankedResult{Items: page(cached, limit, offset), CacheHit: true}, nil
	}
	metrics.CacheMisses.Inc()

	full, degraded, err := e.buildRanking(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(full) > 0 {
		if cacheErr := e.cache.SetRanking(ctx, userID, full); cacheErr != nil {
			log.Warn().Err(cacheErr).Str("user_id", userID).Msg("ranking cache set failed")
		}
	}

	return &domain.RankedResult{Items: page(full, limit, offset), DegradedSignals: degraded}, nil
}

// buildRanking computes the full ordering down to MaxRankDepth.
func (e *Engine) buildRanking(ctx context.Context, userID string) ([]domain.RankedItem, []string, error) {
	start := time.Now()
	defer func() {
		metrics.RankDuration.Observe(time.Since(start).Seconds())
	}()

	var degraded []string

	// Profile build and candidate fetch are the only hard ordering barrier:
	// both complete before any scorer starts.
	p, err := e.profiles.Build(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, err
		}
		log.Warn().Err(err).Str("user_id", userID).Msg("profile degraded")
		degraded = append(degraded, "profile")
	}

	candidates, err := e.source.FetchEligibleCandidates(ctx, userID, e.cfg.CandidateMaxAge, e.cfg.CandidatePoolSize)
	if err != nil {
		// No pool to rank: an empty result, not a failure.
		log.Error().Err(err).Str("user_id", userID).Msg("candidate fetch failed")
		return nil, append(degraded, "candidates"), nil
	}
	if len(candidates) == 0 {
		return nil, degraded, nil
	}

	signals := e.runScorers(ctx, p, candidates, &degraded)

	combined := scorer.Combine(signals["behavioral"], signals["content"], signals["trend"], e.cfg.Weights)
	ranked := scorer.Order(combined, candidates)
	selected := scorer.SelectDiverse(ranked, e.cfg.MaxRankDepth, e.cfg.Diversity)

	items := make([]domain.RankedItem, len(selected))
	for i, rc := range selected {
		items[i] = domain.RankedItem{ItemID: rc.Item.ID, Score: rc.Score}
	}
	return items, degraded, nil
}

type signalResult struct {
	name   string
	scores domain.ScoreMap
	err    error
}

// runScorers fans the three scorers out as independent tasks, each under its
// own timeout, and joins on a buffered channel. When the request deadline
// fires first, whatever arrived is combined and the rest is marked degraded:
// a slow behavioral signal never blocks trending-only results.
func (e *Engine) runScorers(ctx context.Context, p *domain.UserProfile, candidates []domain.CandidateItem, degraded *[]string) map[string]domain.ScoreMap {
	now := time.Now()
	results := make(chan signalResult, 3)

	run := func(name string, score func(context.Context) (domain.ScoreMap, error)) {
		go func() {
			sctx, cancel := context.WithTimeout(ctx, e.cfg.ScorerTimeout)
			defer cancel()
			scores, err := score(sctx)
			results <- signalResult{name: name, scores: scores, err: err}
		}()
	}

	run("behavioral", func(sctx context.Context) (domain.ScoreMap, error) {
		return e.behavioral.Score(sctx, p, candidates)
	})
	run("content", func(context.Context) (domain.ScoreMap, error) {
		return e.content.Score(p, candidates, now), nil
	})
	run("trend", func(context.Context) (domain.ScoreMap, error) {
		return e.trend.Score(candidates, now), nil
	})

	pending := map[string]bool{"behavioral": true, "content": true, "trend": true}
	signals := make(map[string]domain.ScoreMap, 3)

	for i := 0; i < 3; i++ {
		select {
		case r := <-results:
			delete(pending, r.name)
			if r.err != nil {
				log.Warn().Err(r.err).Str("scorer", r.name).Msg("scorer degraded")
				metrics.ScorerDegraded.WithLabelValues(r.name).Inc()
				*degraded = append(*degraded, r.name)
				continue
			}
			signals[r.name] = r.scores
		case <-ctx.Done():
			for name := range pending {
				metrics.ScorerDegraded.WithLabelValues(name).Inc()
				*degraded = append(*degraded, name)
			}
			return signals
		}
	}
	return signals
}

// RecordInteraction stores a new engagement event and invalidates the user's
// cached ranking so the next request reflects it.
func (e *Engine) RecordInteraction(ctx context.Context, userID, itemID string, kind domain.InteractionKind) error {
	if err := e.interactions.AddInteraction(ctx, userID, itemID, kind); err != nil {
		return fmt.Errorf("add interaction: %w", err)
	}
	if err := e.cache.Invalidate(ctx, userID); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("cache invalidation failed")
	}
	return nil
}

func page(items []domain.RankedItem, limit, offset int) []domain.RankedItem {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
