// Package profile turns a user's interaction history into a normalized
// behavioral and preference profile.
package profile

import (
	"context"
	"fmt"
	"sort"

	"github.com/pulsefeed/ranking-service/internal/domain"
)

// HistoryStore supplies the interaction history and declared preferences the
// builder reads. Implemented by internal/repository over Postgres.
type HistoryStore interface {
	GetRecentInteractions(ctx context.Context, userID string, maxCount int) ([]domain.InteractionRecord, error)
	GetUserPreferenceDeclaration(ctx context.Context, userID string) ([]domain.StyleTag, error)
	FindUsersByStyleTags(ctx context.Context, tags []domain.StyleTag, excludeUserID string, maxCount int) ([]string, error)
	GetUserStats(ctx context.Context, userID string) (domain.UserStats, error)
}

// Config bounds the builder's collaborator reads.
type Config struct {
	// HistoryWindow is the maximum number of interactions considered and the
	// denominator of the velocity rate.
	HistoryWindow int
	// NeighborLimit caps how many behavioral neighbors are attached.
	NeighborLimit int
}

func DefaultConfig() Config {
	return Config{
		HistoryWindow: 50,
		NeighborLimit: 10,
	}
}

type Builder struct {
	store HistoryStore
	sim   SimilarityStrategy
	cfg   Config
}

func NewBuilder(store HistoryStore, sim SimilarityStrategy, cfg Config) *Builder {
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultConfig().HistoryWindow
	}
	if cfg.NeighborLimit <= 0 {
		cfg.NeighborLimit = DefaultConfig().NeighborLimit
	}
	return &Builder{store: store, sim: sim, cfg: cfg}
}

// Build derives the profile for userID. Missing history is not an error: the
// returned profile simply carries an empty preference vector. The returned
// error reports collaborator failures for observability; the profile is
// always usable, holding whatever signals were retrievable. An unknown user
// is reported as domain.ErrUserNotFound.
func (b *Builder) Build(ctx context.Context, userID string) (*domain.UserProfile, error) {
	p := &domain.UserProfile{UserID: userID}

	stats, err := b.store.GetUserStats(ctx, userID)
	if err != nil {
		return p, fmt.Errorf("fetch user stats: %w", err)
	}
	p.Stats = stats

	history, err := b.store.GetRecentInteractions(ctx, userID, b.cfg.HistoryWindow)
	if err != nil {
		return p, fmt.Errorf("fetch interactions: %w", err)
	}
	if len(history) > b.cfg.HistoryWindow {
		history = history[:b.cfg.HistoryWindow]
	}

	p.Preferences = preferenceVector(history)
	p.Signals = domain.BehaviorSignals{
		Velocity: float64(len(history)) / float64(b.cfg.HistoryWindow),
		Recent:   history,
	}

	neighbors, err := b.neighbors(ctx, userID)
	if err != nil {
		return p, err
	}
	p.Neighbors = neighbors

	return p, nil
}

// preferenceVector counts (contentType, styleTag) occurrences across the
// history and normalizes the counts to sum to 1. Empty history yields the
// zero vector, never an error.
func preferenceVector(history []domain.InteractionRecord) domain.FeatureVector {
	var v domain.FeatureVector
	for _, rec := range history {
		if key, ok := domain.TypeFeature(rec.ContentType); ok {
			v[key]++
		}
		if key, ok := domain.StyleFeature(rec.StyleTag); ok {
			v[key]++
		}
	}

	total := v.Sum()
	if total == 0 {
		return v
	}
	for i := range v {
		v[i] /= total
	}
	return v
}

// neighbors discovers users sharing at least one declared style tag and
// weighs them with the similarity strategy. The result is ordered by
// descending weight, ties broken by ascending user id, so downstream
// accumulation is bit-reproducible.
func (b *Builder) neighbors(ctx context.Context, userID string) ([]domain.Neighbor, error) {
	tags, err := b.store.GetUserPreferenceDeclaration(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch preference declaration: %w", err)
	}
	if len(tags) == 0 {
		return nil, nil
	}

	ids, err := b.store.FindUsersByStyleTags(ctx, tags, userID, b.cfg.NeighborLimit)
	if err != nil {
		return nil, fmt.Errorf("find neighbor users: %w", err)
	}

	neighbors := make([]domain.Neighbor, 0, len(ids))
	for _, id := range ids {
		neighbors = append(neighbors, domain.Neighbor{
			UserID: id,
			Weight: b.sim.Similarity(userID, id),
		})
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Weight != neighbors[j].Weight {
			return neighbors[i].Weight > neighbors[j].Weight
		}
		return neighbors[i].UserID < neighbors[j].UserID
	})

	return neighbors, nil
}
