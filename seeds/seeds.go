package seeds

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/pulsefeed/ranking-service/internal/domain"
)

type seedItem struct {
	id          string
	authorID    string
	contentType domain.ContentType
	styleTag    domain.StyleTag
}

func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Info().Msg("seed: truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE interactions, content_items, user_style_prefs, users RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Info().Msg("seed: inserting users")
	users, err := seedUsers(ctx, pool, rng, 20)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	log.Info().Msg("seed: inserting style preferences")
	if err := seedStylePrefs(ctx, pool, rng, users); err != nil {
		return fmt.Errorf("seed style prefs: %w", err)
	}

	log.Info().Msg("seed: inserting content items")
	items, err := seedContentItems(ctx, pool, rng, users, 200)
	if err != nil {
		return fmt.Errorf("seed content items: %w", err)
	}

	log.Info().Msg("seed: inserting interactions")
	if err := seedInteractions(ctx, pool, rng, users, items, 600); err != nil {
		return fmt.Errorf("seed interactions: %w", err)
	}

	log.Info().Msg("seed: complete")
	return nil
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) ([]string, error) {
	ids := make([]string, 0, n)
	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		id := uuid.NewString()
		ids = append(ids, id)

		followers := powerLawCount(rng, 5000)
		following := rng.Intn(400)
		createdAt := time.Now().AddDate(0, 0, -rng.Intn(365))

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, id, createdAt, followers, following)
	}

	query := "INSERT INTO users (id, created_at, follower_count, following_count) VALUES " +
		strings.Join(rows, ", ")

	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return nil, err
	}
	return ids, nil
}

func seedStylePrefs(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, users []string) error {
	rows := []string{}
	args := []any{}

	for _, userID := range users {
		// Between one and three declared style preferences per user.
		count := rng.Intn(3) + 1
		perm := rng.Perm(len(domain.StyleTags))
		for _, si := range perm[:count] {
			base := len(args)
			rows = append(rows, fmt.Sprintf("($%d, $%d)", base+1, base+2))
			args = append(args, userID, string(domain.StyleTags[si]))
		}
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO user_style_prefs (user_id, style_tag) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedContentItems(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, users []string, n int) ([]seedItem, error) {
	items := make([]seedItem, 0, n)
	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		item := seedItem{
			id:          uuid.NewString(),
			authorID:    users[rng.Intn(len(users))],
			contentType: domain.ContentTypes[i%len(domain.ContentTypes)],
		}
		// Roughly one in five items carries no style tag.
		if rng.Intn(5) > 0 {
			item.styleTag = domain.StyleTags[rng.Intn(len(domain.StyleTags))]
		}
		items = append(items, item)

		hasImage := item.contentType == domain.TypeMeme || item.contentType == domain.TypePhoto || rng.Intn(3) == 0
		hasVideo := item.contentType == domain.TypeVideo
		textLength := 0
		if item.contentType == domain.TypeStory || item.contentType == domain.TypeArticle {
			textLength = rng.Intn(2000) + 100
		} else if rng.Intn(2) == 0 {
			textLength = rng.Intn(300)
		}

		var quality any
		if rng.Intn(4) > 0 {
			quality = math.Round(rng.Float64()*100) / 10
		}

		views := powerLawCount(rng, 50000)
		approvals := rng.Intn(views/20 + 1)
		reactions := rng.Intn(views/30 + 1)
		shares := rng.Intn(views/100 + 1)
		saves := rng.Intn(views/80 + 1)
		createdAt := time.Now().Add(-time.Duration(rng.Intn(168*60)) * time.Minute)

		var style any
		if item.styleTag != domain.StyleNone {
			style = string(item.styleTag)
		}

		base := len(args)
		placeholders := make([]string, 15)
		for p := range placeholders {
			placeholders[p] = fmt.Sprintf("$%d", base+p+1)
		}
		rows = append(rows, "("+strings.Join(placeholders, ", ")+")")
		args = append(args,
			item.id, item.authorID, string(item.contentType), style,
			hasImage, hasVideo, textLength, quality,
			approvals, reactions, shares, saves, views,
			false, createdAt,
		)
	}

	query := `INSERT INTO content_items
		(id, author_id, content_type, style_tag, has_image, has_video, text_length, quality_prior,
		 approvals, reactions, shares, saves, views, removed, created_at) VALUES ` +
		strings.Join(rows, ", ")

	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func seedInteractions(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, users []string, items []seedItem, n int) error {
	kinds := []domain.InteractionKind{
		domain.InteractionApproval, domain.InteractionApproval, domain.InteractionApproval,
		domain.InteractionReaction, domain.InteractionReaction,
		domain.InteractionShare, domain.InteractionSave,
	}
	seen := make(map[[3]string]bool)

	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		// Power-law skew so a few users and items dominate activity.
		user := users[boundedPowerIndex(rng, len(users), 1.5)]
		item := items[boundedPowerIndex(rng, len(items), 1.3)]
		kind := kinds[rng.Intn(len(kinds))]

		key := [3]string{user, item.id, string(kind)}
		if seen[key] {
			continue
		}
		seen[key] = true

		var style any
		if item.styleTag != domain.StyleNone {
			style = string(item.styleTag)
		}
		createdAt := time.Now().Add(-time.Duration(rng.Intn(30*24*60)) * time.Minute)

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6))
		args = append(args, user, item.id, string(item.contentType), style, string(kind), createdAt)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO interactions (user_id, item_id, content_type, style_tag, kind, created_at) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func boundedPowerIndex(rng *rand.Rand, n int, exponent float64) int {
	i := int(math.Floor(math.Pow(rng.Float64(), exponent) * float64(n)))
	return max(0, min(i, n-1))
}

func powerLawCount(rng *rand.Rand, ceiling int) int {
	u := rng.Float64()
	if u == 0 {
		u = 0.001
	}
	c := int(math.Pow(u, 2.0) * float64(ceiling))
	return max(c, 1)
}
