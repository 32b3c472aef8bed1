package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pulsefeed/ranking-service/internal/domain"
)

// FetchEligibleCandidates returns the bounded pool of rankable items:
// moderation-removed items are filtered here, items the user already
// interacted with are excluded, and the pool is restricted to maxAge.
func (r *Repository) FetchEligibleCandidates(ctx context.Context, excludeUserID string, maxAge time.Duration, maxCount int) ([]domain.CandidateItem, error) {
	cutoff := time.Now().Add(-maxAge)

	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.author_id, c.content_type, c.style_tag, c.has_image, c.has_video,
		        c.text_length, c.quality_prior, c.approvals, c.reactions, c.shares, c.saves, c.views, c.created_at
		FROM content_items c
		LEFT JOIN interactions i
			ON i.item_id = c.id AND i.user_id = $1
		WHERE i.item_id IS NULL
			AND NOT c.removed
			AND c.created_at >= $2
		ORDER BY c.created_at DESC
		LIMIT $3`,
		excludeUserID, cutoff, maxCount,
	)
	if err != nil {
		return nil, fmt.Errorf("query candidates for user %s: %w", excludeUserID, err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// scanItems reads candidate rows, applying the default quality prior where
// the editorial prior is absent.
func scanItems(rows pgx.Rows) ([]domain.CandidateItem, error) {
	var items []domain.CandidateItem
	for rows.Next() {
		var c domain.CandidateItem
		var style *string
		var quality *float64
		err := rows.Scan(&c.ID, &c.AuthorID, &c.ContentType, &style, &c.HasImage, &c.HasVideo,
			&c.TextLength, &quality, &c.Stats.Approvals, &c.Stats.Reactions,
			&c.Stats.Shares, &c.Stats.Saves, &c.Stats.Views, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan content item: %w", err)
		}
		if style != nil {
			c.StyleTag = domain.StyleTag(*style)
		}
		if quality != nil {
			c.QualityPrior = *quality
		} else {
			c.QualityPrior = domain.DefaultQualityPrior
		}
		items = append(items, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content items: %w", err)
	}
	return items, nil
}
