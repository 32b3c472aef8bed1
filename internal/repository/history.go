package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pulsefeed/ranking-service/internal/domain"
)

// GetRecentInteractions returns a user's bounded interaction history, most
// recent first.
func (r *Repository) GetRecentInteractions(ctx context.Context, userID string, maxCount int) ([]domain.InteractionRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT item_id, content_type, style_tag, kind, created_at
		FROM interactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		userID, maxCount,
	)
	if err != nil {
		return nil, fmt.Errorf("query interactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	var records []domain.InteractionRecord
	for rows.Next() {
		var rec domain.InteractionRecord
		var style *string
		if err := rows.Scan(&rec.ItemID, &rec.ContentType, &style, &rec.Kind, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		if style != nil {
			rec.StyleTag = domain.StyleTag(*style)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interactions: %w", err)
	}
	return records, nil
}

// GetUserPreferenceDeclaration returns the style tags a user declared,
// used for neighbor discovery.
func (r *Repository) GetUserPreferenceDeclaration(ctx context.Context, userID string) ([]domain.StyleTag, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT style_tag FROM user_style_prefs
		WHERE user_id = $1
		ORDER BY style_tag`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query style prefs for user %s: %w", userID, err)
	}
	defer rows.Close()

	var tags []domain.StyleTag
	for rows.Next() {
		var tag domain.StyleTag
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scan style pref: %w", err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate style prefs: %w", err)
	}
	return tags, nil
}

// FindUsersByStyleTags returns users sharing at least one of the given style
// tags, ordered by user id for deterministic neighbor discovery.
func (r *Repository) FindUsersByStyleTags(ctx context.Context, tags []domain.StyleTag, excludeUserID string, maxCount int) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	tagStrings := make([]string, len(tags))
	for i, t := range tags {
		tagStrings[i] = string(t)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT user_id FROM user_style_prefs
		WHERE style_tag = ANY($1) AND user_id <> $2
		ORDER BY user_id
		LIMIT $3`,
		tagStrings, excludeUserID, maxCount,
	)
	if err != nil {
		return nil, fmt.Errorf("query users by style tags: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan neighbor user id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate neighbor user ids: %w", err)
	}
	return ids, nil
}

// GetUserApprovedItems returns the items a user recently approved, with
// engagement counts attached.
func (r *Repository) GetUserApprovedItems(ctx context.Context, userID string, maxCount int) ([]domain.CandidateItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.author_id, c.content_type, c.style_tag, c.has_image, c.has_video,
		        c.text_length, c.quality_prior, c.approvals, c.reactions, c.shares, c.saves, c.views, c.created_at
		FROM interactions i
		JOIN content_items c ON i.item_id = c.id
		WHERE i.user_id = $1 AND i.kind = $2 AND NOT c.removed
		ORDER BY i.created_at DESC
		LIMIT $3`,
		userID, string(domain.InteractionApproval), maxCount,
	)
	if err != nil {
		return nil, fmt.Errorf("query approved items for user %s: %w", userID, err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// GetUserStats returns a user's demographic counters.
func (r *Repository) GetUserStats(ctx context.Context, userID string) (domain.UserStats, error) {
	var stats domain.UserStats
	err := r.pool.QueryRow(ctx,
		`SELECT created_at, follower_count, following_count
		FROM users WHERE id = $1`,
		userID,
	).Scan(&stats.CreatedAt, &stats.Followers, &stats.Following)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserStats{}, domain.ErrUserNotFound
		}
		return domain.UserStats{}, fmt.Errorf("query user id=%s: %w", userID, err)
	}

	return stats, nil
}

// AddInteraction records an engagement event, denormalizing the item's type
// and style so history reads need no join.
func (r *Repository) AddInteraction(ctx context.Context, userID, itemID string, kind domain.InteractionKind) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO interactions (user_id, item_id, content_type, style_tag, kind)
		SELECT $1, id, content_type, style_tag, $3
		FROM content_items WHERE id = $2`,
		userID, itemID, string(kind),
	)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
