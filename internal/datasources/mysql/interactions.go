package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/afishabot/discovery/internal/domain"
	"github.com/huandu/go-sqlbuilder"
)

const upsertReactionSQL = `
INSERT INTO event_like (user_id, content_id, value, created)
VALUES (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE value = VALUES(value), created = VALUES(created)`

func (r *Repository) UpsertReaction(ctx context.Context, userID, contentID int64, value bool) error {
	_, err := r.db.ExecContext(ctx, upsertReactionSQL, userID, contentID, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upserting reaction: %w", err)
	}

	return nil
}

func (r *Repository) DeleteReaction(ctx context.Context, userID, contentID int64) error {
	db := sqlbuilder.NewDeleteBuilder()
	db.DeleteFrom("event_like")
	db.Where(
		db.Equal("user_id", userID),
		db.Equal("content_id", contentID),
	)

	query, args := db.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting reaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking reaction delete: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

const createRemovedFavoriteSQL = `
INSERT IGNORE INTO event_removedfavorite (user_id, content_id, created)
VALUES (?, ?, ?)`

func (r *Repository) CreateRemovedFavorite(ctx context.Context, userID, contentID int64) error {
	_, err := r.db.ExecContext(ctx, createRemovedFavoriteSQL, userID, contentID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("creating removed favorite: %w", err)
	}

	return nil
}

func (r *Repository) ListLikedContentIDs(ctx context.Context, userID int64) ([]int64, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("content_id")
	sb.From("event_like")
	sb.Where(sb.Equal("user_id", userID))

	query, args := sb.Build()
	ids, err := r.queryIDs(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("listing liked content ids: %w", err)
	}
	return ids, nil
}

func (r *Repository) ListRemovedContentIDs(ctx context.Context, userID int64) ([]int64, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("content_id")
	sb.From("event_removedfavorite")
	sb.Where(sb.Equal("user_id", userID))

	query, args := sb.Build()
	ids, err := r.queryIDs(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("listing removed content ids: %w", err)
	}
	return ids, nil
}

const createPreferenceSQL = `
INSERT IGNORE INTO event_usercategorypreference (user_id, tag_id)
VALUES (?, ?)`

func (r *Repository) CreatePreference(ctx context.Context, userID, tagID int64) error {
	_, err := r.db.ExecContext(ctx, createPreferenceSQL, userID, tagID)
	if err != nil {
		return fmt.Errorf("creating preference: %w", err)
	}

	return nil
}

func (r *Repository) DeletePreference(ctx context.Context, userID, tagID int64) error {
	db := sqlbuilder.NewDeleteBuilder()
	db.DeleteFrom("event_usercategorypreference")
	db.Where(
		db.Equal("user_id", userID),
		db.Equal("tag_id", tagID),
	)

	query, args := db.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting preference: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking preference delete: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *Repository) ListPreferredTagIDs(ctx context.Context, userID int64) ([]int64, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("tag_id")
	sb.From("event_usercategorypreference")
	sb.Where(sb.Equal("user_id", userID))

	query, args := sb.Build()
	ids, err := r.queryIDs(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("listing preferred tag ids: %w", err)
	}
	return ids, nil
}

func (r *Repository) ListPreferenceTagNames(ctx context.Context, userID int64) ([]string, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("t.name")
	sb.From("event_usercategorypreference p")
	sb.Join("event_tags t", "t.id = p.tag_id")
	sb.Where(sb.Equal("p.user_id", userID))
	sb.OrderBy("t.id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing preference tag names: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning preference tag name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating preference tag names: %w", err)
	}

	return names, nil
}
