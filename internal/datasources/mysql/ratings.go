package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/afishabot/discovery/internal/domain"
	"github.com/huandu/go-sqlbuilder"
)

const upsertRatingSQL = `
INSERT INTO event_rating (user_id, content_id, rating, created, updated)
VALUES (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE rating = VALUES(rating), updated = VALUES(updated)`

func (r *Repository) UpsertRating(ctx context.Context, userID, contentID int64, rating int) (domain.Rating, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, upsertRatingSQL, userID, contentID, rating, now, now)
	if err != nil {
		return domain.Rating{}, fmt.Errorf("upserting rating: %w", err)
	}

	return r.getRating(ctx, userID, contentID)
}

func (r *Repository) getRating(ctx context.Context, userID, contentID int64) (domain.Rating, error) {
	sb := ratingSelect()
	sb.Where(
		sb.Equal("rt.user_id", userID),
		sb.Equal("rt.content_id", contentID),
	)

	query, args := sb.Build()
	var rating domain.Rating
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&rating.ID, &rating.UserID, &rating.ContentID, &rating.Username,
		&rating.Rating, &rating.Created, &rating.Updated,
	)
	if err != nil {
		return domain.Rating{}, fmt.Errorf("fetching rating: %w", scanRowsErr(err))
	}

	return rating, nil
}

func (r *Repository) DeleteRating(ctx context.Context, userID, contentID int64) error {
	db := sqlbuilder.NewDeleteBuilder()
	db.DeleteFrom("event_rating")
	db.Where(
		db.Equal("user_id", userID),
		db.Equal("content_id", contentID),
	)

	query, args := db.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting rating: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rating delete: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *Repository) GetContentRatingStats(ctx context.Context, contentID int64) (domain.RatingStats, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("rating", "COUNT(*)")
	sb.From("event_rating")
	sb.Where(sb.Equal("content_id", contentID))
	sb.GroupBy("rating")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.RatingStats{}, fmt.Errorf("querying rating stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	stats := domain.RatingStats{
		ContentID:    contentID,
		Distribution: map[int]int{},
	}
	sum := 0
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return domain.RatingStats{}, fmt.Errorf("scanning rating stats: %w", err)
		}
		stats.Distribution[rating] = count
		stats.TotalRatings += count
		sum += rating * count
	}
	if err := rows.Err(); err != nil {
		return domain.RatingStats{}, fmt.Errorf("iterating rating stats: %w", err)
	}

	if stats.TotalRatings > 0 {
		stats.AverageRating = float64(sum) / float64(stats.TotalRatings)
	}

	return stats, nil
}

func (r *Repository) ListUserRatings(ctx context.Context, userID int64, skip, limit int) ([]domain.Rating, int, error) {
	countSb := sqlbuilder.NewSelectBuilder()
	countSb.Select("COUNT(*)")
	countSb.From("event_rating")
	countSb.Where(countSb.Equal("user_id", userID))

	countQuery, countArgs := countSb.Build()
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting user ratings: %w", err)
	}

	sb := ratingSelect()
	sb.Where(sb.Equal("rt.user_id", userID))
	sb.OrderBy("rt.updated DESC")
	sb.Limit(limit)
	sb.Offset(skip)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing user ratings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ratings := []domain.Rating{}
	for rows.Next() {
		var rating domain.Rating
		if err := rows.Scan(
			&rating.ID, &rating.UserID, &rating.ContentID, &rating.Username,
			&rating.Rating, &rating.Created, &rating.Updated,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning user rating: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating user ratings: %w", err)
	}

	return ratings, total, nil
}

func ratingSelect() *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(
		"rt.id", "rt.user_id", "rt.content_id", "u.username",
		"rt.rating", "rt.created", "rt.updated",
	)
	sb.From("event_rating rt")
	sb.Join("event_user u", "u.id = rt.user_id")
	return sb
}

func (r *Repository) CreateReview(ctx context.Context, userID, contentID int64, text string) (domain.Review, error) {
	ib := sqlbuilder.NewInsertBuilder()
	ib.InsertInto("event_review")
	ib.Cols("user_id", "content_id", "text", "created")
	ib.Values(userID, contentID, text, time.Now().UTC())

	query, args := ib.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Review{}, fmt.Errorf("creating review: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Review{}, fmt.Errorf("resolving created review id: %w", err)
	}

	return r.getReview(ctx, id)
}

func (r *Repository) getReview(ctx context.Context, id int64) (domain.Review, error) {
	sb := reviewSelect()
	sb.Where(sb.Equal("rv.id", id))

	query, args := sb.Build()
	var review domain.Review
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&review.ID, &review.UserID, &review.ContentID, &review.Username,
		&review.Text, &review.Created,
	)
	if err != nil {
		return domain.Review{}, fmt.Errorf("fetching review: %w", scanRowsErr(err))
	}

	return review, nil
}

func (r *Repository) ListContentReviews(ctx context.Context, contentID int64, skip, limit int) ([]domain.Review, int, error) {
	countSb := sqlbuilder.NewSelectBuilder()
	countSb.Select("COUNT(*)")
	countSb.From("event_review")
	countSb.Where(countSb.Equal("content_id", contentID))

	countQuery, countArgs := countSb.Build()
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting content reviews: %w", err)
	}

	sb := reviewSelect()
	sb.Where(sb.Equal("rv.content_id", contentID))
	sb.OrderBy("rv.created DESC")
	sb.Limit(limit)
	sb.Offset(skip)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing content reviews: %w", err)
	}
	defer func() { _ = rows.Close() }()

	reviews := []domain.Review{}
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID, &review.UserID, &review.ContentID, &review.Username,
			&review.Text, &review.Created,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning content review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating content reviews: %w", err)
	}

	return reviews, total, nil
}

func reviewSelect() *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(
		"rv.id", "rv.user_id", "rv.content_id", "u.username",
		"rv.text", "rv.created",
	)
	sb.From("event_review rv")
	sb.Join("event_user u", "u.id = rv.user_id")
	return sb
}
