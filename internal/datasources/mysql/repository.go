package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
	"github.com/huandu/go-sqlbuilder"
)

var _ datasources.ContentRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var contentCols = []string{
	"c.id", "c.name", "c.description", "c.image", "c.contact",
	"c.date_start", "c.date_end", "c.time", "c.location", "c.cost",
	"c.city", "c.unique_id", "c.event_type", "c.publisher_type", "c.publisher_id",
}

func (r *Repository) FetchContentByID(ctx context.Context, id int64) (domain.ContentItem, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(contentCols...)
	sb.From("event_content c")
	sb.Where(sb.Equal("c.id", id))

	items, err := r.queryContent(ctx, sb)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("fetching content by id: %w", err)
	}
	if len(items) == 0 {
		return domain.ContentItem{}, domain.ErrNotFound
	}
	return items[0], nil
}

func (r *Repository) ListFeedCandidates(
	ctx context.Context, city domain.City, window domain.DateWindow,
) ([]domain.ContentItem, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(contentCols...)
	sb.From("event_content c")

	conds := []string{sb.Equal("c.city", string(city))}
	conds = append(conds, feedDateConds(sb, window)...)
	sb.Where(conds...)

	items, err := r.queryContent(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("listing feed candidates: %w", err)
	}
	return items, nil
}

func (r *Repository) ListContentByTagName(
	ctx context.Context, tagName string, city domain.City, window domain.DateWindow,
) ([]domain.ContentItem, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(contentCols...)
	sb.Distinct()
	sb.From("event_content c")
	sb.Join("event_content_tags ct", "ct.content_id = c.id")
	sb.Join("event_tags t", "t.id = ct.tags_id")

	conds := []string{
		sb.Equal("t.name", tagName),
		sb.Equal("c.city", string(city)),
	}
	conds = append(conds, feedDateConds(sb, window)...)
	sb.Where(conds...)

	items, err := r.queryContent(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("listing content by tag name: %w", err)
	}
	return items, nil
}

func (r *Repository) ListLikedContent(
	ctx context.Context, userID int64, value bool, window domain.DateWindow,
) ([]domain.ContentItem, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(contentCols...)
	sb.From("event_content c")
	sb.Join("event_like l", "l.content_id = c.id")

	conds := []string{
		sb.Equal("l.user_id", userID),
		sb.Equal("l.value", value),
	}
	conds = append(conds, feedDateConds(sb, window)...)
	sb.Where(conds...)
	sb.OrderBy("l.created DESC")

	items, err := r.queryContent(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("listing liked content: %w", err)
	}
	return items, nil
}

func (r *Repository) SearchContent(
	ctx context.Context, filters domain.SearchFilters,
) ([]domain.ContentItem, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(contentCols...)
	sb.Distinct()
	sb.From("event_content c")

	var conds []string
	conds = append(conds, textSearchConds(sb, domain.TokenizeQuery(filters.Query))...)

	if filters.City != "" {
		conds = append(conds, sb.Equal("c.city", string(filters.City)))
	}

	if filters.EventType != "" {
		conds = append(conds, sb.Equal("c.event_type", string(filters.EventType)))
	}

	conds = append(conds, searchDateConds(sb, filters.DateFrom, filters.DateTo)...)

	if len(filters.TagIDs) > 0 {
		sb.Join("event_content_tags ct", "ct.content_id = c.id")
		tagIDs := make([]interface{}, 0, len(filters.TagIDs))
		for _, id := range filters.TagIDs {
			tagIDs = append(tagIDs, id)
		}
		conds = append(conds, sb.In("ct.tags_id", tagIDs...))
	}

	if len(conds) > 0 {
		sb.Where(conds...)
	}

	items, err := r.queryContent(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("searching content: %w", err)
	}
	return items, nil
}

func (r *Repository) ListNameSuggestions(
	ctx context.Context, term string, city domain.City, limit int,
) ([]string, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("name")
	sb.Distinct()
	sb.From("event_content c")

	conds := []string{sb.Like("LOWER(c.name)", "%"+term+"%")}
	if city != "" {
		conds = append(conds, sb.Equal("c.city", string(city)))
	}
	sb.Where(conds...)
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying name suggestions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	suggestions := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning suggestion: %w", err)
		}
		suggestions = append(suggestions, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating suggestions: %w", err)
	}

	return suggestions, nil
}

func (r *Repository) ListUpcomingContent(
	ctx context.Context, city domain.City, from time.Time, limit int,
) ([]domain.ContentItem, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(contentCols...)
	sb.From("event_content c")
	sb.Where(
		sb.Equal("c.city", string(city)),
		sb.GreaterEqualThan("c.date_start", from.Format(dateLayout)),
	)
	sb.OrderBy("c.date_start ASC")
	sb.Limit(limit)

	items, err := r.queryContent(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("listing upcoming content: %w", err)
	}
	return items, nil
}

func (r *Repository) ListReactedContentIDs(ctx context.Context, userID int64) ([]int64, error) {
	likes := sqlbuilder.NewSelectBuilder()
	likes.Select("content_id")
	likes.From("event_like")
	likes.Where(likes.Equal("user_id", userID))

	removed := sqlbuilder.NewSelectBuilder()
	removed.Select("content_id")
	removed.From("event_removedfavorite")
	removed.Where(removed.Equal("user_id", userID))

	query, args := sqlbuilder.Union(likes, removed).Build()
	return r.queryIDs(ctx, query, args)
}

// PurgeOutdatedContent deletes ended events: multi-day events whose end date
// passed, and single-day events (equal dates, or a start with no end) whose
// start date passed. Undated content is kept.
func (r *Repository) PurgeOutdatedContent(ctx context.Context, before time.Time) (int64, error) {
	cutoff := before.Format(dateLayout)

	db := sqlbuilder.NewDeleteBuilder()
	db.DeleteFrom("event_content")
	db.Where(db.Or(
		db.And(
			db.IsNotNull("date_start"),
			db.IsNotNull("date_end"),
			"date_start <> date_end",
			db.LessThan("date_end", cutoff),
		),
		db.And(
			db.IsNotNull("date_start"),
			db.Or(
				db.IsNull("date_end"),
				"date_start = date_end",
			),
			db.LessThan("date_start", cutoff),
		),
	))

	query, args := db.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("purging outdated content: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting purged content: %w", err)
	}
	return deleted, nil
}

func (r *Repository) queryContent(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.ContentItem, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running content query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []domain.ContentItem{}
	for rows.Next() {
		item, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating content rows: %w", err)
	}

	if err := r.attachTags(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

func scanContent(rows *sql.Rows) (domain.ContentItem, error) {
	var (
		item                                      domain.ContentItem
		image, contact, timeStr, location, unique sql.NullString
		dateStart, dateEnd                        sql.NullTime
		cost                                      sql.NullInt64
		city, eventType, publisherType            string
		publisherID                               int64
	)

	if err := rows.Scan(
		&item.ID, &item.Name, &item.Description, &image, &contact,
		&dateStart, &dateEnd, &timeStr, &location, &cost,
		&city, &unique, &eventType, &publisherType, &publisherID,
	); err != nil {
		return domain.ContentItem{}, fmt.Errorf("scanning content row: %w", err)
	}

	item.Image = image.String
	item.Time = timeStr.String
	item.Location = location.String
	item.UniqueID = unique.String
	item.City = domain.City(city)
	item.EventType = domain.EventType(eventType)

	if contact.Valid && contact.String != "" {
		item.Contact = json.RawMessage(contact.String)
	}
	if dateStart.Valid {
		t := dateStart.Time
		item.DateStart = &t
	}
	if dateEnd.Valid {
		t := dateEnd.Time
		item.DateEnd = &t
	}
	if cost.Valid {
		c := cost.Int64
		item.Cost = &c
	}

	publisher, err := domain.ParsePublisher(publisherType, publisherID)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("resolving content publisher: %w", err)
	}
	item.Publisher = publisher

	return item, nil
}

// attachTags loads each item's tags, ordered by tag ID so the first tag (and
// with it the denormalized macro-category name) is deterministic.
func (r *Repository) attachTags(ctx context.Context, items []domain.ContentItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]interface{}, 0, len(items))
	index := make(map[int64][]int, len(items))
	for i, item := range items {
		if _, seen := index[item.ID]; !seen {
			ids = append(ids, item.ID)
		}
		index[item.ID] = append(index[item.ID], i)
	}

	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(
		"ct.content_id",
		"t.id", "t.name", "t.description", "t.image",
		"m.id", "m.name", "m.description", "m.image",
	)
	sb.From("event_content_tags ct")
	sb.Join("event_tags t", "t.id = ct.tags_id")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "event_macrocategory m", "m.id = t.macro_category_id")
	sb.Where(sb.In("ct.content_id", ids...))
	sb.OrderBy("ct.content_id", "t.id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("querying content tags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			contentID                    int64
			tag                          domain.Tag
			tagDescription, tagImage     sql.NullString
			categoryID                   sql.NullInt64
			categoryName, categoryDescr  sql.NullString
			categoryImage                sql.NullString
		)
		if err := rows.Scan(
			&contentID,
			&tag.ID, &tag.Name, &tagDescription, &tagImage,
			&categoryID, &categoryName, &categoryDescr, &categoryImage,
		); err != nil {
			return fmt.Errorf("scanning content tag row: %w", err)
		}

		tag.Description = tagDescription.String
		tag.Image = tagImage.String
		if categoryID.Valid {
			tag.MacroCategory = &domain.MacroCategory{
				ID:          categoryID.Int64,
				Name:        categoryName.String,
				Description: categoryDescr.String,
				Image:       categoryImage.String,
			}
		}

		for _, i := range index[contentID] {
			items[i].Tags = append(items[i].Tags, tag)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating content tag rows: %w", err)
	}

	return nil
}

func (r *Repository) queryIDs(ctx context.Context, query string, args []interface{}) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running id query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating id rows: %w", err)
	}

	return ids, nil
}

func scanRowsErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
