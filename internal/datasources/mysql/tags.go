package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/afishabot/discovery/internal/domain"
	"github.com/huandu/go-sqlbuilder"
)

var macroCategoryCols = []string{"id", "name", "description", "image"}

func (r *Repository) GetMacroCategoryByName(ctx context.Context, name string) (domain.MacroCategory, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(macroCategoryCols...)
	sb.From("event_macrocategory")
	sb.Where(sb.Equal("name", name))

	return r.queryMacroCategory(ctx, sb)
}

func (r *Repository) GetMacroCategoryByID(ctx context.Context, id int64) (domain.MacroCategory, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(macroCategoryCols...)
	sb.From("event_macrocategory")
	sb.Where(sb.Equal("id", id))

	return r.queryMacroCategory(ctx, sb)
}

func (r *Repository) queryMacroCategory(ctx context.Context, sb *sqlbuilder.SelectBuilder) (domain.MacroCategory, error) {
	query, args := sb.Build()

	var category domain.MacroCategory
	var description, image sql.NullString
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&category.ID, &category.Name, &description, &image)
	if err != nil {
		return domain.MacroCategory{}, fmt.Errorf("fetching macro category: %w", scanRowsErr(err))
	}
	category.Description = description.String
	category.Image = image.String

	return category, nil
}

func (r *Repository) ListMacroCategories(ctx context.Context, skip, limit int) ([]domain.MacroCategory, int, error) {
	countSb := sqlbuilder.NewSelectBuilder()
	countSb.Select("COUNT(*)")
	countSb.From("event_macrocategory")

	countQuery, countArgs := countSb.Build()
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting macro categories: %w", err)
	}

	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(macroCategoryCols...)
	sb.From("event_macrocategory")
	sb.OrderBy("id")
	sb.Limit(limit)
	sb.Offset(skip)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing macro categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := []domain.MacroCategory{}
	for rows.Next() {
		var category domain.MacroCategory
		var description, image sql.NullString
		if err := rows.Scan(&category.ID, &category.Name, &description, &image); err != nil {
			return nil, 0, fmt.Errorf("scanning macro category: %w", err)
		}
		category.Description = description.String
		category.Image = image.String
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating macro categories: %w", err)
	}

	return categories, total, nil
}

func (r *Repository) GetTagByID(ctx context.Context, id int64) (domain.Tag, error) {
	sb := tagSelect()
	sb.Where(sb.Equal("t.id", id))

	tags, err := r.queryTags(ctx, sb)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("fetching tag by id: %w", err)
	}
	if len(tags) == 0 {
		return domain.Tag{}, domain.ErrNotFound
	}
	return tags[0], nil
}

func (r *Repository) ListTagsByMacroCategory(ctx context.Context, macroCategoryID int64) ([]domain.Tag, error) {
	sb := tagSelect()
	sb.Where(sb.Equal("t.macro_category_id", macroCategoryID))
	sb.OrderBy("t.id")

	tags, err := r.queryTags(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("listing tags by macro category: %w", err)
	}
	return tags, nil
}

func (r *Repository) ListTagContentRefs(
	ctx context.Context, macroCategoryID int64, city domain.City, window domain.DateWindow,
) ([]domain.TagContentRef, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("ct.tags_id", "ct.content_id")
	sb.From("event_content_tags ct")
	sb.Join("event_tags t", "t.id = ct.tags_id")
	sb.Join("event_content c", "c.id = ct.content_id")

	conds := []string{
		sb.Equal("t.macro_category_id", macroCategoryID),
		sb.Equal("c.city", string(city)),
	}
	conds = append(conds, feedDateConds(sb, window)...)
	sb.Where(conds...)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tag content refs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	refs := []domain.TagContentRef{}
	for rows.Next() {
		var ref domain.TagContentRef
		if err := rows.Scan(&ref.TagID, &ref.ContentID); err != nil {
			return nil, fmt.Errorf("scanning tag content ref: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tag content refs: %w", err)
	}

	return refs, nil
}

func (r *Repository) ListPopularTags(ctx context.Context, limit int) ([]domain.TagCount, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("t.id", "t.name", "COUNT(ct.content_id) AS content_count")
	sb.From("event_tags t")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "event_content_tags ct", "ct.tags_id = t.id")
	sb.GroupBy("t.id", "t.name")
	sb.OrderBy("content_count DESC", "t.id")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing popular tags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	popular := []domain.TagCount{}
	for rows.Next() {
		var tag domain.TagCount
		if err := rows.Scan(&tag.Tag.ID, &tag.Tag.Name, &tag.ContentCount); err != nil {
			return nil, fmt.Errorf("scanning popular tag: %w", err)
		}
		popular = append(popular, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating popular tags: %w", err)
	}

	return popular, nil
}

func tagSelect() *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(
		"t.id", "t.name", "t.description", "t.image",
		"m.id", "m.name", "m.description", "m.image",
	)
	sb.From("event_tags t")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "event_macrocategory m", "m.id = t.macro_category_id")
	return sb
}

func (r *Repository) queryTags(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.Tag, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running tag query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := []domain.Tag{}
	for rows.Next() {
		var (
			tag                         domain.Tag
			tagDescription, tagImage    sql.NullString
			categoryID                  sql.NullInt64
			categoryName, categoryDescr sql.NullString
			categoryImage               sql.NullString
		)
		if err := rows.Scan(
			&tag.ID, &tag.Name, &tagDescription, &tagImage,
			&categoryID, &categoryName, &categoryDescr, &categoryImage,
		); err != nil {
			return nil, fmt.Errorf("scanning tag row: %w", err)
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

		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tag rows: %w", err)
	}

	return tags, nil
}
