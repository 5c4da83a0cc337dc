package mysql

import (
	"testing"
	"time"

	"github.com/afishabot/discovery/internal/domain"
	"github.com/huandu/go-sqlbuilder"
	"github.com/stretchr/testify/assert"
)

func buildWhere(t *testing.T, conds []string, sb *sqlbuilder.SelectBuilder) (string, []interface{}) {
	t.Helper()
	sb.Select("c.id")
	sb.From("event_content c")
	if len(conds) > 0 {
		sb.Where(conds...)
	}
	return sb.Build()
}

func date(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatal(err)
	}
	return &parsed
}

func TestFeedDateConds(t *testing.T) {
	t.Run("both_bounds_filter_by_overlap", func(t *testing.T) {
		sb := sqlbuilder.NewSelectBuilder()
		conds := feedDateConds(sb, domain.DateWindow{
			Start: date(t, "2026-06-01"),
			End:   date(t, "2026-06-30"),
		})

		query, args := buildWhere(t, conds, sb)
		assert.Contains(t, query, "c.date_start <= ?")
		assert.Contains(t, query, "c.date_end >= ?")
		assert.Equal(t, []interface{}{"2026-06-30", "2026-06-01"}, args)
	})

	t.Run("start_only_requires_exact_start", func(t *testing.T) {
		sb := sqlbuilder.NewSelectBuilder()
		conds := feedDateConds(sb, domain.DateWindow{Start: date(t, "2026-06-01")})

		query, args := buildWhere(t, conds, sb)
		assert.Contains(t, query, "c.date_start = ?")
		assert.NotContains(t, query, "c.date_end")
		assert.Equal(t, []interface{}{"2026-06-01"}, args)
	})

	t.Run("end_only_requires_exact_end", func(t *testing.T) {
		sb := sqlbuilder.NewSelectBuilder()
		conds := feedDateConds(sb, domain.DateWindow{End: date(t, "2026-06-30")})

		query, args := buildWhere(t, conds, sb)
		assert.Contains(t, query, "c.date_end = ?")
		assert.NotContains(t, query, "c.date_start")
		assert.Equal(t, []interface{}{"2026-06-30"}, args)
	})

	t.Run("no_bounds_add_nothing", func(t *testing.T) {
		sb := sqlbuilder.NewSelectBuilder()
		conds := feedDateConds(sb, domain.DateWindow{})

		query, args := buildWhere(t, conds, sb)
		assert.NotContains(t, query, "WHERE")
		assert.Empty(t, args)
	})
}

func TestSearchDateConds(t *testing.T) {
	t.Run("from_admits_undated_starts_with_late_ends", func(t *testing.T) {
		sb := sqlbuilder.NewSelectBuilder()
		conds := searchDateConds(sb, date(t, "2026-06-01"), nil)

		query, args := buildWhere(t, conds, sb)
		assert.Contains(t, query, "c.date_start >= ?")
		assert.Contains(t, query, "c.date_start IS NULL")
		assert.Contains(t, query, "c.date_end >= ?")
		assert.Equal(t, []interface{}{"2026-06-01", "2026-06-01"}, args)
	})

	t.Run("to_admits_fully_undated_content", func(t *testing.T) {
		sb := sqlbuilder.NewSelectBuilder()
		conds := searchDateConds(sb, nil, date(t, "2026-06-30"))

		query, args := buildWhere(t, conds, sb)
		assert.Contains(t, query, "c.date_start <= ?")
		assert.Contains(t, query, "c.date_end <= ?")
		assert.Contains(t, query, "c.date_start IS NULL")
		assert.Contains(t, query, "c.date_end IS NULL")
		assert.Equal(t, []interface{}{"2026-06-30", "2026-06-30"}, args)
	})

	t.Run("nil_bounds_add_nothing", func(t *testing.T) {
		sb := sqlbuilder.NewSelectBuilder()
		conds := searchDateConds(sb, nil, nil)
		assert.Empty(t, conds)
	})
}

func TestTextSearchConds(t *testing.T) {
	t.Run("each_token_matches_any_field", func(t *testing.T) {
		sb := sqlbuilder.NewSelectBuilder()
		conds := textSearchConds(sb, []string{"jazz", "concert"})
		assert.Len(t, conds, 2)

		query, args := buildWhere(t, conds, sb)
		assert.Contains(t, query, "LOWER(c.name) LIKE ?")
		assert.Contains(t, query, "LOWER(c.description) LIKE ?")
		assert.Contains(t, query, "LOWER(c.location) LIKE ?")
		assert.Equal(t, []interface{}{
			"%jazz%", "%jazz%", "%jazz%",
			"%concert%", "%concert%", "%concert%",
		}, args)
	})

	t.Run("no_tokens_add_nothing", func(t *testing.T) {
		sb := sqlbuilder.NewSelectBuilder()
		assert.Empty(t, textSearchConds(sb, nil))
	})
}
