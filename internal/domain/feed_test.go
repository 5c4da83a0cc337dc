package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func itemWithTags(id int64, tagIDs ...int64) ContentItem {
	tags := make([]Tag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		tags = append(tags, Tag{ID: tagID})
	}
	return ContentItem{ID: id, Tags: tags}
}

func TestFilterExcluded(t *testing.T) {
	items := []ContentItem{{ID: 1}, {ID: 2}, {ID: 3}}

	got := FilterExcluded(items, NewExclusionSet(2))
	assert.Equal(t, []ContentItem{{ID: 1}, {ID: 3}}, got)

	got = FilterExcluded(items, NewExclusionSet())
	assert.Equal(t, items, got)
}

func TestFilterByPreferredTags(t *testing.T) {
	items := []ContentItem{
		itemWithTags(1, 10, 11),
		itemWithTags(2, 12),
		itemWithTags(3),
	}

	t.Run("no_preferences_is_a_noop", func(t *testing.T) {
		got := FilterByPreferredTags(items, nil)
		assert.Equal(t, items, got)
	})

	t.Run("keeps_items_with_any_preferred_tag", func(t *testing.T) {
		got := FilterByPreferredTags(items, []int64{11, 99})
		assert.Equal(t, []ContentItem{itemWithTags(1, 10, 11)}, got)
	})

	t.Run("untagged_items_never_match", func(t *testing.T) {
		got := FilterByPreferredTags(items, []int64{1, 2, 3})
		assert.Empty(t, got)
	})
}

func TestSortByDateStart_NullsLast(t *testing.T) {
	items := []ContentItem{
		{ID: 1},
		{ID: 2, DateStart: day("2025-06-12")},
		{ID: 3, DateStart: day("2025-06-10")},
		{ID: 4},
	}

	SortByDateStart(items)

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []int64{3, 2, 1, 4}, ids)
}

func TestAssembleFeed(t *testing.T) {
	candidates := []ContentItem{
		{ID: 1, DateStart: day("2025-06-11"), Tags: []Tag{{ID: 10}}},
		{ID: 2, DateStart: day("2025-06-10"), Tags: []Tag{{ID: 11}}},
		{ID: 3, Tags: []Tag{{ID: 10}}},
		{ID: 2, DateStart: day("2025-06-10"), Tags: []Tag{{ID: 11}}}, // duplicate row
	}

	t.Run("no_history_no_preferences_returns_all_sorted", func(t *testing.T) {
		got := AssembleFeed(candidates, NewExclusionSet(), nil)
		ids := make([]int64, 0, len(got))
		for _, item := range got {
			ids = append(ids, item.ID)
		}
		assert.Equal(t, []int64{2, 1, 3}, ids)
	})

	t.Run("excluded_items_disappear", func(t *testing.T) {
		got := AssembleFeed(candidates, NewExclusionSet(2), nil)
		ids := make([]int64, 0, len(got))
		for _, item := range got {
			ids = append(ids, item.ID)
		}
		assert.Equal(t, []int64{1, 3}, ids)
	})

	t.Run("preferences_restrict_by_tag", func(t *testing.T) {
		got := AssembleFeed(candidates, NewExclusionSet(), []int64{10})
		ids := make([]int64, 0, len(got))
		for _, item := range got {
			ids = append(ids, item.ID)
		}
		assert.Equal(t, []int64{1, 3}, ids)
	})

	t.Run("empty_result_is_not_an_error", func(t *testing.T) {
		got := AssembleFeed(candidates, NewExclusionSet(1, 2, 3), nil)
		assert.Empty(t, got)
	})
}

func TestMacroCategoryName_FirstTagWins(t *testing.T) {
	events := &MacroCategory{ID: 1, Name: "events"}
	places := &MacroCategory{ID: 2, Name: "places"}

	item := ContentItem{Tags: []Tag{
		{ID: 5, MacroCategory: events},
		{ID: 9, MacroCategory: places},
	}}
	assert.Equal(t, "events", item.MacroCategoryName())

	assert.Empty(t, ContentItem{}.MacroCategoryName())
	assert.Empty(t, ContentItem{Tags: []Tag{{ID: 1}}}.MacroCategoryName())
}
