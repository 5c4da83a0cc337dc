package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateTagCounts(t *testing.T) {
	tags := []Tag{
		{ID: 1, Name: "concerts"},
		{ID: 2, Name: "exhibitions"},
	}

	refs := []TagContentRef{
		{TagID: 1, ContentID: 101},
		{TagID: 1, ContentID: 102},
		{TagID: 1, ContentID: 103},
		{TagID: 1, ContentID: 104},
		{TagID: 1, ContentID: 105},
	}

	t.Run("liked_and_removed_items_reduce_the_count", func(t *testing.T) {
		got := AggregateTagCounts(tags, refs, []int64{101, 102}, []int64{103})
		assert.Equal(t, []TagCount{
			{Tag: tags[0], ContentCount: 2},
			{Tag: tags[1], ContentCount: 0},
		}, got)
	})

	t.Run("no_history_keeps_full_counts", func(t *testing.T) {
		got := AggregateTagCounts(tags, refs, nil, nil)
		assert.Equal(t, 5, got[0].ContentCount)
		assert.Equal(t, 0, got[1].ContentCount)
	})

	t.Run("count_clamps_at_zero", func(t *testing.T) {
		one := []TagContentRef{{TagID: 1, ContentID: 101}}
		got := AggregateTagCounts(tags[:1], one, []int64{101}, []int64{101})
		assert.Equal(t, 0, got[0].ContentCount)
	})

	t.Run("empty_tag_list", func(t *testing.T) {
		got := AggregateTagCounts(nil, refs, nil, nil)
		assert.Empty(t, got)
	})
}
