package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeQuery(t *testing.T) {
	assert.Equal(t, []string{"jazz", "concert"}, TokenizeQuery("  Jazz   Concert "))
	assert.Nil(t, TokenizeQuery("   "))
	assert.Nil(t, TokenizeQuery(""))
}

func TestMatchesAllTokens(t *testing.T) {
	item := ContentItem{
		Name:        "Jazz Concert Tonight",
		Description: "An evening of improvisation",
		Location:    "Philharmonic Hall",
	}

	assert.True(t, MatchesAllTokens(item, []string{"jazz", "concert"}))
	assert.True(t, MatchesAllTokens(item, []string{"jazz", "hall"}))
	assert.False(t, MatchesAllTokens(item, []string{"summer", "jazz"}))
	assert.True(t, MatchesAllTokens(item, nil))
}

func TestFilterByTokens_AndAcrossTokens(t *testing.T) {
	items := []ContentItem{
		{ID: 1, Name: "Summer Jazz Festival"},
		{ID: 2, Name: "Jazz Evening"},
	}

	got := FilterByTokens(items, []string{"summer", "jazz"})
	assert.Equal(t, []ContentItem{{ID: 1, Name: "Summer Jazz Festival"}}, got)

	got = FilterByTokens(items, nil)
	assert.Equal(t, items, got)
}

func TestRelevanceScore(t *testing.T) {
	cases := []struct {
		name   string
		item   ContentItem
		tokens []string
		want   int
	}{
		{
			name:   "both_tokens_in_name",
			item:   ContentItem{Name: "Jazz Concert Tonight"},
			tokens: []string{"jazz", "concert"},
			want:   20,
		},
		{
			name:   "token_only_in_description",
			item:   ContentItem{Name: "Open Mic", Description: "jazz welcome"},
			tokens: []string{"jazz"},
			want:   3,
		},
		{
			name:   "token_in_location",
			item:   ContentItem{Location: "Jazz Club Basement"},
			tokens: []string{"jazz"},
			want:   5,
		},
		{
			name:   "token_scores_in_every_matching_field",
			item:   ContentItem{Name: "Jazz", Description: "jazz", Location: "jazz"},
			tokens: []string{"jazz"},
			want:   18,
		},
		{
			name:   "no_match",
			item:   ContentItem{Name: "Pottery Class"},
			tokens: []string{"jazz"},
			want:   0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RelevanceScore(tc.item, tc.tokens))
		})
	}
}

func TestRankByRelevance(t *testing.T) {
	nameHit := ContentItem{ID: 1, Name: "Jazz Concert Tonight", DateStart: day("2025-07-01")}
	descHit := ContentItem{ID: 2, Name: "Evening Show", Description: "with a jazz trio", DateStart: day("2025-07-01")}

	items := []ContentItem{descHit, nameHit}
	RankByRelevance(items, []string{"jazz", "concert"})
	assert.Equal(t, []ContentItem{nameHit, descHit}, items)

	// Equal scores fall back to start date ascending, undated last.
	a := ContentItem{ID: 3, Name: "jazz", DateStart: day("2025-07-02")}
	b := ContentItem{ID: 4, Name: "jazz", DateStart: day("2025-07-01")}
	c := ContentItem{ID: 5, Name: "jazz"}
	items = []ContentItem{c, a, b}
	RankByRelevance(items, []string{"jazz"})
	assert.Equal(t, []ContentItem{b, a, c}, items)
}

func TestPaginateContent(t *testing.T) {
	items := []ContentItem{{ID: 1}, {ID: 2}, {ID: 3}}

	assert.Equal(t, []ContentItem{{ID: 2}}, PaginateContent(items, 1, 1))
	assert.Equal(t, items, PaginateContent(items, 0, 100))
	assert.Empty(t, PaginateContent(items, 5, 10))
}

func TestHasMore(t *testing.T) {
	assert.True(t, HasMore(10, 0, 5))
	assert.False(t, HasMore(10, 5, 5))
	assert.False(t, HasMore(3, 5, 10))
}

func TestLastToken(t *testing.T) {
	assert.Equal(t, "conc", LastToken("Jazz Conc"))
	assert.Equal(t, "jazz", LastToken("  Jazz  "))
	assert.Empty(t, LastToken("   "))
}
