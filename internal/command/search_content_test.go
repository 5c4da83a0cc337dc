package command

import (
	"context"
	"testing"

	"github.com/afishabot/discovery/internal/datasources/mocks"
	"github.com/afishabot/discovery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchContent_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("ranks_name_matches_above_description_matches", func(t *testing.T) {
		searcher := mocks.NewMockContentSearcher(t)
		searcher.EXPECT().SearchContent(mock.Anything, domain.SearchFilters{Query: "jazz"}).
			Return([]domain.ContentItem{
				{ID: 1, Name: "Evening concert", Description: "A night of jazz standards"},
				{ID: 2, Name: "Jazz festival", Description: "Open air"},
			}, nil)

		cmd := &SearchContent{
			UserFetcher: mocks.NewMockUserGetter(t),
			Searcher:    searcher,
		}

		page, err := cmd.Execute(ctx, "", domain.SearchFilters{Query: "jazz"}, 0, 20)
		require.NoError(t, err)

		require.Len(t, page.Contents, 2)
		assert.Equal(t, int64(2), page.Contents[0].ID, "name match outranks description match")
		assert.Equal(t, int64(1), page.Contents[1].ID)
	})

	t.Run("drops_candidates_missing_a_token", func(t *testing.T) {
		searcher := mocks.NewMockContentSearcher(t)
		searcher.EXPECT().SearchContent(mock.Anything, mock.Anything).
			Return([]domain.ContentItem{
				{ID: 1, Name: "Jazz concert"},
				{ID: 2, Name: "Jazz brunch", Location: "Concert hall"},
				{ID: 3, Name: "Rock concert"},
			}, nil)

		cmd := &SearchContent{
			UserFetcher: mocks.NewMockUserGetter(t),
			Searcher:    searcher,
		}

		page, err := cmd.Execute(ctx, "", domain.SearchFilters{Query: "Jazz Concert"}, 0, 20)
		require.NoError(t, err)

		require.Len(t, page.Contents, 2)
		assert.Equal(t, int64(1), page.Contents[0].ID)
		assert.Equal(t, int64(2), page.Contents[1].ID)
	})

	t.Run("falls_back_to_home_city_without_explicit_city", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "alice").
			Return(domain.User{ID: 7, City: domain.CityYekaterinburg}, nil)

		searcher := mocks.NewMockContentSearcher(t)
		searcher.EXPECT().
			SearchContent(mock.Anything, domain.SearchFilters{Query: "jazz", City: domain.CityYekaterinburg}).
			Return(nil, nil)

		cmd := &SearchContent{UserFetcher: users, Searcher: searcher}

		_, err := cmd.Execute(ctx, "alice", domain.SearchFilters{Query: "jazz"}, 0, 20)
		require.NoError(t, err)
	})

	t.Run("explicit_city_wins_over_home_city", func(t *testing.T) {
		searcher := mocks.NewMockContentSearcher(t)
		searcher.EXPECT().
			SearchContent(mock.Anything, domain.SearchFilters{Query: "jazz", City: domain.CityMoscow}).
			Return(nil, nil)

		cmd := &SearchContent{
			UserFetcher: mocks.NewMockUserGetter(t),
			Searcher:    searcher,
		}

		_, err := cmd.Execute(ctx, "alice", domain.SearchFilters{Query: "jazz", City: domain.CityMoscow}, 0, 20)
		require.NoError(t, err)
	})

	t.Run("unknown_username_searches_everywhere", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "ghost").
			Return(domain.User{}, domain.ErrNotFound)

		searcher := mocks.NewMockContentSearcher(t)
		searcher.EXPECT().SearchContent(mock.Anything, domain.SearchFilters{Query: "jazz"}).
			Return(nil, nil)

		cmd := &SearchContent{UserFetcher: users, Searcher: searcher}

		page, err := cmd.Execute(ctx, "ghost", domain.SearchFilters{Query: "jazz"}, 0, 20)
		require.NoError(t, err)
		assert.Empty(t, page.Contents)
	})

	t.Run("paginates_ranked_results", func(t *testing.T) {
		searcher := mocks.NewMockContentSearcher(t)
		searcher.EXPECT().SearchContent(mock.Anything, mock.Anything).
			Return([]domain.ContentItem{
				{ID: 1, Name: "jazz a"},
				{ID: 2, Name: "jazz b"},
				{ID: 3, Name: "jazz c"},
			}, nil)

		cmd := &SearchContent{
			UserFetcher: mocks.NewMockUserGetter(t),
			Searcher:    searcher,
		}

		page, err := cmd.Execute(ctx, "", domain.SearchFilters{Query: "jazz"}, 1, 1)
		require.NoError(t, err)

		require.Len(t, page.Contents, 1)
		assert.Equal(t, int64(2), page.Contents[0].ID)
		assert.Equal(t, 3, page.TotalCount)
		assert.True(t, page.HasMore)
	})
}
