package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/afishabot/discovery/internal/datasources/mocks"
	"github.com/afishabot/discovery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &parsed
}

func TestAssembleFeed_Execute(t *testing.T) {
	ctx := context.Background()

	candidates := []domain.ContentItem{
		{ID: 1, Name: "Late show", DateStart: day(t, "2026-09-20"), Tags: []domain.Tag{{ID: 10}}},
		{ID: 2, Name: "Early show", DateStart: day(t, "2026-09-01"), Tags: []domain.Tag{{ID: 11}}},
		{ID: 3, Name: "Already seen", DateStart: day(t, "2026-09-05"), Tags: []domain.Tag{{ID: 10}}},
	}

	t.Run("personalizes_for_known_user", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "alice").
			Return(domain.User{ID: 7, Username: "alice", City: domain.CityMoscow}, nil)

		reactions := mocks.NewMockReactedContentLister(t)
		reactions.EXPECT().ListReactedContentIDs(mock.Anything, int64(7)).
			Return([]int64{3}, nil)

		preferences := mocks.NewMockPreferredTagLister(t)
		preferences.EXPECT().ListPreferredTagIDs(mock.Anything, int64(7)).
			Return(nil, nil)

		lister := mocks.NewMockFeedCandidateLister(t)
		lister.EXPECT().ListFeedCandidates(mock.Anything, domain.CityMoscow, domain.DateWindow{}).
			Return(candidates, nil)

		cmd := &AssembleFeed{
			UserFetcher:      users,
			CandidateLister:  lister,
			ReactionLister:   reactions,
			PreferenceLister: preferences,
		}

		page, err := cmd.Execute(ctx, "alice", domain.CityMoscow, domain.DateWindow{}, 0, 20)
		require.NoError(t, err)

		require.Len(t, page.Contents, 2)
		assert.Equal(t, int64(2), page.Contents[0].ID, "earliest event first")
		assert.Equal(t, int64(1), page.Contents[1].ID)
		assert.Equal(t, 2, page.TotalCount)
		assert.False(t, page.HasMore)
	})

	t.Run("preferences_narrow_the_feed", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "alice").
			Return(domain.User{ID: 7, City: domain.CityMoscow}, nil)

		reactions := mocks.NewMockReactedContentLister(t)
		reactions.EXPECT().ListReactedContentIDs(mock.Anything, int64(7)).
			Return(nil, nil)

		preferences := mocks.NewMockPreferredTagLister(t)
		preferences.EXPECT().ListPreferredTagIDs(mock.Anything, int64(7)).
			Return([]int64{11}, nil)

		lister := mocks.NewMockFeedCandidateLister(t)
		lister.EXPECT().ListFeedCandidates(mock.Anything, domain.CityMoscow, domain.DateWindow{}).
			Return(candidates, nil)

		cmd := &AssembleFeed{
			UserFetcher:      users,
			CandidateLister:  lister,
			ReactionLister:   reactions,
			PreferenceLister: preferences,
		}

		page, err := cmd.Execute(ctx, "alice", domain.CityMoscow, domain.DateWindow{}, 0, 20)
		require.NoError(t, err)

		require.Len(t, page.Contents, 1)
		assert.Equal(t, int64(2), page.Contents[0].ID)
	})

	t.Run("anonymous_request_skips_personalization", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)

		lister := mocks.NewMockFeedCandidateLister(t)
		lister.EXPECT().ListFeedCandidates(mock.Anything, domain.DefaultCity, domain.DateWindow{}).
			Return(candidates, nil)

		cmd := &AssembleFeed{
			UserFetcher:      users,
			CandidateLister:  lister,
			ReactionLister:   mocks.NewMockReactedContentLister(t),
			PreferenceLister: mocks.NewMockPreferredTagLister(t),
		}

		page, err := cmd.Execute(ctx, "", domain.DefaultCity, domain.DateWindow{}, 0, 20)
		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalCount)
	})

	t.Run("unknown_user_gets_empty_page", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "ghost").
			Return(domain.User{}, domain.ErrNotFound)

		cmd := &AssembleFeed{
			UserFetcher:      users,
			CandidateLister:  mocks.NewMockFeedCandidateLister(t),
			ReactionLister:   mocks.NewMockReactedContentLister(t),
			PreferenceLister: mocks.NewMockPreferredTagLister(t),
		}

		page, err := cmd.Execute(ctx, "ghost", domain.DefaultCity, domain.DateWindow{}, 0, 20)
		require.NoError(t, err)
		assert.Empty(t, page.Contents)
		assert.Equal(t, 0, page.TotalCount)
	})

	t.Run("candidate_listing_error_propagates", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)

		lister := mocks.NewMockFeedCandidateLister(t)
		lister.EXPECT().ListFeedCandidates(mock.Anything, domain.DefaultCity, domain.DateWindow{}).
			Return(nil, errors.New("db down"))

		cmd := &AssembleFeed{
			UserFetcher:      users,
			CandidateLister:  lister,
			ReactionLister:   mocks.NewMockReactedContentLister(t),
			PreferenceLister: mocks.NewMockPreferredTagLister(t),
		}

		_, err := cmd.Execute(ctx, "", domain.DefaultCity, domain.DateWindow{}, 0, 20)
		assert.ErrorContains(t, err, "db down")
	})
}
