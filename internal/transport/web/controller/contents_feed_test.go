package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/datasources/mocks"
	"github.com/afishabot/discovery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContentsFeed_ServeHTTP(t *testing.T) {
	t.Run("anonymous_feed_is_cacheable", func(t *testing.T) {
		lister := mocks.NewMockFeedCandidateLister(t)
		lister.EXPECT().
			ListFeedCandidates(mock.Anything, domain.CityMoscow, domain.DateWindow{}).
			Return([]domain.ContentItem{{ID: 1, Name: "Show"}}, nil)

		controller := ContentsFeed{
			Feed: &command.AssembleFeed{
				UserFetcher:      mocks.NewMockUserGetter(t),
				CandidateLister:  lister,
				ReactionLister:   mocks.NewMockReactedContentLister(t),
				PreferenceLister: mocks.NewMockPreferredTagLister(t),
			},
			CacheMaxAge: time.Minute,
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/contents_feed?city=msk", nil)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "max-age=60", rec.Header().Get("Cache-Control"))

		var resp ContentPageResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Contents, 1)
		assert.Equal(t, 1, resp.TotalCount)
		assert.False(t, resp.HasMore)
	})

	t.Run("known_user_feed_is_not_cacheable", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "alice").
			Return(domain.User{ID: 7, City: domain.CityMoscow}, nil)

		reactions := mocks.NewMockReactedContentLister(t)
		reactions.EXPECT().ListReactedContentIDs(mock.Anything, int64(7)).
			Return([]int64{2}, nil)

		preferences := mocks.NewMockPreferredTagLister(t)
		preferences.EXPECT().ListPreferredTagIDs(mock.Anything, int64(7)).
			Return(nil, nil)

		lister := mocks.NewMockFeedCandidateLister(t)
		lister.EXPECT().
			ListFeedCandidates(mock.Anything, domain.CityMoscow, domain.DateWindow{}).
			Return([]domain.ContentItem{{ID: 1}, {ID: 2}}, nil)

		controller := ContentsFeed{
			Feed: &command.AssembleFeed{
				UserFetcher:      users,
				CandidateLister:  lister,
				ReactionLister:   reactions,
				PreferenceLister: preferences,
			},
			CacheMaxAge: time.Minute,
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/contents_feed?username=alice", nil)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Cache-Control"))

		var resp ContentPageResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Contents, 1)
		assert.Equal(t, int64(1), resp.Contents[0].ID)
	})

	t.Run("invalid_city_is_rejected", func(t *testing.T) {
		controller := ContentsFeed{
			Feed: &command.AssembleFeed{
				UserFetcher:      mocks.NewMockUserGetter(t),
				CandidateLister:  mocks.NewMockFeedCandidateLister(t),
				ReactionLister:   mocks.NewMockReactedContentLister(t),
				PreferenceLister: mocks.NewMockPreferredTagLister(t),
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/contents_feed?city=atlantis", nil)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid_pagination_is_rejected", func(t *testing.T) {
		controller := ContentsFeed{
			Feed: &command.AssembleFeed{
				UserFetcher:      mocks.NewMockUserGetter(t),
				CandidateLister:  mocks.NewMockFeedCandidateLister(t),
				ReactionLister:   mocks.NewMockReactedContentLister(t),
				PreferenceLister: mocks.NewMockPreferredTagLister(t),
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/contents_feed?city=msk&limit=500", nil)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
