package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/datasources/mocks"
	"github.com/afishabot/discovery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTagsList_ServeHTTP(t *testing.T) {
	t.Run("counts_and_preferences_are_returned", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "alice").
			Return(domain.User{ID: 7, City: domain.CityMoscow}, nil)

		preferences := mocks.NewMockPreferredTagLister(t)
		preferences.EXPECT().ListPreferredTagIDs(mock.Anything, int64(7)).
			Return([]int64{10}, nil)

		categories := mocks.NewMockMacroCategoryGetter(t)
		categories.EXPECT().GetMacroCategoryByName(mock.Anything, "culture").
			Return(domain.MacroCategory{ID: 1, Name: "culture"}, nil)

		tags := mocks.NewMockTagLister(t)
		tags.EXPECT().ListTagsByMacroCategory(mock.Anything, int64(1)).
			Return([]domain.Tag{{ID: 10, Name: "concerts"}}, nil)

		refs := mocks.NewMockTagContentRefLister(t)
		refs.EXPECT().
			ListTagContentRefs(mock.Anything, int64(1), domain.CityMoscow, domain.DateWindow{}).
			Return([]domain.TagContentRef{
				{TagID: 10, ContentID: 101},
				{TagID: 10, ContentID: 102},
				{TagID: 10, ContentID: 103},
			}, nil)

		liked := mocks.NewMockLikedContentIDLister(t)
		liked.EXPECT().ListLikedContentIDs(mock.Anything, int64(7)).
			Return([]int64{101}, nil)

		removed := mocks.NewMockRemovedContentIDLister(t)
		removed.EXPECT().ListRemovedContentIDs(mock.Anything, int64(7)).
			Return([]int64{102}, nil)

		controller := TagsList{
			Aggregator: &command.AggregateTags{
				UserFetcher:      users,
				CategoryFetcher:  categories,
				TagLister:        tags,
				RefLister:        refs,
				LikedIDLister:    liked,
				RemovedIDLister:  removed,
				PreferenceLister: preferences,
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/tags?username=alice&macro_category=culture", nil)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp TagsListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Tags, 1)
		assert.Equal(t, int64(10), resp.Tags[0].ID)
		assert.Equal(t, 1, resp.Tags[0].ContentCount)
		assert.Equal(t, []int64{10}, resp.Preferences)
	})

	t.Run("missing_username_is_rejected", func(t *testing.T) {
		controller := TagsList{Aggregator: &command.AggregateTags{}}

		req := httptest.NewRequest(http.MethodGet, "/v1/tags?macro_category=culture", nil)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown_user_is_not_found", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "ghost").
			Return(domain.User{}, domain.ErrNotFound)

		controller := TagsList{
			Aggregator: &command.AggregateTags{
				UserFetcher:      users,
				CategoryFetcher:  mocks.NewMockMacroCategoryGetter(t),
				TagLister:        mocks.NewMockTagLister(t),
				RefLister:        mocks.NewMockTagContentRefLister(t),
				LikedIDLister:    mocks.NewMockLikedContentIDLister(t),
				RemovedIDLister:  mocks.NewMockRemovedContentIDLister(t),
				PreferenceLister: mocks.NewMockPreferredTagLister(t),
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/tags?username=ghost", nil)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
