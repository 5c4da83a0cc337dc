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

func TestTaggedContentsList_ServeHTTP(t *testing.T) {
	t.Run("known_user_without_city_is_scoped_to_home_city", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "bob").
			Return(domain.User{ID: 3, City: domain.CityYekaterinburg}, nil)

		reactions := mocks.NewMockReactedContentLister(t)
		reactions.EXPECT().ListReactedContentIDs(mock.Anything, int64(3)).
			Return(nil, nil)

		tagged := mocks.NewMockTaggedContentLister(t)
		tagged.EXPECT().
			ListContentByTagName(mock.Anything, "concerts", domain.CityYekaterinburg, domain.DateWindow{}).
			Return([]domain.ContentItem{{ID: 1, Name: "Jazz evening"}}, nil)

		controller := TaggedContentsList{
			Tagged: &command.ListContentByTag{
				UserFetcher:    users,
				TaggedLister:   tagged,
				ReactionLister: reactions,
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/contents?tag=concerts&username=bob", nil)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp ContentPageResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Contents, 1)
		assert.Equal(t, int64(1), resp.Contents[0].ID)
	})

	t.Run("missing_tag_is_rejected", func(t *testing.T) {
		controller := TaggedContentsList{
			Tagged: &command.ListContentByTag{
				UserFetcher:    mocks.NewMockUserGetter(t),
				TaggedLister:   mocks.NewMockTaggedContentLister(t),
				ReactionLister: mocks.NewMockReactedContentLister(t),
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/contents?username=bob", nil)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
