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

func TestSearch_ServeHTTP(t *testing.T) {
	t.Run("results_are_ranked_and_params_echoed", func(t *testing.T) {
		searcher := mocks.NewMockContentSearcher(t)
		searcher.EXPECT().
			SearchContent(mock.Anything, domain.SearchFilters{Query: "jazz", City: domain.CityMoscow}).
			Return([]domain.ContentItem{
				{ID: 1, Name: "Evening show", Description: "A night of jazz"},
				{ID: 2, Name: "Jazz festival"},
			}, nil)

		controller := Search{
			Searcher: &command.SearchContent{
				UserFetcher: mocks.NewMockUserGetter(t),
				Searcher:    searcher,
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/search?q=jazz&city=msk", nil)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp SearchResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Contents, 2)
		assert.Equal(t, int64(2), resp.Contents[0].ID, "name match should outrank description match")
		assert.Equal(t, int64(1), resp.Contents[1].ID)
		assert.Equal(t, "jazz", resp.SearchParams.Query)
		assert.Equal(t, "msk", resp.SearchParams.City)
	})

	t.Run("home_city_fills_in_for_known_user", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "bob").
			Return(domain.User{ID: 3, City: domain.CityYekaterinburg}, nil)

		searcher := mocks.NewMockContentSearcher(t)
		searcher.EXPECT().
			SearchContent(mock.Anything, domain.SearchFilters{Query: "jazz", City: domain.CityYekaterinburg}).
			Return(nil, nil)

		controller := Search{
			Searcher: &command.SearchContent{
				UserFetcher: users,
				Searcher:    searcher,
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/search?q=jazz&username=bob", nil)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp SearchResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Empty(t, resp.Contents)
		assert.Equal(t, "ekb", resp.SearchParams.City)
	})

	t.Run("invalid_date_is_rejected", func(t *testing.T) {
		controller := Search{
			Searcher: &command.SearchContent{
				UserFetcher: mocks.NewMockUserGetter(t),
				Searcher:    mocks.NewMockContentSearcher(t),
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/search?q=jazz&date_from=tomorrow", nil)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid_event_type_is_rejected", func(t *testing.T) {
		controller := Search{
			Searcher: &command.SearchContent{
				UserFetcher: mocks.NewMockUserGetter(t),
				Searcher:    mocks.NewMockContentSearcher(t),
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/search?q=jazz&event_type=hybrid", nil)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
