package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/afishabot/discovery/internal/datasources/mocks"
	"github.com/afishabot/discovery/internal/domain"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContentGet_ServeHTTP(t *testing.T) {
	start := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		contentID  string
		item       domain.ContentItem
		fetchErr   error
		wantStatus int
	}{
		{
			name:      "successful_fetch",
			contentID: "42",
			item: domain.ContentItem{
				ID:          42,
				Name:        "Jazz evening",
				Description: "Live trio",
				City:        domain.CityMoscow,
				DateStart:   &start,
				EventType:   domain.EventTypeOffline,
				Publisher:   domain.OrganisationPublisher(3),
				Image:       "media/jazz.jpg",
				Tags: []domain.Tag{
					{ID: 10, Name: "concerts", MacroCategory: &domain.MacroCategory{ID: 1, Name: "culture"}},
				},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown_content",
			contentID:  "404",
			fetchErr:   domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "fetch_error",
			contentID:  "42",
			fetchErr:   errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockContentFetcher(t)
			fetcher.EXPECT().
				FetchContentByID(mock.Anything, mock.Anything).
				Return(tc.item, tc.fetchErr)

			controller := ContentGet{
				Fetcher:      fetcher,
				ImageBaseURL: "https://cdn.example.com",
				CacheMaxAge:  time.Hour,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/contents/"+tc.contentID, nil)
			req = mux.SetURLVars(req, map[string]string{"content_id": tc.contentID})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "max-age=3600", rec.Header().Get("Cache-Control"))

				var resp ContentResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, int64(42), resp.ID)
				assert.Equal(t, "Jazz evening", resp.Name)
				assert.Equal(t, "https://cdn.example.com/media/jazz.jpg", resp.Image)
				assert.Equal(t, "culture", resp.MacroCategory)
				assert.Equal(t, "organisation", resp.PublisherType)
				require.NotNil(t, resp.DateStart)
				assert.Equal(t, "2026-09-12", *resp.DateStart)
				assert.Nil(t, resp.DateEnd)
			}
		})
	}

	t.Run("invalid_content_id", func(t *testing.T) {
		controller := ContentGet{Fetcher: mocks.NewMockContentFetcher(t)}

		req := httptest.NewRequest(http.MethodGet, "/v1/contents/abc", nil)
		req = mux.SetURLVars(req, map[string]string{"content_id": "abc"})
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
