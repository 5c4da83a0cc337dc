package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/datasources/mocks"
	"github.com/afishabot/discovery/internal/domain"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReactionSet_ServeHTTP(t *testing.T) {
	t.Run("like_is_recorded", func(t *testing.T) {
		users := mocks.NewMockUserProvisioner(t)
		users.EXPECT().GetOrCreateUser(mock.Anything, "alice").
			Return(domain.User{ID: 5}, nil)

		fetcher := mocks.NewMockContentFetcher(t)
		fetcher.EXPECT().FetchContentByID(mock.Anything, int64(42)).
			Return(domain.ContentItem{ID: 42}, nil)

		upserter := mocks.NewMockReactionUpserter(t)
		upserter.EXPECT().UpsertReaction(mock.Anything, int64(5), int64(42), true).
			Return(nil)

		controller := ReactionSet{
			SetCmd: &command.SetReaction{
				UserProvisioner: users,
				ContentFetcher:  fetcher,
				Upserter:        upserter,
			},
			Value: true,
		}

		req := httptest.NewRequest(http.MethodPost, "/v1/contents/42/like",
			strings.NewReader(`{"username":"alice"}`))
		req = mux.SetURLVars(req, map[string]string{"content_id": "42"})
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unknown_content_is_not_found", func(t *testing.T) {
		users := mocks.NewMockUserProvisioner(t)
		users.EXPECT().GetOrCreateUser(mock.Anything, "alice").
			Return(domain.User{ID: 5}, nil)

		fetcher := mocks.NewMockContentFetcher(t)
		fetcher.EXPECT().FetchContentByID(mock.Anything, int64(404)).
			Return(domain.ContentItem{}, domain.ErrNotFound)

		controller := ReactionSet{
			SetCmd: &command.SetReaction{
				UserProvisioner: users,
				ContentFetcher:  fetcher,
				Upserter:        mocks.NewMockReactionUpserter(t),
			},
			Value: true,
		}

		req := httptest.NewRequest(http.MethodPost, "/v1/contents/404/like",
			strings.NewReader(`{"username":"alice"}`))
		req = mux.SetURLVars(req, map[string]string{"content_id": "404"})
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing_username_is_rejected", func(t *testing.T) {
		controller := ReactionSet{
			SetCmd: &command.SetReaction{
				UserProvisioner: mocks.NewMockUserProvisioner(t),
				ContentFetcher:  mocks.NewMockContentFetcher(t),
				Upserter:        mocks.NewMockReactionUpserter(t),
			},
			Value: true,
		}

		req := httptest.NewRequest(http.MethodPost, "/v1/contents/42/like",
			strings.NewReader(`{}`))
		req = mux.SetURLVars(req, map[string]string{"content_id": "42"})
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed_body_is_rejected", func(t *testing.T) {
		controller := ReactionSet{
			SetCmd: &command.SetReaction{
				UserProvisioner: mocks.NewMockUserProvisioner(t),
				ContentFetcher:  mocks.NewMockContentFetcher(t),
				Upserter:        mocks.NewMockReactionUpserter(t),
			},
			Value: false,
		}

		req := httptest.NewRequest(http.MethodPost, "/v1/contents/42/dislike",
			strings.NewReader(`{"username":`))
		req = mux.SetURLVars(req, map[string]string{"content_id": "42"})
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
