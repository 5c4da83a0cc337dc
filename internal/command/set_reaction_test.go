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

func TestSetReaction_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("provisions_user_and_stores_reaction", func(t *testing.T) {
		users := mocks.NewMockUserProvisioner(t)
		users.EXPECT().GetOrCreateUser(mock.Anything, "newcomer").
			Return(domain.User{ID: 9, Username: "newcomer", City: domain.DefaultCity}, nil)

		contents := mocks.NewMockContentFetcher(t)
		contents.EXPECT().FetchContentByID(mock.Anything, int64(42)).
			Return(domain.ContentItem{ID: 42}, nil)

		upserter := mocks.NewMockReactionUpserter(t)
		upserter.EXPECT().UpsertReaction(mock.Anything, int64(9), int64(42), true).
			Return(nil)

		cmd := &SetReaction{
			UserProvisioner: users,
			ContentFetcher:  contents,
			Upserter:        upserter,
		}

		_, err := cmd.Execute(ctx, SetReactionRequest{
			Username:  "newcomer",
			ContentID: 42,
			Value:     true,
		})
		require.NoError(t, err)
	})

	t.Run("missing_content_is_not_found", func(t *testing.T) {
		users := mocks.NewMockUserProvisioner(t)
		users.EXPECT().GetOrCreateUser(mock.Anything, "alice").
			Return(domain.User{ID: 7}, nil)

		contents := mocks.NewMockContentFetcher(t)
		contents.EXPECT().FetchContentByID(mock.Anything, int64(404)).
			Return(domain.ContentItem{}, domain.ErrNotFound)

		cmd := &SetReaction{
			UserProvisioner: users,
			ContentFetcher:  contents,
			Upserter:        mocks.NewMockReactionUpserter(t),
		}

		_, err := cmd.Execute(ctx, SetReactionRequest{
			Username:  "alice",
			ContentID: 404,
			Value:     false,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRemoveFavorite_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes_reaction_and_marks_removed", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "alice").
			Return(domain.User{ID: 7}, nil)

		deleter := mocks.NewMockReactionDeleter(t)
		deleter.EXPECT().DeleteReaction(mock.Anything, int64(7), int64(42)).Return(nil)

		marker := mocks.NewMockRemovedFavoriteCreator(t)
		marker.EXPECT().CreateRemovedFavorite(mock.Anything, int64(7), int64(42)).Return(nil)

		cmd := &RemoveFavorite{
			UserFetcher:    users,
			ReactionRemove: deleter,
			RemovedMarker:  marker,
		}

		_, err := cmd.Execute(ctx, RemoveFavoriteRequest{Username: "alice", ContentID: 42})
		require.NoError(t, err)
	})

	t.Run("missing_reaction_is_not_found", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "alice").
			Return(domain.User{ID: 7}, nil)

		deleter := mocks.NewMockReactionDeleter(t)
		deleter.EXPECT().DeleteReaction(mock.Anything, int64(7), int64(42)).
			Return(domain.ErrNotFound)

		cmd := &RemoveFavorite{
			UserFetcher:    users,
			ReactionRemove: deleter,
			RemovedMarker:  mocks.NewMockRemovedFavoriteCreator(t),
		}

		_, err := cmd.Execute(ctx, RemoveFavoriteRequest{Username: "alice", ContentID: 42})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown_user_is_not_found", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "ghost").
			Return(domain.User{}, domain.ErrNotFound)

		cmd := &RemoveFavorite{
			UserFetcher:    users,
			ReactionRemove: mocks.NewMockReactionDeleter(t),
			RemovedMarker:  mocks.NewMockRemovedFavoriteCreator(t),
		}

		_, err := cmd.Execute(ctx, RemoveFavoriteRequest{Username: "ghost", ContentID: 42})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
