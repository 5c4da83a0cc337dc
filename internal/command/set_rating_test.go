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

func TestSetRating_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects_out_of_range_ratings", func(t *testing.T) {
		cmd := &SetRating{
			UserProvisioner: mocks.NewMockUserProvisioner(t),
			ContentFetcher:  mocks.NewMockContentFetcher(t),
			Upserter:        mocks.NewMockRatingUpserter(t),
		}

		_, err := cmd.Execute(ctx, SetRatingRequest{Username: "alice", ContentID: 42, Rating: 6})
		assert.ErrorIs(t, err, ErrRatingOutOfRange)

		_, err = cmd.Execute(ctx, SetRatingRequest{Username: "alice", ContentID: 42, Rating: -1})
		assert.ErrorIs(t, err, ErrRatingOutOfRange)
	})

	t.Run("stores_rating_for_existing_content", func(t *testing.T) {
		users := mocks.NewMockUserProvisioner(t)
		users.EXPECT().GetOrCreateUser(mock.Anything, "alice").
			Return(domain.User{ID: 7, Username: "alice"}, nil)

		contents := mocks.NewMockContentFetcher(t)
		contents.EXPECT().FetchContentByID(mock.Anything, int64(42)).
			Return(domain.ContentItem{ID: 42}, nil)

		upserter := mocks.NewMockRatingUpserter(t)
		upserter.EXPECT().UpsertRating(mock.Anything, int64(7), int64(42), 5).
			Return(domain.Rating{ID: 1, UserID: 7, ContentID: 42, Rating: 5}, nil)

		cmd := &SetRating{
			UserProvisioner: users,
			ContentFetcher:  contents,
			Upserter:        upserter,
		}

		rating, err := cmd.Execute(ctx, SetRatingRequest{Username: "alice", ContentID: 42, Rating: 5})
		require.NoError(t, err)
		assert.Equal(t, 5, rating.Rating)
	})
}

func TestRegisterUser_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates_with_default_city", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "newcomer").
			Return(domain.User{}, domain.ErrNotFound)

		creator := mocks.NewMockUserCreator(t)
		creator.EXPECT().CreateUser(mock.Anything, "newcomer", domain.DefaultCity).
			Return(domain.User{ID: 9, Username: "newcomer", City: domain.DefaultCity}, nil)

		cmd := &RegisterUser{UserFetcher: users, UserCreator: creator}

		user, err := cmd.Execute(ctx, RegisterUserRequest{Username: "newcomer"})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCity, user.City)
	})

	t.Run("existing_user_is_returned_unchanged", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "alice").
			Return(domain.User{ID: 7, Username: "alice", City: domain.CityMoscow}, nil)

		cmd := &RegisterUser{
			UserFetcher: users,
			UserCreator: mocks.NewMockUserCreator(t),
		}

		user, err := cmd.Execute(ctx, RegisterUserRequest{
			Username: "alice",
			City:     domain.CitySaintPetersburg,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.CityMoscow, user.City, "registration does not move cities")
	})
}
