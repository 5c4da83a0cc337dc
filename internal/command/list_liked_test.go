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

func TestListLikedContent_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("preserves_recency_order_from_store", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "alice").
			Return(domain.User{ID: 7}, nil)

		liked := mocks.NewMockLikedContentLister(t)
		liked.EXPECT().ListLikedContent(mock.Anything, int64(7), true, domain.DateWindow{}).
			Return([]domain.ContentItem{{ID: 3}, {ID: 1}, {ID: 2}}, nil)

		cmd := &ListLikedContent{UserFetcher: users, LikedLister: liked}

		page, err := cmd.Execute(ctx, "alice", true, domain.DateWindow{}, 0, 20)
		require.NoError(t, err)

		require.Len(t, page.Contents, 3)
		assert.Equal(t, int64(3), page.Contents[0].ID, "most recently liked first")
	})

	t.Run("dislikes_are_listed_with_value_false", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "alice").
			Return(domain.User{ID: 7}, nil)

		liked := mocks.NewMockLikedContentLister(t)
		liked.EXPECT().ListLikedContent(mock.Anything, int64(7), false, domain.DateWindow{}).
			Return([]domain.ContentItem{{ID: 9}}, nil)

		cmd := &ListLikedContent{UserFetcher: users, LikedLister: liked}

		page, err := cmd.Execute(ctx, "alice", false, domain.DateWindow{}, 0, 20)
		require.NoError(t, err)
		assert.Equal(t, 1, page.TotalCount)
	})

	t.Run("unknown_user_is_not_found", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "ghost").
			Return(domain.User{}, domain.ErrNotFound)

		cmd := &ListLikedContent{
			UserFetcher: users,
			LikedLister: mocks.NewMockLikedContentLister(t),
		}

		_, err := cmd.Execute(ctx, "ghost", true, domain.DateWindow{}, 0, 20)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListContentByTag_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("excludes_reacted_content_for_known_users", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "alice").
			Return(domain.User{ID: 7, City: domain.CityMoscow}, nil)

		reactions := mocks.NewMockReactedContentLister(t)
		reactions.EXPECT().ListReactedContentIDs(mock.Anything, int64(7)).
			Return([]int64{2}, nil)

		tagged := mocks.NewMockTaggedContentLister(t)
		tagged.EXPECT().
			ListContentByTagName(mock.Anything, "concerts", domain.CityMoscow, domain.DateWindow{}).
			Return([]domain.ContentItem{{ID: 1}, {ID: 2}, {ID: 3}}, nil)

		cmd := &ListContentByTag{
			UserFetcher:    users,
			TaggedLister:   tagged,
			ReactionLister: reactions,
		}

		page, err := cmd.Execute(ctx, "alice", "concerts", domain.CityMoscow, domain.DateWindow{}, 0, 20)
		require.NoError(t, err)

		require.Len(t, page.Contents, 2)
		assert.Equal(t, int64(1), page.Contents[0].ID)
		assert.Equal(t, int64(3), page.Contents[1].ID)
	})

	t.Run("home_city_fills_in_for_known_user", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "bob").
			Return(domain.User{ID: 3, City: domain.CityYekaterinburg}, nil)

		reactions := mocks.NewMockReactedContentLister(t)
		reactions.EXPECT().ListReactedContentIDs(mock.Anything, int64(3)).
			Return(nil, nil)

		tagged := mocks.NewMockTaggedContentLister(t)
		tagged.EXPECT().
			ListContentByTagName(mock.Anything, "concerts", domain.CityYekaterinburg, domain.DateWindow{}).
			Return([]domain.ContentItem{{ID: 1}}, nil)

		cmd := &ListContentByTag{
			UserFetcher:    users,
			TaggedLister:   tagged,
			ReactionLister: reactions,
		}

		page, err := cmd.Execute(ctx, "bob", "concerts", "", domain.DateWindow{}, 0, 20)
		require.NoError(t, err)
		assert.Equal(t, 1, page.TotalCount)
	})

	t.Run("explicit_city_overrides_home_city", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "bob").
			Return(domain.User{ID: 3, City: domain.CityYekaterinburg}, nil)

		reactions := mocks.NewMockReactedContentLister(t)
		reactions.EXPECT().ListReactedContentIDs(mock.Anything, int64(3)).
			Return(nil, nil)

		tagged := mocks.NewMockTaggedContentLister(t)
		tagged.EXPECT().
			ListContentByTagName(mock.Anything, "concerts", domain.CityMoscow, domain.DateWindow{}).
			Return(nil, nil)

		cmd := &ListContentByTag{
			UserFetcher:    users,
			TaggedLister:   tagged,
			ReactionLister: reactions,
		}

		_, err := cmd.Execute(ctx, "bob", "concerts", domain.CityMoscow, domain.DateWindow{}, 0, 20)
		require.NoError(t, err)
	})

	t.Run("anonymous_request_defaults_the_city", func(t *testing.T) {
		tagged := mocks.NewMockTaggedContentLister(t)
		tagged.EXPECT().
			ListContentByTagName(mock.Anything, "concerts", domain.DefaultCity, domain.DateWindow{}).
			Return(nil, nil)

		cmd := &ListContentByTag{
			UserFetcher:    mocks.NewMockUserGetter(t),
			TaggedLister:   tagged,
			ReactionLister: mocks.NewMockReactedContentLister(t),
		}

		_, err := cmd.Execute(ctx, "", "concerts", "", domain.DateWindow{}, 0, 20)
		require.NoError(t, err)
	})

	t.Run("anonymous_request_lists_everything", func(t *testing.T) {
		tagged := mocks.NewMockTaggedContentLister(t)
		tagged.EXPECT().
			ListContentByTagName(mock.Anything, "concerts", domain.CityMoscow, domain.DateWindow{}).
			Return([]domain.ContentItem{{ID: 1}, {ID: 2}}, nil)

		cmd := &ListContentByTag{
			UserFetcher:    mocks.NewMockUserGetter(t),
			TaggedLister:   tagged,
			ReactionLister: mocks.NewMockReactedContentLister(t),
		}

		page, err := cmd.Execute(ctx, "", "concerts", domain.CityMoscow, domain.DateWindow{}, 0, 20)
		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalCount)
	})
}
