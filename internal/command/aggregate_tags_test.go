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

func TestAggregateTags_Execute(t *testing.T) {
	ctx := context.Background()
	user := domain.User{ID: 7, Username: "alice", City: domain.CityMoscow}

	t.Run("counts_unseen_content_per_tag", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "alice").Return(user, nil)

		preferences := mocks.NewMockPreferredTagLister(t)
		preferences.EXPECT().ListPreferredTagIDs(mock.Anything, int64(7)).
			Return([]int64{10}, nil)

		categories := mocks.NewMockMacroCategoryGetter(t)
		categories.EXPECT().GetMacroCategoryByName(mock.Anything, "culture").
			Return(domain.MacroCategory{ID: 3, Name: "culture"}, nil)

		tags := mocks.NewMockTagLister(t)
		tags.EXPECT().ListTagsByMacroCategory(mock.Anything, int64(3)).
			Return([]domain.Tag{{ID: 10, Name: "concerts"}, {ID: 11, Name: "theatre"}}, nil)

		refs := mocks.NewMockTagContentRefLister(t)
		refs.EXPECT().ListTagContentRefs(mock.Anything, int64(3), domain.CityMoscow, domain.DateWindow{}).
			Return([]domain.TagContentRef{
				{TagID: 10, ContentID: 101},
				{TagID: 10, ContentID: 102},
				{TagID: 10, ContentID: 103},
			}, nil)

		liked := mocks.NewMockLikedContentIDLister(t)
		liked.EXPECT().ListLikedContentIDs(mock.Anything, int64(7)).Return([]int64{101}, nil)

		removed := mocks.NewMockRemovedContentIDLister(t)
		removed.EXPECT().ListRemovedContentIDs(mock.Anything, int64(7)).Return([]int64{102}, nil)

		cmd := &AggregateTags{
			UserFetcher:      users,
			CategoryFetcher:  categories,
			TagLister:        tags,
			RefLister:        refs,
			LikedIDLister:    liked,
			RemovedIDLister:  removed,
			PreferenceLister: preferences,
		}

		overview, err := cmd.Execute(ctx, "alice", "culture", domain.DateWindow{})
		require.NoError(t, err)

		require.Len(t, overview.TagCounts, 2)
		assert.Equal(t, 1, overview.TagCounts[0].ContentCount)
		assert.Equal(t, 0, overview.TagCounts[1].ContentCount, "tags without content stay listed")
		assert.Equal(t, []int64{10}, overview.PreferenceTagIDs)
	})

	t.Run("unknown_user_is_an_error", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "ghost").
			Return(domain.User{}, domain.ErrNotFound)

		cmd := &AggregateTags{
			UserFetcher:      users,
			CategoryFetcher:  mocks.NewMockMacroCategoryGetter(t),
			TagLister:        mocks.NewMockTagLister(t),
			RefLister:        mocks.NewMockTagContentRefLister(t),
			LikedIDLister:    mocks.NewMockLikedContentIDLister(t),
			RemovedIDLister:  mocks.NewMockRemovedContentIDLister(t),
			PreferenceLister: mocks.NewMockPreferredTagLister(t),
		}

		_, err := cmd.Execute(ctx, "ghost", "culture", domain.DateWindow{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown_category_yields_empty_overview", func(t *testing.T) {
		users := mocks.NewMockUserGetter(t)
		users.EXPECT().GetUserByUsername(mock.Anything, "alice").Return(user, nil)

		categories := mocks.NewMockMacroCategoryGetter(t)
		categories.EXPECT().GetMacroCategoryByName(mock.Anything, "nope").
			Return(domain.MacroCategory{}, domain.ErrNotFound)

		cmd := &AggregateTags{
			UserFetcher:      users,
			CategoryFetcher:  categories,
			TagLister:        mocks.NewMockTagLister(t),
			RefLister:        mocks.NewMockTagContentRefLister(t),
			LikedIDLister:    mocks.NewMockLikedContentIDLister(t),
			RemovedIDLister:  mocks.NewMockRemovedContentIDLister(t),
			PreferenceLister: mocks.NewMockPreferredTagLister(t),
		}

		overview, err := cmd.Execute(ctx, "alice", "nope", domain.DateWindow{})
		require.NoError(t, err)
		assert.Empty(t, overview.TagCounts)
		assert.Empty(t, overview.PreferenceTagIDs)
		assert.NotNil(t, overview.PreferenceTagIDs)
	})
}
