package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

type AggregateTags struct {
	UserFetcher      datasources.UserGetter
	CategoryFetcher  datasources.MacroCategoryGetter
	TagLister        datasources.TagLister
	RefLister        datasources.TagContentRefLister
	LikedIDLister    datasources.LikedContentIDLister
	RemovedIDLister  datasources.RemovedContentIDLister
	PreferenceLister datasources.PreferredTagLister
}

// TagsOverview pairs a category's per-tag remaining-content counts with the
// user's preferred tag IDs, so clients render both from one call.
type TagsOverview struct {
	TagCounts        []domain.TagCount
	PreferenceTagIDs []int64
}

// Execute counts, per tag of a category, the content in the user's home city
// the user has not yet reacted to or removed. The user must exist; an
// unknown category yields an empty overview.
func (c *AggregateTags) Execute(
	ctx context.Context,
	username string,
	categoryName string,
	window domain.DateWindow,
) (TagsOverview, error) {
	user, err := c.UserFetcher.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return TagsOverview{}, domain.ErrNotFound
		}
		return TagsOverview{}, fmt.Errorf("fetching tags user: %w", err)
	}

	category, err := c.CategoryFetcher.GetMacroCategoryByName(ctx, categoryName)
	if errors.Is(err, domain.ErrNotFound) {
		return TagsOverview{
			TagCounts:        []domain.TagCount{},
			PreferenceTagIDs: []int64{},
		}, nil
	}
	if err != nil {
		return TagsOverview{}, fmt.Errorf("fetching macro category: %w", err)
	}

	preferredIDs, err := c.PreferenceLister.ListPreferredTagIDs(ctx, user.ID)
	if err != nil {
		return TagsOverview{}, fmt.Errorf("listing preferred tags: %w", err)
	}
	if preferredIDs == nil {
		preferredIDs = []int64{}
	}

	tags, err := c.TagLister.ListTagsByMacroCategory(ctx, category.ID)
	if err != nil {
		return TagsOverview{}, fmt.Errorf("listing category tags: %w", err)
	}

	refs, err := c.RefLister.ListTagContentRefs(ctx, category.ID, user.City, window)
	if err != nil {
		return TagsOverview{}, fmt.Errorf("listing tag content refs: %w", err)
	}

	likedIDs, err := c.LikedIDLister.ListLikedContentIDs(ctx, user.ID)
	if err != nil {
		return TagsOverview{}, fmt.Errorf("listing liked content ids: %w", err)
	}

	removedIDs, err := c.RemovedIDLister.ListRemovedContentIDs(ctx, user.ID)
	if err != nil {
		return TagsOverview{}, fmt.Errorf("listing removed content ids: %w", err)
	}

	return TagsOverview{
		TagCounts:        domain.AggregateTagCounts(tags, refs, likedIDs, removedIDs),
		PreferenceTagIDs: preferredIDs,
	}, nil
}
