package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

type ListContentByTag struct {
	UserFetcher    datasources.UserGetter
	TaggedLister   datasources.TaggedContentLister
	ReactionLister datasources.ReactedContentLister
}

// Execute lists a tag's content, date ascending, scoped like the default
// feed: explicit city, else the known user's home city, else the default.
// Reacted and removed content is excluded for known users, but tag
// preferences do not apply: asking for a tag by name overrides them.
func (c *ListContentByTag) Execute(
	ctx context.Context,
	username string,
	tagName string,
	city domain.City,
	window domain.DateWindow,
	skip, limit int,
) (domain.ContentPage, error) {
	var excluded domain.ExclusionSet

	if username != "" {
		user, err := c.UserFetcher.GetUserByUsername(ctx, username)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return domain.ContentPage{}, fmt.Errorf("fetching tag-feed user: %w", err)
		}
		if err == nil {
			if city == "" {
				city = user.City
			}

			reactedIDs, err := c.ReactionLister.ListReactedContentIDs(ctx, user.ID)
			if err != nil {
				return domain.ContentPage{}, fmt.Errorf("listing reacted content: %w", err)
			}
			excluded = domain.NewExclusionSet(reactedIDs...)
		}
	}

	if city == "" {
		city = domain.DefaultCity
	}

	candidates, err := c.TaggedLister.ListContentByTagName(ctx, tagName, city, window)
	if err != nil {
		return domain.ContentPage{}, fmt.Errorf("listing tagged content: %w", err)
	}

	feed := domain.AssembleFeed(candidates, excluded, nil)

	return domain.NewContentPage(feed, skip, limit), nil
}
