package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

type AssembleFeed struct {
	UserFetcher      datasources.UserGetter
	CandidateLister  datasources.FeedCandidateLister
	ReactionLister   datasources.ReactedContentLister
	PreferenceLister datasources.PreferredTagLister
}

// Execute builds the personalized default feed: city candidates minus
// everything the user already reacted to or removed, narrowed to preferred
// tags when the user has any, date ascending. An unknown or empty username
// yields the anonymous feed with no personalization; unknown usernames get an
// empty page rather than an error so fresh clients can poll before their
// first write.
func (c *AssembleFeed) Execute(
	ctx context.Context,
	username string,
	city domain.City,
	window domain.DateWindow,
	skip, limit int,
) (domain.ContentPage, error) {
	var excluded domain.ExclusionSet
	var preferredTagIDs []int64

	if username != "" {
		user, err := c.UserFetcher.GetUserByUsername(ctx, username)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewContentPage(nil, skip, limit), nil
		}
		if err != nil {
			return domain.ContentPage{}, fmt.Errorf("fetching feed user: %w", err)
		}
		if city == "" {
			city = user.City
		}

		reactedIDs, err := c.ReactionLister.ListReactedContentIDs(ctx, user.ID)
		if err != nil {
			return domain.ContentPage{}, fmt.Errorf("listing reacted content: %w", err)
		}
		excluded = domain.NewExclusionSet(reactedIDs...)

		preferredTagIDs, err = c.PreferenceLister.ListPreferredTagIDs(ctx, user.ID)
		if err != nil {
			return domain.ContentPage{}, fmt.Errorf("listing preferred tags: %w", err)
		}
	}

	if city == "" {
		city = domain.DefaultCity
	}

	candidates, err := c.CandidateLister.ListFeedCandidates(ctx, city, window)
	if err != nil {
		return domain.ContentPage{}, fmt.Errorf("listing feed candidates: %w", err)
	}

	feed := domain.AssembleFeed(candidates, excluded, preferredTagIDs)

	return domain.NewContentPage(feed, skip, limit), nil
}
