package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

type ListLikedContent struct {
	UserFetcher datasources.UserGetter
	LikedLister datasources.LikedContentLister
}

// Execute returns the user's reacted content, most recent reaction first;
// value true selects likes, false dislikes. Unlike the default feed, an
// unknown username here is an error: the liked list only exists for users
// who have written something.
func (c *ListLikedContent) Execute(
	ctx context.Context,
	username string,
	value bool,
	window domain.DateWindow,
	skip, limit int,
) (domain.ContentPage, error) {
	user, err := c.UserFetcher.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ContentPage{}, domain.ErrNotFound
		}
		return domain.ContentPage{}, fmt.Errorf("fetching liked-content user: %w", err)
	}

	liked, err := c.LikedLister.ListLikedContent(ctx, user.ID, value, window)
	if err != nil {
		return domain.ContentPage{}, fmt.Errorf("listing liked content: %w", err)
	}

	return domain.NewContentPage(liked, skip, limit), nil
}
