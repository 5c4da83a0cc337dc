package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

// RemoveFavoriteRequest is the request for the RemoveFavorite command.
type RemoveFavoriteRequest struct {
	Username  string
	ContentID int64
}

type RemoveFavorite struct {
	UserFetcher    datasources.UserGetter
	ReactionRemove datasources.ReactionDeleter
	RemovedMarker  datasources.RemovedFavoriteCreator
}

// Execute withdraws a reaction and marks the content as removed, keeping it
// out of future feeds without treating it as a dislike. The user and the
// reaction must both exist; marking is idempotent.
func (c *RemoveFavorite) Execute(ctx context.Context, req RemoveFavoriteRequest) (Empty, error) {
	user, err := c.UserFetcher.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Empty{}, domain.ErrNotFound
		}
		return Empty{}, fmt.Errorf("fetching removing user: %w", err)
	}

	if err := c.ReactionRemove.DeleteReaction(ctx, user.ID, req.ContentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Empty{}, domain.ErrNotFound
		}
		return Empty{}, fmt.Errorf("deleting reaction: %w", err)
	}

	if err := c.RemovedMarker.CreateRemovedFavorite(ctx, user.ID, req.ContentID); err != nil {
		return Empty{}, fmt.Errorf("marking content removed: %w", err)
	}

	return Empty{}, nil
}
