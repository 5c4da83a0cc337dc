package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

// SetReactionRequest is the request for the SetReaction command. Value true
// is a like, false a dislike.
type SetReactionRequest struct {
	Username  string
	ContentID int64
	Value     bool
}

type SetReaction struct {
	UserProvisioner datasources.UserProvisioner
	ContentFetcher  datasources.ContentFetcher
	Upserter        datasources.ReactionUpserter
}

// Execute records a reaction, overwriting any previous one on the same
// content. The user is created on first contact; the content must exist.
func (c *SetReaction) Execute(ctx context.Context, req SetReactionRequest) (Empty, error) {
	user, err := c.UserProvisioner.GetOrCreateUser(ctx, req.Username)
	if err != nil {
		return Empty{}, fmt.Errorf("provisioning reacting user: %w", err)
	}

	if _, err := c.ContentFetcher.FetchContentByID(ctx, req.ContentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Empty{}, domain.ErrNotFound
		}
		return Empty{}, fmt.Errorf("fetching reacted content: %w", err)
	}

	if err := c.Upserter.UpsertReaction(ctx, user.ID, req.ContentID, req.Value); err != nil {
		return Empty{}, fmt.Errorf("storing reaction: %w", err)
	}

	return Empty{}, nil
}
