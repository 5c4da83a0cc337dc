package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

// ErrRatingOutOfRange rejects rating values outside 0..5.
var ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")

// SetRatingRequest is the request for the SetRating command.
type SetRatingRequest struct {
	Username  string
	ContentID int64
	Rating    int
}

type SetRating struct {
	UserProvisioner datasources.UserProvisioner
	ContentFetcher  datasources.ContentFetcher
	Upserter        datasources.RatingUpserter
}

// Execute sets the user's star rating on a piece of content, replacing any
// earlier one, and returns the stored row. The user is created on first
// contact; the content must exist.
func (c *SetRating) Execute(ctx context.Context, req SetRatingRequest) (domain.Rating, error) {
	if req.Rating < 0 || req.Rating > 5 {
		return domain.Rating{}, ErrRatingOutOfRange
	}

	user, err := c.UserProvisioner.GetOrCreateUser(ctx, req.Username)
	if err != nil {
		return domain.Rating{}, fmt.Errorf("provisioning rating user: %w", err)
	}

	if _, err := c.ContentFetcher.FetchContentByID(ctx, req.ContentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Rating{}, domain.ErrNotFound
		}
		return domain.Rating{}, fmt.Errorf("fetching rated content: %w", err)
	}

	stored, err := c.Upserter.UpsertRating(ctx, user.ID, req.ContentID, req.Rating)
	if err != nil {
		return domain.Rating{}, fmt.Errorf("storing rating: %w", err)
	}

	return stored, nil
}

// RemoveRatingRequest is the request for the RemoveRating command.
type RemoveRatingRequest struct {
	Username  string
	ContentID int64
}

type RemoveRating struct {
	UserFetcher datasources.UserGetter
	Deleter     datasources.RatingDeleter
}

// Execute removes the user's rating on a piece of content. Both the user and
// the rating must exist.
func (c *RemoveRating) Execute(ctx context.Context, req RemoveRatingRequest) (Empty, error) {
	user, err := c.UserFetcher.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Empty{}, domain.ErrNotFound
		}
		return Empty{}, fmt.Errorf("fetching rating user: %w", err)
	}

	if err := c.Deleter.DeleteRating(ctx, user.ID, req.ContentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Empty{}, domain.ErrNotFound
		}
		return Empty{}, fmt.Errorf("deleting rating: %w", err)
	}

	return Empty{}, nil
}
