package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

// ErrEmptyReview rejects reviews with no text.
var ErrEmptyReview = errors.New("review text must not be empty")

// CreateReviewRequest is the request for the CreateReview command.
type CreateReviewRequest struct {
	Username  string
	ContentID int64
	Text      string
}

type CreateReview struct {
	UserProvisioner datasources.UserProvisioner
	ContentFetcher  datasources.ContentFetcher
	Creator         datasources.ReviewCreator
}

// Execute attaches a text review to a piece of content. The user is created
// on first contact; the content must exist.
func (c *CreateReview) Execute(ctx context.Context, req CreateReviewRequest) (domain.Review, error) {
	if req.Text == "" {
		return domain.Review{}, ErrEmptyReview
	}

	user, err := c.UserProvisioner.GetOrCreateUser(ctx, req.Username)
	if err != nil {
		return domain.Review{}, fmt.Errorf("provisioning reviewing user: %w", err)
	}

	if _, err := c.ContentFetcher.FetchContentByID(ctx, req.ContentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Review{}, domain.ErrNotFound
		}
		return domain.Review{}, fmt.Errorf("fetching reviewed content: %w", err)
	}

	review, err := c.Creator.CreateReview(ctx, user.ID, req.ContentID, req.Text)
	if err != nil {
		return domain.Review{}, fmt.Errorf("storing review: %w", err)
	}

	return review, nil
}
