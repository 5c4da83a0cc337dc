package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/afishabot/discovery/internal/datasources"
)

// ErrEmptyFeedback rejects feedback with no message.
var ErrEmptyFeedback = errors.New("feedback message must not be empty")

// SendFeedbackRequest is the request for the SendFeedback command.
type SendFeedbackRequest struct {
	Username string
	Message  string
}

type SendFeedback struct {
	UserProvisioner datasources.UserProvisioner
	Creator         datasources.FeedbackCreator
}

// Execute records free-form feedback from a user, creating the user on
// first contact.
func (c *SendFeedback) Execute(ctx context.Context, req SendFeedbackRequest) (Empty, error) {
	if req.Message == "" {
		return Empty{}, ErrEmptyFeedback
	}

	user, err := c.UserProvisioner.GetOrCreateUser(ctx, req.Username)
	if err != nil {
		return Empty{}, fmt.Errorf("provisioning feedback user: %w", err)
	}

	if err := c.Creator.CreateFeedback(ctx, user.ID, req.Message); err != nil {
		return Empty{}, fmt.Errorf("storing feedback: %w", err)
	}

	return Empty{}, nil
}
