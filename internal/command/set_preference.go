package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

// SetPreferenceRequest is the request for the SetPreference command.
type SetPreferenceRequest struct {
	Username string
	TagID    int64
}

type SetPreference struct {
	UserProvisioner datasources.UserProvisioner
	TagFetcher      datasources.TagGetter
	Creator         datasources.PreferenceCreator
}

// Execute adds a tag to the user's feed preferences. The user is created on
// first contact; the tag must exist; re-adding is a no-op.
func (c *SetPreference) Execute(ctx context.Context, req SetPreferenceRequest) (Empty, error) {
	user, err := c.UserProvisioner.GetOrCreateUser(ctx, req.Username)
	if err != nil {
		return Empty{}, fmt.Errorf("provisioning preference user: %w", err)
	}

	if _, err := c.TagFetcher.GetTagByID(ctx, req.TagID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Empty{}, domain.ErrNotFound
		}
		return Empty{}, fmt.Errorf("fetching preferred tag: %w", err)
	}

	if err := c.Creator.CreatePreference(ctx, user.ID, req.TagID); err != nil {
		return Empty{}, fmt.Errorf("storing preference: %w", err)
	}

	return Empty{}, nil
}

// RemovePreferenceRequest is the request for the RemovePreference command.
type RemovePreferenceRequest struct {
	Username string
	TagID    int64
}

type RemovePreference struct {
	UserFetcher datasources.UserGetter
	Deleter     datasources.PreferenceDeleter
}

// Execute drops a tag from the user's feed preferences. Both the user and
// the preference must exist.
func (c *RemovePreference) Execute(ctx context.Context, req RemovePreferenceRequest) (Empty, error) {
	user, err := c.UserFetcher.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Empty{}, domain.ErrNotFound
		}
		return Empty{}, fmt.Errorf("fetching preference user: %w", err)
	}

	if err := c.Deleter.DeletePreference(ctx, user.ID, req.TagID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Empty{}, domain.ErrNotFound
		}
		return Empty{}, fmt.Errorf("deleting preference: %w", err)
	}

	return Empty{}, nil
}
