package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

// RegisterUserRequest is the request for the RegisterUser command.
type RegisterUserRequest struct {
	Username string
	City     domain.City
}

type RegisterUser struct {
	UserFetcher datasources.UserGetter
	UserCreator datasources.UserCreator
}

// Execute registers a username with a home city, defaulting the city when
// none is given. Registering an existing username returns the stored user
// unchanged; city updates go through the dedicated endpoint.
func (c *RegisterUser) Execute(ctx context.Context, req RegisterUserRequest) (domain.User, error) {
	existing, err := c.UserFetcher.GetUserByUsername(ctx, req.Username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, fmt.Errorf("checking existing user: %w", err)
	}

	city := req.City
	if city == "" {
		city = domain.DefaultCity
	}

	user, err := c.UserCreator.CreateUser(ctx, req.Username, city)
	if err != nil {
		return domain.User{}, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}
