package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

type SuggestNames struct {
	UserFetcher      datasources.UserGetter
	SuggestionLister datasources.NameSuggestionLister
}

// Execute completes the last word of a partial query against content names.
// City scoping follows the search rules: explicit city, else the username's
// home city, else everywhere.
func (c *SuggestNames) Execute(
	ctx context.Context,
	username string,
	query string,
	city domain.City,
	limit int,
) ([]string, error) {
	term := domain.LastToken(query)
	if term == "" {
		return []string{}, nil
	}

	if city == "" && username != "" {
		user, err := c.UserFetcher.GetUserByUsername(ctx, username)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("fetching suggestion user: %w", err)
		}
		if err == nil {
			city = user.City
		}
	}

	suggestions, err := c.SuggestionLister.ListNameSuggestions(ctx, term, city, limit)
	if err != nil {
		return nil, fmt.Errorf("listing name suggestions: %w", err)
	}

	return suggestions, nil
}
