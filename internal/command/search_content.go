package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

type SearchContent struct {
	UserFetcher datasources.UserGetter
	Searcher    datasources.ContentSearcher
}

// Execute runs the ranked search. With no explicit city the query is scoped
// to the username's home city; an explicit city always wins, and an unknown
// username searches everywhere. Candidates come back unordered from the
// store; token matching is re-applied here so ranking and filtering share one
// definition of a match.
func (c *SearchContent) Execute(
	ctx context.Context,
	username string,
	filters domain.SearchFilters,
	skip, limit int,
) (domain.ContentPage, error) {
	if filters.City == "" && username != "" {
		user, err := c.UserFetcher.GetUserByUsername(ctx, username)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return domain.ContentPage{}, fmt.Errorf("fetching search user: %w", err)
		}
		if err == nil {
			filters.City = user.City
		}
	}

	candidates, err := c.Searcher.SearchContent(ctx, filters)
	if err != nil {
		return domain.ContentPage{}, fmt.Errorf("searching content: %w", err)
	}

	tokens := domain.TokenizeQuery(filters.Query)
	matched := domain.FilterByTokens(candidates, tokens)
	domain.RankByRelevance(matched, tokens)

	return domain.NewContentPage(matched, skip, limit), nil
}
