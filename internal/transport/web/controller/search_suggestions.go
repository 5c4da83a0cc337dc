package controller

import (
	"net/http"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/domain"
)

type SearchSuggestions struct {
	Suggester *command.SuggestNames
}

type SearchSuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

func (c SearchSuggestions) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	city, err := parseOptionalCity(q)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse city in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	_, limit, err := parseSkipLimit(q)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	suggestions, err := c.Suggester.Execute(ctx, q.Get("username"), q.Get("q"), city, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list name suggestions", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, SearchSuggestionsResponse{Suggestions: suggestions})
}
