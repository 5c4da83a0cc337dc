package controller

import (
	"net/http"
	"net/url"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/domain"
)

type Search struct {
	Searcher     *command.SearchContent
	ImageBaseURL string
}

type SearchResponse struct {
	ContentPageResponse
	SearchParams SearchParams `json:"search_params"`
}

// SearchParams echoes the applied filters so clients can render the active
// search state without tracking it themselves.
type SearchParams struct {
	Query     string  `json:"query"`
	City      string  `json:"city,omitempty"`
	EventType string  `json:"event_type,omitempty"`
	DateFrom  *string `json:"date_from,omitempty"`
	DateTo    *string `json:"date_to,omitempty"`
	TagIDs    []int64 `json:"tags,omitempty"`
}

func (c Search) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	filters, err := searchFiltersFromQuery(q)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse search filters in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	skip, limit, err := parseSkipLimit(q)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, err := c.Searcher.Execute(ctx, q.Get("username"), filters, skip, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to search content", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, SearchResponse{
		ContentPageResponse: renderContentPage(page, c.ImageBaseURL),
		SearchParams: SearchParams{
			Query:     filters.Query,
			City:      string(filters.City),
			EventType: string(filters.EventType),
			DateFrom:  renderDate(filters.DateFrom),
			DateTo:    renderDate(filters.DateTo),
			TagIDs:    filters.TagIDs,
		},
	})
}

func searchFiltersFromQuery(q url.Values) (domain.SearchFilters, error) {
	filters := domain.SearchFilters{Query: q.Get("q")}

	city, err := parseOptionalCity(q)
	if err != nil {
		return domain.SearchFilters{}, err
	}
	filters.City = city

	if q.Has("event_type") && q.Get("event_type") != "" {
		eventType, err := domain.ParseEventType(q.Get("event_type"))
		if err != nil {
			return domain.SearchFilters{}, err
		}
		filters.EventType = eventType
	}

	from, err := parseQueryDate(q, "date_from")
	if err != nil {
		return domain.SearchFilters{}, err
	}
	filters.DateFrom = from

	to, err := parseQueryDate(q, "date_to")
	if err != nil {
		return domain.SearchFilters{}, err
	}
	filters.DateTo = to

	tagIDs, err := parseTagIDs(q)
	if err != nil {
		return domain.SearchFilters{}, err
	}
	filters.TagIDs = tagIDs

	return filters, nil
}
