package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/domain"
)

type ContentsFeed struct {
	Feed         *command.AssembleFeed
	ImageBaseURL string
	CacheMaxAge  time.Duration
}

func (c ContentsFeed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	city, err := parseOptionalCity(q)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse city in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	window, err := parseDateWindow(q)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse date window in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	skip, limit, err := parseSkipLimit(q)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, err := c.Feed.Execute(ctx, q.Get("username"), city, window, skip, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to assemble feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if q.Get("username") == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	writeJSON(w, r, renderContentPage(page, c.ImageBaseURL))
}
