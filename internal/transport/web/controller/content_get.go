package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

type ContentGet struct {
	Fetcher      datasources.ContentFetcher
	ImageBaseURL string
	CacheMaxAge  time.Duration
}

func (c ContentGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	id, err := parseContentID(r)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse content id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	item, err := c.Fetcher.FetchContentByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "unable to fetch content", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	writeJSON(w, r, renderContent(item, c.ImageBaseURL))
}
