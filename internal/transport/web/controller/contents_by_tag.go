package controller

import (
	"net/http"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/domain"
)

type TaggedContentsList struct {
	Tagged       *command.ListContentByTag
	ImageBaseURL string
}

func (c TaggedContentsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	tagName := q.Get("tag")
	if tagName == "" {
		logger.ErrorContext(ctx, "missing tag in query string")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

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

	page, err := c.Tagged.Execute(ctx, q.Get("username"), tagName, city, window, skip, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list tagged content", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, renderContentPage(page, c.ImageBaseURL))
}
