package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/domain"
)

type LikedContentsList struct {
	Liked        *command.ListLikedContent
	ImageBaseURL string
}

func (c LikedContentsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	username := q.Get("username")
	if username == "" {
		logger.ErrorContext(ctx, "missing username in query string")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// value=false lists dislikes; the default is the liked feed.
	value := true
	if raw := q.Get("value"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			logger.ErrorContext(ctx, "unable to parse value in query string", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		value = parsed
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

	page, err := c.Liked.Execute(ctx, username, value, window, skip, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "unable to list liked content", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, renderContentPage(page, c.ImageBaseURL))
}
