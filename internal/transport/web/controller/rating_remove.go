package controller

import (
	"errors"
	"net/http"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/domain"
)

type RatingRemove struct {
	RemoveCmd command.Command[command.RemoveRatingRequest, command.Empty]
}

func (c RatingRemove) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	contentID, err := parseContentID(r)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse content id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	username := r.URL.Query().Get("username")
	if username == "" {
		logger.ErrorContext(ctx, "missing username in query string")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req := command.RemoveRatingRequest{Username: username, ContentID: contentID}
	if _, err := c.RemoveCmd.Execute(ctx, req); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "unable to remove rating", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
