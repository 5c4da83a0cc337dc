package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/domain"
)

type PreferenceRemove struct {
	RemoveCmd command.Command[command.RemovePreferenceRequest, command.Empty]
}

func (c PreferenceRemove) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	username := q.Get("username")
	if username == "" {
		logger.ErrorContext(ctx, "missing username in query string")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	tagID, err := strconv.ParseInt(q.Get("tag_id"), 10, 64)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse tag_id in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req := command.RemovePreferenceRequest{Username: username, TagID: tagID}
	if _, err := c.RemoveCmd.Execute(ctx, req); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "unable to remove preference", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
