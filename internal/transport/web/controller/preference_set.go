package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/domain"
)

type PreferenceSet struct {
	SetCmd command.Command[command.SetPreferenceRequest, command.Empty]
}

type PreferenceRequest struct {
	Username string `json:"username"`
	TagID    int64  `json:"tag_id"`
}

func (c PreferenceSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req PreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode preference request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.TagID == 0 {
		logger.ErrorContext(ctx, "missing username or tag_id in preference request")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cmdReq := command.SetPreferenceRequest{Username: req.Username, TagID: req.TagID}
	if _, err := c.SetCmd.Execute(ctx, cmdReq); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "unable to set preference", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
