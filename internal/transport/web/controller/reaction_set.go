package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/domain"
)

// ReactionSet handles both the like and dislike endpoints; Value tells them
// apart.
type ReactionSet struct {
	SetCmd command.Command[command.SetReactionRequest, command.Empty]
	Value  bool
}

type ReactionSetRequest struct {
	Username string `json:"username"`
}

func (c ReactionSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	contentID, err := parseContentID(r)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse content id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req ReactionSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode reaction request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Username == "" {
		logger.ErrorContext(ctx, "missing username in reaction request")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cmdReq := command.SetReactionRequest{
		Username:  req.Username,
		ContentID: contentID,
		Value:     c.Value,
	}
	if _, err := c.SetCmd.Execute(ctx, cmdReq); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "unable to set reaction", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
