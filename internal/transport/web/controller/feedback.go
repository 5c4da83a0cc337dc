package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/domain"
)

type Feedback struct {
	SendCmd command.Command[command.SendFeedbackRequest, command.Empty]
}

type FeedbackRequest struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

func (c Feedback) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode feedback request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Username == "" {
		logger.ErrorContext(ctx, "missing username in feedback request")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cmdReq := command.SendFeedbackRequest{Username: req.Username, Message: req.Message}
	if _, err := c.SendCmd.Execute(ctx, cmdReq); err != nil {
		if errors.Is(err, command.ErrEmptyFeedback) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		logger.ErrorContext(ctx, "unable to store feedback", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
