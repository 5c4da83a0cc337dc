package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/domain"
)

type ReviewCreate struct {
	CreateCmd command.Command[command.CreateReviewRequest, domain.Review]
}

type ReviewCreateRequest struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

func (c ReviewCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	contentID, err := parseContentID(r)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse content id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req ReviewCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode review request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Username == "" {
		logger.ErrorContext(ctx, "missing username in review request")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	review, err := c.CreateCmd.Execute(ctx, command.CreateReviewRequest{
		Username:  req.Username,
		ContentID: contentID,
		Text:      req.Text,
	})
	if err != nil {
		switch {
		case errors.Is(err, command.ErrEmptyReview):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, domain.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			logger.ErrorContext(ctx, "unable to create review", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	writeJSONStatus(w, r, http.StatusCreated, renderReview(review))
}
