package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/domain"
)

type RatingSet struct {
	SetCmd command.Command[command.SetRatingRequest, domain.Rating]
}

type RatingSetRequest struct {
	Username string `json:"username"`
	Rating   int    `json:"rating"`
}

func (c RatingSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	contentID, err := parseContentID(r)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse content id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req RatingSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode rating request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Username == "" {
		logger.ErrorContext(ctx, "missing username in rating request")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	rating, err := c.SetCmd.Execute(ctx, command.SetRatingRequest{
		Username:  req.Username,
		ContentID: contentID,
		Rating:    req.Rating,
	})
	if err != nil {
		switch {
		case errors.Is(err, command.ErrRatingOutOfRange):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, domain.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			logger.ErrorContext(ctx, "unable to set rating", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, r, renderRating(rating))
}
