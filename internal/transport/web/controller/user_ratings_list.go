package controller

import (
	"errors"
	"net/http"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
	"github.com/gorilla/mux"
)

type UserRatingsList struct {
	Users  datasources.UserGetter
	Lister datasources.UserRatingLister
}

type UserRatingsListResponse struct {
	Ratings    []RatingResponse `json:"ratings"`
	TotalCount int              `json:"total_count"`
	Skip       int              `json:"skip"`
	Limit      int              `json:"limit"`
	HasMore    bool             `json:"has_more"`
}

func (c UserRatingsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	username := mux.Vars(r)["username"]

	skip, limit, err := parseSkipLimit(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := c.Users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "unable to fetch user", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ratings, total, err := c.Lister.ListUserRatings(ctx, user.ID, skip, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list user ratings", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	rendered := make([]RatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		rendered = append(rendered, renderRating(rating))
	}

	writeJSON(w, r, UserRatingsListResponse{
		Ratings:    rendered,
		TotalCount: total,
		Skip:       skip,
		Limit:      limit,
		HasMore:    domain.HasMore(total, skip, limit),
	})
}
