package controller

import (
	"errors"
	"net/http"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

type RatingStats struct {
	Contents datasources.ContentFetcher
	Stats    datasources.RatingStatsGetter
}

type RatingStatsResponse struct {
	ContentID     int64       `json:"content_id"`
	AverageRating float64     `json:"average_rating"`
	TotalRatings  int         `json:"total_ratings"`
	Distribution  map[int]int `json:"distribution"`
}

func (c RatingStats) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	contentID, err := parseContentID(r)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse content id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if _, err := c.Contents.FetchContentByID(ctx, contentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "unable to fetch rated content", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	stats, err := c.Stats.GetContentRatingStats(ctx, contentID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch rating stats", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, RatingStatsResponse{
		ContentID:     stats.ContentID,
		AverageRating: stats.AverageRating,
		TotalRatings:  stats.TotalRatings,
		Distribution:  stats.Distribution,
	})
}
