package controller

import (
	"errors"
	"net/http"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

type ContentReviewsList struct {
	Contents datasources.ContentFetcher
	Lister   datasources.ContentReviewLister
}

type ContentReviewsListResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	TotalCount int              `json:"total_count"`
	Skip       int              `json:"skip"`
	Limit      int              `json:"limit"`
	HasMore    bool             `json:"has_more"`
}

func (c ContentReviewsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	contentID, err := parseContentID(r)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse content id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	skip, limit, err := parseSkipLimit(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if _, err := c.Contents.FetchContentByID(ctx, contentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "unable to fetch reviewed content", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	reviews, total, err := c.Lister.ListContentReviews(ctx, contentID, skip, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list content reviews", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	rendered := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		rendered = append(rendered, renderReview(review))
	}

	writeJSON(w, r, ContentReviewsListResponse{
		Reviews:    rendered,
		TotalCount: total,
		Skip:       skip,
		Limit:      limit,
		HasMore:    domain.HasMore(total, skip, limit),
	})
}
