package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

type PopularTags struct {
	Lister      datasources.PopularTagLister
	CacheMaxAge time.Duration
}

type PopularTagsResponse struct {
	Tags []PopularTagResponse `json:"tags"`
}

type PopularTagResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContentCount int    `json:"content_count"`
}

func (c PopularTags) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	_, limit, err := parseSkipLimit(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	tags, err := c.Lister.ListPopularTags(ctx, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list popular tags", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	rendered := make([]PopularTagResponse, 0, len(tags))
	for _, tag := range tags {
		rendered = append(rendered, PopularTagResponse{
			ID:           tag.Tag.ID,
			Name:         tag.Tag.Name,
			ContentCount: tag.ContentCount,
		})
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	writeJSON(w, r, PopularTagsResponse{Tags: rendered})
}
