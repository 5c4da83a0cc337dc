package controller

import (
	"errors"
	"net/http"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/domain"
)

type TagsList struct {
	Aggregator   *command.AggregateTags
	ImageBaseURL string
}

type TagsListResponse struct {
	Tags        []TagCountResponse `json:"tags"`
	Preferences []int64            `json:"preferences"`
}

type TagCountResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	ContentCount int    `json:"content_count"`
}

func (c TagsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	username := q.Get("username")
	if username == "" {
		logger.ErrorContext(ctx, "missing username in query string")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	window, err := parseDateWindow(q)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse date window in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	overview, err := c.Aggregator.Execute(ctx, username, q.Get("macro_category"), window)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "unable to aggregate tags", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	tags := make([]TagCountResponse, 0, len(overview.TagCounts))
	for _, count := range overview.TagCounts {
		tags = append(tags, TagCountResponse{
			ID:           count.Tag.ID,
			Name:         count.Tag.Name,
			Description:  count.Tag.Description,
			Image:        absoluteImageURL(c.ImageBaseURL, count.Tag.Image),
			ContentCount: count.ContentCount,
		})
	}

	preferences := overview.PreferenceTagIDs
	if preferences == nil {
		preferences = []int64{}
	}

	writeJSON(w, r, TagsListResponse{Tags: tags, Preferences: preferences})
}
