package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

type MacroCategoriesList struct {
	Lister       datasources.MacroCategoryLister
	ImageBaseURL string
	CacheMaxAge  time.Duration
}

type MacroCategoriesListResponse struct {
	MacroCategories []MacroCategoryResponse `json:"macro_categories"`
	TotalCount      int                     `json:"total_count"`
	Skip            int                     `json:"skip"`
	Limit           int                     `json:"limit"`
	HasMore         bool                    `json:"has_more"`
}

type MacroCategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

func (c MacroCategoriesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	skip, limit, err := parseSkipLimit(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	categories, total, err := c.Lister.ListMacroCategories(ctx, skip, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list macro categories", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	rendered := make([]MacroCategoryResponse, 0, len(categories))
	for _, category := range categories {
		rendered = append(rendered, MacroCategoryResponse{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
			Image:       absoluteImageURL(c.ImageBaseURL, category.Image),
		})
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	writeJSON(w, r, MacroCategoriesListResponse{
		MacroCategories: rendered,
		TotalCount:      total,
		Skip:            skip,
		Limit:           limit,
		HasMore:         domain.HasMore(total, skip, limit),
	})
}
