package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
	"github.com/gorilla/mux"
)

type MacroCategoryGet struct {
	Lister       datasources.MacroCategoryLister
	ImageBaseURL string
	CacheMaxAge  time.Duration
}

func (c MacroCategoryGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	categoryID, err := strconv.ParseInt(mux.Vars(r)["category_id"], 10, 64)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse category id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	category, err := c.Lister.GetMacroCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "unable to fetch macro category", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	writeJSON(w, r, MacroCategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Image:       absoluteImageURL(c.ImageBaseURL, category.Image),
	})
}
