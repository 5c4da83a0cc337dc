package controller

import (
	"errors"
	"net/http"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
)

type PreferencesList struct {
	Users  datasources.UserGetter
	Lister datasources.PreferenceNameLister
}

type PreferencesListResponse struct {
	PreferredTags []string `json:"preferred_tags"`
}

func (c PreferencesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	username := r.URL.Query().Get("username")
	if username == "" {
		logger.ErrorContext(ctx, "missing username in query string")
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

	names, err := c.Lister.ListPreferenceTagNames(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list preferences", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if names == nil {
		names = []string{}
	}

	writeJSON(w, r, PreferencesListResponse{PreferredTags: names})
}
