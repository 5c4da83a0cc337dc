package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
	"github.com/gorilla/mux"
)

type UserCitySet struct {
	Updater datasources.UserCityUpdater
}

type UserCitySetRequest struct {
	City string `json:"city"`
}

func (c UserCitySet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	username := mux.Vars(r)["username"]

	var req UserCitySetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode city update request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	city, err := domain.ParseCity(req.City)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse city in update request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := c.Updater.UpdateUserCity(ctx, username, city); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "unable to update user city", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
