package controller

import (
	"net/http"

	"github.com/afishabot/discovery/internal/domain"
)

type CitiesList struct{}

type CitiesListResponse struct {
	Cities      []string `json:"cities"`
	DefaultCity string   `json:"default_city"`
}

func (c CitiesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cities := make([]string, 0, len(domain.Cities))
	for _, city := range domain.Cities {
		cities = append(cities, string(city))
	}

	writeJSON(w, r, CitiesListResponse{
		Cities:      cities,
		DefaultCity: string(domain.DefaultCity),
	})
}
