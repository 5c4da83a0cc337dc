package controller

import (
	"net/http"
)

type Health struct{}

type HealthResponse struct {
	Status string `json:"status"`
}

func (c Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, HealthResponse{Status: "ok"})
}
