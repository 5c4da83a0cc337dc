package controller

import (
	"encoding/json"
	"net/http"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/domain"
)

type UserRegister struct {
	RegisterCmd command.Command[command.RegisterUserRequest, domain.User]
}

type UserRegisterRequest struct {
	Username string `json:"username"`
	City     string `json:"city"`
}

func (c UserRegister) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req UserRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode register request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Username == "" {
		logger.ErrorContext(ctx, "missing username in register request")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var city domain.City
	if req.City != "" {
		parsed, err := domain.ParseCity(req.City)
		if err != nil {
			logger.ErrorContext(ctx, "unable to parse city in register request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		city = parsed
	}

	user, err := c.RegisterCmd.Execute(ctx, command.RegisterUserRequest{
		Username: req.Username,
		City:     city,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to register user", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSONStatus(w, r, http.StatusCreated, renderUser(user))
}
