package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/myflix/api/internal/core/domain"
	"github.com/myflix/api/internal/core/ports"
)

type AuthHandler struct {
	logger  *slog.Logger
	service ports.AuthService
}

func NewAuthHandler(logger *slog.Logger, service ports.AuthService) *AuthHandler {
	return &AuthHandler{
		logger:  logger,
		service: service,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{User: user, Token: token})
}
