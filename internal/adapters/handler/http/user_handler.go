package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/myflix/api/internal/core/domain"
	"github.com/myflix/api/internal/core/ports"
)

type UserHandler struct {
	logger  *slog.Logger
	service ports.UserService
}

func NewUserHandler(logger *slog.Logger, service ports.UserService) *UserHandler {
	return &UserHandler{
		logger:  logger,
		service: service,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input ports.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.service.Register(r.Context(), input)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	username, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	var input ports.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.service.Update(r.Context(), username, input)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), username); err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondText(w, http.StatusOK, fmt.Sprintf("User %s deregistered successfully.", username))
}

func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	username, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	user, err := h.service.AddFavorite(r.Context(), username, chi.URLParam(r, "movieID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	username, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	user, err := h.service.RemoveFavorite(r.Context(), username, chi.URLParam(r, "movieID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// requireOwner enforces that the authenticated identity matches the
// {username} path parameter. A valid token for a different account is not
// enough to act on this one.
func (h *UserHandler) requireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	username := chi.URLParam(r, "username")

	user := UserFromContext(r.Context())
	if user == nil {
		respondError(h.logger, w, domain.ErrInvalidToken)
		return "", false
	}
	if user.Username != username {
		respondError(h.logger, w, domain.ErrPermissionDenied)
		return "", false
	}
	return username, true
}
