package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/myflix/api/internal/core/ports"
)

type MovieHandler struct {
	logger  *slog.Logger
	service ports.MovieService
}

func NewMovieHandler(logger *slog.Logger, service ports.MovieService) *MovieHandler {
	return &MovieHandler{
		logger:  logger,
		service: service,
	}
}

func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.ListMovies(r.Context())
	if err != nil {
		respondError(h.logger, w, err)
		return
	}
	respondJSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovie(r.Context(), chi.URLParam(r, "title"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}
	respondJSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) GetGenre(w http.ResponseWriter, r *http.Request) {
	genre, err := h.service.GetGenre(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}
	respondJSON(w, http.StatusOK, genre)
}

func (h *MovieHandler) GetDirector(w http.ResponseWriter, r *http.Request) {
	director, err := h.service.GetDirector(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}
	respondJSON(w, http.StatusOK, director)
}
