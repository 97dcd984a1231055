package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/myflix/api/internal/core/domain"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}

// respondError translates domain errors to HTTP responses in one place.
// Anything outside the taxonomy is a dependency failure: logged with full
// detail, surfaced as a generic 500.
func respondError(logger *slog.Logger, w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: domain.ErrInvalidCredentials.Error()})
	case errors.Is(err, domain.ErrInvalidMovieID):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: domain.ErrInvalidMovieID.Error()})
	case errors.Is(err, domain.ErrInvalidToken):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: domain.ErrInvalidToken.Error()})
	case errors.Is(err, domain.ErrPermissionDenied):
		respondJSON(w, http.StatusForbidden, errorResponse{Error: domain.ErrPermissionDenied.Error()})
	case errors.Is(err, domain.ErrDuplicateUsername):
		respondJSON(w, http.StatusConflict, errorResponse{Error: domain.ErrDuplicateUsername.Error()})
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrMovieNotFound),
		errors.Is(err, domain.ErrGenreNotFound),
		errors.Is(err, domain.ErrDirectorNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		logger.Error("request failed", slog.Any("error", err))
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
