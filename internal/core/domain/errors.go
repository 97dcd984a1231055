package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrGenreNotFound      = errors.New("genre not found")
	ErrDirectorNotFound   = errors.New("director not found")
	ErrInvalidMovieID     = errors.New("invalid movie id")
)

// ValidationError carries per-field messages for malformed input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
