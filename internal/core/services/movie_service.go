package services

import (
	"context"
	"fmt"

	"github.com/myflix/api/internal/core/domain"
	"github.com/myflix/api/internal/core/ports"
)

type MovieService struct {
	repo ports.MovieRepository
}

func NewMovieService(repo ports.MovieRepository) ports.MovieService {
	return &MovieService{repo: repo}
}

func (s *MovieService) ListMovies(ctx context.Context) ([]*domain.Movie, error) {
	movies, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

func (s *MovieService) GetMovie(ctx context.Context, title string) (*domain.Movie, error) {
	movie, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	if movie == nil {
		return nil, domain.ErrMovieNotFound
	}
	return movie, nil
}

func (s *MovieService) GetGenre(ctx context.Context, name string) (*domain.Genre, error) {
	movie, err := s.repo.GetByGenre(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}
	if movie == nil {
		return nil, domain.ErrGenreNotFound
	}
	return &movie.Genre, nil
}

func (s *MovieService) GetDirector(ctx context.Context, name string) (*domain.Director, error) {
	movie, err := s.repo.GetByDirector(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get director: %w", err)
	}
	if movie == nil {
		return nil, domain.ErrDirectorNotFound
	}
	return &movie.Director, nil
}
