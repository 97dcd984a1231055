package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myflix/api/internal/core/domain"
)

func movieFixture() *fakeMovieRepo {
	return &fakeMovieRepo{movies: []*domain.Movie{
		{
			Title:    "The Matrix",
			Genre:    domain.Genre{Name: "Science Fiction", Description: "Science and technology."},
			Director: domain.Director{Name: "The Wachowski Brothers", Bio: "American film directors."},
		},
		{
			Title:    "Gladiator",
			Genre:    domain.Genre{Name: "Action", Description: "Physical action."},
			Director: domain.Director{Name: "Ridley Scott", Bio: "English film director."},
		},
	}}
}

func TestMovieService_Lookups(t *testing.T) {
	t.Parallel()

	svc := NewMovieService(movieFixture())
	ctx := context.Background()

	movies, err := svc.ListMovies(ctx)
	require.NoError(t, err)
	assert.Len(t, movies, 2)

	movie, err := svc.GetMovie(ctx, "The Matrix")
	require.NoError(t, err)
	assert.Equal(t, "Science Fiction", movie.Genre.Name)

	genre, err := svc.GetGenre(ctx, "Action")
	require.NoError(t, err)
	assert.Equal(t, "Physical action.", genre.Description)

	director, err := svc.GetDirector(ctx, "Ridley Scott")
	require.NoError(t, err)
	assert.Equal(t, "English film director.", director.Bio)
}

func TestMovieService_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewMovieService(movieFixture())
	ctx := context.Background()

	_, err := svc.GetMovie(ctx, "No Such Movie")
	assert.ErrorIs(t, err, domain.ErrMovieNotFound)

	_, err = svc.GetGenre(ctx, "Horror")
	assert.ErrorIs(t, err, domain.ErrGenreNotFound)

	_, err = svc.GetDirector(ctx, "Nobody")
	assert.ErrorIs(t, err, domain.ErrDirectorNotFound)
}
