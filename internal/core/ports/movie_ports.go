package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/myflix/api/internal/core/domain"
)

type MovieRepository interface {
	GetAll(ctx context.Context) ([]*domain.Movie, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*domain.Movie, error)
	GetByTitle(ctx context.Context, title string) (*domain.Movie, error)
	GetByGenre(ctx context.Context, name string) (*domain.Movie, error)
	GetByDirector(ctx context.Context, name string) (*domain.Movie, error)
	Create(ctx context.Context, movie *domain.Movie) error
}

type MovieService interface {
	ListMovies(ctx context.Context) ([]*domain.Movie, error)
	GetMovie(ctx context.Context, title string) (*domain.Movie, error)
	GetGenre(ctx context.Context, name string) (*domain.Genre, error)
	GetDirector(ctx context.Context, name string) (*domain.Director, error)
}
