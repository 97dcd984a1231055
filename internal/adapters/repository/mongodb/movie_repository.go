package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/myflix/api/internal/core/domain"
	"github.com/myflix/api/internal/core/ports"
)

type MovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) ports.MovieRepository {
	return &MovieRepository{coll: db.Collection(moviesCollection)}
}

func (r *MovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	movies := []*domain.Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id bson.ObjectID) (*domain.Movie, error) {
	return r.getOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *MovieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return r.getOne(ctx, bson.D{{Key: "title", Value: title}})
}

func (r *MovieRepository) GetByGenre(ctx context.Context, name string) (*domain.Movie, error) {
	return r.getOne(ctx, bson.D{{Key: "genre.name", Value: name}})
}

func (r *MovieRepository) GetByDirector(ctx context.Context, name string) (*domain.Movie, error) {
	return r.getOne(ctx, bson.D{{Key: "director.name", Value: name}})
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	res, err := r.coll.InsertOne(ctx, movie)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		movie.ID = id
	}
	return nil
}

func (r *MovieRepository) getOne(ctx context.Context, filter bson.D) (*domain.Movie, error) {
	movie := &domain.Movie{}
	err := r.coll.FindOne(ctx, filter).Decode(movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return movie, nil
}
