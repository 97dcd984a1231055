package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/myflix/api/internal/core/domain"
	"github.com/myflix/api/internal/core/ports"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) ports.UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user := &domain.User{}
	err := r.coll.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateUsername
		}
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "password_hash", Value: user.PasswordHash},
		{Key: "email", Value: user.Email},
		{Key: "birthday", Value: user.Birthday},
		{Key: "updated_at", Value: user.UpdatedAt},
	}}}

	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "username", Value: user.Username}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, username string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "username", Value: username}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// AddFavorite appends the movie to the user's list. $addToSet keeps the list
// duplicate-free even under concurrent adds of the same movie.
func (r *UserRepository) AddFavorite(ctx context.Context, username string, movieID bson.ObjectID) (*domain.User, error) {
	update := bson.D{{Key: "$addToSet", Value: bson.D{{Key: "favorites", Value: movieID}}}}
	return r.findOneAndUpdate(ctx, username, update)
}

func (r *UserRepository) RemoveFavorite(ctx context.Context, username string, movieID bson.ObjectID) (*domain.User, error) {
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "favorites", Value: movieID}}}}
	return r.findOneAndUpdate(ctx, username, update)
}

func (r *UserRepository) findOneAndUpdate(ctx context.Context, username string, update bson.D) (*domain.User, error) {
	user := &domain.User{}
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.D{{Key: "username", Value: username}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update favorites: %w", err)
	}
	return user, nil
}
