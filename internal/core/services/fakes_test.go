package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/myflix/api/internal/core/domain"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	users map[string]*domain.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[user.Username]; ok {
		return domain.ErrDuplicateUsername
	}
	user.ID = bson.NewObjectID()
	copied := *user
	f.users[user.Username] = &copied
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[user.Username]; !ok {
		return domain.ErrUserNotFound
	}
	copied := *user
	f.users[user.Username] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, username string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[username]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.users, username)
	return nil
}

func (f *fakeUserRepo) AddFavorite(_ context.Context, username string, movieID bson.ObjectID) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	if !user.HasFavorite(movieID) {
		user.Favorites = append(user.Favorites, movieID)
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) RemoveFavorite(_ context.Context, username string, movieID bson.ObjectID) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	kept := user.Favorites[:0]
	for _, id := range user.Favorites {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	user.Favorites = kept
	copied := *user
	return &copied, nil
}

// fakeMovieRepo is an in-memory MovieRepository for service tests.
type fakeMovieRepo struct {
	movies []*domain.Movie
}

func (f *fakeMovieRepo) GetAll(_ context.Context) ([]*domain.Movie, error) {
	return f.movies, nil
}

func (f *fakeMovieRepo) GetByID(_ context.Context, id bson.ObjectID) (*domain.Movie, error) {
	for _, m := range f.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieRepo) GetByTitle(_ context.Context, title string) (*domain.Movie, error) {
	for _, m := range f.movies {
		if m.Title == title {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieRepo) GetByGenre(_ context.Context, name string) (*domain.Movie, error) {
	for _, m := range f.movies {
		if m.Genre.Name == name {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieRepo) GetByDirector(_ context.Context, name string) (*domain.Movie, error) {
	for _, m := range f.movies {
		if m.Director.Name == name {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieRepo) Create(_ context.Context, movie *domain.Movie) error {
	if movie.ID.IsZero() {
		movie.ID = bson.NewObjectID()
	}
	f.movies = append(f.movies, movie)
	return nil
}

var errStoreDown = errors.New("store unreachable")
