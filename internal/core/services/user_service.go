package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/myflix/api/internal/core/domain"
	"github.com/myflix/api/internal/core/ports"
)

type UserService struct {
	userRepo  ports.UserRepository
	movieRepo ports.MovieRepository
	validate  *validator.Validate
}

func NewUserService(userRepo ports.UserRepository, movieRepo ports.MovieRepository) ports.UserService {
	return &UserService{
		userRepo:  userRepo,
		movieRepo: movieRepo,
		validate:  validator.New(),
	}
}

// Register validates the input, hashes the password and creates the account.
// Validation happens before any store access. The duplicate-username check is
// delegated to the store's unique index, so concurrent registrations of the
// same name cannot both succeed.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Email:        input.Email,
		Birthday:     input.Birthday,
		Favorites:    []bson.ObjectID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// Update applies the supplied profile fields. A new password is re-hashed
// before it is stored; the username cannot change.
func (s *UserService) Update(ctx context.Context, username string, input ports.UpdateInput) (*domain.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	user, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	if input.Password != "" {
		hash, err := HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Birthday != nil {
		user.Birthday = input.Birthday
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	return s.userRepo.Delete(ctx, username)
}

// AddFavorite puts a movie on the user's list. Re-adding an existing
// favorite is a no-op; the list never holds duplicates.
func (s *UserService) AddFavorite(ctx context.Context, username, movieID string) (*domain.User, error) {
	id, err := s.resolveMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.AddFavorite(ctx, username, id)
	if err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) RemoveFavorite(ctx context.Context, username, movieID string) (*domain.User, error) {
	id, err := bson.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, domain.ErrInvalidMovieID
	}

	user, err := s.userRepo.RemoveFavorite(ctx, username, id)
	if err != nil {
		return nil, fmt.Errorf("failed to remove favorite: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) resolveMovie(ctx context.Context, movieID string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(movieID)
	if err != nil {
		return bson.ObjectID{}, domain.ErrInvalidMovieID
	}

	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("failed to get movie: %w", err)
	}
	if movie == nil {
		return bson.ObjectID{}, domain.ErrMovieNotFound
	}
	return id, nil
}

func validationError(err error) error {
	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fieldErr := range verrs {
			fields[fieldErr.Field()] = fmt.Sprintf("failed on %q", fieldErr.Tag())
		}
	} else {
		fields["input"] = err.Error()
	}
	return &domain.ValidationError{Fields: fields}
}
