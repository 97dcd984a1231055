package ports

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/myflix/api/internal/core/domain"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, username string) error
	AddFavorite(ctx context.Context, username string, movieID bson.ObjectID) (*domain.User, error)
	RemoveFavorite(ctx context.Context, username string, movieID bson.ObjectID) (*domain.User, error)
}

type RegisterInput struct {
	Username string     `json:"username" validate:"required,min=5,alphanum"`
	Password string     `json:"password" validate:"required,min=8"`
	Email    string     `json:"email" validate:"required,email"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

// UpdateInput carries the mutable profile fields. The username itself is
// immutable; zero-valued fields are left untouched.
type UpdateInput struct {
	Password string     `json:"password,omitempty" validate:"omitempty,min=8"`
	Email    string     `json:"email,omitempty" validate:"omitempty,email"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Get(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, username string, input UpdateInput) (*domain.User, error)
	Delete(ctx context.Context, username string) error
	AddFavorite(ctx context.Context, username, movieID string) (*domain.User, error)
	RemoveFavorite(ctx context.Context, username, movieID string) (*domain.User, error)
}
