package ports

import (
	"context"

	"github.com/myflix/api/internal/core/domain"
)

type AuthService interface {
	// Login exchanges credentials for a signed bearer token.
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	// ResolveToken verifies a bearer token and resolves its subject back to
	// the stored account, so tokens for deleted users stop working.
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
}
