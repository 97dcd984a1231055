package services

import (
	"context"
	"fmt"

	"github.com/myflix/api/internal/core/domain"
	"github.com/myflix/api/internal/core/ports"
)

type AuthService struct {
	userRepo ports.UserRepository
	tokens   *TokenManager
}

func NewAuthService(userRepo ports.UserRepository, tokens *TokenManager) ports.AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Login verifies the supplied credentials and issues a bearer token. Unknown
// usernames and wrong passwords both map to ErrInvalidCredentials so the
// response cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// ResolveToken verifies the token and re-resolves its subject against the
// store, so a lingering token for a deleted account is treated as invalid.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidToken
	}

	return user, nil
}
