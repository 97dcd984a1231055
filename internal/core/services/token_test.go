package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myflix/api/internal/core/domain"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager([]byte("super-secret"), time.Hour)
	user := &domain.User{Username: "johndoe123"}

	token, err := tm.Issue(user)
	require.NoError(t, err)

	subject, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "johndoe123", subject)
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager([]byte("super-secret"), -1*time.Second)

	token, err := tm.Issue(&domain.User{Username: "johndoe123"})
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager([]byte("secret-b"), time.Hour)
	verifier := NewTokenManager([]byte("secret-a"), time.Hour)

	// Structurally valid token, signed with a secret the server does not hold.
	token, err := issuer.Issue(&domain.User{Username: "johndoe123"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager([]byte("super-secret"), time.Hour)

	for _, token := range []string{"", "not.a.jwt", "garbage"} {
		_, err := tm.Verify(token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	}
}
