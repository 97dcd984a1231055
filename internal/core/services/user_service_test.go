package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/myflix/api/internal/core/domain"
	"github.com/myflix/api/internal/core/ports"
)

func newUserFixture() (*fakeUserRepo, *fakeMovieRepo, ports.UserService) {
	userRepo := newFakeUserRepo()
	movieRepo := &fakeMovieRepo{}
	return userRepo, movieRepo, NewUserService(userRepo, movieRepo)
}

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	userRepo, _, svc := newUserFixture()

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "johndoe123",
		Password: "Secr3t!pass",
		Email:    "j@x.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "johndoe123", user.Username)
	assert.Equal(t, "j@x.com", user.Email)
	assert.NotNil(t, user.Favorites, "favorites should be an empty list, not nil")

	stored := userRepo.users["johndoe123"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "Secr3t!pass", stored.PasswordHash, "raw password must never be persisted")
	assert.True(t, CheckPassword("Secr3t!pass", stored.PasswordHash))
}

func TestUserService_Register_ValidationBeforeStore(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input ports.RegisterInput
		field string
	}{
		{"short username", ports.RegisterInput{Username: "ab1", Password: "Secr3t!pass", Email: "j@x.com"}, "Username"},
		{"non-alphanumeric username", ports.RegisterInput{Username: "john-doe!", Password: "Secr3t!pass", Email: "j@x.com"}, "Username"},
		{"bad email", ports.RegisterInput{Username: "johndoe123", Password: "Secr3t!pass", Email: "not-an-email"}, "Email"},
		{"empty password", ports.RegisterInput{Username: "johndoe123", Password: "", Email: "j@x.com"}, "Password"},
		{"short password", ports.RegisterInput{Username: "johndoe123", Password: "short", Email: "j@x.com"}, "Password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			userRepo, _, svc := newUserFixture()
			// Store failures cannot mask validation: validation runs first.
			userRepo.err = errStoreDown

			_, err := svc.Register(context.Background(), tc.input)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
		})
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	t.Parallel()

	userRepo, _, svc := newUserFixture()

	first, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice12", Password: "password-one", Email: "a@x.com",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice12", Password: "password-two", Email: "b@x.com",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	// First writer wins; the original record is unaffected.
	stored := userRepo.users["alice12"]
	require.NotNil(t, stored)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "a@x.com", stored.Email)
	assert.True(t, CheckPassword("password-one", stored.PasswordHash))
}

func TestUserService_Update(t *testing.T) {
	t.Parallel()

	userRepo, _, svc := newUserFixture()
	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice12", Password: "old-password", Email: "a@x.com",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), "alice12", ports.UpdateInput{
		Password: "new-password",
		Email:    "new@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", updated.Email)

	stored := userRepo.users["alice12"]
	assert.True(t, CheckPassword("new-password", stored.PasswordHash))
	assert.False(t, CheckPassword("old-password", stored.PasswordHash))
}

func TestUserService_Update_NotFound(t *testing.T) {
	t.Parallel()

	_, _, svc := newUserFixture()

	_, err := svc.Update(context.Background(), "ghost123", ports.UpdateInput{Email: "g@x.com"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Favorites(t *testing.T) {
	t.Parallel()

	_, movieRepo, svc := newUserFixture()
	movie := &domain.Movie{Title: "The Matrix"}
	require.NoError(t, movieRepo.Create(context.Background(), movie))

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice12", Password: "some-password", Email: "a@x.com",
	})
	require.NoError(t, err)

	user, err := svc.AddFavorite(context.Background(), "alice12", movie.ID.Hex())
	require.NoError(t, err)
	require.Len(t, user.Favorites, 1)

	// Duplicate insert is suppressed.
	user, err = svc.AddFavorite(context.Background(), "alice12", movie.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, user.Favorites, 1)

	user, err = svc.RemoveFavorite(context.Background(), "alice12", movie.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, user.Favorites)
}

func TestUserService_AddFavorite_UnknownMovie(t *testing.T) {
	t.Parallel()

	_, _, svc := newUserFixture()
	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice12", Password: "some-password", Email: "a@x.com",
	})
	require.NoError(t, err)

	_, err = svc.AddFavorite(context.Background(), "alice12", "not-a-hex-id")
	assert.ErrorIs(t, err, domain.ErrInvalidMovieID)

	_, err = svc.AddFavorite(context.Background(), "alice12", bson.NewObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrMovieNotFound)
}
