package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/mongo"

	handler "github.com/myflix/api/internal/adapters/handler/http"
	"github.com/myflix/api/internal/adapters/repository/mongodb"
	"github.com/myflix/api/internal/core/domain"
	"github.com/myflix/api/internal/core/ports"
	"github.com/myflix/api/internal/core/services"
)

const testSecret = "integration-test-secret"

type TestApp struct {
	Client      *http.Client
	Server      *httptest.Server
	Movies      ports.MovieRepository
	Tokens      *services.TokenManager
	mongoClient *mongo.Client
	container   testcontainers.Container
}

func setupMongoContainer(ctx context.Context) (testcontainers.Container, string, error) {
	container, err := tcmongo.Run(ctx, "mongo:7")
	if err != nil {
		return nil, "", fmt.Errorf("failed to start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		return nil, "", err
	}

	return container, uri, nil
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	container, uri, err := setupMongoContainer(ctx)
	require.NoError(t, err)

	client, err := mongodb.Connect(ctx, uri)
	require.NoError(t, err)

	// Unique database per test so parallel tests share one container safely.
	db := client.Database("myflix_" + strings.ReplaceAll(uuid.NewString(), "-", ""))
	require.NoError(t, mongodb.EnsureIndexes(ctx, db))

	userRepo := mongodb.NewUserRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)

	logger := slog.New(slog.DiscardHandler)
	tokens := services.NewTokenManager([]byte(testSecret), time.Hour)
	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo, movieRepo)
	movieService := services.NewMovieService(movieRepo)

	router := handler.NewHandler(
		logger,
		authService,
		handler.NewAuthHandler(logger, authService),
		handler.NewUserHandler(logger, userService),
		handler.NewMovieHandler(logger, movieService),
		handler.RouterOptions{LoginRateLimit: 1000},
	)

	server := httptest.NewServer(router)

	return &TestApp{
		Client:      server.Client(),
		Server:      server,
		Movies:      movieRepo,
		Tokens:      tokens,
		mongoClient: client,
		container:   container,
	}
}

func (a *TestApp) Teardown(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	a.Server.Close()
	require.NoError(t, a.mongoClient.Disconnect(ctx))
	require.NoError(t, a.container.Terminate(ctx))
}

// DoJSON sends a request with an optional bearer token and JSON body.
func (a *TestApp) DoJSON(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, a.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

// Register creates an account and returns its username.
func (a *TestApp) Register(t *testing.T, password string) string {
	t.Helper()

	username := "user" + strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	resp, body := a.DoJSON(t, http.MethodPost, "/users", "", map[string]string{
		"username": username,
		"password": password,
		"email":    username + "@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	return username
}

// Login exchanges credentials for a bearer token.
func (a *TestApp) Login(t *testing.T, username, password string) string {
	t.Helper()

	resp, body := a.DoJSON(t, http.MethodPost, "/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

// SeedMovie inserts a movie directly through the repository.
func (a *TestApp) SeedMovie(t *testing.T, movie *domain.Movie) *domain.Movie {
	t.Helper()
	require.NoError(t, a.Movies.Create(context.Background(), movie))
	return movie
}
