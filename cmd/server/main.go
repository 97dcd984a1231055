package main

import (
	"context"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/myflix/api/internal/adapters/handler/http"
	"github.com/myflix/api/internal/adapters/repository/mongodb"
	"github.com/myflix/api/internal/config"
	"github.com/myflix/api/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongodb.Connect(connectCtx, cfg.MongoURI)
	if err != nil {
		logger.Error("failed to connect to mongodb", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("mongodb disconnect", slog.Any("error", err))
		}
	}()

	db := client.Database(cfg.MongoDB)
	if err := mongodb.EnsureIndexes(connectCtx, db); err != nil {
		logger.Error("failed to ensure indexes", slog.Any("error", err))
		os.Exit(1)
	}

	userRepo := mongodb.NewUserRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)

	tokens := services.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenTTL)
	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo, movieRepo)
	movieService := services.NewMovieService(movieRepo)

	handler := http.NewHandler(
		logger,
		authService,
		http.NewAuthHandler(logger, authService),
		http.NewUserHandler(logger, userService),
		http.NewMovieHandler(logger, movieService),
		http.RouterOptions{
			RequestTimeout: cfg.AppRequestTimeout,
			LoginRateLimit: cfg.LoginRateLimit,
		},
	)

	server := &stdhttp.Server{
		Addr:         cfg.AppAddr,
		Handler:      handler,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", slog.Any("error", err))
		os.Exit(1)
	}
}
