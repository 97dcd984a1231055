package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"

	"github.com/myflix/api/internal/core/ports"
)

type RouterOptions struct {
	// RequestTimeout bounds each request; the deadline propagates through
	// every store call via the request context.
	RequestTimeout time.Duration
	// LoginRateLimit is the per-IP request budget per minute on /login.
	LoginRateLimit int
}

func NewHandler(
	logger *slog.Logger,
	authService ports.AuthService,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	movieHandler *MovieHandler,
	opts RouterOptions,
) http.Handler {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if opts.LoginRateLimit <= 0 {
		opts.LoginRateLimit = 10
	}

	secureHeaders := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(opts.RequestTimeout))
	r.Use(secureHeaders.Handler)

	authGate := requireAuth(logger, authService)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respondText(w, http.StatusOK, "Welcome to the myFlix API!")
	})

	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(opts.LoginRateLimit, time.Minute))
		r.Post("/login", authHandler.Login)
	})

	r.Post("/users", userHandler.Register)

	r.Group(func(r chi.Router) {
		r.Use(authGate)

		r.Route("/users/{username}", func(r chi.Router) {
			r.Get("/", userHandler.Get)
			r.Put("/", userHandler.Update)
			r.Delete("/", userHandler.Delete)
			r.Put("/movies/{movieID}", userHandler.AddFavorite)
			r.Delete("/movies/{movieID}", userHandler.RemoveFavorite)
		})

		r.Get("/movies", movieHandler.List)
		r.Get("/movies/{title}", movieHandler.GetByTitle)
		r.Get("/genres/{name}", movieHandler.GetGenre)
		r.Get("/directors/{name}", movieHandler.GetDirector)
	})

	return r
}
