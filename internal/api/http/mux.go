package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/m-zajac/ghdashboard/internal/app"
)

// Service searches users and expands their repositories within a session.
//
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/ghdashboard/internal/api/http Service
type Service interface {
	Search(ctx context.Context, sess *app.Session, username string) (app.SessionState, error)
	ToggleRepository(ctx context.Context, sess *app.Session, repoID int64) (app.SessionState, error)
}

// SessionStore creates and finds dashboard sessions.
type SessionStore interface {
	Create() (string, *app.Session)
	Get(id string) (*app.Session, bool)
}

// NewMux creates router for app's http server.
// Additional middlewares, like rate limiter, are applied to all routes.
func NewMux(
	service Service,
	sessions SessionStore,
	timeout time.Duration,
	l logrus.FieldLogger,
	middlewares ...func(http.Handler) http.Handler,
) *chi.Mux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(NewLoggingMiddleware(l))
	r.Use(middleware.Recoverer)
	r.Use(middlewares...)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/sessions", NewCreateSessionHandler(sessions))
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Use(NewSessionMiddleware(sessions))

		r.Get("/", NewStateHandler())
		r.Post("/search", timeoutMiddleware(NewSearchHandler(service, l)))
		r.Post("/repositories/{repoID}/toggle", timeoutMiddleware(NewToggleHandler(service, l)))
		r.Get("/repositories/{repoID}", NewDetailHandler())
	})

	return r
}
