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

// NewTimeoutMiddleware creates middleware that cancels requests context after given time.
func NewTimeoutMiddleware(timeout time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	return func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)
			h(w, r)
		}
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int64
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// NewLoggingMiddleware creates middleware logging every completed request.
func NewLoggingMiddleware(l logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{
				ResponseWriter: w,
				status:         http.StatusOK,
			}

			next.ServeHTTP(rec, r)

			entry := l.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rec.status,
				"duration":   time.Since(start),
				"bytes":      rec.written,
				"request_id": middleware.GetReqID(r.Context()),
			})
			if rec.status >= http.StatusInternalServerError {
				entry.Warn("request completed")
				return
			}
			entry.Debug("request completed")
		})
	}
}

type sessionKey struct{}

// NewSessionMiddleware loads session named by the sessionID url param into request context.
// Responds with 404 if there's no such session.
func NewSessionMiddleware(sessions SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := sessions.Get(chi.URLParam(r, "sessionID"))
			if !ok {
				http.Error(w, "session not found", http.StatusNotFound)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromContext(ctx context.Context) *app.Session {
	sess, _ := ctx.Value(sessionKey{}).(*app.Session)
	return sess
}
