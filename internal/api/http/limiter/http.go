package limiter

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/m-zajac/ghdashboard/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// limitedHTTPDoer wraps HTTPDoer and allows Dos with maximum rate limit.
type limitedHTTPDoer struct {
	doer    HTTPDoer
	limiter *rate.Limiter
}

// NewHTTPDoer creates LimitedHTTPDoer instance.
// maxRate - maximum number of Dos per second.
func NewHTTPDoer(doer HTTPDoer, maxRate float64) HTTPDoer {
	return &limitedHTTPDoer{
		doer:    doer,
		limiter: rate.NewLimiter(rate.Limit(maxRate), 1),
	}
}

// Do executes http request. If limit is exceeded, blocks until call rate is within limit.
func (d *limitedHTTPDoer) Do(r *http.Request) (*http.Response, error) {
	if err := d.limiter.Wait(r.Context()); err != nil {
		return nil, app.TooManyRequestsError(fmt.Sprintf("waiting for httpDoer limiter: %v", err))
	}

	return d.doer.Do(r)
}

// NewMiddleware creates middleware rejecting requests above maxRate per second with 429 status.
// burst is a number of requests allowed at once.
func NewMiddleware(maxRate float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(maxRate), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
