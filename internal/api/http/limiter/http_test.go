package limiter

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-zajac/ghdashboard/internal/app"
	"github.com/m-zajac/ghdashboard/internal/mock"
	"github.com/stretchr/testify/assert"
)

func TestLimitedHTTPDoerRate(t *testing.T) {
	maxRate := 500.0
	testTime := 200 * time.Millisecond

	doer := &mock.HTTPDoer{}
	limitedDoer := NewHTTPDoer(doer, maxRate)

	req, _ := http.NewRequest(http.MethodGet, "fakeurl", nil)
	startTime := time.Now()
	var dos int
	for startTime.Add(testTime).After(time.Now()) {
		if _, err := limitedDoer.Do(req); err != nil {
			t.Fatalf("Do() returned error: %v", err)
		}
		dos++
	}

	expectedDos := float64(maxRate) * float64(testTime) / float64(time.Second)
	diff := math.Abs(float64(dos)-expectedDos) / expectedDos
	if diff > 0.1 {
		t.Errorf("unexpected number of Dos: %d, want %d", dos, int(expectedDos))
	}
}

func TestLimitedHTTPDoerTimeout(t *testing.T) {
	doer := &mock.HTTPDoer{}
	limitedDoer := NewHTTPDoer(doer, 1)

	req, _ := http.NewRequest(http.MethodGet, "fakeurl", nil)
	ctx, cancel := context.WithTimeout(req.Context(), 10*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)

	if _, err := limitedDoer.Do(req); err != nil {
		t.Fatalf("first Do() returned error: %v", err)
	}

	// Error is expected because of short ctx timeout and low rate limit.
	_, err := limitedDoer.Do(req)
	if err == nil {
		t.Fatal("second Do() didn't return error")
	}
	assert.True(t, app.IsTooManyRequestsError(err))
}

func TestMiddleware(t *testing.T) {
	handler := NewMiddleware(1, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	var codes []int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}
