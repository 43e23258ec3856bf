package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-zajac/ghdashboard/internal/api/http/mock"
	"github.com/m-zajac/ghdashboard/internal/app"
	appmock "github.com/m-zajac/ghdashboard/internal/app/mock"
)

func newTestMux(t *testing.T, s Service) (http.Handler, string) {
	t.Helper()

	store, err := app.NewSessionStore(10)
	require.NoError(t, err)
	id, _ := store.Create()

	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)

	return NewMux(s, store, time.Second, l), id
}

func TestSearchHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		setupMock       func(*mock.MockService)
		newRequest      func(sessionID string) *http.Request
		wantStatus      int
		wantBody        string
		wantContentType string
	}{
		{
			name: "username from query",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Search(gomock.Any(), gomock.Any(), "octocat").
					Return(app.SessionState{User: &app.User{Login: "octocat"}}, nil)
			},
			newRequest: func(id string) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/search?username=octocat", nil)
			},
			wantStatus:      http.StatusOK,
			wantBody:        `"login":"octocat"`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "username from json body",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Search(gomock.Any(), gomock.Any(), "octocat").
					Return(app.SessionState{}, nil)
			},
			newRequest: func(id string) *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/search", strings.NewReader(`{"username":"octocat"}`))
				r.Header.Set("Content-Type", "application/json")
				return r
			},
			wantStatus:      http.StatusOK,
			wantBody:        `"repositories":[]`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "invalid json body",
			newRequest: func(id string) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/search", strings.NewReader(`{"username":`))
			},
			wantStatus:      http.StatusBadRequest,
			wantBody:        "invalid request body",
			wantContentType: "text/plain; charset=utf-8",
		},
		{
			name: "empty username",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Search(gomock.Any(), gomock.Any(), "").
					Return(app.SessionState{}, app.InvalidRequestError("username cannot be empty"))
			},
			newRequest: func(id string) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/search", nil)
			},
			wantStatus:      http.StatusBadRequest,
			wantBody:        "username cannot be empty",
			wantContentType: "text/plain; charset=utf-8",
		},
		{
			name: "remote fetch failed",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Search(gomock.Any(), gomock.Any(), "doesnotexist123456").
					Return(
						app.SessionState{Error: app.SearchErrorMessage},
						app.UnavailableError{Err: app.NotFoundError("/users/doesnotexist123456 not found")},
					)
			},
			newRequest: func(id string) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/search?username=doesnotexist123456", nil)
			},
			wantStatus:      http.StatusBadGateway,
			wantBody:        `"error":"` + app.SearchErrorMessage + `"`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "service error",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Search(gomock.Any(), gomock.Any(), "octocat").
					Return(app.SessionState{}, errors.New("error"))
			},
			newRequest: func(id string) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/search?username=octocat", nil)
			},
			wantStatus:      http.StatusInternalServerError,
			wantContentType: "text/plain; charset=utf-8",
		},
		{
			name: "unknown session",
			newRequest: func(string) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/sessions/unknown/search?username=octocat", nil)
			},
			wantStatus:      http.StatusNotFound,
			wantBody:        "session not found",
			wantContentType: "text/plain; charset=utf-8",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			mux, id := newTestMux(t, s)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, tt.newRequest(id))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantContentType, w.Header().Get("Content-type"))
			assert.Contains(t, strings.Trim(w.Body.String(), "\n"), tt.wantBody)
		})
	}
}

func TestToggleHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*mock.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "expanded",
			path: "/repositories/1296269/toggle",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					ToggleRepository(gomock.Any(), gomock.Any(), int64(1296269)).
					Return(app.SessionState{
						Repositories: []app.Repository{{ID: 1296269, Name: "Hello-World"}},
						Expanded:     1296269,
						Details:      map[int64]app.Detail{1296269: {Topics: []string{"demo"}}},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"state":"expanded"`,
		},
		{
			name:       "invalid repository id",
			path:       "/repositories/abc/toggle",
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid repository id",
		},
		{
			name: "unknown repository",
			path: "/repositories/5/toggle",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					ToggleRepository(gomock.Any(), gomock.Any(), int64(5)).
					Return(app.SessionState{}, app.NotFoundError("repository 5 not found"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "repository 5 not found",
		},
		{
			name: "all detail parts failed",
			path: "/repositories/5/toggle",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					ToggleRepository(gomock.Any(), gomock.Any(), int64(5)).
					Return(
						app.SessionState{Repositories: []app.Repository{{ID: 5}}},
						app.UnavailableError{Err: app.NotFoundError("readme not found")},
					)
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"state":"collapsed"`,
		},
		{
			name: "too many requests",
			path: "/repositories/5/toggle",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					ToggleRepository(gomock.Any(), gomock.Any(), int64(5)).
					Return(app.SessionState{}, app.TooManyRequestsError("limit"))
			},
			wantStatus: http.StatusTooManyRequests,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			mux, id := newTestMux(t, s)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sessions/"+id+tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestSessionHandlers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	helloWorld := app.Repository{ID: 1296269, Name: "Hello-World", OwnerLogin: "octocat"}
	githubCli := appmock.NewMockGithubClient(ctrl)
	githubCli.EXPECT().User(gomock.Any(), "octocat").Return(&app.User{Login: "octocat"}, nil)
	githubCli.EXPECT().UserRepositories(gomock.Any(), "octocat").Return([]app.Repository{helloWorld}, nil)
	githubCli.EXPECT().UserOrganizations(gomock.Any(), "octocat").Return(nil, nil)
	githubCli.EXPECT().UserEvents(gomock.Any(), "octocat").Return(nil, nil)
	githubCli.EXPECT().RepositoryTopics(gomock.Any(), "octocat", "Hello-World").Return([]string{"demo"}, nil)
	githubCli.EXPECT().RepositoryContributors(gomock.Any(), "octocat", "Hello-World").Return(nil, nil)
	githubCli.EXPECT().RepositoryPullRequests(gomock.Any(), "octocat", "Hello-World").Return(nil, nil)
	githubCli.EXPECT().RepositoryIssues(gomock.Any(), "octocat", "Hello-World").Return(nil, nil)
	githubCli.EXPECT().RepositoryReadme(gomock.Any(), "octocat", "Hello-World").Return("# Hello", nil)

	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	store, err := app.NewSessionStore(10)
	require.NoError(t, err)
	mux := NewMux(app.NewService(githubCli, time.Second, l), store, time.Second, l)

	do := func(method string, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		return w
	}

	w := do(http.MethodPost, "/sessions")
	require.Equal(t, http.StatusCreated, w.Code)
	var created createSessionResponse
	require.NoError(t, jsoniter.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	base := "/sessions/" + created.ID

	w = do(http.MethodGet, base)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":null`)

	w = do(http.MethodGet, base+"/repositories/1296269")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(http.MethodPost, base+"/search?username=octocat")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(http.MethodPost, base+"/repositories/1296269/toggle")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"readme_title":"Hello"`)

	w = do(http.MethodGet, base+"/repositories/1296269")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"topics":["demo"]`)

	// Collapsing keeps cached detail.
	w = do(http.MethodPost, base+"/repositories/1296269/toggle")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"collapsed"`)
	w = do(http.MethodGet, base+"/repositories/1296269")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestTimeoutMiddleware(t *testing.T) {
	t.Parallel()

	var deadline time.Time
	handler := NewTimeoutMiddleware(time.Minute)(func(w http.ResponseWriter, r *http.Request) {
		deadline, _ = r.Context().Deadline()
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background()))

	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, time.Second)
}
