package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/m-zajac/ghdashboard/internal/api/view"
	"github.com/m-zajac/ghdashboard/internal/app"
)

// maxRequestBodySize limits search request body.
const maxRequestBodySize = 4096

type createSessionResponse struct {
	ID string `json:"id"`
}

type searchRequest struct {
	Username string `json:"username"`
}

// NewCreateSessionHandler creates handlerfunc starting new dashboard session.
func NewCreateSessionHandler(sessions SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := sessions.Create()
		writeJSON(w, http.StatusCreated, createSessionResponse{ID: id})
	}
}

// NewStateHandler creates handlerfunc returning current session state.
func NewStateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())
		writeJSON(w, http.StatusOK, view.NewState(sess.State()))
	}
}

// NewSearchHandler creates handlerfunc searching user given in "username" query param or json body.
func NewSearchHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, err := searchUsername(r)
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		sess := sessionFromContext(r.Context())
		state, err := service.Search(r.Context(), sess, username)
		if err != nil {
			switch {
			case app.IsInvalidRequestError(err):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case app.IsUnavailableError(err):
				l.Infof("search failed: %v", err)
				writeJSON(w, http.StatusBadGateway, view.NewState(state))
			case app.IsTooManyRequestsError(err):
				http.Error(w, "", http.StatusTooManyRequests)
			default:
				l.Errorf("search: %v", err)
				http.Error(w, "", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, view.NewState(state))
	}
}

// NewToggleHandler creates handlerfunc expanding or collapsing repository given in "repoID" url param.
func NewToggleHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repoID, err := repoIDParam(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		sess := sessionFromContext(r.Context())
		state, err := service.ToggleRepository(r.Context(), sess, repoID)
		if err != nil {
			switch {
			case app.IsUnavailableError(err):
				l.Infof("repository detail failed: %v", err)
				writeJSON(w, http.StatusBadGateway, view.NewState(state))
			case app.IsNotFoundError(err):
				http.Error(w, err.Error(), http.StatusNotFound)
			case app.IsInvalidRequestError(err):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case app.IsTooManyRequestsError(err):
				http.Error(w, "", http.StatusTooManyRequests)
			default:
				l.Errorf("toggle repository %d: %v", repoID, err)
				http.Error(w, "", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, view.NewState(state))
	}
}

// NewDetailHandler creates handlerfunc returning cached detail of repository given in "repoID" url param.
func NewDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repoID, err := repoIDParam(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		sess := sessionFromContext(r.Context())
		detail, ok := sess.State().Detail(repoID)
		if !ok {
			http.Error(w, "repository detail not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, view.NewDetail(repoID, detail))
	}
}

func searchUsername(r *http.Request) (string, error) {
	if username := r.URL.Query().Get("username"); username != "" {
		return username, nil
	}
	if r.Body == nil {
		return "", nil
	}

	var req searchRequest
	dec := jsoniter.ConfigFastest.NewDecoder(io.LimitReader(r.Body, maxRequestBodySize))
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", err
	}

	return req.Username, nil
}

func repoIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "repoID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, app.InvalidRequestError("invalid repository id")
	}

	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(v)
}
