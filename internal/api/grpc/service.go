package grpc

import (
	"context"
	"fmt"
	"math"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/m-zajac/ghdashboard/internal/api/view"
	"github.com/m-zajac/ghdashboard/internal/app"
)

// Request field names.
const (
	fieldSession  = "session"
	fieldUsername = "username"
	fieldRepoID   = "repo_id"
)

// AppService searches users and expands their repositories within a session.
type AppService interface {
	Search(ctx context.Context, sess *app.Session, username string) (app.SessionState, error)
	ToggleRepository(ctx context.Context, sess *app.Session, repoID int64) (app.SessionState, error)
}

// SessionStore creates and finds dashboard sessions.
type SessionStore interface {
	Create() (string, *app.Session)
	Get(id string) (*app.Session, bool)
}

// Service implements DashboardServer, acting as a proxy to AppService.
type Service struct {
	appService AppService
	sessions   SessionStore
	l          logrus.FieldLogger
}

var _ DashboardServer = &Service{}

// NewService returns new Service instance
func NewService(appService AppService, sessions SessionStore, l logrus.FieldLogger) *Service {
	return &Service{
		appService: appService,
		sessions:   sessions,
		l:          l,
	}
}

// CreateSession starts new session.
func (s *Service) CreateSession(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	id, _ := s.sessions.Create()

	return structpb.NewStruct(map[string]interface{}{"id": id})
}

// GetState returns state of a session.
func (s *Service) GetState(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	sess, err := s.session(r)
	if err != nil {
		return nil, err
	}

	return toStruct(view.NewState(sess.State()))
}

// Search searches user and returns updated session state.
func (s *Service) Search(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	sess, err := s.session(r)
	if err != nil {
		return nil, err
	}

	state, err := s.appService.Search(ctx, sess, r.GetFields()[fieldUsername].GetStringValue())
	if err != nil {
		return nil, s.statusError(err, state)
	}

	return toStruct(view.NewState(state))
}

// ToggleRepository expands or collapses repository and returns updated session state.
func (s *Service) ToggleRepository(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	sess, err := s.session(r)
	if err != nil {
		return nil, err
	}

	repoID, err := repoIDField(r)
	if err != nil {
		return nil, err
	}

	state, err := s.appService.ToggleRepository(ctx, sess, repoID)
	if err != nil {
		return nil, s.statusError(err, state)
	}

	return toStruct(view.NewState(state))
}

func (s *Service) session(r *structpb.Struct) (*app.Session, error) {
	id := r.GetFields()[fieldSession].GetStringValue()
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "session cannot be empty")
	}

	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "session %s not found", id)
	}

	return sess, nil
}

func (s *Service) statusError(err error, state app.SessionState) error {
	switch {
	case app.IsInvalidRequestError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case app.IsUnavailableError(err):
		s.l.Infof("remote data unavailable: %v", err)
		msg := state.Error
		if msg == "" {
			msg = "repository detail unavailable"
		}
		return status.Error(codes.Unavailable, msg)
	case app.IsNotFoundError(err):
		return status.Error(codes.NotFound, err.Error())
	case app.IsTooManyRequestsError(err):
		return status.Error(codes.ResourceExhausted, "too many requests")
	default:
		s.l.Errorf("dashboard service: %v", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func repoIDField(r *structpb.Struct) (int64, error) {
	v, ok := r.GetFields()[fieldRepoID]
	if !ok {
		return 0, status.Error(codes.InvalidArgument, "repo_id cannot be empty")
	}

	n := v.GetNumberValue()
	if n <= 0 || n != math.Trunc(n) || n >= math.MaxInt64 {
		return 0, status.Errorf(codes.InvalidArgument, "invalid repo_id %v", n)
	}

	return int64(n), nil
}

// toStruct converts a view to struct with the same shape as view's json.
func toStruct(v interface{}) (*structpb.Struct, error) {
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("marshalling view: %v", err))
	}

	out := new(structpb.Struct)
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("converting view: %v", err))
	}

	return out, nil
}
