package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-zajac/ghdashboard/internal/api/http/mock"
	"github.com/m-zajac/ghdashboard/internal/app"
)

func TestShow(t *testing.T) {
	repos := []app.Repository{
		{ID: 1, Name: "Hello-World"},
		{ID: 2, Name: "Spoon-Knife"},
	}

	tests := []struct {
		name         string
		expand       []string
		setupMock    func(*mock.MockService)
		wantExpanded int64
		wantErr      bool
	}{
		{
			name: "search only",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().Search(gomock.Any(), gomock.Any(), "octocat").
					Return(app.SessionState{Repositories: repos}, nil)
			},
		},
		{
			name:   "expand two, last stays expanded",
			expand: []string{"Hello-World", "Spoon-Knife"},
			setupMock: func(m *mock.MockService) {
				m.EXPECT().Search(gomock.Any(), gomock.Any(), "octocat").
					Return(app.SessionState{Repositories: repos}, nil)
				m.EXPECT().ToggleRepository(gomock.Any(), gomock.Any(), int64(1)).
					Return(app.SessionState{Repositories: repos, Expanded: 1}, nil)
				m.EXPECT().ToggleRepository(gomock.Any(), gomock.Any(), int64(2)).
					Return(app.SessionState{Repositories: repos, Expanded: 2}, nil)
			},
			wantExpanded: 2,
		},
		{
			name:   "same repository twice is not collapsed",
			expand: []string{"Hello-World", "Hello-World"},
			setupMock: func(m *mock.MockService) {
				m.EXPECT().Search(gomock.Any(), gomock.Any(), "octocat").
					Return(app.SessionState{Repositories: repos}, nil)
				m.EXPECT().ToggleRepository(gomock.Any(), gomock.Any(), int64(1)).
					Return(app.SessionState{Repositories: repos, Expanded: 1}, nil)
			},
			wantExpanded: 1,
		},
		{
			name:   "unknown repository",
			expand: []string{"nope"},
			setupMock: func(m *mock.MockService) {
				m.EXPECT().Search(gomock.Any(), gomock.Any(), "octocat").
					Return(app.SessionState{Repositories: repos}, nil)
			},
			wantErr: true,
		},
		{
			name:   "search failed",
			expand: []string{"Hello-World"},
			setupMock: func(m *mock.MockService) {
				m.EXPECT().Search(gomock.Any(), gomock.Any(), "octocat").
					Return(app.SessionState{Error: app.SearchErrorMessage}, app.UnavailableError{Err: errors.New("down")})
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			tt.setupMock(s)

			state, err := show(context.Background(), s, "octocat", tt.expand)
			require.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantExpanded, state.Expanded)
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	var conf Config
	require.NoError(t, envconfig.Process("", &conf))

	assert.Equal(t, "https://api.github.com", conf.GithubAPIAddress)
	assert.Equal(t, 10000, conf.SessionStoreSize)
	assert.Equal(t, "info", conf.LogLevel)

	_, sessions, err := newApp(conf, logrus.New())
	require.NoError(t, err)
	assert.Zero(t, sessions.Len())
}

func TestShowCmdRequiresUsername(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"show"})

	err := root.ExecuteContext(context.Background())
	assert.Error(t, err)
}
