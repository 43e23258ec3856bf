package main

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/m-zajac/ghdashboard/internal/api/view"
	"github.com/m-zajac/ghdashboard/internal/app"
)

// searcher searches users and expands their repositories within a session.
type searcher interface {
	Search(ctx context.Context, sess *app.Session, username string) (app.SessionState, error)
	ToggleRepository(ctx context.Context, sess *app.Session, repoID int64) (app.SessionState, error)
}

func newShowCmd(conf *Config, l *logrus.Logger) *cobra.Command {
	var expand []string

	cmd := &cobra.Command{
		Use:   "show <username>",
		Short: "Print user's dashboard as json",
		Long:  "Searches given user in a new session, expands repositories named with --expand and prints resulting state.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, _, err := newApp(*conf, l)
			if err != nil {
				return err
			}

			state, err := show(cmd.Context(), service, args[0], expand)
			if err != nil {
				return err
			}

			enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(view.NewState(state))
		},
	}
	cmd.Flags().StringSliceVarP(&expand, "expand", "e", nil, "name of repository to expand, can be repeated")

	return cmd
}

// show runs a search and expands repositories by name, one after another.
// As only one repository is expanded at a time, the last one stays expanded.
func show(ctx context.Context, s searcher, username string, expand []string) (app.SessionState, error) {
	sess := app.NewSession()

	state, err := s.Search(ctx, sess, username)
	if err != nil {
		return state, err
	}

	for _, name := range expand {
		repoID, ok := repositoryID(state, name)
		if !ok {
			return state, fmt.Errorf("repository %s not found", name)
		}
		if state.Expanded == repoID {
			continue
		}

		state, err = s.ToggleRepository(ctx, sess, repoID)
		if err != nil {
			return state, fmt.Errorf("expanding %s: %w", name, err)
		}
	}

	return state, nil
}

func repositoryID(state app.SessionState, name string) (int64, bool) {
	for _, r := range state.Repositories {
		if r.Name == name {
			return r.ID, true
		}
	}

	return 0, false
}
