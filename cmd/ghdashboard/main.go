// Package main runs the github user dashboard.
package main

import (
	"context"
	"fmt"
	netHttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/m-zajac/ghdashboard/internal/adapter/github"
	"github.com/m-zajac/ghdashboard/internal/api/http/limiter"
	"github.com/m-zajac/ghdashboard/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		conf Config
		l    = logrus.New()
	)

	root := &cobra.Command{
		Use:          "ghdashboard",
		Short:        "Github user dashboard",
		Long:         "ghdashboard shows github user's profile, repositories, organizations and recent activity.\nConfiguration is read from environment variables.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := envconfig.Process("", &conf); err != nil {
				return fmt.Errorf("couldn't parse config: %w", err)
			}
			level, err := logrus.ParseLevel(conf.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			l.SetLevel(level)
			l.SetOutput(os.Stderr)

			return nil
		},
	}

	root.AddCommand(newServeCmd(&conf, l))
	root.AddCommand(newShowCmd(&conf, l))

	return root
}

// newApp wires github client, service and session store.
func newApp(conf Config, l logrus.FieldLogger) (*app.Service, *app.SessionStore, error) {
	httpClient := &netHttp.Client{
		Timeout: conf.GithubHTTPTimeout,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)
	githubClient := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
	)

	service := app.NewService(
		githubClient,
		conf.ServiceResponseTimeout,
		l.WithField("component", "service"),
	)

	sessions, err := app.NewSessionStore(conf.SessionStoreSize)
	if err != nil {
		return nil, nil, fmt.Errorf("creating session store: %w", err)
	}

	return service, sessions, nil
}
