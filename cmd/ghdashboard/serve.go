package main

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/m-zajac/ghdashboard/internal/api/grpc"
	"github.com/m-zajac/ghdashboard/internal/api/http"
	"github.com/m-zajac/ghdashboard/internal/api/http/limiter"
)

func newServeCmd(conf *Config, l *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run http and grpc api servers until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			service, sessions, err := newApp(*conf, l)
			if err != nil {
				return err
			}

			mux := http.NewMux(
				service,
				sessions,
				conf.HTTPHandlerTimeout,
				l.WithField("component", "mux"),
				limiter.NewMiddleware(conf.APIRateLimit, conf.APIRateBurst),
			)
			server := http.NewServer(
				conf.HTTPServerAddress,
				conf.HTTPProfileServerAddress,
				mux,
				l.WithField("component", "httpServer"),
			)

			grpcService := grpc.NewService(service, sessions, l.WithField("component", "grpcService"))
			grpcServer := grpc.NewServer(
				grpcService,
				conf.GRPCServerAddress,
				l.WithField("component", "grpcServer"),
			)

			var (
				wg      sync.WaitGroup
				grpcErr error
			)
			wg.Add(1)
			go func() {
				server.Run(ctx)
				wg.Done()
			}()
			wg.Add(1)
			go func() {
				grpcErr = grpcServer.Run(ctx)
				wg.Done()
			}()
			wg.Wait()

			return grpcErr
		},
	}
}
