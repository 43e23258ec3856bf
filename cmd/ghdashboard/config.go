package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// HTTPHandlerTimeout - timeout for a single http request
	HTTPHandlerTimeout time.Duration `default:"60s"`

	// GRPCServerAddress - listen address for grpc server
	GRPCServerAddress string `default:"0.0.0.0:9090"`

	// APIRateLimit - max frequency of requests accepted by http api, per second
	APIRateLimit float64 `default:"50"`

	// APIRateBurst - max number of http api requests accepted at once
	APIRateBurst int `default:"100"`

	// ServiceResponseTimeout - timeout for a search or repository detail fetch
	ServiceResponseTimeout time.Duration `default:"30s"`

	// SessionStoreSize - maximum number of kept sessions, the least recently used are dropped first
	SessionStoreSize int `default:"10000"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIRateLimit - max frequency for github rest api calls, per second
	GithubAPIRateLimit float64 `default:"10"`

	// GithubHTTPTimeout - timeout for a single github rest api call
	GithubHTTPTimeout time.Duration `default:"30s"`

	// LogLevel - one of logrus levels: debug, info, warning, error
	LogLevel string `default:"info"`
}
