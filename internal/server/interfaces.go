package server

import "context"

// Server defines the lifecycle contract of the transport server managed by
// this package.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer() error

	// Run serves requests until ctx is cancelled.
	Run(ctx context.Context) error
}
