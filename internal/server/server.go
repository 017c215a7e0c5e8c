package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/dashcam-catalog/internal/config"
	"github.com/MKhiriev/dashcam-catalog/internal/handler"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may take to finish.
const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	listener, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.serve(listener)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = s.httpServer.shutdown(shutdownCtx); err != nil {
		return err
	}
	if err = <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
