package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/dashcam-catalog/internal/config"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// serve blocks until the server stops. A graceful shutdown is not an error.
func (h *httpServer) serve(listener net.Listener) error {
	h.logger.Info().Str("address", listener.Addr().String()).Msg("HTTP server listening")

	if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Str("func", "*httpServer.serve").Msg("HTTP server Serve")
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (h *httpServer) listen() (net.Listener, error) {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", h.server.Addr, err)
	}
	return listener, nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("func", "*httpServer.shutdown").Msg("HTTP server Shutdown")
		return err
	}
	return nil
}
