package handler

import (
	"github.com/MKhiriev/dashcam-catalog/internal/config"
	"github.com/MKhiriev/dashcam-catalog/internal/handler/http"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/metrics"
	"github.com/MKhiriev/dashcam-catalog/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, metrics, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
