package http

import (
	"github.com/MKhiriev/dashcam-catalog/internal/config"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/metrics"
	"github.com/MKhiriev/dashcam-catalog/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		cfg:      cfg,
		logger:   logger,
	}
}
