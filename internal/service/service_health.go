package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dashcam-catalog/internal/logger"
)

// Pinger is satisfied by *sql.DB and therefore by *store.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthService struct {
	db Pinger

	logger *logger.Logger
}

func NewHealthService(db Pinger, logger *logger.Logger) HealthService {
	return &healthService{db: db, logger: logger}
}

func (h *healthService) Ping(ctx context.Context) error {
	if err := h.db.PingContext(ctx); err != nil {
		logger.FromContextOr(ctx, h.logger).Err(err).Str("func", "*healthService.Ping").Msg("database ping failed")
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}
