package service

import (
	"context"

	"github.com/MKhiriev/dashcam-catalog/internal/config"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/models"
)

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo
}

// NewAppInfoService reports the configured version together with the
// linker-stamped build metadata.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		logger.Error().Str("func", "NewAppInfoService").Msg("application version is not configured")
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		buildInfo:  buildInfo,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
