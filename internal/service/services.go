package service

import (
	"fmt"

	"github.com/MKhiriev/dashcam-catalog/internal/adapter"
	"github.com/MKhiriev/dashcam-catalog/internal/config"
	"github.com/MKhiriev/dashcam-catalog/internal/crypto"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/store"
	"github.com/MKhiriev/dashcam-catalog/models"
)

type Services struct {
	CredentialService CredentialService
	UserService       UserService
	VideoService      VideoService
	CommentService    CommentService
	AppInfoService    AppInfoService
	HealthService     HealthService
}

// Dependencies groups what NewServices needs from the outer layers.
type Dependencies struct {
	Storages   *store.Storages
	DB         Pinger
	URLChecker adapter.URLChecker
	Hasher     crypto.KeyHasher
	BuildInfo  models.AppBuildInfo
}

// NewServices wires every service. Resource services are wrapped with their
// validation layer.
func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, deps.BuildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	credentialService := NewCredentialService(deps.Storages.UserRepository, deps.Hasher, logger)

	return &Services{
		CredentialService: credentialService,
		UserService: NewUserValidationService().
			Wrap(NewUserService(deps.Storages.UserRepository, credentialService, logger)),
		VideoService: NewVideoValidationService(cfg.Adapter.AllowedVideoHosts).
			Wrap(NewVideoService(deps.Storages, deps.URLChecker, logger)),
		CommentService: NewCommentValidationService().
			Wrap(NewCommentService(deps.Storages, logger)),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(deps.DB, logger),
	}, nil
}
