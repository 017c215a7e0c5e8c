package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/dashcam-catalog/internal/config"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/mock"
	"github.com/MKhiriev/dashcam-catalog/internal/store"
	"github.com/MKhiriev/dashcam-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDependencies(t *testing.T) Dependencies {
	t.Helper()
	ctrl := gomock.NewController(t)
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return Dependencies{
		Storages: &store.Storages{
			UserRepository:    mock.NewMockUserRepository(ctrl),
			VideoRepository:   mock.NewMockVideoRepository(ctrl),
			CommentRepository: mock.NewMockCommentRepository(ctrl),
			CityRepository:    mock.NewMockCityRepository(ctrl),
		},
		DB:         db,
		URLChecker: mock.NewMockURLChecker(ctrl),
		Hasher:     mock.NewMockKeyHasher(ctrl),
		BuildInfo:  models.NewAppBuildInfo("", "", ""),
	}
}

func TestNewServices_WiresValidationWrappers(t *testing.T) {
	cfg := config.StructuredConfig{
		App:     config.App{Version: "1.0.0"},
		Adapter: config.Adapter{AllowedVideoHosts: testAllowedHosts},
	}

	services, err := NewServices(newTestDependencies(t), cfg, logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &UserValidationService{}, services.UserService)
	assert.IsType(t, &VideoValidationService{}, services.VideoService)
	assert.IsType(t, &CommentValidationService{}, services.CommentService)
	assert.NotNil(t, services.CredentialService)
	assert.NotNil(t, services.HealthService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_EmptyVersion(t *testing.T) {
	services, err := NewServices(newTestDependencies(t), config.StructuredConfig{}, logger.Nop())
	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
