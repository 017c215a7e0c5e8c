package service

import (
	"context"

	"github.com/MKhiriev/dashcam-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=UserServiceWrapper,VideoServiceWrapper,CommentServiceWrapper

// CredentialService issues and verifies per-user API keys.
type CredentialService interface {
	// Issue creates the user together with a fresh API key and returns the
	// plain key. The plain key is not kept anywhere.
	Issue(ctx context.Context, username string) (models.User, string, error)

	// Verify resolves username and checks apiKey against the stored hash.
	// Every mismatch yields [ErrInvalidCredential].
	Verify(ctx context.Context, username, apiKey string) (models.User, error)
}

type UserService interface {
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	CreateUser(ctx context.Context, username string) (models.User, string, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate, full bool) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type VideoService interface {
	ListVideos(ctx context.Context, filter models.VideoFilter) ([]models.Video, error)
	CreateVideo(ctx context.Context, video models.Video) (models.Video, error)
	GetVideo(ctx context.Context, videoID int64) (models.Video, error)
	UpdateVideo(ctx context.Context, update models.VideoUpdate, full bool) (models.Video, error)
	DeleteVideo(ctx context.Context, videoID int64) error
}

type CommentService interface {
	ListComments(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error)
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	GetComment(ctx context.Context, commentID int64) (models.Comment, error)
	UpdateComment(ctx context.Context, update models.CommentUpdate, full bool) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HealthService reports whether the backing store answers.
type HealthService interface {
	Ping(ctx context.Context) error
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// VideoServiceWrapper defines middleware composition for VideoService.
type VideoServiceWrapper interface {
	Wrap(VideoService) VideoService
}

// CommentServiceWrapper defines middleware composition for CommentService.
type CommentServiceWrapper interface {
	Wrap(CommentService) CommentService
}
