package store

import (
	"context"

	"github.com/MKhiriev/dashcam-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and their API key hashes.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUsername(ctx context.Context, userID int64, username string) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// VideoRepository persists videos. Reads resolve the uploader's username and
// the city name.
type VideoRepository interface {
	CreateVideo(ctx context.Context, video models.Video) (models.Video, error)
	GetVideoByID(ctx context.Context, videoID int64) (models.Video, error)
	ListVideos(ctx context.Context, filter models.VideoFilter) ([]models.Video, error)
	UpdateVideo(ctx context.Context, update models.VideoUpdate) (models.Video, error)
	DeleteVideo(ctx context.Context, videoID int64) error
}

// CommentRepository persists comments. Reads resolve the author's username
// and the video url.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	GetCommentByID(ctx context.Context, commentID int64) (models.Comment, error)
	ListComments(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error)
	UpdateComment(ctx context.Context, update models.CommentUpdate) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

// CityRepository reads the city lookup table.
type CityRepository interface {
	GetCityByID(ctx context.Context, cityID int64) (models.City, error)
}

// ErrorClassificator maps driver-specific errors onto dialect-neutral
// [ErrorClassification] values.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
