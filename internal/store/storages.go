package store

import "github.com/MKhiriev/dashcam-catalog/internal/logger"

// Storages aggregates every repository the services depend on.
type Storages struct {
	UserRepository    UserRepository
	VideoRepository   VideoRepository
	CommentRepository CommentRepository
	CityRepository    CityRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		VideoRepository:   NewVideoRepository(db, logger),
		CommentRepository: NewCommentRepository(db, logger),
		CityRepository:    NewCityRepository(db, logger),
	}
}
