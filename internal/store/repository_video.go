package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/models"
)

// videoRepository is the SQL-backed implementation of [VideoRepository].
// Reads join "users" for the uploader's username and left-join "cities" for
// the optional city name.
type videoRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewVideoRepository(db *DB, logger *logger.Logger) VideoRepository {
	logger.Debug().Msg("creating video repository")
	return &videoRepository{
		db:     db,
		logger: logger,
	}
}

// CreateVideo inserts video and returns the stored projection.
//
// Error handling:
//   - unique violation on url → [ErrVideoURLAlreadyExists].
//   - foreign key violation on user_id or city_id → [ErrReferenceNotFound].
func (r *videoRepository) CreateVideo(ctx context.Context, video models.Video) (models.Video, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateVideoQuery(r.db.builder, video)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.CreateVideo").Msg("error building query")
		return models.Video{}, err
	}

	var videoID int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&videoID); err != nil {
		log.Err(err).Str("func", "*videoRepository.CreateVideo").Str("url", video.URL).Msg("error inserting video")
		return models.Video{}, r.writeError(err)
	}

	return r.GetVideoByID(ctx, videoID)
}

// GetVideoByID returns the video with the given id or [ErrVideoNotFound].
func (r *videoRepository) GetVideoByID(ctx context.Context, videoID int64) (models.Video, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVideoByIDQuery(r.db.builder, videoID)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.GetVideoByID").Msg("error building query")
		return models.Video{}, err
	}

	video, err := scanVideo(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Video{}, ErrVideoNotFound
	case err != nil:
		log.Err(err).Str("func", "*videoRepository.GetVideoByID").Int64("video_id", videoID).Msg("error scanning video")
		return models.Video{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return video, nil
}

// ListVideos returns videos ordered by id. An empty filter returns every
// video; a filter that matches nothing yields [ErrVideoNotFound].
func (r *videoRepository) ListVideos(ctx context.Context, filter models.VideoFilter) ([]models.Video, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVideosQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.ListVideos").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.ListVideos").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	videos := make([]models.Video, 0)
	for rows.Next() {
		video, scanErr := scanVideo(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*videoRepository.ListVideos").Msg("error scanning video row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		videos = append(videos, video)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*videoRepository.ListVideos").Msg("error iterating video rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(videos) == 0 && (filter.URL != "" || filter.Date.Valid) {
		return videos, ErrVideoNotFound
	}

	return videos, nil
}

// UpdateVideo writes the non-nil fields of update and returns the stored
// projection. An empty update only checks existence.
func (r *videoRepository) UpdateVideo(ctx context.Context, update models.VideoUpdate) (models.Video, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.GetVideoByID(ctx, update.VideoID)
	}

	query, args, err := buildUpdateVideoQuery(r.db.builder, update)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.UpdateVideo").Msg("error building query")
		return models.Video{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.UpdateVideo").Int64("video_id", update.VideoID).Msg("error updating video")
		return models.Video{}, r.writeError(err)
	}

	if err = expectAffected(result, ErrVideoNotFound); err != nil {
		return models.Video{}, err
	}

	return r.GetVideoByID(ctx, update.VideoID)
}

// DeleteVideo removes the video together with its comments.
func (r *videoRepository) DeleteVideo(ctx context.Context, videoID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByIDQuery(r.db.builder, models.Video{}.TableName(), videoID)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.DeleteVideo").Msg("error building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.DeleteVideo").Int64("video_id", videoID).Msg("error deleting video")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrVideoNotFound)
}

func (r *videoRepository) writeError(err error) error {
	switch r.db.classify(err) {
	case UniqueViolation:
		return ErrVideoURLAlreadyExists
	case ForeignKeyViolation:
		return ErrReferenceNotFound
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVideo(row rowScanner) (models.Video, error) {
	var (
		video       models.Video
		description sql.NullString
		cityID      sql.NullInt64
		cityName    sql.NullString
	)

	err := row.Scan(
		&video.VideoID,
		&video.URL,
		&video.UserID,
		&video.Username,
		&video.Date,
		&description,
		&cityID,
		&cityName,
	)
	if err != nil {
		return models.Video{}, err
	}

	video.Description = description.String
	video.CityID = cityID.Int64
	video.CityName = cityName.String

	return video, nil
}
