package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/dashcam-catalog/internal/adapter"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/store"
	"github.com/MKhiriev/dashcam-catalog/models"
)

type videoService struct {
	videoRepository store.VideoRepository
	userRepository  store.UserRepository
	cityRepository  store.CityRepository
	urlChecker      adapter.URLChecker

	logger *logger.Logger
}

func NewVideoService(storages *store.Storages, urlChecker adapter.URLChecker, logger *logger.Logger) VideoService {
	return &videoService{
		videoRepository: storages.VideoRepository,
		userRepository:  storages.UserRepository,
		cityRepository:  storages.CityRepository,
		urlChecker:      urlChecker,
		logger:          logger,
	}
}

// ListVideos filters by url, then by date, and otherwise lists everything.
// A filtered miss returns store.ErrVideoNotFound.
func (v *videoService) ListVideos(ctx context.Context, filter models.VideoFilter) ([]models.Video, error) {
	return v.videoRepository.ListVideos(ctx, filter)
}

// CreateVideo probes the url, rejects duplicates and resolves the owner and
// the optional city before persisting.
func (v *videoService) CreateVideo(ctx context.Context, video models.Video) (models.Video, error) {
	if err := v.checkURL(ctx, video.URL, 0); err != nil {
		return models.Video{}, err
	}

	if _, err := v.userRepository.GetUserByID(ctx, video.UserID); err != nil {
		return models.Video{}, fmt.Errorf("error resolving video owner: %w", err)
	}

	if err := v.resolveCity(ctx, video.CityID); err != nil {
		return models.Video{}, err
	}

	return v.videoRepository.CreateVideo(ctx, video)
}

func (v *videoService) GetVideo(ctx context.Context, videoID int64) (models.Video, error) {
	return v.videoRepository.GetVideoByID(ctx, videoID)
}

// UpdateVideo merges the supplied fields into the record owned by the caller.
// A supplied url is probed again and must stay unique; a supplied owner or
// city must exist.
func (v *videoService) UpdateVideo(ctx context.Context, update models.VideoUpdate, full bool) (models.Video, error) {
	existing, err := v.videoRepository.GetVideoByID(ctx, update.VideoID)
	if err != nil {
		return models.Video{}, err
	}

	if err = checkOwnership(ctx, existing.UserID); err != nil {
		return models.Video{}, err
	}

	if update.IsEmpty() {
		return existing, nil
	}

	if update.URL != nil {
		if err = v.checkURL(ctx, *update.URL, existing.VideoID); err != nil {
			return models.Video{}, err
		}
	}

	if update.UserID != nil && *update.UserID != existing.UserID {
		if _, err = v.userRepository.GetUserByID(ctx, *update.UserID); err != nil {
			return models.Video{}, fmt.Errorf("error resolving new video owner: %w", err)
		}
	}

	if update.CityID != nil {
		if err = v.resolveCity(ctx, *update.CityID); err != nil {
			return models.Video{}, err
		}
	}

	return v.videoRepository.UpdateVideo(ctx, update)
}

// DeleteVideo removes the caller's video and its comments.
func (v *videoService) DeleteVideo(ctx context.Context, videoID int64) error {
	existing, err := v.videoRepository.GetVideoByID(ctx, videoID)
	if err != nil {
		return err
	}

	if err = checkOwnership(ctx, existing.UserID); err != nil {
		return err
	}

	return v.videoRepository.DeleteVideo(ctx, existing.VideoID)
}

// checkURL runs the liveness probe and the uniqueness check. exceptID lets
// a video keep its own url.
func (v *videoService) checkURL(ctx context.Context, url string, exceptID int64) error {
	log := logger.FromContextOr(ctx, v.logger)

	if err := v.urlChecker.Check(ctx, url); err != nil {
		log.Info().Err(err).Str("func", "*videoService.checkURL").Str("url", url).Msg("video url failed liveness check")
		return fmt.Errorf("error checking video url: %w", err)
	}

	found, err := v.videoRepository.ListVideos(ctx, models.VideoFilter{URL: url})
	switch {
	case errors.Is(err, store.ErrVideoNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("error checking video url uniqueness: %w", err)
	}

	for _, video := range found {
		if video.VideoID != exceptID {
			log.Debug().Str("func", "*videoService.checkURL").Str("url", url).Msg("video url is taken")
			return store.ErrVideoURLAlreadyExists
		}
	}

	return nil
}

// resolveCity accepts zero as "no city".
func (v *videoService) resolveCity(ctx context.Context, cityID int64) error {
	if cityID == 0 {
		return nil
	}

	if _, err := v.cityRepository.GetCityByID(ctx, cityID); err != nil {
		return fmt.Errorf("error resolving city: %w", err)
	}

	return nil
}
