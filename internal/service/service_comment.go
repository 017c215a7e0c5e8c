package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/store"
	"github.com/MKhiriev/dashcam-catalog/models"
)

type commentService struct {
	commentRepository store.CommentRepository
	userRepository    store.UserRepository
	videoRepository   store.VideoRepository

	logger *logger.Logger
}

func NewCommentService(storages *store.Storages, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: storages.CommentRepository,
		userRepository:    storages.UserRepository,
		videoRepository:   storages.VideoRepository,
		logger:            logger,
	}
}

// ListComments resolves the filtered video (or user) first so a missing
// reference is told apart from an empty result. VideoID wins over UserID.
func (c *commentService) ListComments(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error) {
	switch {
	case filter.VideoID != 0:
		if _, err := c.videoRepository.GetVideoByID(ctx, filter.VideoID); err != nil {
			return []models.Comment{}, fmt.Errorf("error resolving video for comments: %w", err)
		}
		filter.UserID = 0
	case filter.UserID != 0:
		if _, err := c.userRepository.GetUserByID(ctx, filter.UserID); err != nil {
			return []models.Comment{}, fmt.Errorf("error resolving user for comments: %w", err)
		}
	}

	return c.commentRepository.ListComments(ctx, filter)
}

func (c *commentService) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if err := c.resolveReferences(ctx, comment.UserID, comment.VideoID); err != nil {
		return models.Comment{}, err
	}

	return c.commentRepository.CreateComment(ctx, comment)
}

func (c *commentService) GetComment(ctx context.Context, commentID int64) (models.Comment, error) {
	return c.commentRepository.GetCommentByID(ctx, commentID)
}

// UpdateComment merges the supplied fields into the caller's comment.
// Reassigned references must exist.
func (c *commentService) UpdateComment(ctx context.Context, update models.CommentUpdate, full bool) (models.Comment, error) {
	existing, err := c.commentRepository.GetCommentByID(ctx, update.CommentID)
	if err != nil {
		return models.Comment{}, err
	}

	if err = checkOwnership(ctx, existing.UserID); err != nil {
		return models.Comment{}, err
	}

	if update.IsEmpty() {
		return existing, nil
	}

	var userID, videoID int64
	if update.UserID != nil && *update.UserID != existing.UserID {
		userID = *update.UserID
	}
	if update.VideoID != nil && *update.VideoID != existing.VideoID {
		videoID = *update.VideoID
	}
	if err = c.resolveReferences(ctx, userID, videoID); err != nil {
		return models.Comment{}, err
	}

	return c.commentRepository.UpdateComment(ctx, update)
}

func (c *commentService) DeleteComment(ctx context.Context, commentID int64) error {
	existing, err := c.commentRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}

	if err = checkOwnership(ctx, existing.UserID); err != nil {
		return err
	}

	if err = c.commentRepository.DeleteComment(ctx, existing.CommentID); err != nil {
		return err
	}

	logger.FromContextOr(ctx, c.logger).Info().Str("func", "*commentService.DeleteComment").
		Int64("comment_id", existing.CommentID).Msg("comment deleted")
	return nil
}

// resolveReferences checks the non-zero ids against the store.
func (c *commentService) resolveReferences(ctx context.Context, userID, videoID int64) error {
	if userID != 0 {
		if _, err := c.userRepository.GetUserByID(ctx, userID); err != nil {
			return fmt.Errorf("error resolving comment author: %w", err)
		}
	}

	if videoID != 0 {
		if _, err := c.videoRepository.GetVideoByID(ctx, videoID); err != nil {
			return fmt.Errorf("error resolving commented video: %w", err)
		}
	}

	return nil
}
