package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dashcam-catalog/internal/validators"
	"github.com/MKhiriev/dashcam-catalog/models"
)

// invalid joins a validator error with ErrInvalidDataProvided so callers can
// match either.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

// ── users ───────────────────────────────────────────────────────────────────

type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, invalid(err)
	}

	return v.inner.ListUsers(ctx, filter)
}

func (v *UserValidationService) CreateUser(ctx context.Context, username string) (models.User, string, error) {
	if err := v.validator.Validate(ctx, models.User{Username: username}, validators.FieldUsername); err != nil {
		return models.User{}, "", invalid(err)
	}

	return v.inner.CreateUser(ctx, username)
}

func (v *UserValidationService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.GetUser(ctx, userID)
}

// UpdateUser requires the new username on a full update.
func (v *UserValidationService) UpdateUser(ctx context.Context, update models.UserUpdate, full bool) (models.User, error) {
	fields := []string{}
	if full {
		fields = []string{validators.FieldUserID, validators.FieldUsername}
	}

	if err := v.validator.Validate(ctx, update, fields...); err != nil {
		return models.User{}, invalid(err)
	}

	return v.inner.UpdateUser(ctx, update, full)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, userID int64) error {
	return v.inner.DeleteUser(ctx, userID)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

// ── videos ──────────────────────────────────────────────────────────────────

type VideoValidationService struct {
	inner     VideoService
	validator validators.Validator
}

// NewVideoValidationService accepts video urls on allowedHosts only.
func NewVideoValidationService(allowedHosts []string) VideoServiceWrapper {
	return &VideoValidationService{
		validator: validators.NewVideoValidator(allowedHosts),
	}
}

func (v *VideoValidationService) ListVideos(ctx context.Context, filter models.VideoFilter) ([]models.Video, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, invalid(err)
	}

	return v.inner.ListVideos(ctx, filter)
}

func (v *VideoValidationService) CreateVideo(ctx context.Context, video models.Video) (models.Video, error) {
	if err := v.validator.Validate(ctx, video); err != nil {
		return models.Video{}, invalid(err)
	}

	return v.inner.CreateVideo(ctx, video)
}

func (v *VideoValidationService) GetVideo(ctx context.Context, videoID int64) (models.Video, error) {
	return v.inner.GetVideo(ctx, videoID)
}

// UpdateVideo requires url and user_id on a full update.
func (v *VideoValidationService) UpdateVideo(ctx context.Context, update models.VideoUpdate, full bool) (models.Video, error) {
	fields := []string{}
	if full {
		fields = []string{validators.FieldVideoID, validators.FieldURL, validators.FieldUserID, validators.FieldCityID}
	}

	if err := v.validator.Validate(ctx, update, fields...); err != nil {
		return models.Video{}, invalid(err)
	}

	return v.inner.UpdateVideo(ctx, update, full)
}

func (v *VideoValidationService) DeleteVideo(ctx context.Context, videoID int64) error {
	return v.inner.DeleteVideo(ctx, videoID)
}

func (v *VideoValidationService) Wrap(wrapped VideoService) VideoService {
	v.inner = wrapped
	return v
}

// ── comments ────────────────────────────────────────────────────────────────

type CommentValidationService struct {
	inner     CommentService
	validator validators.Validator
}

func NewCommentValidationService() CommentServiceWrapper {
	return &CommentValidationService{
		validator: validators.NewCommentValidator(),
	}
}

func (v *CommentValidationService) ListComments(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, invalid(err)
	}

	return v.inner.ListComments(ctx, filter)
}

func (v *CommentValidationService) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if err := v.validator.Validate(ctx, comment); err != nil {
		return models.Comment{}, invalid(err)
	}

	return v.inner.CreateComment(ctx, comment)
}

func (v *CommentValidationService) GetComment(ctx context.Context, commentID int64) (models.Comment, error) {
	return v.inner.GetComment(ctx, commentID)
}

// UpdateComment always requires the body; a full update also requires both
// references. Optional references are still checked when present.
func (v *CommentValidationService) UpdateComment(ctx context.Context, update models.CommentUpdate, full bool) (models.Comment, error) {
	required := []string{validators.FieldCommentID, validators.FieldBody}
	if full {
		required = append(required, validators.FieldUserID, validators.FieldVideoID)
	}

	if err := v.validator.Validate(ctx, update, required...); err != nil {
		return models.Comment{}, invalid(err)
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Comment{}, invalid(err)
	}

	return v.inner.UpdateComment(ctx, update, full)
}

func (v *CommentValidationService) DeleteComment(ctx context.Context, commentID int64) error {
	return v.inner.DeleteComment(ctx, commentID)
}

func (v *CommentValidationService) Wrap(wrapped CommentService) CommentService {
	v.inner = wrapped
	return v
}
