package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/dashcam-catalog/models"
)

// CommentValidator implements [Validator] for comment models:
// Comment, CommentUpdate and CommentFilter.
type CommentValidator struct{}

// NewCommentValidator constructs a new CommentValidator and returns it as
// the Validator interface.
func NewCommentValidator() Validator {
	return &CommentValidator{}
}

func (v *CommentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Comment:
		return v.validateComment(value, fields...)
	case *models.Comment:
		return v.validateComment(*value, fields...)

	case models.CommentUpdate:
		return v.validateCommentUpdate(value, fields...)
	case *models.CommentUpdate:
		return v.validateCommentUpdate(*value, fields...)

	case models.CommentFilter:
		return v.validateCommentFilter(value)
	case *models.CommentFilter:
		return v.validateCommentFilter(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateComment checks a comment about to be created.
//
// Default validated fields: Body, UserID, VideoID.
func (v *CommentValidator) validateComment(comment models.Comment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBody, FieldUserID, FieldVideoID}
	}

	for _, f := range fields {
		switch f {
		case FieldCommentID:
			if err := validateID(comment.CommentID, ErrInvalidCommentID); err != nil {
				return err
			}
		case FieldBody:
			if strings.TrimSpace(comment.Body) == "" {
				return ErrEmptyBody
			}
		case FieldUserID:
			if err := validateID(comment.UserID, ErrInvalidUserID); err != nil {
				return err
			}
		case FieldVideoID:
			if err := validateID(comment.VideoID, ErrInvalidVideoID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCommentUpdate checks a merge-style update. Nil fields are skipped
// unless named explicitly, in which case they become required.
//
// Default validated fields: CommentID, Body, UserID, VideoID.
func (v *CommentValidator) validateCommentUpdate(update models.CommentUpdate, fields ...string) error {
	required := len(fields) > 0
	if len(fields) == 0 {
		fields = []string{FieldCommentID, FieldBody, FieldUserID, FieldVideoID}
	}

	for _, f := range fields {
		switch f {
		case FieldCommentID:
			if err := validateID(update.CommentID, ErrInvalidCommentID); err != nil {
				return err
			}
		case FieldBody:
			if update.Body == nil {
				if required {
					return ErrEmptyBody
				}
				continue
			}
			if strings.TrimSpace(*update.Body) == "" {
				return ErrEmptyBody
			}
		case FieldUserID:
			if update.UserID == nil {
				if required {
					return ErrInvalidUserID
				}
				continue
			}
			if err := validateID(*update.UserID, ErrInvalidUserID); err != nil {
				return err
			}
		case FieldVideoID:
			if update.VideoID == nil {
				if required {
					return ErrInvalidVideoID
				}
				continue
			}
			if err := validateID(*update.VideoID, ErrInvalidVideoID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCommentFilter rejects negative ids; zero means "not set".
func (v *CommentValidator) validateCommentFilter(filter models.CommentFilter) error {
	if err := validateOptionalID(filter.UserID, ErrInvalidUserID); err != nil {
		return err
	}
	return validateOptionalID(filter.VideoID, ErrInvalidVideoID)
}
