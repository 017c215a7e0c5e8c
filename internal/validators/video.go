package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/dashcam-catalog/models"
)

// VideoValidator implements [Validator] for video models:
// Video, VideoUpdate and VideoFilter.
//
// URLs must use http or https, point at one of the allowed hosts and fit
// the url column.
type VideoValidator struct {
	allowedHosts map[string]struct{}
}

// NewVideoValidator constructs a VideoValidator accepting URLs on the given
// hosts. Host matching is case-insensitive.
func NewVideoValidator(allowedHosts []string) Validator {
	hosts := make(map[string]struct{}, len(allowedHosts))
	for _, h := range allowedHosts {
		hosts[strings.ToLower(strings.TrimSpace(h))] = struct{}{}
	}

	return &VideoValidator{allowedHosts: hosts}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Returns ErrUnsupportedType for anything else.
func (v *VideoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Video:
		return v.validateVideo(value, fields...)
	case *models.Video:
		return v.validateVideo(*value, fields...)

	case models.VideoUpdate:
		return v.validateVideoUpdate(value, fields...)
	case *models.VideoUpdate:
		return v.validateVideoUpdate(*value, fields...)

	case models.VideoFilter:
		return v.validateVideoFilter(value)
	case *models.VideoFilter:
		return v.validateVideoFilter(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateVideo checks a video about to be created.
//
// Default validated fields: URL, UserID, CityID.
func (v *VideoValidator) validateVideo(video models.Video, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURL, FieldUserID, FieldCityID}
	}

	for _, f := range fields {
		switch f {
		case FieldVideoID:
			if err := validateID(video.VideoID, ErrInvalidVideoID); err != nil {
				return err
			}
		case FieldURL:
			if err := v.validateURL(video.URL); err != nil {
				return err
			}
		case FieldUserID:
			if err := validateID(video.UserID, ErrInvalidUserID); err != nil {
				return err
			}
		case FieldCityID:
			if err := validateOptionalID(video.CityID, ErrInvalidCityID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateVideoUpdate checks a merge-style update. Nil fields are skipped
// unless named explicitly, in which case they become required.
//
// Default validated fields: VideoID, URL, UserID, CityID.
func (v *VideoValidator) validateVideoUpdate(update models.VideoUpdate, fields ...string) error {
	required := len(fields) > 0
	if len(fields) == 0 {
		fields = []string{FieldVideoID, FieldURL, FieldUserID, FieldCityID}
	}

	for _, f := range fields {
		switch f {
		case FieldVideoID:
			if err := validateID(update.VideoID, ErrInvalidVideoID); err != nil {
				return err
			}
		case FieldURL:
			if update.URL == nil {
				if required {
					return ErrEmptyURL
				}
				continue
			}
			if err := v.validateURL(*update.URL); err != nil {
				return err
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
		case FieldCityID:
			if update.CityID == nil {
				continue
			}
			if err := validateOptionalID(*update.CityID, ErrInvalidCityID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateVideoFilter checks only the URL, and only when it is set.
func (v *VideoValidator) validateVideoFilter(filter models.VideoFilter) error {
	if filter.URL == "" {
		return nil
	}
	return v.validateURL(filter.URL)
}

func (v *VideoValidator) validateURL(raw string) error {
	if raw == "" {
		return ErrEmptyURL
	}
	if len(raw) > MaxURLLength {
		return ErrURLTooLong
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidURL
	}
	if u.Hostname() == "" {
		return ErrInvalidURL
	}

	if _, ok := v.allowedHosts[strings.ToLower(u.Hostname())]; !ok {
		return ErrURLHostNotAllowed
	}

	return nil
}
