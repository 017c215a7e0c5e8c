package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/dashcam-catalog/models"
)

// UserValidator implements [Validator] for user models:
// User, UserUpdate and UserFilter.
type UserValidator struct{}

// NewUserValidator constructs a new UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Returns ErrUnsupportedType for anything else.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value, fields...)

	case models.UserFilter:
		return v.validateUserFilter(value)
	case *models.UserFilter:
		return v.validateUserFilter(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateUser checks a user about to be created.
//
// Default validated fields: Username.
func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(user.Username); err != nil {
				return err
			}
		case FieldUserID:
			if err := validateID(user.UserID, ErrInvalidUserID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUserUpdate checks a rename.
//
// Default validated fields: UserID, Username (when provided).
// FieldUsername given explicitly makes the new username required.
func (v *UserValidator) validateUserUpdate(update models.UserUpdate, fields ...string) error {
	required := len(fields) > 0
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if err := validateID(update.UserID, ErrInvalidUserID); err != nil {
				return err
			}
		case FieldUsername:
			if update.Username == nil {
				if required {
					return ErrEmptyUsername
				}
				continue
			}
			if err := validateUsername(*update.Username); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUserFilter accepts any username: a lookup key that cannot exist
// is a miss, not invalid input.
func (v *UserValidator) validateUserFilter(models.UserFilter) error {
	return nil
}

func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	return nil
}
