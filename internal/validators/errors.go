package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername     = errors.New("username is required")
	ErrUsernameTooLong   = errors.New("username is too long")
	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidVideoID    = errors.New("invalid video ID")
	ErrInvalidCommentID  = errors.New("invalid comment ID")
	ErrInvalidCityID     = errors.New("invalid city ID")
	ErrEmptyURL          = errors.New("url is required")
	ErrURLTooLong        = errors.New("url is too long")
	ErrInvalidURL        = errors.New("invalid url")
	ErrURLHostNotAllowed = errors.New("url host is not allowed")
	ErrEmptyBody         = errors.New("comment body is required")
)
