package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredential   = errors.New("invalid api key")

	ErrUnauthorizedAccessToDifferentUserData = errors.New("unauthorized access to different user data")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
