package adapter

import "errors"

var (
	ErrURLUnreachable   = errors.New("video url is unreachable")
	ErrURLNotSuccessful = errors.New("video url did not answer with success")
)
