package crypto

import "errors"

var (
	// ErrMalformedHash is returned when a stored hash cannot be parsed.
	ErrMalformedHash = errors.New("malformed key hash")

	// ErrUnsupportedHashMethod is returned when a stored hash was produced by
	// an algorithm this package does not implement.
	ErrUnsupportedHashMethod = errors.New("unsupported key hash method")
)
