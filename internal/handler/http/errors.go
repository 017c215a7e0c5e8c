// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrAPIKeyMissing is returned by the API key gate when the body of a
	// mutating request is empty, is not a JSON object, or lacks either the
	// "username" or the "api_key" field.
	ErrAPIKeyMissing = errors.New("api key missing")

	// ErrInvalidJSON is returned when a request body cannot be decoded into
	// the expected request model.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidQuery is returned when a list filter in the query string
	// cannot be parsed.
	ErrInvalidQuery = errors.New("invalid query parameter")

	// ErrResourceNotFound is returned for an {id} path segment that is not a
	// positive integer; such a path names no resource.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrBodyTooLarge is returned when a request body exceeds maxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")
)
