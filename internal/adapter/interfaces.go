// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound transport used by the service layer.
//
// The primary abstraction is [URLChecker], which decouples the video service
// from the way a submitted video URL is probed for reachability. The package
// ships a resty based implementation ([NewHTTPURLChecker]) and a no-op one
// ([NewNoopURLChecker]) for deployments that disable the check.
//
// Outcomes are reported through the sentinel errors in errors.go so callers
// can use [errors.Is] regardless of the transport.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// URLChecker probes a video URL before it is stored.
type URLChecker interface {
	// Check issues a GET request to rawURL. It returns nil on a 2xx answer,
	// [ErrURLUnreachable] (wrapped) when no answer could be obtained and
	// [ErrURLNotSuccessful] (wrapped) for any other status code.
	Check(ctx context.Context, rawURL string) error
}
