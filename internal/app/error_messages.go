// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// dashcam catalogue HTTP handlers.
//
// The Msg* constants are the fixed strings written into response bodies.
// Keeping them in one place keeps the wording of the API consistent.
package app

const (
	// MsgInternalServerError replaces the details of any server-side failure
	// in the response body. The details are logged instead.
	MsgInternalServerError = "internal server error"

	// MsgStatusOK is the health status reported while the database answers.
	MsgStatusOK = "ok"

	// MsgStatusUnavailable is the health status reported when the database
	// ping fails.
	MsgStatusUnavailable = "unavailable"
)

// Delete acknowledgements, returned in the "contents" field.
const (
	MsgUserDeleted    = "user delete"
	MsgVideoDeleted   = "video delete"
	MsgCommentDeleted = "comment delete"
)
