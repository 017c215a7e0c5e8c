// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the username + API key pair every mutating request echoes
// in its JSON body. The fields are embedded into each request type so the
// body shape stays flat.
type Credentials struct {
	Username string `json:"username"`
	APIKey   string `json:"api_key"`
}

// CreateUserRequest is the body of POST /Users/.
type CreateUserRequest struct {
	Username string `json:"username"`
}

// UpdateUserRequest is the body of PUT/PATCH /Users/{id}.
//
// Username and APIKey identify the caller; NewUsername is the desired new
// name of the target record.
type UpdateUserRequest struct {
	Credentials

	NewUsername *string `json:"new_username,omitempty"`
}

// VideoRequest is the body of POST /Videos/ and PUT/PATCH /Videos/{id}.
// Pointer fields distinguish "absent" from "zero".
type VideoRequest struct {
	Credentials

	URL         *string `json:"url,omitempty"`
	UserID      *int64  `json:"user_id,omitempty"`
	Date        *Date   `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
	CityID      *int64  `json:"city_id,omitempty"`
}

// CommentRequest is the body of POST /Comments/ and PUT/PATCH /Comments/{id}.
type CommentRequest struct {
	Credentials

	UserID  *int64  `json:"user_id,omitempty"`
	VideoID *int64  `json:"video_id,omitempty"`
	Body    *string `json:"body,omitempty"`
}
