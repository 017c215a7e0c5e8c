// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an uploader/commenter account.
//
// The plain API key is never stored: only KeyHash is persisted and it is never
// exposed via JSON. The plain key exists in memory exactly once, at creation
// time, and is delivered to the caller in [CreatedUserResponse].
type User struct {
	// UserID is the store-assigned identifier.
	UserID int64 `json:"id"`

	// Username is globally unique and case-sensitive.
	Username string `json:"username"`

	// KeyHash is the encoded salted hash of the user's API key.
	KeyHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserFilter narrows GET /Users/ to an exact username match.
type UserFilter struct {
	Username string
}

// UserUpdate carries a rename request for a user record.
// A nil Username means "do not change".
type UserUpdate struct {
	UserID   int64
	Username *string
}
