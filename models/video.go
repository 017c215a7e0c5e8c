// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Video is a catalogued dash-cam recording hosted on a video platform.
type Video struct {
	// VideoID is the store-assigned identifier.
	VideoID int64

	// URL is the unique link to the hosted recording.
	URL string

	// UserID references the uploader. Required.
	UserID int64

	// Username is the uploader's username, resolved on read.
	Username string

	// Date is the day the recorded event occurred. Optional.
	Date Date

	// Description is free text. Empty means not set.
	Description string

	// CityID references the city the video was taken in. Zero means not set.
	CityID int64

	// CityName is the referenced city's name, resolved on read.
	CityName string
}

// TableName returns the name of the database table
// associated with the Video model.
func (v Video) TableName() string {
	return "videos"
}

// VideoFilter narrows GET /Videos/. URL wins over Date when both are set.
type VideoFilter struct {
	URL  string
	Date Date
}

// VideoUpdate represents a merge-style update of a single video.
// Only non-nil fields are written.
type VideoUpdate struct {
	VideoID     int64
	URL         *string
	UserID      *int64
	Date        *Date
	Description *string
	CityID      *int64
}

// IsEmpty reports whether the update carries no fields to write.
func (u VideoUpdate) IsEmpty() bool {
	return u.URL == nil && u.UserID == nil && u.Date == nil && u.Description == nil && u.CityID == nil
}
