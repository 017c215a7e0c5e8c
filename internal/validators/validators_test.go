// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/dashcam-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

var testHosts = []string{"youtube.com", "www.youtube.com"}

func validVideo() models.Video {
	return models.Video{URL: "https://youtube.com/watch?v=abc", UserID: 1}
}

func validComment() models.Comment {
	return models.Comment{Body: "nice crash", UserID: 1, VideoID: 2}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_UnsupportedType(t *testing.T) {
	ctx := context.Background()
	for name, v := range map[string]Validator{
		"user":    NewUserValidator(),
		"video":   NewVideoValidator(testHosts),
		"comment": NewCommentValidator(),
	} {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
		})
	}
}

func TestValidate_UnknownField(t *testing.T) {
	ctx := context.Background()

	assert.ErrorIs(t, NewUserValidator().Validate(ctx, models.User{Username: "alice"}, "nope"), ErrUnknownField)
	assert.ErrorIs(t, NewVideoValidator(testHosts).Validate(ctx, validVideo(), "nope"), ErrUnknownField)
	assert.ErrorIs(t, NewCommentValidator().Validate(ctx, validComment(), "nope"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func TestUserValidator_User(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		user    models.User
		wantErr error
	}{
		{name: "valid", user: models.User{Username: "alice"}},
		{name: "exactly max length", user: models.User{Username: strings.Repeat("a", MaxUsernameLength)}},
		{name: "multibyte within limit", user: models.User{Username: strings.Repeat("ж", MaxUsernameLength)}},
		{name: "empty", user: models.User{}, wantErr: ErrEmptyUsername},
		{name: "whitespace only", user: models.User{Username: "  \t "}, wantErr: ErrEmptyUsername},
		{name: "too long", user: models.User{Username: strings.Repeat("a", MaxUsernameLength+1)}, wantErr: ErrUsernameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.user)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	t.Run("pointer", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, &models.User{Username: "bob"}))
	})
	t.Run("user id", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.User{Username: "bob"}, FieldUserID), ErrInvalidUserID)
	})
}

func TestUserValidator_UserUpdate(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("patch without username", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.UserUpdate{UserID: 1}))
	})
	t.Run("patch with invalid username", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.UserUpdate{UserID: 1, Username: ptr("")}), ErrEmptyUsername)
	})
	t.Run("put requires username", func(t *testing.T) {
		err := v.Validate(ctx, &models.UserUpdate{UserID: 1}, FieldUserID, FieldUsername)
		assert.ErrorIs(t, err, ErrEmptyUsername)
	})
	t.Run("put with username", func(t *testing.T) {
		err := v.Validate(ctx, models.UserUpdate{UserID: 1, Username: ptr("carol")}, FieldUserID, FieldUsername)
		assert.NoError(t, err)
	})
	t.Run("invalid id", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.UserUpdate{Username: ptr("carol")}), ErrInvalidUserID)
	})
}

func TestUserValidator_UserFilter(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.UserFilter{}))
	assert.NoError(t, v.Validate(ctx, &models.UserFilter{Username: "alice"}))
	assert.NoError(t, v.Validate(ctx, models.UserFilter{Username: strings.Repeat("a", MaxUsernameLength+10)}))
}

// ---------------------------------------------------------------------------
// Videos
// ---------------------------------------------------------------------------

func TestVideoValidator_URL(t *testing.T) {
	v := NewVideoValidator(testHosts)
	ctx := context.Background()

	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{name: "https", url: "https://youtube.com"},
		{name: "http with path", url: "http://youtube.com/"},
		{name: "www host", url: "https://www.youtube.com/watch?v=abc"},
		{name: "host case insensitive", url: "https://YouTube.com/watch"},
		{name: "host with port", url: "https://youtube.com:443/watch"},
		{name: "empty", url: "", wantErr: ErrEmptyURL},
		{name: "ftp scheme", url: "ftp://youtube.com/video", wantErr: ErrInvalidURL},
		{name: "no scheme", url: "youtube.com/watch", wantErr: ErrInvalidURL},
		{name: "garbage", url: "://bad", wantErr: ErrInvalidURL},
		{name: "other host", url: "https://vimeo.com/123", wantErr: ErrURLHostNotAllowed},
		{name: "lookalike host", url: "https://youtube.com.evil.org/", wantErr: ErrURLHostNotAllowed},
		{name: "too long", url: "https://youtube.com/" + strings.Repeat("a", MaxURLLength), wantErr: ErrURLTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video := validVideo()
			video.URL = tt.url

			err := v.Validate(ctx, video)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestVideoValidator_Video(t *testing.T) {
	v := NewVideoValidator(testHosts)
	ctx := context.Background()

	t.Run("missing owner", func(t *testing.T) {
		video := validVideo()
		video.UserID = 0
		assert.ErrorIs(t, v.Validate(ctx, &video), ErrInvalidUserID)
	})
	t.Run("negative city", func(t *testing.T) {
		video := validVideo()
		video.CityID = -1
		assert.ErrorIs(t, v.Validate(ctx, video), ErrInvalidCityID)
	})
	t.Run("video id scoped", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, validVideo(), FieldVideoID), ErrInvalidVideoID)
	})
}

func TestVideoValidator_VideoUpdate(t *testing.T) {
	v := NewVideoValidator(testHosts)
	ctx := context.Background()

	t.Run("patch with description only", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.VideoUpdate{VideoID: 1, Description: ptr("rain")}))
	})
	t.Run("patch with bad url", func(t *testing.T) {
		err := v.Validate(ctx, models.VideoUpdate{VideoID: 1, URL: ptr("https://vimeo.com/1")})
		assert.ErrorIs(t, err, ErrURLHostNotAllowed)
	})
	t.Run("put requires url", func(t *testing.T) {
		err := v.Validate(ctx, models.VideoUpdate{VideoID: 1, UserID: ptr(int64(1))}, FieldVideoID, FieldURL, FieldUserID)
		assert.ErrorIs(t, err, ErrEmptyURL)
	})
	t.Run("put requires user id", func(t *testing.T) {
		err := v.Validate(ctx, &models.VideoUpdate{VideoID: 1, URL: ptr("https://youtube.com")}, FieldVideoID, FieldURL, FieldUserID)
		assert.ErrorIs(t, err, ErrInvalidUserID)
	})
	t.Run("city zero clears", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.VideoUpdate{VideoID: 1, CityID: ptr(int64(0))}))
	})
	t.Run("negative city", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.VideoUpdate{VideoID: 1, CityID: ptr(int64(-2))}), ErrInvalidCityID)
	})
	t.Run("missing id", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.VideoUpdate{}), ErrInvalidVideoID)
	})
}

func TestVideoValidator_VideoFilter(t *testing.T) {
	v := NewVideoValidator(testHosts)
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.VideoFilter{}))
	assert.NoError(t, v.Validate(ctx, &models.VideoFilter{URL: "https://youtube.com"}))
	assert.ErrorIs(t, v.Validate(ctx, models.VideoFilter{URL: "not a url"}), ErrInvalidURL)
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

func TestCommentValidator_Comment(t *testing.T) {
	v := NewCommentValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(c *models.Comment)
		wantErr error
	}{
		{name: "valid", mutate: func(c *models.Comment) {}},
		{name: "empty body", mutate: func(c *models.Comment) { c.Body = "" }, wantErr: ErrEmptyBody},
		{name: "blank body", mutate: func(c *models.Comment) { c.Body = "  \n" }, wantErr: ErrEmptyBody},
		{name: "no user", mutate: func(c *models.Comment) { c.UserID = 0 }, wantErr: ErrInvalidUserID},
		{name: "no video", mutate: func(c *models.Comment) { c.VideoID = -4 }, wantErr: ErrInvalidVideoID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validComment()
			tt.mutate(&c)

			err := v.Validate(ctx, &c)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCommentValidator_CommentUpdate(t *testing.T) {
	v := NewCommentValidator()
	ctx := context.Background()

	t.Run("patch body", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.CommentUpdate{CommentID: 1, Body: ptr("edited")}, FieldCommentID, FieldBody))
	})
	t.Run("patch requires body", func(t *testing.T) {
		err := v.Validate(ctx, models.CommentUpdate{CommentID: 1}, FieldCommentID, FieldBody)
		assert.ErrorIs(t, err, ErrEmptyBody)
	})
	t.Run("put requires video", func(t *testing.T) {
		err := v.Validate(ctx, &models.CommentUpdate{CommentID: 1, Body: ptr("x"), UserID: ptr(int64(1))},
			FieldCommentID, FieldBody, FieldUserID, FieldVideoID)
		assert.ErrorIs(t, err, ErrInvalidVideoID)
	})
	t.Run("optional fields validated when set", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.CommentUpdate{CommentID: 1, UserID: ptr(int64(0))}), ErrInvalidUserID)
	})
}

func TestCommentValidator_CommentFilter(t *testing.T) {
	v := NewCommentValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CommentFilter{}))
	assert.NoError(t, v.Validate(ctx, &models.CommentFilter{VideoID: 3}))
	assert.ErrorIs(t, v.Validate(ctx, models.CommentFilter{UserID: -1}), ErrInvalidUserID)
	assert.ErrorIs(t, v.Validate(ctx, models.CommentFilter{VideoID: -1}), ErrInvalidVideoID)
}
