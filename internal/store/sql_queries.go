// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/dashcam-catalog/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{"id", "username", "key_hash"}

	videoColumns = []string{
		"v.id",
		"v.url",
		"v.user_id",
		"u.username",
		"v.date",
		"v.description",
		"v.city_id",
		"c.name",
	}

	commentColumns = []string{
		"cm.id",
		"cm.body",
		"cm.user_id",
		"u.username",
		"cm.video_id",
		"v.url",
	}
)

// ─── users ────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return wrapBuild(b.Insert(user.TableName()).
		Columns("username", "key_hash").
		Values(user.Username, user.KeyHash).
		Suffix("RETURNING id").
		ToSql())
}

func buildSelectUsersQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query := b.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id")
	if len(where) > 0 {
		query = query.Where(where)
	}

	return wrapBuild(query.ToSql())
}

func buildUpdateUsernameQuery(b sq.StatementBuilderType, userID int64, username string) (string, []any, error) {
	return wrapBuild(b.Update(models.User{}.TableName()).
		Set("username", username).
		Where(sq.Eq{"id": userID}).
		ToSql())
}

// ─── videos ───────────────────────────────────────────────────────────────────

func buildCreateVideoQuery(b sq.StatementBuilderType, video models.Video) (string, []any, error) {
	return wrapBuild(b.Insert(video.TableName()).
		Columns("url", "user_id", "date", "description", "city_id").
		Values(video.URL, video.UserID, video.Date, nullString(video.Description), nullInt64(video.CityID)).
		Suffix("RETURNING id").
		ToSql())
}

func selectVideos(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(videoColumns...).
		From("videos v").
		Join("users u ON u.id = v.user_id").
		LeftJoin("cities c ON c.id = v.city_id").
		OrderBy("v.id")
}

func buildSelectVideoByIDQuery(b sq.StatementBuilderType, videoID int64) (string, []any, error) {
	return wrapBuild(selectVideos(b).Where(sq.Eq{"v.id": videoID}).ToSql())
}

// buildSelectVideosQuery applies at most one filter: url wins over date.
func buildSelectVideosQuery(b sq.StatementBuilderType, filter models.VideoFilter) (string, []any, error) {
	query := selectVideos(b)

	switch {
	case filter.URL != "":
		query = query.Where(sq.Eq{"v.url": filter.URL})
	case filter.Date.Valid:
		query = query.Where(sq.Eq{"v.date": filter.Date})
	}

	return wrapBuild(query.ToSql())
}

func buildUpdateVideoQuery(b sq.StatementBuilderType, update models.VideoUpdate) (string, []any, error) {
	query := b.Update(models.Video{}.TableName())

	if update.URL != nil {
		query = query.Set("url", *update.URL)
	}
	if update.UserID != nil {
		query = query.Set("user_id", *update.UserID)
	}
	if update.Date != nil {
		query = query.Set("date", *update.Date)
	}
	if update.Description != nil {
		query = query.Set("description", nullString(*update.Description))
	}
	if update.CityID != nil {
		query = query.Set("city_id", nullInt64(*update.CityID))
	}

	return wrapBuild(query.Where(sq.Eq{"id": update.VideoID}).ToSql())
}

// ─── comments ─────────────────────────────────────────────────────────────────

func buildCreateCommentQuery(b sq.StatementBuilderType, comment models.Comment) (string, []any, error) {
	return wrapBuild(b.Insert(comment.TableName()).
		Columns("body", "user_id", "video_id").
		Values(comment.Body, comment.UserID, comment.VideoID).
		Suffix("RETURNING id").
		ToSql())
}

func selectComments(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(commentColumns...).
		From("comments cm").
		Join("users u ON u.id = cm.user_id").
		Join("videos v ON v.id = cm.video_id").
		OrderBy("cm.id")
}

func buildSelectCommentByIDQuery(b sq.StatementBuilderType, commentID int64) (string, []any, error) {
	return wrapBuild(selectComments(b).Where(sq.Eq{"cm.id": commentID}).ToSql())
}

// buildSelectCommentsQuery applies at most one filter: video wins over user.
func buildSelectCommentsQuery(b sq.StatementBuilderType, filter models.CommentFilter) (string, []any, error) {
	query := selectComments(b)

	switch {
	case filter.VideoID != 0:
		query = query.Where(sq.Eq{"cm.video_id": filter.VideoID})
	case filter.UserID != 0:
		query = query.Where(sq.Eq{"cm.user_id": filter.UserID})
	}

	return wrapBuild(query.ToSql())
}

func buildUpdateCommentQuery(b sq.StatementBuilderType, update models.CommentUpdate) (string, []any, error) {
	query := b.Update(models.Comment{}.TableName())

	if update.Body != nil {
		query = query.Set("body", *update.Body)
	}
	if update.UserID != nil {
		query = query.Set("user_id", *update.UserID)
	}
	if update.VideoID != nil {
		query = query.Set("video_id", *update.VideoID)
	}

	return wrapBuild(query.Where(sq.Eq{"id": update.CommentID}).ToSql())
}

// ─── cities ───────────────────────────────────────────────────────────────────

func buildSelectCityByIDQuery(b sq.StatementBuilderType, cityID int64) (string, []any, error) {
	return wrapBuild(b.Select("id", "name").
		From(models.City{}.TableName()).
		Where(sq.Eq{"id": cityID}).
		ToSql())
}

// ─── shared ───────────────────────────────────────────────────────────────────

func buildDeleteByIDQuery(b sq.StatementBuilderType, table string, id int64) (string, []any, error) {
	return wrapBuild(b.Delete(table).Where(sq.Eq{"id": id}).ToSql())
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(i int64) sql.NullInt64 {
	return sql.NullInt64{Int64: i, Valid: i != 0}
}
