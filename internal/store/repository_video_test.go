package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var videoRowColumns = []string{"id", "url", "user_id", "username", "date", "description", "city_id", "name"}

func newTestVideoRepo(t *testing.T) (*videoRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &videoRepository{db: db, logger: logger.Nop()}, mock
}

func ptr[T any](v T) *T {
	return &v
}

func TestCreateVideo_Success(t *testing.T) {
	repo, mock := newTestVideoRepo(t)
	date, _ := models.ParseDate("2000-01-01")

	mock.ExpectQuery(`INSERT INTO videos \(url,user_id,date,description,city_id\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id`).
		WithArgs("https://youtube.com/a", int64(1), "2000-01-01", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(`SELECT v.id, v.url, .* FROM videos v JOIN users u ON u.id = v.user_id LEFT JOIN cities c ON c.id = v.city_id WHERE v.id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(videoRowColumns).
			AddRow(5, "https://youtube.com/a", 1, "alice", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), nil, nil, nil))

	video, err := repo.CreateVideo(context.Background(), models.Video{
		URL:    "https://youtube.com/a",
		UserID: 1,
		Date:   date,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), video.VideoID)
	assert.Equal(t, "alice", video.Username)
	assert.Equal(t, "2000-01-01", video.Date.String())
	assert.Empty(t, video.Description)
	assert.Zero(t, video.CityID)
	assert.Empty(t, video.CityName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVideo_WriteErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "duplicate url", err: pgError(pgerrcode.UniqueViolation), wantErr: ErrVideoURLAlreadyExists},
		{name: "missing owner", err: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrReferenceNotFound},
		{name: "other", err: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestVideoRepo(t)
			mock.ExpectQuery("INSERT INTO videos").WillReturnError(tt.err)

			_, err := repo.CreateVideo(context.Background(), models.Video{URL: "https://youtube.com/a", UserID: 1})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetVideoByID_WithCityAndDescription(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectQuery("SELECT v.id").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(videoRowColumns).
			AddRow(2, "https://youtube.com/b", 1, "alice", "2021-12-31", "crash", 4, "Kazan"))

	video, err := repo.GetVideoByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "crash", video.Description)
	assert.Equal(t, int64(4), video.CityID)
	assert.Equal(t, "Kazan", video.CityName)
	assert.Equal(t, "2021-12-31", video.Date.String())
}

func TestGetVideoByID_NotFound(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectQuery("SELECT v.id").WillReturnRows(sqlmock.NewRows(videoRowColumns))

	_, err := repo.GetVideoByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestListVideos(t *testing.T) {
	date, _ := models.ParseDate("2000-01-01")

	tests := []struct {
		name    string
		filter  models.VideoFilter
		query   string
		args    []driver.Value
		rows    int
		wantLen int
		wantErr error
	}{
		{name: "all", query: `FROM videos v .* ORDER BY v.id$`, rows: 2, wantLen: 2},
		{name: "all empty", query: `ORDER BY v.id$`, rows: 0, wantLen: 0},
		{name: "by url", filter: models.VideoFilter{URL: "https://youtube.com/a"}, query: `WHERE v.url = \$1`, args: []driver.Value{"https://youtube.com/a"}, rows: 1, wantLen: 1},
		{name: "url wins over date", filter: models.VideoFilter{URL: "https://youtube.com/a", Date: date}, query: `WHERE v.url = \$1`, args: []driver.Value{"https://youtube.com/a"}, rows: 1, wantLen: 1},
		{name: "by date", filter: models.VideoFilter{Date: date}, query: `WHERE v.date = \$1`, args: []driver.Value{"2000-01-01"}, rows: 1, wantLen: 1},
		{name: "by date none", filter: models.VideoFilter{Date: date}, query: `WHERE v.date = \$1`, args: []driver.Value{"2000-01-01"}, rows: 0, wantLen: 0, wantErr: ErrVideoNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestVideoRepo(t)

			rows := sqlmock.NewRows(videoRowColumns)
			for i := range tt.rows {
				rows.AddRow(i+1, "https://youtube.com/"+string(rune('a'+i)), 1, "alice", nil, nil, nil, nil)
			}

			expect := mock.ExpectQuery(tt.query)
			if len(tt.args) > 0 {
				expect = expect.WithArgs(tt.args...)
			}
			expect.WillReturnRows(rows)

			videos, err := repo.ListVideos(context.Background(), tt.filter)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NotNil(t, videos)
			assert.Len(t, videos, tt.wantLen)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListVideos_ScanError(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectQuery("SELECT v.id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.ListVideos(context.Background(), models.VideoFilter{})
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestUpdateVideo_OnlySuppliedFields(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectExec(`UPDATE videos SET description = \$1, city_id = \$2 WHERE id = \$3`).
		WithArgs("new", nil, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT v.id").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(videoRowColumns).
			AddRow(2, "https://youtube.com/b", 1, "alice", nil, "new", nil, nil))

	video, err := repo.UpdateVideo(context.Background(), models.VideoUpdate{
		VideoID:     2,
		Description: ptr("new"),
		CityID:      ptr(int64(0)),
	})
	require.NoError(t, err)
	assert.Equal(t, "new", video.Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVideo_EmptyUpdateReadsOnly(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectQuery("SELECT v.id").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(videoRowColumns))

	_, err := repo.UpdateVideo(context.Background(), models.VideoUpdate{VideoID: 2})
	assert.ErrorIs(t, err, ErrVideoNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVideo_Errors(t *testing.T) {
	t.Run("duplicate url", func(t *testing.T) {
		repo, mock := newTestVideoRepo(t)
		mock.ExpectExec("UPDATE videos").WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := repo.UpdateVideo(context.Background(), models.VideoUpdate{VideoID: 2, URL: ptr("https://youtube.com/a")})
		assert.ErrorIs(t, err, ErrVideoURLAlreadyExists)
	})

	t.Run("missing video", func(t *testing.T) {
		repo, mock := newTestVideoRepo(t)
		mock.ExpectExec("UPDATE videos").WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.UpdateVideo(context.Background(), models.VideoUpdate{VideoID: 2, URL: ptr("https://youtube.com/a")})
		assert.ErrorIs(t, err, ErrVideoNotFound)
	})
}

func TestDeleteVideo(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectExec(`DELETE FROM videos WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteVideo(context.Background(), 2))

	mock.ExpectExec("DELETE FROM videos").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteVideo(context.Background(), 2), ErrVideoNotFound)
}

