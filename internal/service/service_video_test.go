package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/dashcam-catalog/internal/adapter"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/mock"
	"github.com/MKhiriev/dashcam-catalog/internal/store"
	"github.com/MKhiriev/dashcam-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testURL = "https://youtube.com/watch?v=abc"

type videoMocks struct {
	videos  *mock.MockVideoRepository
	users   *mock.MockUserRepository
	cities  *mock.MockCityRepository
	checker *mock.MockURLChecker
}

func newTestVideoSvc(t *testing.T, ctrl *gomock.Controller) (VideoService, videoMocks) {
	t.Helper()
	m := videoMocks{
		videos:  mock.NewMockVideoRepository(ctrl),
		users:   mock.NewMockUserRepository(ctrl),
		cities:  mock.NewMockCityRepository(ctrl),
		checker: mock.NewMockURLChecker(ctrl),
	}
	storages := &store.Storages{
		UserRepository:  m.users,
		VideoRepository: m.videos,
		CityRepository:  m.cities,
	}
	return NewVideoService(storages, m.checker, logger.Nop()), m
}

func aliceVideo() models.Video {
	return models.Video{VideoID: 5, URL: testURL, UserID: 1, Username: "alice"}
}

// ── ListVideos ───────────────────────────────────────────────────────────────

func TestVideoService_ListVideos_PassesFilterThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestVideoSvc(t, ctrl)
	ctx := context.Background()
	filter := models.VideoFilter{URL: testURL}

	m.videos.EXPECT().ListVideos(ctx, filter).Return([]models.Video{}, store.ErrVideoNotFound)

	got, err := svc.ListVideos(ctx, filter)
	assert.ErrorIs(t, err, store.ErrVideoNotFound)
	assert.Empty(t, got)
}

// ── CreateVideo ──────────────────────────────────────────────────────────────

func TestVideoService_CreateVideo(t *testing.T) {
	ctx := context.Background()

	t.Run("success with city", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestVideoSvc(t, ctrl)
		in := models.Video{URL: testURL, UserID: 1, CityID: 3}

		gomock.InOrder(
			m.checker.EXPECT().Check(ctx, testURL).Return(nil),
			m.videos.EXPECT().ListVideos(ctx, models.VideoFilter{URL: testURL}).Return([]models.Video{}, store.ErrVideoNotFound),
			m.users.EXPECT().GetUserByID(ctx, int64(1)).Return(alice, nil),
			m.cities.EXPECT().GetCityByID(ctx, int64(3)).Return(models.City{CityID: 3, Name: "Kazan"}, nil),
			m.videos.EXPECT().CreateVideo(ctx, in).Return(models.Video{VideoID: 5, URL: testURL, UserID: 1, CityID: 3, CityName: "Kazan"}, nil),
		)

		got, err := svc.CreateVideo(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.VideoID)
		assert.Equal(t, "Kazan", got.CityName)
	})

	t.Run("url unreachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestVideoSvc(t, ctrl)
		m.checker.EXPECT().Check(ctx, testURL).Return(adapter.ErrURLUnreachable)

		_, err := svc.CreateVideo(ctx, models.Video{URL: testURL, UserID: 1})
		assert.ErrorIs(t, err, adapter.ErrURLUnreachable)
	})

	t.Run("url not successful", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestVideoSvc(t, ctrl)
		m.checker.EXPECT().Check(ctx, testURL).Return(adapter.ErrURLNotSuccessful)

		_, err := svc.CreateVideo(ctx, models.Video{URL: testURL, UserID: 1})
		assert.ErrorIs(t, err, adapter.ErrURLNotSuccessful)
	})

	t.Run("duplicate url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestVideoSvc(t, ctrl)
		m.checker.EXPECT().Check(ctx, testURL).Return(nil)
		m.videos.EXPECT().ListVideos(ctx, models.VideoFilter{URL: testURL}).Return([]models.Video{aliceVideo()}, nil)

		_, err := svc.CreateVideo(ctx, models.Video{URL: testURL, UserID: 1})
		assert.ErrorIs(t, err, store.ErrVideoURLAlreadyExists)
	})

	t.Run("owner missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestVideoSvc(t, ctrl)
		m.checker.EXPECT().Check(ctx, testURL).Return(nil)
		m.videos.EXPECT().ListVideos(ctx, gomock.Any()).Return([]models.Video{}, store.ErrVideoNotFound)
		m.users.EXPECT().GetUserByID(ctx, int64(42)).Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.CreateVideo(ctx, models.Video{URL: testURL, UserID: 42})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("city missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestVideoSvc(t, ctrl)
		m.checker.EXPECT().Check(ctx, testURL).Return(nil)
		m.videos.EXPECT().ListVideos(ctx, gomock.Any()).Return([]models.Video{}, store.ErrVideoNotFound)
		m.users.EXPECT().GetUserByID(ctx, int64(1)).Return(alice, nil)
		m.cities.EXPECT().GetCityByID(ctx, int64(9)).Return(models.City{}, store.ErrCityNotFound)

		_, err := svc.CreateVideo(ctx, models.Video{URL: testURL, UserID: 1, CityID: 9})
		assert.ErrorIs(t, err, store.ErrCityNotFound)
	})
}

// ── UpdateVideo ──────────────────────────────────────────────────────────────

func TestVideoService_UpdateVideo(t *testing.T) {
	t.Run("description only skips url checks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestVideoSvc(t, ctrl)
		ctx := asCaller(1)
		update := models.VideoUpdate{VideoID: 5, Description: ptr("night drive")}

		m.videos.EXPECT().GetVideoByID(ctx, int64(5)).Return(aliceVideo(), nil)
		m.videos.EXPECT().UpdateVideo(ctx, update).Return(models.Video{VideoID: 5, Description: "night drive"}, nil)

		got, err := svc.UpdateVideo(ctx, update, false)
		require.NoError(t, err)
		assert.Equal(t, "night drive", got.Description)
	})

	t.Run("keeping own url is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestVideoSvc(t, ctrl)
		ctx := asCaller(1)
		update := models.VideoUpdate{VideoID: 5, URL: ptr(testURL), UserID: ptr(int64(1))}

		m.videos.EXPECT().GetVideoByID(ctx, int64(5)).Return(aliceVideo(), nil)
		m.checker.EXPECT().Check(ctx, testURL).Return(nil)
		m.videos.EXPECT().ListVideos(ctx, models.VideoFilter{URL: testURL}).Return([]models.Video{aliceVideo()}, nil)
		m.videos.EXPECT().UpdateVideo(ctx, update).Return(aliceVideo(), nil)

		_, err := svc.UpdateVideo(ctx, update, true)
		require.NoError(t, err)
	})

	t.Run("url taken by another video", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestVideoSvc(t, ctrl)
		ctx := asCaller(1)
		other := "https://youtube.com/watch?v=other"

		m.videos.EXPECT().GetVideoByID(ctx, int64(5)).Return(aliceVideo(), nil)
		m.checker.EXPECT().Check(ctx, other).Return(nil)
		m.videos.EXPECT().ListVideos(ctx, models.VideoFilter{URL: other}).Return([]models.Video{{VideoID: 6, URL: other}}, nil)

		_, err := svc.UpdateVideo(ctx, models.VideoUpdate{VideoID: 5, URL: ptr(other)}, false)
		assert.ErrorIs(t, err, store.ErrVideoURLAlreadyExists)
	})

	t.Run("reassign to missing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestVideoSvc(t, ctrl)
		ctx := asCaller(1)

		m.videos.EXPECT().GetVideoByID(ctx, int64(5)).Return(aliceVideo(), nil)
		m.users.EXPECT().GetUserByID(ctx, int64(8)).Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.UpdateVideo(ctx, models.VideoUpdate{VideoID: 5, UserID: ptr(int64(8))}, false)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("clearing city skips lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestVideoSvc(t, ctrl)
		ctx := asCaller(1)
		update := models.VideoUpdate{VideoID: 5, CityID: ptr(int64(0))}

		m.videos.EXPECT().GetVideoByID(ctx, int64(5)).Return(aliceVideo(), nil)
		m.videos.EXPECT().UpdateVideo(ctx, update).Return(aliceVideo(), nil)

		_, err := svc.UpdateVideo(ctx, update, false)
		require.NoError(t, err)
	})

	t.Run("empty update returns current record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestVideoSvc(t, ctrl)
		ctx := asCaller(1)
		m.videos.EXPECT().GetVideoByID(ctx, int64(5)).Return(aliceVideo(), nil)

		got, err := svc.UpdateVideo(ctx, models.VideoUpdate{VideoID: 5}, false)
		require.NoError(t, err)
		assert.Equal(t, aliceVideo(), got)
	})

	t.Run("not the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestVideoSvc(t, ctrl)
		ctx := asCaller(2)
		m.videos.EXPECT().GetVideoByID(ctx, int64(5)).Return(aliceVideo(), nil)

		_, err := svc.UpdateVideo(ctx, models.VideoUpdate{VideoID: 5, Description: ptr("mine now")}, false)
		assert.ErrorIs(t, err, ErrUnauthorizedAccessToDifferentUserData)
	})

	t.Run("missing video", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestVideoSvc(t, ctrl)
		ctx := asCaller(1)
		m.videos.EXPECT().GetVideoByID(ctx, int64(99)).Return(models.Video{}, store.ErrVideoNotFound)

		_, err := svc.UpdateVideo(ctx, models.VideoUpdate{VideoID: 99, Description: ptr("x")}, false)
		assert.ErrorIs(t, err, store.ErrVideoNotFound)
	})
}

// ── GetVideo / DeleteVideo ───────────────────────────────────────────────────

func TestVideoService_GetVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestVideoSvc(t, ctrl)
	ctx := context.Background()
	m.videos.EXPECT().GetVideoByID(ctx, int64(5)).Return(aliceVideo(), nil)

	got, err := svc.GetVideo(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, testURL, got.URL)
}

func TestVideoService_DeleteVideo(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestVideoSvc(t, ctrl)
		ctx := asCaller(1)
		m.videos.EXPECT().GetVideoByID(ctx, int64(5)).Return(aliceVideo(), nil)
		m.videos.EXPECT().DeleteVideo(ctx, int64(5)).Return(nil)

		assert.NoError(t, svc.DeleteVideo(ctx, 5))
	})

	t.Run("someone else", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestVideoSvc(t, ctrl)
		ctx := asCaller(2)
		m.videos.EXPECT().GetVideoByID(ctx, int64(5)).Return(aliceVideo(), nil)

		assert.ErrorIs(t, svc.DeleteVideo(ctx, 5), ErrUnauthorizedAccessToDifferentUserData)
	})
}
