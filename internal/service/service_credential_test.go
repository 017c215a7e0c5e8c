package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/dashcam-catalog/internal/crypto"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/mock"
	"github.com/MKhiriev/dashcam-catalog/internal/store"
	"github.com/MKhiriev/dashcam-catalog/internal/utils"
	"github.com/MKhiriev/dashcam-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// asCaller returns a context carrying the identity the API key gate stores.
func asCaller(userID int64) context.Context {
	return context.WithValue(context.Background(), utils.UserIDCtxKey, userID)
}

func ptr[T any](v T) *T { return &v }

func newTestCredentialSvc(t *testing.T, ctrl *gomock.Controller) (CredentialService, *mock.MockUserRepository, *mock.MockKeyHasher) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockKeyHasher(ctrl)
	return NewCredentialService(users, hasher, logger.Nop()), users, hasher
}

// ── Issue ────────────────────────────────────────────────────────────────────

func TestCredentialService_Issue_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		hasher.EXPECT().GenerateKey().Return("plain-key", nil),
		hasher.EXPECT().Hash("plain-key").Return("encoded-hash", nil),
		users.EXPECT().CreateUser(ctx, models.User{Username: "alice", KeyHash: "encoded-hash"}).
			Return(models.User{UserID: 1, Username: "alice", KeyHash: "encoded-hash"}, nil),
	)

	user, key, err := svc.Issue(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "plain-key", key)
}

func TestCredentialService_Issue_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("generate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, hasher := newTestCredentialSvc(t, ctrl)
		hasher.EXPECT().GenerateKey().Return("", errors.New("entropy exhausted"))

		_, key, err := svc.Issue(ctx, "alice")
		require.Error(t, err)
		assert.Empty(t, key)
		assert.Contains(t, err.Error(), "error generating api key")
	})

	t.Run("hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, hasher := newTestCredentialSvc(t, ctrl)
		hasher.EXPECT().GenerateKey().Return("plain-key", nil)
		hasher.EXPECT().Hash("plain-key").Return("", errors.New("boom"))

		_, _, err := svc.Issue(ctx, "alice")
		assert.ErrorContains(t, err, "error hashing api key")
	})

	t.Run("username taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, hasher := newTestCredentialSvc(t, ctrl)
		hasher.EXPECT().GenerateKey().Return("plain-key", nil)
		hasher.EXPECT().Hash("plain-key").Return("encoded-hash", nil)
		users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

		_, key, err := svc.Issue(ctx, "alice")
		assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
		assert.Empty(t, key)
	})
}

// ── Verify ───────────────────────────────────────────────────────────────────

func TestCredentialService_Verify(t *testing.T) {
	stored := models.User{UserID: 7, Username: "alice", KeyHash: "encoded-hash"}
	storeFailure := errors.New("connection reset")

	tests := []struct {
		name       string
		username   string
		apiKey     string
		setup      func(users *mock.MockUserRepository, hasher *mock.MockKeyHasher)
		wantErr    error
		wantUser   models.User
		notInvalid bool
	}{
		{
			name:     "success",
			username: "alice",
			apiKey:   "plain-key",
			setup: func(users *mock.MockUserRepository, hasher *mock.MockKeyHasher) {
				users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)
				hasher.EXPECT().Compare("encoded-hash", "plain-key").Return(true, nil)
			},
			wantUser: stored,
		},
		{
			name:     "empty key",
			username: "alice",
			setup:    func(users *mock.MockUserRepository, hasher *mock.MockKeyHasher) {},
			wantErr:  ErrInvalidCredential,
		},
		{
			name:    "empty username",
			apiKey:  "plain-key",
			setup:   func(users *mock.MockUserRepository, hasher *mock.MockKeyHasher) {},
			wantErr: ErrInvalidCredential,
		},
		{
			name:     "unknown user",
			username: "mallory",
			apiKey:   "plain-key",
			setup: func(users *mock.MockUserRepository, hasher *mock.MockKeyHasher) {
				users.EXPECT().FindUserByUsername(gomock.Any(), "mallory").Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrInvalidCredential,
		},
		{
			name:     "mismatch",
			username: "alice",
			apiKey:   "wrong-key",
			setup: func(users *mock.MockUserRepository, hasher *mock.MockKeyHasher) {
				users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)
				hasher.EXPECT().Compare("encoded-hash", "wrong-key").Return(false, nil)
			},
			wantErr: ErrInvalidCredential,
		},
		{
			name:     "malformed stored hash",
			username: "alice",
			apiKey:   "plain-key",
			setup: func(users *mock.MockUserRepository, hasher *mock.MockKeyHasher) {
				users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)
				hasher.EXPECT().Compare("encoded-hash", "plain-key").Return(false, crypto.ErrMalformedHash)
			},
			wantErr: ErrInvalidCredential,
		},
		{
			name:     "store failure",
			username: "alice",
			apiKey:   "plain-key",
			setup: func(users *mock.MockUserRepository, hasher *mock.MockKeyHasher) {
				users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, storeFailure)
			},
			wantErr:    storeFailure,
			notInvalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, users, hasher := newTestCredentialSvc(t, ctrl)
			tt.setup(users, hasher)

			user, err := svc.Verify(context.Background(), tt.username, tt.apiKey)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUser, user)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, models.User{}, user)
			if tt.notInvalid {
				assert.NotErrorIs(t, err, ErrInvalidCredential)
			}
		})
	}
}

// TestCredentialService_RoundTrip uses the real PBKDF2 hasher: the key handed
// out by Issue must verify, any other key must not.
func TestCredentialService_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewCredentialService(users, crypto.NewPBKDF2Hasher(1000), logger.Nop())
	ctx := context.Background()

	var persisted models.User
	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEmpty(t, u.KeyHash)
			u.UserID = 1
			persisted = u
			return u, nil
		},
	)
	users.EXPECT().FindUserByUsername(ctx, "alice").DoAndReturn(
		func(context.Context, string) (models.User, error) { return persisted, nil },
	).Times(2)

	_, key, err := svc.Issue(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, key, 32)
	assert.NotContains(t, persisted.KeyHash, key)

	user, err := svc.Verify(ctx, "alice", key)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)

	_, err = svc.Verify(ctx, "alice", key+"0")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
