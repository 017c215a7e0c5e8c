// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/dashcam-catalog/internal/config"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T, retries int) URLChecker {
	t.Helper()
	return NewHTTPURLChecker(config.Adapter{
		URLCheckTimeout: 2 * time.Second,
		URLCheckRetries: retries,
	}, logger.Nop())
}

// ── Check ───────────────────────────────────────────────────────────────────

func TestCheck_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/watch", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	err := newTestChecker(t, 0).Check(context.Background(), srv.URL+"/watch?v=abc")
	assert.NoError(t, err)
}

func TestCheck_FollowsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	assert.NoError(t, newTestChecker(t, 0).Check(context.Background(), srv.URL+"/old"))
}

func TestCheck_NotSuccessful(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusForbidden, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer srv.Close()

			err := newTestChecker(t, 0).Check(context.Background(), srv.URL)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrURLNotSuccessful)
			assert.NotErrorIs(t, err, ErrURLUnreachable)
		})
	}
}

func TestCheck_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	err := newTestChecker(t, 0).Check(context.Background(), addr)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrURLUnreachable)
}

func TestCheck_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestChecker(t, 0).Check(ctx, srv.URL)
	assert.ErrorIs(t, err, ErrURLUnreachable)
}

func TestCheck_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	checker := NewHTTPURLChecker(config.Adapter{URLCheckTimeout: 50 * time.Millisecond}, logger.Nop())
	err := checker.Check(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrURLUnreachable)
}

func TestCheck_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestChecker(t, 1).Check(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCheck_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestChecker(t, 2).Check(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrURLNotSuccessful)
	assert.Equal(t, int32(1), calls.Load())
}

// ── NewURLChecker ───────────────────────────────────────────────────────────

func TestNewURLChecker_Disabled(t *testing.T) {
	checker := NewURLChecker(config.Adapter{URLCheckDisabled: true}, logger.Nop())
	assert.IsType(t, noopURLChecker{}, checker)
	assert.NoError(t, checker.Check(context.Background(), "http://127.0.0.1:1/unreachable"))
}

func TestNewURLChecker_Enabled(t *testing.T) {
	checker := NewURLChecker(config.Adapter{URLCheckTimeout: time.Second}, logger.Nop())
	assert.IsType(t, &httpURLChecker{}, checker)
}
