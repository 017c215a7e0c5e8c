// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the catalogue server. Every request gets a
// child logger carrying its trace id; handlers fetch it with FromRequest and
// services with FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger on stdout tagged with role. The global
// level starts at debug; narrow it with SetLevel once config is loaded.
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stdout)
}

func newLogger(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// SetLevel changes the global zerolog level. An empty level keeps the
// current one.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached by the trace id
// middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx, or zerolog's default logger
// when none is attached.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromContextOr returns the logger stored in ctx, or fallback when ctx
// carries none.
func FromContextOr(ctx context.Context, fallback *Logger) *Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled && fallback != nil {
		return fallback
	}
	return &Logger{*l}
}

// AnnotateUser adds user_id to the logger stored in ctx. The logger is
// updated in place, so loggers fetched later from any context sharing it
// carry the field.
func AnnotateUser(ctx context.Context, userID int64) {
	zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Int64("user_id", userID)
	})
}
