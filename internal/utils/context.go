// Package utils holds small helpers shared by the catalogue packages:
// the request context key for the verified caller, JSON and text response
// writers, the outbound HTTP client and trace id generation.
package utils

import (
	"context"
)

// contextKey keeps utils keys apart from string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is where the API key gate stores the verified caller's user
// id as an int64.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the verified caller's id. ok is false when the
// request did not pass the API key gate.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
