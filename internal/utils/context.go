// Package utils provides helpers shared by the record service and the
// client: context keys, password hashing, JSON responses, the HTTP client
// constructor, access tokens and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/beichen-observer/models"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the
// authenticated user identifier.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, models.ID("0190..."))
var UserIDCtxKey = contextKey("userID")

// TraceIDCtxKey is the key under which the trace middleware stores the
// request trace identifier.
var TraceIDCtxKey = contextKey("traceID")

// GetUserIDFromContext retrieves the authenticated user identifier.
func GetUserIDFromContext(ctx context.Context) (models.ID, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(models.ID)
	return userID, ok && userID != ""
}

// GetTraceIDFromContext retrieves the request trace identifier.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
