package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// TokenStore holds the single bearer token of the client. Get reports
// whether a token is present; IsPresent swallows storage errors and reports
// false for them.
type TokenStore interface {
	Get(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	IsPresent(ctx context.Context) bool
}
