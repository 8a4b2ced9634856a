// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the authenticating HTTP client used by the
// command-line client to talk to the record service and to the management
// system that owns the reference data.
//
// The primary abstraction is [ServerAdapter]. Its implementation [Client]
// logs in automatically with the configured credentials, keeps the bearer
// token in a [store.TokenStore], and recovers from an expired token by
// logging in again exactly once per request.
//
// Failures are reported as [*AuthError] (login) and [*RequestError]
// (everything else); both match [ErrAuthFailed] and [ErrRequestFailed]
// respectively with [errors.Is].
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/beichen-observer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Requester performs an authenticated API call and returns the raw JSON body.
type Requester interface {
	Request(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error)
}

// ServerAdapter defines authenticated communication with the API.
type ServerAdapter interface {
	Requester

	// Login posts the configured credentials and stores the issued token.
	Login(ctx context.Context) (string, error)

	// EnsureAuthenticated returns the stored token, logging in first when
	// there is none. Concurrent callers share one login round trip.
	EnsureAuthenticated(ctx context.Context) (string, error)

	// Logout forgets the stored token.
	Logout(ctx context.Context) error

	// FetchReference downloads one reference collection.
	FetchReference(ctx context.Context, kind models.ReferenceKind) (models.ReferenceCollection, error)
}

// RecordAPI is the client side of one record collection of the record
// service.
type RecordAPI[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id models.ID) (T, error)
	Create(ctx context.Context, record T) (models.ID, error)
	Update(ctx context.Context, id models.ID, record T) (models.ID, error)
	Delete(ctx context.Context, id models.ID) error
}
