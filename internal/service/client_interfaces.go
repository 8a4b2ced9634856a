package service

import (
	"context"

	"github.com/MKhiriev/beichen-observer/internal/reference"
	"github.com/MKhiriev/beichen-observer/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientRecordService manages records in display format on the client.
// Reference collections are loaded on first use and translated through.
type ClientRecordService[D any] interface {
	// List returns every record, newest first, in display format.
	List(ctx context.Context) ([]D, error)

	// Get returns one record in display format.
	Get(ctx context.Context, id models.ID) (D, error)

	// Create translates record to storage format and submits it. Unknown
	// required names fail with a translator.ResolutionError before any
	// request is made.
	Create(ctx context.Context, record D) (models.ID, error)

	// Update translates record and replaces the record with the given id.
	Update(ctx context.Context, id models.ID, record D) (models.ID, error)

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id models.ID) error
}

// ClientReferenceService exposes the reference collections of the client.
type ClientReferenceService interface {
	// Load fetches every collection not loaded yet and returns all of them.
	Load(ctx context.Context) (reference.Snapshot, error)
}

// ClientAuthService manages the client session.
type ClientAuthService interface {
	// Login logs in with the configured credentials, replacing any stored
	// token.
	Login(ctx context.Context) error

	// Logout forgets the stored token.
	Logout(ctx context.Context) error
}
