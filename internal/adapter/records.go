package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/beichen-observer/models"
)

type recordAPI[T any] struct {
	requester Requester
	endpoint  string
}

// NewRecordAPI returns the client of the record collection served at
// endpoint.
func NewRecordAPI[T any](requester Requester, endpoint string) RecordAPI[T] {
	return &recordAPI[T]{requester: requester, endpoint: strings.TrimRight(endpoint, "/")}
}

func (r *recordAPI[T]) List(ctx context.Context) ([]T, error) {
	raw, err := r.requester.Request(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return nil, err
	}

	var records []T
	if err = json.Unmarshal(raw, &records); err != nil {
		return nil, &RequestError{Method: http.MethodGet, Endpoint: r.endpoint, Err: err}
	}
	return records, nil
}

func (r *recordAPI[T]) Get(ctx context.Context, id models.ID) (T, error) {
	var record T

	endpoint := r.recordEndpoint(id)
	raw, err := r.requester.Request(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return record, err
	}

	if err = json.Unmarshal(raw, &record); err != nil {
		return record, &RequestError{Method: http.MethodGet, Endpoint: endpoint, Err: err}
	}
	return record, nil
}

func (r *recordAPI[T]) Create(ctx context.Context, record T) (models.ID, error) {
	return r.mutate(ctx, http.MethodPost, r.endpoint, record)
}

func (r *recordAPI[T]) Update(ctx context.Context, id models.ID, record T) (models.ID, error) {
	return r.mutate(ctx, http.MethodPut, r.recordEndpoint(id), record)
}

func (r *recordAPI[T]) Delete(ctx context.Context, id models.ID) error {
	_, err := r.mutate(ctx, http.MethodDelete, r.recordEndpoint(id), nil)
	return err
}

func (r *recordAPI[T]) mutate(ctx context.Context, method, endpoint string, body any) (models.ID, error) {
	raw, err := r.requester.Request(ctx, method, endpoint, body)
	if err != nil {
		return "", err
	}

	var result models.MutationResponse
	if err = json.Unmarshal(raw, &result); err != nil {
		return "", &RequestError{Method: method, Endpoint: endpoint, Err: err}
	}
	return result.ID, nil
}

func (r *recordAPI[T]) recordEndpoint(id models.ID) string {
	return r.endpoint + "/" + url.PathEscape(id.String())
}
