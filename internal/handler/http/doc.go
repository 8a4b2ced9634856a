// Package http implements the REST API of the record service.
//
// It wires the chi router, the record, reference and login handlers, and
// the middleware chain: trace ids, access logging, request metrics, panic
// recovery, response compression and, when a signing key is configured,
// bearer-token authentication. Every error response carries the
// {success:false, error} envelope.
package http
