// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// record service handlers and middleware.
//
// All Msg* constants are message strings written into the error field of
// {success:false, error} response bodies.
package app

const (
	// MsgRecordNotFound is returned for every lookup, update or delete of a
	// daily observation or duty report that does not exist. Existing
	// clients match on this exact text.
	MsgRecordNotFound = "记录不存在"

	// MsgInvalidJSON prefixes the decoder error of a malformed request body.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgRequestTimedOut is returned when a request outlives the configured
	// server request timeout.
	MsgRequestTimedOut = "request timed out"

	// MsgNotFound is returned for routes that do not exist.
	MsgNotFound = "not found"

	// MsgMethodNotAllowed is returned when a route exists but not for the
	// request method.
	MsgMethodNotAllowed = "method not allowed"
)
