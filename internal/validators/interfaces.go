// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming payloads (records, reference entities,
// accounts and credentials) before they reach storage.
//
// Validators report every violated rule at once. Field names in the messages
// are the JSON names of the payload, so they can be returned to API callers
// unchanged.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to the named JSON fields.
	Validate(context.Context, any, ...string) error
}
