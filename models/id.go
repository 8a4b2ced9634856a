// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an entity identifier as it travels over the wire.
//
// Backends disagree on the JSON type of identifiers: the record store emits
// integers (SERIAL columns) while the management system emits UUID strings.
// ID accepts both on decoding and re-emits purely numeric values as JSON
// numbers, everything else as strings.
type ID string

// IDFromInt64 converts a database integer key into an [ID].
func IDFromInt64(v int64) ID {
	return ID(strconv.FormatInt(v, 10))
}

// Int64 parses the identifier as a base-10 integer.
func (id ID) Int64() (int64, error) {
	v, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id %q is not an integer: %w", string(id), err)
	}
	return v, nil
}

// String implements [fmt.Stringer].
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty.
func (id ID) IsZero() bool {
	return id == ""
}

// MarshalJSON implements [json.Marshaler].
func (id ID) MarshalJSON() ([]byte, error) {
	if v, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(v, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON implements [json.Unmarshaler].
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}
