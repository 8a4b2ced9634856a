package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidPayload wraps every rule violation reported by a [Validator].
	ErrInvalidPayload = errors.New("invalid payload")
)
