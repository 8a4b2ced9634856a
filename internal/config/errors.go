package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid. The ozzo-validation details are wrapped alongside.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a malformed base URL or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid authentication settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidEndpointConfigs indicates an incomplete endpoint table.
	ErrInvalidEndpointConfigs = errors.New("invalid endpoint configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
