package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("invalid email or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrAuthDisabled            = errors.New("authentication is disabled")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
