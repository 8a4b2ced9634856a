package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuthFailed is matched by every [*AuthError].
	ErrAuthFailed = errors.New("authentication failed")

	// ErrRequestFailed is matched by every [*RequestError].
	ErrRequestFailed = errors.New("request failed")

	errNoAccessToken = errors.New("login response carries no access token")
)

// AuthError reports a failed login. StatusCode is zero when the server was
// never reached.
type AuthError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AuthError) Error() string {
	switch {
	case e.Message != "" && e.StatusCode != 0:
		return fmt.Sprintf("login failed (%d): %s", e.StatusCode, e.Message)
	case e.Message != "":
		return "login failed: " + e.Message
	case e.Err != nil:
		return "login failed: " + e.Err.Error()
	default:
		return fmt.Sprintf("login failed: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
}

func (e *AuthError) Is(target error) bool {
	return target == ErrAuthFailed
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// RequestError reports a failed API call. Message is the server's own
// "message" or "error" field when it sent one.
type RequestError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed: %d", e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.Endpoint, msg)
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
