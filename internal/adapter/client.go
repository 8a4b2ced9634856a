package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/beichen-observer/internal/config"
	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/store"
	"github.com/MKhiriev/beichen-observer/internal/utils"
	"github.com/MKhiriev/beichen-observer/models"
)

// attempt is the state of the 401 recovery protocol of [Client.Request].
type attempt int

const (
	attemptFirst attempt = iota
	attemptRetry
)

const loginFlightKey = "login"

var successBody = json.RawMessage(`{"success":true}`)

// Client is the HTTP implementation of [ServerAdapter].
type Client struct {
	http        *utils.HTTPClient
	credentials config.ClientCredentials
	endpoints   config.Endpoints
	tokens      store.TokenStore

	logins singleflight.Group

	logger *logger.Logger
}

// NewClient constructs a [Client]. It normalises the base URL from
// adapterCfg and returns an error when it is empty or not a valid URL.
func NewClient(adapterCfg config.ClientAdapter, credentials config.ClientCredentials, endpoints config.Endpoints, tokens store.TokenStore, logger *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.SetLogger(restyLogger{logger})

	return &Client{
		http:        client,
		credentials: credentials,
		endpoints:   endpoints,
		tokens:      tokens,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. A login already in flight is joined
// instead of starting a second one.
func (c *Client) Login(ctx context.Context) (string, error) {
	return c.sharedLogin(ctx, false, "")
}

// sharedLogin runs one login for every concurrent caller. With reuse set the
// store is read again inside the flight: a token other than rejected that
// another caller stored in the meantime is returned without a round trip,
// and a rejected token still in the store is cleared before logging in.
func (c *Client) sharedLogin(ctx context.Context, reuse bool, rejected string) (string, error) {
	// the shared round trip must not die with whichever caller started it
	ch := c.logins.DoChan(loginFlightKey, func() (any, error) {
		ctx := context.WithoutCancel(ctx)
		if reuse {
			if token, ok := c.storedToken(ctx, rejected); ok {
				return token, nil
			}
		}
		return c.login(ctx)
	})

	select {
	case <-ctx.Done():
		return "", &AuthError{Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (c *Client) login(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(models.Credentials{Email: c.credentials.Email, Password: c.credentials.Password}).
		Post(c.endpoints.Login)
	if err != nil {
		log.Err(err).Str("func", "*Client.login").Msg("login request failed")
		return "", &AuthError{Err: err}
	}

	if !resp.IsSuccess() {
		log.Warn().Str("func", "*Client.login").Int("status", resp.StatusCode()).Msg("login rejected")
		return "", &AuthError{StatusCode: resp.StatusCode(), Message: serverMessage(resp.Body())}
	}

	var body models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		log.Err(err).Str("func", "*Client.login").Msg("undecodable login response")
		return "", &AuthError{StatusCode: resp.StatusCode(), Err: err}
	}

	token := body.AccessToken()
	if token == "" {
		return "", &AuthError{StatusCode: resp.StatusCode(), Err: errNoAccessToken}
	}

	if err = c.tokens.Set(ctx, token); err != nil {
		return "", fmt.Errorf("error saving token: %w", err)
	}

	log.Info().Str("func", "*Client.login").Msg("logged in")
	return token, nil
}

// EnsureAuthenticated implements [ServerAdapter]. A token store that cannot
// be read is treated as empty.
func (c *Client) EnsureAuthenticated(ctx context.Context) (string, error) {
	token, ok, err := c.tokens.Get(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("token store unreadable, logging in")
	}
	if ok && err == nil {
		return token, nil
	}

	return c.sharedLogin(ctx, true, "")
}

// storedToken returns the stored token unless it is empty or rejected. A
// rejected token is cleared.
func (c *Client) storedToken(ctx context.Context, rejected string) (string, bool) {
	log := logger.FromContext(ctx)

	token, ok, err := c.tokens.Get(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("token store unreadable, logging in")
		return "", false
	}
	if !ok || token == "" {
		return "", false
	}
	if token != rejected {
		return token, true
	}

	if err = c.tokens.Clear(ctx); err != nil {
		log.Warn().Err(err).Msg("error clearing token")
	}
	return "", false
}

// Request implements [Requester]. A 401 answer clears the token, forces one
// fresh login and repeats the call once; the repeated call is final.
// A 204 answer yields {"success":true}.
func (c *Client) Request(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	token, err := c.EnsureAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	for state := attemptFirst; ; state = attemptRetry {
		req := c.http.R().
			SetContext(ctx).
			SetHeader("Authorization", "Bearer "+token)
		if body != nil {
			req.SetBody(body)
		}

		resp, err := req.Execute(method, endpoint)
		if err != nil {
			log.Err(err).Str("method", method).Str("endpoint", endpoint).Msg("request failed")
			return nil, &RequestError{Method: method, Endpoint: endpoint, Err: err}
		}

		if resp.StatusCode() != http.StatusUnauthorized || state == attemptRetry {
			return decodeResponse(method, endpoint, resp, log)
		}

		log.Info().Str("method", method).Str("endpoint", endpoint).Msg("token rejected, logging in again")
		if token, err = c.sharedLogin(ctx, true, token); err != nil {
			return nil, err
		}
	}
}

func decodeResponse(method, endpoint string, resp *resty.Response, log *logger.Logger) (json.RawMessage, error) {
	if resp.StatusCode() == http.StatusNoContent {
		return successBody, nil
	}

	if !resp.IsSuccess() {
		message := serverMessage(resp.Body())
		if message == "" {
			message = fmt.Sprintf("request failed: %d", resp.StatusCode())
		}
		return nil, &RequestError{Method: method, Endpoint: endpoint, StatusCode: resp.StatusCode(), Message: message}
	}

	if !json.Valid(resp.Body()) {
		log.Error().Str("method", method).Str("endpoint", endpoint).Int("status", resp.StatusCode()).Msg("response body is not JSON")
		return nil, &RequestError{
			Method: method, Endpoint: endpoint, StatusCode: resp.StatusCode(),
			Err: errors.New("response body is not valid JSON"),
		}
	}

	return json.RawMessage(resp.Body()), nil
}

// serverMessage extracts the "message" (a string or a list of strings) or
// the "error" field of an error body.
func serverMessage(body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	var message string
	if err := json.Unmarshal(payload.Message, &message); err == nil && message != "" {
		return message
	}

	var messages []string
	if err := json.Unmarshal(payload.Message, &messages); err == nil && len(messages) > 0 {
		return strings.Join(messages, "; ")
	}

	return payload.Error
}

// Logout implements [ServerAdapter].
func (c *Client) Logout(ctx context.Context) error {
	return c.tokens.Clear(ctx)
}

// FetchReference implements [ServerAdapter].
func (c *Client) FetchReference(ctx context.Context, kind models.ReferenceKind) (models.ReferenceCollection, error) {
	endpoint, err := c.referenceEndpoint(kind)
	if err != nil {
		return models.ReferenceCollection{}, err
	}

	raw, err := c.Request(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.ReferenceCollection{}, err
	}

	var collection models.ReferenceCollection
	if err = json.Unmarshal(raw, &collection); err != nil {
		return models.ReferenceCollection{}, &RequestError{Method: http.MethodGet, Endpoint: endpoint, Err: err}
	}

	return collection, nil
}

func (c *Client) referenceEndpoint(kind models.ReferenceKind) (string, error) {
	switch kind {
	case models.ReferenceCampus:
		return c.endpoints.Campus, nil
	case models.ReferenceClass:
		return c.endpoints.Classes, nil
	case models.ReferenceTeacher:
		return c.endpoints.Teachers, nil
	case models.ReferenceLeader:
		return c.endpoints.Leaders, nil
	default:
		return "", fmt.Errorf("unknown reference kind %q", kind)
	}
}

// restyLogger routes resty's own diagnostics into the client log.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) { l.log.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...any)  { l.log.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...any) { l.log.Debug().Msgf(format, v...) }
