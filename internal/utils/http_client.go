package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client rooted at baseURL that sends and
// expects JSON. A zero timeout leaves resty's default in place.
//
//	client := utils.NewHTTPClient("http://localhost:8891", 15*time.Second)
//	resp, err := client.R().Get("/api/records")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
