package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://localhost:8891", 5*time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.BaseURL != "http://localhost:8891" {
		t.Errorf("expected base URL to be set, got %q", client.BaseURL)
	}
	if got := client.Header.Get("Accept"); got != "application/json" {
		t.Errorf("expected JSON Accept header, got %q", got)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected independent resty clients")
	}
}
