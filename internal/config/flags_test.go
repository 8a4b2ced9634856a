package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8891}, expected: "localhost:8891"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "localhost", input: "localhost:8891", expected: NetAddress{Host: "localhost", Port: 8891}},
		{name: "ip", input: "127.0.0.1:80", expected: NetAddress{Host: "127.0.0.1", Port: 80}},
		{name: "all interfaces", input: ":8891", expected: NetAddress{Port: 8891}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "port not a number", input: "localhost:http", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:9000",
		"-d", "postgres://flags/db",
		"-config", "/etc/beichen.yaml",
		"-token-sign-key", "secret",
		"-token-issuer", "issuer",
		"-token-duration", "2h",
		"-request-timeout", "45s",
		"-log-level", "warn",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://flags/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/beichen.yaml", cfg.ConfigFilePath)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nowhere"})
	require.Error(t, err)
}
