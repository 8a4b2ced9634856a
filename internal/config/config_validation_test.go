// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "auth enabled without token duration",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.TokenSignKey = "secret"
				cfg.App.TokenDuration = 0
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "admin email without password",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.AdminEmail = "admin@beichen.com"
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "malformed admin email",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.AdminEmail = "admin"
				cfg.App.AdminPassword = "admin123"
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.Log.Level = "loud" },
			wantErr: ErrInvalidLogConfigs,
		},
		{
			name: "admin account with auth",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.TokenSignKey = "secret"
				cfg.App.TokenDuration = time.Hour
				cfg.App.AdminEmail = "admin@beichen.com"
				cfg.App.AdminPassword = "admin123"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate_EmptyEndpoint(t *testing.T) {
	cfg, err := GetClientConfig("")
	require.NoError(t, err)

	cfg.Endpoints.Classes = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidEndpointConfigs)
}
