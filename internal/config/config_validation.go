// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var logLevels = []any{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// validate checks that the final merged [StructuredConfig] satisfies the
// startup invariants of the record service.
func (cfg *StructuredConfig) validate() error {
	if err := validation.ValidateStruct(&cfg.Storage.DB,
		validation.Field(&cfg.Storage.DB.DSN, validation.Required),
		validation.Field(&cfg.Storage.DB.MaxOpenConns, validation.Min(1)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Server,
		validation.Field(&cfg.Server.HTTPAddress, validation.Required),
		validation.Field(&cfg.Server.RequestTimeout, validation.Required),
		validation.Field(&cfg.Server.ShutdownTimeout, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	authEnabled := cfg.App.AuthEnabled()
	if err := validation.ValidateStruct(&cfg.App,
		validation.Field(&cfg.App.TokenDuration, validation.When(authEnabled, validation.Required)),
		validation.Field(&cfg.App.AdminEmail, is.EmailFormat),
		validation.Field(&cfg.App.AdminPassword,
			validation.When(cfg.App.AdminEmail != "", validation.Required, validation.Length(6, 72))),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return cfg.Log.validate()
}

func (cfg *ClientConfig) validate() error {
	if err := validation.ValidateStruct(&cfg.Adapter,
		validation.Field(&cfg.Adapter.BaseURL, validation.Required, is.URL),
		validation.Field(&cfg.Adapter.RequestTimeout, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Credentials,
		validation.Field(&cfg.Credentials.Email, validation.Required, is.EmailFormat),
		validation.Field(&cfg.Credentials.Password, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	e := &cfg.Endpoints
	if err := validation.ValidateStruct(e,
		validation.Field(&e.Login, validation.Required),
		validation.Field(&e.DailyObservation, validation.Required),
		validation.Field(&e.DutyReport, validation.Required),
		validation.Field(&e.Campus, validation.Required),
		validation.Field(&e.Classes, validation.Required),
		validation.Field(&e.Teachers, validation.Required),
		validation.Field(&e.Leaders, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEndpointConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Storage,
		validation.Field(&cfg.Storage.TokenDSN, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}

	return cfg.Log.validate()
}

func (l *Log) validate() error {
	if err := validation.ValidateStruct(l,
		validation.Field(&l.Level, validation.Required, validation.In(logLevels...)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}
	return nil
}
