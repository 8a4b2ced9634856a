// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables. Struct fields are mapped
// via their `env`, `envPrefix` and `envDefault` tags; prefix is prepended to
// every variable name.
func parseEnv(cfg any, prefix string) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: prefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv exports the variables of the given .env files into the process
// environment. Missing files are skipped and variables that are already set
// are left untouched.
func loadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("error loading %s: %w", p, err)
		}
	}

	return nil
}
