/*
Copyright © 2026 imonlyfourteen

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config resolves where the secrets file lives. Path defaulting is
// owned here, at the CLI boundary, so the store itself never depends on
// configuration-directory conventions.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// AppDirName is the directory created under the user configuration
// directory on first use.
const AppDirName = "TOTP"

// Config carries the environment overrides for secrets file placement.
type Config struct {
	ConfigDir   string `env:"TOTP_CONFIG_DIR"`
	SecretsFile string `env:"TOTP_SECRETS_FILE"`
}

// Load reads the environment overrides.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment configuration: %w", err)
	}
	return cfg, nil
}

// SecretsPath resolves the effective secrets file path. Precedence:
// TOTP_SECRETS_FILE, then TOTP_CONFIG_DIR/secrets, then the host
// configuration directory (XDG on Linux) under AppDirName.
func (c Config) SecretsPath() (string, error) {
	if c.SecretsFile != "" {
		return c.SecretsFile, nil
	}

	dir := c.ConfigDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve user configuration directory: %w", err)
		}
		dir = filepath.Join(base, AppDirName)
	}

	return filepath.Join(dir, "secrets"), nil
}

// EnsureParentDirectory creates the directory holding the secrets file if it
// doesn't exist. Secrets are private to the owner.
func EnsureParentDirectory(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o700)
}
