// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/seqbuf/internal/errors"
	"github.com/kraklabs/seqbuf/internal/ui"
)

// Config holds the per-project seqbuf settings stored in
// .seqbuf/config.yaml. All fields are optional; a missing config file
// means defaults everywhere.
type Config struct {
	// DefaultOp is the transform applied when 'transform' is invoked
	// without --op. One of: upper, lower, rot13.
	DefaultOp string `yaml:"default_op"`

	// JSON makes machine-readable output the default.
	JSON bool `yaml:"json"`

	// NoColor disables colored output by default.
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{DefaultOp: "upper"}
}

// ConfigDir returns the .seqbuf directory under dir.
func ConfigDir(dir string) string {
	return filepath.Join(dir, ".seqbuf")
}

// ConfigPath returns the config file path under dir.
func ConfigPath(dir string) string {
	return filepath.Join(ConfigDir(dir), "config.yaml")
}

// resolveConfigPath turns an optional --config value into a concrete
// path, defaulting to ./.seqbuf/config.yaml.
func resolveConfigPath(path string) string {
	if path != "" {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ConfigPath(".")
	}
	return ConfigPath(cwd)
}

// LoadConfig reads and parses the config file at path. A missing file
// is not an error: the defaults are returned with found == false.
func LoadConfig(path string) (cfg *Config, found bool, err error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading config: %w", err)
	}

	cfg = DefaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, false, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, true, nil
}

// SaveConfig writes cfg as YAML to path, creating the parent directory
// when needed.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// applyConfig folds the config file into the global flags. Flags given
// on the command line win over the file: a flag can only switch a
// setting on here, never off.
func applyConfig(path string) {
	cfg, _, err := LoadConfig(resolveConfigPath(path))
	if err != nil {
		errors.FatalError(errors.NewConfigError(
			"Cannot load seqbuf configuration",
			err.Error(),
			"Fix or remove .seqbuf/config.yaml, or run 'seqbuf init' to recreate it",
			err,
		), globals.JSON)
	}

	globals.JSON = globals.JSON || cfg.JSON
	globals.NoColor = globals.NoColor || cfg.NoColor

	ui.InitColors(globals.NoColor)
}
