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

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/seqbuf/internal/errors"
	"github.com/kraklabs/seqbuf/internal/ui"
)

// runInit executes the 'init' CLI command, creating a
// .seqbuf/config.yaml configuration file in the current directory.
func runInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)

	defaultOp := fs.String("default-op", "upper", "Default transform op (upper|lower|rot13)")
	jsonDefault := fs.Bool("json-default", false, "Make JSON output the default")
	force := fs.Bool("force", false, "Overwrite an existing configuration")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: seqbuf init [options]

Description:
  Create a .seqbuf/config.yaml configuration file in the current
  directory. Commands read it on startup; command-line flags always
  win over the file.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  seqbuf init
  seqbuf init --default-op rot13
  seqbuf init --force
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if _, ok := transformers[*defaultOp]; !ok {
		errors.FatalError(errors.NewInputError(
			"Unknown default op",
			fmt.Sprintf("'%s' is not a known transform", *defaultOp),
			"Use one of: "+transformerNames(),
		), globals.JSON)
	}

	cwd, err := os.Getwd()
	if err != nil {
		errors.FatalError(errors.NewInternalError(
			"Cannot determine working directory", err.Error(), "", err,
		), globals.JSON)
	}

	path := ConfigPath(cwd)
	if _, statErr := os.Stat(path); statErr == nil && !*force {
		errors.FatalError(errors.NewConfigError(
			"Configuration already exists",
			path+" is already present",
			"Re-run with --force to overwrite it",
			nil,
		), globals.JSON)
	}

	cfg := DefaultConfig()
	cfg.DefaultOp = *defaultOp
	cfg.JSON = *jsonDefault

	if err := SaveConfig(cfg, path); err != nil {
		errors.FatalError(errors.NewConfigError(
			"Cannot write configuration", err.Error(), "Check directory permissions", err,
		), globals.JSON)
	}

	ui.Successf("Wrote %s", path)
	ui.Info("Edit the file or re-run 'seqbuf init --force' to change defaults")
}
