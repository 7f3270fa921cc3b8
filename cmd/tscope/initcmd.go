// Copyright 2026 The tscope Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mgd34msu/tscope/internal/errors"
	"github.com/mgd34msu/tscope/internal/project"
	"github.com/mgd34msu/tscope/internal/ui"
)

// defaultConfigComment documents the generated configuration inline so a
// fresh .tscope.yaml is self-explanatory.
const defaultConfigComment = `# tscope project configuration.
#
# exclude lists path substrings to skip during analysis, in addition to
# .gitignore and the built-in skips (node_modules, dist, build, out,
# coverage).
#
# max_file_size caps the largest source file to parse, in bytes
# (default: 10485760).
`

// runInit executes the 'init' CLI command, creating a .tscope.yaml
// configuration file at the project root.
//
// Flags:
//   - --force: Overwrite existing configuration (default: false)
//
// Examples:
//
//	tscope init
//	tscope init --force
//	tscope --root /path/to/project init
func runInit(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	force := fs.Bool("force", false, "Overwrite existing configuration")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: tscope init [options]

Creates a .tscope.yaml configuration file at the project root.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	root := globals.Root
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			errors.FatalError(errors.NewInternalError(
				"Cannot determine current directory", err.Error(), "", err), false)
		}
		root = cwd
	}

	configPath := filepath.Join(root, project.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !*force {
		errors.FatalError(errors.NewConfigError(
			"Configuration already exists",
			fmt.Sprintf("%s is already present", configPath),
			"Use --force to overwrite it",
			nil,
		), false)
	}

	cfg := project.Config{
		Exclude:     []string{},
		MaxFileSize: 0,
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		errors.FatalError(errors.NewInternalError(
			"Cannot encode configuration", err.Error(), "", err), false)
	}

	content := append([]byte(defaultConfigComment), data...)
	if err := os.WriteFile(configPath, content, 0o644); err != nil {
		errors.FatalError(errors.NewPermissionError(
			"Cannot write configuration",
			err.Error(),
			"Check write permissions on the project root",
			err,
		), false)
	}

	ui.Successf("Wrote %s", configPath)
	fmt.Println()
	fmt.Printf("%s %s\n", ui.Label("Project:"), ui.DimText(root))
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  tscope deadcode              Scan for unreferenced exports")
	fmt.Println("  tscope --mcp                 Serve code intelligence over MCP")
}
