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
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/mgd34msu/tscope/internal/contract"
	"github.com/mgd34msu/tscope/internal/errors"
	"github.com/mgd34msu/tscope/internal/output"
	"github.com/mgd34msu/tscope/internal/project"
	"github.com/mgd34msu/tscope/pkg/langsvc"
	"github.com/mgd34msu/tscope/pkg/tools"
)

// setupLogger builds the process logger. Debug mode writes structured
// text to stderr; otherwise logging is discarded so command output stays
// clean for piping.
func setupLogger(globals GlobalFlags) *slog.Logger {
	if !globals.Debug {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// buildEnv resolves the project and constructs the shared tool handler
// environment. Exits with a structured error when no project root can be
// found.
func buildEnv(globals GlobalFlags) *tools.Env {
	logger := setupLogger(globals)

	var proj *project.Project
	var err error
	if globals.Root != "" {
		proj, err = project.Load(globals.Root)
	} else {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			errors.FatalError(errors.NewInternalError(
				"Cannot determine current directory", cwdErr.Error(), "", cwdErr), false)
		}
		proj, err = project.Find(cwd, logger)
	}
	if err != nil {
		errors.FatalError(errors.NewNotFoundError(
			"Project root not found",
			err.Error(),
			"Run from inside a TypeScript project or pass --root",
		), false)
	}

	mgr := langsvc.NewManager(logger, langsvc.WithMaxFileSize(effectiveMaxFileSize(proj.Config)))
	return tools.NewEnv(mgr, proj, logger)
}

// effectiveMaxFileSize picks the parse size limit: the project config when
// it sets one, otherwise the TSCOPE_MAX_FILE_SIZE env override or its
// built-in default.
func effectiveMaxFileSize(cfg project.Config) int64 {
	if cfg.MaxFileSize > 0 {
		return cfg.MaxFileSize
	}
	return contract.MaxFileSizeBytes()
}

// parsePosition extracts the <file> <line> <column> positional arguments
// shared by the position-based commands.
func parsePosition(args []string, usage func()) (file string, line, column int) {
	if len(args) < 3 {
		fmt.Fprintf(os.Stderr, "Error: expected <file> <line> <column>\n")
		usage()
		os.Exit(errors.ExitInput)
	}
	file = args[0]
	line, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: line must be an integer, got %q\n", args[1])
		os.Exit(errors.ExitInput)
	}
	column, err = strconv.Atoi(args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: column must be an integer, got %q\n", args[2])
		os.Exit(errors.ExitInput)
	}
	return file, line, column
}

// printResult writes a tool result to stdout. The compact JSON the
// handlers produce is re-indented for terminals unless --json asks for
// the raw machine form. Error envelopes go to stderr with a nonzero exit.
func printResult(result *tools.ToolResult, compact bool) {
	out := os.Stdout
	if result.IsError {
		out = os.Stderr
	}
	writeResult(out, result, compact)
	if result.IsError {
		os.Exit(errors.ExitInput)
	}
}

// writeResult renders the envelope body through the shared JSON encoders.
// A body that fails to re-encode is passed through untouched.
func writeResult(w io.Writer, result *tools.ToolResult, compact bool) {
	raw := json.RawMessage(result.Text)
	var err error
	if compact {
		err = output.JSONCompactTo(w, raw)
	} else {
		err = output.JSONTo(w, raw)
	}
	if err != nil {
		fmt.Fprintln(w, result.Text)
	}
}
