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

// Package ui provides color output helpers for the tscope CLI.
//
// The query subcommands (def, deadcode, calls, sig, safedelete) print JSON
// and never color it; these helpers serve the human-facing surfaces such as
// `tscope init` confirmations and fatal error reporting. All output respects
// the --no-color flag and the NO_COLOR environment variable, and colors are
// disabled automatically when output is piped.
//
// Color usage guidelines:
//   - Red: errors, failures
//   - Yellow: warnings, cautions
//   - Green: success, completions
//   - Cyan: info, counts
//   - Bold: headers, inline labels
//   - Dim: secondary details such as resolved paths
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Pre-configured color instances for consistent CLI output. Initialized at
// package load; each respects the global color.NoColor setting when called.
var (
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
	Green  = color.New(color.FgGreen)
	Cyan   = color.New(color.FgCyan)
	Bold   = color.New(color.Bold)
	Dim    = color.New(color.Faint)
)

// InitColors configures global color output based on the --no-color flag.
// Called once in main() after flag parsing. fatih/color already honors
// NO_COLOR on its own; this adds the explicit flag override.
func InitColors(noColor bool) {
	color.NoColor = noColor
}

// Success prints a green success message with a checkmark prefix.
//
// Example output: "✓ Wrote .tscope.yaml"
func Success(msg string) {
	_, _ = Green.Println("✓ " + msg)
}

// Successf is Success with Printf formatting, as in the init command's
// `ui.Successf("Wrote %s", configPath)`.
func Successf(format string, args ...any) {
	_, _ = Green.Printf("✓ "+format+"\n", args...)
}

// Warning prints a yellow warning message with a warning symbol prefix.
//
// Example output: "⚠ Skipped src/bundle.min.ts: exceeds max file size"
func Warning(msg string) {
	_, _ = Yellow.Println("⚠ " + msg)
}

// Warningf is Warning with Printf formatting.
func Warningf(format string, args ...any) {
	_, _ = Yellow.Printf("⚠ "+format+"\n", args...)
}

// Error prints a red error message with an X prefix.
//
// Example output: "✗ Project root not found"
func Error(msg string) {
	_, _ = Red.Println("✗ " + msg)
}

// Errorf is Error with Printf formatting.
func Errorf(format string, args ...any) {
	_, _ = Red.Printf("✗ "+format+"\n", args...)
}

// Info prints a cyan informational message with an info symbol prefix.
//
// Example output: "ℹ Scanning exports"
func Info(msg string) {
	_, _ = Cyan.Println("ℹ " + msg)
}

// Infof is Info with Printf formatting.
func Infof(format string, args ...any) {
	_, _ = Cyan.Printf("ℹ "+format+"\n", args...)
}

// Header prints a bold header with an underline separator.
//
// Example output:
//
//	Dead Exports
//	============
func Header(text string) {
	_, _ = Bold.Println(text)
	fmt.Println(strings.Repeat("=", len(text)))
}

// SubHeader prints a bold sub-header without an underline, for grouping
// sections like "External references:".
func SubHeader(text string) {
	_, _ = Bold.Println(text)
}

// Label returns a bold-formatted label string for inline use, as in the
// init command's `fmt.Printf("%s %s\n", ui.Label("Project:"), root)`.
func Label(text string) string {
	return Bold.Sprint(text)
}

// DimText returns a dim-formatted string for secondary detail such as the
// resolved project root.
func DimText(text string) string {
	return Dim.Sprint(text)
}

// CountText returns a cyan-formatted count for statistics lines like
// "Dead exports: 4".
func CountText(count int) string {
	return Cyan.Sprint(count)
}
