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

// Package contract validates tool arguments before any language service
// call. Every check here guards against invalid input, which is always
// reported as a structured error response, never a crash.
package contract

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// DefaultMaxFileSizeBytes is the largest source file the language
	// service will parse.
	DefaultMaxFileSizeBytes int64 = 10 << 20 // 10 MiB
)

// MaxFileSizeBytes returns the effective max source file size.
// Controlled via env TSCOPE_MAX_FILE_SIZE; falls back to
// DefaultMaxFileSizeBytes.
func MaxFileSizeBytes() int64 {
	if v := os.Getenv("TSCOPE_MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMaxFileSizeBytes
}

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	OK      bool
	Message string
}

func ok() *ValidationResult {
	return &ValidationResult{OK: true}
}

func fail(format string, args ...any) *ValidationResult {
	return &ValidationResult{OK: false, Message: fmt.Sprintf(format, args...)}
}

// ValidateFile checks that a file argument is present.
func ValidateFile(file string) *ValidationResult {
	if file == "" {
		return fail("'file' argument is required")
	}
	return ok()
}

// ValidatePosition checks that line and column are positive 1-based
// coordinates.
func ValidatePosition(line, column int) *ValidationResult {
	if line < 1 {
		return fail("'line' must be a positive integer >= 1, got %d", line)
	}
	if column < 1 {
		return fail("'column' must be a positive integer >= 1, got %d", column)
	}
	return ok()
}

// ValidateDirection checks a call-hierarchy direction value. The empty
// string is allowed and means the default ("both").
func ValidateDirection(direction string) *ValidationResult {
	switch direction {
	case "", "incoming", "outgoing", "both":
		return ok()
	}
	return fail("'direction' must be one of incoming, outgoing, both; got %q", direction)
}
