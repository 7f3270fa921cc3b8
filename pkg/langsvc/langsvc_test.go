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

package langsvc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFixture materializes source files under a temp dir and returns it.
func writeFixture(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// newTestManager builds a manager with logging disabled, closed with the
// test.
func newTestManager(t *testing.T) *Manager {
	t.Helper()

	mgr := NewManager(nil)
	t.Cleanup(mgr.Close)
	return mgr
}

// parseFile loads one fixture file through a manager.
func parseFile(t *testing.T, mgr *Manager, dir, rel string) *Service {
	t.Helper()

	svc, err := mgr.ServiceForFile(context.Background(), filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return svc
}

// parseSourceFixture parses a single standalone file.
func parseSourceFixture(t *testing.T, name, src string) *Service {
	t.Helper()

	dir := writeFixture(t, map[string]string{name: src})
	return parseFile(t, newTestManager(t), dir, name)
}

// offsetOf converts a 1-based position to a byte offset, failing the test
// on error.
func offsetOf(t *testing.T, svc *Service, line, column int) int {
	t.Helper()

	off, err := svc.Lines().Offset(line, column)
	require.NoError(t, err)
	return off
}
