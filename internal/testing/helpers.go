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

package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgd34msu/tscope/internal/project"
	"github.com/mgd34msu/tscope/pkg/langsvc"
	"github.com/mgd34msu/tscope/pkg/tools"
)

// WriteProject materializes a TypeScript project under a temporary
// directory and returns its root. Keys are slash-separated paths relative
// to the root; intermediate directories are created as needed. A
// tsconfig.json root marker is seeded unless the map provides one.
//
// The directory is removed automatically when the test finishes.
func WriteProject(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	if _, ok := files["tsconfig.json"]; !ok {
		err := os.WriteFile(filepath.Join(root, "tsconfig.json"), []byte("{}\n"), 0o644)
		require.NoError(t, err)
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// WriteFile writes or replaces one file inside an existing fixture
// project, for tests that mutate sources between queries.
func WriteFile(t *testing.T, root, rel, content string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// NewTestManager creates a language service manager with logging disabled,
// closed automatically when the test finishes.
func NewTestManager(t *testing.T) *langsvc.Manager {
	t.Helper()

	mgr := langsvc.NewManager(nil)
	t.Cleanup(mgr.Close)
	return mgr
}

// NewTestEnv builds a tool handler environment rooted at a fixture
// project created with WriteProject.
func NewTestEnv(t *testing.T, root string) *tools.Env {
	t.Helper()

	proj, err := project.Load(root)
	require.NoError(t, err)
	return tools.NewEnv(NewTestManager(t), proj, nil)
}
