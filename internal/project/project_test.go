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

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestFind_WalksUpToMarker(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"tsconfig.json":      "{}\n",
		"src/deep/nested.ts": "const x = 1;\n",
	})

	p, err := Find(filepath.Join(dir, "src", "deep"), nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(dir), p.Root)
}

func TestFind_FileArgumentUsesItsDirectory(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"package.json": "{}\n",
		"src/app.ts":   "const x = 1;\n",
	})

	p, err := Find(filepath.Join(dir, "src", "app.ts"), nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(dir), p.Root)
}

func TestFind_NoMarkerFallsBackToStart(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"loose.ts": "const x = 1;\n",
	})

	p, err := Find(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(dir), p.Root)
}

func TestLoad_Config(t *testing.T) {
	dir := writeTree(t, map[string]string{
		".tscope.yaml": "exclude:\n  - generated\nmax_file_size: 2048\n",
	})

	p, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"generated"}, p.Config.Exclude)
	assert.Equal(t, int64(2048), p.Config.MaxFileSize)
}

func TestLoad_MissingConfigIsFine(t *testing.T) {
	p, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, p.Config.Exclude)
	assert.Zero(t, p.Config.MaxFileSize)
}

func TestLoad_BadConfig(t *testing.T) {
	dir := writeTree(t, map[string]string{
		".tscope.yaml": "exclude: [unbalanced\n",
	})

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".tscope.yaml")
}

func TestProject_RelAbs(t *testing.T) {
	dir := writeTree(t, map[string]string{"tsconfig.json": "{}\n"})
	p, err := Load(dir)
	require.NoError(t, err)

	abs := p.Abs("src/app.ts")
	assert.Equal(t, p.Root+"/src/app.ts", abs)
	assert.Equal(t, "src/app.ts", p.Rel(abs))

	// Backslashed input normalizes.
	assert.Equal(t, abs, p.Abs(`src\app.ts`))

	// Paths outside the root come back unchanged.
	assert.Equal(t, "/elsewhere/x.ts", p.Rel("/elsewhere/x.ts"))
}

func TestProject_Ignored(t *testing.T) {
	dir := writeTree(t, map[string]string{
		".gitignore":   "vendor/\n",
		".tscope.yaml": "exclude:\n  - generated\n",
	})
	p, err := Load(dir)
	require.NoError(t, err)

	assert.True(t, p.Ignored(p.Abs("vendor/lib.ts")))
	assert.True(t, p.Ignored(p.Abs("src/generated/api.ts")))
	assert.False(t, p.Ignored(p.Abs("src/app.ts")))
}
