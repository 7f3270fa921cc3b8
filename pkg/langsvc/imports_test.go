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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Imports(t *testing.T) {
	src := `import def from './mod';
import { one, two as alias } from './pair';
import * as ns from './space';
import 'side-effect';
`
	svc := parseSourceFixture(t, "imports.ts", src)
	imports := svc.Imports()
	require.Len(t, imports, 4)

	bySpec := map[string]Import{}
	for _, imp := range imports {
		bySpec[imp.Specifier] = imp
	}

	def := bySpec["./mod"]
	require.Len(t, def.Bindings, 1)
	assert.Equal(t, "def", def.Bindings[0].Local)
	assert.Equal(t, "default", def.Bindings[0].Imported)

	pair := bySpec["./pair"]
	require.Len(t, pair.Bindings, 2)
	assert.Equal(t, "one", pair.Bindings[0].Local)
	assert.Equal(t, "one", pair.Bindings[0].Imported)
	assert.Equal(t, "alias", pair.Bindings[1].Local)
	assert.Equal(t, "two", pair.Bindings[1].Imported)

	space := bySpec["./space"]
	require.Len(t, space.Bindings, 1)
	assert.Equal(t, "ns", space.Bindings[0].Local)
	assert.True(t, space.Bindings[0].Namespace)

	assert.Empty(t, bySpec["side-effect"].Bindings)
}

func TestResolveSpecifier(t *testing.T) {
	dir := writeFixture(t, map[string]string{
		"src/main.ts":        "",
		"src/util.ts":        "",
		"src/lib/index.ts":   "",
		"src/component.tsx":  "",
		"src/explicit.js":    "",
	})
	from := filepath.Join(dir, "src", "main.ts")

	tests := []struct {
		name      string
		specifier string
		want      string
		ok        bool
	}{
		{"sibling with extension inferred", "./util", "src/util.ts", true},
		{"directory index", "./lib", "src/lib/index.ts", true},
		{"tsx extension", "./component", "src/component.tsx", true},
		{"explicit extension", "./explicit.js", "src/explicit.js", true},
		{"missing module", "./nope", "", false},
		{"bare specifier not resolved", "lodash", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveSpecifier(from, tt.specifier)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, filepath.ToSlash(filepath.Join(dir, filepath.FromSlash(tt.want))), got)
			}
		})
	}
}
