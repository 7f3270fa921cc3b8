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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportByName(exports []Export, name string) (Export, bool) {
	for _, e := range exports {
		if e.Name == name {
			return e, true
		}
	}
	return Export{}, false
}

func TestService_Exports_Declarations(t *testing.T) {
	src := `export function run(): void {}
export class Engine {}
export interface Config {}
export const first = 1, second = 2;
export type Mode = "fast" | "slow";
export enum State { On, Off }
`
	svc := parseSourceFixture(t, "exports.ts", src)
	exports := svc.Exports()

	tests := []struct {
		name string
		kind SymbolKind
	}{
		{"run", KindFunction},
		{"Engine", KindClass},
		{"Config", KindInterface},
		{"first", KindVariable},
		{"second", KindVariable},
		{"Mode", KindTypeAlias},
		{"State", KindEnum},
	}
	require.Len(t, exports, len(tests))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, found := exportByName(exports, tt.name)
			require.True(t, found, "export %q not found", tt.name)
			assert.Equal(t, tt.kind, e.Kind)
			assert.False(t, e.Default)
			assert.Empty(t, e.ExportedFrom)
		})
	}
}

func TestService_Exports_Clause(t *testing.T) {
	src := `const a = 1;
function b() {}
export { a, b as renamed };
`
	svc := parseSourceFixture(t, "clause.ts", src)
	exports := svc.Exports()
	require.Len(t, exports, 2)

	_, found := exportByName(exports, "a")
	assert.True(t, found)

	renamed, found := exportByName(exports, "renamed")
	require.True(t, found)
	assert.Empty(t, renamed.ExportedFrom)
}

func TestService_Exports_ReExport(t *testing.T) {
	src := `export { helper, other as alias } from './helpers';
`
	svc := parseSourceFixture(t, "reexport.ts", src)
	exports := svc.Exports()
	require.Len(t, exports, 2)

	helper, found := exportByName(exports, "helper")
	require.True(t, found)
	assert.Equal(t, "./helpers", helper.ExportedFrom)

	alias, found := exportByName(exports, "alias")
	require.True(t, found)
	assert.Equal(t, "./helpers", alias.ExportedFrom)
}

func TestService_Exports_Default(t *testing.T) {
	src := `export default function main(): void {}
export const named = 1;
`
	svc := parseSourceFixture(t, "default.ts", src)
	exports := svc.Exports()

	def, found := exportByName(exports, "main")
	require.True(t, found)
	assert.True(t, def.Default)

	named, found := exportByName(exports, "named")
	require.True(t, found)
	assert.False(t, named.Default)
}

func TestService_Exports_SkipsDestructuring(t *testing.T) {
	src := `export const { x, y } = point();
export const plain = 1;
`
	svc := parseSourceFixture(t, "destructure.ts", src)
	exports := svc.Exports()

	_, found := exportByName(exports, "plain")
	assert.True(t, found)
	_, found = exportByName(exports, "x")
	assert.False(t, found)
}

func TestService_Exports_NoExports(t *testing.T) {
	svc := parseSourceFixture(t, "internal.ts", "const hidden = 1;\nfunction local() {}\n")
	assert.Empty(t, svc.Exports())
}
