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

package tools_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tstest "github.com/mgd34msu/tscope/internal/testing"
	"github.com/mgd34msu/tscope/pkg/tools"
)

func TestSignatureHelp_Basic(t *testing.T) {
	root := tstest.WriteProject(t, map[string]string{
		"app.ts": `/**
 * Greets a person by name.
 *
 * @param name who to greet
 * @param loud whether to shout
 */
function greet(name: string, loud: boolean): string { return name; }
greet("world", true);
`,
	})
	env := tstest.NewTestEnv(t, root)

	res := tools.SignatureHelp(context.Background(), env, tools.SignatureHelpArgs{
		File: "app.ts", Line: 8, Column: 8,
	})
	resp := decode[tools.SignatureHelpResponse](t, res)

	require.Len(t, resp.Signatures, 1)
	sig := resp.Signatures[0]
	assert.Equal(t, "greet(name: string, loud: boolean): string", sig.Label)
	assert.Equal(t, "Greets a person by name.", sig.Documentation)
	require.Len(t, sig.Parameters, 2)
	assert.Equal(t, "name", sig.Parameters[0].Name)
	assert.Equal(t, "string", sig.Parameters[0].Type)
	assert.Equal(t, "who to greet", sig.Parameters[0].Documentation)
	assert.Equal(t, "whether to shout", sig.Parameters[1].Documentation)

	assert.Equal(t, 0, resp.ActiveSignature)
	assert.Equal(t, 0, resp.ActiveParameter)
}

func TestSignatureHelp_ActiveParameterAfterComma(t *testing.T) {
	root := tstest.WriteProject(t, map[string]string{
		"app.ts": "function greet(name: string, loud: boolean) {}\ngreet(\"world\", true);\n",
	})
	env := tstest.NewTestEnv(t, root)

	res := tools.SignatureHelp(context.Background(), env, tools.SignatureHelpArgs{
		File: "app.ts", Line: 2, Column: 17,
	})
	resp := decode[tools.SignatureHelpResponse](t, res)

	assert.Equal(t, 1, resp.ActiveParameter)
	require.Len(t, resp.Signatures, 1)
	assert.Equal(t, 1, resp.Signatures[0].ActiveParameter)
}

func TestSignatureHelp_Overloads(t *testing.T) {
	root := tstest.WriteProject(t, map[string]string{
		"app.ts": `function load(id: number): string;
function load(id: number, fallback: string): string;
function load(id: number, fallback?: string): string { return fallback ?? String(id); }
load(1, "x");
`,
	})
	env := tstest.NewTestEnv(t, root)

	res := tools.SignatureHelp(context.Background(), env, tools.SignatureHelpArgs{
		File: "app.ts", Line: 4, Column: 10,
	})
	resp := decode[tools.SignatureHelpResponse](t, res)

	require.Len(t, resp.Signatures, 3)
	assert.Equal(t, 1, resp.ActiveParameter)
	// The one-parameter overload cannot take a second argument; the first
	// overload that still can is active.
	assert.Equal(t, 1, resp.ActiveSignature)
	assert.Equal(t, "load(id: number): string", resp.Signatures[0].Label)
	assert.Equal(t, "load(id: number, fallback: string): string", resp.Signatures[1].Label)
}

func TestSignatureHelp_ImportedCallee(t *testing.T) {
	root := tstest.WriteProject(t, map[string]string{
		"src/util.ts": "export function pad(s: string, width: number) { return s; }\n",
		"src/main.ts": "import { pad } from './util';\npad(\"x\", 4);\n",
	})
	env := tstest.NewTestEnv(t, root)

	res := tools.SignatureHelp(context.Background(), env, tools.SignatureHelpArgs{
		File: "src/main.ts", Line: 2, Column: 6,
	})
	resp := decode[tools.SignatureHelpResponse](t, res)

	require.Len(t, resp.Signatures, 1)
	assert.Equal(t, "pad(s: string, width: number)", resp.Signatures[0].Label)
}

func TestSignatureHelp_OutsideCall(t *testing.T) {
	root := tstest.WriteProject(t, map[string]string{
		"app.ts": "function greet(name: string) {}\nconst x = 1;\n",
	})
	env := tstest.NewTestEnv(t, root)

	res := tools.SignatureHelp(context.Background(), env, tools.SignatureHelpArgs{
		File: "app.ts", Line: 2, Column: 8,
	})
	resp := decode[tools.SignatureHelpResponse](t, res)

	assert.Empty(t, resp.Signatures)
	assert.Zero(t, resp.ActiveSignature)
	assert.Zero(t, resp.ActiveParameter)
}

func TestSignatureHelp_UnresolvableCallee(t *testing.T) {
	root := tstest.WriteProject(t, map[string]string{
		"app.ts": "console.log(\"hi\");\n",
	})
	env := tstest.NewTestEnv(t, root)

	res := tools.SignatureHelp(context.Background(), env, tools.SignatureHelpArgs{
		File: "app.ts", Line: 1, Column: 14,
	})
	resp := decode[tools.SignatureHelpResponse](t, res)

	// A builtin has no reachable declaration; the position still reports
	// the argument index.
	assert.Empty(t, resp.Signatures)
	assert.Equal(t, 0, resp.ActiveParameter)
}

func TestSignatureHelp_Errors(t *testing.T) {
	env := tstest.NewTestEnv(t, tstest.WriteProject(t, map[string]string{
		"app.ts": "const x = 1;\n",
	}))

	res := tools.SignatureHelp(context.Background(), env, tools.SignatureHelpArgs{
		Line: 1, Column: 1,
	})
	body := decodeError(t, res)
	assert.Contains(t, body["error"], "'file' argument is required")
}
