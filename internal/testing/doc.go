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

// Package testing provides fixture helpers for tscope tests.
//
// Tests that exercise the language service or the tool handlers need a
// real TypeScript project on disk: tree-sitter parses files, and specifier
// resolution stats the filesystem. WriteProject builds one under a
// temporary directory from a map of relative paths to file contents and
// seeds a tsconfig.json so the directory is recognized as a project root.
//
// # Usage
//
//	root := tstest.WriteProject(t, map[string]string{
//	    "src/util.ts": "export function add(a: number, b: number) { return a + b; }\n",
//	    "src/main.ts": "import { add } from './util';\nadd(1, 2);\n",
//	})
//	env := tstest.NewTestEnv(t, root)
package testing
