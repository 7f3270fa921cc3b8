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

// Package langsvc implements the language service layer for tscope.
//
// It manages per-file service instances (parsed source plus a line index),
// converts between 1-based editor coordinates and byte offsets, and answers
// the semantic query primitives the tool handlers build on: declaration
// lookup, export discovery, project-wide reference search, and call graph
// extraction. Parsing is done with Tree-sitter using the TypeScript, TSX,
// and JavaScript grammars selected by file extension.
//
// Services are pure derived state from file content. The Manager re-parses
// a file whenever its size or modification time changes, so handlers never
// observe stale offsets across edits.
package langsvc
