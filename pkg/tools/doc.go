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

// Package tools implements the tscope code-intelligence tool handlers,
// shared by the MCP server and the CLI subcommands.
//
// Every handler is a stateless wrapper around the language service
// manager: it validates its arguments, resolves the caller's 1-based
// line/column into a byte offset, runs one semantic query, and shapes the
// raw result into a stable JSON contract. Failures never escape a handler;
// they are reported through the result envelope's IsError flag with a JSON
// error body so callers always receive well-formed JSON.
package tools
