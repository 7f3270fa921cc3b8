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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mgd34msu/tscope/pkg/tools"
)

// serverInstructions orient MCP clients before the first tool call.
const serverInstructions = `tscope answers structural questions about TypeScript/JavaScript code ` +
	`without running the compiler. Positions are 1-based; columns count UTF-16 ` +
	`code units, matching editor positions. File paths may be absolute or ` +
	`relative to the project root. Key tools: ts_definition (where is this ` +
	`symbol defined), ts_dead_code (which exports does nothing use), ` +
	`ts_call_hierarchy (who calls this / what does this call), ` +
	`ts_signature_help (what arguments does this call take), ts_safe_delete ` +
	`(can this symbol be removed without breaking other files).`

// runMCPServer starts tscope as an MCP server speaking JSON-RPC over
// stdio. Every tool returns a JSON text body; failures come back as error
// envelopes rather than protocol errors, so clients always get structured
// output.
func runMCPServer(globals GlobalFlags) {
	env := buildEnv(globals)
	defer env.Manager.Close()

	srv := server.NewMCPServer(
		"tscope",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(serverInstructions),
	)

	registerTools(srv, env)

	if err := server.ServeStdio(srv); err != nil {
		fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
		os.Exit(1)
	}
}

func registerTools(srv *server.MCPServer, env *tools.Env) {
	srv.AddTool(
		mcp.NewTool("ts_definition",
			mcp.WithDescription("Find where the symbol at a position is defined, following imports across files. Returns definitions with file, 1-based line/column, kind, and a source preview."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("file",
				mcp.Required(),
				mcp.Description("Source file path, absolute or relative to the project root"),
			),
			mcp.WithNumber("line",
				mcp.Required(),
				mcp.Description("1-based line number"),
			),
			mcp.WithNumber("column",
				mcp.Required(),
				mcp.Description("1-based column in UTF-16 code units"),
			),
			mcp.WithBoolean("include_type_definitions",
				mcp.Description("Also resolve the symbol's type annotations (default: false)"),
			),
		),
		guard(env, func(ctx context.Context, req mcp.CallToolRequest) *tools.ToolResult {
			return tools.GoToDefinition(ctx, env, tools.DefinitionArgs{
				File:                   stringArg(req, "file"),
				Line:                   intArg(req, "line"),
				Column:                 intArg(req, "column"),
				IncludeTypeDefinitions: boolArg(req, "include_type_definitions", false),
			})
		}),
	)

	srv.AddTool(
		mcp.NewTool("ts_dead_code",
			mcp.WithDescription("Find exported symbols that no other file references. Test files are searched for references but never reported as candidates. Same-file usage does not keep an export alive."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("path",
				mcp.Description("File or directory to scan (default: the project root)"),
			),
			mcp.WithBoolean("include_tests",
				mcp.Description("Count references from test files (default: true)"),
			),
		),
		guard(env, func(ctx context.Context, req mcp.CallToolRequest) *tools.ToolResult {
			args := tools.DeadCodeArgs{Path: stringArg(req, "path")}
			if v, ok := req.GetArguments()["include_tests"].(bool); ok {
				args.IncludeTests = &v
			}
			return tools.FindDeadCode(ctx, env, args)
		}),
	)

	srv.AddTool(
		mcp.NewTool("ts_call_hierarchy",
			mcp.WithDescription("Show which functions call the function at a position (incoming) and which functions it calls (outgoing). A position without a function yields a null item, not an error."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("file",
				mcp.Required(),
				mcp.Description("Source file path, absolute or relative to the project root"),
			),
			mcp.WithNumber("line",
				mcp.Required(),
				mcp.Description("1-based line number"),
			),
			mcp.WithNumber("column",
				mcp.Required(),
				mcp.Description("1-based column in UTF-16 code units"),
			),
			mcp.WithString("direction",
				mcp.Description("incoming, outgoing, or both (default: both)"),
			),
		),
		guard(env, func(ctx context.Context, req mcp.CallToolRequest) *tools.ToolResult {
			return tools.CallHierarchy(ctx, env, tools.CallHierarchyArgs{
				File:      stringArg(req, "file"),
				Line:      intArg(req, "line"),
				Column:    intArg(req, "column"),
				Direction: stringArg(req, "direction"),
			})
		}),
	)

	srv.AddTool(
		mcp.NewTool("ts_signature_help",
			mcp.WithDescription("Show the signature of the function being called at a position inside an argument list, including overloads, parameter types, JSDoc, and the active parameter index."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("file",
				mcp.Required(),
				mcp.Description("Source file path, absolute or relative to the project root"),
			),
			mcp.WithNumber("line",
				mcp.Required(),
				mcp.Description("1-based line number"),
			),
			mcp.WithNumber("column",
				mcp.Required(),
				mcp.Description("1-based column in UTF-16 code units"),
			),
		),
		guard(env, func(ctx context.Context, req mcp.CallToolRequest) *tools.ToolResult {
			return tools.SignatureHelp(ctx, env, tools.SignatureHelpArgs{
				File:   stringArg(req, "file"),
				Line:   intArg(req, "line"),
				Column: intArg(req, "column"),
			})
		}),
	)

	srv.AddTool(
		mcp.NewTool("ts_safe_delete",
			mcp.WithDescription("Check whether the symbol at a position can be deleted without breaking other files. References in the declaring file are reported but non-blocking; references from any other file, including tests, block."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("file",
				mcp.Required(),
				mcp.Description("Source file path, absolute or relative to the project root"),
			),
			mcp.WithNumber("line",
				mcp.Required(),
				mcp.Description("1-based line number"),
			),
			mcp.WithNumber("column",
				mcp.Required(),
				mcp.Description("1-based column in UTF-16 code units"),
			),
		),
		guard(env, func(ctx context.Context, req mcp.CallToolRequest) *tools.ToolResult {
			return tools.SafeDelete(ctx, env, tools.SafeDeleteArgs{
				File:   stringArg(req, "file"),
				Line:   intArg(req, "line"),
				Column: intArg(req, "column"),
			})
		}),
	)
}

// guard adapts a tool handler to the MCP contract and converts panics
// into error envelopes so one bad request cannot take down the stdio loop.
func guard(env *tools.Env, fn func(ctx context.Context, req mcp.CallToolRequest) *tools.ToolResult) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				env.Logger.Error("mcp.tool.panic", "tool", req.Params.Name, "panic", r)
				body, _ := json.Marshal(map[string]any{
					"error": fmt.Sprintf("internal error: %v", r),
				})
				result = mcp.NewToolResultError(string(body))
				err = nil
			}
		}()

		res := fn(ctx, req)
		if res.IsError {
			return mcp.NewToolResultError(res.Text), nil
		}
		return mcp.NewToolResultText(res.Text), nil
	}
}

// stringArg reads an optional string argument, empty when absent.
func stringArg(req mcp.CallToolRequest, key string) string {
	v, _ := req.GetArguments()[key].(string)
	return v
}

// intArg reads a numeric argument. JSON numbers arrive as float64.
func intArg(req mcp.CallToolRequest, key string) int {
	switch v := req.GetArguments()[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// boolArg reads an optional boolean argument with a default.
func boolArg(req mcp.CallToolRequest, key string, def bool) bool {
	if v, ok := req.GetArguments()[key].(bool); ok {
		return v
	}
	return def
}
