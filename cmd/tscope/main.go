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

// Package main implements the tscope CLI for querying TypeScript and
// JavaScript codebases: definitions, dead exports, call hierarchies,
// signatures, and safe-delete checks.
//
// Usage:
//
//	tscope init                          Create .tscope.yaml configuration
//	tscope def <file> <line> <col>       Find the definition of a symbol
//	tscope deadcode [path]               Find unreferenced exports
//	tscope calls <file> <line> <col>     Show incoming/outgoing calls
//	tscope sig <file> <line> <col>       Show signature help at a call site
//	tscope safedelete <file> <line> <col> Check whether a symbol is safe to delete
//	tscope --mcp                         Start as MCP server (JSON-RPC over stdio)
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mgd34msu/tscope/internal/ui"
)

// Version information (set via ldflags during build)
var (
	version = "dev"     // Version string
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// GlobalFlags holds flags shared by every command.
type GlobalFlags struct {
	Root    string
	Debug   bool
	Quiet   bool
	NoColor bool
}

// main parses global flags and dispatches to command handlers, or starts
// the MCP server when --mcp is given.
func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version and exit")
		mcpMode     = flag.Bool("mcp", false, "Start as MCP server (JSON-RPC over stdio)")
		root        = flag.String("root", "", "Project root (default: walk up from cwd to tsconfig.json/package.json/.git)")
		debug       = flag.Bool("debug", false, "Enable debug logging to stderr")
		quiet       = flag.Bool("q", false, "Suppress progress output")
		noColor     = flag.Bool("no-color", false, "Disable colored output")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `tscope - TypeScript code intelligence

tscope answers structural questions about TypeScript and JavaScript
codebases without running the TypeScript compiler: where a symbol is
defined, which exports nothing uses, who calls a function, and whether
a symbol can be deleted safely. It integrates with MCP-compatible AI
tools over stdio.

Usage:
  tscope <command> [options]

Commands:
  init          Create .tscope.yaml configuration
  def           Find the definition of the symbol at a position
  deadcode      Find exported symbols nothing references
  calls         Show incoming and outgoing calls for a function
  sig           Show signature help for the call at a position
  safedelete    Check whether the symbol at a position is safe to delete
  completion    Generate shell completion script (bash|zsh|fish)

Global Options:
  --mcp         Start as MCP server (JSON-RPC over stdio)
  --root        Project root directory
  --debug       Enable debug logging to stderr
  --no-color    Disable colored output
  -q            Suppress progress output
  --version     Show version and exit

Examples:
  tscope init                              Create configuration
  tscope def src/app.ts 12 8               Definition of the symbol at 12:8
  tscope deadcode src                      Dead exports under src/
  tscope deadcode --include-tests=false    Ignore references from test files
  tscope calls src/app.ts 12 8 --direction incoming
  tscope sig src/app.ts 30 22              Signature of the call at 30:22
  tscope safedelete src/util.ts 4 17       Can this symbol go?
  tscope --mcp                             Start as MCP server

Positions are 1-based; columns count UTF-16 code units, matching
editor positions.

For detailed command help: tscope <command> --help

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("tscope version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		os.Exit(0)
	}

	globals := GlobalFlags{Root: *root, Debug: *debug, Quiet: *quiet, NoColor: *noColor}
	ui.InitColors(globals.NoColor)

	// MCP mode takes precedence
	if *mcpMode {
		runMCPServer(globals)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "init":
		runInit(cmdArgs, globals)
	case "def":
		runDef(cmdArgs, globals)
	case "deadcode":
		runDeadCode(cmdArgs, globals)
	case "calls":
		runCalls(cmdArgs, globals)
	case "sig":
		runSig(cmdArgs, globals)
	case "safedelete":
		runSafeDelete(cmdArgs, globals)
	case "completion":
		runCompletion(cmdArgs)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}
