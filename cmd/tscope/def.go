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
	"flag"
	"fmt"
	"os"

	"github.com/mgd34msu/tscope/pkg/tools"
)

// runDef executes the 'def' CLI command, resolving the definition of the
// symbol at a position.
//
// Flags:
//   - --json: Compact JSON output (default: pretty-printed)
//   - --types: Also resolve the symbol's type annotations
//
// Examples:
//
//	tscope def src/app.ts 12 8
//	tscope def src/app.ts 12 8 --types
func runDef(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("def", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "Compact JSON output")
	withTypes := fs.Bool("types", false, "Also resolve type definitions")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: tscope def [options] <file> <line> <column>

Finds where the symbol at the given 1-based position is defined,
following imports across files.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	file, line, column := parsePosition(fs.Args(), fs.Usage)
	env := buildEnv(globals)
	defer env.Manager.Close()

	result := tools.GoToDefinition(context.Background(), env, tools.DefinitionArgs{
		File:                   file,
		Line:                   line,
		Column:                 column,
		IncludeTypeDefinitions: *withTypes,
	})
	printResult(result, *jsonOutput)
}
