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
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/mgd34msu/tscope/pkg/tools"
)

// runCalls executes the 'calls' CLI command, reporting incoming and
// outgoing call relationships for the function at a position.
//
// Flags:
//   - --json: Compact JSON output (default: pretty-printed)
//   - --direction: incoming, outgoing, or both (default: both)
//
// Examples:
//
//	tscope calls src/app.ts 12 8
//	tscope calls src/app.ts 12 8 --direction incoming
func runCalls(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("calls", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "Compact JSON output")
	direction := fs.String("direction", "both", "Call direction: incoming, outgoing, or both")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: tscope calls [options] <file> <line> <column>

Shows which functions call the function at the given position
(incoming) and which functions it calls (outgoing). A position that
does not hold a function yields a null item rather than an error.

Options:
%s`, fs.FlagUsages())
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	file, line, column := parsePosition(fs.Args(), fs.Usage)
	env := buildEnv(globals)
	defer env.Manager.Close()

	result := tools.CallHierarchy(context.Background(), env, tools.CallHierarchyArgs{
		File:      file,
		Line:      line,
		Column:    column,
		Direction: *direction,
	})
	printResult(result, *jsonOutput)
}
