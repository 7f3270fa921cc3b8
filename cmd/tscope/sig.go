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

// runSig executes the 'sig' CLI command, showing signature help for the
// call expression surrounding a position.
//
// Examples:
//
//	tscope sig src/app.ts 30 22
func runSig(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("sig", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "Compact JSON output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: tscope sig [options] <file> <line> <column>

Shows the signature of the function being called at the given
position, with the active parameter index. Positions outside any
argument list yield an empty signature list.

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

	result := tools.SignatureHelp(context.Background(), env, tools.SignatureHelpArgs{
		File:   file,
		Line:   line,
		Column: column,
	})
	printResult(result, *jsonOutput)
}
