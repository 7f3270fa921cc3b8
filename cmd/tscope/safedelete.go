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

// runSafeDelete executes the 'safedelete' CLI command, checking whether
// the symbol at a position can be removed without breaking other files.
//
// Examples:
//
//	tscope safedelete src/util.ts 4 17
func runSafeDelete(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("safedelete", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "Compact JSON output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: tscope safedelete [options] <file> <line> <column>

Checks whether deleting the symbol at the given position would break
any other file. References inside the declaring file are reported but
do not block deletion; references from any other file, including
tests, do.

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

	result := tools.SafeDelete(context.Background(), env, tools.SafeDeleteArgs{
		File:   file,
		Line:   line,
		Column: column,
	})
	printResult(result, *jsonOutput)
}
