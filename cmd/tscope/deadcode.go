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

// runDeadCode executes the 'deadcode' CLI command, scanning for exported
// symbols with no references outside their declaring file.
//
// Flags:
//   - --json: Compact JSON output (default: pretty-printed)
//   - --include-tests: Count references from test files (default: true)
//
// Examples:
//
//	tscope deadcode
//	tscope deadcode src
//	tscope deadcode src --include-tests=false
func runDeadCode(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("deadcode", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "Compact JSON output")
	includeTests := fs.Bool("include-tests", true, "Count references from test files")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: tscope deadcode [options] [path]

Scans path (default: the project root) for exported symbols that no
other file references. Test files are scanned for references but never
reported as dead-code candidates themselves.

Options:
%s`, fs.FlagUsages())
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	path := "."
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	env := buildEnv(globals)
	defer env.Manager.Close()

	spinner := NewSpinner(NewProgressConfig(globals, *jsonOutput), "Scanning exports")
	result := tools.FindDeadCode(context.Background(), env, tools.DeadCodeArgs{
		Path:         path,
		IncludeTests: includeTests,
	})
	if spinner != nil {
		_ = spinner.Finish()
	}

	printResult(result, *jsonOutput)
}
