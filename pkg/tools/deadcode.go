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

package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mgd34msu/tscope/pkg/langsvc"
)

// DeadCodeArgs holds arguments for the dead-code finder.
type DeadCodeArgs struct {
	// Path is a file or directory to analyze; empty means the project
	// root.
	Path string `json:"path"`
	// IncludeTests controls whether usage in test files counts as a live
	// reference. Defaults to true: test usage keeps an export alive.
	IncludeTests *bool `json:"include_tests"`
}

// DeadCodeResponse is the dead-code finder result body.
type DeadCodeResponse struct {
	DeadExports    []ExportInfo `json:"dead_exports"`
	FilesAnalyzed  int          `json:"files_analyzed"`
	ExportsChecked int          `json:"exports_checked"`
}

// FindDeadCode reports exports with zero references from files other than
// their own declaring file. Same-file usage alone does not keep an export
// alive: the tool answers "does anyone outside this file need this to be
// exported", and that policy is deliberate. Default exports are skipped
// entirely since reference search on them produces false positives.
func FindDeadCode(ctx context.Context, env *Env, args DeadCodeArgs) *ToolResult {
	defer observe(metricDeadCode)()

	includeTests := true
	if args.IncludeTests != nil {
		includeTests = *args.IncludeTests
	}

	target := env.Project.Root
	if args.Path != "" {
		target = env.Project.Abs(args.Path)
	}
	info, err := os.Stat(filepath.FromSlash(target))
	if err != nil {
		return errorResult(fmt.Sprintf("path not found: %s", args.Path), nil)
	}

	// Dead code is only sought in non-test files.
	var analyzed []string
	if info.IsDir() {
		files, err := langsvc.SourceFiles(target, env.Project.Ignored)
		if err != nil {
			return errorResult(errMessage(err), map[string]any{"path": args.Path})
		}
		for _, f := range files {
			if !langsvc.IsTestFile(f) {
				analyzed = append(analyzed, f)
			}
		}
	} else if !langsvc.IsTestFile(target) {
		analyzed = append(analyzed, target)
	}

	// Reference search spans the whole project, not just the analyzed
	// subtree: an import from a sibling directory keeps an export alive.
	searchable, err := langsvc.SourceFiles(env.Project.Root, env.Project.Ignored)
	if err != nil {
		return errorResult(errMessage(err), nil)
	}
	if !includeTests {
		kept := searchable[:0]
		for _, f := range searchable {
			if !langsvc.IsTestFile(f) {
				kept = append(kept, f)
			}
		}
		searchable = kept
	}

	resp := DeadCodeResponse{DeadExports: []ExportInfo{}}
	for _, file := range analyzed {
		svc, err := env.Manager.ServiceForFile(ctx, file)
		if err != nil {
			env.Logger.Debug("tools.deadcode.skip", "path", file, "error", err)
			continue
		}
		resp.FilesAnalyzed++
		for _, exp := range svc.Exports() {
			if exp.Default {
				continue
			}
			resp.ExportsChecked++

			refs, err := env.Manager.FindReferences(ctx, file, exp.Name, searchable)
			if err != nil {
				continue
			}
			external := 0
			for _, ref := range refs {
				if ref.File != file && !ref.IsDefinition {
					external++
				}
			}
			if external > 0 {
				continue
			}

			line, col := 0, 0
			if exp.NameNode != nil {
				line, col = svc.Lines().Position(int(exp.NameNode.StartByte()))
			}
			var exportedFrom *string
			if exp.ExportedFrom != "" {
				from := exp.ExportedFrom
				exportedFrom = &from
			}
			resp.DeadExports = append(resp.DeadExports, ExportInfo{
				Name:         exp.Name,
				Kind:         string(exp.Kind),
				File:         env.Project.Rel(file),
				Line:         line,
				Column:       col,
				ExportedFrom: exportedFrom,
			})
		}
	}

	sort.Slice(resp.DeadExports, func(i, j int) bool {
		if resp.DeadExports[i].File != resp.DeadExports[j].File {
			return resp.DeadExports[i].File < resp.DeadExports[j].File
		}
		return resp.DeadExports[i].Line < resp.DeadExports[j].Line
	})

	env.Logger.Debug("tools.deadcode",
		"files_analyzed", resp.FilesAnalyzed,
		"exports_checked", resp.ExportsChecked,
		"dead", len(resp.DeadExports),
	)
	return jsonResult(resp)
}
