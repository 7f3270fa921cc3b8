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

	"github.com/mgd34msu/tscope/internal/contract"
	"github.com/mgd34msu/tscope/pkg/langsvc"
)

// SafeDeleteArgs holds arguments for the safe-delete check.
type SafeDeleteArgs struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// SafeDeleteResponse is the safe-delete result body. Only references from
// other files block deletion; references inside the declaring file are
// reported but assumed to disappear with the deletion.
type SafeDeleteResponse struct {
	Safe               bool                `json:"safe"`
	Name               string              `json:"name,omitempty"`
	Reason             string              `json:"reason"`
	SelfReferences     []ReferenceLocation `json:"self_references"`
	ExternalReferences []ReferenceLocation `json:"external_references"`
}

// SafeDelete reports whether the symbol at a position can be deleted
// without breaking any other file in the project. Test files count as
// blockers like any other file.
func SafeDelete(ctx context.Context, env *Env, args SafeDeleteArgs) *ToolResult {
	defer observe(metricSafeDelete)()

	if v := contract.ValidateFile(args.File); !v.OK {
		return errorResult(v.Message, nil)
	}
	if v := contract.ValidatePosition(args.Line, args.Column); !v.OK {
		return errorResult(v.Message, map[string]any{"file": args.File})
	}

	svc, offset, err := resolvePosition(ctx, env, args.File, args.Line, args.Column)
	if err != nil {
		return errorResult(errMessage(err), map[string]any{"file": args.File})
	}

	resp := SafeDeleteResponse{
		SelfReferences:     []ReferenceLocation{},
		ExternalReferences: []ReferenceLocation{},
	}

	id := svc.IdentifierAt(offset)
	if id == nil {
		// Nothing resolvable at the position means nothing to break.
		resp.Safe = true
		resp.Reason = "no symbol found at position; nothing to delete"
		return jsonResult(resp)
	}
	name := svc.Text(id)
	resp.Name = name

	declLine := declarationLine(svc, name, int(id.StartByte()))

	files, err := langsvc.SourceFiles(env.Project.Root, env.Project.Ignored)
	if err != nil {
		return errorResult(errMessage(err), map[string]any{"file": args.File})
	}
	refs, err := env.Manager.FindReferences(ctx, svc.Path, name, files)
	if err != nil {
		return errorResult(errMessage(err), map[string]any{"file": args.File})
	}

	for _, ref := range refs {
		if ref.File == svc.Path {
			if ref.Line == declLine {
				// Part of the declaration being deleted.
				continue
			}
			resp.SelfReferences = append(resp.SelfReferences, referenceFor(ctx, env, ref))
			continue
		}
		resp.ExternalReferences = append(resp.ExternalReferences, referenceFor(ctx, env, ref))
	}

	resp.Safe = len(resp.ExternalReferences) == 0
	switch {
	case resp.Safe && len(resp.SelfReferences) == 0:
		resp.Reason = fmt.Sprintf("%q has no references outside its declaration", name)
	case resp.Safe:
		resp.Reason = fmt.Sprintf("%q is only referenced within its own file; those references are deleted with it", name)
	default:
		resp.Reason = fmt.Sprintf("%q has %d reference(s) in other files that would break", name, len(resp.ExternalReferences))
	}

	env.Logger.Debug("tools.safedelete",
		"symbol", name,
		"safe", resp.Safe,
		"self", len(resp.SelfReferences),
		"external", len(resp.ExternalReferences),
	)
	return jsonResult(resp)
}

// declarationLine finds the line of the named declaration the position
// belongs to: the declaration whose name node is at the position when the
// cursor sits on a definition, otherwise the first declaration of that
// name in the file. Falls back to the position's own line.
func declarationLine(svc *langsvc.Service, name string, offset int) int {
	decls := svc.DeclarationsNamed(name)
	for _, d := range decls {
		if int(d.NameNode.StartByte()) == offset {
			line, _ := svc.Lines().Position(offset)
			return line
		}
	}
	if len(decls) > 0 {
		line, _ := svc.Lines().Position(int(decls[0].NameNode.StartByte()))
		return line
	}
	line, _ := svc.Lines().Position(offset)
	return line
}
