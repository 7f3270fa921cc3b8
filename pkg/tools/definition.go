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

	"github.com/mgd34msu/tscope/internal/contract"
)

// DefinitionArgs holds arguments for the go-to-definition tool.
type DefinitionArgs struct {
	File                   string `json:"file"`
	Line                   int    `json:"line"`
	Column                 int    `json:"column"`
	IncludeTypeDefinitions bool   `json:"include_type_definitions"`
}

// DefinitionResponse is the go-to-definition result body. Count always
// equals len(Definitions).
type DefinitionResponse struct {
	Definitions     []Location `json:"definitions"`
	Count           int        `json:"count"`
	TypeDefinitions []Location `json:"type_definitions,omitempty"`
}

// GoToDefinition resolves the symbol at a cursor position to its
// declaration site(s). A position with no definable symbol (whitespace, a
// keyword) yields an empty result, not an error.
func GoToDefinition(ctx context.Context, env *Env, args DefinitionArgs) *ToolResult {
	defer observe(metricDefinition)()

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

	resp := DefinitionResponse{Definitions: []Location{}}
	for _, loc := range env.Manager.Definitions(ctx, svc, offset) {
		resp.Definitions = append(resp.Definitions, locationFor(env, loc))
	}
	resp.Count = len(resp.Definitions)

	if args.IncludeTypeDefinitions {
		for _, loc := range env.Manager.TypeDefinitions(ctx, svc, offset) {
			resp.TypeDefinitions = append(resp.TypeDefinitions, locationFor(env, loc))
		}
	}

	env.Logger.Debug("tools.definition", "file", args.File, "line", args.Line, "column", args.Column, "count", resp.Count)
	return jsonResult(resp)
}
