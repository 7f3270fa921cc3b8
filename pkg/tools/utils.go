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

	"github.com/mgd34msu/tscope/pkg/langsvc"
)

// resolvePosition is the shared front half of every positional handler:
// resolve the file argument against the project root, acquire its service,
// and convert the 1-based position to a byte offset. Line/column must
// already be validated >= 1.
func resolvePosition(ctx context.Context, env *Env, file string, line, column int) (*langsvc.Service, int, error) {
	abs := env.Project.Abs(file)
	svc, err := env.Manager.ServiceForFile(ctx, abs)
	if err != nil {
		return nil, 0, err
	}
	offset, err := env.Manager.PositionOffset(svc, line, column)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid position %d:%d in %s: %w", line, column, file, err)
	}
	return svc, offset, nil
}

// locationFor shapes a resolved declaration into output form.
func locationFor(env *Env, loc langsvc.Located) Location {
	line, col := loc.Service.Lines().Position(int(loc.Declaration.NameNode.StartByte()))
	return Location{
		File:    env.Project.Rel(loc.Service.Path),
		Line:    line,
		Column:  col,
		Kind:    string(loc.Declaration.Kind),
		Name:    loc.Declaration.Name,
		Preview: loc.Service.Lines().Preview(int(loc.Declaration.NameNode.StartByte())),
	}
}

// referenceFor shapes a reference into output form with a trimmed line
// preview from its file's service.
func referenceFor(ctx context.Context, env *Env, ref langsvc.Reference) ReferenceLocation {
	preview := ""
	if svc, err := env.Manager.ServiceForFile(ctx, ref.File); err == nil {
		preview = svc.Lines().Preview(ref.Offset)
	}
	return ReferenceLocation{
		File:    env.Project.Rel(ref.File),
		Line:    ref.Line,
		Column:  ref.Column,
		Preview: preview,
	}
}

// errMessage extracts a message from any recovered value or error.
func errMessage(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(v)
}
