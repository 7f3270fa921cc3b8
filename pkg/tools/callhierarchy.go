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
	"sort"

	"github.com/mgd34msu/tscope/internal/contract"
	"github.com/mgd34msu/tscope/pkg/langsvc"
)

// CallHierarchyArgs holds arguments for the call-hierarchy tool.
type CallHierarchyArgs struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Direction string `json:"direction"` // incoming | outgoing | both (default)
}

// CallHierarchyResponse is the call-hierarchy result body. Item is null
// when the position holds no callable symbol.
type CallHierarchyResponse struct {
	Item     *CallHierarchyItem `json:"item"`
	Incoming []IncomingCall     `json:"incoming"`
	Outgoing []OutgoingCall     `json:"outgoing"`
}

// CallHierarchy resolves incoming and outgoing call relationships for the
// callable symbol at a position. A position without a callable symbol is a
// valid empty result: null item and empty lists.
func CallHierarchy(ctx context.Context, env *Env, args CallHierarchyArgs) *ToolResult {
	defer observe(metricCallHierarchy)()

	if v := contract.ValidateFile(args.File); !v.OK {
		return errorResult(v.Message, nil)
	}
	if v := contract.ValidatePosition(args.Line, args.Column); !v.OK {
		return errorResult(v.Message, map[string]any{"file": args.File})
	}
	if v := contract.ValidateDirection(args.Direction); !v.OK {
		return errorResult(v.Message, map[string]any{"file": args.File})
	}
	direction := args.Direction
	if direction == "" {
		direction = "both"
	}

	svc, offset, err := resolvePosition(ctx, env, args.File, args.Line, args.Column)
	if err != nil {
		return errorResult(errMessage(err), map[string]any{"file": args.File})
	}

	resp := CallHierarchyResponse{Incoming: []IncomingCall{}, Outgoing: []OutgoingCall{}}
	itemSvc, itemDecl := env.Manager.PrepareCallHierarchy(ctx, svc, offset)
	if itemDecl == nil {
		return jsonResult(resp)
	}
	item := hierarchyItem(env, itemSvc, *itemDecl)
	resp.Item = &item

	if direction == "incoming" || direction == "both" {
		incoming, err := collectIncoming(ctx, env, itemSvc, *itemDecl)
		if err != nil {
			return errorResult(errMessage(err), map[string]any{"file": args.File})
		}
		resp.Incoming = incoming
	}
	if direction == "outgoing" || direction == "both" {
		resp.Outgoing = collectOutgoing(ctx, env, itemSvc, *itemDecl)
	}

	env.Logger.Debug("tools.callhierarchy",
		"symbol", itemDecl.Name,
		"direction", direction,
		"incoming", len(resp.Incoming),
		"outgoing", len(resp.Outgoing),
	)
	return jsonResult(resp)
}

// hierarchyItem shapes a declaration into a call-hierarchy item.
func hierarchyItem(env *Env, svc *langsvc.Service, decl langsvc.Declaration) CallHierarchyItem {
	node := decl.NameNode
	if node == nil {
		node = decl.Node
	}
	line, col := svc.Lines().Position(int(node.StartByte()))
	return CallHierarchyItem{
		Name:   decl.Name,
		Kind:   string(decl.Kind),
		File:   env.Project.Rel(svc.Path),
		Line:   line,
		Column: col,
	}
}

// collectIncoming groups every call site that invokes the item by the
// calling function. Top-level calls are attributed to a script item for
// the containing file.
func collectIncoming(ctx context.Context, env *Env, itemSvc *langsvc.Service, item langsvc.Declaration) ([]IncomingCall, error) {
	files, err := langsvc.SourceFiles(env.Project.Root, env.Project.Ignored)
	if err != nil {
		return nil, err
	}
	refs, err := env.Manager.FindReferences(ctx, itemSvc.Path, item.Name, files)
	if err != nil {
		return nil, err
	}

	type callerKey struct {
		file string
		line int
	}
	groups := make(map[callerKey]*IncomingCall)
	var order []callerKey

	for _, ref := range refs {
		if ref.IsDefinition || ref.Node == nil || !langsvc.IsCallPosition(ref.Node) {
			continue
		}
		refSvc, err := env.Manager.ServiceForFile(ctx, ref.File)
		if err != nil {
			continue
		}
		caller := refSvc.EnclosingCallable(ref.Offset)
		var from CallHierarchyItem
		if caller != nil {
			from = hierarchyItem(env, refSvc, *caller)
		} else {
			from = hierarchyItem(env, refSvc, refSvc.ModuleItem())
		}

		key := callerKey{file: from.File, line: from.Line}
		group, ok := groups[key]
		if !ok {
			group = &IncomingCall{From: from, CallSites: []CallSite{}}
			groups[key] = group
			order = append(order, key)
		}
		group.CallSites = append(group.CallSites, CallSite{
			File:    env.Project.Rel(ref.File),
			Line:    ref.Line,
			Column:  ref.Column,
			Preview: refSvc.Lines().Preview(ref.Offset),
		})
	}

	incoming := make([]IncomingCall, 0, len(order))
	for _, key := range order {
		incoming = append(incoming, *groups[key])
	}
	sort.Slice(incoming, func(i, j int) bool {
		if incoming[i].From.File != incoming[j].From.File {
			return incoming[i].From.File < incoming[j].From.File
		}
		return incoming[i].From.Line < incoming[j].From.Line
	})
	return incoming, nil
}

// collectOutgoing groups the call expressions inside the item's body by
// resolved callee. Callees that resolve to nothing (builtins, unparsed
// packages) are skipped.
func collectOutgoing(ctx context.Context, env *Env, itemSvc *langsvc.Service, item langsvc.Declaration) []OutgoingCall {
	type calleeKey struct {
		file string
		line int
	}
	groups := make(map[calleeKey]*OutgoingCall)
	var order []calleeKey

	for _, site := range itemSvc.CallsWithin(&item) {
		if site.Callee == nil {
			continue
		}
		name := itemSvc.Text(site.Callee)
		if name == "" {
			continue
		}

		calleeSvc, calleeDecl := resolveCallee(ctx, env, itemSvc, name)
		if calleeDecl == nil {
			continue
		}
		to := hierarchyItem(env, calleeSvc, *calleeDecl)

		key := calleeKey{file: to.File, line: to.Line}
		group, ok := groups[key]
		if !ok {
			group = &OutgoingCall{To: to, CallSites: []CallSite{}}
			groups[key] = group
			order = append(order, key)
		}
		line, col := itemSvc.Lines().Position(int(site.Callee.StartByte()))
		group.CallSites = append(group.CallSites, CallSite{
			File:    env.Project.Rel(itemSvc.Path),
			Line:    line,
			Column:  col,
			Preview: itemSvc.Lines().Preview(int(site.Callee.StartByte())),
		})
	}

	outgoing := make([]OutgoingCall, 0, len(order))
	for _, key := range order {
		outgoing = append(outgoing, *groups[key])
	}
	sort.Slice(outgoing, func(i, j int) bool {
		if outgoing[i].To.File != outgoing[j].To.File {
			return outgoing[i].To.File < outgoing[j].To.File
		}
		return outgoing[i].To.Line < outgoing[j].To.Line
	})
	return outgoing
}

// resolveCallee finds the callable declaration a call site's name refers
// to, locally first and then through imports.
func resolveCallee(ctx context.Context, env *Env, svc *langsvc.Service, name string) (*langsvc.Service, *langsvc.Declaration) {
	for _, d := range svc.DeclarationsNamed(name) {
		if langsvc.IsCallableDeclaration(d) {
			decl := d
			return svc, &decl
		}
	}
	return env.Manager.ResolveImportedCallable(ctx, svc, name)
}
