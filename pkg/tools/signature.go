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
	"strings"

	"github.com/mgd34msu/tscope/internal/contract"
	"github.com/mgd34msu/tscope/pkg/langsvc"
)

// SignatureHelpArgs holds arguments for the signature-help tool.
type SignatureHelpArgs struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// SignatureHelpResponse is the signature-help result body. Signatures is
// empty when the position is not inside a call's argument list.
type SignatureHelpResponse struct {
	Signatures      []Signature `json:"signatures"`
	ActiveSignature int         `json:"active_signature"`
	ActiveParameter int         `json:"active_parameter"`
}

// SignatureHelp reports the signature of the function being called at a
// position inside an argument list, including every overload the callee
// declares.
func SignatureHelp(ctx context.Context, env *Env, args SignatureHelpArgs) *ToolResult {
	defer observe(metricSignatureHelp)()

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

	resp := SignatureHelpResponse{Signatures: []Signature{}}
	call := svc.EnclosingCall(offset)
	if call == nil || call.Callee == nil {
		return jsonResult(resp)
	}
	resp.ActiveParameter = call.ActiveParameter

	name := svc.Text(call.Callee)
	for _, loc := range calleeDeclarations(ctx, env, svc, name) {
		sig, ok := buildSignature(loc.Service, loc.Declaration, call.ActiveParameter)
		if !ok {
			continue
		}
		resp.Signatures = append(resp.Signatures, sig)
	}

	// Prefer the first overload that can still accept the argument being
	// typed; fall back to the first.
	for i, sig := range resp.Signatures {
		if len(sig.Parameters) > call.ActiveParameter {
			resp.ActiveSignature = i
			break
		}
	}

	env.Logger.Debug("tools.signature",
		"callee", name,
		"signatures", len(resp.Signatures),
		"active_parameter", resp.ActiveParameter,
	)
	return jsonResult(resp)
}

// calleeDeclarations resolves a callee name to its callable declarations,
// locally first and then through imports. Overload signatures and the
// implementation all share the name and are returned in source order.
func calleeDeclarations(ctx context.Context, env *Env, svc *langsvc.Service, name string) []langsvc.Located {
	var out []langsvc.Located
	for _, d := range svc.DeclarationsNamed(name) {
		if langsvc.IsCallableDeclaration(d) {
			out = append(out, langsvc.Located{Service: svc, Declaration: d})
		}
	}
	if len(out) > 0 {
		return out
	}
	targetSvc, _ := env.Manager.ResolveImportedCallable(ctx, svc, name)
	if targetSvc == nil {
		return nil
	}
	importedName := name
	for _, imp := range svc.Imports() {
		for _, b := range imp.Bindings {
			if b.Local == name && !b.Namespace {
				importedName = b.Imported
			}
		}
	}
	for _, d := range targetSvc.DeclarationsNamed(importedName) {
		if langsvc.IsCallableDeclaration(d) {
			out = append(out, langsvc.Located{Service: targetSvc, Declaration: d})
		}
	}
	return out
}

// buildSignature shapes one declaration into a signature-help entry.
func buildSignature(svc *langsvc.Service, decl langsvc.Declaration, active int) (Signature, bool) {
	label, params, doc, ok := svc.SignatureOf(decl)
	if !ok {
		return Signature{}, false
	}
	paramDocs := langsvc.ParamDocs(doc)

	sig := Signature{
		Label:           label,
		Documentation:   docSummary(doc),
		Parameters:      []SignatureParameter{},
		ActiveParameter: active,
	}
	for _, p := range params {
		sig.Parameters = append(sig.Parameters, SignatureParameter{
			Name:          p.Name,
			Type:          p.Type,
			Documentation: paramDocs[p.Name],
		})
	}
	return sig, true
}

// docSummary keeps the free-text part of a doc comment, dropping the @tag
// block that follows it.
func docSummary(doc string) string {
	if doc == "" {
		return ""
	}
	var lines []string
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "@") {
			break
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
