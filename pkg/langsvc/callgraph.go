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

package langsvc

import (
	"context"
	"path"

	sitter "github.com/smacker/go-tree-sitter"
)

// callableTypes are the declaration node types that can anchor a call
// hierarchy. Variable declarators qualify when their value is a function
// expression or arrow function.
var callableTypes = map[string]bool{
	"function_declaration":           true,
	"generator_function_declaration": true,
	"function_signature":             true,
	"method_definition":              true,
	"method_signature":               true,
}

// isCallable reports whether a declaration can participate in a call
// hierarchy.
func isCallable(d Declaration) bool {
	if callableTypes[d.Node.Type()] {
		return true
	}
	if d.Node.Type() == "variable_declarator" {
		if value := d.Node.ChildByFieldName("value"); value != nil {
			switch value.Type() {
			case "arrow_function", "function_expression", "function":
				return true
			}
		}
	}
	return false
}

// PrepareCallHierarchy resolves the callable symbol at a byte offset: the
// named function the identifier declares, or the declaration a call site's
// callee resolves to. Returns nil when the position holds no callable
// symbol, which is a valid empty result rather than an error.
func (m *Manager) PrepareCallHierarchy(ctx context.Context, svc *Service, offset int) (*Service, *Declaration) {
	id := svc.IdentifierAt(offset)
	if id == nil {
		return nil, nil
	}
	name := svc.Text(id)

	// Most specific first: a declaration whose name node is this identifier.
	for _, d := range svc.DeclarationsNamed(name) {
		if sameRange(d.NameNode, id) && isCallable(d) {
			decl := d
			return svc, &decl
		}
	}

	// A call site or other mention: resolve locally, then through imports.
	for _, d := range svc.DeclarationsNamed(name) {
		if isCallable(d) {
			decl := d
			return svc, &decl
		}
	}
	return m.resolveImported(ctx, svc, name, isCallable)
}

// IsCallableDeclaration reports whether a declaration can participate in a
// call hierarchy.
func IsCallableDeclaration(d Declaration) bool {
	return isCallable(d)
}

// ResolveImportedCallable follows an import binding for name to a callable
// declaration in the target module.
func (m *Manager) ResolveImportedCallable(ctx context.Context, svc *Service, name string) (*Service, *Declaration) {
	return m.resolveImported(ctx, svc, name, isCallable)
}

// resolveImported follows an import binding for name to its declaration in
// the target module, filtered by accept.
func (m *Manager) resolveImported(ctx context.Context, svc *Service, name string, accept func(Declaration) bool) (*Service, *Declaration) {
	for _, imp := range svc.Imports() {
		for _, b := range imp.Bindings {
			if b.Local != name || b.Namespace {
				continue
			}
			target, ok := ResolveSpecifier(svc.Path, imp.Specifier)
			if !ok {
				continue
			}
			targetSvc, err := m.ServiceForFile(ctx, target)
			if err != nil {
				continue
			}
			for _, d := range targetSvc.DeclarationsNamed(b.Imported) {
				if accept == nil || accept(d) {
					decl := d
					return targetSvc, &decl
				}
			}
		}
	}
	return nil, nil
}

// EnclosingCallable returns the innermost named callable declaration whose
// body contains the byte offset, or nil at module top level.
func (s *Service) EnclosingCallable(offset int) *Declaration {
	node := smallestNodeAt(s.Root(), uint32(offset))
	for node != nil {
		if _, ok := declarationKinds[node.Type()]; ok {
			name := declarationName(node)
			if name != nil {
				d := Declaration{
					Name:     s.Text(name),
					Kind:     classifyDeclaration(s, node),
					Node:     node,
					NameNode: name,
				}
				if isCallable(d) {
					return &d
				}
			}
		}
		node = node.Parent()
	}
	return nil
}

// ModuleItem is the pseudo-declaration used to attribute top-level call
// sites to the containing script, mirroring how the compiler's call
// hierarchy reports module-scope calls.
func (s *Service) ModuleItem() Declaration {
	return Declaration{
		Name: path.Base(s.Path),
		Kind: KindScript,
		Node: s.Root(),
	}
}

// CallSite is one call expression and the identifier naming its callee.
type CallSite struct {
	// Callee is the identifier or property naming the called function.
	Callee *sitter.Node
	// Call is the whole call_expression node.
	Call *sitter.Node
}

// CallsWithin collects the call expressions inside a declaration's span.
func (s *Service) CallsWithin(decl *Declaration) []CallSite {
	var sites []CallSite
	walk(decl.Node, func(node *sitter.Node) bool {
		if node.Type() != "call_expression" && node.Type() != "new_expression" {
			return true
		}
		fn := node.ChildByFieldName("function")
		if fn == nil {
			fn = node.ChildByFieldName("constructor")
		}
		if fn == nil {
			return true
		}
		callee := calleeIdentifier(fn)
		if callee != nil {
			sites = append(sites, CallSite{Callee: callee, Call: node})
		}
		return true
	})
	return sites
}

// calleeIdentifier extracts the identifier naming the callee: a bare
// identifier, or the property of a member expression (obj.fn()).
func calleeIdentifier(fn *sitter.Node) *sitter.Node {
	switch fn.Type() {
	case "identifier":
		return fn
	case "member_expression":
		return fn.ChildByFieldName("property")
	}
	return nil
}

// IsCallPosition reports whether an identifier node is the callee of a call
// expression (directly or through a member expression).
func IsCallPosition(node *sitter.Node) bool {
	parent := node.Parent()
	if parent == nil {
		return false
	}
	if parent.Type() == "member_expression" {
		node = parent
		parent = parent.Parent()
		if parent == nil {
			return false
		}
	}
	if parent.Type() != "call_expression" && parent.Type() != "new_expression" {
		return false
	}
	fn := parent.ChildByFieldName("function")
	if fn == nil {
		fn = parent.ChildByFieldName("constructor")
	}
	return sameRange(fn, node)
}
