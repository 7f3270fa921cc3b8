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

	sitter "github.com/smacker/go-tree-sitter"
)

// Located pairs a declaration with the service of the file containing it.
type Located struct {
	Service     *Service
	Declaration Declaration
}

// Definitions resolves the symbol at a byte offset to its declaration
// site(s). A position on whitespace, a keyword, or an unresolvable name
// yields an empty slice, which callers treat as a normal empty result.
//
// Resolution order: member access through a namespace import, local
// declarations, then named/default import bindings followed into the
// target module.
func (m *Manager) Definitions(ctx context.Context, svc *Service, offset int) []Located {
	id := svc.IdentifierAt(offset)
	if id == nil {
		return nil
	}
	name := svc.Text(id)

	// ns.symbol member access resolves into the namespace import's module.
	if id.Type() == "property_identifier" {
		if located := m.namespaceMemberDefinitions(ctx, svc, id, name); located != nil {
			return located
		}
	}

	var located []Located
	for _, d := range svc.DeclarationsNamed(name) {
		located = append(located, Located{Service: svc, Declaration: d})
	}
	if located != nil {
		return located
	}

	if targetSvc, decl := m.resolveImported(ctx, svc, name, nil); decl != nil {
		return []Located{{Service: targetSvc, Declaration: *decl}}
	}
	return nil
}

// namespaceMemberDefinitions resolves `ns.symbol` where ns is a namespace
// import binding.
func (m *Manager) namespaceMemberDefinitions(ctx context.Context, svc *Service, prop *sitter.Node, name string) []Located {
	member := prop.Parent()
	if member == nil || member.Type() != "member_expression" {
		return nil
	}
	obj := member.ChildByFieldName("object")
	if obj == nil || obj.Type() != "identifier" {
		return nil
	}
	nsName := svc.Text(obj)

	for _, imp := range svc.Imports() {
		for _, b := range imp.Bindings {
			if !b.Namespace || b.Local != nsName {
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
			var located []Located
			for _, d := range targetSvc.DeclarationsNamed(name) {
				located = append(located, Located{Service: targetSvc, Declaration: d})
			}
			return located
		}
	}
	return nil
}

// TypeDefinitions resolves the declared type of the symbol at offset: when
// the symbol's declaration carries a type annotation, the annotation's type
// name is resolved like any other symbol.
func (m *Manager) TypeDefinitions(ctx context.Context, svc *Service, offset int) []Located {
	for _, loc := range m.Definitions(ctx, svc, offset) {
		typeName := loc.Service.annotatedTypeName(loc.Declaration.Node)
		if typeName == "" {
			continue
		}
		var located []Located
		for _, d := range loc.Service.DeclarationsNamed(typeName) {
			if d.Kind == KindInterface || d.Kind == KindClass || d.Kind == KindTypeAlias || d.Kind == KindEnum {
				located = append(located, Located{Service: loc.Service, Declaration: d})
			}
		}
		if located == nil {
			if targetSvc, decl := m.resolveImported(ctx, loc.Service, typeName, nil); decl != nil {
				located = []Located{{Service: targetSvc, Declaration: *decl}}
			}
		}
		if located != nil {
			return located
		}
	}
	return nil
}

// annotatedTypeName extracts the type name from a declaration's type
// annotation (`const x: Foo`, `function f(): Foo`), empty when absent or
// not a named type.
func (s *Service) annotatedTypeName(decl *sitter.Node) string {
	annotation := decl.ChildByFieldName("type")
	if annotation == nil {
		annotation = decl.ChildByFieldName("return_type")
	}
	if annotation == nil {
		return ""
	}
	var name string
	walk(annotation, func(node *sitter.Node) bool {
		if name != "" {
			return false
		}
		if node.Type() == "type_identifier" {
			name = s.Text(node)
			return false
		}
		return true
	})
	return name
}
