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
	sitter "github.com/smacker/go-tree-sitter"
)

// Export is one exported binding discovered by the export walk.
type Export struct {
	Name string
	Kind SymbolKind
	// ExportedFrom is the module specifier for `export { x } from 'm'`
	// re-export forms, empty otherwise.
	ExportedFrom string
	// Default is true for default exports, which dead-code analysis skips.
	Default bool
	// NameNode is the exported name's identifier node.
	NameNode *sitter.Node
}

// exportVisitor receives each discovered export during the walk.
type exportVisitor func(Export)

// Exports collects every export in the file: named declarations, export
// clauses, and re-exports. Default exports are reported with Default set so
// callers can skip them.
func (s *Service) Exports() []Export {
	var exports []Export
	s.visitExports(func(e Export) {
		exports = append(exports, e)
	})
	return exports
}

// visitExports walks top-level export statements, invoking visit per export.
func (s *Service) visitExports(visit exportVisitor) {
	root := s.Root()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() != "export_statement" {
			continue
		}
		s.visitExportStatement(stmt, visit)
	}
}

func (s *Service) visitExportStatement(stmt *sitter.Node, visit exportVisitor) {
	if isDefaultExport(stmt) {
		name, nameNode := s.defaultExportName(stmt)
		visit(Export{Name: name, Kind: s.defaultExportKind(stmt), Default: true, NameNode: nameNode})
		return
	}

	source := ""
	if src := stmt.ChildByFieldName("source"); src != nil {
		source = stringValue(s, src)
	}

	// export function f() {} / export const x = 1 / export class C {} ...
	if decl := stmt.ChildByFieldName("declaration"); decl != nil {
		s.visitExportedDeclaration(decl, visit)
		return
	}

	// export { a, b as c } [from 'm']  /  export * from 'm' (unnamed, skipped)
	for i := 0; i < int(stmt.NamedChildCount()); i++ {
		clause := stmt.NamedChild(i)
		if clause.Type() != "export_clause" {
			continue
		}
		for j := 0; j < int(clause.NamedChildCount()); j++ {
			spec := clause.NamedChild(j)
			if spec.Type() != "export_specifier" {
				continue
			}
			name := spec.ChildByFieldName("name")
			if name == nil {
				continue
			}
			exported := name
			if alias := spec.ChildByFieldName("alias"); alias != nil {
				exported = alias
			}
			visit(Export{
				Name:         s.Text(exported),
				Kind:         s.clauseExportKind(source, s.Text(name)),
				ExportedFrom: source,
				NameNode:     exported,
			})
		}
	}
}

// visitExportedDeclaration emits exports for a declaration attached to an
// export statement. Lexical declarations may carry several declarators.
func (s *Service) visitExportedDeclaration(decl *sitter.Node, visit exportVisitor) {
	switch decl.Type() {
	case "lexical_declaration", "variable_declaration":
		for i := 0; i < int(decl.NamedChildCount()); i++ {
			declarator := decl.NamedChild(i)
			if declarator.Type() != "variable_declarator" {
				continue
			}
			name := declarator.ChildByFieldName("name")
			if name == nil || name.Type() != "identifier" {
				continue // destructuring patterns are not tracked
			}
			visit(Export{
				Name:     s.Text(name),
				Kind:     KindVariable,
				NameNode: name,
			})
		}
	default:
		name := declarationName(decl)
		if name == nil {
			return
		}
		visit(Export{
			Name:     s.Text(name),
			Kind:     classifyDeclaration(s, decl),
			NameNode: name,
		})
	}
}

// isDefaultExport reports whether the export statement carries the
// `default` keyword.
func isDefaultExport(stmt *sitter.Node) bool {
	for i := 0; i < int(stmt.ChildCount()); i++ {
		if stmt.Child(i).Type() == "default" {
			return true
		}
	}
	return false
}

// defaultExportName returns the declared name of a default export when it
// has one (export default function f() {}), else "default".
func (s *Service) defaultExportName(stmt *sitter.Node) (string, *sitter.Node) {
	if decl := stmt.ChildByFieldName("declaration"); decl != nil {
		if name := declarationName(decl); name != nil {
			return s.Text(name), name
		}
	}
	return "default", nil
}

func (s *Service) defaultExportKind(stmt *sitter.Node) SymbolKind {
	if decl := stmt.ChildByFieldName("declaration"); decl != nil {
		if kind, ok := declarationKinds[decl.Type()]; ok {
			return kind
		}
	}
	return KindUnknown
}

// clauseExportKind resolves the kind for `export { x }` forms by looking up
// the local declaration; re-exports from other modules report unknown since
// the target is not parsed here.
func (s *Service) clauseExportKind(source, localName string) SymbolKind {
	if source != "" {
		return KindUnknown
	}
	for _, d := range s.DeclarationsNamed(localName) {
		return d.Kind
	}
	return KindUnknown
}
