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
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
)

// Reference is one occurrence of a symbol.
type Reference struct {
	// File is the absolute, slash-normalized path containing the occurrence.
	File string
	// Offset is the byte offset of the identifier.
	Offset int
	// Line and Column are 1-based caller-facing coordinates.
	Line   int
	Column int
	// IsDefinition marks the declaration's own name occurrence.
	IsDefinition bool
	// Node is the identifier node, valid while the file's service lives.
	Node *sitter.Node
}

// FindReferences locates every occurrence of the symbol `name` declared in
// declFile across the candidate files. Occurrences in the declaring file are
// matched by identifier text; occurrences elsewhere only count when the file
// imports the name from a specifier resolving back to declFile (named,
// aliased, or namespace imports, and re-export clauses). Lexical shadowing
// is not modeled.
//
// The declaring file is always searched even when absent from files.
func (m *Manager) FindReferences(ctx context.Context, declFile, name string, files []string) ([]Reference, error) {
	var refs []Reference

	seen := false
	for _, f := range files {
		if f == declFile {
			seen = true
		}
	}
	if !seen {
		files = append([]string{declFile}, files...)
	}

	for _, file := range files {
		svc, err := m.ServiceForFile(ctx, file)
		if err != nil {
			// Unparseable candidates are skipped, not fatal: reference
			// search is best-effort over whatever parses.
			m.logger.Debug("langsvc.references.skip", "path", file, "error", err)
			continue
		}
		if file == declFile {
			refs = append(refs, m.localReferences(svc, name)...)
		} else {
			refs = append(refs, m.importedReferences(svc, declFile, name)...)
		}
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].File != refs[j].File {
			return refs[i].File < refs[j].File
		}
		return refs[i].Offset < refs[j].Offset
	})
	return refs, nil
}

// localReferences matches identifier occurrences of name inside its own
// declaring file. The declaration's name node is flagged IsDefinition.
func (m *Manager) localReferences(svc *Service, name string) []Reference {
	defNodes := make(map[uint32]bool)
	for _, d := range svc.DeclarationsNamed(name) {
		defNodes[d.NameNode.StartByte()] = true
	}
	for _, e := range svc.Exports() {
		// Re-export specifiers declare the binding at their own position.
		if e.Name == name && e.ExportedFrom != "" && e.NameNode != nil {
			defNodes[e.NameNode.StartByte()] = true
		}
	}

	var refs []Reference
	walk(svc.Root(), func(node *sitter.Node) bool {
		if !identifierTypes[node.Type()] || svc.Text(node) != name {
			return true
		}
		refs = append(refs, m.makeReference(svc, node, defNodes[node.StartByte()]))
		return true
	})
	return refs
}

// importedReferences matches occurrences of name in a file other than its
// declaring file, gated on an import binding that resolves to declFile.
func (m *Manager) importedReferences(svc *Service, declFile, name string) []Reference {
	var refs []Reference

	localName := ""
	namespaces := make(map[string]bool)
	for _, imp := range svc.Imports() {
		target, ok := ResolveSpecifier(svc.Path, imp.Specifier)
		if !ok || target != declFile {
			continue
		}
		for _, b := range imp.Bindings {
			switch {
			case b.Namespace:
				namespaces[b.Local] = true
			case b.Imported == name:
				localName = b.Local
			}
		}
	}

	// Re-export clauses (`export { name } from './decl'`) reference the
	// symbol without introducing a local binding.
	for _, e := range svc.Exports() {
		if e.ExportedFrom == "" || e.NameNode == nil {
			continue
		}
		target, ok := ResolveSpecifier(svc.Path, e.ExportedFrom)
		if !ok || target != declFile {
			continue
		}
		if e.Name == name {
			refs = append(refs, m.makeReference(svc, e.NameNode, false))
		}
	}

	if localName == "" && len(namespaces) == 0 {
		return refs
	}

	walk(svc.Root(), func(node *sitter.Node) bool {
		switch {
		case localName != "" && identifierTypes[node.Type()] && svc.Text(node) == localName:
			refs = append(refs, m.makeReference(svc, node, false))
		case len(namespaces) > 0 && node.Type() == "member_expression":
			obj := node.ChildByFieldName("object")
			prop := node.ChildByFieldName("property")
			if obj != nil && prop != nil && obj.Type() == "identifier" &&
				namespaces[svc.Text(obj)] && svc.Text(prop) == name {
				refs = append(refs, m.makeReference(svc, prop, false))
			}
		}
		return true
	})
	return refs
}

func (m *Manager) makeReference(svc *Service, node *sitter.Node, isDef bool) Reference {
	line, col := svc.Lines().Position(int(node.StartByte()))
	return Reference{
		File:         svc.Path,
		Offset:       int(node.StartByte()),
		Line:         line,
		Column:       col,
		IsDefinition: isDef,
		Node:         node,
	}
}
