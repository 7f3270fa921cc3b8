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
	"os"
	"path"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// SourceExtensions lists the file extensions the language service analyzes,
// in module-resolution priority order.
var SourceExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".mts", ".cts", ".mjs", ".cjs"}

// ImportBinding is one local name introduced by an import statement.
type ImportBinding struct {
	// Local is the name the binding is referenced by in this file.
	Local string
	// Imported is the exported name in the source module; "default" for a
	// default import. Empty for namespace imports.
	Imported string
	// Namespace is true for `import * as ns` bindings.
	Namespace bool
	// Node is the node introducing the binding (specifier or clause).
	Node *sitter.Node
}

// Import is one import statement with its resolved bindings.
type Import struct {
	// Specifier is the module string as written (quotes stripped).
	Specifier string
	Bindings  []ImportBinding
	Node      *sitter.Node
}

// Imports parses the file's top-level import statements.
func (s *Service) Imports() []Import {
	var imports []Import
	root := s.Root()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() != "import_statement" {
			continue
		}
		imp := Import{Node: stmt}
		if src := stmt.ChildByFieldName("source"); src != nil {
			imp.Specifier = stringValue(s, src)
		}
		for j := 0; j < int(stmt.NamedChildCount()); j++ {
			clause := stmt.NamedChild(j)
			if clause.Type() != "import_clause" {
				continue
			}
			s.collectImportBindings(clause, &imp)
		}
		imports = append(imports, imp)
	}
	return imports
}

func (s *Service) collectImportBindings(clause *sitter.Node, imp *Import) {
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		child := clause.NamedChild(i)
		switch child.Type() {
		case "identifier":
			// Default import: import x from 'm'
			imp.Bindings = append(imp.Bindings, ImportBinding{
				Local:    s.Text(child),
				Imported: "default",
				Node:     child,
			})
		case "namespace_import":
			// import * as ns from 'm'
			for j := 0; j < int(child.NamedChildCount()); j++ {
				if id := child.NamedChild(j); id.Type() == "identifier" {
					imp.Bindings = append(imp.Bindings, ImportBinding{
						Local:     s.Text(id),
						Namespace: true,
						Node:      child,
					})
				}
			}
		case "named_imports":
			// import { a, b as c } from 'm'
			for j := 0; j < int(child.NamedChildCount()); j++ {
				spec := child.NamedChild(j)
				if spec.Type() != "import_specifier" {
					continue
				}
				name := spec.ChildByFieldName("name")
				if name == nil {
					continue
				}
				binding := ImportBinding{
					Local:    s.Text(name),
					Imported: s.Text(name),
					Node:     spec,
				}
				if alias := spec.ChildByFieldName("alias"); alias != nil {
					binding.Local = s.Text(alias)
				}
				imp.Bindings = append(imp.Bindings, binding)
			}
		}
	}
}

// stringValue returns the contents of a string literal node without quotes.
func stringValue(s *Service, node *sitter.Node) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if frag := node.NamedChild(i); frag.Type() == "string_fragment" {
			return s.Text(frag)
		}
	}
	return strings.Trim(s.Text(node), `'"`+"`")
}

// ResolveSpecifier resolves a relative module specifier against the
// importing file, trying each source extension and index files, the way the
// TypeScript resolver does for relative paths. Bare (package) specifiers
// are not resolved and return false.
func ResolveSpecifier(fromFile, specifier string) (string, bool) {
	if !strings.HasPrefix(specifier, "./") && !strings.HasPrefix(specifier, "../") {
		return "", false
	}
	base := path.Join(path.Dir(fromFile), specifier)

	candidates := make([]string, 0, 2*len(SourceExtensions)+1)
	candidates = append(candidates, base)
	for _, ext := range SourceExtensions {
		candidates = append(candidates, base+ext)
	}
	for _, ext := range SourceExtensions {
		candidates = append(candidates, path.Join(base, "index"+ext))
	}

	for _, cand := range candidates {
		if info, err := os.Stat(cand); err == nil && !info.IsDir() && isSourcePath(cand) {
			return cand, true
		}
	}
	return "", false
}

// isSourcePath reports whether the path has a supported source extension.
func isSourcePath(p string) bool {
	lower := strings.ToLower(p)
	for _, ext := range SourceExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
