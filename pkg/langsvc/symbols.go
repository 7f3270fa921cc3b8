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

// SymbolKind is a normalized symbol kind label shared by all query results.
type SymbolKind string

// The closed set of normalized kinds. Node types with no mapping fall back
// to KindUnknown; the mapping must never be extended by ad-hoc string
// comparison elsewhere.
const (
	KindFunction    SymbolKind = "function"
	KindMethod      SymbolKind = "method"
	KindConstructor SymbolKind = "constructor"
	KindGetter      SymbolKind = "getter"
	KindSetter      SymbolKind = "setter"
	KindClass       SymbolKind = "class"
	KindInterface   SymbolKind = "interface"
	KindEnum        SymbolKind = "enum"
	KindTypeAlias   SymbolKind = "type"
	KindVariable    SymbolKind = "variable"
	KindProperty    SymbolKind = "property"
	KindScript      SymbolKind = "script"
	KindUnknown     SymbolKind = "unknown"
)

// declarationKinds maps Tree-sitter declaration node types to normalized
// kinds. method_definition entries are refined by classifyDeclaration to
// constructor/getter/setter where applicable.
var declarationKinds = map[string]SymbolKind{
	"function_declaration":           KindFunction,
	"generator_function_declaration": KindFunction,
	"function_signature":             KindFunction,
	"method_definition":              KindMethod,
	"method_signature":               KindMethod,
	"abstract_method_signature":      KindMethod,
	"class_declaration":              KindClass,
	"abstract_class_declaration":     KindClass,
	"interface_declaration":          KindInterface,
	"enum_declaration":               KindEnum,
	"type_alias_declaration":         KindTypeAlias,
	"variable_declarator":            KindVariable,
	"public_field_definition":        KindProperty,
	"property_signature":             KindProperty,
}

// identifierTypes are the node types that name things. property_identifier
// is deliberately absent: bare property matches (obj.name) are resolved
// separately through namespace-import analysis to avoid false positives.
var identifierTypes = map[string]bool{
	"identifier":                            true,
	"type_identifier":                       true,
	"shorthand_property_identifier":         true,
	"shorthand_property_identifier_pattern": true,
	"statement_identifier":                  true,
}

// Declaration is a named declaration found in a file.
type Declaration struct {
	Name string
	Kind SymbolKind
	// Node is the full declaration node; NameNode is its name identifier.
	Node     *sitter.Node
	NameNode *sitter.Node
}

// classifyDeclaration maps a declaration node to its normalized kind,
// refining method definitions into constructor/getter/setter.
func classifyDeclaration(s *Service, node *sitter.Node) SymbolKind {
	kind, ok := declarationKinds[node.Type()]
	if !ok {
		return KindUnknown
	}
	if node.Type() != "method_definition" {
		return kind
	}
	if name := node.ChildByFieldName("name"); name != nil && s.Text(name) == "constructor" {
		return KindConstructor
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		switch node.Child(i).Type() {
		case "get":
			return KindGetter
		case "set":
			return KindSetter
		}
	}
	return kind
}

// declarationName returns the name node of a declaration, or nil when the
// declaration is anonymous or destructured.
func declarationName(node *sitter.Node) *sitter.Node {
	name := node.ChildByFieldName("name")
	if name == nil {
		return nil
	}
	switch name.Type() {
	case "identifier", "type_identifier", "property_identifier":
		return name
	}
	return nil
}

// Declarations collects every named declaration in the file, walking the
// whole tree so nested functions and class members are included.
func (s *Service) Declarations() []Declaration {
	var decls []Declaration
	walk(s.Root(), func(node *sitter.Node) bool {
		if _, ok := declarationKinds[node.Type()]; !ok {
			return true
		}
		name := declarationName(node)
		if name == nil {
			return true
		}
		decls = append(decls, Declaration{
			Name:     s.Text(name),
			Kind:     classifyDeclaration(s, node),
			Node:     node,
			NameNode: name,
		})
		return true
	})
	return decls
}

// DeclarationsNamed returns the declarations in the file with the given name.
func (s *Service) DeclarationsNamed(name string) []Declaration {
	var out []Declaration
	for _, d := range s.Declarations() {
		if d.Name == name {
			out = append(out, d)
		}
	}
	return out
}

// IdentifierAt returns the identifier-like node covering the byte offset,
// or nil when the offset falls on whitespace, a keyword, or punctuation.
// property_identifier nodes are returned too so member accesses and method
// names can be resolved by the callers that know how to handle them.
func (s *Service) IdentifierAt(offset int) *sitter.Node {
	node := smallestNodeAt(s.Root(), uint32(offset))
	if node == nil {
		return nil
	}
	if identifierTypes[node.Type()] || node.Type() == "property_identifier" {
		return node
	}
	return nil
}

// smallestNodeAt descends to the smallest named node whose span contains
// the byte offset.
func smallestNodeAt(node *sitter.Node, offset uint32) *sitter.Node {
	if node == nil || offset < node.StartByte() || offset >= node.EndByte() {
		return nil
	}
	for {
		var next *sitter.Node
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			if offset >= child.StartByte() && offset < child.EndByte() {
				next = child
				break
			}
		}
		if next == nil {
			return node
		}
		node = next
	}
}

// walk calls fn for node and, when fn returns true, its children.
func walk(node *sitter.Node, fn func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		walk(node.Child(i), fn)
	}
}

// sameRange reports whether two nodes cover the same byte span.
func sameRange(a, b *sitter.Node) bool {
	return a != nil && b != nil && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}
