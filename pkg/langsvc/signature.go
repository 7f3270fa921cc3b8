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
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// CallContext is the argument list a position sits inside, with the
// zero-based index of the argument being typed.
type CallContext struct {
	// Call is the enclosing call_expression or new_expression.
	Call *sitter.Node
	// Callee is the identifier naming the called function, nil when the
	// callee is a computed expression.
	Callee *sitter.Node
	// ActiveParameter is the count of argument separators before the
	// position.
	ActiveParameter int
}

// EnclosingCall finds the innermost call expression whose argument list
// contains the byte offset. Returns nil when the position is not inside
// any argument list.
func (s *Service) EnclosingCall(offset int) *CallContext {
	node := smallestNodeAt(s.Root(), uint32(offset))
	for node != nil {
		if node.Type() == "call_expression" || node.Type() == "new_expression" {
			args := node.ChildByFieldName("arguments")
			if args != nil && int(args.StartByte()) < offset && offset <= int(args.EndByte()) {
				fn := node.ChildByFieldName("function")
				if fn == nil {
					fn = node.ChildByFieldName("constructor")
				}
				var callee *sitter.Node
				if fn != nil {
					callee = calleeIdentifier(fn)
				}
				return &CallContext{
					Call:            node,
					Callee:          callee,
					ActiveParameter: activeParameter(args, offset),
				}
			}
		}
		node = node.Parent()
	}
	return nil
}

// activeParameter counts the argument separators that end at or before the
// offset. The index is positional: it does not clamp to the callee's
// declared parameter count.
func activeParameter(args *sitter.Node, offset int) int {
	active := 0
	for i := 0; i < int(args.ChildCount()); i++ {
		child := args.Child(i)
		if child.Type() == "," && int(child.EndByte()) <= offset {
			active++
		}
	}
	return active
}

// ParameterInfo is one declared parameter, split into name and type text.
type ParameterInfo struct {
	Name string
	Type string
}

// SignatureOf renders a callable declaration as a display label plus its
// parameter list and doc comment. Returns false for declarations without a
// parameter list.
func (s *Service) SignatureOf(decl Declaration) (label string, params []ParameterInfo, doc string, ok bool) {
	fn := decl.Node
	if fn.Type() == "variable_declarator" {
		if value := fn.ChildByFieldName("value"); value != nil {
			fn = value
		}
	}
	paramsNode := fn.ChildByFieldName("parameters")
	if paramsNode == nil {
		return "", nil, "", false
	}

	params = []ParameterInfo{}
	for i := 0; i < int(paramsNode.NamedChildCount()); i++ {
		child := paramsNode.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		params = append(params, parameterInfo(s, child))
	}

	label = decl.Name + s.Text(paramsNode)
	if ret := fn.ChildByFieldName("return_type"); ret != nil {
		label += s.Text(ret)
	}
	return label, params, s.DocComment(decl.Node), true
}

// parameterInfo splits one parameter node into name and type. Structured
// parameter nodes carry explicit pattern and type fields; plain identifiers
// fall back to splitting the text at the first colon.
func parameterInfo(s *Service, node *sitter.Node) ParameterInfo {
	if pattern := node.ChildByFieldName("pattern"); pattern != nil {
		info := ParameterInfo{Name: strings.TrimSuffix(s.Text(pattern), "?")}
		if t := node.ChildByFieldName("type"); t != nil {
			info.Type = strings.TrimSpace(strings.TrimPrefix(s.Text(t), ":"))
		}
		return info
	}
	text := s.Text(node)
	if idx := strings.Index(text, ":"); idx >= 0 {
		return ParameterInfo{
			Name: strings.TrimSuffix(strings.TrimSpace(text[:idx]), "?"),
			Type: strings.TrimSpace(text[idx+1:]),
		}
	}
	return ParameterInfo{Name: strings.TrimSuffix(strings.TrimSpace(text), "?")}
}

// DocComment returns the cleaned text of the JSDoc block immediately
// preceding a declaration, or empty. Declarations wrapped in an export
// statement or variable declaration look for the comment above the
// wrapper.
func (s *Service) DocComment(node *sitter.Node) string {
	for node != nil {
		parent := node.Parent()
		if parent == nil {
			break
		}
		t := parent.Type()
		if t != "export_statement" && t != "lexical_declaration" && t != "variable_declaration" {
			break
		}
		node = parent
	}
	prev := node.PrevNamedSibling()
	if prev == nil || prev.Type() != "comment" {
		return ""
	}
	text := s.Text(prev)
	if !strings.HasPrefix(text, "/**") {
		return ""
	}
	return cleanDocComment(text)
}

// cleanDocComment strips the comment markers and leading asterisks from a
// JSDoc block.
func cleanDocComment(text string) string {
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimSuffix(text, "*/")
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ParamDocs extracts @param descriptions from a cleaned JSDoc block,
// keyed by parameter name.
func ParamDocs(doc string) map[string]string {
	docs := make(map[string]string)
	for _, line := range strings.Split(doc, "\n") {
		if !strings.HasPrefix(line, "@param") {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(line, "@param"))
		// Skip an optional {type} braces block.
		if strings.HasPrefix(rest, "{") {
			if end := strings.Index(rest, "}"); end >= 0 {
				rest = strings.TrimSpace(rest[end+1:])
			}
		}
		name, desc, found := strings.Cut(rest, " ")
		if !found {
			continue
		}
		name = strings.TrimPrefix(name, "-")
		docs[name] = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(desc), "- "))
	}
	return docs
}
