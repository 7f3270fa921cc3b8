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
	"time"

	sitter "github.com/smacker/go-tree-sitter"
)

// Service holds the parsed state of one source file: its content, syntax
// tree, and line index. Handlers borrow a Service for the duration of a
// single request and never retain it; the owning Manager may replace it at
// any time since it is pure derived state from disk content.
type Service struct {
	// Path is the absolute, slash-normalized path of the file.
	Path string

	content []byte
	tree    *sitter.Tree
	lines   *LineIndex

	size    int64
	modTime time.Time
}

// Content returns the raw file content the service was built from.
func (s *Service) Content() []byte {
	return s.content
}

// Root returns the root node of the syntax tree.
func (s *Service) Root() *sitter.Node {
	return s.tree.RootNode()
}

// Lines returns the line index for position conversion.
func (s *Service) Lines() *LineIndex {
	return s.lines
}

// Text returns the source text of a node.
func (s *Service) Text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return string(s.content[n.StartByte():n.EndByte()])
}

// close releases the underlying syntax tree. Called only from
// Manager.Close at shutdown; a superseded or invalidated service is
// dropped instead, so borrowers holding it are never left with a freed
// tree.
func (s *Service) close() {
	if s.tree != nil {
		s.tree.Close()
		s.tree = nil
	}
}

// stale reports whether the on-disk file no longer matches the state this
// service was built from.
func (s *Service) stale(size int64, modTime time.Time) bool {
	return s.size != size || !s.modTime.Equal(modTime)
}
