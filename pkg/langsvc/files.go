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
	"io/fs"
	"path/filepath"
	"strings"
)

// skipDirs are directory names never descended into during file
// enumeration, on top of hidden directories and gitignored paths.
var skipDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"coverage":     true,
}

// testPathMarkers identify test files by path convention.
var testPathMarkers = []string{".test.", ".spec.", "__tests__/", "/test/", "/tests/"}

// IsTestFile reports whether the path looks like a test file.
func IsTestFile(path string) bool {
	p := filepath.ToSlash(path)
	for _, marker := range testPathMarkers {
		if strings.Contains(p, marker) {
			return true
		}
	}
	return false
}

// IgnoreFunc reports whether a path should be excluded from enumeration,
// typically backed by a .gitignore matcher.
type IgnoreFunc func(path string) bool

// SourceFiles enumerates analyzable source files under root, skipping
// hidden directories, the fixed skip list, and anything the ignore func
// excludes. Returned paths are absolute and slash-normalized, sorted by
// the walk order (lexical).
func SourceFiles(root string, ignored IgnoreFunc) ([]string, error) {
	var files []string
	root = filepath.FromSlash(root)
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p != root && (strings.HasPrefix(name, ".") || skipDirs[name]) {
				return filepath.SkipDir
			}
			if ignored != nil && p != root && ignored(p) {
				return filepath.SkipDir
			}
			return nil
		}
		if !isSourcePath(p) {
			return nil
		}
		if ignored != nil && ignored(p) {
			return nil
		}
		files = append(files, filepath.ToSlash(p))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
