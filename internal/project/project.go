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

// Package project locates the project root and loads the optional
// .tscope.yaml configuration. All paths in query results are reported
// relative to the resolved root with forward slashes.
package project

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-project configuration file.
const ConfigFileName = ".tscope.yaml"

// rootMarkers identify a project root during the upward walk, checked in
// order.
var rootMarkers = []string{"tsconfig.json", "package.json", ".git"}

// Config holds the per-project configuration.
type Config struct {
	// Exclude lists additional path substrings to skip during analysis.
	Exclude []string `yaml:"exclude"`

	// MaxFileSize overrides the largest source file to parse, in bytes.
	MaxFileSize int64 `yaml:"max_file_size"`
}

// Project is a resolved project root plus its configuration and ignore
// rules.
type Project struct {
	// Root is the absolute, slash-normalized project root.
	Root string

	Config Config

	gitignore *ignore.GitIgnore
}

// Find walks upward from start looking for a root marker (tsconfig.json,
// package.json, .git). When none is found the start directory itself is
// the root, so queries on loose files still work.
func Find(start string, logger *slog.Logger) (*Project, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", start, err)
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	root := abs
	for dir := abs; ; {
		if hasRootMarker(dir) {
			root = dir
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	p, err := Load(root)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Debug("project.root.resolved", "root", p.Root)
	}
	return p, nil
}

func hasRootMarker(dir string) bool {
	for _, marker := range rootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// Load builds a Project for an explicit root, reading .tscope.yaml and
// .gitignore when present.
func Load(root string) (*Project, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}
	p := &Project{Root: filepath.ToSlash(abs)}

	cfgPath := filepath.Join(abs, ConfigFileName)
	if data, err := os.ReadFile(cfgPath); err == nil {
		if err := yaml.Unmarshal(data, &p.Config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", cfgPath, err)
		}
	}

	if gi, err := ignore.CompileIgnoreFile(filepath.Join(abs, ".gitignore")); err == nil {
		p.gitignore = gi
	}
	return p, nil
}

// Rel converts an absolute path to forward-slash, root-relative form. Paths
// outside the root are returned slash-normalized but unchanged.
func (p *Project) Rel(path string) string {
	path = filepath.ToSlash(path)
	rel, err := filepath.Rel(filepath.FromSlash(p.Root), filepath.FromSlash(path))
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

// Abs resolves a possibly relative, possibly backslashed path against the
// project root into absolute slash form.
func (p *Project) Abs(path string) string {
	path = filepath.ToSlash(strings.ReplaceAll(path, `\`, "/"))
	if !filepath.IsAbs(filepath.FromSlash(path)) {
		path = p.Root + "/" + path
	}
	abs, err := filepath.Abs(filepath.FromSlash(path))
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(abs)
}

// Ignored reports whether a path is excluded by .gitignore or the
// configured exclude list.
func (p *Project) Ignored(path string) bool {
	rel := p.Rel(path)
	for _, pattern := range p.Config.Exclude {
		if pattern != "" && strings.Contains(rel, pattern) {
			return true
		}
	}
	if p.gitignore != nil && p.gitignore.MatchesPath(rel) {
		return true
	}
	return false
}
