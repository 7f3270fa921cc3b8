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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// DefaultMaxFileSize is the largest file the manager will parse.
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// Manager owns the process-wide registry of per-file services. Acquisition
// is lazy: a file is read and parsed the first time it is queried, and
// re-parsed when its size or modification time changes. Concurrent creation
// of the same entry is harmless (last writer wins); services are pure
// functions of file content, so a duplicate parse is only wasted work.
// Replaced entries are simply dropped, keeping them valid for any handler
// that borrowed them before the refresh.
type Manager struct {
	mu       sync.RWMutex
	services map[string]*Service

	logger      *slog.Logger
	maxFileSize int64
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithMaxFileSize sets the maximum file size the manager will parse.
func WithMaxFileSize(bytes int64) ManagerOption {
	return func(m *Manager) {
		if bytes > 0 {
			m.maxFileSize = bytes
		}
	}
}

// NewManager creates a Manager. A nil logger disables logging.
func NewManager(logger *slog.Logger, opts ...ManagerOption) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Manager{
		services:    make(map[string]*Service),
		logger:      logger,
		maxFileSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NormalizePath converts path to absolute, forward-slash form. Relative
// paths are resolved against base.
func NormalizePath(base, path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, filepath.FromSlash(path))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return filepath.ToSlash(abs)
}

// ServiceForFile returns a ready service for the given absolute file path,
// creating or refreshing it as needed. It succeeds for any file that parses
// as TS/JS/TSX/JSX, whether or not the file belongs to a configured project.
func (m *Manager) ServiceForFile(ctx context.Context, path string) (*Service, error) {
	path = filepath.ToSlash(path)

	info, err := os.Stat(filepath.FromSlash(path))
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > m.maxFileSize {
		return nil, fmt.Errorf("%s exceeds max file size (%d > %d bytes)", path, info.Size(), m.maxFileSize)
	}

	m.mu.RLock()
	svc, ok := m.services[path]
	m.mu.RUnlock()
	if ok && !svc.stale(info.Size(), info.ModTime()) {
		return svc, nil
	}

	content, err := os.ReadFile(filepath.FromSlash(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	tree, err := parseSource(ctx, content, path)
	if err != nil {
		return nil, err
	}

	fresh := &Service{
		Path:    path,
		content: content,
		tree:    tree,
		lines:   NewLineIndex(content),
		size:    info.Size(),
		modTime: info.ModTime(),
	}

	// The superseded entry is dropped, never closed: a handler may still be
	// borrowing it, and its tree is reclaimed by the finalizer once the last
	// borrower lets go.
	m.mu.Lock()
	m.services[path] = fresh
	m.mu.Unlock()

	m.logger.Debug("langsvc.service.created", "path", path, "bytes", len(content))
	return fresh, nil
}

// PositionOffset converts a 1-based (line, column) position in the service's
// file to a 0-based byte offset. Callers must validate line/column are >= 1
// before calling; out-of-range positions are programming errors surfaced
// directly.
func (m *Manager) PositionOffset(svc *Service, line, column int) (int, error) {
	return svc.Lines().Offset(line, column)
}

// LineAndColumn converts a byte offset back to caller-facing 1-based
// coordinates.
func (m *Manager) LineAndColumn(svc *Service, offset int) (line, column int) {
	return svc.Lines().Position(offset)
}

// Invalidate drops the cached service for path, if any. The dropped
// service stays valid for anyone still holding it.
func (m *Manager) Invalidate(path string) {
	path = filepath.ToSlash(path)
	m.mu.Lock()
	delete(m.services, path)
	m.mu.Unlock()
}

// Close releases all cached services. Only safe at shutdown, once no
// borrowed service remains in use.
func (m *Manager) Close() {
	m.mu.Lock()
	for path, svc := range m.services {
		svc.close()
		delete(m.services, path)
	}
	m.mu.Unlock()
}
