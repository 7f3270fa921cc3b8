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

package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mgd34msu/tscope/internal/project"
	"github.com/mgd34msu/tscope/pkg/langsvc"
)

// Env carries the shared collaborators every handler needs: the language
// service manager and the resolved project. Passing it by reference keeps
// the manager injectable so tests can use a fresh registry.
type Env struct {
	Manager *langsvc.Manager
	Project *project.Project
	Logger  *slog.Logger
}

// NewEnv creates a handler environment. A nil logger disables logging.
func NewEnv(mgr *langsvc.Manager, proj *project.Project, logger *slog.Logger) *Env {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Env{Manager: mgr, Project: proj, Logger: logger}
}

// ToolResult is the result envelope shared by every handler. Text always
// holds a JSON document; IsError is the sole signal distinguishing success
// from failure.
type ToolResult struct {
	Text    string
	IsError bool
}

// NewResult creates a successful tool result.
func NewResult(text string) *ToolResult {
	return &ToolResult{Text: text}
}

// NewError creates an error tool result.
func NewError(text string) *ToolResult {
	return &ToolResult{Text: text, IsError: true}
}

// jsonResult marshals a response body into a success envelope.
func jsonResult(v any) *ToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(fmt.Sprintf("encode response: %v", err), nil)
	}
	return NewResult(string(data))
}

// errorResult builds the standard error body: {"error": msg, ...context}.
func errorResult(msg string, context map[string]any) *ToolResult {
	body := map[string]any{"error": msg}
	for k, v := range context {
		body[k] = v
	}
	data, err := json.Marshal(body)
	if err != nil {
		return NewError(fmt.Sprintf(`{"error":%q}`, msg))
	}
	return &ToolResult{Text: string(data), IsError: true}
}

// Location is a definition site in query output.
type Location struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Preview string `json:"preview"`
}

// ReferenceLocation is a reference occurrence in query output.
type ReferenceLocation struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Preview string `json:"preview"`
}

// CallHierarchyItem identifies a function participating in a call
// hierarchy.
type CallHierarchyItem struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// CallSite is one call location in call-hierarchy output.
type CallSite struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Preview string `json:"preview"`
}

// IncomingCall groups the call sites from one calling function.
type IncomingCall struct {
	From      CallHierarchyItem `json:"from"`
	CallSites []CallSite        `json:"call_sites"`
}

// OutgoingCall groups the call sites reaching one called function.
type OutgoingCall struct {
	To        CallHierarchyItem `json:"to"`
	CallSites []CallSite        `json:"call_sites"`
}

// SignatureParameter is one parameter in a signature-help entry.
type SignatureParameter struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Documentation string `json:"documentation,omitempty"`
}

// Signature is one overload in signature-help output.
type Signature struct {
	Label           string               `json:"label"`
	Documentation   string               `json:"documentation,omitempty"`
	Parameters      []SignatureParameter `json:"parameters"`
	ActiveParameter int                  `json:"active_parameter"`
}

// ExportInfo is one dead export in dead-code output.
type ExportInfo struct {
	Name         string  `json:"name"`
	Kind         string  `json:"kind"`
	File         string  `json:"file"`
	Line         int     `json:"line"`
	Column       int     `json:"column"`
	ExportedFrom *string `json:"exported_from"`
}
