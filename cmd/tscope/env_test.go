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

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mgd34msu/tscope/internal/contract"
	"github.com/mgd34msu/tscope/internal/project"
	"github.com/mgd34msu/tscope/pkg/tools"
)

func TestWriteResult_Pretty(t *testing.T) {
	var buf strings.Builder
	writeResult(&buf, tools.NewResult(`{"count":1,"definitions":[]}`), false)

	assert.Equal(t, "{\n  \"count\": 1,\n  \"definitions\": []\n}\n", buf.String())
}

func TestWriteResult_Compact(t *testing.T) {
	var buf strings.Builder
	writeResult(&buf, tools.NewResult("{\n  \"count\": 1\n}"), true)

	assert.Equal(t, "{\"count\":1}\n", buf.String())
}

func TestWriteResult_PassesThroughUnencodable(t *testing.T) {
	var buf strings.Builder
	writeResult(&buf, tools.NewResult("not json"), false)

	assert.Equal(t, "not json\n", buf.String())
}

func TestEffectiveMaxFileSize(t *testing.T) {
	t.Run("config wins", func(t *testing.T) {
		t.Setenv("TSCOPE_MAX_FILE_SIZE", "4096")
		assert.Equal(t, int64(2048), effectiveMaxFileSize(project.Config{MaxFileSize: 2048}))
	})

	t.Run("env fills the default", func(t *testing.T) {
		t.Setenv("TSCOPE_MAX_FILE_SIZE", "4096")
		assert.Equal(t, int64(4096), effectiveMaxFileSize(project.Config{}))
	})

	t.Run("built-in fallback", func(t *testing.T) {
		t.Setenv("TSCOPE_MAX_FILE_SIZE", "")
		assert.Equal(t, contract.DefaultMaxFileSizeBytes, effectiveMaxFileSize(project.Config{}))
	})
}
