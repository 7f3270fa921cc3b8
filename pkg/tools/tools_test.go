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

package tools_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgd34msu/tscope/pkg/tools"
)

// decode unpacks a success envelope into the handler's response type.
func decode[T any](t *testing.T, res *tools.ToolResult) T {
	t.Helper()

	require.NotNil(t, res)
	require.False(t, res.IsError, "unexpected error result: %s", res.Text)
	var out T
	require.NoError(t, json.Unmarshal([]byte(res.Text), &out))
	return out
}

// decodeError unpacks an error envelope into its JSON body.
func decodeError(t *testing.T, res *tools.ToolResult) map[string]any {
	t.Helper()

	require.NotNil(t, res)
	require.True(t, res.IsError, "expected error result, got: %s", res.Text)
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Text), &out))
	return out
}
