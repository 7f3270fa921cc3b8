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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineIndex_LineCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty file", "", 1},
		{"single line no newline", "const x = 1;", 1},
		{"single line with newline", "const x = 1;\n", 2},
		{"three lines", "a\nb\nc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := NewLineIndex([]byte(tt.content))
			assert.Equal(t, tt.want, ix.LineCount())
		})
	}
}

func TestLineIndex_Offset(t *testing.T) {
	content := "const a = 1;\nconst b = 2;\n"
	ix := NewLineIndex([]byte(content))

	tests := []struct {
		name       string
		line, col  int
		want       int
		wantErr    bool
	}{
		{"start of file", 1, 1, 0, false},
		{"mid first line", 1, 7, 6, false},
		{"start of second line", 2, 1, 13, false},
		{"end of first line content", 1, 13, 12, false},
		{"line out of range", 5, 1, 0, true},
		{"column past line end", 1, 20, 0, true},
		{"zero line", 0, 1, 0, true},
		{"zero column", 1, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ix.Offset(tt.line, tt.col)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLineIndex_Offset_UTF16Columns(t *testing.T) {
	// "日本" occupies 2 UTF-16 units (3 bytes each); the emoji is a
	// surrogate pair: 2 UTF-16 units, 4 bytes.
	content := "const s = \"日本\";\nconst e = \"\U0001F600\";\n"
	ix := NewLineIndex([]byte(content))

	// Column 13 sits past the first CJK char: 11 single-unit chars plus
	// one 3-byte char.
	off, err := ix.Offset(1, 13)
	require.NoError(t, err)
	assert.Equal(t, 14, off)

	// On line 2 the emoji spans columns 12-13; column 14 is the closing
	// quote.
	off, err = ix.Offset(2, 14)
	require.NoError(t, err)
	assert.Equal(t, byte('"'), content[off])
}

func TestLineIndex_Position_RoundTrip(t *testing.T) {
	content := "function add(a, b) {\n  return a + b;\n}\n"
	ix := NewLineIndex([]byte(content))

	for _, pos := range []struct{ line, col int }{
		{1, 1}, {1, 10}, {2, 3}, {3, 1},
	} {
		off, err := ix.Offset(pos.line, pos.col)
		require.NoError(t, err)
		line, col := ix.Position(off)
		assert.Equal(t, pos.line, line)
		assert.Equal(t, pos.col, col)
	}
}

func TestLineIndex_Position_SurrogatePair(t *testing.T) {
	content := "\"\U0001F600\"x"
	ix := NewLineIndex([]byte(content))

	// The byte after the 4-byte emoji (offset 5) is the closing quote at
	// UTF-16 column 4: quote(1) + two surrogate units.
	line, col := ix.Position(5)
	assert.Equal(t, 1, line)
	assert.Equal(t, 4, col)
}

func TestLineIndex_Position_Clamping(t *testing.T) {
	ix := NewLineIndex([]byte("ab\ncd"))

	line, col := ix.Position(-5)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = ix.Position(1000)
	assert.Equal(t, 2, line)
	assert.Equal(t, 3, col)
}

func TestLineIndex_LineText_CRLF(t *testing.T) {
	ix := NewLineIndex([]byte("const a = 1;\r\nconst b = 2;\r\n"))

	assert.Equal(t, "const a = 1;", ix.LineText(1))
	assert.Equal(t, "const b = 2;", ix.LineText(2))
}

func TestLineIndex_Preview(t *testing.T) {
	content := "function f() {\n    return 42;\n}\n"
	ix := NewLineIndex([]byte(content))

	off, err := ix.Offset(2, 5)
	require.NoError(t, err)
	assert.Equal(t, "return 42;", ix.Preview(off))
}
