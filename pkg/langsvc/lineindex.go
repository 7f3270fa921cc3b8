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
	"fmt"
	"sort"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// LineIndex converts between 1-based (line, column) coordinates and byte
// offsets for a single file. Columns are counted in UTF-16 code units so a
// character outside the Basic Multilingual Plane occupies two columns, the
// same convention the TypeScript compiler uses.
type LineIndex struct {
	content []byte
	// starts[i] is the byte offset of the first byte of line i+1.
	starts []int
}

// NewLineIndex builds a line index over content.
func NewLineIndex(content []byte) *LineIndex {
	starts := []int{0}
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{content: content, starts: starts}
}

// LineCount returns the number of lines in the file. An empty file has one
// (empty) line.
func (ix *LineIndex) LineCount() int {
	return len(ix.starts)
}

// lineSpan returns the byte range [start, end) of a 1-based line, excluding
// the trailing newline.
func (ix *LineIndex) lineSpan(line int) (int, int, error) {
	if line < 1 || line > len(ix.starts) {
		return 0, 0, fmt.Errorf("line %d out of range (file has %d lines)", line, len(ix.starts))
	}
	start := ix.starts[line-1]
	end := len(ix.content)
	if line < len(ix.starts) {
		end = ix.starts[line] - 1 // exclude '\n'
	}
	if end > start && ix.content[end-1] == '\r' {
		end--
	}
	return start, end, nil
}

// LineText returns the text of a 1-based line without its line terminator.
func (ix *LineIndex) LineText(line int) string {
	start, end, err := ix.lineSpan(line)
	if err != nil {
		return ""
	}
	return string(ix.content[start:end])
}

// Offset converts a 1-based line and 1-based UTF-16 column to a byte offset.
// It fails when the line does not exist or the column points past the end of
// the line content; callers must validate line/column are >= 1 first.
func (ix *LineIndex) Offset(line, column int) (int, error) {
	if line < 1 || column < 1 {
		return 0, fmt.Errorf("line and column must be >= 1, got %d:%d", line, column)
	}
	start, end, err := ix.lineSpan(line)
	if err != nil {
		return 0, err
	}

	units := 0
	off := start
	for off < end && units < column-1 {
		r, size := utf8.DecodeRune(ix.content[off:])
		units += utf16.RuneLen(r)
		off += size
	}
	if units < column-1 {
		return 0, fmt.Errorf("column %d out of range on line %d", column, line)
	}
	return off, nil
}

// Position converts a byte offset back to 1-based (line, column) with the
// column counted in UTF-16 code units. Offsets past the end of the file are
// clamped to the last position.
func (ix *LineIndex) Position(offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(ix.content) {
		offset = len(ix.content)
	}
	// Find the last line start <= offset.
	line := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	})
	start := ix.starts[line-1]

	units := 0
	for off := start; off < offset; {
		r, size := utf8.DecodeRune(ix.content[off:])
		units += utf16.RuneLen(r)
		off += size
	}
	return line, units + 1
}

// Preview returns the trimmed text of the line containing offset, suitable
// for reference previews.
func (ix *LineIndex) Preview(offset int) string {
	line, _ := ix.Position(offset)
	return strings.TrimSpace(ix.LineText(line))
}
