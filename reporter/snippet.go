// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reporter

import (
	"strings"

	"github.com/bufbuild/pycst/internal/ext/unicodex"
)

// Line returns the line of source that contains the given byte offset,
// without its line ending, along with the offset at which that line starts.
func Line(source string, offset int) (line string, start int) {
	offset = min(max(offset, 0), len(source))
	if offset > 0 && offset < len(source) && source[offset-1:offset+1] == "\r\n" {
		offset--
	}
	start = strings.LastIndexAny(source[:offset], "\r\n") + 1
	end := strings.IndexAny(source[offset:], "\r\n")
	if end < 0 {
		end = len(source)
	} else {
		end += offset
	}
	return source[start:end], start
}

// Snippet renders the line of source that pos points into, followed by a
// line with a caret under the character at pos:
//
//	  | x = (1,
//	  |     ^
//
// Tabs are expanded and unprintable characters are escaped, so that the
// caret lines up in a terminal.
func Snippet(source string, pos SourcePos) string {
	line, start := Line(source, pos.Offset)
	offset := min(max(pos.Offset-start, 0), len(line))

	var out strings.Builder
	out.WriteString("  | ")
	w := unicodex.Width{EscapeNonPrint: true, Out: &out}
	_, _ = w.WriteString(line[:offset])
	caret := w.Column
	_, _ = w.WriteString(line[offset:])
	out.WriteString("\n  | ")
	out.WriteString(strings.Repeat(" ", caret))
	out.WriteString("^")
	return out.String()
}
