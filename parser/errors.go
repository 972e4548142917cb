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

package parser

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/bufbuild/pycst/reporter"
)

// SyntaxError is returned when source code is not valid Python.
type SyntaxError struct {
	Message string
	// Where the error is. Line and Col are 1-based, and Col counts code
	// points rather than bytes.
	Pos reporter.SourcePos
	// The line that the error is on, without its line ending.
	SourceLine string

	lineOffset int
}

var _ reporter.ErrorWithPos = (*SyntaxError)(nil)

func newSyntaxError(src string, offset int, format string, args ...any) *SyntaxError {
	offset = min(max(offset, 0), len(src))
	line, start := reporter.Line(src, offset)
	lineOffset := min(offset-start, len(line))

	lineNo := 1
	for i := 0; i < start; i++ {
		switch src[i] {
		case '\n':
			lineNo++
		case '\r':
			if i+1 >= len(src) || src[i+1] != '\n' {
				lineNo++
			}
		}
	}

	return &SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Pos: reporter.SourcePos{
			Line:   lineNo,
			Col:    utf8.RuneCountInString(line[:lineOffset]) + 1,
			Offset: offset,
		},
		SourceLine: line,
		lineOffset: lineOffset,
	}
}

// Error implements [error].
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: syntax error: %s", e.Pos, e.Message)
}

// GetPosition implements [reporter.ErrorWithPos].
func (e *SyntaxError) GetPosition() reporter.SourcePos {
	return e.Pos
}

// Unwrap implements [reporter.ErrorWithPos]. The returned error holds the
// message without the position.
func (e *SyntaxError) Unwrap() error {
	return errors.New(e.Message)
}

// Snippet renders the offending line with a caret under the error.
func (e *SyntaxError) Snippet() string {
	return reporter.Snippet(e.SourceLine, reporter.SourcePos{Offset: e.lineOffset})
}
