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
	"errors"
	"fmt"
)

// ErrInvalidSource is a sentinel error that is returned by calls to
// [Handler.Error] when one or more errors were reported but the configured
// reporter always returned nil.
var ErrInvalidSource = errors.New("parse failed: invalid Python source")

// SourcePos identifies a location in a source file.
type SourcePos struct {
	Filename string
	// Line and Col are 1-based. Col counts code points, not bytes.
	Line, Col int
	// Offset is the 0-based byte offset of the location.
	Offset int
}

func (pos SourcePos) String() string {
	if pos.Line <= 0 || pos.Col <= 0 {
		return pos.Filename
	}
	if pos.Filename == "" {
		return fmt.Sprintf("%d:%d", pos.Line, pos.Col)
	}
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Col)
}

// ErrorWithPos is an error about a Python source file that includes
// information about the location in the file that caused the error.
//
// The value of Error() will contain both the SourcePos and Underlying error.
// The value of Unwrap() will only be the Underlying error.
type ErrorWithPos interface {
	error
	GetPosition() SourcePos
	Unwrap() error
}

func Error(pos SourcePos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

func Errorf(pos SourcePos, format string, args ...any) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

// errorWithSourcePos is an error about a Python source file that includes
// information about the location in the file that caused the error.
//
// Calling code that is trying to examine errors with location info should
// look for instances of the ErrorWithPos interface rather than this type.
type errorWithSourcePos struct {
	underlying error
	pos        SourcePos
}

func (e errorWithSourcePos) Error() string {
	sourcePos := e.GetPosition()
	return fmt.Sprintf("%s: %v", sourcePos, e.underlying)
}

// GetPosition implements the ErrorWithPos interface, supplying a location in
// Python source that caused the error.
func (e errorWithSourcePos) GetPosition() SourcePos {
	return e.pos
}

// Unwrap implements the ErrorWithPos interface, supplying the underlying
// error. This error will not include location information.
func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}
