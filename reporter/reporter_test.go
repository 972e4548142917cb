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
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcePosString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.py:3:7", SourcePos{Filename: "a.py", Line: 3, Col: 7}.String())
	assert.Equal(t, "3:7", SourcePos{Line: 3, Col: 7}.String())
	assert.Equal(t, "a.py", SourcePos{Filename: "a.py"}.String())
}

func TestErrorWithPos(t *testing.T) {
	t.Parallel()

	underlying := errors.New("bad indent")
	err := Error(SourcePos{Filename: "a.py", Line: 2, Col: 1}, underlying)
	assert.Equal(t, "a.py:2:1: bad indent", err.Error())
	assert.ErrorIs(t, err, underlying)
	assert.Equal(t, 2, err.GetPosition().Line)

	err = Errorf(SourcePos{Line: 1, Col: 4}, "unexpected %s", "'('")
	assert.Equal(t, "1:4: unexpected '('", err.Error())
	assert.Equal(t, "unexpected '('", err.Unwrap().Error())
}

func TestHandlerFirstErrorWins(t *testing.T) {
	t.Parallel()

	var reported []string
	h := NewHandler(NewReporter(func(err ErrorWithPos) error {
		reported = append(reported, err.Error())
		return err
	}, nil))

	first := h.HandleErrorf(SourcePos{Line: 1, Col: 1}, "first")
	require.Error(t, first)
	second := h.HandleErrorf(SourcePos{Line: 2, Col: 1}, "second")
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"1:1: first"}, reported)
	assert.Equal(t, first, h.Error())
	assert.Equal(t, first, h.ReporterError())
}

func TestHandlerSwallowedErrors(t *testing.T) {
	t.Parallel()

	var count int
	h := NewHandler(NewReporter(func(ErrorWithPos) error {
		count++
		return nil
	}, nil))
	assert.NoError(t, h.HandleErrorf(SourcePos{Line: 1, Col: 1}, "one"))
	assert.NoError(t, h.HandleError(Errorf(SourcePos{Line: 2, Col: 1}, "two")))
	assert.Equal(t, 2, count)
	assert.ErrorIs(t, h.Error(), ErrInvalidSource)
	assert.NoError(t, h.ReporterError())

	// Errors without a position are not sent to the reporter.
	plain := errors.New("plain")
	assert.Equal(t, plain, h.HandleError(plain))
	assert.Equal(t, 2, count)
	assert.Equal(t, plain, h.Error())
}

func TestHandlerWarnings(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var warnings []string
	h := NewHandler(NewReporter(nil, func(err ErrorWithPos) {
		mu.Lock()
		defer mu.Unlock()
		warnings = append(warnings, err.Error())
	}))

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.HandleWarningf(SourcePos{Line: 1, Col: 1}, "tab after spaces")
		}()
	}
	wg.Wait()
	assert.Len(t, warnings, 4)
	assert.NoError(t, h.Error())

	// The default reporter fails on the first error.
	h = NewHandler(nil)
	h.HandleWarningf(SourcePos{}, "ignored")
	err := h.HandleErrorf(SourcePos{Line: 1, Col: 1}, "fatal")
	assert.EqualError(t, err, "1:1: fatal")
}

func TestLine(t *testing.T) {
	t.Parallel()

	source := "a = 1\r\nbb = 2\nccc\rd"
	tests := []struct {
		offset int
		line   string
		start  int
	}{
		{0, "a = 1", 0},
		{4, "a = 1", 0},
		// The newline belongs to the line it ends.
		{5, "a = 1", 0},
		{6, "a = 1", 0},
		{7, "bb = 2", 7},
		{13, "bb = 2", 7},
		{14, "ccc", 14},
		{18, "d", 18},
		{19, "d", 18},
		{-1, "a = 1", 0},
		{100, "d", 18},
	}
	for _, test := range tests {
		line, start := Line(source, test.offset)
		assert.Equal(t, test.line, line, "offset %d", test.offset)
		assert.Equal(t, test.start, start, "offset %d", test.offset)
	}
}

func TestSnippet(t *testing.T) {
	t.Parallel()

	// Tabs are expanded to the next tabstop.
	source := "if x:\n\ty = (1,\n"
	assert.Equal(t, "  |     y = (1,\n  | "+strings.Repeat(" ", 8)+"^", Snippet(source, SourcePos{Offset: 11}))

	// Columns count display width, and unprintable characters are escaped.
	source = "é = 'x\x01'\n"
	assert.Equal(t, "  | é = 'x<U+0001>'\n  | "+strings.Repeat(" ", 14)+"^", Snippet(source, SourcePos{Offset: 8}))
}
