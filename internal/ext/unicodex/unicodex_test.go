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

package unicodex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/pycst/internal/ext/unicodex"
)

func TestDigit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r     rune
		base  byte
		value byte
		ok    bool
	}{
		{'0', 2, 0, true},
		{'2', 2, 0, false},
		{'7', 8, 7, true},
		{'8', 8, 0, false},
		{'f', 16, 15, true},
		{'F', 16, 15, true},
		{'g', 16, 0, false},
		{'z', 36, 35, true},
		{'_', 36, 0, false},
		{'é', 36, 0, false},
	}
	for _, test := range tests {
		value, ok := unicodex.Digit(test.r, test.base)
		assert.Equal(t, test.ok, ok, "%q in base %d", test.r, test.base)
		assert.Equal(t, test.value, value, "%q in base %d", test.r, test.base)
	}
}

func TestIsIdent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"x", "_", "café", "x1", "__init__", "ΔT"} {
		assert.True(t, unicodex.IsIdent(s), s)
	}
	for _, s := range []string{"", "1x", "a-b", "a b", "$"} {
		assert.False(t, unicodex.IsIdent(s), s)
	}
}

func TestWidth(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	w := unicodex.Width{EscapeNonPrint: true, Out: &out}
	_, err := w.WriteString("a\tb\x01")
	assert.NoError(t, err)
	assert.Equal(t, "a   b<U+0001>", out.String())
	assert.Equal(t, 13, w.Column)

	w = unicodex.Width{Column: 2}
	_, _ = w.WriteString("日本")
	assert.Equal(t, 6, w.Column)
}
