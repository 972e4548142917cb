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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const colors = `
- name: Color
  type: uint8
  docs: Color is a color.
  total: colorCount
  trim_prefix: Color
  methods:
  - kind: string
  - kind: go-string
  - kind: from-string
    name: parseColor
    skip: [ColorNone]
  values:
  - name: ColorNone
  - name: ColorRed
    docs: Warm colors.
  - name: ColorOrange
  - name: ColorBlue
    string: blue!
    docs: Cold.
  - name: ColorCrimson
    alias: ColorRed
    docs: An alias.
`

func TestGenerate(t *testing.T) {
	t.Parallel()

	in := input{Binary: "enum", Package: "paint", Config: "colors.yaml"}
	require.NoError(t, yaml.Unmarshal([]byte(colors), &in.YAML))
	out, err := generate(in)
	require.NoError(t, err)
	code := string(out)

	assert.Contains(t, code, "// Code generated by enum colors.yaml. DO NOT EDIT.\n\npackage paint\n")
	assert.Contains(t, code, "// Color is a color.\ntype Color uint8\n")
	assert.Contains(t, code, "\tColorNone Color = iota\n\n\t// Warm colors.\n\tColorRed\n\tColorOrange\n")
	assert.Contains(t, code, "\tColorBlue // Cold.\n\n\tcolorCount // Total number of values.\n)")
	assert.Contains(t, code, "\t// An alias.\n\tColorCrimson = ColorRed\n")
	assert.Contains(t, code, "func (v Color) String() string {")
	assert.Contains(t, code, "func (v Color) GoString() string {")
	assert.Contains(t, code, "func parseColor(s string) (Color, bool) {")

	// Strings drop the prefix unless they are given explicitly.
	assert.Regexp(t, `ColorRed: +"Red",`, code)
	assert.Regexp(t, `ColorBlue: +"blue!",`, code)
	assert.Regexp(t, `ColorRed: +"ColorRed",`, code)
	assert.Regexp(t, `"Orange": +ColorOrange,`, code)
	assert.NotContains(t, code, `"None": `)
}

func TestValueDocs(t *testing.T) {
	t.Parallel()

	var enums []Enum
	require.NoError(t, yaml.Unmarshal([]byte(colors), &enums))
	values := enums[0].Values()
	assert.False(t, values[1].HasSuffixDocs())
	assert.True(t, values[1].HasPrefixDocs())
	assert.True(t, values[3].HasSuffixDocs())
	assert.Equal(t, "None", values[0].String())
	assert.Len(t, enums[0].Aliases(), 1)

	assert.Equal(t, "// a\n//\n// b\n", makeDocs("a\n\nb\n", ""))
	assert.Empty(t, makeDocs("", "\t"))
}
