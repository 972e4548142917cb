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

package metadata_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/pycst/cst"
	"github.com/bufbuild/pycst/metadata"
)

func TestExpressionContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   map[string]metadata.ExpressionContext // By name; 0 means no value.
	}{
		{
			name:   "assign",
			source: "a = b\n",
			want:   map[string]metadata.ExpressionContext{"a": metadata.Store, "b": metadata.Load},
		},
		{
			name:   "unpack",
			source: "a, [b, *c] = d\n",
			want: map[string]metadata.ExpressionContext{
				"a": metadata.Store, "b": metadata.Store, "c": metadata.Store, "d": metadata.Load,
			},
		},
		{
			name:   "attribute",
			source: "a.b = c[d]\n",
			want: map[string]metadata.ExpressionContext{
				"a": metadata.Load, "b": 0, "c": metadata.Load, "d": metadata.Load,
			},
		},
		{
			name:   "subscript target",
			source: "a[b] += 1\n",
			want:   map[string]metadata.ExpressionContext{"a": metadata.Load, "b": metadata.Load},
		},
		{
			name:   "del",
			source: "del a, b.c\n",
			want: map[string]metadata.ExpressionContext{
				"a": metadata.Del, "b": metadata.Load, "c": 0,
			},
		},
		{
			name:   "for",
			source: "for a in b:\n    pass\n",
			want:   map[string]metadata.ExpressionContext{"a": metadata.Store, "b": metadata.Load},
		},
		{
			name:   "comprehension",
			source: "[a for b in c if d]\n",
			want: map[string]metadata.ExpressionContext{
				"a": metadata.Load, "b": metadata.Store, "c": metadata.Load, "d": metadata.Load,
			},
		},
		{
			name:   "definitions",
			source: "def f(a, b=c):\n    pass\nclass D(e):\n    pass\n",
			want: map[string]metadata.ExpressionContext{
				"f": metadata.Store, "a": metadata.Store, "b": metadata.Store,
				"c": metadata.Load, "D": metadata.Store, "e": metadata.Load,
			},
		},
		{
			name:   "as names",
			source: "import a as b\nwith c as d:\n    pass\n",
			want: map[string]metadata.ExpressionContext{
				"a": metadata.Load, "b": metadata.Store, "c": metadata.Load, "d": metadata.Store,
			},
		},
		{
			name:   "import aliases",
			source: "import p.q as r, s\nfrom m import x as y, z\n",
			want: map[string]metadata.ExpressionContext{
				"p": metadata.Load, "q": 0, "r": metadata.Store, "s": metadata.Load,
				"m": metadata.Load, "x": metadata.Load, "y": metadata.Store, "z": metadata.Load,
			},
		},
		{
			name:   "global",
			source: "def f():\n    global a, b\n",
			want:   map[string]metadata.ExpressionContext{"f": metadata.Store, "a": metadata.Load, "b": metadata.Load},
		},
		{
			name:   "annotated",
			source: "a: b = c\n",
			want: map[string]metadata.ExpressionContext{
				"a": metadata.Store, "b": metadata.Load, "c": metadata.Load,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			mod := parse(t, test.source)
			m, err := metadata.NewWrapper(mod).Resolve(metadata.ExpressionContextProvider)
			require.NoError(t, err)

			got := make(map[string]metadata.ExpressionContext)
			cst.Inspect(mod, func(n cst.Node) bool {
				if name, ok := n.(*cst.Name); ok {
					got[name.Value], _ = metadata.Value[metadata.ExpressionContext](m, name)
				}
				return true
			})
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("contexts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExpressionContextContainers(t *testing.T) {
	t.Parallel()

	mod := parse(t, "a, *b = c.d\n")
	m, err := metadata.NewWrapper(mod).Resolve(metadata.ExpressionContextProvider)
	require.NoError(t, err)

	tuple := find[*cst.Tuple](t, mod, nil)
	ec, ok := metadata.Value[metadata.ExpressionContext](m, tuple)
	require.True(t, ok)
	assert.Equal(t, metadata.Store, ec)

	star := find[*cst.StarredElement](t, mod, nil)
	ec, _ = metadata.Value[metadata.ExpressionContext](m, star)
	assert.Equal(t, metadata.Store, ec)

	attr := find[*cst.Attribute](t, mod, nil)
	ec, _ = metadata.Value[metadata.ExpressionContext](m, attr)
	assert.Equal(t, metadata.Load, ec)

	assert.Equal(t, "Del", metadata.Del.String())
	assert.Equal(t, "ExpressionContext(0)", metadata.ExpressionContext(0).String())
}

func TestParentNode(t *testing.T) {
	t.Parallel()

	mod := parse(t, "x = f(y)\n")
	w := metadata.NewWrapper(mod)
	m, err := w.Resolve(metadata.ParentNodeProvider)
	require.NoError(t, err)

	_, ok := metadata.Value[cst.Node](m, mod)
	assert.False(t, ok)

	// Every other node's parent lists it as a child.
	cst.Inspect(mod, func(n cst.Node) bool {
		if n == cst.Node(mod) {
			return true
		}
		parent, ok := metadata.Value[cst.Node](m, n)
		if assert.True(t, ok, "%v", n.Kind()) {
			assert.Contains(t, cst.Children(parent), n)
		}
		return true
	})

	y := find(t, mod, named("y"))
	arg, _ := metadata.Lookup[cst.Node](w, metadata.ParentNodeProvider, y)
	assert.Equal(t, cst.KindArg, arg.Kind())
}
