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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/pycst/cst"
	"github.com/bufbuild/pycst/metadata"
)

// find returns the first node of type N in pre-order that matches pred.
func find[N cst.Node](t *testing.T, root cst.Node, pred func(N) bool) N {
	t.Helper()
	var found N
	var ok bool
	cst.Inspect(root, func(n cst.Node) bool {
		if ok {
			return false
		}
		if v, is := cst.As[N](n); is && (pred == nil || pred(v)) {
			found, ok = v, true
		}
		return !ok
	})
	require.True(t, ok, "no %T found", found)
	return found
}

func named(value string) func(*cst.Name) bool {
	return func(n *cst.Name) bool { return n.Value == value }
}

func TestPosition(t *testing.T) {
	t.Parallel()

	mod := parse(t, "def f():\n    pass\n")
	w := metadata.NewWrapper(mod)
	out, err := w.ResolveMany(
		metadata.PositionProvider,
		metadata.WhitespaceInclusivePositionProvider,
		metadata.ByteSpanProvider,
	)
	require.NoError(t, err)
	pos := out[metadata.PositionProvider.Name()]
	full := out[metadata.WhitespaceInclusivePositionProvider.Name()]
	spans := out[metadata.ByteSpanProvider.Name()]

	pass := find[*cst.Pass](t, mod, nil)
	r, ok := metadata.Value[metadata.CodeRange](pos, pass)
	require.True(t, ok)
	assert.Equal(t, metadata.CodeRange{
		Start: metadata.CodePosition{Line: 2, Column: 4},
		End:   metadata.CodePosition{Line: 2, Column: 8},
	}, r)
	s, ok := metadata.Value[metadata.CodeSpan](spans, pass)
	require.True(t, ok)
	assert.Equal(t, metadata.CodeSpan{Start: 13, Length: 4}, s)

	line := find[*cst.SimpleStatementLine](t, mod, nil)
	r, _ = metadata.Value[metadata.CodeRange](pos, line)
	assert.Equal(t, "2:4-2:8", r.String())
	r, _ = metadata.Value[metadata.CodeRange](full, line)
	assert.Equal(t, "2:0-3:0", r.String())

	f := find(t, mod, named("f"))
	r, _ = metadata.Value[metadata.CodeRange](pos, f)
	assert.Equal(t, "1:4-1:5", r.String())

	// Every rendered node has a position.
	cst.Inspect(mod, func(n cst.Node) bool {
		_, ok := metadata.Value[metadata.CodeRange](pos, n)
		assert.True(t, ok, "%v", n.Kind())
		return true
	})
	assert.Equal(t, pos.Len(), full.Len())
	assert.Equal(t, pos.Len(), spans.Len())
}

func TestPositionLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		target string
		want   string
		span   metadata.CodeSpan
	}{
		{
			name:   "crlf",
			source: "x = 1\r\ny = 2\r\n",
			target: "y",
			want:   "2:0-2:1",
			span:   metadata.CodeSpan{Start: 7, Length: 1},
		},
		{
			name:   "code points",
			source: "s = 'é'; t\n",
			target: "t",
			want:   "1:9-1:10",
			span:   metadata.CodeSpan{Start: 10, Length: 1},
		},
		{
			name:   "code points on an earlier line",
			source: "s = 'é'\nz = 'ü' + w\n",
			target: "w",
			want:   "2:10-2:11",
			span:   metadata.CodeSpan{Start: 20, Length: 1},
		},
		{
			name:   "wide line",
			source: "x = [" + strings.Repeat("1, ", 5000) + "'é', y]\n",
			target: "y",
			want:   "1:15010-1:15011",
			span:   metadata.CodeSpan{Start: 15011, Length: 1},
		},
		{
			name:   "continuation",
			source: "x = (1 +\n     y)\n",
			target: "y",
			want:   "2:5-2:6",
			span:   metadata.CodeSpan{Start: 14, Length: 1},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			mod := parse(t, test.source)
			w := metadata.NewWrapper(mod)
			pos, err := w.Resolve(metadata.PositionProvider)
			require.NoError(t, err)
			spans, err := w.Resolve(metadata.ByteSpanProvider)
			require.NoError(t, err)

			n := find(t, mod, named(test.target))
			r, ok := metadata.Value[metadata.CodeRange](pos, n)
			require.True(t, ok)
			assert.Equal(t, test.want, r.String())
			s, ok := metadata.Value[metadata.CodeSpan](spans, n)
			require.True(t, ok)
			assert.Equal(t, test.span, s)
			assert.Equal(t, test.target, mod.Code()[s.Start:s.End()])
		})
	}
}

func TestNodesAt(t *testing.T) {
	t.Parallel()

	source := "x = f(y)\n"
	mod := parse(t, source)
	w := metadata.NewWrapper(mod)

	kinds := func(offset int) []cst.Kind {
		nodes, err := w.NodesAt(offset)
		require.NoError(t, err)
		var out []cst.Kind
		for _, n := range nodes {
			out = append(out, n.Kind())
		}
		return out
	}

	// The y of f(y).
	assert.Equal(t, []cst.Kind{
		cst.KindModule,
		cst.KindSimpleStatementLine,
		cst.KindAssign,
		cst.KindCall,
		cst.KindArg,
		cst.KindName,
	}, kinds(6))

	nodes, err := w.NodesAt(6)
	require.NoError(t, err)
	assert.Same(t, find(t, mod, named("y")), nodes[len(nodes)-1])

	assert.Empty(t, kinds(len(source)+10))
	assert.Equal(t, []string{"byte_span", "layout"}, w.Cached())
}
