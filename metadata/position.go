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

package metadata

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/bufbuild/pycst/cst"
)

// CodePosition is a position in source code.
type CodePosition struct {
	Line   int // 1-based.
	Column int // 0-based, counted in code points.
}

// String implements [fmt.Stringer].
func (p CodePosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// CodeRange is a range of source code. End is exclusive.
type CodeRange struct {
	Start, End CodePosition
}

// String implements [fmt.Stringer].
func (r CodeRange) String() string {
	return fmt.Sprintf("%v-%v", r.Start, r.End)
}

// CodeSpan is a range of source code in bytes.
type CodeSpan struct {
	Start, Length int
}

// End returns the offset just past the span.
func (s CodeSpan) End() int {
	return s.Start + s.Length
}

var (
	// LayoutProvider renders the module once and records the span of every
	// node. Its only value is a *[cst.Layout], set on the module.
	LayoutProvider Provider = layoutProvider{}

	// PositionProvider computes the [CodeRange] of every node, excluding the
	// whitespace, comments and punctuation the node owns but that is not part
	// of its syntax.
	PositionProvider Provider = &rangeProvider{name: "position", syntactic: true}
	// WhitespaceInclusivePositionProvider is like [PositionProvider], but
	// covers every byte the node rendered.
	WhitespaceInclusivePositionProvider Provider = &rangeProvider{name: "whitespace_inclusive_position"}

	// ByteSpanProvider computes the [CodeSpan] of every node, using the same
	// extents as [PositionProvider].
	ByteSpanProvider Provider = byteSpanProvider{}
)

type layoutProvider struct{}

func (layoutProvider) Name() string             { return "layout" }
func (layoutProvider) Dependencies() []Provider { return nil }

func (layoutProvider) Compute(ctx *Context) error {
	ctx.Set(ctx.Module(), ctx.Module().Layout())
	return nil
}

// layout reads the layout of the module from a provider that depends on
// [LayoutProvider].
func layout(ctx *Context) (*cst.Layout, error) {
	l, ok, err := Get[*cst.Layout](ctx, LayoutProvider, ctx.Module())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no layout for module")
	}
	return l, nil
}

type rangeProvider struct {
	name      string
	syntactic bool
}

func (p *rangeProvider) Name() string             { return p.name }
func (p *rangeProvider) Dependencies() []Provider { return []Provider{LayoutProvider} }

func (p *rangeProvider) Compute(ctx *Context) error {
	l, err := layout(ctx)
	if err != nil {
		return err
	}
	lines := newLineIndex(l.Code)
	l.Range(func(n cst.Node, span cst.Span) bool {
		if p.syntactic {
			span, _ = l.SyntacticSpan(n)
		}
		ctx.Set(n, CodeRange{
			Start: lines.position(span.Start),
			End:   lines.position(span.End),
		})
		return true
	})
	return nil
}

type byteSpanProvider struct{}

func (byteSpanProvider) Name() string             { return "byte_span" }
func (byteSpanProvider) Dependencies() []Provider { return []Provider{LayoutProvider} }

func (byteSpanProvider) Compute(ctx *Context) error {
	l, err := layout(ctx)
	if err != nil {
		return err
	}
	l.Range(func(n cst.Node, _ cst.Span) bool {
		span, _ := l.SyntacticSpan(n)
		ctx.Set(n, CodeSpan{Start: span.Start, Length: span.Len()})
		return true
	})
	return nil
}

// lineIndex converts byte offsets into line and column numbers.
type lineIndex struct {
	starts []int // Offset of the first byte of each line.

	// Offsets of the multi-byte code points, and for each one, how many bytes
	// past the first it and every code point before it take up.
	wide, extra []int
}

func newLineIndex(code string) *lineIndex {
	idx := &lineIndex{starts: []int{0}}
	total := 0
	for i := 0; i < len(code); i++ {
		switch c := code[i]; {
		case c == '\r':
			if i+1 < len(code) && code[i+1] == '\n' {
				i++
			}
			idx.starts = append(idx.starts, i+1)
		case c == '\n':
			idx.starts = append(idx.starts, i+1)
		case c >= utf8.RuneSelf:
			_, size := utf8.DecodeRuneInString(code[i:])
			if size > 1 {
				total += size - 1
				idx.wide = append(idx.wide, i)
				idx.extra = append(idx.extra, total)
				i += size - 1
			}
		}
	}
	return idx
}

func (idx *lineIndex) position(offset int) CodePosition {
	line := sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > offset
	}) - 1
	start := idx.starts[line]
	return CodePosition{
		Line:   line + 1,
		Column: offset - start - (idx.extraBefore(offset) - idx.extraBefore(start)),
	}
}

// extraBefore returns how many bytes past their first the code points that
// start before offset take up.
func (idx *lineIndex) extraBefore(offset int) int {
	k := sort.SearchInts(idx.wide, offset)
	if k == 0 {
		return 0
	}
	return idx.extra[k-1]
}
