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

package cst

import "strings"

const (
	// DefaultNewline is the newline used when rendering a [Newline] with an
	// empty value outside of a [Module] that specifies one.
	DefaultNewline = "\n"
	// DefaultIndent is the indentation used when rendering an [IndentedBlock]
	// with an empty indent outside of a [Module] that specifies one.
	DefaultIndent = "    "
)

// Render renders a node, and all of its children, to source text.
//
// Formatting left to its default is rendered using [DefaultNewline] and
// [DefaultIndent]. To render a node with the defaults of the module it
// belongs to, use [Module.CodeForNode].
func Render(n Node) string {
	s := newState(DefaultNewline, DefaultIndent, false)
	s.node(n)
	return string(s.buf)
}

// Span is a half-open range of byte offsets into rendered source.
type Span struct {
	Start, End int
}

// Len returns the number of bytes in the span.
func (s Span) Len() int { return s.End - s.Start }

// Layout is the result of rendering a tree while recording where each node
// ended up.
//
// Each node has two spans: its full span, which covers every byte the node
// rendered, including whitespace and comments it owns, and its syntactic span,
// which excludes leading blank lines, indentation, decorators, trailing
// commas and semicolons, and the trailing whitespace of the line.
type Layout struct {
	Code string

	full, syntactic map[Node]Span
}

// Span returns the full span of n, if it was rendered.
func (l *Layout) Span(n Node) (Span, bool) {
	span, ok := l.full[n]
	return span, ok
}

// SyntacticSpan returns the syntactic span of n, if it was rendered.
func (l *Layout) SyntacticSpan(n Node) (Span, bool) {
	if span, ok := l.syntactic[n]; ok {
		return span, true
	}
	return l.Span(n)
}

// Len returns the number of nodes that were recorded.
func (l *Layout) Len() int { return len(l.full) }

// Range calls yield for each node in the layout, in no particular order,
// until it returns false.
func (l *Layout) Range(yield func(Node, Span) bool) {
	for n, span := range l.full {
		if !yield(n, span) {
			return
		}
	}
}

// RenderLayout renders n like [Render] does, and records the span of every
// node in the tree.
func RenderLayout(n Node) *Layout {
	s := newState(DefaultNewline, DefaultIndent, true)
	s.node(n)
	return s.finish()
}

// state is the accumulated state of a render.
type state struct {
	buf []byte

	newline, indent string
	indents         []string

	// Only non-nil when recording a layout.
	full, syntactic map[Node]Span
}

func newState(newline, indent string, record bool) *state {
	s := &state{newline: newline, indent: indent}
	if record {
		s.full = make(map[Node]Span)
		s.syntactic = make(map[Node]Span)
	}
	return s
}

func (s *state) finish() *Layout {
	// A module without a trailing newline trims the buffer after its
	// children were recorded.
	end := len(s.buf)
	for _, spans := range []map[Node]Span{s.full, s.syntactic} {
		for n, span := range spans {
			if span.End > end {
				spans[n] = Span{min(span.Start, end), end}
			}
		}
	}
	return &Layout{Code: string(s.buf), full: s.full, syntactic: s.syntactic}
}

func (s *state) write(text string) {
	s.buf = append(s.buf, text...)
}

func (s *state) offset() int {
	return len(s.buf)
}

// node renders n, recording its span if necessary. Nil nodes render as
// nothing.
func (s *state) node(n Node) {
	if isNil(n) {
		return
	}
	if s.full == nil {
		n.render(s)
		return
	}
	start := len(s.buf)
	n.render(s)
	s.full[n] = Span{start, len(s.buf)}
}

// nodeWith is like node, but calls render instead of n's own render method.
// It is used for nodes whose rendering depends on context only the parent
// knows about.
func (s *state) nodeWith(n Node, render func()) {
	if isNil(n) {
		return
	}
	if s.full == nil {
		render()
		return
	}
	start := len(s.buf)
	render()
	s.full[n] = Span{start, len(s.buf)}
}

// syntax records the syntactic span of n as running from start to the
// current offset.
func (s *state) syntax(n Node, start int) {
	if s.syntactic != nil {
		s.syntactic[n] = Span{start, len(s.buf)}
	}
}

// syntaxThrough records the syntactic span of n as running from start to the
// end of the syntactic span of last.
func (s *state) syntaxThrough(n Node, start int, last Node) {
	if s.syntactic == nil {
		return
	}
	end := len(s.buf)
	if span, ok := s.syntacticSpan(last); ok {
		end = span.End
	}
	s.syntactic[n] = Span{start, end}
}

// syntaxSpanning records the syntactic span of n as running from the start of
// first to the end of last.
func (s *state) syntaxSpanning(n, first, last Node) {
	if s.syntactic == nil {
		return
	}
	start, ok := s.syntacticSpan(first)
	if !ok {
		return
	}
	end, ok := s.syntacticSpan(last)
	if !ok {
		return
	}
	s.syntactic[n] = Span{start.Start, end.End}
}

// syntacticSpan looks up the syntactic span recorded so far for n.
func (s *state) syntacticSpan(n Node) (Span, bool) {
	if span, ok := s.syntactic[n]; ok {
		return span, true
	}
	span, ok := s.full[n]
	return span, ok
}

func (s *state) pushIndent(indent string) {
	if indent == "" {
		indent = s.indent
	}
	s.indents = append(s.indents, indent)
}

func (s *state) popIndent() {
	s.indents = s.indents[:len(s.indents)-1]
}

func (s *state) writeIndent() {
	for _, indent := range s.indents {
		s.write(indent)
	}
}

// currentIndent returns the full indentation of the current block.
func (s *state) currentIndent() string {
	return strings.Join(s.indents, "")
}

// renderMaybe renders an explicit value if it is present, and def otherwise.
func renderMaybe[N Node](s *state, m Maybe[N], def string) {
	if v, ok := m.Get(); ok {
		s.node(v)
		return
	}
	s.write(def)
}

// renderSeq renders each node of a sequence in order.
func renderSeq[N Node](s *state, ns []N) {
	for _, n := range ns {
		s.node(n)
	}
}

// renderCommaSeq renders a comma-separated sequence, giving every element
// but the last a default comma of ", ".
func renderCommaSeq[N interface {
	Node
	renderComma(*state, string)
}](s *state, ns []N) {
	for i, n := range ns {
		def := ", "
		if i == len(ns)-1 {
			def = ""
		}
		s.nodeWith(n, func() { n.renderComma(s, def) })
	}
}

// renderSmallStatements renders statements separated by semicolons.
func renderSmallStatements(s *state, ns []SmallStatement) {
	for i, n := range ns {
		def := "; "
		if i == len(ns)-1 {
			def = ""
		}
		s.nodeWith(n, func() { n.renderSemicolon(s, def) })
	}
}
