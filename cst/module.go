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

// Module is the root of the tree for a whole Python file.
type Module struct {
	// Comments and blank lines at the top of the file that are separated
	// from the first statement by a blank line.
	Header []*EmptyLine
	Body   []Statement
	// Comments and blank lines after the last statement.
	Footer []*EmptyLine

	// The source encoding, such as "utf-8".
	Encoding string
	// The indentation used when rendering an [IndentedBlock] without an
	// explicit indent. Defaults to [DefaultIndent].
	DefaultIndent string
	// The newline used when rendering a [Newline] without an explicit value.
	// Defaults to [DefaultNewline].
	DefaultNewline string
	// Whether the file ends in a newline. If false, the final newline of the
	// rendered code is dropped.
	HasTrailingNewline bool
}

// Kind implements [Node].
func (*Module) Kind() Kind { return KindModule }

func (n *Module) mapChildren(m *mapper) Node {
	c := *n
	c.Header = mapSeq(m, n.Header)
	c.Body = mapSeq(m, n.Body)
	c.Footer = mapSeq(m, n.Footer)
	return &c
}

func (n *Module) render(s *state) {
	prevNewline, prevIndent := s.newline, s.indent
	s.newline, s.indent = n.newline(), n.indent()
	defer func() { s.newline, s.indent = prevNewline, prevIndent }()

	start := s.offset()
	renderSeq(s, n.Header)
	renderSeq(s, n.Body)
	renderSeq(s, n.Footer)
	if !n.HasTrailingNewline {
		s.trimNewline(start)
	}
}

func (n *Module) validate() error {
	switch n.DefaultNewline {
	case "", "\n", "\r\n", "\r":
	default:
		return validationErrorf(n.Kind(), "%q is not a newline", n.DefaultNewline)
	}
	if strings.Trim(n.DefaultIndent, " \t") != "" {
		return validationErrorf(n.Kind(), "indent must be made of spaces and tabs, got %q", n.DefaultIndent)
	}
	return nil
}

func (n *Module) newline() string {
	if n.DefaultNewline == "" {
		return DefaultNewline
	}
	return n.DefaultNewline
}

func (n *Module) indent() string {
	if n.DefaultIndent == "" {
		return DefaultIndent
	}
	return n.DefaultIndent
}

// Code renders the whole module back to source text.
func (n *Module) Code() string {
	return Render(n)
}

// CodeForNode renders a node that belongs to this module, using the module's
// default newline and indentation.
func (n *Module) CodeForNode(node Node) string {
	s := newState(n.newline(), n.indent(), false)
	s.node(node)
	return string(s.buf)
}

// Layout renders the module and records the span of every node in it.
func (n *Module) Layout() *Layout {
	return RenderLayout(n)
}

// trimNewline removes a newline from the end of everything written since
// start.
func (s *state) trimNewline(start int) {
	text := s.buf[start:]
	switch {
	case len(text) >= 2 && string(text[len(text)-2:]) == "\r\n":
		s.buf = s.buf[:len(s.buf)-2]
	case len(text) >= 1 && (text[len(text)-1] == '\n' || text[len(text)-1] == '\r'):
		s.buf = s.buf[:len(s.buf)-1]
	}
}
