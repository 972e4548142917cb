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

import "regexp"

var (
	simpleWhitespacePattern = regexp.MustCompile(`^([ \f\t]|\\(\r\n?|\n))*$`)
	commentPattern          = regexp.MustCompile(`^#[^\r\n]*$`)
)

// SimpleWhitespace is a run of spaces, tabs and form feeds that does not
// contain a newline, except for backslash line continuations.
type SimpleWhitespace struct {
	Value string
}

// Kind implements [Node].
func (*SimpleWhitespace) Kind() Kind { return KindSimpleWhitespace }

func (*SimpleWhitespace) parenthesizableWhitespace() {}

func (w *SimpleWhitespace) empty() bool { return w.Value == "" }

func (w *SimpleWhitespace) mapChildren(*mapper) Node { c := *w; return &c }

func (w *SimpleWhitespace) render(s *state) { s.write(w.Value) }

func (w *SimpleWhitespace) validate() error {
	if !simpleWhitespacePattern.MatchString(w.Value) {
		return validationErrorf(w.Kind(), "%q is not simple whitespace", w.Value)
	}
	return nil
}

// ParenthesizedWhitespace is whitespace inside of brackets that spans more
// than one line.
//
// It consists of the rest of the current line, any number of full lines, and
// the whitespace at the start of the final line.
type ParenthesizedWhitespace struct {
	FirstLine  *TrailingWhitespace
	EmptyLines []*EmptyLine
	// Whether the final line starts with the indentation of the enclosing
	// block.
	Indent   bool
	LastLine *SimpleWhitespace
}

// Kind implements [Node].
func (*ParenthesizedWhitespace) Kind() Kind { return KindParenthesizedWhitespace }

func (*ParenthesizedWhitespace) parenthesizableWhitespace() {}

func (*ParenthesizedWhitespace) empty() bool { return false }

func (w *ParenthesizedWhitespace) mapChildren(m *mapper) Node {
	c := *w
	c.FirstLine = mapRequired(m, "FirstLine", w.FirstLine)
	c.EmptyLines = mapSeq(m, w.EmptyLines)
	c.LastLine = mapOptional(m, "LastLine", w.LastLine)
	return &c
}

func (w *ParenthesizedWhitespace) render(s *state) {
	s.node(w.FirstLine)
	renderSeq(s, w.EmptyLines)
	if w.Indent {
		s.writeIndent()
	}
	s.node(w.LastLine)
}

func (w *ParenthesizedWhitespace) validate() error {
	if w.FirstLine == nil {
		return validationErrorf(w.Kind(), "missing first line")
	}
	return nil
}

// Comment is a comment, including its leading "#" and excluding the newline
// that ends it.
type Comment struct {
	Value string
}

// Kind implements [Node].
func (*Comment) Kind() Kind { return KindComment }

func (c *Comment) mapChildren(*mapper) Node { d := *c; return &d }

func (c *Comment) render(s *state) { s.write(c.Value) }

func (c *Comment) validate() error {
	if !commentPattern.MatchString(c.Value) {
		return validationErrorf(c.Kind(), "%q is not a comment", c.Value)
	}
	return nil
}

// Newline is a line ending. An empty Value renders the default newline of
// the module.
type Newline struct {
	Value string
}

// Kind implements [Node].
func (*Newline) Kind() Kind { return KindNewline }

func (n *Newline) mapChildren(*mapper) Node { c := *n; return &c }

func (n *Newline) render(s *state) {
	if n.Value == "" {
		s.write(s.newline)
		return
	}
	s.write(n.Value)
}

func (n *Newline) validate() error {
	switch n.Value {
	case "", "\n", "\r\n", "\r":
		return nil
	default:
		return validationErrorf(n.Kind(), "%q is not a newline", n.Value)
	}
}

// TrailingWhitespace is the end of a line that contains code: whitespace, an
// optional comment, and the newline.
type TrailingWhitespace struct {
	Whitespace *SimpleWhitespace
	Comment    *Comment
	// A nil newline renders the default newline.
	Newline *Newline
}

// Kind implements [Node].
func (*TrailingWhitespace) Kind() Kind { return KindTrailingWhitespace }

func (t *TrailingWhitespace) mapChildren(m *mapper) Node {
	c := *t
	c.Whitespace = mapOptional(m, "Whitespace", t.Whitespace)
	c.Comment = mapOptional(m, "Comment", t.Comment)
	c.Newline = mapOptional(m, "Newline", t.Newline)
	return &c
}

func (t *TrailingWhitespace) render(s *state) {
	s.node(t.Whitespace)
	s.node(t.Comment)
	renderNewline(s, t.Newline)
}

func (*TrailingWhitespace) validate() error { return nil }

// EmptyLine is a line that contains no code, only whitespace and possibly a
// comment.
type EmptyLine struct {
	// Whether the line starts with the indentation of the enclosing block.
	Indent     bool
	Whitespace *SimpleWhitespace
	Comment    *Comment
	Newline    *Newline
}

// Kind implements [Node].
func (*EmptyLine) Kind() Kind { return KindEmptyLine }

func (e *EmptyLine) mapChildren(m *mapper) Node {
	c := *e
	c.Whitespace = mapOptional(m, "Whitespace", e.Whitespace)
	c.Comment = mapOptional(m, "Comment", e.Comment)
	c.Newline = mapOptional(m, "Newline", e.Newline)
	return &c
}

func (e *EmptyLine) render(s *state) {
	if e.Indent {
		s.writeIndent()
	}
	s.node(e.Whitespace)
	s.node(e.Comment)
	renderNewline(s, e.Newline)
}

func (*EmptyLine) validate() error { return nil }

func renderNewline(s *state, n *Newline) {
	if n == nil {
		s.write(s.newline)
		return
	}
	s.node(n)
}

// isEmptyWhitespace returns whether w renders as nothing.
func isEmptyWhitespace[W interface {
	Node
	empty() bool
}](w W) bool {
	return isNil(w) || w.empty()
}
