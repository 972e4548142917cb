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

import (
	"regexp"
	"strings"

	"github.com/bufbuild/pycst/internal/ext/unicodex"
)

var (
	integerPattern   = regexp.MustCompile(`^(0[xX](_?[0-9a-fA-F])+|0[oO](_?[0-7])+|0[bB](_?[01])+|[1-9](_?[0-9])*|0+(_?0)*)$`)
	floatPattern     = regexp.MustCompile(`^(` + floatText + `)$`)
	imaginaryPattern = regexp.MustCompile(`^(` + floatText + `|[0-9](_?[0-9])*)[jJ]$`)
)

const floatText = `(([0-9](_?[0-9])*)?\.[0-9](_?[0-9])*|[0-9](_?[0-9])*\.)([eE][-+]?[0-9](_?[0-9])*)?|[0-9](_?[0-9])*[eE][-+]?[0-9](_?[0-9])*`

// keywords are the words that can never be used as a [Name].
var keywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "break": true, "class": true, "continue": true,
	"def": true, "del": true, "elif": true, "else": true, "except": true,
	"finally": true, "for": true, "from": true, "global": true, "if": true,
	"import": true, "in": true, "is": true, "lambda": true, "nonlocal": true,
	"not": true, "or": true, "pass": true, "raise": true, "return": true,
	"try": true, "while": true, "with": true, "yield": true,
}

// IsKeyword returns whether word is a reserved word that cannot be used as an
// identifier. "async" and "await" are not included, since whether they are
// reserved depends on the Python version.
//
// The constants True, False and None are keywords, but they are represented
// as a [Name] anyway.
func IsKeyword(word string) bool {
	return keywords[word]
}

// Name is an identifier, such as a variable name or an attribute name.
//
// The constants True, False and None are also represented as names.
type Name struct {
	Parens
	Value string
}

// Kind implements [Node].
func (*Name) Kind() Kind { return KindName }

func (n *Name) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *Name) render(s *state) {
	n.parenthesize(s, func() { s.write(n.Value) })
}

func (n *Name) validate() error {
	if !unicodex.IsIdent(n.Value) {
		return validationErrorf(n.Kind(), "%q is not a valid identifier", n.Value)
	}
	switch n.Value {
	case "True", "False", "None":
	default:
		if keywords[n.Value] {
			return validationErrorf(n.Kind(), "%q is a reserved word", n.Value)
		}
	}
	return n.validateParens(n.Kind())
}

// Attribute is an attribute access, such as "x.y".
type Attribute struct {
	Parens
	Value Expression
	Dot   *Dot
	Attr  *Name
}

// Kind implements [Node].
func (*Attribute) Kind() Kind { return KindAttribute }

func (n *Attribute) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Value = mapRequired(m, "Value", n.Value)
	c.Dot = mapOptional(m, "Dot", n.Dot)
	c.Attr = mapRequired(m, "Attr", n.Attr)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *Attribute) render(s *state) {
	n.parenthesize(s, func() {
		s.node(n.Value)
		if n.Dot == nil {
			s.write(".")
		}
		s.node(n.Dot)
		s.node(n.Attr)
	})
}

func (n *Attribute) validate() error {
	if isNil(n.Value) {
		return validationErrorf(n.Kind(), "missing value")
	}
	if n.Attr == nil {
		return validationErrorf(n.Kind(), "missing attribute name")
	}
	return n.validateParens(n.Kind())
}

// Ellipsis is the "..." literal.
type Ellipsis struct {
	Parens
}

// Kind implements [Node].
func (*Ellipsis) Kind() Kind { return KindEllipsis }

func (n *Ellipsis) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *Ellipsis) render(s *state) {
	n.parenthesize(s, func() { s.write("...") })
}

func (n *Ellipsis) validate() error { return n.validateParens(n.Kind()) }

// Integer is an integer literal, in any base.
type Integer struct {
	Parens
	Value string
}

// Kind implements [Node].
func (*Integer) Kind() Kind { return KindInteger }

func (n *Integer) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *Integer) render(s *state) {
	n.parenthesize(s, func() { s.write(n.Value) })
}

func (n *Integer) validate() error {
	if !integerPattern.MatchString(n.Value) {
		return validationErrorf(n.Kind(), "%q is not a valid integer", n.Value)
	}
	return n.validateParens(n.Kind())
}

// Float is a floating-point literal.
type Float struct {
	Parens
	Value string
}

// Kind implements [Node].
func (*Float) Kind() Kind { return KindFloat }

func (n *Float) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *Float) render(s *state) {
	n.parenthesize(s, func() { s.write(n.Value) })
}

func (n *Float) validate() error {
	if !floatPattern.MatchString(n.Value) {
		return validationErrorf(n.Kind(), "%q is not a valid float", n.Value)
	}
	return n.validateParens(n.Kind())
}

// Imaginary is an imaginary number literal, such as "3j".
type Imaginary struct {
	Parens
	Value string
}

// Kind implements [Node].
func (*Imaginary) Kind() Kind { return KindImaginary }

func (n *Imaginary) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *Imaginary) render(s *state) {
	n.parenthesize(s, func() { s.write(n.Value) })
}

func (n *Imaginary) validate() error {
	if !imaginaryPattern.MatchString(n.Value) {
		return validationErrorf(n.Kind(), "%q is not a valid imaginary number", n.Value)
	}
	return n.validateParens(n.Kind())
}

// SimpleString is a string or bytes literal that is not an f-string,
// including its prefix and quotes.
type SimpleString struct {
	Parens
	Value string
}

// Kind implements [Node].
func (*SimpleString) Kind() Kind { return KindSimpleString }

func (*SimpleString) stringNode() {}

func (n *SimpleString) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *SimpleString) render(s *state) {
	n.parenthesize(s, func() { s.write(n.Value) })
}

func (n *SimpleString) validate() error {
	prefix, quote, ok := splitStringPrefix(n.Value)
	if !ok || strings.ContainsAny(prefix, "fF") {
		return validationErrorf(n.Kind(), "%q is not a valid string literal", n.Value)
	}
	body := n.Value[len(prefix):]
	if len(body) < 2*len(quote) || !strings.HasSuffix(body, quote) {
		return validationErrorf(n.Kind(), "string literal must end with %s", quote)
	}
	return n.validateParens(n.Kind())
}

// Prefix returns the string prefix, such as "rb".
func (n *SimpleString) Prefix() string {
	prefix, _, _ := splitStringPrefix(n.Value)
	return prefix
}

// Quote returns the quote that delimits the string: one of ', ", ''' or """.
func (n *SimpleString) Quote() string {
	_, quote, _ := splitStringPrefix(n.Value)
	return quote
}

// RawValue returns the text between the quotes, with escapes unprocessed.
func (n *SimpleString) RawValue() string {
	prefix, quote, ok := splitStringPrefix(n.Value)
	if !ok || len(n.Value) < len(prefix)+2*len(quote) {
		return ""
	}
	return n.Value[len(prefix)+len(quote) : len(n.Value)-len(quote)]
}

// splitStringPrefix splits the prefix and opening quote off of a string
// literal.
func splitStringPrefix(lit string) (prefix, quote string, ok bool) {
	i := strings.IndexAny(lit, `'"`)
	if i < 0 || i > 2 {
		return "", "", false
	}
	prefix = lit[:i]
	for _, r := range prefix {
		if !strings.ContainsRune("rRbBuUfF", r) {
			return "", "", false
		}
	}
	lower := strings.ToLower(prefix)
	if len(lower) == 2 && (strings.Contains(lower, "u") ||
		lower[0] == lower[1] ||
		(strings.Contains(lower, "b") && strings.Contains(lower, "f"))) {
		return "", "", false
	}

	quote = lit[i : i+1]
	if strings.HasPrefix(lit[i:], strings.Repeat(quote, 3)) && len(lit[i:]) >= 6 {
		quote = strings.Repeat(quote, 3)
	}
	return prefix, quote, true
}

// ConcatenatedString is two or more string literals written next to each
// other, which Python joins into one.
type ConcatenatedString struct {
	Parens
	// Either a *SimpleString or a *FormattedString.
	Left              String
	WhitespaceBetween ParenthesizableWhitespace
	Right             String
}

// Kind implements [Node].
func (*ConcatenatedString) Kind() Kind { return KindConcatenatedString }

func (*ConcatenatedString) stringNode() {}

func (n *ConcatenatedString) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Left = mapRequired(m, "Left", n.Left)
	c.WhitespaceBetween = mapOptional(m, "WhitespaceBetween", n.WhitespaceBetween)
	c.Right = mapRequired(m, "Right", n.Right)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *ConcatenatedString) render(s *state) {
	n.parenthesize(s, func() {
		s.node(n.Left)
		s.node(n.WhitespaceBetween)
		s.node(n.Right)
	})
}

func (n *ConcatenatedString) validate() error {
	if isNil(n.Left) || isNil(n.Right) {
		return validationErrorf(n.Kind(), "missing operand")
	}
	if _, ok := n.Left.(*ConcatenatedString); ok {
		return validationErrorf(n.Kind(), "left operand cannot be a concatenated string")
	}
	leftBytes := strings.ContainsAny(stringPrefix(n.Left), "bB")
	rightBytes := strings.ContainsAny(stringPrefix(n.Right), "bB")
	if leftBytes != rightBytes {
		return validationErrorf(n.Kind(), "cannot concatenate bytes with a string")
	}
	return n.validateParens(n.Kind())
}

// stringPrefix returns the prefix of the leftmost literal of a string node.
func stringPrefix(n String) string {
	switch n := n.(type) {
	case *SimpleString:
		return n.Prefix()
	case *FormattedString:
		return n.Prefix()
	case *ConcatenatedString:
		return stringPrefix(n.Left)
	}
	return ""
}

// FormattedString is an f-string.
type FormattedString struct {
	Parens
	// The prefix and opening quote, such as `f"` or `rf'''`.
	Start string
	Parts []FormattedStringContent
	// The closing quote.
	End string
}

// Kind implements [Node].
func (*FormattedString) Kind() Kind { return KindFormattedString }

func (*FormattedString) stringNode() {}

func (n *FormattedString) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Parts = mapSeq(m, n.Parts)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *FormattedString) render(s *state) {
	n.parenthesize(s, func() {
		s.write(n.Start)
		renderSeq(s, n.Parts)
		s.write(n.End)
	})
}

func (n *FormattedString) validate() error {
	prefix := n.Prefix()
	quote := n.Start[len(prefix):]
	switch {
	case !strings.ContainsAny(prefix, "fF"), strings.ContainsAny(prefix, "bBuU"), len(prefix) > 2:
		return validationErrorf(n.Kind(), "%q is not a valid f-string prefix", prefix)
	case quote != `'` && quote != `"` && quote != `'''` && quote != `"""`:
		return validationErrorf(n.Kind(), "%q is not a valid f-string start", n.Start)
	case n.End != quote:
		return validationErrorf(n.Kind(), "f-string starting with %s must end with it", quote)
	}
	return n.validateParens(n.Kind())
}

// Prefix returns the string prefix, such as "rf".
func (n *FormattedString) Prefix() string {
	return strings.TrimRight(n.Start, `'"`)
}

// FormattedStringText is literal text inside of an f-string.
type FormattedStringText struct {
	Value string
}

// Kind implements [Node].
func (*FormattedStringText) Kind() Kind { return KindFormattedStringText }

func (*FormattedStringText) formattedStringContent() {}

func (n *FormattedStringText) mapChildren(*mapper) Node { c := *n; return &c }

func (n *FormattedStringText) render(s *state) { s.write(n.Value) }

func (*FormattedStringText) validate() error { return nil }

// FormattedStringExpression is a replacement field inside of an f-string,
// such as "{x!r:>10}".
type FormattedStringExpression struct {
	WhitespaceBeforeExpression ParenthesizableWhitespace
	Expression                 Expression
	WhitespaceAfterExpression  ParenthesizableWhitespace
	// One of "", "r", "s" or "a".
	Conversion string
	// If non-empty, the field has a format spec, which is rendered after a
	// colon. An empty spec written as "{x:}" is a single empty text part.
	FormatSpec []FormattedStringContent
}

// Kind implements [Node].
func (*FormattedStringExpression) Kind() Kind { return KindFormattedStringExpression }

func (*FormattedStringExpression) formattedStringContent() {}

func (n *FormattedStringExpression) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceBeforeExpression = mapOptional(m, "WhitespaceBeforeExpression", n.WhitespaceBeforeExpression)
	c.Expression = mapRequired(m, "Expression", n.Expression)
	c.WhitespaceAfterExpression = mapOptional(m, "WhitespaceAfterExpression", n.WhitespaceAfterExpression)
	c.FormatSpec = mapSeq(m, n.FormatSpec)
	return &c
}

func (n *FormattedStringExpression) render(s *state) {
	s.write("{")
	s.node(n.WhitespaceBeforeExpression)
	s.node(n.Expression)
	s.node(n.WhitespaceAfterExpression)
	if n.Conversion != "" {
		s.write("!")
		s.write(n.Conversion)
	}
	if len(n.FormatSpec) > 0 {
		s.write(":")
		renderSeq(s, n.FormatSpec)
	}
	s.write("}")
}

func (n *FormattedStringExpression) validate() error {
	if isNil(n.Expression) {
		return validationErrorf(n.Kind(), "missing expression")
	}
	switch n.Conversion {
	case "", "r", "s", "a":
	default:
		return validationErrorf(n.Kind(), "invalid conversion %q", n.Conversion)
	}
	return nil
}
