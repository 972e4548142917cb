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

// BinaryOp is an arithmetic or bitwise binary operator, such as "+".
type BinaryOp struct {
	Op                                Kind
	WhitespaceBefore, WhitespaceAfter ParenthesizableWhitespace
}

// Kind implements [Node].
func (o *BinaryOp) Kind() Kind { return o.Op }

func (o *BinaryOp) mapChildren(m *mapper) Node {
	c := *o
	c.WhitespaceBefore = mapOptional(m, "WhitespaceBefore", o.WhitespaceBefore)
	c.WhitespaceAfter = mapOptional(m, "WhitespaceAfter", o.WhitespaceAfter)
	return &c
}

func (o *BinaryOp) render(s *state) {
	s.node(o.WhitespaceBefore)
	s.write(o.Op.OperatorText())
	s.node(o.WhitespaceAfter)
}

func (o *BinaryOp) validate() error {
	if !o.Op.IsBinaryOperator() {
		return validationErrorf(KindBinaryOperation, "%v is not a binary operator", o.Op)
	}
	return nil
}

// BooleanOp is "and" or "or".
type BooleanOp struct {
	Op                                Kind
	WhitespaceBefore, WhitespaceAfter ParenthesizableWhitespace
}

// Kind implements [Node].
func (o *BooleanOp) Kind() Kind { return o.Op }

func (o *BooleanOp) mapChildren(m *mapper) Node {
	c := *o
	c.WhitespaceBefore = mapOptional(m, "WhitespaceBefore", o.WhitespaceBefore)
	c.WhitespaceAfter = mapOptional(m, "WhitespaceAfter", o.WhitespaceAfter)
	return &c
}

func (o *BooleanOp) render(s *state) {
	s.node(o.WhitespaceBefore)
	s.write(o.Op.OperatorText())
	s.node(o.WhitespaceAfter)
}

func (o *BooleanOp) validate() error {
	if !o.Op.IsBooleanOperator() {
		return validationErrorf(KindBooleanOperation, "%v is not a boolean operator", o.Op)
	}
	return nil
}

// ComparisonOp is a comparison operator, such as "<" or "not in".
type ComparisonOp struct {
	Op               Kind
	WhitespaceBefore ParenthesizableWhitespace
	// The whitespace between the two words of "not in" and "is not". Must be
	// nil for every other operator.
	WhitespaceBetween ParenthesizableWhitespace
	WhitespaceAfter   ParenthesizableWhitespace
}

// Kind implements [Node].
func (o *ComparisonOp) Kind() Kind { return o.Op }

func (o *ComparisonOp) mapChildren(m *mapper) Node {
	c := *o
	c.WhitespaceBefore = mapOptional(m, "WhitespaceBefore", o.WhitespaceBefore)
	c.WhitespaceBetween = mapOptional(m, "WhitespaceBetween", o.WhitespaceBetween)
	c.WhitespaceAfter = mapOptional(m, "WhitespaceAfter", o.WhitespaceAfter)
	return &c
}

func (o *ComparisonOp) render(s *state) {
	s.node(o.WhitespaceBefore)
	switch o.Op {
	case KindNotIn:
		s.write("not")
		renderBetween(s, o.WhitespaceBetween)
		s.write("in")
	case KindIsNot:
		s.write("is")
		renderBetween(s, o.WhitespaceBetween)
		s.write("not")
	default:
		s.write(o.Op.OperatorText())
	}
	s.node(o.WhitespaceAfter)
}

// renderBetween renders the whitespace between two keywords, which must not
// be empty.
func renderBetween(s *state, ws ParenthesizableWhitespace) {
	if isNil(ws) {
		s.write(" ")
		return
	}
	s.node(ws)
}

func (o *ComparisonOp) validate() error {
	if !o.Op.IsComparisonOperator() {
		return validationErrorf(KindComparison, "%v is not a comparison operator", o.Op)
	}
	if o.Op == KindNotIn || o.Op == KindIsNot {
		if !isNil(o.WhitespaceBetween) && o.WhitespaceBetween.empty() {
			return validationErrorf(KindComparison, "must have at least one space inside %q", o.Op.OperatorText())
		}
	} else if !isNil(o.WhitespaceBetween) {
		return validationErrorf(KindComparison, "%q cannot have whitespace between words", o.Op.OperatorText())
	}
	return nil
}

// UnaryOp is a prefix operator: "+", "-", "~" or "not".
type UnaryOp struct {
	Op              Kind
	WhitespaceAfter ParenthesizableWhitespace
}

// Kind implements [Node].
func (o *UnaryOp) Kind() Kind { return o.Op }

func (o *UnaryOp) mapChildren(m *mapper) Node {
	c := *o
	c.WhitespaceAfter = mapOptional(m, "WhitespaceAfter", o.WhitespaceAfter)
	return &c
}

func (o *UnaryOp) render(s *state) {
	s.write(o.Op.OperatorText())
	s.node(o.WhitespaceAfter)
}

func (o *UnaryOp) validate() error {
	if !o.Op.IsUnaryOperator() {
		return validationErrorf(KindUnaryOperation, "%v is not a unary operator", o.Op)
	}
	return nil
}

// AugOp is an augmented assignment operator, such as "+=".
type AugOp struct {
	Op                                Kind
	WhitespaceBefore, WhitespaceAfter ParenthesizableWhitespace
}

// Kind implements [Node].
func (o *AugOp) Kind() Kind { return o.Op }

func (o *AugOp) mapChildren(m *mapper) Node {
	c := *o
	c.WhitespaceBefore = mapOptional(m, "WhitespaceBefore", o.WhitespaceBefore)
	c.WhitespaceAfter = mapOptional(m, "WhitespaceAfter", o.WhitespaceAfter)
	return &c
}

func (o *AugOp) render(s *state) {
	s.node(o.WhitespaceBefore)
	s.write(o.Op.OperatorText())
	s.node(o.WhitespaceAfter)
}

func (o *AugOp) validate() error {
	if !o.Op.IsAugOperator() {
		return validationErrorf(KindAugAssign, "%v is not an augmented assignment operator", o.Op)
	}
	return nil
}

// punct is the shared shape of simple punctuation surrounded by whitespace.
type punct struct {
	WhitespaceBefore, WhitespaceAfter ParenthesizableWhitespace
}

func (p punct) mapPunct(m *mapper) punct {
	p.WhitespaceBefore = mapOptional(m, "WhitespaceBefore", p.WhitespaceBefore)
	p.WhitespaceAfter = mapOptional(m, "WhitespaceAfter", p.WhitespaceAfter)
	return p
}

func (p punct) renderPunct(s *state, text string) {
	s.node(p.WhitespaceBefore)
	s.write(text)
	s.node(p.WhitespaceAfter)
}

// Comma is a "," separating elements of a sequence.
type Comma struct {
	WhitespaceBefore, WhitespaceAfter ParenthesizableWhitespace
}

// Kind implements [Node].
func (*Comma) Kind() Kind { return KindComma }

func (p *Comma) mapChildren(m *mapper) Node {
	c := Comma(punct(*p).mapPunct(m))
	return &c
}
func (p *Comma) render(s *state) { punct(*p).renderPunct(s, ",") }
func (*Comma) validate() error    { return nil }

// Semicolon is a ";" separating small statements.
type Semicolon struct {
	WhitespaceBefore, WhitespaceAfter ParenthesizableWhitespace
}

// Kind implements [Node].
func (*Semicolon) Kind() Kind { return KindSemicolon }

func (p *Semicolon) mapChildren(m *mapper) Node {
	c := Semicolon(punct(*p).mapPunct(m))
	return &c
}
func (p *Semicolon) render(s *state) { punct(*p).renderPunct(s, ";") }
func (*Semicolon) validate() error    { return nil }

// Colon is a ":" inside of an expression, such as in a slice or a lambda.
type Colon struct {
	WhitespaceBefore, WhitespaceAfter ParenthesizableWhitespace
}

// Kind implements [Node].
func (*Colon) Kind() Kind { return KindColon }

func (p *Colon) mapChildren(m *mapper) Node {
	c := Colon(punct(*p).mapPunct(m))
	return &c
}
func (p *Colon) render(s *state) { punct(*p).renderPunct(s, ":") }
func (*Colon) validate() error    { return nil }

// Dot is a "." in an attribute access or a dotted name.
type Dot struct {
	WhitespaceBefore, WhitespaceAfter ParenthesizableWhitespace
}

// Kind implements [Node].
func (*Dot) Kind() Kind { return KindDot }

func (p *Dot) mapChildren(m *mapper) Node {
	c := Dot(punct(*p).mapPunct(m))
	return &c
}
func (p *Dot) render(s *state) { punct(*p).renderPunct(s, ".") }
func (*Dot) validate() error    { return nil }

// AssignEqual is the "=" of a keyword argument, a parameter default or an
// annotated assignment.
type AssignEqual struct {
	WhitespaceBefore, WhitespaceAfter ParenthesizableWhitespace
}

// Kind implements [Node].
func (*AssignEqual) Kind() Kind { return KindAssignEqual }

func (p *AssignEqual) mapChildren(m *mapper) Node {
	c := AssignEqual(punct(*p).mapPunct(m))
	return &c
}
func (p *AssignEqual) render(s *state) { punct(*p).renderPunct(s, "=") }
func (*AssignEqual) validate() error    { return nil }

// ImportStar is the "*" of "from x import *".
type ImportStar struct {
	_ byte // Zero-size values may share an address, and nodes need identity.
}

// Kind implements [Node].
func (*ImportStar) Kind() Kind { return KindImportStar }

func (p *ImportStar) mapChildren(*mapper) Node { return &ImportStar{} }
func (*ImportStar) render(s *state)            { s.write("*") }
func (*ImportStar) validate() error            { return nil }

// LeftParen is a "(", together with the whitespace that follows it.
type LeftParen struct {
	WhitespaceAfter ParenthesizableWhitespace
}

// Kind implements [Node].
func (*LeftParen) Kind() Kind { return KindLeftParen }

func (p *LeftParen) mapChildren(m *mapper) Node {
	c := *p
	c.WhitespaceAfter = mapOptional(m, "WhitespaceAfter", p.WhitespaceAfter)
	return &c
}
func (p *LeftParen) render(s *state) { s.write("("); s.node(p.WhitespaceAfter) }
func (*LeftParen) validate() error    { return nil }

// RightParen is a ")", together with the whitespace that precedes it.
type RightParen struct {
	WhitespaceBefore ParenthesizableWhitespace
}

// Kind implements [Node].
func (*RightParen) Kind() Kind { return KindRightParen }

func (p *RightParen) mapChildren(m *mapper) Node {
	c := *p
	c.WhitespaceBefore = mapOptional(m, "WhitespaceBefore", p.WhitespaceBefore)
	return &c
}
func (p *RightParen) render(s *state) { s.node(p.WhitespaceBefore); s.write(")") }
func (*RightParen) validate() error    { return nil }

// LeftSquareBracket is a "[", together with the whitespace that follows it.
type LeftSquareBracket struct {
	WhitespaceAfter ParenthesizableWhitespace
}

// Kind implements [Node].
func (*LeftSquareBracket) Kind() Kind { return KindLeftSquareBracket }

func (p *LeftSquareBracket) mapChildren(m *mapper) Node {
	c := *p
	c.WhitespaceAfter = mapOptional(m, "WhitespaceAfter", p.WhitespaceAfter)
	return &c
}
func (p *LeftSquareBracket) render(s *state) { s.write("["); s.node(p.WhitespaceAfter) }
func (*LeftSquareBracket) validate() error    { return nil }

// RightSquareBracket is a "]", together with the whitespace that precedes it.
type RightSquareBracket struct {
	WhitespaceBefore ParenthesizableWhitespace
}

// Kind implements [Node].
func (*RightSquareBracket) Kind() Kind { return KindRightSquareBracket }

func (p *RightSquareBracket) mapChildren(m *mapper) Node {
	c := *p
	c.WhitespaceBefore = mapOptional(m, "WhitespaceBefore", p.WhitespaceBefore)
	return &c
}
func (p *RightSquareBracket) render(s *state) { s.node(p.WhitespaceBefore); s.write("]") }
func (*RightSquareBracket) validate() error    { return nil }

// LeftCurlyBrace is a "{", together with the whitespace that follows it.
type LeftCurlyBrace struct {
	WhitespaceAfter ParenthesizableWhitespace
}

// Kind implements [Node].
func (*LeftCurlyBrace) Kind() Kind { return KindLeftCurlyBrace }

func (p *LeftCurlyBrace) mapChildren(m *mapper) Node {
	c := *p
	c.WhitespaceAfter = mapOptional(m, "WhitespaceAfter", p.WhitespaceAfter)
	return &c
}
func (p *LeftCurlyBrace) render(s *state) { s.write("{"); s.node(p.WhitespaceAfter) }
func (*LeftCurlyBrace) validate() error    { return nil }

// RightCurlyBrace is a "}", together with the whitespace that precedes it.
type RightCurlyBrace struct {
	WhitespaceBefore ParenthesizableWhitespace
}

// Kind implements [Node].
func (*RightCurlyBrace) Kind() Kind { return KindRightCurlyBrace }

func (p *RightCurlyBrace) mapChildren(m *mapper) Node {
	c := *p
	c.WhitespaceBefore = mapOptional(m, "WhitespaceBefore", p.WhitespaceBefore)
	return &c
}
func (p *RightCurlyBrace) render(s *state) { s.node(p.WhitespaceBefore); s.write("}") }
func (*RightCurlyBrace) validate() error    { return nil }
