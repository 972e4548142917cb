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

import "reflect"

// Node is a node in a concrete syntax tree.
//
// The set of implementations is closed: only types in this package implement
// Node. Every implementation is a pointer to a struct, and the pointer is the
// node's identity.
type Node interface {
	// Kind returns which kind of node this is.
	Kind() Kind

	// mapChildren visits each child of this node in source order, and returns
	// a copy of this node whose children have been replaced by the mapper.
	mapChildren(m *mapper) Node
	// render writes this node's text, and its children's, to s.
	render(s *state)
	// validate checks the invariants of this node that its children do not
	// check themselves.
	validate() error
}

// Expression is any node that may appear where Python expects an expression.
// Every expression may be wrapped in any number of parentheses.
type Expression interface {
	Node
	parens() *Parens
}

// Statement is a line-level statement: a [SimpleStatementLine] or any
// compound statement such as [If] or [FunctionDef].
type Statement interface {
	Node
	statement()
}

// SmallStatement is a statement that may appear in a [SimpleStatementLine]
// or a [SimpleStatementSuite], separated by semicolons.
type SmallStatement interface {
	Node
	renderSemicolon(s *state, def string)
}

// Suite is the body of a compound statement: an [IndentedBlock] or a
// [SimpleStatementSuite].
type Suite interface {
	Node
	suite()
}

// ParenthesizableWhitespace is whitespace that may span lines when it is
// inside of brackets: a [SimpleWhitespace] or a [ParenthesizedWhitespace].
type ParenthesizableWhitespace interface {
	Node
	parenthesizableWhitespace()
	empty() bool
}

// String is any kind of string literal expression.
type String interface {
	Expression
	stringNode()
}

// FormattedStringContent is a part of an f-string: either literal text or a
// replacement field.
type FormattedStringContent interface {
	Node
	formattedStringContent()
}

// SequenceElement is an element of a [Tuple], [List] or [Set].
type SequenceElement interface {
	Node
	elementValue() Expression
	renderComma(s *state, def string)
}

// DictItem is an element of a [Dict].
type DictItem interface {
	Node
	renderComma(s *state, def string)
}

// SliceNode is the content of an [ExtSlice]: an [Index] or a [Slice].
type SliceNode interface {
	Node
	sliceNode()
}

// StarArg is the star argument of [Parameters]: a *[Param] for "*args" or
// a bare *[ParamStar].
type StarArg interface {
	Node
	starArg()
}

// OrElse is the alternative branch of an [If]: either an elif (another *[If])
// or an *[Else].
type OrElse interface {
	Node
	orElse()
}

// Parens holds the parentheses wrapping an [Expression]. It is embedded in
// every expression type.
type Parens struct {
	Lpar []*LeftParen
	Rpar []*RightParen
}

func (p *Parens) parens() *Parens { return p }

// Parenthesized returns whether the expression is wrapped in at least one
// pair of parentheses.
func (p *Parens) Parenthesized() bool {
	return len(p.Lpar) > 0
}

func (p *Parens) mapLpar(m *mapper) []*LeftParen  { return mapSeq(m, p.Lpar) }
func (p *Parens) mapRpar(m *mapper) []*RightParen { return mapSeq(m, p.Rpar) }

// parenthesize renders the parentheses around the body.
func (p *Parens) parenthesize(s *state, body func()) {
	for _, l := range p.Lpar {
		s.node(l)
	}
	body()
	for _, r := range p.Rpar {
		s.node(r)
	}
}

func (p *Parens) validateParens(k Kind) error {
	if len(p.Lpar) != len(p.Rpar) {
		return validationErrorf(k, "cannot have unbalanced parens")
	}
	return nil
}

// Maybe is a formatting slot that may be left for the renderer to fill in.
//
// The zero value means "use the default": the renderer picks a value based
// on where the node is in the tree. Use [Some] to set an explicit value.
type Maybe[N Node] struct {
	value N
	set   bool
}

// Some returns a Maybe holding an explicit value.
func Some[N Node](n N) Maybe[N] {
	return Maybe[N]{value: n, set: !isNil(n)}
}

// Get returns the explicit value, if there is one.
func (m Maybe[N]) Get() (N, bool) {
	return m.value, m.set
}

// IsDefault returns whether this slot is left for the renderer to fill in.
func (m Maybe[N]) IsDefault() bool {
	return !m.set
}

// removal is the type of [Remove].
type removal struct{}

// Remove is returned from [Transformer.Leave] to remove the visited node
// from its parent.
//
// Removing a node from a sequence drops it from the sequence; removing an
// optional node unsets it; removing a [Maybe] resets it to its default.
// Removing a required child is an error.
var Remove Node = &removal{}

func (*removal) Kind() Kind                 { return InvalidKind }
func (r *removal) mapChildren(*mapper) Node { return r }
func (*removal) render(*state)              {}
func (*removal) validate() error {
	return validationErrorf(InvalidKind, "the removal marker cannot be used as a node")
}

// isNil returns whether n is nil, including a typed nil pointer.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// As returns n as a node of type N, or false if it is not one.
func As[N Node](n Node) (N, bool) {
	v, ok := n.(N)
	return v, ok && !isNil(v)
}
