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

// Element is an element of a [Tuple], [List] or [Set].
type Element struct {
	Value Expression
	// Defaults to ", " unless this is the last element.
	Comma Maybe[*Comma]
}

// Kind implements [Node].
func (*Element) Kind() Kind { return KindElement }

func (n *Element) elementValue() Expression { return n.Value }

func (n *Element) mapChildren(m *mapper) Node {
	c := *n
	c.Value = mapRequired(m, "Value", n.Value)
	c.Comma = mapMaybe(m, "Comma", n.Comma)
	return &c
}

func (n *Element) render(s *state) { n.renderComma(s, "") }

func (n *Element) renderComma(s *state, def string) {
	start := s.offset()
	s.node(n.Value)
	s.syntax(n, start)
	renderMaybe(s, n.Comma, def)
}

func (n *Element) validate() error {
	if isNil(n.Value) {
		return validationErrorf(n.Kind(), "missing value")
	}
	return nil
}

// StarredElement is an unpacked element of a [Tuple], [List] or [Set], such
// as the "*rest" of "first, *rest = x".
type StarredElement struct {
	WhitespaceBeforeValue ParenthesizableWhitespace
	Value                 Expression
	// Defaults to ", " unless this is the last element.
	Comma Maybe[*Comma]
}

// Kind implements [Node].
func (*StarredElement) Kind() Kind { return KindStarredElement }

func (n *StarredElement) elementValue() Expression { return n.Value }

func (n *StarredElement) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceBeforeValue = mapOptional(m, "WhitespaceBeforeValue", n.WhitespaceBeforeValue)
	c.Value = mapRequired(m, "Value", n.Value)
	c.Comma = mapMaybe(m, "Comma", n.Comma)
	return &c
}

func (n *StarredElement) render(s *state) { n.renderComma(s, "") }

func (n *StarredElement) renderComma(s *state, def string) {
	start := s.offset()
	s.write("*")
	s.node(n.WhitespaceBeforeValue)
	s.node(n.Value)
	s.syntax(n, start)
	renderMaybe(s, n.Comma, def)
}

func (n *StarredElement) validate() error {
	if isNil(n.Value) {
		return validationErrorf(n.Kind(), "missing value")
	}
	return nil
}

// Tuple is a tuple display, with or without parentheses.
type Tuple struct {
	Parens
	Elements []SequenceElement
}

// Kind implements [Node].
func (*Tuple) Kind() Kind { return KindTuple }

func (n *Tuple) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Elements = mapSeq(m, n.Elements)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *Tuple) render(s *state) {
	n.parenthesize(s, func() {
		if len(n.Elements) == 1 {
			el := n.Elements[0]
			s.nodeWith(el, func() { el.renderComma(s, ",") })
			return
		}
		renderCommaSeq(s, n.Elements)
	})
}

func (n *Tuple) validate() error {
	if len(n.Elements) == 0 && !n.Parenthesized() {
		return validationErrorf(n.Kind(), "an empty tuple must be parenthesized")
	}
	return n.validateParens(n.Kind())
}

// List is a list display, such as "[1, 2]".
type List struct {
	Parens
	Lbracket *LeftSquareBracket
	Elements []SequenceElement
	Rbracket *RightSquareBracket
}

// Kind implements [Node].
func (*List) Kind() Kind { return KindList }

func (n *List) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Lbracket = mapOptional(m, "Lbracket", n.Lbracket)
	c.Elements = mapSeq(m, n.Elements)
	c.Rbracket = mapOptional(m, "Rbracket", n.Rbracket)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *List) render(s *state) {
	n.parenthesize(s, func() {
		renderOpen(s, n.Lbracket, "[")
		renderCommaSeq(s, n.Elements)
		renderClose(s, n.Rbracket, "]")
	})
}

func (n *List) validate() error { return n.validateParens(n.Kind()) }

// Set is a set display, such as "{1, 2}". Sets cannot be empty, since "{}" is
// an empty [Dict].
type Set struct {
	Parens
	Lbrace   *LeftCurlyBrace
	Elements []SequenceElement
	Rbrace   *RightCurlyBrace
}

// Kind implements [Node].
func (*Set) Kind() Kind { return KindSet }

func (n *Set) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Lbrace = mapOptional(m, "Lbrace", n.Lbrace)
	c.Elements = mapSeq(m, n.Elements)
	c.Rbrace = mapOptional(m, "Rbrace", n.Rbrace)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *Set) render(s *state) {
	n.parenthesize(s, func() {
		renderOpen(s, n.Lbrace, "{")
		renderCommaSeq(s, n.Elements)
		renderClose(s, n.Rbrace, "}")
	})
}

func (n *Set) validate() error {
	if len(n.Elements) == 0 {
		return validationErrorf(n.Kind(), "a set must have at least one element")
	}
	return n.validateParens(n.Kind())
}

// Dict is a dictionary display, such as "{k: v, **rest}".
type Dict struct {
	Parens
	Lbrace   *LeftCurlyBrace
	Elements []DictItem
	Rbrace   *RightCurlyBrace
}

// Kind implements [Node].
func (*Dict) Kind() Kind { return KindDict }

func (n *Dict) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Lbrace = mapOptional(m, "Lbrace", n.Lbrace)
	c.Elements = mapSeq(m, n.Elements)
	c.Rbrace = mapOptional(m, "Rbrace", n.Rbrace)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *Dict) render(s *state) {
	n.parenthesize(s, func() {
		renderOpen(s, n.Lbrace, "{")
		renderCommaSeq(s, n.Elements)
		renderClose(s, n.Rbrace, "}")
	})
}

func (n *Dict) validate() error { return n.validateParens(n.Kind()) }

// DictElement is a "key: value" pair of a [Dict].
type DictElement struct {
	Key                   Expression
	WhitespaceBeforeColon ParenthesizableWhitespace
	WhitespaceAfterColon  ParenthesizableWhitespace
	Value                 Expression
	// Defaults to ", " unless this is the last element.
	Comma Maybe[*Comma]
}

// Kind implements [Node].
func (*DictElement) Kind() Kind { return KindDictElement }

func (n *DictElement) mapChildren(m *mapper) Node {
	c := *n
	c.Key = mapRequired(m, "Key", n.Key)
	c.WhitespaceBeforeColon = mapOptional(m, "WhitespaceBeforeColon", n.WhitespaceBeforeColon)
	c.WhitespaceAfterColon = mapOptional(m, "WhitespaceAfterColon", n.WhitespaceAfterColon)
	c.Value = mapRequired(m, "Value", n.Value)
	c.Comma = mapMaybe(m, "Comma", n.Comma)
	return &c
}

func (n *DictElement) render(s *state) { n.renderComma(s, "") }

func (n *DictElement) renderComma(s *state, def string) {
	start := s.offset()
	s.node(n.Key)
	s.node(n.WhitespaceBeforeColon)
	s.write(":")
	s.node(n.WhitespaceAfterColon)
	s.node(n.Value)
	s.syntax(n, start)
	renderMaybe(s, n.Comma, def)
}

func (n *DictElement) validate() error {
	if isNil(n.Key) || isNil(n.Value) {
		return validationErrorf(n.Kind(), "missing key or value")
	}
	return nil
}

// StarredDictElement is an unpacked mapping in a [Dict], such as "**rest".
type StarredDictElement struct {
	WhitespaceBeforeValue ParenthesizableWhitespace
	Value                 Expression
	// Defaults to ", " unless this is the last element.
	Comma Maybe[*Comma]
}

// Kind implements [Node].
func (*StarredDictElement) Kind() Kind { return KindStarredDictElement }

func (n *StarredDictElement) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceBeforeValue = mapOptional(m, "WhitespaceBeforeValue", n.WhitespaceBeforeValue)
	c.Value = mapRequired(m, "Value", n.Value)
	c.Comma = mapMaybe(m, "Comma", n.Comma)
	return &c
}

func (n *StarredDictElement) render(s *state) { n.renderComma(s, "") }

func (n *StarredDictElement) renderComma(s *state, def string) {
	start := s.offset()
	s.write("**")
	s.node(n.WhitespaceBeforeValue)
	s.node(n.Value)
	s.syntax(n, start)
	renderMaybe(s, n.Comma, def)
}

func (n *StarredDictElement) validate() error {
	if isNil(n.Value) {
		return validationErrorf(n.Kind(), "missing value")
	}
	return nil
}

// GeneratorExp is a generator expression, such as "(x for x in y)".
type GeneratorExp struct {
	Parens
	Elt   Expression
	ForIn *CompFor
}

// Kind implements [Node].
func (*GeneratorExp) Kind() Kind { return KindGeneratorExp }

func (n *GeneratorExp) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Elt = mapRequired(m, "Elt", n.Elt)
	c.ForIn = mapRequired(m, "ForIn", n.ForIn)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *GeneratorExp) render(s *state) {
	n.parenthesize(s, func() {
		s.node(n.Elt)
		s.node(n.ForIn)
	})
}

func (n *GeneratorExp) validate() error {
	if isNil(n.Elt) || n.ForIn == nil {
		return validationErrorf(n.Kind(), "missing element or for clause")
	}
	return n.validateParens(n.Kind())
}

// ListComp is a list comprehension, such as "[x for x in y]".
type ListComp struct {
	Parens
	Lbracket *LeftSquareBracket
	Elt      Expression
	ForIn    *CompFor
	Rbracket *RightSquareBracket
}

// Kind implements [Node].
func (*ListComp) Kind() Kind { return KindListComp }

func (n *ListComp) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Lbracket = mapOptional(m, "Lbracket", n.Lbracket)
	c.Elt = mapRequired(m, "Elt", n.Elt)
	c.ForIn = mapRequired(m, "ForIn", n.ForIn)
	c.Rbracket = mapOptional(m, "Rbracket", n.Rbracket)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *ListComp) render(s *state) {
	n.parenthesize(s, func() {
		renderOpen(s, n.Lbracket, "[")
		s.node(n.Elt)
		s.node(n.ForIn)
		renderClose(s, n.Rbracket, "]")
	})
}

func (n *ListComp) validate() error {
	if isNil(n.Elt) || n.ForIn == nil {
		return validationErrorf(n.Kind(), "missing element or for clause")
	}
	return n.validateParens(n.Kind())
}

// SetComp is a set comprehension, such as "{x for x in y}".
type SetComp struct {
	Parens
	Lbrace *LeftCurlyBrace
	Elt    Expression
	ForIn  *CompFor
	Rbrace *RightCurlyBrace
}

// Kind implements [Node].
func (*SetComp) Kind() Kind { return KindSetComp }

func (n *SetComp) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Lbrace = mapOptional(m, "Lbrace", n.Lbrace)
	c.Elt = mapRequired(m, "Elt", n.Elt)
	c.ForIn = mapRequired(m, "ForIn", n.ForIn)
	c.Rbrace = mapOptional(m, "Rbrace", n.Rbrace)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *SetComp) render(s *state) {
	n.parenthesize(s, func() {
		renderOpen(s, n.Lbrace, "{")
		s.node(n.Elt)
		s.node(n.ForIn)
		renderClose(s, n.Rbrace, "}")
	})
}

func (n *SetComp) validate() error {
	if isNil(n.Elt) || n.ForIn == nil {
		return validationErrorf(n.Kind(), "missing element or for clause")
	}
	return n.validateParens(n.Kind())
}

// DictComp is a dictionary comprehension, such as "{k: v for k, v in y}".
type DictComp struct {
	Parens
	Lbrace                *LeftCurlyBrace
	Key                   Expression
	WhitespaceBeforeColon ParenthesizableWhitespace
	WhitespaceAfterColon  ParenthesizableWhitespace
	Value                 Expression
	ForIn                 *CompFor
	Rbrace                *RightCurlyBrace
}

// Kind implements [Node].
func (*DictComp) Kind() Kind { return KindDictComp }

func (n *DictComp) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Lbrace = mapOptional(m, "Lbrace", n.Lbrace)
	c.Key = mapRequired(m, "Key", n.Key)
	c.WhitespaceBeforeColon = mapOptional(m, "WhitespaceBeforeColon", n.WhitespaceBeforeColon)
	c.WhitespaceAfterColon = mapOptional(m, "WhitespaceAfterColon", n.WhitespaceAfterColon)
	c.Value = mapRequired(m, "Value", n.Value)
	c.ForIn = mapRequired(m, "ForIn", n.ForIn)
	c.Rbrace = mapOptional(m, "Rbrace", n.Rbrace)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *DictComp) render(s *state) {
	n.parenthesize(s, func() {
		renderOpen(s, n.Lbrace, "{")
		s.node(n.Key)
		s.node(n.WhitespaceBeforeColon)
		s.write(":")
		s.node(n.WhitespaceAfterColon)
		s.node(n.Value)
		s.node(n.ForIn)
		renderClose(s, n.Rbrace, "}")
	})
}

func (n *DictComp) validate() error {
	if isNil(n.Key) || isNil(n.Value) || n.ForIn == nil {
		return validationErrorf(n.Kind(), "missing key, value or for clause")
	}
	return n.validateParens(n.Kind())
}

// CompFor is a "for ... in ..." clause of a comprehension, followed by its
// "if" clauses and any further "for" clause.
type CompFor struct {
	WhitespaceBefore   ParenthesizableWhitespace
	Asynchronous       *Asynchronous
	WhitespaceAfterFor ParenthesizableWhitespace
	Target             Expression
	WhitespaceBeforeIn ParenthesizableWhitespace
	WhitespaceAfterIn  ParenthesizableWhitespace
	Iter               Expression
	Ifs                []*CompIf
	InnerForIn         *CompFor
}

// Kind implements [Node].
func (*CompFor) Kind() Kind { return KindCompFor }

func (n *CompFor) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceBefore = mapOptional(m, "WhitespaceBefore", n.WhitespaceBefore)
	c.Asynchronous = mapOptional(m, "Asynchronous", n.Asynchronous)
	c.WhitespaceAfterFor = mapOptional(m, "WhitespaceAfterFor", n.WhitespaceAfterFor)
	c.Target = mapRequired(m, "Target", n.Target)
	c.WhitespaceBeforeIn = mapOptional(m, "WhitespaceBeforeIn", n.WhitespaceBeforeIn)
	c.WhitespaceAfterIn = mapOptional(m, "WhitespaceAfterIn", n.WhitespaceAfterIn)
	c.Iter = mapRequired(m, "Iter", n.Iter)
	c.Ifs = mapSeq(m, n.Ifs)
	c.InnerForIn = mapOptional(m, "InnerForIn", n.InnerForIn)
	return &c
}

func (n *CompFor) render(s *state) {
	s.node(n.WhitespaceBefore)
	s.node(n.Asynchronous)
	s.write("for")
	s.node(n.WhitespaceAfterFor)
	s.node(n.Target)
	s.node(n.WhitespaceBeforeIn)
	s.write("in")
	s.node(n.WhitespaceAfterIn)
	s.node(n.Iter)
	renderSeq(s, n.Ifs)
	s.node(n.InnerForIn)
}

func (n *CompFor) validate() error {
	if isNil(n.Target) || isNil(n.Iter) {
		return validationErrorf(n.Kind(), "missing target or iterable")
	}
	err := checkKeywordSpacing(n.Kind(), "for", nil, nil, n.Target, n.WhitespaceAfterFor)
	if err != nil {
		return err
	}
	return checkKeywordSpacing(n.Kind(), "in", n.Target, n.WhitespaceBeforeIn, n.Iter, n.WhitespaceAfterIn)
}

// CompIf is an "if" clause of a comprehension.
type CompIf struct {
	WhitespaceBefore     ParenthesizableWhitespace
	WhitespaceBeforeTest ParenthesizableWhitespace
	Test                 Expression
}

// Kind implements [Node].
func (*CompIf) Kind() Kind { return KindCompIf }

func (n *CompIf) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceBefore = mapOptional(m, "WhitespaceBefore", n.WhitespaceBefore)
	c.WhitespaceBeforeTest = mapOptional(m, "WhitespaceBeforeTest", n.WhitespaceBeforeTest)
	c.Test = mapRequired(m, "Test", n.Test)
	return &c
}

func (n *CompIf) render(s *state) {
	s.node(n.WhitespaceBefore)
	s.write("if")
	s.node(n.WhitespaceBeforeTest)
	s.node(n.Test)
}

func (n *CompIf) validate() error {
	if isNil(n.Test) {
		return validationErrorf(n.Kind(), "missing test")
	}
	return checkKeywordSpacing(n.Kind(), "if", nil, nil, n.Test, n.WhitespaceBeforeTest)
}

// Asynchronous is the "async" keyword of an async function, for loop, with
// statement or comprehension.
type Asynchronous struct {
	WhitespaceAfter ParenthesizableWhitespace
}

// Kind implements [Node].
func (*Asynchronous) Kind() Kind { return KindAsynchronous }

func (n *Asynchronous) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceAfter = mapOptional(m, "WhitespaceAfter", n.WhitespaceAfter)
	return &c
}

func (n *Asynchronous) render(s *state) {
	s.write("async")
	s.node(n.WhitespaceAfter)
}

func (n *Asynchronous) validate() error {
	if isEmptyWhitespace(n.WhitespaceAfter) {
		return validationErrorf(n.Kind(), "must have at least one space after \"async\"")
	}
	return nil
}

// Subscript is a subscript or slice expression, such as "x[1:2, ...]".
type Subscript struct {
	Parens
	Value                Expression
	WhitespaceAfterValue ParenthesizableWhitespace
	Lbracket             *LeftSquareBracket
	Slice                []*ExtSlice
	Rbracket             *RightSquareBracket
}

// Kind implements [Node].
func (*Subscript) Kind() Kind { return KindSubscript }

func (n *Subscript) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Value = mapRequired(m, "Value", n.Value)
	c.WhitespaceAfterValue = mapOptional(m, "WhitespaceAfterValue", n.WhitespaceAfterValue)
	c.Lbracket = mapOptional(m, "Lbracket", n.Lbracket)
	c.Slice = mapSeq(m, n.Slice)
	c.Rbracket = mapOptional(m, "Rbracket", n.Rbracket)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *Subscript) render(s *state) {
	n.parenthesize(s, func() {
		s.node(n.Value)
		s.node(n.WhitespaceAfterValue)
		renderOpen(s, n.Lbracket, "[")
		renderCommaSeq(s, n.Slice)
		renderClose(s, n.Rbracket, "]")
	})
}

func (n *Subscript) validate() error {
	if isNil(n.Value) {
		return validationErrorf(n.Kind(), "missing value")
	}
	if len(n.Slice) == 0 {
		return validationErrorf(n.Kind(), "must have at least one index or slice")
	}
	return n.validateParens(n.Kind())
}

// ExtSlice is one comma-separated element of a [Subscript].
type ExtSlice struct {
	Slice SliceNode
	// Defaults to ", " unless this is the last element.
	Comma Maybe[*Comma]
}

// Kind implements [Node].
func (*ExtSlice) Kind() Kind { return KindExtSlice }

func (n *ExtSlice) mapChildren(m *mapper) Node {
	c := *n
	c.Slice = mapRequired(m, "Slice", n.Slice)
	c.Comma = mapMaybe(m, "Comma", n.Comma)
	return &c
}

func (n *ExtSlice) render(s *state) { n.renderComma(s, "") }

func (n *ExtSlice) renderComma(s *state, def string) {
	start := s.offset()
	s.node(n.Slice)
	s.syntax(n, start)
	renderMaybe(s, n.Comma, def)
}

func (n *ExtSlice) validate() error {
	if isNil(n.Slice) {
		return validationErrorf(n.Kind(), "missing slice")
	}
	return nil
}

// Index is a single index of a [Subscript], such as the "1" of "x[1]".
type Index struct {
	Value Expression
}

// Kind implements [Node].
func (*Index) Kind() Kind { return KindIndex }

func (*Index) sliceNode() {}

func (n *Index) mapChildren(m *mapper) Node {
	c := *n
	c.Value = mapRequired(m, "Value", n.Value)
	return &c
}

func (n *Index) render(s *state) { s.node(n.Value) }

func (n *Index) validate() error {
	if isNil(n.Value) {
		return validationErrorf(n.Kind(), "missing value")
	}
	return nil
}

// Slice is a slice of a [Subscript], such as the "1:2:3" of "x[1:2:3]".
type Slice struct {
	Lower Expression
	// Defaults to ":".
	First *Colon
	Upper Expression
	// Defaults to ":" if there is a step, and to nothing otherwise.
	Second *Colon
	Step   Expression
}

// Kind implements [Node].
func (*Slice) Kind() Kind { return KindSlice }

func (*Slice) sliceNode() {}

func (n *Slice) mapChildren(m *mapper) Node {
	c := *n
	c.Lower = mapOptional(m, "Lower", n.Lower)
	c.First = mapOptional(m, "First", n.First)
	c.Upper = mapOptional(m, "Upper", n.Upper)
	c.Second = mapOptional(m, "Second", n.Second)
	c.Step = mapOptional(m, "Step", n.Step)
	return &c
}

func (n *Slice) render(s *state) {
	s.node(n.Lower)
	renderOpen(s, n.First, ":")
	s.node(n.Upper)
	if n.Second == nil && !isNil(n.Step) {
		s.write(":")
	}
	s.node(n.Second)
	s.node(n.Step)
}

func (*Slice) validate() error { return nil }

// Yield is a yield expression, either "yield x" or "yield from x".
type Yield struct {
	Parens
	// Defaults to " " if there is a value.
	WhitespaceAfterYield Maybe[ParenthesizableWhitespace]
	// Either an Expression, a *From, or nil.
	Value Node
}

// Kind implements [Node].
func (*Yield) Kind() Kind { return KindYield }

func (n *Yield) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.WhitespaceAfterYield = mapMaybe(m, "WhitespaceAfterYield", n.WhitespaceAfterYield)
	c.Value = mapOptional(m, "Value", n.Value)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *Yield) render(s *state) {
	n.parenthesize(s, func() {
		s.write("yield")
		def := ""
		if !isNil(n.Value) {
			def = " "
		}
		renderMaybe(s, n.WhitespaceAfterYield, def)
		if from, ok := n.Value.(*From); ok && from != nil {
			s.nodeWith(from, func() { from.renderDefault(s, "") })
			return
		}
		s.node(n.Value)
	})
}

func (n *Yield) validate() error {
	switch v := n.Value.(type) {
	case nil, *From, Expression:
	default:
		return validationErrorf(n.Kind(), "cannot yield a %v", v.Kind())
	}
	if ws, ok := n.WhitespaceAfterYield.Get(); ok && ws.empty() {
		if err := checkKeywordSpacing(n.Kind(), "yield", nil, nil, n.Value, ws); err != nil {
			return err
		}
	}
	return n.validateParens(n.Kind())
}

// From is the "from x" of "yield from x" or "raise x from y".
type From struct {
	// Defaults to " " in a raise statement and to "" in a yield expression.
	WhitespaceBeforeFrom Maybe[ParenthesizableWhitespace]
	WhitespaceAfterFrom  ParenthesizableWhitespace
	Item                 Expression
}

// Kind implements [Node].
func (*From) Kind() Kind { return KindFrom }

func (n *From) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceBeforeFrom = mapMaybe(m, "WhitespaceBeforeFrom", n.WhitespaceBeforeFrom)
	c.WhitespaceAfterFrom = mapOptional(m, "WhitespaceAfterFrom", n.WhitespaceAfterFrom)
	c.Item = mapRequired(m, "Item", n.Item)
	return &c
}

func (n *From) render(s *state) { n.renderDefault(s, " ") }

func (n *From) renderDefault(s *state, def string) {
	renderMaybe(s, n.WhitespaceBeforeFrom, def)
	start := s.offset()
	s.write("from")
	s.node(n.WhitespaceAfterFrom)
	s.node(n.Item)
	s.syntax(n, start)
}

func (n *From) validate() error {
	if isNil(n.Item) {
		return validationErrorf(n.Kind(), "missing item")
	}
	return checkKeywordSpacing(n.Kind(), "from", nil, nil, n.Item, n.WhitespaceAfterFrom)
}

// renderOpen renders an opening bracket, or text if it is nil.
func renderOpen[N Node](s *state, n N, text string) {
	if isNil(n) {
		s.write(text)
		return
	}
	s.node(n)
}

// renderClose renders a closing bracket, or text if it is nil.
func renderClose[N Node](s *state, n N, text string) {
	renderOpen(s, n, text)
}
