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

// SimpleStatementLine is a line of one or more small statements separated by
// semicolons, such as "x = 1; y = 2".
type SimpleStatementLine struct {
	LeadingLines       []*EmptyLine
	Body               []SmallStatement
	TrailingWhitespace *TrailingWhitespace
}

// Kind implements [Node].
func (*SimpleStatementLine) Kind() Kind { return KindSimpleStatementLine }

func (*SimpleStatementLine) statement() {}

func (n *SimpleStatementLine) mapChildren(m *mapper) Node {
	c := *n
	c.LeadingLines = mapSeq(m, n.LeadingLines)
	c.Body = mapSeq(m, n.Body)
	c.TrailingWhitespace = mapOptional(m, "TrailingWhitespace", n.TrailingWhitespace)
	return &c
}

func (n *SimpleStatementLine) render(s *state) {
	renderSeq(s, n.LeadingLines)
	s.writeIndent()
	start := s.offset()
	if len(n.Body) == 0 {
		s.write("pass")
	}
	renderSmallStatements(s, n.Body)
	s.syntax(n, start)
	renderTrailing(s, n.TrailingWhitespace)
}

func (*SimpleStatementLine) validate() error { return nil }

// SimpleStatementSuite is the body of a compound statement written on the
// same line as its header, such as the "pass" of "if x: pass".
type SimpleStatementSuite struct {
	LeadingWhitespace  *SimpleWhitespace
	Body               []SmallStatement
	TrailingWhitespace *TrailingWhitespace
}

// Kind implements [Node].
func (*SimpleStatementSuite) Kind() Kind { return KindSimpleStatementSuite }

func (*SimpleStatementSuite) suite() {}

func (n *SimpleStatementSuite) mapChildren(m *mapper) Node {
	c := *n
	c.LeadingWhitespace = mapOptional(m, "LeadingWhitespace", n.LeadingWhitespace)
	c.Body = mapSeq(m, n.Body)
	c.TrailingWhitespace = mapOptional(m, "TrailingWhitespace", n.TrailingWhitespace)
	return &c
}

func (n *SimpleStatementSuite) render(s *state) {
	s.node(n.LeadingWhitespace)
	start := s.offset()
	if len(n.Body) == 0 {
		s.write("pass")
	}
	renderSmallStatements(s, n.Body)
	s.syntax(n, start)
	renderTrailing(s, n.TrailingWhitespace)
}

func (*SimpleStatementSuite) validate() error { return nil }

func renderTrailing(s *state, n *TrailingWhitespace) {
	if n == nil {
		s.write(s.newline)
		return
	}
	s.node(n)
}

// IndentedBlock is the body of a compound statement written on its own,
// indented, lines.
type IndentedBlock struct {
	// The rest of the line after the colon that opens the block.
	Header *TrailingWhitespace
	// The indentation of this block relative to its parent. If empty, the
	// default indentation of the module is used.
	Indent string
	Body   []Statement
	// Lines after the last statement that are indented at least as deeply
	// as this block.
	Footer []*EmptyLine
}

// Kind implements [Node].
func (*IndentedBlock) Kind() Kind { return KindIndentedBlock }

func (*IndentedBlock) suite() {}

func (n *IndentedBlock) mapChildren(m *mapper) Node {
	c := *n
	c.Header = mapOptional(m, "Header", n.Header)
	c.Body = mapSeq(m, n.Body)
	c.Footer = mapSeq(m, n.Footer)
	return &c
}

func (n *IndentedBlock) render(s *state) {
	renderTrailing(s, n.Header)
	s.pushIndent(n.Indent)
	if len(n.Body) == 0 {
		s.writeIndent()
		s.write("pass")
		s.write(s.newline)
	}
	renderSeq(s, n.Body)
	if len(n.Body) > 0 {
		s.syntaxSpanning(n, n.Body[0], n.Body[len(n.Body)-1])
	}
	renderSeq(s, n.Footer)
	s.popIndent()
}

func (n *IndentedBlock) validate() error {
	for _, r := range n.Indent {
		if r != ' ' && r != '\t' && r != '\f' {
			return validationErrorf(n.Kind(), "indent must be made of whitespace, got %q", n.Indent)
		}
	}
	return nil
}

// renderHeader renders the leading lines and indentation of a compound
// statement, and returns the offset at which its keyword starts.
func renderHeader(s *state, leading []*EmptyLine) int {
	renderSeq(s, leading)
	s.writeIndent()
	return s.offset()
}

// renderBody renders the colon and suite of a compound statement.
func renderBody(s *state, wsBeforeColon *SimpleWhitespace, body Suite) {
	s.node(wsBeforeColon)
	s.write(":")
	if isNil(body) {
		s.write(" pass")
		s.write(s.newline)
		return
	}
	s.node(body)
}

func validateBody(k Kind, body Suite) error {
	if isNil(body) {
		return validationErrorf(k, "missing body")
	}
	return nil
}

// If is an if statement. An elif clause is represented as another If in
// Orelse.
type If struct {
	LeadingLines         []*EmptyLine
	WhitespaceBeforeTest *SimpleWhitespace
	Test                 Expression
	WhitespaceAfterTest  *SimpleWhitespace
	Body                 Suite
	// Either an *If for an elif clause, an *Else, or nil.
	Orelse OrElse
}

// Kind implements [Node].
func (*If) Kind() Kind { return KindIf }

func (*If) statement() {}
func (*If) orElse()    {}

func (n *If) mapChildren(m *mapper) Node {
	c := *n
	c.LeadingLines = mapSeq(m, n.LeadingLines)
	c.WhitespaceBeforeTest = mapOptional(m, "WhitespaceBeforeTest", n.WhitespaceBeforeTest)
	c.Test = mapRequired(m, "Test", n.Test)
	c.WhitespaceAfterTest = mapOptional(m, "WhitespaceAfterTest", n.WhitespaceAfterTest)
	c.Body = mapRequired(m, "Body", n.Body)
	c.Orelse = mapOptional(m, "Orelse", n.Orelse)
	return &c
}

func (n *If) render(s *state) { n.renderKeyword(s, "if") }

func (n *If) renderKeyword(s *state, keyword string) {
	start := renderHeader(s, n.LeadingLines)
	s.write(keyword)
	s.node(n.WhitespaceBeforeTest)
	s.node(n.Test)
	renderBody(s, n.WhitespaceAfterTest, n.Body)
	last := Node(n.Body)
	switch orelse := n.Orelse.(type) {
	case *If:
		if orelse != nil {
			s.nodeWith(orelse, func() { orelse.renderKeyword(s, "elif") })
			last = orelse
		}
	case *Else:
		if orelse != nil {
			s.node(orelse)
			last = orelse
		}
	}
	s.syntaxThrough(n, start, last)
}

func (n *If) validate() error {
	if isNil(n.Test) {
		return validationErrorf(n.Kind(), "missing test")
	}
	if err := checkKeywordSpacing(n.Kind(), "if", nil, nil, n.Test, n.WhitespaceBeforeTest); err != nil {
		return err
	}
	return validateBody(n.Kind(), n.Body)
}

// Else is the else clause of an [If], [For], [While] or [Try].
type Else struct {
	LeadingLines          []*EmptyLine
	WhitespaceBeforeColon *SimpleWhitespace
	Body                  Suite
}

// Kind implements [Node].
func (*Else) Kind() Kind { return KindElse }

func (*Else) orElse() {}

func (n *Else) mapChildren(m *mapper) Node {
	c := *n
	c.LeadingLines = mapSeq(m, n.LeadingLines)
	c.WhitespaceBeforeColon = mapOptional(m, "WhitespaceBeforeColon", n.WhitespaceBeforeColon)
	c.Body = mapRequired(m, "Body", n.Body)
	return &c
}

func (n *Else) render(s *state) {
	start := renderHeader(s, n.LeadingLines)
	s.write("else")
	renderBody(s, n.WhitespaceBeforeColon, n.Body)
	s.syntaxThrough(n, start, n.Body)
}

func (n *Else) validate() error { return validateBody(n.Kind(), n.Body) }

// While is a while loop.
type While struct {
	LeadingLines          []*EmptyLine
	WhitespaceAfterWhile  *SimpleWhitespace
	Test                  Expression
	WhitespaceBeforeColon *SimpleWhitespace
	Body                  Suite
	Orelse                *Else
}

// Kind implements [Node].
func (*While) Kind() Kind { return KindWhile }

func (*While) statement() {}

func (n *While) mapChildren(m *mapper) Node {
	c := *n
	c.LeadingLines = mapSeq(m, n.LeadingLines)
	c.WhitespaceAfterWhile = mapOptional(m, "WhitespaceAfterWhile", n.WhitespaceAfterWhile)
	c.Test = mapRequired(m, "Test", n.Test)
	c.WhitespaceBeforeColon = mapOptional(m, "WhitespaceBeforeColon", n.WhitespaceBeforeColon)
	c.Body = mapRequired(m, "Body", n.Body)
	c.Orelse = mapOptional(m, "Orelse", n.Orelse)
	return &c
}

func (n *While) render(s *state) {
	start := renderHeader(s, n.LeadingLines)
	s.write("while")
	s.node(n.WhitespaceAfterWhile)
	s.node(n.Test)
	renderBody(s, n.WhitespaceBeforeColon, n.Body)
	s.node(n.Orelse)
	s.syntaxThrough(n, start, lastOf(n.Body, n.Orelse))
}

func (n *While) validate() error {
	if isNil(n.Test) {
		return validationErrorf(n.Kind(), "missing test")
	}
	if err := checkKeywordSpacing(n.Kind(), "while", nil, nil, n.Test, n.WhitespaceAfterWhile); err != nil {
		return err
	}
	return validateBody(n.Kind(), n.Body)
}

// For is a for loop.
type For struct {
	LeadingLines          []*EmptyLine
	Asynchronous          *Asynchronous
	WhitespaceAfterFor    *SimpleWhitespace
	Target                Expression
	WhitespaceBeforeIn    *SimpleWhitespace
	WhitespaceAfterIn     *SimpleWhitespace
	Iter                  Expression
	WhitespaceBeforeColon *SimpleWhitespace
	Body                  Suite
	Orelse                *Else
}

// Kind implements [Node].
func (*For) Kind() Kind { return KindFor }

func (*For) statement() {}

func (n *For) mapChildren(m *mapper) Node {
	c := *n
	c.LeadingLines = mapSeq(m, n.LeadingLines)
	c.Asynchronous = mapOptional(m, "Asynchronous", n.Asynchronous)
	c.WhitespaceAfterFor = mapOptional(m, "WhitespaceAfterFor", n.WhitespaceAfterFor)
	c.Target = mapRequired(m, "Target", n.Target)
	c.WhitespaceBeforeIn = mapOptional(m, "WhitespaceBeforeIn", n.WhitespaceBeforeIn)
	c.WhitespaceAfterIn = mapOptional(m, "WhitespaceAfterIn", n.WhitespaceAfterIn)
	c.Iter = mapRequired(m, "Iter", n.Iter)
	c.WhitespaceBeforeColon = mapOptional(m, "WhitespaceBeforeColon", n.WhitespaceBeforeColon)
	c.Body = mapRequired(m, "Body", n.Body)
	c.Orelse = mapOptional(m, "Orelse", n.Orelse)
	return &c
}

func (n *For) render(s *state) {
	start := renderHeader(s, n.LeadingLines)
	s.node(n.Asynchronous)
	s.write("for")
	s.node(n.WhitespaceAfterFor)
	s.node(n.Target)
	s.node(n.WhitespaceBeforeIn)
	s.write("in")
	s.node(n.WhitespaceAfterIn)
	s.node(n.Iter)
	renderBody(s, n.WhitespaceBeforeColon, n.Body)
	s.node(n.Orelse)
	s.syntaxThrough(n, start, lastOf(n.Body, n.Orelse))
}

func (n *For) validate() error {
	if isNil(n.Target) || isNil(n.Iter) {
		return validationErrorf(n.Kind(), "missing target or iterable")
	}
	if err := checkKeywordSpacing(n.Kind(), "for", nil, nil, n.Target, n.WhitespaceAfterFor); err != nil {
		return err
	}
	if err := checkKeywordSpacing(n.Kind(), "in", n.Target, n.WhitespaceBeforeIn, n.Iter, n.WhitespaceAfterIn); err != nil {
		return err
	}
	return validateBody(n.Kind(), n.Body)
}

// With is a with statement.
type With struct {
	LeadingLines          []*EmptyLine
	Asynchronous          *Asynchronous
	WhitespaceAfterWith   *SimpleWhitespace
	Items                 []*WithItem
	WhitespaceBeforeColon *SimpleWhitespace
	Body                  Suite
}

// Kind implements [Node].
func (*With) Kind() Kind { return KindWith }

func (*With) statement() {}

func (n *With) mapChildren(m *mapper) Node {
	c := *n
	c.LeadingLines = mapSeq(m, n.LeadingLines)
	c.Asynchronous = mapOptional(m, "Asynchronous", n.Asynchronous)
	c.WhitespaceAfterWith = mapOptional(m, "WhitespaceAfterWith", n.WhitespaceAfterWith)
	c.Items = mapSeq(m, n.Items)
	c.WhitespaceBeforeColon = mapOptional(m, "WhitespaceBeforeColon", n.WhitespaceBeforeColon)
	c.Body = mapRequired(m, "Body", n.Body)
	return &c
}

func (n *With) render(s *state) {
	start := renderHeader(s, n.LeadingLines)
	s.node(n.Asynchronous)
	s.write("with")
	s.node(n.WhitespaceAfterWith)
	renderCommaSeq(s, n.Items)
	renderBody(s, n.WhitespaceBeforeColon, n.Body)
	s.syntaxThrough(n, start, n.Body)
}

func (n *With) validate() error {
	if len(n.Items) == 0 {
		return validationErrorf(n.Kind(), "must have at least one item")
	}
	if _, ok := n.Items[len(n.Items)-1].Comma.Get(); ok {
		return validationErrorf(n.Kind(), "cannot have a trailing comma")
	}
	if err := checkKeywordSpacing(n.Kind(), "with", nil, nil, n.Items[0].Item, n.WhitespaceAfterWith); err != nil {
		return err
	}
	return validateBody(n.Kind(), n.Body)
}

// WithItem is a single context manager of a [With], such as "open(f) as x".
type WithItem struct {
	Item   Expression
	AsName *AsName
	// Defaults to ", " unless this is the last item.
	Comma Maybe[*Comma]
}

// Kind implements [Node].
func (*WithItem) Kind() Kind { return KindWithItem }

func (n *WithItem) mapChildren(m *mapper) Node {
	c := *n
	c.Item = mapRequired(m, "Item", n.Item)
	c.AsName = mapOptional(m, "AsName", n.AsName)
	c.Comma = mapMaybe(m, "Comma", n.Comma)
	return &c
}

func (n *WithItem) render(s *state) { n.renderComma(s, "") }

func (n *WithItem) renderComma(s *state, def string) {
	start := s.offset()
	s.node(n.Item)
	s.node(n.AsName)
	s.syntax(n, start)
	renderMaybe(s, n.Comma, def)
}

func (n *WithItem) validate() error {
	if isNil(n.Item) {
		return validationErrorf(n.Kind(), "missing item")
	}
	return nil
}

// Try is a try statement.
type Try struct {
	LeadingLines          []*EmptyLine
	WhitespaceBeforeColon *SimpleWhitespace
	Body                  Suite
	Handlers              []*ExceptHandler
	Orelse                *Else
	Finalbody             *Finally
}

// Kind implements [Node].
func (*Try) Kind() Kind { return KindTry }

func (*Try) statement() {}

func (n *Try) mapChildren(m *mapper) Node {
	c := *n
	c.LeadingLines = mapSeq(m, n.LeadingLines)
	c.WhitespaceBeforeColon = mapOptional(m, "WhitespaceBeforeColon", n.WhitespaceBeforeColon)
	c.Body = mapRequired(m, "Body", n.Body)
	c.Handlers = mapSeq(m, n.Handlers)
	c.Orelse = mapOptional(m, "Orelse", n.Orelse)
	c.Finalbody = mapOptional(m, "Finalbody", n.Finalbody)
	return &c
}

func (n *Try) render(s *state) {
	start := renderHeader(s, n.LeadingLines)
	s.write("try")
	renderBody(s, n.WhitespaceBeforeColon, n.Body)
	renderSeq(s, n.Handlers)
	s.node(n.Orelse)
	s.node(n.Finalbody)

	var handler *ExceptHandler
	if len(n.Handlers) > 0 {
		handler = n.Handlers[len(n.Handlers)-1]
	}
	s.syntaxThrough(n, start, lastOf(n.Body, handler, n.Orelse, n.Finalbody))
}

func (n *Try) validate() error {
	if len(n.Handlers) == 0 && n.Finalbody == nil {
		return validationErrorf(n.Kind(), "must have at least one except clause or a finally clause")
	}
	if len(n.Handlers) == 0 && n.Orelse != nil {
		return validationErrorf(n.Kind(), "cannot have an else clause without an except clause")
	}
	for i, h := range n.Handlers[:max(len(n.Handlers)-1, 0)] {
		if isNil(h.Type) {
			return validationErrorf(n.Kind(), "bare except clause %d must be the last one", i)
		}
	}
	return validateBody(n.Kind(), n.Body)
}

// ExceptHandler is an except clause of a [Try].
type ExceptHandler struct {
	LeadingLines          []*EmptyLine
	WhitespaceAfterExcept *SimpleWhitespace
	Type                  Expression
	Name                  *AsName
	WhitespaceBeforeColon *SimpleWhitespace
	Body                  Suite
}

// Kind implements [Node].
func (*ExceptHandler) Kind() Kind { return KindExceptHandler }

func (n *ExceptHandler) mapChildren(m *mapper) Node {
	c := *n
	c.LeadingLines = mapSeq(m, n.LeadingLines)
	c.WhitespaceAfterExcept = mapOptional(m, "WhitespaceAfterExcept", n.WhitespaceAfterExcept)
	c.Type = mapOptional(m, "Type", n.Type)
	c.Name = mapOptional(m, "Name", n.Name)
	c.WhitespaceBeforeColon = mapOptional(m, "WhitespaceBeforeColon", n.WhitespaceBeforeColon)
	c.Body = mapRequired(m, "Body", n.Body)
	return &c
}

func (n *ExceptHandler) render(s *state) {
	start := renderHeader(s, n.LeadingLines)
	s.write("except")
	s.node(n.WhitespaceAfterExcept)
	s.node(n.Type)
	s.node(n.Name)
	renderBody(s, n.WhitespaceBeforeColon, n.Body)
	s.syntaxThrough(n, start, n.Body)
}

func (n *ExceptHandler) validate() error {
	if n.Name != nil {
		if isNil(n.Type) {
			return validationErrorf(n.Kind(), "cannot name a bare except clause")
		}
		if _, ok := n.Name.Name.(*Name); !ok {
			return validationErrorf(n.Kind(), "exception must be bound to a name")
		}
	}
	if err := checkKeywordSpacing(n.Kind(), "except", nil, nil, n.Type, n.WhitespaceAfterExcept); err != nil {
		return err
	}
	return validateBody(n.Kind(), n.Body)
}

// Finally is the finally clause of a [Try].
type Finally struct {
	LeadingLines          []*EmptyLine
	WhitespaceBeforeColon *SimpleWhitespace
	Body                  Suite
}

// Kind implements [Node].
func (*Finally) Kind() Kind { return KindFinally }

func (n *Finally) mapChildren(m *mapper) Node {
	c := *n
	c.LeadingLines = mapSeq(m, n.LeadingLines)
	c.WhitespaceBeforeColon = mapOptional(m, "WhitespaceBeforeColon", n.WhitespaceBeforeColon)
	c.Body = mapRequired(m, "Body", n.Body)
	return &c
}

func (n *Finally) render(s *state) {
	start := renderHeader(s, n.LeadingLines)
	s.write("finally")
	renderBody(s, n.WhitespaceBeforeColon, n.Body)
	s.syntaxThrough(n, start, n.Body)
}

func (n *Finally) validate() error { return validateBody(n.Kind(), n.Body) }

// Decorator is a single decorator line of a [FunctionDef] or [ClassDef].
type Decorator struct {
	LeadingLines       []*EmptyLine
	WhitespaceAfterAt  *SimpleWhitespace
	Decorator          Expression
	TrailingWhitespace *TrailingWhitespace
}

// Kind implements [Node].
func (*Decorator) Kind() Kind { return KindDecorator }

func (n *Decorator) mapChildren(m *mapper) Node {
	c := *n
	c.LeadingLines = mapSeq(m, n.LeadingLines)
	c.WhitespaceAfterAt = mapOptional(m, "WhitespaceAfterAt", n.WhitespaceAfterAt)
	c.Decorator = mapRequired(m, "Decorator", n.Decorator)
	c.TrailingWhitespace = mapOptional(m, "TrailingWhitespace", n.TrailingWhitespace)
	return &c
}

func (n *Decorator) render(s *state) {
	start := renderHeader(s, n.LeadingLines)
	s.write("@")
	s.node(n.WhitespaceAfterAt)
	s.node(n.Decorator)
	s.syntax(n, start)
	renderTrailing(s, n.TrailingWhitespace)
}

func (n *Decorator) validate() error {
	if isNil(n.Decorator) {
		return validationErrorf(n.Kind(), "missing decorator expression")
	}
	return nil
}

// FunctionDef is a function definition, including its decorators.
type FunctionDef struct {
	LeadingLines         []*EmptyLine
	Decorators           []*Decorator
	LinesAfterDecorators []*EmptyLine
	Asynchronous         *Asynchronous
	WhitespaceAfterDef   *SimpleWhitespace
	Name                 *Name
	WhitespaceAfterName  *SimpleWhitespace
	// The whitespace after the opening parenthesis.
	WhitespaceBeforeParams ParenthesizableWhitespace
	Params                 *Parameters
	Returns                *Annotation
	WhitespaceBeforeColon  *SimpleWhitespace
	Body                   Suite
}

// Kind implements [Node].
func (*FunctionDef) Kind() Kind { return KindFunctionDef }

func (*FunctionDef) statement() {}

func (n *FunctionDef) mapChildren(m *mapper) Node {
	c := *n
	c.LeadingLines = mapSeq(m, n.LeadingLines)
	c.Decorators = mapSeq(m, n.Decorators)
	c.LinesAfterDecorators = mapSeq(m, n.LinesAfterDecorators)
	c.Asynchronous = mapOptional(m, "Asynchronous", n.Asynchronous)
	c.WhitespaceAfterDef = mapOptional(m, "WhitespaceAfterDef", n.WhitespaceAfterDef)
	c.Name = mapRequired(m, "Name", n.Name)
	c.WhitespaceAfterName = mapOptional(m, "WhitespaceAfterName", n.WhitespaceAfterName)
	c.WhitespaceBeforeParams = mapOptional(m, "WhitespaceBeforeParams", n.WhitespaceBeforeParams)
	c.Params = mapOptional(m, "Params", n.Params)
	c.Returns = mapOptional(m, "Returns", n.Returns)
	c.WhitespaceBeforeColon = mapOptional(m, "WhitespaceBeforeColon", n.WhitespaceBeforeColon)
	c.Body = mapRequired(m, "Body", n.Body)
	return &c
}

func (n *FunctionDef) render(s *state) {
	renderSeq(s, n.LeadingLines)
	renderSeq(s, n.Decorators)
	start := renderHeader(s, n.LinesAfterDecorators)
	s.node(n.Asynchronous)
	s.write("def")
	s.node(n.WhitespaceAfterDef)
	s.node(n.Name)
	s.node(n.WhitespaceAfterName)
	s.write("(")
	s.node(n.WhitespaceBeforeParams)
	s.node(n.Params)
	s.write(")")
	renderAnnotation(s, n.Returns, "->")
	renderBody(s, n.WhitespaceBeforeColon, n.Body)
	s.syntaxThrough(n, start, n.Body)
}

func (n *FunctionDef) validate() error {
	if n.Name == nil {
		return validationErrorf(n.Kind(), "missing name")
	}
	if isEmptyWhitespace(n.WhitespaceAfterDef) {
		return validationErrorf(n.Kind(), "must have at least one space after \"def\"")
	}
	return validateBody(n.Kind(), n.Body)
}

// ClassDef is a class definition, including its decorators.
type ClassDef struct {
	LeadingLines         []*EmptyLine
	Decorators           []*Decorator
	LinesAfterDecorators []*EmptyLine
	WhitespaceAfterClass *SimpleWhitespace
	Name                 *Name
	WhitespaceAfterName  *SimpleWhitespace
	// Defaults to "(" if there are bases or keywords, and to nothing
	// otherwise.
	Lpar     Maybe[*LeftParen]
	Bases    []*Arg
	Keywords []*Arg
	// Defaults to ")" if there are bases or keywords, and to nothing
	// otherwise.
	Rpar                  Maybe[*RightParen]
	WhitespaceBeforeColon *SimpleWhitespace
	Body                  Suite
}

// Kind implements [Node].
func (*ClassDef) Kind() Kind { return KindClassDef }

func (*ClassDef) statement() {}

func (n *ClassDef) mapChildren(m *mapper) Node {
	c := *n
	c.LeadingLines = mapSeq(m, n.LeadingLines)
	c.Decorators = mapSeq(m, n.Decorators)
	c.LinesAfterDecorators = mapSeq(m, n.LinesAfterDecorators)
	c.WhitespaceAfterClass = mapOptional(m, "WhitespaceAfterClass", n.WhitespaceAfterClass)
	c.Name = mapRequired(m, "Name", n.Name)
	c.WhitespaceAfterName = mapOptional(m, "WhitespaceAfterName", n.WhitespaceAfterName)
	c.Lpar = mapMaybe(m, "Lpar", n.Lpar)
	c.Bases = mapSeq(m, n.Bases)
	c.Keywords = mapSeq(m, n.Keywords)
	c.Rpar = mapMaybe(m, "Rpar", n.Rpar)
	c.WhitespaceBeforeColon = mapOptional(m, "WhitespaceBeforeColon", n.WhitespaceBeforeColon)
	c.Body = mapRequired(m, "Body", n.Body)
	return &c
}

func (n *ClassDef) render(s *state) {
	renderSeq(s, n.LeadingLines)
	renderSeq(s, n.Decorators)
	start := renderHeader(s, n.LinesAfterDecorators)
	s.write("class")
	s.node(n.WhitespaceAfterClass)
	s.node(n.Name)
	s.node(n.WhitespaceAfterName)

	args := make([]*Arg, 0, len(n.Bases)+len(n.Keywords))
	args = append(args, n.Bases...)
	args = append(args, n.Keywords...)
	hasArgs := len(args) > 0
	renderMaybe(s, n.Lpar, parenIf(hasArgs, "("))
	renderCommaSeq(s, args)
	renderMaybe(s, n.Rpar, parenIf(hasArgs, ")"))

	renderBody(s, n.WhitespaceBeforeColon, n.Body)
	s.syntaxThrough(n, start, n.Body)
}

func parenIf(cond bool, paren string) string {
	if cond {
		return paren
	}
	return ""
}

func (n *ClassDef) validate() error {
	if n.Name == nil {
		return validationErrorf(n.Kind(), "missing name")
	}
	if isEmptyWhitespace(n.WhitespaceAfterClass) {
		return validationErrorf(n.Kind(), "must have at least one space after \"class\"")
	}
	if n.Lpar.IsDefault() != n.Rpar.IsDefault() {
		return validationErrorf(n.Kind(), "cannot have unbalanced parens")
	}
	for _, base := range n.Bases {
		if base.Keyword != nil {
			return validationErrorf(n.Kind(), "bases cannot be keyword arguments")
		}
	}
	for _, kw := range n.Keywords {
		if kw.Keyword == nil && kw.Star != "**" {
			return validationErrorf(n.Kind(), "keywords must be keyword arguments")
		}
	}
	return validateBody(n.Kind(), n.Body)
}

// lastOf returns the last non-nil node among ns.
func lastOf(ns ...Node) Node {
	for i := len(ns) - 1; i >= 0; i-- {
		if !isNil(ns[i]) {
			return ns[i]
		}
	}
	return nil
}
