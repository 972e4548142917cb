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

import "iter"

// Comparison is a chain of one or more comparisons, such as "a < b <= c".
type Comparison struct {
	Parens
	Left        Expression
	Comparisons []*ComparisonTarget
}

// Kind implements [Node].
func (*Comparison) Kind() Kind { return KindComparison }

func (n *Comparison) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Left = mapRequired(m, "Left", n.Left)
	c.Comparisons = mapSeq(m, n.Comparisons)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *Comparison) render(s *state) {
	n.parenthesize(s, func() {
		s.node(n.Left)
		renderSeq(s, n.Comparisons)
	})
}

func (n *Comparison) validate() error {
	if isNil(n.Left) {
		return validationErrorf(n.Kind(), "missing left operand")
	}
	if len(n.Comparisons) == 0 {
		return validationErrorf(n.Kind(), "must have at least one comparison target")
	}
	prev := Node(n.Left)
	for _, target := range n.Comparisons {
		if target == nil || target.Operator == nil {
			continue
		}
		op := target.Operator
		switch op.Op {
		case KindIn, KindNotIn, KindIs, KindIsNot:
			err := checkKeywordSpacing(n.Kind(), op.Op.OperatorText(),
				prev, op.WhitespaceBefore, target.Comparator, op.WhitespaceAfter)
			if err != nil {
				return err
			}
		}
		prev = target.Comparator
	}
	return n.validateParens(n.Kind())
}

// ComparisonTarget is one operator and right-hand operand of a [Comparison].
type ComparisonTarget struct {
	Operator   *ComparisonOp
	Comparator Expression
}

// Kind implements [Node].
func (*ComparisonTarget) Kind() Kind { return KindComparisonTarget }

func (n *ComparisonTarget) mapChildren(m *mapper) Node {
	c := *n
	c.Operator = mapRequired(m, "Operator", n.Operator)
	c.Comparator = mapRequired(m, "Comparator", n.Comparator)
	return &c
}

func (n *ComparisonTarget) render(s *state) {
	s.node(n.Operator)
	s.node(n.Comparator)
}

func (n *ComparisonTarget) validate() error {
	if n.Operator == nil || isNil(n.Comparator) {
		return validationErrorf(n.Kind(), "missing operator or comparator")
	}
	return nil
}

// UnaryOperation is a prefix operator applied to an expression, such as
// "-x" or "not x".
type UnaryOperation struct {
	Parens
	Operator   *UnaryOp
	Expression Expression
}

// Kind implements [Node].
func (*UnaryOperation) Kind() Kind { return KindUnaryOperation }

func (n *UnaryOperation) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Operator = mapRequired(m, "Operator", n.Operator)
	c.Expression = mapRequired(m, "Expression", n.Expression)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *UnaryOperation) render(s *state) {
	n.parenthesize(s, func() {
		s.node(n.Operator)
		s.node(n.Expression)
	})
}

func (n *UnaryOperation) validate() error {
	if n.Operator == nil || isNil(n.Expression) {
		return validationErrorf(n.Kind(), "missing operator or operand")
	}
	if n.Operator.Op == KindNot {
		err := checkKeywordSpacing(n.Kind(), "not", nil, nil, n.Expression, n.Operator.WhitespaceAfter)
		if err != nil {
			return err
		}
	}
	return n.validateParens(n.Kind())
}

// BinaryOperation is an arithmetic or bitwise operation, such as "a + b".
type BinaryOperation struct {
	Parens
	Left     Expression
	Operator *BinaryOp
	Right    Expression
}

// Kind implements [Node].
func (*BinaryOperation) Kind() Kind { return KindBinaryOperation }

func (n *BinaryOperation) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Left = mapRequired(m, "Left", n.Left)
	c.Operator = mapRequired(m, "Operator", n.Operator)
	c.Right = mapRequired(m, "Right", n.Right)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *BinaryOperation) render(s *state) {
	n.parenthesize(s, func() {
		s.node(n.Left)
		s.node(n.Operator)
		s.node(n.Right)
	})
}

func (n *BinaryOperation) validate() error {
	if isNil(n.Left) || n.Operator == nil || isNil(n.Right) {
		return validationErrorf(n.Kind(), "missing operand or operator")
	}
	return n.validateParens(n.Kind())
}

// BooleanOperation is "a and b" or "a or b".
type BooleanOperation struct {
	Parens
	Left     Expression
	Operator *BooleanOp
	Right    Expression
}

// Kind implements [Node].
func (*BooleanOperation) Kind() Kind { return KindBooleanOperation }

func (n *BooleanOperation) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Left = mapRequired(m, "Left", n.Left)
	c.Operator = mapRequired(m, "Operator", n.Operator)
	c.Right = mapRequired(m, "Right", n.Right)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *BooleanOperation) render(s *state) {
	n.parenthesize(s, func() {
		s.node(n.Left)
		s.node(n.Operator)
		s.node(n.Right)
	})
}

func (n *BooleanOperation) validate() error {
	if isNil(n.Left) || n.Operator == nil || isNil(n.Right) {
		return validationErrorf(n.Kind(), "missing operand or operator")
	}
	err := checkKeywordSpacing(n.Kind(), n.Operator.Op.OperatorText(),
		n.Left, n.Operator.WhitespaceBefore, n.Right, n.Operator.WhitespaceAfter)
	if err != nil {
		return err
	}
	return n.validateParens(n.Kind())
}

// Call is a function call, such as "f(x, *args, key=value)".
type Call struct {
	Parens
	Func                 Expression
	WhitespaceAfterFunc  ParenthesizableWhitespace
	WhitespaceBeforeArgs ParenthesizableWhitespace
	Args                 []*Arg
}

// Kind implements [Node].
func (*Call) Kind() Kind { return KindCall }

func (n *Call) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Func = mapRequired(m, "Func", n.Func)
	c.WhitespaceAfterFunc = mapOptional(m, "WhitespaceAfterFunc", n.WhitespaceAfterFunc)
	c.WhitespaceBeforeArgs = mapOptional(m, "WhitespaceBeforeArgs", n.WhitespaceBeforeArgs)
	c.Args = mapSeq(m, n.Args)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *Call) render(s *state) {
	n.parenthesize(s, func() {
		s.node(n.Func)
		s.node(n.WhitespaceAfterFunc)
		s.write("(")
		s.node(n.WhitespaceBeforeArgs)
		renderCommaSeq(s, n.Args)
		s.write(")")
	})
}

func (n *Call) validate() error {
	if isNil(n.Func) {
		return validationErrorf(n.Kind(), "missing function")
	}
	if err := validateArgOrder(n.Kind(), n.Args); err != nil {
		return err
	}
	return n.validateParens(n.Kind())
}

// validateArgOrder checks that positional arguments do not follow keyword
// arguments, and that nothing but keyword arguments follows a "**" argument.
func validateArgOrder(k Kind, args []*Arg) error {
	var sawKeyword, sawKwargs bool
	for _, arg := range args {
		switch {
		case arg.Keyword != nil:
			sawKeyword = true
		case arg.Star == "**":
			sawKwargs = true
		case arg.Star == "*":
			if sawKwargs {
				return validationErrorf(k, "cannot have iterable unpacking after keyword unpacking")
			}
		default:
			if sawKwargs {
				return validationErrorf(k, "cannot have positional argument after keyword unpacking")
			}
			if sawKeyword {
				return validationErrorf(k, "cannot have positional argument after keyword argument")
			}
		}
	}
	return nil
}

// Arg is a single argument of a [Call], or a base or keyword of a
// [ClassDef].
type Arg struct {
	// One of "", "*" or "**".
	Star                string
	WhitespaceAfterStar ParenthesizableWhitespace
	Keyword             *Name
	// Only rendered if Keyword is set. Defaults to "=".
	Equal Maybe[*AssignEqual]
	Value Expression
	// Defaults to ", " unless this is the last argument.
	Comma              Maybe[*Comma]
	WhitespaceAfterArg ParenthesizableWhitespace
}

// Kind implements [Node].
func (*Arg) Kind() Kind { return KindArg }

func (n *Arg) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceAfterStar = mapOptional(m, "WhitespaceAfterStar", n.WhitespaceAfterStar)
	c.Keyword = mapOptional(m, "Keyword", n.Keyword)
	c.Equal = mapMaybe(m, "Equal", n.Equal)
	c.Value = mapRequired(m, "Value", n.Value)
	c.Comma = mapMaybe(m, "Comma", n.Comma)
	c.WhitespaceAfterArg = mapOptional(m, "WhitespaceAfterArg", n.WhitespaceAfterArg)
	return &c
}

func (n *Arg) render(s *state) { n.renderComma(s, "") }

func (n *Arg) renderComma(s *state, def string) {
	start := s.offset()
	s.write(n.Star)
	s.node(n.WhitespaceAfterStar)
	if n.Keyword != nil {
		s.node(n.Keyword)
		renderMaybe(s, n.Equal, "=")
	}
	s.node(n.Value)
	s.syntax(n, start)
	renderMaybe(s, n.Comma, def)
	s.node(n.WhitespaceAfterArg)
}

func (n *Arg) validate() error {
	switch n.Star {
	case "", "*", "**":
	default:
		return validationErrorf(n.Kind(), "invalid star %q", n.Star)
	}
	if isNil(n.Value) {
		return validationErrorf(n.Kind(), "missing value")
	}
	if n.Keyword != nil && n.Star != "" {
		return validationErrorf(n.Kind(), "keyword argument cannot have a star")
	}
	if n.Keyword == nil && !n.Equal.IsDefault() {
		return validationErrorf(n.Kind(), "cannot have an equal sign without a keyword")
	}
	return nil
}

// Await is an await expression.
type Await struct {
	Parens
	WhitespaceAfterAwait ParenthesizableWhitespace
	Expression           Expression
}

// Kind implements [Node].
func (*Await) Kind() Kind { return KindAwait }

func (n *Await) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.WhitespaceAfterAwait = mapOptional(m, "WhitespaceAfterAwait", n.WhitespaceAfterAwait)
	c.Expression = mapRequired(m, "Expression", n.Expression)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *Await) render(s *state) {
	n.parenthesize(s, func() {
		s.write("await")
		s.node(n.WhitespaceAfterAwait)
		s.node(n.Expression)
	})
}

func (n *Await) validate() error {
	if isNil(n.Expression) {
		return validationErrorf(n.Kind(), "missing expression")
	}
	err := checkKeywordSpacing(n.Kind(), "await", nil, nil, n.Expression, n.WhitespaceAfterAwait)
	if err != nil {
		return err
	}
	return n.validateParens(n.Kind())
}

// IfExp is a conditional expression, "body if test else orelse".
type IfExp struct {
	Parens
	Body                 Expression
	WhitespaceBeforeIf   ParenthesizableWhitespace
	WhitespaceAfterIf    ParenthesizableWhitespace
	Test                 Expression
	WhitespaceBeforeElse ParenthesizableWhitespace
	WhitespaceAfterElse  ParenthesizableWhitespace
	Orelse               Expression
}

// Kind implements [Node].
func (*IfExp) Kind() Kind { return KindIfExp }

func (n *IfExp) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.Body = mapRequired(m, "Body", n.Body)
	c.WhitespaceBeforeIf = mapOptional(m, "WhitespaceBeforeIf", n.WhitespaceBeforeIf)
	c.WhitespaceAfterIf = mapOptional(m, "WhitespaceAfterIf", n.WhitespaceAfterIf)
	c.Test = mapRequired(m, "Test", n.Test)
	c.WhitespaceBeforeElse = mapOptional(m, "WhitespaceBeforeElse", n.WhitespaceBeforeElse)
	c.WhitespaceAfterElse = mapOptional(m, "WhitespaceAfterElse", n.WhitespaceAfterElse)
	c.Orelse = mapRequired(m, "Orelse", n.Orelse)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *IfExp) render(s *state) {
	n.parenthesize(s, func() {
		s.node(n.Body)
		s.node(n.WhitespaceBeforeIf)
		s.write("if")
		s.node(n.WhitespaceAfterIf)
		s.node(n.Test)
		s.node(n.WhitespaceBeforeElse)
		s.write("else")
		s.node(n.WhitespaceAfterElse)
		s.node(n.Orelse)
	})
}

func (n *IfExp) validate() error {
	if isNil(n.Body) || isNil(n.Test) || isNil(n.Orelse) {
		return validationErrorf(n.Kind(), "missing body, test or orelse")
	}
	err := checkKeywordSpacing(n.Kind(), "if", n.Body, n.WhitespaceBeforeIf, n.Test, n.WhitespaceAfterIf)
	if err != nil {
		return err
	}
	err = checkKeywordSpacing(n.Kind(), "else", n.Test, n.WhitespaceBeforeElse, n.Orelse, n.WhitespaceAfterElse)
	if err != nil {
		return err
	}
	return n.validateParens(n.Kind())
}

// Lambda is an anonymous function expression.
type Lambda struct {
	Parens
	// Defaults to " " if there are any parameters.
	WhitespaceAfterLambda Maybe[ParenthesizableWhitespace]
	Params                *Parameters
	// Defaults to ":".
	Colon *Colon
	Body  Expression
}

// Kind implements [Node].
func (*Lambda) Kind() Kind { return KindLambda }

func (n *Lambda) mapChildren(m *mapper) Node {
	c := *n
	c.Lpar = n.mapLpar(m)
	c.WhitespaceAfterLambda = mapMaybe(m, "WhitespaceAfterLambda", n.WhitespaceAfterLambda)
	c.Params = mapOptional(m, "Params", n.Params)
	c.Colon = mapOptional(m, "Colon", n.Colon)
	c.Body = mapRequired(m, "Body", n.Body)
	c.Rpar = n.mapRpar(m)
	return &c
}

func (n *Lambda) render(s *state) {
	n.parenthesize(s, func() {
		s.write("lambda")
		def := ""
		if !n.Params.IsEmpty() {
			def = " "
		}
		renderMaybe(s, n.WhitespaceAfterLambda, def)
		s.node(n.Params)
		if n.Colon == nil {
			s.write(":")
		}
		s.node(n.Colon)
		s.node(n.Body)
	})
}

func (n *Lambda) validate() error {
	if isNil(n.Body) {
		return validationErrorf(n.Kind(), "missing body")
	}
	if ws, ok := n.WhitespaceAfterLambda.Get(); ok && ws.empty() && !n.Params.IsEmpty() {
		return validationErrorf(n.Kind(), "must have at least one space after \"lambda\"")
	}
	for p := range n.Params.All() {
		if param, ok := p.(*Param); ok && param.Annotation != nil {
			return validationErrorf(n.Kind(), "lambda parameters cannot have annotations")
		}
	}
	return n.validateParens(n.Kind())
}

// Parameters is the parameter list of a [FunctionDef] or a [Lambda].
type Parameters struct {
	Params []*Param
	// Either a *Param with Star "*", or a bare *ParamStar.
	StarArg      StarArg
	KwonlyParams []*Param
	StarKwarg    *Param
}

// Kind implements [Node].
func (*Parameters) Kind() Kind { return KindParameters }

func (n *Parameters) mapChildren(m *mapper) Node {
	c := *n
	c.Params = mapSeq(m, n.Params)
	c.StarArg = mapOptional(m, "StarArg", n.StarArg)
	c.KwonlyParams = mapSeq(m, n.KwonlyParams)
	c.StarKwarg = mapOptional(m, "StarKwarg", n.StarKwarg)
	return &c
}

// IsEmpty returns whether there are no parameters. A nil *Parameters is
// empty.
func (n *Parameters) IsEmpty() bool {
	return n == nil || (len(n.Params) == 0 && isNil(n.StarArg) &&
		len(n.KwonlyParams) == 0 && n.StarKwarg == nil)
}

// All yields every parameter, including a bare *ParamStar, in source order.
func (n *Parameters) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if n == nil {
			return
		}
		for _, p := range n.Params {
			if !yield(p) {
				return
			}
		}
		if !isNil(n.StarArg) && !yield(n.StarArg) {
			return
		}
		for _, p := range n.KwonlyParams {
			if !yield(p) {
				return
			}
		}
		if n.StarKwarg != nil {
			yield(n.StarKwarg)
		}
	}
}

func (n *Parameters) render(s *state) {
	type commaNode interface {
		Node
		renderComma(*state, string)
	}
	var all []commaNode
	for p := range n.All() {
		all = append(all, p.(commaNode))
	}
	renderCommaSeq(s, all)
}

func (n *Parameters) validate() error {
	var sawDefault bool
	for _, p := range n.Params {
		if p.Star != "" {
			return validationErrorf(n.Kind(), "positional parameter %q cannot have a star", paramName(p))
		}
		if !isNil(p.Default) {
			sawDefault = true
		} else if sawDefault {
			return validationErrorf(n.Kind(), "non-default parameter %q follows default parameter", paramName(p))
		}
	}
	switch star := n.StarArg.(type) {
	case *Param:
		if star.Star != "*" {
			return validationErrorf(n.Kind(), "star parameter must have a single star")
		}
		if !isNil(star.Default) {
			return validationErrorf(n.Kind(), "star parameter cannot have a default")
		}
	case *ParamStar:
		if len(n.KwonlyParams) == 0 {
			return validationErrorf(n.Kind(), "named arguments must follow bare *")
		}
	}
	for _, p := range n.KwonlyParams {
		if p.Star != "" {
			return validationErrorf(n.Kind(), "keyword-only parameter %q cannot have a star", paramName(p))
		}
	}
	if len(n.KwonlyParams) > 0 && isNil(n.StarArg) {
		return validationErrorf(n.Kind(), "keyword-only parameters must follow a star parameter")
	}
	if n.StarKwarg != nil {
		if n.StarKwarg.Star != "**" {
			return validationErrorf(n.Kind(), "keyword star parameter must have a double star")
		}
		if !isNil(n.StarKwarg.Default) {
			return validationErrorf(n.Kind(), "keyword star parameter cannot have a default")
		}
	}
	return nil
}

func paramName(p *Param) string {
	if p.Name == nil {
		return ""
	}
	return p.Name.Value
}

// Param is a single parameter of [Parameters].
type Param struct {
	// One of "", "*" or "**".
	Star                string
	WhitespaceAfterStar ParenthesizableWhitespace
	Name                *Name
	Annotation          *Annotation
	// Only rendered if Default is set. Defaults to " = " if there is an
	// annotation and "=" if there is not.
	Equal   Maybe[*AssignEqual]
	Default Expression
	// Defaults to ", " unless this is the last parameter.
	Comma                Maybe[*Comma]
	WhitespaceAfterParam ParenthesizableWhitespace
}

// Kind implements [Node].
func (*Param) Kind() Kind { return KindParam }

func (*Param) starArg() {}

func (n *Param) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceAfterStar = mapOptional(m, "WhitespaceAfterStar", n.WhitespaceAfterStar)
	c.Name = mapRequired(m, "Name", n.Name)
	c.Annotation = mapOptional(m, "Annotation", n.Annotation)
	c.Equal = mapMaybe(m, "Equal", n.Equal)
	c.Default = mapOptional(m, "Default", n.Default)
	c.Comma = mapMaybe(m, "Comma", n.Comma)
	c.WhitespaceAfterParam = mapOptional(m, "WhitespaceAfterParam", n.WhitespaceAfterParam)
	return &c
}

func (n *Param) render(s *state) { n.renderComma(s, "") }

func (n *Param) renderComma(s *state, def string) {
	start := s.offset()
	s.write(n.Star)
	s.node(n.WhitespaceAfterStar)
	s.node(n.Name)
	renderAnnotation(s, n.Annotation, ":")
	if !isNil(n.Default) {
		eq := "="
		if n.Annotation != nil {
			eq = " = "
		}
		renderMaybe(s, n.Equal, eq)
		s.node(n.Default)
	}
	s.syntax(n, start)
	renderMaybe(s, n.Comma, def)
	s.node(n.WhitespaceAfterParam)
}

func (n *Param) validate() error {
	switch n.Star {
	case "", "*", "**":
	default:
		return validationErrorf(n.Kind(), "invalid star %q", n.Star)
	}
	if n.Name == nil {
		return validationErrorf(n.Kind(), "missing name")
	}
	if isNil(n.Default) && !n.Equal.IsDefault() {
		return validationErrorf(n.Kind(), "cannot have an equal sign without a default")
	}
	return nil
}

// ParamStar is a bare "*" in a parameter list, after which every parameter
// is keyword-only.
type ParamStar struct {
	// Defaults to ", ". A bare star is never the last parameter.
	Comma *Comma
}

// Kind implements [Node].
func (*ParamStar) Kind() Kind { return KindParamStar }

func (*ParamStar) starArg() {}

func (n *ParamStar) mapChildren(m *mapper) Node {
	c := *n
	c.Comma = mapOptional(m, "Comma", n.Comma)
	return &c
}

func (n *ParamStar) render(s *state) { n.renderComma(s, ", ") }

func (n *ParamStar) renderComma(s *state, _ string) {
	start := s.offset()
	s.write("*")
	s.syntax(n, start)
	if n.Comma == nil {
		s.write(", ")
	}
	s.node(n.Comma)
}

func (*ParamStar) validate() error { return nil }

// Annotation is a type annotation: either the ": int" of a parameter or
// variable, or the "-> int" of a function.
//
// Which indicator is rendered depends on where the annotation is.
type Annotation struct {
	// Defaults to "" before ":" and " " before "->".
	WhitespaceBeforeIndicator Maybe[ParenthesizableWhitespace]
	WhitespaceAfterIndicator  ParenthesizableWhitespace
	Annotation                Expression
}

// Kind implements [Node].
func (*Annotation) Kind() Kind { return KindAnnotation }

func (n *Annotation) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceBeforeIndicator = mapMaybe(m, "WhitespaceBeforeIndicator", n.WhitespaceBeforeIndicator)
	c.WhitespaceAfterIndicator = mapOptional(m, "WhitespaceAfterIndicator", n.WhitespaceAfterIndicator)
	c.Annotation = mapRequired(m, "Annotation", n.Annotation)
	return &c
}

func (n *Annotation) render(s *state) { n.renderIndicator(s, ":") }

func (n *Annotation) renderIndicator(s *state, indicator string) {
	def := ""
	if indicator == "->" {
		def = " "
	}
	renderMaybe(s, n.WhitespaceBeforeIndicator, def)
	start := s.offset()
	s.write(indicator)
	s.node(n.WhitespaceAfterIndicator)
	s.node(n.Annotation)
	s.syntax(n, start)
}

func renderAnnotation(s *state, n *Annotation, indicator string) {
	if n == nil {
		return
	}
	s.nodeWith(n, func() { n.renderIndicator(s, indicator) })
}

func (n *Annotation) validate() error {
	if isNil(n.Annotation) {
		return validationErrorf(n.Kind(), "missing annotation")
	}
	return nil
}
