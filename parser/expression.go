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

package parser

import (
	"strings"

	"github.com/bufbuild/pycst/cst"
)

var (
	binaryOps     = operatorKinds(cst.Kind.IsBinaryOperator)
	comparisonOps = operatorKinds(cst.Kind.IsComparisonOperator)
	unaryOps      = operatorKinds(cst.Kind.IsUnaryOperator)
	augOps        = operatorKinds(cst.Kind.IsAugOperator)
)

// operatorKinds maps the source text of every operator kind selected by pred
// to its kind.
func operatorKinds(pred func(cst.Kind) bool) map[string]cst.Kind {
	ops := make(map[string]cst.Kind)
	for _, k := range cst.Kinds() {
		if pred(k) {
			ops[k.OperatorText()] = k
		}
	}
	return ops
}

func emptyWhitespace() cst.ParenthesizableWhitespace {
	return &cst.SimpleWhitespace{}
}

// name parses an identifier.
func (p *parser) name() *cst.Name {
	tok := p.peek()
	if tok.kind != tokenName || p.isReserved(tok) || cst.IsKeyword(tok.text) && tok.text != "async" && tok.text != "await" {
		p.fail(tok.start, "expected a name, found %s", tok.describe())
	}
	p.advance()
	return &cst.Name{Value: tok.text}
}

func (p *parser) nameExpr() cst.Expression {
	return p.name()
}

// startsExpression returns whether tok can be the first token of an
// expression or a starred element.
func (p *parser) startsExpression(tok token) bool {
	switch tok.kind {
	case tokenNumber, tokenString:
		return true
	case tokenName:
		switch tok.text {
		case "lambda", "not", "await", "True", "False", "None":
			return true
		}
		return !p.isReserved(tok)
	case tokenOp:
		switch tok.text {
		case "(", "[", "{", "-", "+", "~", "...", "*":
			return true
		}
	}
	return false
}

// peekCompFor returns whether a comprehension's "for" clause is next.
func (p *parser) peekCompFor() bool {
	if p.peekKeyword("for") {
		return true
	}
	return p.peekKeyword("async") && isKeyword(p.peekAt(1), "for") && p.version.atLeast(6)
}

// testlistStarExpr parses one or more comma-separated expressions, any of
// which may be starred. More than one expression, or a trailing comma, makes
// a tuple without parentheses.
func (p *parser) testlistStarExpr() cst.Expression {
	return p.tupleOf(p.test)
}

// exprList is like testlistStarExpr, for assignment targets in "for" and
// "del", where comparisons are not allowed.
func (p *parser) exprList() cst.Expression {
	return p.tupleOf(p.expr)
}

func (p *parser) tupleOf(elem func() cst.Expression) cst.Expression {
	start := p.peek().start
	first := p.element(elem)
	if !p.peekOp(",") {
		el, ok := first.(*cst.Element)
		if !ok {
			p.fail(start, "can't use starred expression here")
		}
		return el.Value
	}
	return &cst.Tuple{Elements: p.elementsFrom(first, elem)}
}

func (p *parser) element(elem func() cst.Expression) cst.SequenceElement {
	if p.peekOp("*") {
		p.advance()
		ws := p.whitespace()
		return &cst.StarredElement{WhitespaceBeforeValue: ws, Value: p.expr()}
	}
	return &cst.Element{Value: elem()}
}

// elementsFrom parses the rest of a comma-separated sequence whose first
// element has already been parsed.
func (p *parser) elementsFrom(el cst.SequenceElement, elem func() cst.Expression) []cst.SequenceElement {
	els := []cst.SequenceElement{el}
	for p.peekOp(",") {
		comma := p.comma()
		switch el := el.(type) {
		case *cst.Element:
			el.Comma = cst.Some(comma)
		case *cst.StarredElement:
			el.Comma = cst.Some(comma)
		}
		if !p.startsExpression(p.peek()) {
			break
		}
		el = p.element(elem)
		els = append(els, el)
	}
	return els
}

// test parses a full expression, including conditional expressions and
// lambdas.
func (p *parser) test() cst.Expression {
	if p.peekKeyword("lambda") {
		return p.lambda(p.test)
	}
	body := p.orTest()
	if !p.peekKeyword("if") {
		return body
	}
	n := &cst.IfExp{Body: body, WhitespaceBeforeIf: p.whitespace()}
	p.advance()
	n.WhitespaceAfterIf = p.whitespace()
	n.Test = p.orTest()
	n.WhitespaceBeforeElse = p.whitespace()
	p.expectKeyword("else")
	n.WhitespaceAfterElse = p.whitespace()
	n.Orelse = p.test()
	return n
}

// testNoCond parses an expression that may not be a conditional expression,
// as in the "if" clause of a comprehension.
func (p *parser) testNoCond() cst.Expression {
	if p.peekKeyword("lambda") {
		return p.lambda(p.testNoCond)
	}
	return p.orTest()
}

func (p *parser) lambda(body func() cst.Expression) cst.Expression {
	p.advance()
	n := &cst.Lambda{WhitespaceAfterLambda: cst.Some(p.whitespace())}
	n.Params = p.parameters(":", false)
	p.expectOp(":")
	n.Colon = &cst.Colon{WhitespaceBefore: emptyWhitespace(), WhitespaceAfter: p.whitespace()}
	n.Body = body()
	return n
}

func (p *parser) orTest() cst.Expression  { return p.boolean(p.andTest, "or") }
func (p *parser) andTest() cst.Expression { return p.boolean(p.notTest, "and") }

func (p *parser) boolean(operand func() cst.Expression, keyword string) cst.Expression {
	left := operand()
	for p.peekKeyword(keyword) {
		before := p.whitespace()
		p.advance()
		op := &cst.BooleanOp{Op: cst.KindAnd, WhitespaceBefore: before, WhitespaceAfter: p.whitespace()}
		if keyword == "or" {
			op.Op = cst.KindOr
		}
		left = &cst.BooleanOperation{Left: left, Operator: op, Right: operand()}
	}
	return left
}

func (p *parser) notTest() cst.Expression {
	if !p.peekKeyword("not") {
		return p.comparison()
	}
	p.advance()
	op := &cst.UnaryOp{Op: cst.KindNot, WhitespaceAfter: p.whitespace()}
	return &cst.UnaryOperation{Operator: op, Expression: p.notTest()}
}

func (p *parser) comparison() cst.Expression {
	left := p.expr()
	var targets []*cst.ComparisonTarget
	for {
		op := p.comparisonOp()
		if op == nil {
			break
		}
		targets = append(targets, &cst.ComparisonTarget{Operator: op, Comparator: p.expr()})
	}
	if len(targets) == 0 {
		return left
	}
	return &cst.Comparison{Left: left, Comparisons: targets}
}

// comparisonOp parses a comparison operator, if one is next.
func (p *parser) comparisonOp() *cst.ComparisonOp {
	tok := p.peek()
	switch {
	case tok.kind == tokenOp && comparisonOps[tok.text] != cst.InvalidKind:
		before := p.whitespace()
		p.advance()
		return &cst.ComparisonOp{Op: comparisonOps[tok.text], WhitespaceBefore: before, WhitespaceAfter: p.whitespace()}
	case isKeyword(tok, "in"):
		before := p.whitespace()
		p.advance()
		return &cst.ComparisonOp{Op: cst.KindIn, WhitespaceBefore: before, WhitespaceAfter: p.whitespace()}
	case isKeyword(tok, "not") && isKeyword(p.peekAt(1), "in"):
		before := p.whitespace()
		p.advance()
		between := p.whitespace()
		p.advance()
		return &cst.ComparisonOp{
			Op:                cst.KindNotIn,
			WhitespaceBefore:  before,
			WhitespaceBetween: between,
			WhitespaceAfter:   p.whitespace(),
		}
	case isKeyword(tok, "is"):
		before := p.whitespace()
		p.advance()
		op := &cst.ComparisonOp{Op: cst.KindIs, WhitespaceBefore: before}
		if p.peekKeyword("not") {
			op.Op = cst.KindIsNot
			op.WhitespaceBetween = p.whitespace()
			p.advance()
		}
		op.WhitespaceAfter = p.whitespace()
		return op
	default:
		return nil
	}
}

func (p *parser) expr() cst.Expression       { return p.binary(p.xorExpr, "|") }
func (p *parser) xorExpr() cst.Expression    { return p.binary(p.andExpr, "^") }
func (p *parser) andExpr() cst.Expression    { return p.binary(p.shiftExpr, "&") }
func (p *parser) shiftExpr() cst.Expression  { return p.binary(p.arithExpr, "<<", ">>") }
func (p *parser) arithExpr() cst.Expression  { return p.binary(p.term, "+", "-") }
func (p *parser) term() cst.Expression       { return p.binary(p.factor, "*", "@", "/", "%", "//") }

// binary parses a left-associative chain of binary operators.
func (p *parser) binary(operand func() cst.Expression, ops ...string) cst.Expression {
	left := operand()
	for p.peekOp(ops...) {
		before := p.whitespace()
		tok := p.advance()
		if tok.text == "@" && !p.version.atLeast(5) {
			p.fail(tok.start, "the '@' operator requires Python 3.5 or later")
		}
		op := &cst.BinaryOp{Op: binaryOps[tok.text], WhitespaceBefore: before, WhitespaceAfter: p.whitespace()}
		left = &cst.BinaryOperation{Left: left, Operator: op, Right: operand()}
	}
	return left
}

func (p *parser) factor() cst.Expression {
	if !p.peekOp("+", "-", "~") {
		return p.power()
	}
	tok := p.advance()
	op := &cst.UnaryOp{Op: unaryOps[tok.text], WhitespaceAfter: p.whitespace()}
	return &cst.UnaryOperation{Operator: op, Expression: p.factor()}
}

// power parses "**", which is right-associative and binds tighter than a
// unary operator on its left but looser than one on its right.
func (p *parser) power() cst.Expression {
	base := p.awaitPrimary()
	if !p.peekOp("**") {
		return base
	}
	before := p.whitespace()
	p.advance()
	op := &cst.BinaryOp{Op: cst.KindPower, WhitespaceBefore: before, WhitespaceAfter: p.whitespace()}
	return &cst.BinaryOperation{Left: base, Operator: op, Right: p.factor()}
}

func (p *parser) awaitPrimary() cst.Expression {
	if tok := p.peek(); isKeyword(tok, "await") && p.isReserved(tok) {
		p.advance()
		ws := p.whitespace()
		return &cst.Await{WhitespaceAfterAwait: ws, Expression: p.atomTrailers()}
	}
	return p.atomTrailers()
}

// atomTrailers parses an atom followed by any number of calls, subscripts
// and attribute accesses.
func (p *parser) atomTrailers() cst.Expression {
	e := p.atom()
	for {
		switch {
		case p.peekOp("("):
			ws := p.whitespace()
			p.advance()
			n := &cst.Call{Func: e, WhitespaceAfterFunc: ws, WhitespaceBeforeArgs: p.whitespace()}
			n.Args = p.arguments(")")
			p.expectOp(")")
			e = n
		case p.peekOp("["):
			ws := p.whitespace()
			p.advance()
			n := &cst.Subscript{
				Value:                e,
				WhitespaceAfterValue: ws,
				Lbracket:             &cst.LeftSquareBracket{WhitespaceAfter: p.whitespace()},
			}
			n.Slice = p.subscripts()
			before := p.whitespace()
			p.expectOp("]")
			n.Rbracket = &cst.RightSquareBracket{WhitespaceBefore: before}
			e = n
		case p.peekOp("."):
			dot := p.dot()
			e = &cst.Attribute{Value: e, Dot: dot, Attr: p.name()}
		default:
			return e
		}
	}
}

// arguments parses the arguments of a call or class definition, up to but
// not including closer.
func (p *parser) arguments(closer string) []*cst.Arg {
	var args []*cst.Arg
	sawKeyword := false
	for !p.peekOp(closer) {
		arg := &cst.Arg{}
		tok := p.peek()
		switch {
		case isOp(tok, "*"), isOp(tok, "**"):
			p.advance()
			arg.Star = tok.text
			arg.WhitespaceAfterStar = p.whitespace()
			arg.Value = p.test()
			sawKeyword = sawKeyword || tok.text == "**"
		case tok.kind == tokenName && isOp(p.peekAt(1), "="):
			arg.Keyword = p.name()
			arg.Equal = cst.Some(p.assignEqual())
			arg.Value = p.test()
			sawKeyword = true
		default:
			if sawKeyword {
				p.fail(tok.start, "positional argument follows keyword argument")
			}
			value := p.test()
			if p.peekCompFor() {
				value = &cst.GeneratorExp{Elt: value, ForIn: p.compFor()}
			}
			arg.Value = value
		}
		args = append(args, arg)
		if !p.peekOp(",") {
			arg.WhitespaceAfterArg = p.whitespace()
			break
		}
		arg.Comma = cst.Some(p.comma())
	}
	return args
}

func (p *parser) subscripts() []*cst.ExtSlice {
	var slices []*cst.ExtSlice
	for {
		s := &cst.ExtSlice{Slice: p.slice()}
		slices = append(slices, s)
		if !p.peekOp(",") {
			return slices
		}
		s.Comma = cst.Some(p.comma())
		if p.peekOp("]") {
			return slices
		}
	}
}

func (p *parser) slice() cst.SliceNode {
	var lower cst.Expression
	if !p.peekOp(":") {
		lower = p.test()
		if !p.peekOp(":") {
			return &cst.Index{Value: lower}
		}
	}
	n := &cst.Slice{Lower: lower, First: p.colon()}
	if !p.peekOp(":", ",", "]") {
		n.Upper = p.test()
	}
	if p.peekOp(":") {
		n.Second = p.colon()
		if !p.peekOp(",", "]") {
			n.Step = p.test()
		}
	}
	return n
}

func (p *parser) atom() cst.Expression {
	tok := p.peek()
	switch tok.kind {
	case tokenName:
		switch tok.text {
		case "True", "False", "None":
			p.advance()
			return &cst.Name{Value: tok.text}
		}
		return p.name()
	case tokenNumber:
		p.advance()
		return number(tok.text)
	case tokenString:
		return p.strings()
	case tokenOp:
		switch tok.text {
		case "(":
			return p.parenthesized()
		case "[":
			return p.listDisplay()
		case "{":
			return p.dictOrSet()
		case "...":
			p.advance()
			return &cst.Ellipsis{}
		}
	}
	p.unexpected(tok)
	return nil
}

// number returns the node for a numeric literal.
func number(text string) cst.Expression {
	lower := strings.ToLower(text)
	switch {
	case strings.HasSuffix(lower, "j"):
		return &cst.Imaginary{Value: text}
	case strings.HasPrefix(lower, "0x"), strings.HasPrefix(lower, "0o"), strings.HasPrefix(lower, "0b"):
		return &cst.Integer{Value: text}
	case strings.ContainsAny(lower, ".e"):
		return &cst.Float{Value: text}
	default:
		return &cst.Integer{Value: text}
	}
}

// parenthesized parses a parenthesized expression, tuple, generator or
// yield expression.
func (p *parser) parenthesized() cst.Expression {
	p.advance()
	lpar := &cst.LeftParen{WhitespaceAfter: p.whitespace()}

	var inner cst.Expression
	switch {
	case p.peekOp(")"):
		inner = &cst.Tuple{}
	case p.peekKeyword("yield"):
		inner = p.yieldExpr()
	default:
		start := p.peek().start
		first := p.element(p.test)
		el, plain := first.(*cst.Element)
		switch {
		case plain && p.peekCompFor():
			inner = &cst.GeneratorExp{Elt: el.Value, ForIn: p.compFor()}
		case p.peekOp(","):
			inner = &cst.Tuple{Elements: p.elementsFrom(first, p.test)}
		case !plain:
			p.fail(start, "can't use starred expression here")
		default:
			inner = el.Value
		}
	}

	before := p.whitespace()
	p.expectOp(")")
	return cst.WithParens(inner, lpar, &cst.RightParen{WhitespaceBefore: before})
}

func (p *parser) listDisplay() cst.Expression {
	p.advance()
	lbracket := &cst.LeftSquareBracket{WhitespaceAfter: p.whitespace()}
	if p.peekOp("]") {
		return &cst.List{Lbracket: lbracket, Rbracket: p.rbracket()}
	}
	first := p.element(p.test)
	if el, ok := first.(*cst.Element); ok && p.peekCompFor() {
		return &cst.ListComp{Lbracket: lbracket, Elt: el.Value, ForIn: p.compFor(), Rbracket: p.rbracket()}
	}
	return &cst.List{Lbracket: lbracket, Elements: p.elementsFrom(first, p.test), Rbracket: p.rbracket()}
}

func (p *parser) rbracket() *cst.RightSquareBracket {
	before := p.whitespace()
	p.expectOp("]")
	return &cst.RightSquareBracket{WhitespaceBefore: before}
}

func (p *parser) rbrace() *cst.RightCurlyBrace {
	before := p.whitespace()
	p.expectOp("}")
	return &cst.RightCurlyBrace{WhitespaceBefore: before}
}

func (p *parser) dictOrSet() cst.Expression {
	p.advance()
	lbrace := &cst.LeftCurlyBrace{WhitespaceAfter: p.whitespace()}
	switch {
	case p.peekOp("}"):
		return &cst.Dict{Lbrace: lbrace, Rbrace: p.rbrace()}
	case p.peekOp("**"):
		return &cst.Dict{Lbrace: lbrace, Elements: p.dictItems(p.dictItem()), Rbrace: p.rbrace()}
	case p.peekOp("*"):
		return &cst.Set{Lbrace: lbrace, Elements: p.elementsFrom(p.element(p.test), p.test), Rbrace: p.rbrace()}
	}

	key := p.test()
	if !p.peekOp(":") {
		if p.peekCompFor() {
			return &cst.SetComp{Lbrace: lbrace, Elt: key, ForIn: p.compFor(), Rbrace: p.rbrace()}
		}
		return &cst.Set{Lbrace: lbrace, Elements: p.elementsFrom(&cst.Element{Value: key}, p.test), Rbrace: p.rbrace()}
	}

	before := p.whitespace()
	p.advance()
	after := p.whitespace()
	value := p.test()
	if p.peekCompFor() {
		return &cst.DictComp{
			Lbrace:                lbrace,
			Key:                   key,
			WhitespaceBeforeColon: before,
			WhitespaceAfterColon:  after,
			Value:                 value,
			ForIn:                 p.compFor(),
			Rbrace:                p.rbrace(),
		}
	}
	first := &cst.DictElement{Key: key, WhitespaceBeforeColon: before, WhitespaceAfterColon: after, Value: value}
	return &cst.Dict{Lbrace: lbrace, Elements: p.dictItems(first), Rbrace: p.rbrace()}
}

func (p *parser) dictItem() cst.DictItem {
	if p.peekOp("**") {
		p.advance()
		ws := p.whitespace()
		return &cst.StarredDictElement{WhitespaceBeforeValue: ws, Value: p.expr()}
	}
	key := p.test()
	before := p.whitespace()
	p.expectOp(":")
	after := p.whitespace()
	return &cst.DictElement{Key: key, WhitespaceBeforeColon: before, WhitespaceAfterColon: after, Value: p.test()}
}

// dictItems parses the rest of a dict display whose first item has already
// been parsed.
func (p *parser) dictItems(item cst.DictItem) []cst.DictItem {
	items := []cst.DictItem{item}
	for p.peekOp(",") {
		comma := p.comma()
		switch item := item.(type) {
		case *cst.DictElement:
			item.Comma = cst.Some(comma)
		case *cst.StarredDictElement:
			item.Comma = cst.Some(comma)
		}
		if p.peekOp("}") {
			break
		}
		item = p.dictItem()
		items = append(items, item)
	}
	return items
}

// compFor parses the "for" clauses of a comprehension, with their "if"
// clauses.
func (p *parser) compFor() *cst.CompFor {
	n := &cst.CompFor{WhitespaceBefore: p.whitespace()}
	if p.peekKeyword("async") {
		n.Asynchronous = p.asynchronous()
	}
	p.expectKeyword("for")
	n.WhitespaceAfterFor = p.whitespace()
	n.Target = p.exprList()
	n.WhitespaceBeforeIn = p.whitespace()
	p.expectKeyword("in")
	n.WhitespaceAfterIn = p.whitespace()
	n.Iter = p.orTest()
	for p.peekKeyword("if") {
		ci := &cst.CompIf{WhitespaceBefore: p.whitespace()}
		p.advance()
		ci.WhitespaceBeforeTest = p.whitespace()
		ci.Test = p.testNoCond()
		n.Ifs = append(n.Ifs, ci)
	}
	if p.peekCompFor() {
		n.InnerForIn = p.compFor()
	}
	return n
}

func (p *parser) yieldExpr() *cst.Yield {
	p.expectKeyword("yield")
	n := &cst.Yield{}
	switch {
	case p.peekKeyword("from"):
		n.WhitespaceAfterYield = cst.Some(p.whitespace())
		p.advance()
		after := p.whitespace()
		n.Value = &cst.From{
			WhitespaceBeforeFrom: cst.Some(emptyWhitespace()),
			WhitespaceAfterFrom:  after,
			Item:                 p.test(),
		}
	case p.startsExpression(p.peek()):
		n.WhitespaceAfterYield = cst.Some(p.whitespace())
		n.Value = p.testlistStarExpr()
	}
	return n
}

// strings parses one or more adjacent string literals. Adjacent literals are
// nested to the right: "a" "b" "c" is a + ("b" + "c").
func (p *parser) strings() cst.Expression {
	first := p.peek()
	parts := []cst.String{p.stringAtom()}
	var between []cst.ParenthesizableWhitespace
	for p.peek().kind == tokenString {
		if tok := p.peek(); isBytes(tok.text) != isBytes(first.text) {
			p.fail(tok.start, "cannot mix bytes and nonbytes literals")
		}
		between = append(between, p.whitespace())
		parts = append(parts, p.stringAtom())
	}

	result := parts[len(parts)-1]
	for i := len(parts) - 2; i >= 0; i-- {
		result = &cst.ConcatenatedString{Left: parts[i], WhitespaceBetween: between[i], Right: result}
	}
	return result
}

func (p *parser) stringAtom() cst.String {
	tok := p.peek()
	if strings.ContainsAny(stringPrefix(tok.text), "fF") {
		return p.fstring()
	}
	p.advance()
	return &cst.SimpleString{Value: tok.text}
}

func stringPrefix(text string) string {
	return text[:strings.IndexAny(text, `'"`)]
}

func isBytes(text string) bool {
	return strings.ContainsAny(stringPrefix(text), "bB")
}
