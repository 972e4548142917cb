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

import "github.com/bufbuild/pycst/cst"

// suite parses the body of a compound statement, after its colon.
func (p *parser) suite() cst.Suite {
	if p.peek().kind == tokenNewline {
		return p.indentedBlock()
	}
	ws := p.simpleWhitespace()
	body := p.smallStatements()
	return &cst.SimpleStatementSuite{
		LeadingWhitespace:  ws,
		Body:               body,
		TrailingWhitespace: p.endOfLine(),
	}
}

func (p *parser) indentedBlock() *cst.IndentedBlock {
	n := &cst.IndentedBlock{Header: p.endOfLine()}

	// The INDENT token sits at the first token of the block, after any blank
	// lines and the indentation itself.
	tok := p.peek()
	if tok.kind != tokenIndent {
		p.fail(tok.start, "expected an indented block")
	}
	parent := p.indent()
	n.Indent = tok.text[len(parent):]
	p.indents = append(p.indents, tok.text)

	leading := p.leadingLines()
	p.skipIndent()
	p.next++
	n.Body = append(n.Body, p.statementAfter(leading))
	for p.peek().kind != tokenDedent {
		n.Body = append(n.Body, p.statement())
	}

	n.Footer = p.footer()
	p.indents = p.indents[:len(p.indents)-1]
	p.next++
	return n
}

// peekClause returns whether the next statement is a clause of the compound
// statement just parsed, such as "else" or "except". Blocks always end with a
// DEDENT, so a clause keyword at this point is always at the right depth.
func (p *parser) peekClause(keyword string) bool {
	return p.peekKeyword(keyword)
}

func (p *parser) ifStatement(leading []*cst.EmptyLine) *cst.If {
	p.advance()
	n := &cst.If{LeadingLines: leading, WhitespaceBeforeTest: p.simpleWhitespace()}
	n.Test = p.test()
	n.WhitespaceAfterTest = p.simpleWhitespace()
	p.expectOp(":")
	n.Body = p.suite()

	switch {
	case p.peekClause("elif"):
		lines := p.leadingLines()
		p.skipIndent()
		n.Orelse = p.ifStatement(lines)
	case p.peekClause("else"):
		n.Orelse = p.elseClause()
	}
	return n
}

func (p *parser) elseClause() *cst.Else {
	lines := p.leadingLines()
	p.skipIndent()
	p.expectKeyword("else")
	ws := p.simpleWhitespace()
	p.expectOp(":")
	return &cst.Else{LeadingLines: lines, WhitespaceBeforeColon: ws, Body: p.suite()}
}

// optionalElse parses an else clause if one follows.
func (p *parser) optionalElse() *cst.Else {
	if p.peekClause("else") {
		return p.elseClause()
	}
	return nil
}

func (p *parser) whileStatement(leading []*cst.EmptyLine) *cst.While {
	p.advance()
	n := &cst.While{LeadingLines: leading, WhitespaceAfterWhile: p.simpleWhitespace()}
	n.Test = p.test()
	n.WhitespaceBeforeColon = p.simpleWhitespace()
	p.expectOp(":")
	n.Body = p.suite()
	n.Orelse = p.optionalElse()
	return n
}

func (p *parser) forStatement(leading []*cst.EmptyLine, async *cst.Asynchronous) *cst.For {
	p.expectKeyword("for")
	n := &cst.For{LeadingLines: leading, Asynchronous: async, WhitespaceAfterFor: p.simpleWhitespace()}
	n.Target = p.exprList()
	n.WhitespaceBeforeIn = p.simpleWhitespace()
	p.expectKeyword("in")
	n.WhitespaceAfterIn = p.simpleWhitespace()
	n.Iter = p.testlistStarExpr()
	n.WhitespaceBeforeColon = p.simpleWhitespace()
	p.expectOp(":")
	n.Body = p.suite()
	n.Orelse = p.optionalElse()
	return n
}

func (p *parser) tryStatement(leading []*cst.EmptyLine) *cst.Try {
	start := p.advance()
	n := &cst.Try{LeadingLines: leading, WhitespaceBeforeColon: p.simpleWhitespace()}
	p.expectOp(":")
	n.Body = p.suite()

	for p.peekClause("except") {
		n.Handlers = append(n.Handlers, p.exceptHandler())
	}
	if len(n.Handlers) > 0 {
		n.Orelse = p.optionalElse()
	}
	if p.peekClause("finally") {
		lines := p.leadingLines()
		p.skipIndent()
		p.advance()
		ws := p.simpleWhitespace()
		p.expectOp(":")
		n.Finalbody = &cst.Finally{LeadingLines: lines, WhitespaceBeforeColon: ws, Body: p.suite()}
	}
	if len(n.Handlers) == 0 && n.Finalbody == nil {
		p.fail(start.start, "try statement must have at least one except or finally clause")
	}
	return n
}

func (p *parser) exceptHandler() *cst.ExceptHandler {
	lines := p.leadingLines()
	p.skipIndent()
	p.advance()
	n := &cst.ExceptHandler{LeadingLines: lines}

	ws := p.simpleWhitespace()
	if p.peekOp(":") {
		n.WhitespaceBeforeColon = ws
	} else {
		n.WhitespaceAfterExcept = ws
		n.Type = p.test()
		if p.peekKeyword("as") {
			n.Name = p.asName(p.nameExpr)
		}
		n.WhitespaceBeforeColon = p.simpleWhitespace()
	}
	p.expectOp(":")
	n.Body = p.suite()
	return n
}

func (p *parser) withStatement(leading []*cst.EmptyLine, async *cst.Asynchronous) *cst.With {
	p.expectKeyword("with")
	n := &cst.With{LeadingLines: leading, Asynchronous: async, WhitespaceAfterWith: p.simpleWhitespace()}
	for {
		item := &cst.WithItem{Item: p.test()}
		if p.peekKeyword("as") {
			item.AsName = p.asName(p.expr)
		}
		n.Items = append(n.Items, item)
		if !p.peekOp(",") {
			break
		}
		item.Comma = cst.Some(p.comma())
	}
	n.WhitespaceBeforeColon = p.simpleWhitespace()
	p.expectOp(":")
	n.Body = p.suite()
	return n
}

func (p *parser) asynchronous() *cst.Asynchronous {
	p.expectKeyword("async")
	return &cst.Asynchronous{WhitespaceAfter: p.whitespace()}
}

// decorated parses a function or class definition with decorators. The
// leading lines of the first decorator belong to the definition itself.
func (p *parser) decorated(leading []*cst.EmptyLine) cst.Statement {
	var decorators []*cst.Decorator
	var lines []*cst.EmptyLine
	for {
		p.expectOp("@")
		d := &cst.Decorator{LeadingLines: lines, WhitespaceAfterAt: p.simpleWhitespace()}
		d.Decorator = p.test()
		d.TrailingWhitespace = p.endOfLine()
		decorators = append(decorators, d)

		lines = p.leadingLines()
		p.skipIndent()
		if !p.peekOp("@") {
			break
		}
	}

	switch tok := p.peek(); {
	case isKeyword(tok, "def"):
		return p.functionDef(leading, decorators, lines, nil)
	case isKeyword(tok, "class"):
		return p.classDef(leading, decorators, lines)
	case p.peekAsync() && isKeyword(p.peekAt(1), "def"):
		async := p.asynchronous()
		return p.functionDef(leading, decorators, lines, async)
	default:
		p.unexpected(tok)
		return nil
	}
}

func (p *parser) functionDef(
	leading []*cst.EmptyLine,
	decorators []*cst.Decorator,
	after []*cst.EmptyLine,
	async *cst.Asynchronous,
) *cst.FunctionDef {
	p.expectKeyword("def")
	n := &cst.FunctionDef{
		LeadingLines:         leading,
		Decorators:           decorators,
		LinesAfterDecorators: after,
		Asynchronous:         async,
		WhitespaceAfterDef:   p.simpleWhitespace(),
	}
	n.Name = p.name()
	n.WhitespaceAfterName = p.simpleWhitespace()
	p.expectOp("(")
	n.WhitespaceBeforeParams = p.whitespace()
	n.Params = p.parameters(")", true)
	p.expectOp(")")
	if p.peekOp("->") {
		n.Returns = p.annotation("->")
	}
	n.WhitespaceBeforeColon = p.simpleWhitespace()
	p.expectOp(":")

	inAsync := p.inAsync
	p.inAsync = async != nil
	n.Body = p.suite()
	p.inAsync = inAsync
	return n
}

func (p *parser) annotation(indicator string) *cst.Annotation {
	before := p.whitespace()
	p.expectOp(indicator)
	after := p.whitespace()
	return &cst.Annotation{
		WhitespaceBeforeIndicator: cst.Some(before),
		WhitespaceAfterIndicator:  after,
		Annotation:                p.test(),
	}
}

// parameters parses a parameter list up to, but not including, closer. Only
// the parameters of a def may have annotations.
func (p *parser) parameters(closer string, annotations bool) *cst.Parameters {
	params := &cst.Parameters{}
	star := false
	for !p.peekOp(closer) {
		if params.StarKwarg != nil {
			p.unexpected(p.peek())
		}

		var param *cst.Param
		switch {
		case p.peekOp("**"):
			param = p.param("**", annotations)
			params.StarKwarg = param
		case p.peekOp("*"):
			if star {
				p.fail(p.peek().start, "duplicate '*' in parameter list")
			}
			star = true
			if next := p.peekAt(1); next.kind != tokenName {
				p.advance()
				if !p.peekOp(",") {
					p.fail(p.peek().start, "named arguments must follow bare *")
				}
				params.StarArg = &cst.ParamStar{Comma: p.comma()}
				continue
			}
			param = p.param("*", annotations)
			params.StarArg = param
		case star:
			param = p.param("", annotations)
			params.KwonlyParams = append(params.KwonlyParams, param)
		default:
			start := p.peek().start
			param = p.param("", annotations)
			if param.Default == nil && len(params.Params) > 0 && params.Params[len(params.Params)-1].Default != nil {
				p.fail(start, "non-default argument follows default argument")
			}
			params.Params = append(params.Params, param)
		}
		if _, ok := param.Comma.Get(); !ok {
			break
		}
	}
	if _, ok := params.StarArg.(*cst.ParamStar); ok && len(params.KwonlyParams) == 0 && params.StarKwarg == nil {
		p.fail(p.peek().start, "named arguments must follow bare *")
	}
	return params
}

func (p *parser) param(star string, annotations bool) *cst.Param {
	param := &cst.Param{Star: star}
	if star != "" {
		p.expectOp(star)
		param.WhitespaceAfterStar = p.whitespace()
	}
	param.Name = p.name()
	if annotations && p.peekOp(":") {
		param.Annotation = p.annotation(":")
	}
	if p.peekOp("=") {
		if star != "" {
			p.unexpected(p.peek())
		}
		param.Equal = cst.Some(p.assignEqual())
		param.Default = p.test()
	}
	if p.peekOp(",") {
		param.Comma = cst.Some(p.comma())
	} else {
		param.WhitespaceAfterParam = p.whitespace()
	}
	return param
}

func (p *parser) classDef(leading []*cst.EmptyLine, decorators []*cst.Decorator, after []*cst.EmptyLine) *cst.ClassDef {
	p.expectKeyword("class")
	n := &cst.ClassDef{
		LeadingLines:         leading,
		Decorators:           decorators,
		LinesAfterDecorators: after,
		WhitespaceAfterClass: p.simpleWhitespace(),
	}
	n.Name = p.name()
	n.WhitespaceAfterName = p.simpleWhitespace()
	if p.peekOp("(") {
		p.advance()
		n.Lpar = cst.Some(&cst.LeftParen{WhitespaceAfter: p.whitespace()})
		for _, arg := range p.arguments(")") {
			switch {
			case arg.Keyword == nil && arg.Star != "**":
				if len(n.Keywords) > 0 {
					p.fail(p.cursor, "positional argument follows keyword argument")
				}
				n.Bases = append(n.Bases, arg)
			default:
				n.Keywords = append(n.Keywords, arg)
			}
		}
		before := p.whitespace()
		p.expectOp(")")
		n.Rpar = cst.Some(&cst.RightParen{WhitespaceBefore: before})
	}
	n.WhitespaceBeforeColon = p.simpleWhitespace()
	p.expectOp(":")
	n.Body = p.suite()
	return n
}
