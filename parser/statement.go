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

// module parses a whole file.
func (p *parser) module() *cst.Module {
	header := p.header()
	var body []cst.Statement
	for p.peek().kind != tokenEOF {
		body = append(body, p.statement())
	}
	footer := p.leadingLines()
	if p.cursor != p.end {
		p.fail(p.cursor, "internal error: unclaimed text at end of file")
	}
	return &cst.Module{Header: header, Body: body, Footer: footer}
}

// statement parses a statement, together with the blank and comment lines
// in front of it.
func (p *parser) statement() cst.Statement {
	leading := p.leadingLines()
	p.skipIndent()
	return p.statementAfter(leading)
}

// statementAfter parses a statement whose leading lines and indentation have
// already been claimed.
func (p *parser) statementAfter(leading []*cst.EmptyLine) cst.Statement {
	tok := p.peek()
	switch tok.kind {
	case tokenIndent, tokenDedent, tokenEOF:
		p.unexpected(tok)
	case tokenOp:
		if tok.text == "@" {
			return p.decorated(leading)
		}
	case tokenName:
		switch tok.text {
		case "if":
			return p.ifStatement(leading)
		case "while":
			return p.whileStatement(leading)
		case "for":
			return p.forStatement(leading, nil)
		case "try":
			return p.tryStatement(leading)
		case "with":
			return p.withStatement(leading, nil)
		case "def":
			return p.functionDef(leading, nil, nil, nil)
		case "class":
			return p.classDef(leading, nil, nil)
		case "async":
			if p.peekAsync() {
				async := p.asynchronous()
				switch {
				case p.peekKeyword("def"):
					return p.functionDef(leading, nil, nil, async)
				case p.peekKeyword("for"):
					return p.forStatement(leading, async)
				default:
					return p.withStatement(leading, async)
				}
			}
		}
	}
	return p.simpleStatementLine(leading)
}

func (p *parser) simpleStatementLine(leading []*cst.EmptyLine) *cst.SimpleStatementLine {
	body := p.smallStatements()
	return &cst.SimpleStatementLine{
		LeadingLines:       leading,
		Body:               body,
		TrailingWhitespace: p.endOfLine(),
	}
}

// smallStatements parses the semicolon-separated statements of one line.
func (p *parser) smallStatements() []cst.SmallStatement {
	var body []cst.SmallStatement
	for {
		body = append(body, p.smallStatement())
		if !isOp(p.tokens[p.next-1], ";") || p.peek().kind == tokenNewline {
			return body
		}
	}
}

// atStatementEnd returns whether the next token ends a small statement.
func (p *parser) atStatementEnd() bool {
	tok := p.peek()
	return tok.kind == tokenNewline || tok.kind == tokenEOF || isOp(tok, ";")
}

func (p *parser) semicolon() cst.Maybe[*cst.Semicolon] {
	if !p.peekOp(";") {
		return cst.Maybe[*cst.Semicolon]{}
	}
	before := p.whitespace()
	p.advance()
	return cst.Some(&cst.Semicolon{WhitespaceBefore: before, WhitespaceAfter: p.whitespace()})
}

func (p *parser) smallStatement() cst.SmallStatement {
	tok := p.peek()
	if tok.kind != tokenName {
		return p.exprStatement()
	}
	switch tok.text {
	case "pass":
		p.advance()
		return &cst.Pass{Semicolon: p.semicolon()}
	case "break":
		p.advance()
		return &cst.Break{Semicolon: p.semicolon()}
	case "continue":
		p.advance()
		return &cst.Continue{Semicolon: p.semicolon()}
	case "return":
		return p.returnStatement()
	case "raise":
		return p.raiseStatement()
	case "global":
		p.advance()
		ws := p.simpleWhitespace()
		return &cst.Global{WhitespaceAfterGlobal: ws, Names: p.nameItems(), Semicolon: p.semicolon()}
	case "nonlocal":
		p.advance()
		ws := p.simpleWhitespace()
		return &cst.Nonlocal{WhitespaceAfterNonlocal: ws, Names: p.nameItems(), Semicolon: p.semicolon()}
	case "del":
		p.advance()
		ws := p.simpleWhitespace()
		return &cst.Del{WhitespaceAfterDel: ws, Target: p.exprList(), Semicolon: p.semicolon()}
	case "assert":
		return p.assertStatement()
	case "import":
		return p.importStatement()
	case "from":
		return p.importFrom()
	default:
		return p.exprStatement()
	}
}

func (p *parser) returnStatement() *cst.Return {
	p.advance()
	n := &cst.Return{}
	if !p.atStatementEnd() {
		n.WhitespaceAfterReturn = cst.Some(p.simpleWhitespace())
		n.Value = p.testlistStarExpr()
	}
	n.Semicolon = p.semicolon()
	return n
}

func (p *parser) raiseStatement() *cst.Raise {
	p.advance()
	n := &cst.Raise{}
	if !p.atStatementEnd() {
		n.WhitespaceAfterRaise = cst.Some(p.simpleWhitespace())
		n.Exc = p.test()
		if p.peekKeyword("from") {
			before := p.whitespace()
			p.advance()
			after := p.whitespace()
			n.Cause = &cst.From{
				WhitespaceBeforeFrom: cst.Some(before),
				WhitespaceAfterFrom:  after,
				Item:                 p.test(),
			}
		}
	}
	n.Semicolon = p.semicolon()
	return n
}

func (p *parser) assertStatement() *cst.Assert {
	p.advance()
	n := &cst.Assert{WhitespaceAfterAssert: p.simpleWhitespace()}
	n.Test = p.test()
	if p.peekOp(",") {
		n.Comma = p.comma()
		n.Msg = p.test()
	}
	n.Semicolon = p.semicolon()
	return n
}

func (p *parser) nameItems() []*cst.NameItem {
	var items []*cst.NameItem
	for {
		item := &cst.NameItem{Name: p.name()}
		items = append(items, item)
		if !p.peekOp(",") {
			return items
		}
		item.Comma = cst.Some(p.comma())
	}
}

func (p *parser) importStatement() *cst.Import {
	p.advance()
	n := &cst.Import{WhitespaceAfterImport: p.simpleWhitespace()}
	for {
		alias := p.importAlias()
		n.Names = append(n.Names, alias)
		if !p.peekOp(",") {
			break
		}
		alias.Comma = cst.Some(p.comma())
	}
	n.Semicolon = p.semicolon()
	return n
}

func (p *parser) importFrom() *cst.ImportFrom {
	p.advance()
	n := &cst.ImportFrom{WhitespaceAfterFrom: p.simpleWhitespace()}
	for p.peekOp(".", "...") {
		tok := p.advance()
		for i := range len(tok.text) {
			dot := &cst.Dot{}
			if i == len(tok.text)-1 {
				next := p.peek()
				if isOp(next, ".") || isOp(next, "...") || (next.kind == tokenName && next.text != "import") {
					dot.WhitespaceAfter = p.whitespace()
				}
			}
			n.Relative = append(n.Relative, dot)
		}
	}
	if !p.peekKeyword("import") {
		n.Module = p.dottedName()
	}
	n.WhitespaceBeforeImport = p.simpleWhitespace()
	p.expectKeyword("import")
	n.WhitespaceAfterImport = p.simpleWhitespace()

	switch {
	case p.peekOp("*"):
		p.advance()
		n.Star = &cst.ImportStar{}
	case p.peekOp("("):
		p.advance()
		n.Lpar = &cst.LeftParen{WhitespaceAfter: p.whitespace()}
		for {
			alias := p.importAlias()
			n.Names = append(n.Names, alias)
			if !p.peekOp(",") {
				break
			}
			alias.Comma = cst.Some(p.comma())
			if p.peekOp(")") {
				break
			}
		}
		before := p.whitespace()
		p.expectOp(")")
		n.Rpar = &cst.RightParen{WhitespaceBefore: before}
	default:
		for {
			alias := p.importAlias()
			n.Names = append(n.Names, alias)
			if !p.peekOp(",") {
				break
			}
			comma := p.comma()
			if p.atStatementEnd() {
				p.fail(p.cursor, "trailing comma not allowed without surrounding parentheses")
			}
			alias.Comma = cst.Some(comma)
		}
	}
	n.Semicolon = p.semicolon()
	return n
}

func (p *parser) importAlias() *cst.ImportAlias {
	alias := &cst.ImportAlias{Name: p.dottedName()}
	if p.peekKeyword("as") {
		alias.AsName = p.asName(p.nameExpr)
	}
	return alias
}

func (p *parser) asName(target func() cst.Expression) *cst.AsName {
	before := p.whitespace()
	p.expectKeyword("as")
	after := p.whitespace()
	return &cst.AsName{WhitespaceBeforeAs: before, WhitespaceAfterAs: after, Name: target()}
}

// dottedName parses a module path such as "a.b.c".
func (p *parser) dottedName() cst.Expression {
	var name cst.Expression = p.name()
	for p.peekOp(".") {
		dot := p.dot()
		name = &cst.Attribute{Value: name, Dot: dot, Attr: p.name()}
	}
	return name
}

func (p *parser) dot() *cst.Dot {
	before := p.whitespace()
	p.expectOp(".")
	return &cst.Dot{WhitespaceBefore: before, WhitespaceAfter: p.whitespace()}
}

func (p *parser) comma() *cst.Comma {
	before := p.whitespace()
	p.expectOp(",")
	return &cst.Comma{WhitespaceBefore: before, WhitespaceAfter: p.whitespace()}
}

func (p *parser) colon() *cst.Colon {
	before := p.whitespace()
	p.expectOp(":")
	return &cst.Colon{WhitespaceBefore: before, WhitespaceAfter: p.whitespace()}
}

func (p *parser) assignEqual() *cst.AssignEqual {
	before := p.whitespace()
	p.expectOp("=")
	return &cst.AssignEqual{WhitespaceBefore: before, WhitespaceAfter: p.whitespace()}
}

// exprStatement parses an expression statement or any kind of assignment.
func (p *parser) exprStatement() cst.SmallStatement {
	var first cst.Expression
	if p.peekKeyword("yield") {
		first = p.yieldExpr()
	} else {
		first = p.testlistStarExpr()
	}

	tok := p.peek()
	switch {
	case isOp(tok, ":"):
		before := p.whitespace()
		p.advance()
		after := p.whitespace()
		n := &cst.AnnAssign{
			Target: first,
			Annotation: &cst.Annotation{
				WhitespaceBeforeIndicator: cst.Some(before),
				WhitespaceAfterIndicator:  after,
				Annotation:                p.test(),
			},
		}
		if p.peekOp("=") {
			n.Equal = cst.Some(p.assignEqual())
			n.Value = p.yieldOrTestlist()
		}
		n.Semicolon = p.semicolon()
		return n

	case tok.kind == tokenOp && augOps[tok.text] != cst.InvalidKind:
		if tok.text == "@=" && !p.version.atLeast(5) {
			p.fail(tok.start, "the '@=' operator requires Python 3.5 or later")
		}
		before := p.whitespace()
		p.advance()
		after := p.whitespace()
		return &cst.AugAssign{
			Target:    first,
			Operator:  &cst.AugOp{Op: augOps[tok.text], WhitespaceBefore: before, WhitespaceAfter: after},
			Value:     p.yieldOrTestlist(),
			Semicolon: p.semicolon(),
		}

	case isOp(tok, "="):
		n := &cst.Assign{}
		value := first
		for p.peekOp("=") {
			before := p.simpleWhitespace()
			p.advance()
			after := p.simpleWhitespace()
			n.Targets = append(n.Targets, &cst.AssignTarget{
				Target:                value,
				WhitespaceBeforeEqual: before,
				WhitespaceAfterEqual:  after,
			})
			value = p.yieldOrTestlist()
		}
		n.Value = value
		n.Semicolon = p.semicolon()
		return n

	default:
		return &cst.Expr{Value: first, Semicolon: p.semicolon()}
	}
}

func (p *parser) yieldOrTestlist() cst.Expression {
	if p.peekKeyword("yield") {
		return p.yieldExpr()
	}
	return p.testlistStarExpr()
}
