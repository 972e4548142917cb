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
	"regexp"
	"strings"

	"github.com/bufbuild/pycst/cst"
)

// ParseModule parses the source of a whole Python file.
//
// If the source does not end in a newline, the returned module records that,
// so that its code is still identical to the source.
func ParseModule(source string, config Config) (*cst.Module, error) {
	v, err := config.version()
	if err != nil {
		return nil, err
	}

	newline := detectNewline(source, config.DefaultNewline)
	src := source
	hasTrailingNewline := strings.HasSuffix(src, "\n") || strings.HasSuffix(src, "\r")
	if !hasTrailingNewline {
		src += newline
	}

	p, serr := newParser(src, 0, len(src), false, v)
	if serr != nil {
		return nil, serr
	}
	var mod *cst.Module
	if serr := p.run(func() { mod = p.module() }); serr != nil {
		return nil, serr
	}

	mod.Encoding = detectEncoding(source, config.Encoding)
	mod.DefaultNewline = newline
	mod.DefaultIndent = p.detectIndent(config.DefaultIndent)
	mod.HasTrailingNewline = hasTrailingNewline
	return mod, nil
}

// ParseStatement parses a single statement, which may be a compound statement
// such as a function definition. Leading comments and blank lines are
// attached to the statement. A newline is appended to source that does not
// end in one.
func ParseStatement(source string, config Config) (cst.Statement, error) {
	v, err := config.version()
	if err != nil {
		return nil, err
	}

	src := source
	if !strings.HasSuffix(src, "\n") && !strings.HasSuffix(src, "\r") {
		src += detectNewline(source, config.DefaultNewline)
	}

	p, serr := newParser(src, 0, len(src), false, v)
	if serr != nil {
		return nil, serr
	}
	var stmt cst.Statement
	serr = p.run(func() {
		if p.peek().kind == tokenEOF {
			p.fail(0, "expected a statement")
		}
		stmt = p.statement()
		if tok := p.peek(); tok.kind != tokenEOF {
			p.fail(tok.start, "expected a single statement, found %s", tok.describe())
		}
		if p.cursor != p.end {
			p.fail(p.cursor, "unexpected text after statement")
		}
	})
	if serr != nil {
		return nil, serr
	}
	return stmt, nil
}

// ParseExpression parses a single expression, such as "a + b" or "x, y". The
// source may span several lines, but must not begin or end with whitespace.
func ParseExpression(source string, config Config) (cst.Expression, error) {
	v, err := config.version()
	if err != nil {
		return nil, err
	}

	p, serr := newParser(source, 0, len(source), true, v)
	if serr != nil {
		return nil, serr
	}
	var expr cst.Expression
	serr = p.run(func() {
		if tok := p.peek(); tok.kind == tokenEOF {
			p.fail(0, "expected an expression")
		} else if tok.start != 0 {
			p.fail(0, "expression cannot begin with whitespace")
		}
		expr = p.testlistStarExpr()
		if tok := p.peek(); tok.kind != tokenEOF {
			p.fail(tok.start, "invalid syntax: unexpected %s", tok.describe())
		}
		if p.cursor != p.end {
			p.fail(p.cursor, "expression cannot end with whitespace")
		}
	})
	if serr != nil {
		return nil, serr
	}
	return expr, nil
}

// bailout carries a syntax error up through a panic to the entry point of the
// parser or lexer that raised it.
type bailout struct {
	err *SyntaxError
}

// parser is a recursive-descent parser over the tokens of Python source.
//
// Tokens do not include whitespace. The parser tracks a cursor into the
// source, and every grammar production claims the whitespace in front of the
// tokens it consumes, so that every byte ends up in exactly one node.
// Expressions never claim whitespace around themselves: that belongs to the
// operator, bracket or keyword next to them.
type parser struct {
	src     string
	end     int
	version version

	tokens []token
	next   int
	cursor int
	// The number of brackets the cursor is inside of.
	depth int
	// The absolute indentation of each open block.
	indents []string
	// Whether the parser is in the body of an async function, where "await"
	// is a keyword before Python 3.7.
	inAsync bool
}

func newParser(src string, start, end int, inBrackets bool, v version) (*parser, *SyntaxError) {
	tokens, err := tokenize(src, start, end, inBrackets, v)
	if err != nil {
		return nil, err
	}
	p := &parser{
		src:     src,
		end:     end,
		version: v,
		tokens:  tokens,
		cursor:  start,
		indents: []string{""},
	}
	if inBrackets {
		p.depth = 1
	}
	return p, nil
}

// run calls f, turning a bailout into an error.
func (p *parser) run(f func()) (err *SyntaxError) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			err = b.err
		}
	}()
	f()
	return nil
}

func (p *parser) fail(offset int, format string, args ...any) {
	panic(bailout{newSyntaxError(p.src, offset, format, args...)})
}

// unexpected fails at tok, which the grammar does not allow where it is.
func (p *parser) unexpected(tok token) {
	switch tok.kind {
	case tokenIndent:
		p.fail(tok.start, "unexpected indent")
	case tokenDedent:
		p.fail(tok.start, "unexpected unindent")
	case tokenEOF:
		p.fail(tok.start, "unexpected EOF while parsing")
	default:
		p.fail(tok.start, "invalid syntax: unexpected %s", tok.describe())
	}
}

func (p *parser) peek() token {
	return p.tokens[p.next]
}

// peekAt returns the token n tokens ahead of the next one.
func (p *parser) peekAt(n int) token {
	return p.tokens[min(p.next+n, len(p.tokens)-1)]
}

func (p *parser) peekOp(ops ...string) bool {
	tok := p.peek()
	if tok.kind != tokenOp {
		return false
	}
	for _, op := range ops {
		if tok.text == op {
			return true
		}
	}
	return false
}

func (p *parser) peekKeyword(keyword string) bool {
	return isKeyword(p.peek(), keyword)
}

func isKeyword(tok token, keyword string) bool {
	return tok.kind == tokenName && tok.text == keyword
}

func isOp(tok token, op string) bool {
	return tok.kind == tokenOp && tok.text == op
}

// isReserved returns whether a name token is a keyword, and so cannot be used
// as an identifier.
func (p *parser) isReserved(tok token) bool {
	switch tok.text {
	case "async":
		return p.version.atLeast(7)
	case "await":
		return p.version.atLeast(7) || (p.version.atLeast(5) && p.inAsync)
	case "True", "False", "None":
		return false
	default:
		return cst.IsKeyword(tok.text)
	}
}

// peekAsync returns whether the next token is an "async" that starts an
// async def, for or with.
func (p *parser) peekAsync() bool {
	if !p.peekKeyword("async") || !p.version.atLeast(5) {
		return false
	}
	next := p.peekAt(1)
	switch {
	case isKeyword(next, "def"):
		return true
	case isKeyword(next, "for"), isKeyword(next, "with"):
		return p.version.atLeast(7) || p.inAsync
	default:
		return false
	}
}

// advance consumes the next token. All of the source before it must already
// have been claimed.
func (p *parser) advance() token {
	tok := p.tokens[p.next]
	if tok.start != p.cursor {
		p.fail(p.cursor, "internal error: unclaimed text %q before %s", p.src[p.cursor:tok.start], tok.describe())
	}
	p.cursor = tok.end
	p.next++
	if tok.kind == tokenOp {
		switch tok.text {
		case "(", "[", "{":
			p.depth++
		case ")", "]", "}":
			p.depth--
		}
	}
	return tok
}

func (p *parser) expectOp(op string) token {
	if tok := p.peek(); !isOp(tok, op) {
		p.fail(tok.start, "expected '%s', found %s", op, tok.describe())
	}
	return p.advance()
}

func (p *parser) expectKeyword(keyword string) token {
	if tok := p.peek(); !isKeyword(tok, keyword) {
		p.fail(tok.start, "expected '%s', found %s", keyword, tok.describe())
	}
	return p.advance()
}

func (p *parser) detectIndent(fallback string) string {
	for _, tok := range p.tokens {
		if tok.kind == tokenIndent {
			return tok.text
		}
	}
	if fallback != "" {
		return fallback
	}
	return cst.DefaultIndent
}

func detectNewline(src, fallback string) string {
	if i := strings.IndexAny(src, "\r\n"); i >= 0 {
		if src[i] == '\n' {
			return "\n"
		}
		if i+1 < len(src) && src[i+1] == '\n' {
			return "\r\n"
		}
		return "\r"
	}
	if fallback != "" {
		return fallback
	}
	return cst.DefaultNewline
}

var codingPattern = regexp.MustCompile(`^[ \t\f]*#.*?coding[:=][ \t]*([-\w.]+)`)

// detectEncoding looks for a coding comment in the first two lines of src.
func detectEncoding(src, configured string) string {
	if configured != "" {
		return configured
	}
	lines := strings.SplitN(src, "\n", 3)
	for i, line := range lines {
		if i == 2 {
			break
		}
		if m := codingPattern.FindStringSubmatch(line); m != nil {
			return strings.ToLower(m[1])
		}
		if strings.TrimSpace(line) != "" && !strings.HasPrefix(strings.TrimSpace(line), "#") {
			break
		}
	}
	return "utf-8"
}
