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
	"unicode/utf8"

	"github.com/bufbuild/pycst/internal/ext/unicodex"
	"github.com/bufbuild/pycst/internal/trie"
)

//go:generate go run ../internal/enum token_kind.yaml

// token is a single token of Python source. Whitespace and comments are not
// tokens; the parser claims them from the source between tokens.
type token struct {
	kind       tokenKind
	start, end int
	// The text of the token. For an indent, this is the full indentation of
	// the line that opens the block. Indents and dedents are zero-width, and
	// sit at the first token of the line they belong to.
	text string
}

func (t token) describe() string {
	switch t.kind {
	case tokenName, tokenOp, tokenNumber:
		return "'" + t.text + "'"
	default:
		return t.kind.String()
	}
}

type runeReader struct {
	data string
	pos  int
	end  int
	mark int
}

func (rr *runeReader) eof() bool {
	return rr.pos >= rr.end
}

// peek returns the byte i bytes past the current position, or 0 past the end.
func (rr *runeReader) peek(i int) byte {
	if rr.pos+i >= rr.end {
		return 0
	}
	return rr.data[rr.pos+i]
}

func (rr *runeReader) peekRune() (rune, int) {
	return utf8.DecodeRuneInString(rr.data[rr.pos:rr.end])
}

func (rr *runeReader) rest() string {
	return rr.data[rr.pos:rr.end]
}

func (rr *runeReader) setMark() {
	rr.mark = rr.pos
}

func (rr *runeReader) getMark() string {
	return rr.data[rr.mark:rr.pos]
}

var (
	numberPattern = regexp.MustCompile(`^(?:` +
		`0[xX](?:_?[0-9a-fA-F])+|` +
		`0[oO](?:_?[0-7])+|` +
		`0[bB](?:_?[01])+|` +
		`(?:[0-9](?:_?[0-9])*\.(?:[0-9](?:_?[0-9])*)?|\.[0-9](?:_?[0-9])*|[0-9](?:_?[0-9])*)` +
		`(?:[eE][+-]?[0-9](?:_?[0-9])*)?[jJ]?)`)

	operators = func() *trie.Trie[struct{}] {
		t := new(trie.Trie[struct{}])
		for _, op := range []string{
			"**=", "//=", ">>=", "<<=", "...",
			"->", "**", "//", "<<", ">>", "<=", ">=", "==", "!=",
			"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "@=",
			"(", ")", "[", "]", "{", "}", ":", ",", ";", ".",
			"+", "-", "*", "/", "%", "&", "|", "^", "~", "<", ">", "=", "@",
		} {
			t.Insert(op, struct{}{})
		}
		return t
	}()
)

// lexer splits source into tokens, including the newline, indent and dedent
// tokens that delimit Python's logical lines and blocks.
type lexer struct {
	input   *runeReader
	version version

	tokens []token
	// The absolute indentation of each open block. The first entry is the
	// module's, which is always "".
	indents []string
	// The offsets of the open brackets. An entry of -1 is the implicit
	// bracket around a lone expression.
	brackets []int
}

// tokenize splits src[start:end] into tokens. If inBrackets is set, the text
// is treated as though it were surrounded by parentheses, so newlines and
// indentation are insignificant.
func tokenize(src string, start, end int, inBrackets bool, v version) (tokens []token, err *SyntaxError) {
	l := &lexer{
		input:   &runeReader{data: src, pos: start, end: end},
		version: v,
		indents: []string{""},
	}
	if inBrackets {
		l.brackets = append(l.brackets, -1)
	}

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			tokens, err = nil, b.err
		}
	}()
	l.run()
	return l.tokens, nil
}

func (l *lexer) fail(offset int, format string, args ...any) {
	panic(bailout{newSyntaxError(l.input.data, offset, format, args...)})
}

func (l *lexer) emit(kind tokenKind) {
	l.tokens = append(l.tokens, token{
		kind:  kind,
		start: l.input.mark,
		end:   l.input.pos,
		text:  l.input.getMark(),
	})
}

func (l *lexer) run() {
	in := l.input
	atLineStart := len(l.brackets) == 0
	for {
		if atLineStart {
			atLineStart = false
			l.indentation()
		}
		l.skipWhitespace()
		if in.eof() {
			break
		}

		in.setMark()
		c := in.peek(0)
		switch {
		case c == '\n' || c == '\r':
			in.pos += newlineLen(in.data, in.pos, in.end)
			if len(l.brackets) > 0 {
				continue
			}
			l.emit(tokenNewline)
			atLineStart = true
		case isDigit(c) || (c == '.' && isDigit(in.peek(1))):
			l.number()
		case c == '"' || c == '\'':
			l.string()
		case c == '_' || (c|0x20 >= 'a' && c|0x20 <= 'z') || c >= utf8.RuneSelf:
			l.name()
		default:
			l.operator()
		}
	}
	l.finish()
}

// indentation handles the start of a logical line: it skips blank and
// comment-only lines, then emits the indents or dedents needed to reach the
// indentation of the next line of code.
func (l *lexer) indentation() {
	in := l.input
	for {
		start := in.pos
		for !in.eof() && isSpace(in.peek(0)) {
			in.pos++
		}
		indent := in.data[start:in.pos]
		if in.peek(0) == '#' {
			l.skipComment()
		}
		if in.eof() {
			return
		}
		if n := newlineLen(in.data, in.pos, in.end); n > 0 {
			in.pos += n
			continue
		}
		l.indent(indent)
		return
	}
}

func (l *lexer) indent(indent string) {
	at := l.input.pos
	top := l.indents[len(l.indents)-1]
	switch {
	case indent == top:
	case strings.HasPrefix(indent, top):
		l.indents = append(l.indents, indent)
		l.tokens = append(l.tokens, token{kind: tokenIndent, start: at, end: at, text: indent})
	case !strings.HasPrefix(top, indent):
		l.fail(at, "inconsistent use of tabs and spaces in indentation")
	default:
		for len(l.indents) > 1 && len(l.indents[len(l.indents)-1]) > len(indent) {
			l.indents = l.indents[:len(l.indents)-1]
			l.tokens = append(l.tokens, token{kind: tokenDedent, start: at, end: at})
		}
		if l.indents[len(l.indents)-1] != indent {
			l.fail(at, "unindent does not match any outer indentation level")
		}
	}
}

// skipWhitespace skips spaces, line continuations and comments.
func (l *lexer) skipWhitespace() {
	in := l.input
	for !in.eof() {
		switch c := in.peek(0); c {
		case ' ', '\t', '\f':
			in.pos++
		case '\\':
			n := newlineLen(in.data, in.pos+1, in.end)
			if n == 0 {
				l.fail(in.pos, "unexpected character after line continuation character")
			}
			in.pos += 1 + n
		case '#':
			l.skipComment()
		default:
			return
		}
	}
}

func (l *lexer) skipComment() {
	in := l.input
	for !in.eof() && in.peek(0) != '\n' && in.peek(0) != '\r' {
		in.pos++
	}
}

func (l *lexer) name() {
	in := l.input
	r, size := in.peekRune()
	if !unicodex.IsXIDStart(r) {
		l.fail(in.pos, "invalid character %q (U+%04X)", r, r)
	}
	in.pos += size
	for !in.eof() {
		r, size := in.peekRune()
		if !unicodex.IsXIDContinue(r) {
			break
		}
		in.pos += size
	}

	if q := in.peek(0); q == '"' || q == '\'' {
		if prefix := in.getMark(); l.isStringPrefix(prefix) {
			l.string()
			return
		}
	}
	l.emit(tokenName)
}

func (l *lexer) isStringPrefix(prefix string) bool {
	switch strings.ToLower(prefix) {
	case "r", "b", "br", "rb":
		return true
	case "u":
		return l.version.atLeast(3)
	case "f", "fr", "rf":
		if !l.version.atLeast(6) {
			l.fail(l.input.mark, "f-strings require Python 3.6 or later")
		}
		return true
	default:
		return false
	}
}

// string scans a string literal. The mark must be at the start of its
// prefix, and the input at its opening quote.
func (l *lexer) string() {
	in := l.input
	q := in.peek(0)
	triple := in.peek(1) == q && in.peek(2) == q
	if triple {
		in.pos += 3
	} else {
		in.pos++
	}

	for {
		if in.eof() {
			if triple {
				l.fail(in.mark, "EOF while scanning triple-quoted string literal")
			}
			l.fail(in.mark, "EOL while scanning string literal")
		}
		switch c := in.peek(0); {
		case c == '\\':
			in.pos++
			if n := newlineLen(in.data, in.pos, in.end); n > 0 {
				in.pos += n
			} else if !in.eof() {
				in.pos++
			}
		case c == q:
			if !triple {
				in.pos++
				l.emit(tokenString)
				return
			}
			if in.peek(1) == q && in.peek(2) == q {
				in.pos += 3
				l.emit(tokenString)
				return
			}
			in.pos++
		case c == '\n' || c == '\r':
			if !triple {
				l.fail(in.mark, "EOL while scanning string literal")
			}
			in.pos++
		default:
			in.pos++
		}
	}
}

func (l *lexer) number() {
	in := l.input
	text := numberPattern.FindString(in.rest())
	if strings.Contains(text, "_") && !l.version.atLeast(6) {
		l.fail(in.pos, "underscores in numeric literals require Python 3.6 or later")
	}
	if len(text) > 1 && text[0] == '0' && strings.Trim(text, "0123456789_") == "" && strings.Trim(text, "0_") != "" {
		l.fail(in.pos, "leading zeros in decimal integer literals are not permitted; use an 0o prefix for octal integers")
	}
	if base, name := prefixedBase(text); base != 0 {
		if next := in.rest()[len(text):]; next != "" {
			if d, ok := unicodex.Digit(rune(next[0]), 10); ok && d >= base {
				l.fail(in.pos+len(text), "invalid digit '%c' in %s literal", next[0], name)
			}
		}
	}
	in.pos += len(text)
	l.emit(tokenNumber)
}

// prefixedBase returns the base of a binary or octal literal.
func prefixedBase(text string) (byte, string) {
	if len(text) < 2 || text[0] != '0' {
		return 0, ""
	}
	switch text[1] | 0x20 {
	case 'b':
		return 2, "binary"
	case 'o':
		return 8, "octal"
	}
	return 0, ""
}

func (l *lexer) operator() {
	in := l.input
	op, _, ok := operators.Get(in.rest())
	if !ok {
		r, _ := in.peekRune()
		l.fail(in.pos, "invalid character %q (U+%04X)", r, r)
	}
	switch c := op[0]; {
	case len(op) > 1:
	case c == '(' || c == '[' || c == '{':
		l.brackets = append(l.brackets, in.pos)
	case c == ')' || c == ']' || c == '}':
		if len(l.brackets) == 0 || l.brackets[len(l.brackets)-1] < 0 {
			l.fail(in.pos, "unmatched '%c'", c)
		}
		open := in.data[l.brackets[len(l.brackets)-1]]
		if closingBracket(open) != c {
			l.fail(in.pos, "closing parenthesis '%c' does not match opening parenthesis '%c'", c, open)
		}
		l.brackets = l.brackets[:len(l.brackets)-1]
	}
	in.pos += len(op)
	l.emit(tokenOp)
}

func (l *lexer) finish() {
	in := l.input
	if n := len(l.brackets); n > 0 && l.brackets[n-1] >= 0 {
		l.fail(l.brackets[n-1], "'%c' was never closed", in.data[l.brackets[n-1]])
	}
	if len(l.brackets) == 0 && len(l.tokens) > 0 {
		if last := l.tokens[len(l.tokens)-1]; last.kind != tokenNewline && last.kind != tokenDedent {
			l.fail(in.end, "unexpected EOF while parsing")
		}
	}

	in.setMark()
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.emit(tokenDedent)
	}
	l.emit(tokenEOF)
}

func closingBracket(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	default:
		return '}'
	}
}

// newlineLen returns the length of the line ending at src[i:end], or zero if
// there is not one.
func newlineLen(src string, i, end int) int {
	switch {
	case i >= end:
		return 0
	case src[i] == '\n':
		return 1
	case src[i] == '\r':
		if i+1 < end && src[i+1] == '\n' {
			return 2
		}
		return 1
	default:
		return 0
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
