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

// fstring parses a formatted string literal into its literal text and
// replacement fields. Each field's expression is parsed by a separate parser
// over the same source, so positions stay absolute.
func (p *parser) fstring() *cst.FormattedString {
	tok := p.advance()
	q := strings.IndexAny(tok.text, `'"`)
	quote := tok.text[q : q+1]
	if len(tok.text)-q >= 6 && strings.HasPrefix(tok.text[q:], strings.Repeat(quote, 3)) {
		quote = strings.Repeat(quote, 3)
	}
	raw := strings.ContainsAny(tok.text[:q], "rR")

	start := tok.start + q + len(quote)
	end := tok.end - len(quote)
	parts, _ := p.fstringParts(start, end, raw, false)
	return &cst.FormattedString{
		Start: tok.text[:q+len(quote)],
		Parts: parts,
		End:   quote,
	}
}

// fstringParts splits src[start:end] into text and replacement fields. In a
// format spec, an unmatched '}' ends the parts, and its offset is returned.
func (p *parser) fstringParts(start, end int, raw, inSpec bool) ([]cst.FormattedStringContent, int) {
	var parts []cst.FormattedStringContent
	text := start
	flush := func(i int) {
		if i > text {
			parts = append(parts, &cst.FormattedStringText{Value: p.src[text:i]})
		}
	}

	i := start
	for i < end {
		c := p.src[i]
		switch {
		case c == '\\' && !raw:
			if i+2 < end && p.src[i+1] == 'N' && p.src[i+2] == '{' {
				close := strings.IndexByte(p.src[i+3:end], '}')
				if close < 0 {
					p.fail(i, "malformed \\N character escape")
				}
				i += 3 + close + 1
			} else {
				i += 2
			}
		case !inSpec && c == '{' && i+1 < end && p.src[i+1] == '{',
			!inSpec && c == '}' && i+1 < end && p.src[i+1] == '}':
			i += 2
		case c == '{':
			flush(i)
			field, next := p.fstringField(i, end, raw)
			parts = append(parts, field)
			i, text = next, next
		case c == '}':
			if inSpec {
				flush(i)
				return parts, i
			}
			p.fail(i, "f-string: single '}' is not allowed")
		default:
			i++
		}
	}
	if inSpec {
		p.fail(end, "f-string: expecting '}'")
	}
	flush(end)
	return parts, end
}

// fstringField parses the replacement field starting at the '{' at open, and
// returns the offset just past its closing '}'.
func (p *parser) fstringField(open, end int, raw bool) (*cst.FormattedStringExpression, int) {
	i := open + 1
	depth := 0
scan:
	for ; i < end; i++ {
		switch c := p.src[i]; c {
		case '\'', '"':
			j := strings.IndexByte(p.src[i+1:end], c)
			if j < 0 {
				p.fail(i, "f-string: unterminated string")
			}
			i += 1 + j
		case '(', '[', '{':
			depth++
		case ')', ']':
			depth--
		case '}':
			if depth == 0 {
				break scan
			}
			depth--
		case '!':
			if depth == 0 && (i+1 >= end || p.src[i+1] != '=') {
				break scan
			}
			i++
		case ':':
			if depth == 0 {
				break scan
			}
		case '#':
			p.fail(i, "f-string expression part cannot include '#'")
		case '\\':
			p.fail(i, "f-string expression part cannot include a backslash")
		}
	}
	if i >= end {
		p.fail(open, "f-string: expecting '}'")
	}

	sub, err := newParser(p.src, open+1, i, true, p.version)
	if err != nil {
		panic(bailout{err})
	}
	sub.indents = p.indents
	sub.inAsync = p.inAsync

	field := &cst.FormattedStringExpression{WhitespaceBeforeExpression: sub.whitespace()}
	if sub.peek().kind == tokenEOF {
		p.fail(open, "f-string: empty expression not allowed")
	}
	if sub.peekKeyword("yield") {
		field.Expression = sub.yieldExpr()
	} else {
		field.Expression = sub.testlistStarExpr()
	}
	field.WhitespaceAfterExpression = sub.whitespace()
	if tok := sub.peek(); tok.kind != tokenEOF {
		sub.unexpected(tok)
	}

	if p.src[i] == '!' {
		if i+1 >= end || strings.IndexByte("rsa", p.src[i+1]) < 0 {
			p.fail(i, "f-string: invalid conversion character: expected 's', 'r', or 'a'")
		}
		field.Conversion = p.src[i+1 : i+2]
		i += 2
	}
	if i < end && p.src[i] == ':' {
		spec, stop := p.fstringParts(i+1, end, raw, true)
		if len(spec) == 0 {
			spec = []cst.FormattedStringContent{&cst.FormattedStringText{}}
		}
		field.FormatSpec = spec
		i = stop
	}
	if i >= end || p.src[i] != '}' {
		p.fail(i, "f-string: expecting '}'")
	}
	return field, i + 1
}
