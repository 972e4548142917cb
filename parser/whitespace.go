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

// indent returns the absolute indentation of the innermost open block.
func (p *parser) indent() string {
	return p.indents[len(p.indents)-1]
}

func (p *parser) at(i int) byte {
	if p.cursor+i >= p.end {
		return 0
	}
	return p.src[p.cursor+i]
}

// spaces claims spaces, tabs and form feeds.
func (p *parser) spaces() *cst.SimpleWhitespace {
	start := p.cursor
	for p.cursor < p.end && isSpace(p.src[p.cursor]) {
		p.cursor++
	}
	return &cst.SimpleWhitespace{Value: p.src[start:p.cursor]}
}

// simpleWhitespace claims spaces, tabs, form feeds and line continuations.
func (p *parser) simpleWhitespace() *cst.SimpleWhitespace {
	start := p.cursor
	for p.cursor < p.end {
		if isSpace(p.src[p.cursor]) {
			p.cursor++
			continue
		}
		if p.src[p.cursor] == '\\' {
			if n := newlineLen(p.src, p.cursor+1, p.end); n > 0 {
				p.cursor += 1 + n
				continue
			}
		}
		break
	}
	return &cst.SimpleWhitespace{Value: p.src[start:p.cursor]}
}

// whitespace claims the whitespace in front of the next token. Inside of
// brackets this may span several lines.
func (p *parser) whitespace() cst.ParenthesizableWhitespace {
	if p.depth == 0 {
		return p.simpleWhitespace()
	}
	start := p.cursor
	ws := p.simpleWhitespace()
	if p.at(0) != '#' && newlineLen(p.src, p.cursor, p.end) == 0 {
		return ws
	}

	p.cursor = start
	first := p.trailingWhitespace()
	lines := p.emptyLines(len(p.scanEmptyLines()))
	indent := p.lineIndent()
	return &cst.ParenthesizedWhitespace{
		FirstLine:  first,
		EmptyLines: lines,
		Indent:     indent,
		LastLine:   p.simpleWhitespace(),
	}
}

func (p *parser) comment() *cst.Comment {
	if p.at(0) != '#' {
		return nil
	}
	start := p.cursor
	for p.cursor < p.end && p.src[p.cursor] != '\n' && p.src[p.cursor] != '\r' {
		p.cursor++
	}
	return &cst.Comment{Value: p.src[start:p.cursor]}
}

func (p *parser) newline() *cst.Newline {
	n := newlineLen(p.src, p.cursor, p.end)
	if n == 0 {
		p.fail(p.cursor, "expected newline")
	}
	p.cursor += n
	return &cst.Newline{Value: p.src[p.cursor-n : p.cursor]}
}

// trailingWhitespace claims the rest of a line.
func (p *parser) trailingWhitespace() *cst.TrailingWhitespace {
	return &cst.TrailingWhitespace{
		Whitespace: p.simpleWhitespace(),
		Comment:    p.comment(),
		Newline:    p.newline(),
	}
}

// endOfLine claims the rest of a line that ends a logical line of code,
// including its newline token.
func (p *parser) endOfLine() *cst.TrailingWhitespace {
	tok := p.peek()
	if tok.kind != tokenNewline {
		p.unexpected(tok)
	}
	tw := p.trailingWhitespace()
	if p.cursor != tok.end {
		p.fail(p.cursor, "internal error: newline token at %d, cursor at %d", tok.end, p.cursor)
	}
	p.next++
	return tw
}

// lineIndent claims the indentation of the current block at the start of a
// line, if the line has it.
func (p *parser) lineIndent() bool {
	indent := p.indent()
	if !strings.HasPrefix(p.src[p.cursor:p.end], indent) {
		return false
	}
	p.cursor += len(indent)
	return true
}

// skipIndent claims the indentation in front of a statement, which the
// lexer has already checked.
func (p *parser) skipIndent() {
	if !p.lineIndent() {
		p.fail(p.cursor, "unindent does not match any outer indentation level")
	}
}

// emptyLineInfo describes a line with no code on it.
type emptyLineInfo struct {
	comment bool
	// The whitespace at the start of the line.
	leading string
}

// scanEmptyLines returns the lines with no code on them that start at the
// cursor, without claiming them.
func (p *parser) scanEmptyLines() []emptyLineInfo {
	var lines []emptyLineInfo
	i := p.cursor
	for i < p.end {
		j := i
		for j < p.end && isSpace(p.src[j]) {
			j++
		}
		info := emptyLineInfo{leading: p.src[i:j]}
		if j < p.end && p.src[j] == '#' {
			info.comment = true
			for j < p.end && p.src[j] != '\n' && p.src[j] != '\r' {
				j++
			}
		}
		n := newlineLen(p.src, j, p.end)
		if n == 0 {
			break
		}
		lines = append(lines, info)
		i = j + n
	}
	return lines
}

// emptyLines claims the next n lines, which must have no code on them.
func (p *parser) emptyLines(n int) []*cst.EmptyLine {
	if n == 0 {
		return nil
	}
	lines := make([]*cst.EmptyLine, n)
	for i := range lines {
		lines[i] = &cst.EmptyLine{
			Indent:     p.lineIndent(),
			Whitespace: p.spaces(),
			Comment:    p.comment(),
			Newline:    p.newline(),
		}
	}
	return lines
}

// leadingLines claims every line with no code on it before the next
// statement.
func (p *parser) leadingLines() []*cst.EmptyLine {
	return p.emptyLines(len(p.scanEmptyLines()))
}

// footer claims the lines at the end of the current block that belong to it:
// everything up to the last comment that is indented at least as deeply as
// the block.
func (p *parser) footer() []*cst.EmptyLine {
	lines := p.scanEmptyLines()
	n := 0
	for i, line := range lines {
		if line.comment && strings.HasPrefix(line.leading, p.indent()) {
			n = i + 1
		}
	}
	return p.emptyLines(n)
}

// header claims the lines at the top of a module that are separated from the
// first statement by a blank line. If there are no statements, every line
// belongs to the header.
func (p *parser) header() []*cst.EmptyLine {
	lines := p.scanEmptyLines()
	if p.peek().kind == tokenEOF {
		return p.emptyLines(len(lines))
	}
	n := 0
	for i, line := range lines {
		if !line.comment {
			n = i + 1
		}
	}
	return p.emptyLines(n)
}
