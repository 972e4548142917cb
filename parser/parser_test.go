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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/pycst/cst"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	sources := map[string]string{
		"empty":               "",
		"only-newline":        "\n",
		"only-comment":        "# just a comment\n",
		"no-trailing-newline": "x = 1",
		"assign":              "x = 1\n",
		"multi-assign":        "a = b = c\n",
		"aug-assign":          "x += 1\ny //= 2\nz @= w\n",
		"ann-assign":          "x: int = 5\ny : List[int]\n",
		"tuple-assign":        "a, b = b, a\n",
		"single-tuple":        "x = 1,\n",
		"starred-assign":      "first, *rest = items\n",
		"semicolons":          "a = 1; b = 2;\n",
		"header":              "#!/usr/bin/env python\n# comment\n\nimport os\n",
		"trailing-comment":    "x = 1  # the answer\n",
		"crlf":                "x = 1\r\ny = 2\r\n",
		"continuation":        "x = 1 + \\\n    2\n",
		"pass-break-continue": "while True:\n    pass\n    break\n    continue\n",
		"return":              "def f():\n    return\n\ndef g():\n    return  a, b\n",
		"raise":               "raise\nraise ValueError('x') from  err\n",
		"global":              "def f():\n    global a, b\n    nonlocal c\n",
		"del":                 "del a, b[0], c.d\n",
		"assert":              "assert x, 'message'\nassert  y\n",
		"import":              "import os\nimport os.path as p, sys\n",
		"import-from":         "from a.b import c as d, e\nfrom . import x\nfrom ..pkg import *\nfrom ... import y\n",
		"import-from-parens":  "from a import (\n    b,\n    c as d,  # comment\n)\n",
		"relative-spaces":     "from . . mod import x\n",
		"if":                  "if x:\n    a\nelif y:\n    b\nelse:\n    c\n",
		"if-simple-suite":     "if x: a; b\nelse: c\n",
		"while-else":          "while x:\n    pass\nelse:\n    pass\n",
		"for":                 "for i, x in enumerate(y):\n    print(i, x)\nelse:\n    pass\n",
		"try":                 "try:\n    pass\nexcept ValueError as e:\n    pass\nexcept (A, B):\n    pass\nexcept:\n    pass\nelse:\n    pass\nfinally:\n    pass\n",
		"try-finally":         "try:\n    pass\nfinally:\n    pass\n",
		"with":                "with open(f) as fp, lock:\n    pass\n",
		"def":                 "def f(a, b=1, *args, c, d=2, **kwargs) -> int:\n    return a\n",
		"def-bare-star":       "def f(a, *, b):\n    pass\n",
		"def-annotations":     "def f(a: int, b: str = 'x') -> None:\n    pass\n",
		"def-multiline":       "def f(\n    a,\n    b,  # comment\n):\n    pass\n",
		"def-empty-params":    "def f( ):\n    pass\n",
		"decorators":          "@dec\n\n@dec2(1, x=2)\ndef f():\n    pass\n",
		"decorated-class":     "@dataclass\nclass A:\n    x: int\n",
		"class":               "class A(B, metaclass=M):\n    x = 1\n\n    def f(self):\n        return self.x\n",
		"class-empty-parens":  "class A():\n    pass\n",
		"async":               "async def f():\n    await x\n    async for a in b:\n        pass\n    async with c as d:\n        pass\n",
		"nested-blocks":       "def f():\n    if x:\n        pass\n        # trailing\n    # end of f\n\n# footer\n",
		"tabs":                "if x:\n\tpass\n",
		"blank-lines":         "x = 1\n\n\n\ny = 2\n\n",
		"comment-between":     "if x:\n    pass\n# between\nelse:\n    pass\n",
		"binary":              "x = a + b * c - d / e // f % g ** h\ny = a | b ^ c & d << e >> f\nz = a @ b\n",
		"unary":               "x = -a + ~b\ny = not  a\nz = - - x\n",
		"power":               "x = -2 ** -3\n",
		"boolean":             "x = a and b or not c\n",
		"comparison":          "x = a < b <= c != d\ny = a not  in b\nz = a is not b\nw = a in b\n",
		"ternary":             "x = a if b else c\n",
		"lambda":              "f = lambda: 0\ng = lambda x, *y, z=1, **w: x\nh = lambda *, a: a\n",
		"call":                "f()\nf (a, b)\nf(a, *args, k=v, **kwargs)\nf(x for x in y)\nf(a,)\n",
		"call-multiline":      "f(\n    a,\n    b\n)\n",
		"attribute":           "x = a.b.c\ny = a . b\n",
		"subscript":           "x[1]\nx[1:2]\nx[::2]\nx[a:b:c, d]\nx[1: ]\nx[:, None]\nx[...]\n",
		"list":                "x = []\ny = [1, 2, 3,]\nz = [*a, *b]\n",
		"dict":                "x = {}\ny = {'a': 1, 'b' : 2}\nz = {**a, 'b': 1}\n",
		"set":                 "x = {1, 2}\ny = {*a}\n",
		"comprehensions":      "a = [x for x in y if x if not z]\nb = {k: v for k, v in d.items()}\nc = {x for x in y}\nd = (x for x in y for z in x)\n",
		"async-comprehension": "async def f():\n    return [x async for x in y]\n",
		"parens":              "x = (1)\ny = ((a + b))\nz = ()\nw = (1,)\n",
		"parens-multiline":    "x = (\n    1 +  # comment\n    2\n)\n",
		"parens-nested-block": "def f():\n    x = (\n        1,\n\n        2,\n    )\n",
		"yield":               "def f():\n    yield\n    yield x\n    yield from y\n    x = yield\n    z = (yield a, b)\n",
		"strings":             "x = 'a'\ny = \"b\" 'c'\nz = r'\\d' u'x'\nv = b'x' B\"y\"\nw = '''\nmulti\n'''\n",
		"concatenated":        "x = ('a'\n     'b'\n     'c')\n",
		"numbers":             "x = 1, 1.5, .5, 1e10, 0x1F, 0o17, 0b101, 1_000, 3j, 1.5e-3J\n",
		"fstring":             "x = f'{a} and {b!r:>{width}} {{literal}}'\n",
		"fstring-nested":      "x = f\"{d['key']}\"\ny = f'{x:{\"a\"}}'\nz = f'{ x }' rf'\\{x}'\n",
		"fstring-triple":      "x = f'''\n{a\n + b}\n'''\n",
		"fstring-empty-spec":  "x = f'{a:}'\n",
		"fstring-tuple":       "x = f'{a, b}'\n",
		"fstring-named-esc":   "x = f'\\N{BULLET} {a}'\n",
		"ellipsis":            "def f(): ...\n",
		"star-expr-return":    "def f():\n    return *a, b\n",
		"print-call":          "print('hello', end='')\n",
		"keywords-as-attrs":   "x.match = 1\n",
		"unicode-name":        "café = 1\n",
		"empty-lines-in-block": "def f():\n\n    x = 1\n\n    y = 2\n",
		"deep-dedent":         "if a:\n    if b:\n        if c:\n            pass\nx = 1\n",
		"comment-after-colon": "if x:  # why\n    pass\n",
		"comment-in-brackets": "x = [  # open\n    1,\n    # between\n    2,\n]\n",
	}

	for name, source := range sources {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mod, err := ParseModule(source, Config{})
			require.NoError(t, err)
			assert.Equal(t, source, mod.Code())
			assert.NoError(t, cst.Validate(mod))
		})
	}
}

func TestParseModuleDefaults(t *testing.T) {
	t.Parallel()

	mod, err := ParseModule("if x:\r\n\tpass\r\n", Config{})
	require.NoError(t, err)
	assert.Equal(t, "\r\n", mod.DefaultNewline)
	assert.Equal(t, "\t", mod.DefaultIndent)
	assert.Equal(t, "utf-8", mod.Encoding)
	assert.True(t, mod.HasTrailingNewline)

	mod, err = ParseModule("# -*- coding: latin-1 -*-\nx = 1", Config{DefaultIndent: "  "})
	require.NoError(t, err)
	assert.Equal(t, "\n", mod.DefaultNewline)
	assert.Equal(t, "  ", mod.DefaultIndent)
	assert.Equal(t, "latin-1", mod.Encoding)
	assert.False(t, mod.HasTrailingNewline)
}

func TestParseModuleStructure(t *testing.T) {
	t.Parallel()

	mod, err := ParseModule("# header\n\n# leading\nx = 1\n# footer\n", Config{})
	require.NoError(t, err)
	require.Len(t, mod.Header, 2)
	assert.Equal(t, "# header", mod.Header[0].Comment.Value)
	require.Len(t, mod.Body, 1)
	line, ok := mod.Body[0].(*cst.SimpleStatementLine)
	require.True(t, ok)
	require.Len(t, line.LeadingLines, 1)
	assert.Equal(t, "# leading", line.LeadingLines[0].Comment.Value)
	require.Len(t, mod.Footer, 1)
	assert.Equal(t, "# footer", mod.Footer[0].Comment.Value)

	assign, ok := line.Body[0].(*cst.Assign)
	require.True(t, ok)
	require.Len(t, assign.Targets, 1)
	assert.Equal(t, "x", assign.Targets[0].Target.(*cst.Name).Value)
	assert.Equal(t, "1", assign.Value.(*cst.Integer).Value)
}

func TestParseIndentedBlock(t *testing.T) {
	t.Parallel()

	mod, err := ParseModule("def f():\n  if x:\n      pass\n", Config{})
	require.NoError(t, err)
	def, ok := mod.Body[0].(*cst.FunctionDef)
	require.True(t, ok)
	block, ok := def.Body.(*cst.IndentedBlock)
	require.True(t, ok)
	assert.Equal(t, "  ", block.Indent)
	inner, ok := block.Body[0].(*cst.If)
	require.True(t, ok)
	innerBlock, ok := inner.Body.(*cst.IndentedBlock)
	require.True(t, ok)
	assert.Equal(t, "    ", innerBlock.Indent)
}

func TestParseOperators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source string
		kind   cst.Kind
	}{
		{"a - b", cst.KindSubtract},
		{"a // b", cst.KindFloorDivide},
		{"a @ b", cst.KindMatrixMultiply},
		{"a ** b", cst.KindPower},
		{"a >> b", cst.KindRightShift},
	}
	for _, test := range tests {
		expr, err := ParseExpression(test.source, Config{})
		require.NoError(t, err, test.source)
		op, ok := expr.(*cst.BinaryOperation)
		require.True(t, ok, test.source)
		assert.Equal(t, test.kind, op.Operator.Op, test.source)
	}

	expr, err := ParseExpression("-a", Config{})
	require.NoError(t, err)
	unary, ok := expr.(*cst.UnaryOperation)
	require.True(t, ok)
	assert.Equal(t, cst.KindMinus, unary.Operator.Op)

	expr, err = ParseExpression("a is not b", Config{})
	require.NoError(t, err)
	cmp, ok := expr.(*cst.Comparison)
	require.True(t, ok)
	require.Len(t, cmp.Comparisons, 1)
	assert.Equal(t, cst.KindIsNot, cmp.Comparisons[0].Operator.Op)

	stmt, err := ParseStatement("x <<= 2", Config{})
	require.NoError(t, err)
	aug, ok := stmt.(*cst.SimpleStatementLine).Body[0].(*cst.AugAssign)
	require.True(t, ok)
	assert.Equal(t, cst.KindLeftShiftAssign, aug.Operator.Op)
}

func TestParsePrecedence(t *testing.T) {
	t.Parallel()

	expr, err := ParseExpression("a + b * c", Config{})
	require.NoError(t, err)
	add, ok := expr.(*cst.BinaryOperation)
	require.True(t, ok)
	assert.Equal(t, cst.KindAdd, add.Operator.Op)
	mul, ok := add.Right.(*cst.BinaryOperation)
	require.True(t, ok)
	assert.Equal(t, cst.KindMultiply, mul.Operator.Op)

	// Power binds tighter than the unary minus on its left.
	expr, err = ParseExpression("-a ** b", Config{})
	require.NoError(t, err)
	neg, ok := expr.(*cst.UnaryOperation)
	require.True(t, ok)
	_, ok = neg.Expression.(*cst.BinaryOperation)
	assert.True(t, ok)

	expr, err = ParseExpression("a or b and c", Config{})
	require.NoError(t, err)
	or, ok := expr.(*cst.BooleanOperation)
	require.True(t, ok)
	assert.Equal(t, cst.KindOr, or.Operator.Op)
	_, ok = or.Right.(*cst.BooleanOperation)
	assert.True(t, ok)
}

func TestParseConcatenatedString(t *testing.T) {
	t.Parallel()

	expr, err := ParseExpression(`"a" "b" "c"`, Config{})
	require.NoError(t, err)
	outer, ok := expr.(*cst.ConcatenatedString)
	require.True(t, ok)
	assert.Equal(t, `"a"`, outer.Left.(*cst.SimpleString).Value)
	inner, ok := outer.Right.(*cst.ConcatenatedString)
	require.True(t, ok)
	assert.Equal(t, `"b"`, inner.Left.(*cst.SimpleString).Value)
	assert.Equal(t, `"c"`, inner.Right.(*cst.SimpleString).Value)
}

func TestParseFormattedString(t *testing.T) {
	t.Parallel()

	expr, err := ParseExpression(`f"x{a!r:>{w}}y"`, Config{})
	require.NoError(t, err)
	fs, ok := expr.(*cst.FormattedString)
	require.True(t, ok)
	assert.Equal(t, `f"`, fs.Start)
	assert.Equal(t, `"`, fs.End)
	require.Len(t, fs.Parts, 3)
	assert.Equal(t, "x", fs.Parts[0].(*cst.FormattedStringText).Value)
	field, ok := fs.Parts[1].(*cst.FormattedStringExpression)
	require.True(t, ok)
	assert.Equal(t, "a", field.Expression.(*cst.Name).Value)
	assert.Equal(t, "r", field.Conversion)
	require.Len(t, field.FormatSpec, 2)
	assert.Equal(t, ">", field.FormatSpec[0].(*cst.FormattedStringText).Value)
	assert.Equal(t, "y", fs.Parts[2].(*cst.FormattedStringText).Value)
}

func TestParseParens(t *testing.T) {
	t.Parallel()

	expr, err := ParseExpression("((a))", Config{})
	require.NoError(t, err)
	name, ok := expr.(*cst.Name)
	require.True(t, ok)
	assert.Len(t, name.Lpar, 2)
	assert.Len(t, name.Rpar, 2)
	assert.Equal(t, "((a))", cst.Render(name))

	expr, err = ParseExpression("(a, b)", Config{})
	require.NoError(t, err)
	tuple, ok := expr.(*cst.Tuple)
	require.True(t, ok)
	assert.Len(t, tuple.Elements, 2)
	assert.True(t, tuple.Parenthesized())
}

func TestParseStatement(t *testing.T) {
	t.Parallel()

	stmt, err := ParseStatement("if x:\n    pass", Config{})
	require.NoError(t, err)
	_, ok := stmt.(*cst.If)
	assert.True(t, ok)

	stmt, err = ParseStatement("# leading\nx = 1\n", Config{})
	require.NoError(t, err)
	line, ok := stmt.(*cst.SimpleStatementLine)
	require.True(t, ok)
	assert.Len(t, line.LeadingLines, 1)
	assert.Equal(t, "# leading\nx = 1\n", cst.Render(stmt))

	_, err = ParseStatement("x = 1\ny = 2\n", Config{})
	assert.ErrorContains(t, err, "expected a single statement")
	_, err = ParseStatement("", Config{})
	assert.ErrorContains(t, err, "expected a statement")
}

func TestParseExpression(t *testing.T) {
	t.Parallel()

	expr, err := ParseExpression("a,\n b", Config{})
	require.NoError(t, err)
	assert.Equal(t, "a,\n b", cst.Render(expr))

	_, err = ParseExpression(" a", Config{})
	assert.ErrorContains(t, err, "cannot begin with whitespace")
	_, err = ParseExpression("a ", Config{})
	assert.ErrorContains(t, err, "cannot end with whitespace")
	_, err = ParseExpression("", Config{})
	assert.ErrorContains(t, err, "expected an expression")
	_, err = ParseExpression("a b", Config{})
	assert.ErrorContains(t, err, "invalid syntax")
	_, err = ParseExpression("*a", Config{})
	assert.ErrorContains(t, err, "starred expression")
}

func TestSyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, source string
		message      string
		line, col    int
	}{
		{"unexpected-indent", "x = 1\n  y = 2\n", "unexpected indent", 2, 3},
		{"missing-block", "if x:\npass\n", "expected an indented block", 2, 1},
		{"unclosed", "x = (1,\n", "'(' was never closed", 1, 5},
		{"unmatched", "x = 1)\n", "unmatched ')'", 1, 6},
		{"mismatched", "x = (1]\n", "does not match", 1, 7},
		{"incomplete", "x = 1 +\n", "invalid syntax", 1, 8},
		{"bad-dedent", "if x:\n    a\n  b\n", "unindent does not match", 3, 3},
		{"keyword-name", "def class(): pass\n", "expected a name", 1, 5},
		{"positional-after-keyword", "f(a=1, b)\n", "positional argument follows keyword argument", 1, 8},
		{"non-default-after-default", "def f(a=1, b): pass\n", "non-default argument", 1, 12},
		{"bare-star", "def f(*): pass\n", "named arguments must follow bare *", 1, 8},
		{"try-alone", "try:\n    pass\nx = 1\n", "at least one except or finally", 1, 1},
		{"single-brace", "f'}'\n", "single '}'", 1, 3},
		{"empty-field", "f'{}'\n", "empty expression", 1, 3},
		{"bad-conversion", "f'{a!x}'\n", "invalid conversion", 1, 5},
		{"unterminated-string", "x = 'abc\n", "EOL while scanning", 1, 5},
		{"leading-zero", "x = 012\n", "leading zeros", 1, 5},
		{"octal-digit", "x = 0o18\n", "invalid digit '8' in octal literal", 1, 8},
		{"binary-digit", "x = 0b102\n", "invalid digit '2' in binary literal", 1, 9},
		{"bad-char", "x = $\n", "invalid character", 1, 5},
		{"mixed-bytes", "x = b'a' 'b'\n", "cannot mix bytes", 1, 10},
		{"import-trailing-comma", "from a import b,\n", "trailing comma not allowed", 1, 17},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseModule(test.source, Config{})
			require.Error(t, err)
			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Contains(t, syntaxErr.Message, test.message)
			assert.Equal(t, test.line, syntaxErr.Pos.Line, "line")
			assert.Equal(t, test.col, syntaxErr.Pos.Col, "column")
		})
	}
}

func TestSyntaxErrorSnippet(t *testing.T) {
	t.Parallel()

	_, err := ParseModule("x = (1,\n", Config{})
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "x = (1,", syntaxErr.SourceLine)
	assert.Equal(t, "  | x = (1,\n  |     ^", syntaxErr.Snippet())
	assert.Equal(t, "1:5: syntax error: '(' was never closed", syntaxErr.Error())
}

func TestVersionGates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source  string
		version string
		ok      bool
	}{
		{"x = f'a'\n", "3.5", false},
		{"x = f'a'\n", "3.6", true},
		{"x = a @ b\n", "3.4", false},
		{"x = a @ b\n", "3.5", true},
		{"x = 1_000\n", "3.5", false},
		{"x = 1_000\n", "3.6", true},
		{"x = u'a'\n", "3.2", false},
		{"x = u'a'\n", "3.3", true},
		{"async = 1\n", "3.6", true},
		{"async = 1\n", "3.7", false},
		{"def f():\n    await = 1\n", "3.6", true},
		{"async def f():\n    await x\n", "3.5", true},
		{"async def f():\n    await = 1\n", "3.6", false},
		{"async def f():\n    async for x in y:\n        pass\n", "3.5", true},
	}
	for _, test := range tests {
		mod, err := ParseModule(test.source, Config{PythonVersion: test.version})
		if !test.ok {
			assert.Error(t, err, "%s under %s", test.source, test.version)
			continue
		}
		if assert.NoError(t, err, "%s under %s", test.source, test.version) {
			assert.Equal(t, test.source, mod.Code())
		}
	}
}
