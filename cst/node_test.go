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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func name(v string) *Name       { return &Name{Value: v} }
func integer(v string) *Integer { return &Integer{Value: v} }

func add(left, right Expression) *BinaryOperation {
	return &BinaryOperation{
		Left:     left,
		Operator: &BinaryOp{Op: KindAdd, WhitespaceBefore: Space(), WhitespaceAfter: Space()},
		Right:    right,
	}
}

func line(stmts ...SmallStatement) *SimpleStatementLine {
	return &SimpleStatementLine{Body: stmts}
}

func TestRenderDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{"binary", add(name("a"), integer("1")), "a + 1"},
		{
			"list",
			&List{Elements: []SequenceElement{
				&Element{Value: integer("1")},
				&Element{Value: integer("2")},
				&StarredElement{Value: name("rest")},
			}},
			"[1, 2, *rest]",
		},
		{
			"explicit-comma",
			&List{Elements: []SequenceElement{
				&Element{Value: integer("1"), Comma: Some(&Comma{})},
			}},
			"[1,]",
		},
		{"singleton-tuple", &Tuple{Elements: []SequenceElement{&Element{Value: integer("1")}}}, "1,"},
		{
			"parenthesized-tuple",
			&Tuple{
				Parens:   Parens{Lpar: []*LeftParen{{}}, Rpar: []*RightParen{{}}},
				Elements: []SequenceElement{&Element{Value: integer("1")}, &Element{Value: integer("2")}},
			},
			"(1, 2)",
		},
		{"semicolons", line(&Pass{}, &Expr{Value: name("x")}, &Break{}), "pass; x; break\n"},
		{"empty-line", line(), "pass\n"},
		{
			"if",
			&If{
				WhitespaceBeforeTest: Space(),
				Test:                 name("x"),
				Body:                 &IndentedBlock{Body: []Statement{line(&Pass{})}},
			},
			"if x:\n    pass\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			require.NoError(t, Validate(test.node))
			assert.Equal(t, test.expected, Render(test.node))
		})
	}
}

func TestRenderModule(t *testing.T) {
	t.Parallel()

	body := &If{
		WhitespaceBeforeTest: Space(),
		Test:                 name("x"),
		Body: &IndentedBlock{Body: []Statement{
			line(&Pass{}),
			&If{
				WhitespaceBeforeTest: Space(),
				Test:                 name("y"),
				Body:                 &IndentedBlock{Indent: "  ", Body: []Statement{line(&Continue{})}},
			},
		}},
	}
	mod := Must(&Module{
		Header:             []*EmptyLine{{Comment: &Comment{Value: "# header"}}},
		Body:               []Statement{body},
		DefaultIndent:      "\t",
		DefaultNewline:     "\r\n",
		HasTrailingNewline: true,
	})
	assert.Equal(t, "# header\r\nif x:\r\n\tpass\r\n\tif y:\r\n\t  continue\r\n", mod.Code())

	// Rendering a node on its own uses the package defaults; rendering it
	// for the module uses the module's.
	assert.Equal(t, "if x:\n    pass\n    if y:\n      continue\n", Render(body))
	assert.Equal(t, "if x:\r\n\tpass\r\n\tif y:\r\n\t  continue\r\n", mod.CodeForNode(body))

	noTrailing, err := WithChanges(mod, func(m *Module) { m.HasTrailingNewline = false })
	require.NoError(t, err)
	assert.Equal(t, "# header\r\nif x:\r\n\tpass\r\n\tif y:\r\n\t  continue", noTrailing.Code())
	assert.True(t, mod.HasTrailingNewline)
}

func TestValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node Node
		kind Kind
	}{
		{"keyword-name", name("lambda"), KindName},
		{"bad-identifier", name("1x"), KindName},
		{"bad-integer", integer("1.5"), KindInteger},
		{"unbalanced-parens", &Name{Value: "x", Parens: Parens{Lpar: []*LeftParen{{}}}}, KindName},
		{"newline-in-whitespace", &SimpleWhitespace{Value: " \n"}, KindSimpleWhitespace},
		{"comment-without-hash", &Comment{Value: "x"}, KindComment},
		{"bad-newline", &Newline{Value: "\n\n"}, KindNewline},
		{"empty-tuple", &Tuple{}, KindTuple},
		{"bad-operator", &BinaryOp{Op: KindAnd}, KindBinaryOperation},
		{
			"not-without-space",
			&UnaryOperation{Operator: &UnaryOp{Op: KindNot}, Expression: name("x")},
			KindUnaryOperation,
		},
		{"if-without-space", &If{Test: name("x"), Body: &IndentedBlock{}}, KindIf},
		{"nested", line(&Expr{Value: add(name("a"), name("not"))}), KindName},
		{"module-indent", &Module{DefaultIndent: "x"}, KindModule},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(test.node)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, test.kind, verr.Kind)
		})
	}

	for _, ok := range []Node{
		name("True"),
		name("None"),
		name("café"),
		&UnaryOperation{Operator: &UnaryOp{Op: KindNot}, Expression: &Name{
			Value:  "x",
			Parens: Parens{Lpar: []*LeftParen{{}}, Rpar: []*RightParen{{}}},
		}},
		&SimpleWhitespace{Value: " \\\n\t"},
		&Tuple{Parens: Parens{Lpar: []*LeftParen{{}}, Rpar: []*RightParen{{}}}},
	} {
		assert.NoError(t, Validate(ok), Render(ok))
	}

	_, err := New[*Name](nil)
	assert.Error(t, err)
	assert.Panics(t, func() { Must(name("class")) })
}

func TestMaybe(t *testing.T) {
	t.Parallel()

	var m Maybe[*Comma]
	assert.True(t, m.IsDefault())
	_, ok := m.Get()
	assert.False(t, ok)

	c := &Comma{}
	m = Some(c)
	assert.False(t, m.IsDefault())
	v, ok := m.Get()
	assert.True(t, ok)
	assert.Same(t, c, v)

	// A nil value is the same as the default.
	assert.True(t, Some[*Comma](nil).IsDefault())
}

func TestWithChanges(t *testing.T) {
	t.Parallel()

	left, right := name("a"), integer("1")
	op := Must(add(left, right))

	changed, err := WithChanges(op, func(n *BinaryOperation) { n.Right = name("b") })
	require.NoError(t, err)
	assert.Equal(t, "a + b", Render(changed))
	assert.Equal(t, "a + 1", Render(op))
	assert.NotSame(t, op, changed)
	assert.Same(t, left, changed.Left)
	assert.Same(t, op.Operator, changed.Operator)

	_, err = WithChanges(op, func(n *BinaryOperation) { n.Right = nil })
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindBinaryOperation, verr.Kind)
	assert.Same(t, right, op.Right)

	_, err = WithChanges[Name](nil, func(*Name) {})
	assert.Error(t, err)
}

func TestWithParens(t *testing.T) {
	t.Parallel()

	x := name("x")
	once := WithParens(x, &LeftParen{}, &RightParen{})
	twice := WithParens(once, &LeftParen{WhitespaceAfter: Space()}, &RightParen{WhitespaceBefore: Space()})
	assert.Equal(t, "x", Render(x))
	assert.Equal(t, "(x)", Render(once))
	assert.Equal(t, "( (x) )", Render(twice))
	assert.True(t, once.Parenthesized())
	assert.False(t, x.Parenthesized())
	require.NoError(t, Validate(twice))
}

func TestEqualAndDeepCopy(t *testing.T) {
	t.Parallel()

	a := line(&Expr{Value: add(name("a"), integer("1"))})
	b := line(&Expr{Value: add(name("a"), integer("1"))})
	c := line(&Expr{Value: add(name("a"), integer("2"))})
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, line(&Pass{})))
	assert.False(t, Equal(a, nil))
	assert.True(t, Equal(nil, nil))

	// nil and empty slices are the same.
	assert.True(t, Equal(&SimpleStatementLine{Body: []SmallStatement{&Pass{}}, LeadingLines: []*EmptyLine{}}, line(&Pass{})))

	copied := DeepCopy(a)
	assert.True(t, Equal(a, copied))
	assert.NotSame(t, a, copied)
	assert.NotSame(t, a.Body[0], copied.Body[0])
	assert.NotSame(t, a.Body[0].(*Expr).Value, copied.Body[0].(*Expr).Value)
	assert.Equal(t, Render(a), Render(copied))
}

func TestChildren(t *testing.T) {
	t.Parallel()

	op := add(name("a"), integer("1"))
	children := Children(op)
	require.Len(t, children, 3)
	assert.Same(t, op.Left, children[0])
	assert.Same(t, op.Operator, children[1])
	assert.Same(t, op.Right, children[2])

	ws := Children(op.Operator)
	assert.Len(t, ws, 2)
	assert.Empty(t, Children(name("x")))
	assert.Nil(t, Children(nil))

	// Unset formatting slots are not children.
	assert.Len(t, Children(&Element{Value: name("x")}), 1)
	assert.Len(t, Children(&Element{Value: name("x"), Comma: Some(&Comma{})}), 2)
}

func TestKinds(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, k := range Kinds() {
		s := k.String()
		assert.NotContains(t, s, "Kind(", "kind %d has no name", int(k))
		assert.False(t, seen[s], "duplicate kind name %s", s)
		seen[s] = true
	}

	for _, k := range Kinds() {
		if k.IsBinaryOperator() {
			aug, ok := AugOperatorFor(k)
			require.True(t, ok)
			assert.True(t, aug.IsAugOperator())
			assert.Equal(t, k.OperatorText()+"=", aug.OperatorText())
			back, ok := BinaryOperatorFor(aug)
			assert.True(t, ok)
			assert.Equal(t, k, back)
		}
	}
	assert.Equal(t, "Name", KindName.String())
	assert.Equal(t, "KindName", KindName.GoString())
	assert.Equal(t, "InvalidKind", InvalidKind.String())
	assert.Equal(t, "Kind(250)", Kind(250).String())
	assert.Len(t, Kinds(), int(kindCount)-1)
	_, ok := AugOperatorFor(KindName)
	assert.False(t, ok)
	assert.Equal(t, "not in", KindNotIn.OperatorText())
	assert.True(t, IsKeyword("while"))
	assert.False(t, IsKeyword("print"))
}
