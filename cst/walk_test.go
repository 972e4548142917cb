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

package cst_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bufbuild/pycst/cst"
	"github.com/bufbuild/pycst/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, source string) *cst.Module {
	t.Helper()
	mod, err := parser.ParseModule(source, parser.Config{})
	require.NoError(t, err)
	return mod
}

// trace records the order a visitor sees nodes in.
type trace struct {
	events []string
	skip   cst.Kind
}

func (t *trace) Visit(n cst.Node) bool {
	t.events = append(t.events, "visit "+n.Kind().String())
	return n.Kind() != t.skip
}

func (t *trace) Leave(n cst.Node) {
	t.events = append(t.events, "leave "+n.Kind().String())
}

func TestWalkOrder(t *testing.T) {
	t.Parallel()

	expr, err := parser.ParseExpression("a + b", parser.Config{})
	require.NoError(t, err)

	tr := &trace{}
	cst.Walk(expr, tr)
	assert.Equal(t, []string{
		"visit BinaryOperation",
		"visit Name", "leave Name",
		"visit Add",
		"visit SimpleWhitespace", "leave SimpleWhitespace",
		"visit SimpleWhitespace", "leave SimpleWhitespace",
		"leave Add",
		"visit Name", "leave Name",
		"leave BinaryOperation",
	}, tr.events)

	tr = &trace{skip: cst.KindAdd}
	cst.Walk(expr, tr)
	assert.Equal(t, []string{
		"visit BinaryOperation",
		"visit Name", "leave Name",
		"visit Add", "leave Add",
		"visit Name", "leave Name",
		"leave BinaryOperation",
	}, tr.events)
}

func TestWalkDeep(t *testing.T) {
	t.Parallel()

	// Deep enough that a recursive walk would be noticeably expensive.
	const depth = 5000
	var expr cst.Expression = &cst.Name{Value: "x"}
	for range depth {
		expr = &cst.UnaryOperation{Operator: &cst.UnaryOp{Op: cst.KindMinus}, Expression: expr}
	}

	count := 0
	cst.Inspect(expr, func(cst.Node) bool {
		count++
		return true
	})
	// Every level has an operation and an operator.
	assert.Equal(t, 2*depth+1, count)
	assert.Equal(t, strings.Repeat("-", depth)+"x", cst.Render(expr))

	out, err := cst.Transform(expr, cst.TransformerFuncs{})
	require.NoError(t, err)
	assert.Same(t, expr, out)
}

func TestVisitBatched(t *testing.T) {
	t.Parallel()

	mod := parse(t, "def f(a):\n    return a + 1\nx = f(2)\n")

	expect := func(skip cst.Kind) []string {
		tr := &trace{skip: skip}
		cst.Walk(mod, tr)
		return tr.events
	}
	all := &trace{}
	noFunctions := &trace{skip: cst.KindFunctionDef}
	noCalls := &trace{skip: cst.KindCall}
	cst.VisitBatched(mod, all, noFunctions, noCalls)

	assert.Equal(t, expect(cst.InvalidKind), all.events)
	assert.Equal(t, expect(cst.KindFunctionDef), noFunctions.events)
	assert.Equal(t, expect(cst.KindCall), noCalls.events)
	assert.Less(t, len(noFunctions.events), len(all.events))

	// Hooks for each node are called in the order the visitors were given.
	var order []string
	visitor := func(name string) cst.Visitor {
		return cst.VisitorFuncs{OnVisit: func(n cst.Node) bool {
			if n.Kind() == cst.KindModule {
				order = append(order, name)
			}
			return true
		}}
	}
	cst.VisitBatched(mod, visitor("first"), visitor("second"), visitor("third"))
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestTransformIdentity(t *testing.T) {
	t.Parallel()

	mod := parse(t, "import os\n\nclass A(B):\n    x: int = 1  # c\n")
	out, err := cst.Transform(mod, cst.TransformerFuncs{})
	require.NoError(t, err)
	assert.Same(t, mod, out)
}

func TestTransformRename(t *testing.T) {
	t.Parallel()

	source := "def f(a, b):\n    return a * (b + a)\n"
	mod := parse(t, source)

	hooks := &cst.Hooks{}
	cst.OnTransform(hooks, func(_, updated *cst.Name) (cst.Node, error) {
		if updated.Value != "a" {
			return updated, nil
		}
		return cst.WithChanges(updated, func(n *cst.Name) { n.Value = "alpha" })
	})
	out, err := cst.Transform(mod, hooks.Transformer())
	require.NoError(t, err)
	assert.Equal(t, "def f(alpha, b):\n    return alpha * (b + alpha)\n", out.Code())
	assert.Equal(t, source, mod.Code())

	// Untouched subtrees are shared.
	assert.NotSame(t, mod, out)
	fn, newFn := mod.Body[0].(*cst.FunctionDef), out.Body[0].(*cst.FunctionDef)
	assert.Same(t, fn.Name, newFn.Name)
	assert.Same(t, fn.Params.Params[1], newFn.Params.Params[1])
	assert.NotSame(t, fn.Params.Params[0], newFn.Params.Params[0])
}

func TestTransformRemove(t *testing.T) {
	t.Parallel()

	removeName := func(value string) cst.Transformer {
		return cst.TransformerFuncs{OnLeave: func(original, updated cst.Node) (cst.Node, error) {
			if expr, ok := original.(*cst.Expr); ok {
				if name, ok := expr.Value.(*cst.Name); ok && name.Value == value {
					return cst.Remove, nil
				}
			}
			return updated, nil
		}}
	}

	mod := parse(t, "a; b; c\n")
	out, err := cst.Transform(mod, removeName("b"))
	require.NoError(t, err)
	assert.Equal(t, "a; c\n", out.Code())

	// Explicit semicolons are kept.
	out, err = cst.Transform(mod, removeName("c"))
	require.NoError(t, err)
	assert.Equal(t, "a; b; \n", out.Code())

	// A line left without statements renders as pass.
	mod = parse(t, "if x:\n    b\n")
	out, err = cst.Transform(mod, removeName("b"))
	require.NoError(t, err)
	assert.Equal(t, "if x:\n    pass\n", out.Code())

	// Removing an optional child unsets it.
	mod = parse(t, "def f():\n    return x\n")
	hooks := &cst.Hooks{}
	cst.OnTransform(hooks, func(_, updated *cst.Name) (cst.Node, error) {
		if updated.Value == "x" {
			return cst.Remove, nil
		}
		return updated, nil
	})
	out, err = cst.Transform(mod, hooks.Transformer())
	require.NoError(t, err)
	assert.Equal(t, "def f():\n    return \n", out.Code())
}

func TestTransformErrors(t *testing.T) {
	t.Parallel()

	mod := parse(t, "a + b\n")

	_, err := cst.Transform(mod, cst.TransformerFuncs{OnLeave: func(original, updated cst.Node) (cst.Node, error) {
		if n, ok := original.(*cst.Name); ok && n.Value == "b" {
			return cst.Remove, nil
		}
		return updated, nil
	}})
	var removal *cst.RemovalError
	require.ErrorAs(t, err, &removal)
	assert.Equal(t, cst.KindBinaryOperation, removal.Parent)
	assert.Equal(t, "Right", removal.Field)

	_, err = cst.Transform(mod, cst.TransformerFuncs{OnLeave: func(original, updated cst.Node) (cst.Node, error) {
		if _, ok := original.(*cst.Name); ok {
			return &cst.Pass{}, nil
		}
		return updated, nil
	}})
	var replacement *cst.ReplacementError
	require.ErrorAs(t, err, &replacement)
	assert.Equal(t, cst.KindBinaryOperation, replacement.Parent)
	assert.Equal(t, "Left", replacement.Field)
	assert.Equal(t, cst.KindPass, replacement.Got)

	// A replacement that makes its parent invalid fails validation.
	_, err = cst.Transform(parse(t, "not a\n"), cst.TransformerFuncs{OnLeave: func(original, updated cst.Node) (cst.Node, error) {
		if _, ok := original.(*cst.SimpleWhitespace); ok {
			return &cst.SimpleWhitespace{}, nil
		}
		return updated, nil
	}})
	var invalid *cst.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, cst.KindUnaryOperation, invalid.Kind)

	// Replacements are validated themselves, not only their new parents.
	_, err = cst.Transform(parse(t, "x = 1\n"), cst.TransformerFuncs{OnLeave: func(original, updated cst.Node) (cst.Node, error) {
		if _, ok := original.(*cst.Name); ok {
			return &cst.Name{Value: "1 bad"}, nil
		}
		return updated, nil
	}})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, cst.KindName, invalid.Kind)

	_, err = cst.Transform(parse(t, "f(x)\n"), cst.TransformerFuncs{OnLeave: func(original, updated cst.Node) (cst.Node, error) {
		if call, ok := updated.(*cst.Call); ok {
			return &cst.Call{Func: &cst.Name{Value: "g h"}, Args: call.Args}, nil
		}
		return updated, nil
	}})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, cst.KindName, invalid.Kind)

	_, err = cst.Transform(mod, cst.TransformerFuncs{OnLeave: func(cst.Node, cst.Node) (cst.Node, error) {
		return nil, nil
	}})
	assert.ErrorContains(t, err, "returned nil")

	sentinel := errors.New("stop")
	calls := 0
	_, err = cst.Transform(mod, cst.TransformerFuncs{OnLeave: func(_, updated cst.Node) (cst.Node, error) {
		calls++
		return updated, sentinel
	}})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)

	_, err = cst.Transform(mod, cst.TransformerFuncs{OnLeave: func(original, updated cst.Node) (cst.Node, error) {
		if _, ok := original.(*cst.Module); ok {
			return cst.Remove, nil
		}
		return updated, nil
	}})
	assert.ErrorAs(t, err, &removal)
}

func TestTransformSkipChildren(t *testing.T) {
	t.Parallel()

	mod := parse(t, "f(a)\ng(a)\n")
	var left []string
	out, err := cst.Transform(mod, cst.TransformerFuncs{
		OnVisit: func(n cst.Node) bool {
			call, ok := n.(*cst.Call)
			return !ok || call.Func.(*cst.Name).Value != "g"
		},
		OnLeave: func(original, updated cst.Node) (cst.Node, error) {
			if n, ok := updated.(*cst.Name); ok {
				left = append(left, n.Value)
				return cst.WithChanges(n, func(n *cst.Name) { n.Value = strings.ToUpper(n.Value) })
			}
			return updated, nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "F(A)\ng(a)\n", out.Code())
	assert.Equal(t, []string{"f", "a"}, left)
}

func TestHooks(t *testing.T) {
	t.Parallel()

	mod := parse(t, "import a\nfrom b import c\n\ndef f():\n    def g(): pass\n")

	var names []string
	var functions []string
	hooks := &cst.Hooks{}
	cst.OnVisit(hooks, func(n *cst.FunctionDef) bool {
		functions = append(functions, n.Name.Value)
		return n.Name.Value != "g"
	})
	cst.OnLeave(hooks, func(n *cst.Name) {
		names = append(names, n.Value)
	})
	cst.Walk(mod, hooks)
	assert.Equal(t, []string{"f", "g"}, functions)
	assert.Equal(t, []string{"a", "b", "c", "f"}, names)

	assert.PanicsWithValue(t, "cst: hooks are registered per concrete node type, not cst.Expression", func() {
		cst.OnVisit(hooks, func(cst.Expression) bool { return true })
	})
	assert.Panics(t, func() {
		cst.OnTransform(hooks, func(_, updated cst.Statement) (cst.Node, error) { return updated, nil })
	})
}

func TestLayout(t *testing.T) {
	t.Parallel()

	source := "@d\ndef f(x,):\n    return x  # r\n"
	mod := parse(t, source)
	layout := mod.Layout()
	assert.Equal(t, source, layout.Code)

	fn := mod.Body[0].(*cst.FunctionDef)
	span, ok := layout.Span(fn)
	require.True(t, ok)
	assert.Equal(t, source, layout.Code[span.Start:span.End])

	syntax, ok := layout.SyntacticSpan(fn)
	require.True(t, ok)
	assert.Equal(t, "def f(x,):\n    return x", layout.Code[syntax.Start:syntax.End])

	param := fn.Params.Params[0]
	span, _ = layout.Span(param)
	syntax, _ = layout.SyntacticSpan(param)
	assert.Equal(t, "x,", layout.Code[span.Start:span.End])
	assert.Equal(t, "x", layout.Code[syntax.Start:syntax.End])

	count := 0
	cst.Inspect(mod, func(n cst.Node) bool {
		_, ok := layout.Span(n)
		assert.True(t, ok, "%v has no span", n.Kind())
		count++
		return true
	})
	assert.Equal(t, count, layout.Len())
}

func ExampleTransform() {
	mod, _ := parser.ParseModule("x = 1\ny = x + 1\n", parser.Config{})
	hooks := &cst.Hooks{}
	cst.OnTransform(hooks, func(_, updated *cst.Integer) (cst.Node, error) {
		return cst.WithChanges(updated, func(n *cst.Integer) { n.Value = "42" })
	})
	out, _ := cst.Transform(mod, hooks.Transformer())
	fmt.Print(out.Code())
	// Output:
	// x = 42
	// y = x + 42
}
