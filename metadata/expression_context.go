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

package metadata

import (
	"fmt"

	"github.com/bufbuild/pycst/cst"
)

// ExpressionContext is how an expression is used: read from, assigned to,
// or deleted.
type ExpressionContext int8

const (
	Load ExpressionContext = iota + 1
	Store
	Del
)

// String implements [fmt.Stringer].
func (c ExpressionContext) String() string {
	switch c {
	case Load:
		return "Load"
	case Store:
		return "Store"
	case Del:
		return "Del"
	default:
		return fmt.Sprintf("ExpressionContext(%d)", int8(c))
	}
}

// ExpressionContextProvider records the [ExpressionContext] of every
// [cst.Name], [cst.Attribute], [cst.Subscript], [cst.Tuple], [cst.List] and
// [cst.StarredElement].
//
// Names that are not expressions, such as the attribute name of an
// [cst.Attribute], get no value.
var ExpressionContextProvider Provider = expressionContextProvider{}

type expressionContextProvider struct{}

func (expressionContextProvider) Name() string             { return "expression_context" }
func (expressionContextProvider) Dependencies() []Provider { return nil }

func (expressionContextProvider) Visitor(ctx *Context) cst.Visitor {
	return &expressionContextVisitor{ctx: ctx, overrides: make(map[cst.Node]ExpressionContext)}
}

type expressionContextVisitor struct {
	ctx *Context
	// The context each node's children inherit. Zero means none.
	stack []ExpressionContext
	// Contexts for specific children, set by their parent. Takes priority
	// over the inherited context.
	overrides map[cst.Node]ExpressionContext
}

func (v *expressionContextVisitor) Visit(n cst.Node) bool {
	ec := Load
	if len(v.stack) > 0 {
		ec = v.stack[len(v.stack)-1]
	}
	if o, ok := v.overrides[n]; ok {
		ec = o
	}

	children := Load
	switch n := n.(type) {
	case *cst.Name, *cst.Subscript:
		v.record(n, ec)
	case *cst.Attribute:
		v.record(n, ec)
		v.overrides[n.Attr] = 0
	case *cst.Tuple, *cst.List, *cst.StarredElement:
		v.record(n, ec)
		children = ec
	case *cst.Element:
		children = ec
	case *cst.AssignTarget:
		v.overrides[n.Target] = Store
	case *cst.AugAssign:
		v.overrides[n.Target] = Store
	case *cst.AnnAssign:
		v.overrides[n.Target] = Store
	case *cst.For:
		v.overrides[n.Target] = Store
	case *cst.CompFor:
		v.overrides[n.Target] = Store
	case *cst.Del:
		v.overrides[n.Target] = Del
	case *cst.AsName:
		// Covers import aliases as well as with items and except clauses.
		v.overrides[n.Name] = Store
	case *cst.FunctionDef:
		v.overrides[n.Name] = Store
	case *cst.ClassDef:
		v.overrides[n.Name] = Store
	case *cst.Param:
		v.overrides[n.Name] = Store
	}
	v.stack = append(v.stack, children)
	return true
}

func (v *expressionContextVisitor) Leave(n cst.Node) {
	v.stack = v.stack[:len(v.stack)-1]
	delete(v.overrides, n)
}

func (v *expressionContextVisitor) record(n cst.Node, ec ExpressionContext) {
	if ec != 0 {
		v.ctx.Set(n, ec)
	}
}
