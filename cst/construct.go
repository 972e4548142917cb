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
	"fmt"
	"slices"
)

// New validates n, and every node reachable from it, and returns it.
//
// Nodes are built with struct literals; New is how such a literal becomes a
// node that is known to satisfy its invariants. The returned error is the
// first *[ValidationError] found, in pre-order.
func New[N Node](n N) (N, error) {
	if isNil(n) {
		var zero N
		return zero, fmt.Errorf("cst: cannot construct a nil %T", n)
	}
	var err error
	Inspect(n, func(node Node) bool {
		if err != nil {
			return false
		}
		err = node.validate()
		return err == nil
	})
	if err != nil {
		var zero N
		return zero, err
	}
	return n, nil
}

// Must is like [New], but panics if n is invalid. It is intended for use
// in tests and with literals known to be valid.
func Must[N Node](n N) N {
	n, err := New(n)
	if err != nil {
		panic(err)
	}
	return n
}

// Validate checks the invariants of n and every node reachable from it.
func Validate(n Node) error {
	_, err := New(n)
	return err
}

// WithChanges returns a shallow copy of n with edit applied to it.
//
// Every field edit does not replace is shared with n, so the new node and
// n have the same children except where edit says otherwise. edit must
// assign new slices rather than modify the elements of existing ones, since
// those are shared with n.
//
// The new node is validated; n itself is never modified.
func WithChanges[T any, P interface {
	*T
	Node
}](n P, edit func(P)) (P, error) {
	if n == nil {
		return nil, fmt.Errorf("cst: cannot edit a nil %T", n)
	}
	c := P(new(T))
	*c = *n
	edit(c)
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// WithParens returns a copy of e wrapped in one more pair of parentheses,
// outside of any it already has.
func WithParens[E Expression](e E, lpar *LeftParen, rpar *RightParen) E {
	m := &mapper{results: Children(e), parent: e}
	c := e.mapChildren(m).(E)
	p := c.parens()
	p.Lpar = append([]*LeftParen{lpar}, p.Lpar...)
	p.Rpar = append(slices.Clip(p.Rpar), rpar)
	return c
}

// NewName returns a new unparenthesized [Name].
func NewName(value string) (*Name, error) {
	return New(&Name{Value: value})
}

// NewInteger returns a new unparenthesized [Integer].
func NewInteger(value string) (*Integer, error) {
	return New(&Integer{Value: value})
}

// NewSimpleString returns a new unparenthesized [SimpleString]. value must
// include the quotes, and any prefix.
func NewSimpleString(value string) (*SimpleString, error) {
	return New(&SimpleString{Value: value})
}

// NewSimpleWhitespace returns new [SimpleWhitespace].
func NewSimpleWhitespace(value string) (*SimpleWhitespace, error) {
	return New(&SimpleWhitespace{Value: value})
}

// NewComment returns a new [Comment]. value must begin with "#".
func NewComment(value string) (*Comment, error) {
	return New(&Comment{Value: value})
}

// Space returns a single space of [SimpleWhitespace].
func Space() *SimpleWhitespace {
	return &SimpleWhitespace{Value: " "}
}
