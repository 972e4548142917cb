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

import "reflect"

// Equal returns whether two trees are structurally equal: whether they have
// the same kinds of nodes, with the same field values, in the same places.
//
// Node identity is ignored, as is the difference between a nil slice and an
// empty one.
func Equal(a, b Node) bool {
	type pair struct{ a, b reflect.Value }
	stack := []pair{{reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem()}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		a, b := p.a, p.b

		switch a.Kind() {
		case reflect.Interface:
			if a.IsNil() || b.IsNil() {
				if a.IsNil() != b.IsNil() {
					return false
				}
				continue
			}
			a, b = a.Elem(), b.Elem()
			if a.Type() != b.Type() {
				return false
			}
			stack = append(stack, pair{a, b})

		case reflect.Pointer:
			if a.IsNil() || b.IsNil() {
				if a.IsNil() != b.IsNil() {
					return false
				}
				continue
			}
			if a.Pointer() == b.Pointer() {
				continue
			}
			stack = append(stack, pair{a.Elem(), b.Elem()})

		case reflect.Struct:
			for i := a.NumField() - 1; i >= 0; i-- {
				stack = append(stack, pair{a.Field(i), b.Field(i)})
			}

		case reflect.Slice:
			if a.Len() != b.Len() {
				return false
			}
			for i := a.Len() - 1; i >= 0; i-- {
				stack = append(stack, pair{a.Index(i), b.Index(i)})
			}

		case reflect.String:
			if a.String() != b.String() {
				return false
			}
		case reflect.Bool:
			if a.Bool() != b.Bool() {
				return false
			}
		case reflect.Uint8:
			if a.Uint() != b.Uint() {
				return false
			}
		default:
			panic("cst: unexpected field kind " + a.Kind().String())
		}
	}
	return true
}

// DeepCopy returns a tree that is structurally [Equal] to root, but in which
// every node is a new node.
func DeepCopy[N Node](root N) N {
	if isNil(root) {
		return root
	}

	type frame struct {
		node     Node
		children []Node
		copies   []Node
	}
	stack := []frame{{node: root, children: Children(root)}}
	for {
		top := &stack[len(stack)-1]
		if i := len(top.copies); i < len(top.children) {
			child := top.children[i]
			stack = append(stack, frame{node: child, children: Children(child)})
			continue
		}

		done := *top
		stack = stack[:len(stack)-1]
		m := &mapper{results: done.copies, parent: done.node}
		c := done.node.mapChildren(m)
		if len(stack) == 0 {
			return c.(N)
		}
		parent := &stack[len(stack)-1]
		parent.copies = append(parent.copies, c)
	}
}
