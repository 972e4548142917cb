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
	"reflect"
)

// Hooks dispatches visitor and transformer callbacks by node type.
//
// Register callbacks with [OnVisit], [OnLeave] and [OnTransform]. Nodes
// without a callback for their type are descended into and left unchanged.
// Callbacks are keyed by concrete node type, such as *[Name]; registering one
// for a category interface such as [Expression] panics.
// The zero value is ready to use.
//
// A *Hooks is a [Visitor]; [Hooks.Transformer] returns a [Transformer] that
// uses the same visit callbacks.
type Hooks struct {
	visit     map[reflect.Type]func(Node) bool
	leave     map[reflect.Type]func(Node)
	transform map[reflect.Type]func(Node, Node) (Node, error)
}

// OnVisit registers a callback for entering nodes of type N. If it returns
// false, the node's children are skipped.
func OnVisit[N Node](h *Hooks, fn func(N) bool) {
	if h.visit == nil {
		h.visit = make(map[reflect.Type]func(Node) bool)
	}
	h.visit[hookType[N]()] = func(n Node) bool { return fn(n.(N)) }
}

// OnLeave registers a callback for leaving nodes of type N while visiting.
func OnLeave[N Node](h *Hooks, fn func(N)) {
	if h.leave == nil {
		h.leave = make(map[reflect.Type]func(Node))
	}
	h.leave[hookType[N]()] = func(n Node) { fn(n.(N)) }
}

// OnTransform registers a callback for leaving nodes of type N while
// transforming. See [Transformer.Leave].
func OnTransform[N Node](h *Hooks, fn func(original, updated N) (Node, error)) {
	if h.transform == nil {
		h.transform = make(map[reflect.Type]func(Node, Node) (Node, error))
	}
	h.transform[hookType[N]()] = func(original, updated Node) (Node, error) {
		return fn(original.(N), updated.(N))
	}
}

// Visit implements [Visitor].
func (h *Hooks) Visit(n Node) bool {
	if fn := h.visit[reflect.TypeOf(n)]; fn != nil {
		return fn(n)
	}
	return true
}

// Leave implements [Visitor].
func (h *Hooks) Leave(n Node) {
	if fn := h.leave[reflect.TypeOf(n)]; fn != nil {
		fn(n)
	}
}

// Transformer returns a [Transformer] that calls the visit and transform
// callbacks of h.
func (h *Hooks) Transformer() Transformer {
	return hooksTransformer{h}
}

type hooksTransformer struct{ h *Hooks }

func (t hooksTransformer) Visit(n Node) bool { return t.h.Visit(n) }

func (t hooksTransformer) Leave(original, updated Node) (Node, error) {
	if fn := t.h.transform[reflect.TypeOf(original)]; fn != nil {
		return fn(original, updated)
	}
	return updated, nil
}

// hookType returns the type callbacks for N are keyed by.
func hookType[N Node]() reflect.Type {
	t := reflect.TypeFor[N]()
	if t.Kind() == reflect.Interface {
		panic(fmt.Sprintf("cst: hooks are registered per concrete node type, not %v", t))
	}
	return t
}
