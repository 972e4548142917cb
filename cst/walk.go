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

// Visitor is a read-only tree visitor.
type Visitor interface {
	// Visit is called when entering a node, before any of its children are
	// visited. If it returns false, the node's children are skipped, but
	// Leave is still called for the node.
	Visit(n Node) bool
	// Leave is called after all of the node's children have been visited.
	Leave(n Node)
}

// VisitorFuncs adapts a pair of functions into a [Visitor]. Either function
// may be nil.
type VisitorFuncs struct {
	OnVisit func(Node) bool
	OnLeave func(Node)
}

// Visit implements [Visitor].
func (v VisitorFuncs) Visit(n Node) bool {
	if v.OnVisit == nil {
		return true
	}
	return v.OnVisit(n)
}

// Leave implements [Visitor].
func (v VisitorFuncs) Leave(n Node) {
	if v.OnLeave != nil {
		v.OnLeave(n)
	}
}

// Walk visits every node of the tree rooted at root, depth-first, calling
// Visit in pre-order and Leave in post-order. Children are visited in source
// order.
//
// Walk does not recurse, so it can walk arbitrarily deep trees.
func Walk(root Node, v Visitor) {
	if isNil(root) {
		return
	}

	type frame struct {
		children []Node
		next     int
		node     Node
	}
	enter := func(n Node) frame {
		f := frame{node: n}
		if v.Visit(n) {
			f.children = Children(n)
		}
		return f
	}

	stack := []frame{enter(root)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.children) {
			child := top.children[top.next]
			top.next++
			stack = append(stack, enter(child))
			continue
		}
		stack = stack[:len(stack)-1]
		v.Leave(top.node)
	}
}

// Inspect calls visit for every node of the tree in pre-order. If visit
// returns false, the node's children are skipped.
func Inspect(root Node, visit func(Node) bool) {
	Walk(root, VisitorFuncs{OnVisit: visit})
}

// VisitBatched walks the tree once on behalf of several independent
// visitors.
//
// For each node, the visitors' hooks are called in the order the visitors
// were passed in. Each visitor observes exactly the calls it would observe
// if it were passed to [Walk] on its own: a visitor whose Visit returns
// false is not shown that node's children, while the other visitors are.
func VisitBatched(root Node, visitors ...Visitor) {
	if isNil(root) || len(visitors) == 0 {
		return
	}
	if len(visitors) == 1 {
		Walk(root, visitors[0])
		return
	}

	type frame struct {
		node Node
		// Indices of the visitors that entered this node.
		active []int
		// Indices of the visitors that descend into its children.
		descend  []int
		children []Node
		next     int
	}
	enter := func(n Node, active []int) frame {
		f := frame{node: n, active: active}
		for _, i := range active {
			if visitors[i].Visit(n) {
				f.descend = append(f.descend, i)
			}
		}
		if len(f.descend) > 0 {
			f.children = Children(n)
		}
		return f
	}

	all := make([]int, len(visitors))
	for i := range all {
		all[i] = i
	}
	stack := []frame{enter(root, all)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.children) {
			child := top.children[top.next]
			top.next++
			stack = append(stack, enter(child, top.descend))
			continue
		}
		stack = stack[:len(stack)-1]
		for _, i := range top.active {
			visitors[i].Leave(top.node)
		}
	}
}
