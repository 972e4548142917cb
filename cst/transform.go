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

import "fmt"

// Transformer rewrites a tree.
type Transformer interface {
	// Visit is called when entering a node, before any of its children are
	// transformed. If it returns false, the node's children are left as-is,
	// but Leave is still called for the node.
	Visit(n Node) bool
	// Leave is called after all of the node's children have been
	// transformed. original is the node as it appeared in the input tree,
	// and updated is a copy of it with the transformed children; if no child
	// changed, updated is original.
	//
	// Leave returns the node that should take the original's place: updated
	// to keep it, any other node of a kind that fits the same slot to replace
	// it, or [Remove] to delete it.
	Leave(original, updated Node) (Node, error)
}

// TransformerFuncs adapts a pair of functions into a [Transformer]. Either
// function may be nil.
type TransformerFuncs struct {
	OnVisit func(Node) bool
	OnLeave func(original, updated Node) (Node, error)
}

// Visit implements [Transformer].
func (t TransformerFuncs) Visit(n Node) bool {
	if t.OnVisit == nil {
		return true
	}
	return t.OnVisit(n)
}

// Leave implements [Transformer].
func (t TransformerFuncs) Leave(original, updated Node) (Node, error) {
	if t.OnLeave == nil {
		return updated, nil
	}
	return t.OnLeave(original, updated)
}

// Transform rewrites the tree rooted at root, returning the new root.
//
// The input tree is never modified. Every node whose children did not change
// is reused as-is in the output tree, so transforming a tree without making
// any changes returns root itself.
//
// If any step fails, no tree is returned. This happens when a [Transformer]
// returns an error, returns [Remove] for a child its parent requires
// ([RemovalError]), returns a node that does not fit where it was placed
// ([ReplacementError]), or when a rebuilt node fails validation
// ([ValidationError]).
func Transform[N Node](root N, t Transformer) (N, error) {
	var zero N
	if isNil(root) {
		return zero, nil
	}
	out, err := transform(root, t)
	if err != nil {
		return zero, err
	}
	if out == Remove {
		return zero, &RemovalError{Parent: InvalidKind, Field: "root"}
	}
	v, ok := out.(N)
	if !ok {
		return zero, &ReplacementError{Parent: InvalidKind, Field: "root", Got: out.Kind()}
	}
	return v, nil
}

func transform(root Node, t Transformer) (Node, error) {
	type frame struct {
		node     Node
		children []Node
		results  []Node
		next     int
	}
	enter := func(n Node) frame {
		f := frame{node: n}
		if t.Visit(n) {
			f.children = Children(n)
			f.results = make([]Node, 0, len(f.children))
		}
		return f
	}

	stack := []frame{enter(root)}
	for {
		top := &stack[len(stack)-1]
		if top.next < len(top.children) {
			child := top.children[top.next]
			top.next++
			stack = append(stack, enter(child))
			continue
		}

		done := *top
		stack = stack[:len(stack)-1]
		updated, err := rebuild(done.node, done.children, done.results)
		if err != nil {
			return nil, err
		}
		out, err := t.Leave(done.node, updated)
		if err != nil {
			return nil, err
		}
		if isNil(out) {
			return nil, fmt.Errorf("cst: transformer returned nil for %v; return cst.Remove to remove a node", done.node.Kind())
		}
		if out != updated && out != Remove {
			if err := validateReplacement(out, updated); err != nil {
				return nil, err
			}
		}

		if len(stack) == 0 {
			return out, nil
		}
		parent := &stack[len(stack)-1]
		parent.results = append(parent.results, out)
	}
}

// validateReplacement validates a node a transformer returned in place of
// updated. Children shared with updated have been validated already.
func validateReplacement(out, updated Node) error {
	known := make(map[Node]bool)
	for _, c := range Children(updated) {
		known[c] = true
	}
	var err error
	Inspect(out, func(n Node) bool {
		if err != nil || n != out && known[n] {
			return false
		}
		err = n.validate()
		return err == nil
	})
	return err
}
