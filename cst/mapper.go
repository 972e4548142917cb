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

// mapper drives [Node].mapChildren.
//
// Each node kind describes its children exactly once, in mapChildren, by
// calling mapRequired, mapOptional, mapMaybe and mapSeq in source order. The
// mapper runs in one of two modes:
//
//   - collecting: every non-nil child is appended to children, and the node
//     returned by mapChildren is discarded.
//   - rebuilding: each child slot is replaced by the next entry of results,
//     which were produced by visiting the children collected earlier.
type mapper struct {
	collecting bool
	children   []Node

	results []Node
	next    int
	parent  Node
	err     error
}

// Children returns the direct children of n, in source order.
func Children(n Node) []Node {
	if isNil(n) {
		return nil
	}
	m := &mapper{collecting: true}
	n.mapChildren(m)
	return m.children
}

// rebuild returns a copy of n whose children have been replaced with results,
// which must be parallel to Children(n).
//
// If every result is identical to the child it replaces, n itself is returned.
func rebuild(n Node, children, results []Node) (Node, error) {
	same := len(children) == len(results)
	for i := 0; same && i < len(children); i++ {
		same = children[i] == results[i]
	}
	if same {
		return n, nil
	}

	m := &mapper{results: results, parent: n}
	out := n.mapChildren(m)
	if m.err != nil {
		return nil, m.err
	}
	if err := out.validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *mapper) take() Node {
	r := m.results[m.next]
	m.next++
	return r
}

func (m *mapper) fail(err error) {
	if m.err == nil {
		m.err = err
	}
}

// mapRequired maps a child that must always be present.
func mapRequired[N Node](m *mapper, field string, n N) N {
	if isNil(n) {
		return n
	}
	if m.collecting {
		m.children = append(m.children, n)
		return n
	}

	r := m.take()
	if r == Remove {
		m.fail(&RemovalError{Parent: m.parent.Kind(), Field: field})
		return n
	}
	v, ok := r.(N)
	if !ok {
		m.fail(&ReplacementError{Parent: m.parent.Kind(), Field: field, Got: r.Kind()})
		return n
	}
	return v
}

// mapOptional maps a child that may be nil. Removing it sets it to nil.
func mapOptional[N Node](m *mapper, field string, n N) N {
	if isNil(n) {
		return n
	}
	if m.collecting {
		m.children = append(m.children, n)
		return n
	}

	r := m.take()
	if r == Remove {
		var zero N
		return zero
	}
	v, ok := r.(N)
	if !ok {
		m.fail(&ReplacementError{Parent: m.parent.Kind(), Field: field, Got: r.Kind()})
		return n
	}
	return v
}

// mapMaybe maps a formatting slot. Removing it resets it to the default.
func mapMaybe[N Node](m *mapper, field string, n Maybe[N]) Maybe[N] {
	if !n.set {
		return n
	}
	v := mapOptional(m, field, n.value)
	return Some(v)
}

// mapSeq maps a sequence of children. Removed children are dropped.
func mapSeq[N Node](m *mapper, ns []N) []N {
	if m.collecting {
		for _, n := range ns {
			if !isNil(n) {
				m.children = append(m.children, n)
			}
		}
		return ns
	}
	if len(ns) == 0 {
		return ns
	}

	out := make([]N, 0, len(ns))
	for _, n := range ns {
		if isNil(n) {
			continue
		}
		r := m.take()
		if r == Remove {
			continue
		}
		v, ok := r.(N)
		if !ok {
			m.fail(&ReplacementError{Parent: m.parent.Kind(), Got: r.Kind()})
			continue
		}
		out = append(out, v)
	}
	return out
}
