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

// Package toposort provides a generic topological sort implementation.
package toposort

import (
	"iter"
	"slices"

	"github.com/bufbuild/pycst/internal/cycle"
)

const (
	unsorted byte = iota
	walking
	sorted
)

// Sort sorts a DAG topologically: every node comes after all of the nodes it
// depends on.
//
// Roots are the nodes whose dependencies we are querying. key returns a
// comparable key for each node. dag contains the data of the DAG being sorted,
// and returns the dependencies of a node.
//
// If the graph reachable from roots contains a cycle, Sort returns a
// *[cycle.Error] naming one.
func Sort[Node any, Key comparable](
	roots []Node,
	key func(Node) Key,
	dag func(Node) iter.Seq[Node],
) ([]Node, error) {
	s := Sorter[Node, Key]{Key: key}
	return s.Sort(roots, dag)
}

// Sorter is reusable scratch space for a particular stencil of [Sort], which
// needs to allocate memory for book-keeping. This struct allows amortizing that
// cost.
type Sorter[Node any, Key comparable] struct {
	// A function to extract a unique key from each node, for marking.
	Key func(Node) Key

	state map[Key]byte
	stack []frame[Node]
}

type frame[Node any] struct {
	node Node
	// The index of the frame that pushed this one, or -1 for a root.
	parent int
}

// Sort is like [Sort], but re-uses allocated resources stored in s.
func (s *Sorter[Node, Key]) Sort(
	roots []Node,
	dag func(Node) iter.Seq[Node],
) (out []Node, err error) {
	if s.state == nil {
		s.state = make(map[Key]byte)
	}
	defer func() {
		clear(s.state)
		clear(s.stack)
		s.stack = s.stack[:0]
	}()

	for _, root := range roots {
		if s.state[s.Key(root)] == sorted {
			continue
		}
		s.stack = append(s.stack, frame[Node]{node: root, parent: -1})

		// This is DFS that has been tail-call-optimized into a loop. Each
		// frame is visited twice: once to push its dependencies, and once to
		// pop it and add it to the output.
		for len(s.stack) > 0 {
			top := len(s.stack) - 1
			f := s.stack[top]
			k := s.Key(f.node)

			switch s.state[k] {
			case unsorted:
				s.state[k] = walking
				for dep := range dag(f.node) {
					switch s.state[s.Key(dep)] {
					case unsorted:
						s.stack = append(s.stack, frame[Node]{node: dep, parent: top})
					case walking:
						return nil, s.cycle(top, dep)
					}
				}
				continue

			case walking:
				s.state[k] = sorted
				out = append(out, f.node)
			}
			s.stack = s.stack[:top]
		}
	}
	return out, nil
}

// cycle builds the error for a dependency from the frame at index from back
// to the node to, which is still being walked.
func (s *Sorter[Node, Key]) cycle(from int, to Node) error {
	k := s.Key(to)
	path := []Node{to}
	for i := from; i >= 0; i = s.stack[i].parent {
		path = append(path, s.stack[i].node)
		if s.Key(s.stack[i].node) == k {
			break
		}
	}
	slices.Reverse(path)
	return &cycle.Error[Node]{Cycle: path}
}

// Layers partitions the output of [Sort] into layers. Layer zero holds the
// nodes without dependencies in sorted, and each node in layer k has at least
// one dependency in layer k-1 and none in a later layer.
//
// Dependencies that do not appear in sorted are ignored.
func Layers[Node any, Key comparable](
	sorted []Node,
	key func(Node) Key,
	dag func(Node) iter.Seq[Node],
) [][]Node {
	depth := make(map[Key]int, len(sorted))
	var layers [][]Node
	for _, n := range sorted {
		d := 0
		for dep := range dag(n) {
			if dd, ok := depth[key(dep)]; ok {
				d = max(d, dd+1)
			}
		}
		depth[key(n)] = d
		for len(layers) <= d {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], n)
	}
	return layers
}
