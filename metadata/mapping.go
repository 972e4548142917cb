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
	"iter"

	"github.com/bufbuild/pycst/cst"
)

// Mapping holds the values one provider computed, keyed by node identity.
//
// A zero Mapping is empty.
type Mapping struct {
	values map[cst.Node]any
}

// Get returns the value computed for n, if there is one.
func (m Mapping) Get(n cst.Node) (any, bool) {
	v, ok := m.values[n]
	return v, ok
}

// Len returns the number of nodes with a value.
func (m Mapping) Len() int {
	return len(m.values)
}

// All returns an iterator over every node and its value, in no particular
// order.
func (m Mapping) All() iter.Seq2[cst.Node, any] {
	return func(yield func(cst.Node, any) bool) {
		for n, v := range m.values {
			if !yield(n, v) {
				return
			}
		}
	}
}

// Value returns the value computed for n, if there is one and it is a T.
func Value[T any](m Mapping, n cst.Node) (T, bool) {
	v, ok := m.values[n].(T)
	return v, ok
}
