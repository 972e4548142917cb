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

// Package interval provides an interval intersection map over integer
// endpoints.
package interval

import (
	"fmt"
	"slices"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Intersect is an interval intersection map: a collection of closed
// intervals, such that given a point, one can query for the values of every
// interval that contains it.
//
// Internally, the covered points are split into disjoint entries, each
// holding the values of every interval that covers all of it.
//
// A zero value is ready to use.
type Intersect[K Endpoint, V any] struct {
	// Keyed by the end of each entry.
	tree    btree.Map[K, *Entry[K, V]]
	pending []*Entry[K, V] // Scratch space for Insert().
}

// Entry is a maximal range of points contained by the same intervals.
type Entry[K Endpoint, V any] struct {
	Start, End K // Inclusive.
	// The values of the intervals containing this entry, in insertion order.
	Values []V
}

// Contains returns whether an entry contains a given point.
func (e Entry[K, V]) Contains(point K) bool {
	return e.Start <= point && point <= e.End
}

// Get returns the values of every interval that contains point, in the order
// they were inserted. Returns nil if there are none. The returned slice must
// not be modified.
func (m *Intersect[K, V]) Get(point K) []V {
	iter := m.tree.Iter()
	if !iter.Seek(point) || !iter.Value().Contains(point) {
		return nil
	}
	return iter.Value().Values
}

// Entries returns the disjoint entries of this map, in order.
func (m *Intersect[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, m.tree.Len())
	m.tree.Scan(func(_ K, e *Entry[K, V]) bool {
		out = append(out, *e)
		return true
	})
	return out
}

// Len returns the number of disjoint entries in this map.
func (m *Intersect[K, V]) Len() int {
	return m.tree.Len()
}

// Insert adds the closed interval [start, end] with the given value.
func (m *Intersect[K, V]) Insert(start, end K, value V) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	// Make entry boundaries at start and just after end, so that every entry
	// touching [start, end] lies entirely inside of it.
	m.split(start)
	if end < end+1 {
		m.split(end + 1)
	}

	next, done := start, false
	gap := func(from, to K) {
		m.pending = append(m.pending, &Entry[K, V]{Start: from, End: to, Values: []V{value}})
	}
	iter := m.tree.Iter()
	for more := iter.Seek(start); more; more = iter.Next() {
		e := iter.Value()
		if e.Start > end {
			break
		}
		if next < e.Start {
			gap(next, e.Start-1)
		}
		e.Values = append(slices.Clip(e.Values), value)
		if e.End >= end {
			done = true
			break
		}
		next = e.End + 1
	}
	if !done {
		gap(next, end)
	}

	for _, e := range m.pending {
		m.tree.Set(e.End, e)
	}
	clear(m.pending)
	m.pending = m.pending[:0]
}

// split splits the entry containing point, if any, so that an entry starts
// at point.
func (m *Intersect[K, V]) split(point K) {
	iter := m.tree.Iter()
	if !iter.Seek(point) {
		return
	}
	e := iter.Value()
	if e.Start >= point {
		return
	}
	m.tree.Set(point-1, &Entry[K, V]{Start: e.Start, End: point - 1, Values: slices.Clip(e.Values)})
	e.Start = point
	e.Values = slices.Clip(e.Values)
}
