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

// Package trie provides a map from strings to values that answers longest
// prefix queries, for use in lexers.
package trie

import (
	"bytes"
	"iter"
)

// Trie implements a map from strings to V, except lookups return the key
// which is the longest prefix of a given query.
//
// The zero value is empty and ready to use.
type Trie[V any] struct {
	root node[V]
	len  int
}

type node[V any] struct {
	// edges[i] is the byte that leads to children[i].
	edges    []byte
	children []*node[V]

	value V
	set   bool
}

func (n *node[V]) child(c byte) *node[V] {
	if i := bytes.IndexByte(n.edges, c); i >= 0 {
		return n.children[i]
	}
	return nil
}

// Len returns the number of keys in the trie.
func (t *Trie[V]) Len() int {
	return t.len
}

// Insert adds a new value to this trie, replacing the value of key if it is
// already present.
func (t *Trie[V]) Insert(key string, value V) {
	n := &t.root
	for i := range len(key) {
		next := n.child(key[i])
		if next == nil {
			next = new(node[V])
			n.edges = append(n.edges, key[i])
			n.children = append(n.children, next)
		}
		n = next
	}
	if !n.set {
		t.len++
	}
	n.value, n.set = value, true
}

// Get returns the value corresponding to the longest prefix of key present
// in the trie. The match is exact when len(key) == len(prefix).
//
// If no key in the trie is a prefix of key, returns false.
func (t *Trie[V]) Get(key string) (prefix string, value V, ok bool) {
	for p, v := range t.Prefixes(key) {
		prefix, value, ok = p, v, true
	}
	return prefix, value, ok
}

// Prefixes returns an iterator over every key in the trie that is a prefix
// of key, shortest first.
func (t *Trie[V]) Prefixes(key string) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		n := &t.root
		for i := 0; n != nil; i++ {
			if n.set && !yield(key[:i], n.value) {
				return
			}
			if i == len(key) {
				return
			}
			n = n.child(key[i])
		}
	}
}
