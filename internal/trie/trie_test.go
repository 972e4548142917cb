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

package trie_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/pycst/internal/trie"
)

func TestTrie(t *testing.T) {
	t.Parallel()

	tests := []struct {
		data []string
		keys []string
		want [][]int
	}{
		{
			data: []string{"fo", "foo", "ba", "bar", "baz"},
			keys: []string{"fo", "foo", "ba", "bar", "baz"},
			want: [][]int{{0}, {0, 1}, {2}, {2, 3}, {2, 4}},
		},
		{
			data: []string{"fo", "foo", "ba", "bar", "baz"},
			keys: []string{"f", "fooo", "barr", "bazr", "baar"},
			want: [][]int{nil, {0, 1}, {2, 3}, {2, 4}, {2}},
		},
		{
			data: []string{"*", "**", "**=", "*="},
			keys: []string{"*", "**x", "**=", "*=*", "/"},
			want: [][]int{{0}, {0, 1}, {0, 1, 2}, {0, 3}, nil},
		},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			t.Parallel()

			trie := new(trie.Trie[int])
			for i, s := range test.data {
				trie.Insert(s, i)
			}
			assert.Equal(t, len(test.data), trie.Len())

			for i, key := range test.keys {
				var got []int
				for prefix, v := range trie.Prefixes(key) {
					assert.True(t, strings.HasPrefix(key, prefix))
					got = append(got, v)
				}
				assert.Equal(t, test.want[i], got, "#%d", i)

				prefix, v, ok := trie.Get(key)
				if len(got) == 0 {
					assert.False(t, ok)
					continue
				}
				assert.True(t, ok)
				assert.Equal(t, test.data[v], prefix)
				assert.Equal(t, got[len(got)-1], v)
			}
		})
	}
}

func TestTrieEmptyKey(t *testing.T) {
	t.Parallel()

	trie := new(trie.Trie[string])
	_, _, ok := trie.Get("x")
	assert.False(t, ok)

	trie.Insert("", "empty")
	trie.Insert("", "again")
	assert.Equal(t, 1, trie.Len())
	prefix, v, ok := trie.Get("x")
	assert.True(t, ok)
	assert.Empty(t, prefix)
	assert.Equal(t, "again", v)
}

func TestHammerTrie(t *testing.T) {
	t.Parallel()

	trie := new(trie.Trie[int])

	for i := range 1000 {
		trie.Insert(strings.Repeat("a", i), i+1)
	}

	for i := range 1000 {
		k := strings.Repeat("a", i)
		_, v, _ := trie.Get(k)
		assert.Equal(t, i+1, v, len(k))
	}
}
