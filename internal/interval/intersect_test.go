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

package interval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/pycst/internal/interval"
)

func TestInsert(t *testing.T) {
	t.Parallel()
	type in struct {
		start, end int
		value      string
	}
	type out = interval.Entry[int, string]

	tests := []struct {
		name   string
		ranges []in // Ranges to insert.
		want   []out
	}{
		{
			name:   "empty-map",
			ranges: []in{{0, 9, "foo"}},
			want:   []out{{0, 9, []string{"foo"}}},
		},
		{
			name:   "disjoint",
			ranges: []in{{30, 39, "bar"}, {0, 9, "foo"}, {20, 25, "baz"}},
			want: []out{
				{0, 9, []string{"foo"}},
				{20, 25, []string{"baz"}},
				{30, 39, []string{"bar"}},
			},
		},
		{
			name:   "nested",
			ranges: []in{{0, 9, "outer"}, {3, 5, "inner"}},
			want: []out{
				{0, 2, []string{"outer"}},
				{3, 5, []string{"outer", "inner"}},
				{6, 9, []string{"outer"}},
			},
		},
		{
			name:   "containing",
			ranges: []in{{3, 5, "inner"}, {0, 9, "outer"}},
			want: []out{
				{0, 2, []string{"outer"}},
				{3, 5, []string{"inner", "outer"}},
				{6, 9, []string{"outer"}},
			},
		},
		{
			name:   "overlap",
			ranges: []in{{0, 5, "a"}, {3, 9, "b"}},
			want: []out{
				{0, 2, []string{"a"}},
				{3, 5, []string{"a", "b"}},
				{6, 9, []string{"b"}},
			},
		},
		{
			name:   "same",
			ranges: []in{{0, 5, "a"}, {0, 5, "b"}},
			want:   []out{{0, 5, []string{"a", "b"}}},
		},
		{
			name:   "spanning-gap",
			ranges: []in{{0, 2, "a"}, {6, 8, "b"}, {1, 7, "c"}},
			want: []out{
				{0, 0, []string{"a"}},
				{1, 2, []string{"a", "c"}},
				{3, 5, []string{"c"}},
				{6, 7, []string{"b", "c"}},
				{8, 8, []string{"b"}},
			},
		},
		{
			name:   "points",
			ranges: []in{{4, 4, "a"}, {0, 9, "b"}, {4, 4, "c"}},
			want: []out{
				{0, 3, []string{"b"}},
				{4, 4, []string{"a", "b", "c"}},
				{5, 9, []string{"b"}},
			},
		},
		{
			name:   "max",
			ranges: []in{{math.MaxInt - 1, math.MaxInt, "a"}, {0, math.MaxInt, "b"}},
			want: []out{
				{0, math.MaxInt - 2, []string{"b"}},
				{math.MaxInt - 1, math.MaxInt, []string{"a", "b"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var m interval.Intersect[int, string]
			for _, r := range tt.ranges {
				m.Insert(r.start, r.end, r.value)
			}
			assert.Equal(t, tt.want, m.Entries())
			assert.Equal(t, len(tt.want), m.Len())
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	var m interval.Intersect[int, string]
	m.Insert(0, 9, "module")
	m.Insert(0, 4, "stmt")
	m.Insert(2, 3, "name")
	m.Insert(12, 20, "other")

	assert.Equal(t, []string{"module", "stmt"}, m.Get(0))
	assert.Equal(t, []string{"module", "stmt", "name"}, m.Get(3))
	assert.Equal(t, []string{"module"}, m.Get(9))
	assert.Nil(t, m.Get(10))
	assert.Equal(t, []string{"other"}, m.Get(20))
	assert.Nil(t, m.Get(21))
	assert.Nil(t, m.Get(-1))

	assert.Panics(t, func() { m.Insert(5, 4, "backwards") })
}
