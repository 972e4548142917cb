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
	"slices"

	"github.com/bufbuild/pycst/cst"
	"github.com/bufbuild/pycst/internal/interval"
)

// NodesAt returns every node whose [ByteSpanProvider] span contains the
// byte at offset, outermost first.
//
// The first call resolves [ByteSpanProvider] and builds an index over every
// span; later calls only query it.
func (w *Wrapper) NodesAt(offset int) ([]cst.Node, error) {
	spans, err := w.Resolve(ByteSpanProvider)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	if w.spans == nil {
		w.spans = new(interval.Intersect[int, cst.Node])
		// Pre-order, so that parents are inserted before their children.
		cst.Inspect(w.module, func(n cst.Node) bool {
			span, ok := Value[CodeSpan](spans, n)
			if ok && span.Length > 0 {
				w.spans.Insert(span.Start, span.End()-1, n)
			}
			return true
		})
	}
	index := w.spans
	w.mu.Unlock()

	return slices.Clone(index.Get(offset)), nil
}
