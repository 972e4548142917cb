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
	"maps"
	"runtime"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/bufbuild/pycst/cst"
	"github.com/bufbuild/pycst/internal/interval"
)

// Wrapper resolves providers over a single tree, and caches their values.
//
// Resolution is serialized, but the cache may be read with [Lookup] from any
// number of goroutines once populated. A provider must read its dependencies
// through its [Context]; calling back into the wrapper that is resolving it
// deadlocks.
type Wrapper struct {
	module      *cst.Module
	registry    *Registry
	logger      *zap.Logger
	parallelism int

	mu      sync.RWMutex
	cache   map[string]Mapping
	checked bool
	invalid error // Set by the first resolution if the tree shares nodes.
	spans *interval.Intersect[int, cst.Node] // Built by NodesAt.
}

// Option configures a [Wrapper].
type Option func(*Wrapper)

// WithRegistry sets the providers the wrapper may resolve. Defaults to
// [DefaultRegistry].
func WithRegistry(r *Registry) Option {
	return func(w *Wrapper) { w.registry = r }
}

// WithLogger sets the logger used to trace resolution. Defaults to a no-op
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(w *Wrapper) { w.logger = l }
}

// WithParallelism sets how many [Computer] providers of the same wave may run
// at once. Setting it to zero or negative uses GOMAXPROCS. Defaults to 1.
func WithParallelism(n int) Option {
	return func(w *Wrapper) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		w.parallelism = n
	}
}

// NewWrapper returns a wrapper over module. The wrapper's cache is only
// valid for this exact tree; callers must not wrap a tree and then resolve
// against a transformed copy of it.
//
// Values are keyed by node identity, so every node must occur in the tree
// once. Resolving providers over a tree that contains the same node twice
// fails with a *[cst.ValidationError]; use [cst.DeepCopy] to give each
// occurrence its own identity first.
func NewWrapper(module *cst.Module, opts ...Option) *Wrapper {
	w := &Wrapper{
		module:      module,
		logger:      zap.NewNop(),
		parallelism: 1,
		cache:       make(map[string]Mapping),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.registry == nil {
		w.registry = DefaultRegistry()
	}
	return w
}

// Module returns the wrapped tree.
func (w *Wrapper) Module() *cst.Module {
	return w.module
}

// Cached returns the names of the providers whose values are cached, sorted.
func (w *Wrapper) Cached() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Sorted(maps.Keys(w.cache))
}

// Resolve computes the values of p, and everything it depends on, unless
// they are already cached.
func (w *Wrapper) Resolve(p Provider) (Mapping, error) {
	out, err := w.ResolveMany(p)
	if err != nil {
		return Mapping{}, err
	}
	return out[p.Name()], nil
}

// ResolveMany is like [Wrapper.Resolve], but resolves several providers at
// once. The result is keyed by provider name.
//
// If any provider fails, nothing computed by this call is cached.
func (w *Wrapper) ResolveMany(providers ...Provider) (map[string]Mapping, error) {
	w.mu.RLock()
	out, ok := w.collect(providers)
	w.mu.RUnlock()
	if ok {
		return out, nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if out, ok := w.collect(providers); ok {
		return out, nil
	}
	if !w.checked {
		w.checked = true
		w.invalid = checkShared(w.module)
	}
	if w.invalid != nil {
		return nil, w.invalid
	}

	s, err := w.schedule(providers)
	if err != nil {
		return nil, err
	}
	staged, err := s.execute()
	if err != nil {
		w.logger.Debug("metadata: resolution failed", zap.Error(err))
		return nil, err
	}
	maps.Copy(w.cache, staged)

	out, _ = w.collect(providers)
	return out, nil
}

// collect returns the cached values of providers, if all of them are cached.
func (w *Wrapper) collect(providers []Provider) (map[string]Mapping, bool) {
	out := make(map[string]Mapping, len(providers))
	for _, p := range providers {
		m, ok := w.cache[p.Name()]
		if !ok {
			return nil, false
		}
		out[p.Name()] = m
	}
	return out, true
}

// checkShared returns an error naming the first node, in pre-order, that
// occurs more than once in the tree.
func checkShared(module *cst.Module) error {
	seen := make(map[cst.Node]struct{})
	var shared cst.Node
	cst.Inspect(module, func(n cst.Node) bool {
		if shared != nil {
			return false
		}
		if _, ok := seen[n]; ok {
			shared = n
			return false
		}
		seen[n] = struct{}{}
		return true
	})
	if shared == nil {
		return nil
	}
	return &cst.ValidationError{
		Kind:    shared.Kind(),
		Message: "node occurs more than once in the tree",
	}
}

// Visit walks the tree with v. If v implements [Dependent], its dependencies
// are resolved first, so that v may read them with [Lookup].
func (w *Wrapper) Visit(v cst.Visitor) error {
	if d, ok := v.(Dependent); ok {
		if _, err := w.ResolveMany(d.Dependencies()...); err != nil {
			return err
		}
	}
	cst.Walk(w.module, v)
	return nil
}

// Lookup returns the cached value p computed for n. It does not compute
// anything: p must have been resolved already.
func Lookup[T any](w *Wrapper, p Provider, n cst.Node) (T, bool) {
	w.mu.RLock()
	m := w.cache[p.Name()]
	w.mu.RUnlock()
	return Value[T](m, n)
}
