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
	"errors"
	"fmt"
	"iter"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/pycst/cst"
	"github.com/bufbuild/pycst/internal/cycle"
	"github.com/bufbuild/pycst/internal/toposort"
)

// run is a single resolution of a set of providers.
type run struct {
	w      *Wrapper
	layers [][]Provider
	waves  map[string]int

	// Values computed by waves that have finished. Only written between
	// waves, so providers may read it concurrently.
	staged map[string]Mapping
}

// schedule checks the dependency graph of providers and splits the providers
// that are not cached yet into waves.
//
// Must be called with w.mu held for writing.
func (w *Wrapper) schedule(providers []Provider) (*run, error) {
	// Check that everything reachable is registered before sorting, so that
	// the graph only contains canonical providers.
	seen := make(map[string]struct{})
	queue := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if _, ok := w.registry.Lookup(p.Name()); !ok {
			return nil, &DependencyError{Provider: p.Name(), Err: ErrUnregistered}
		}
		queue = append(queue, p)
	}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if _, ok := seen[p.Name()]; ok {
			continue
		}
		seen[p.Name()] = struct{}{}
		for _, dep := range p.Dependencies() {
			if _, ok := w.registry.Lookup(dep.Name()); !ok {
				return nil, &DependencyError{Provider: p.Name(), Dependency: dep.Name(), Err: ErrUnregistered}
			}
			queue = append(queue, dep)
		}
	}

	canonical := func(p Provider) Provider {
		q, _ := w.registry.Lookup(p.Name())
		return q
	}
	dag := func(p Provider) iter.Seq[Provider] {
		return func(yield func(Provider) bool) {
			for _, dep := range p.Dependencies() {
				if _, ok := w.cache[dep.Name()]; ok {
					continue
				}
				if !yield(canonical(dep)) {
					return
				}
			}
		}
	}

	var roots []Provider
	for _, p := range providers {
		if _, ok := w.cache[p.Name()]; !ok {
			roots = append(roots, canonical(p))
		}
	}
	sorted, err := toposort.Sort(roots, Provider.Name, dag)
	if err != nil {
		var cyc *cycle.Error[Provider]
		if !errors.As(err, &cyc) {
			return nil, err
		}
		names := make([]string, len(cyc.Cycle))
		for i, p := range cyc.Cycle {
			names[i] = p.Name()
		}
		return nil, &DependencyError{
			Provider: names[0],
			Cycle:    names,
			Err:      &cycle.Error[string]{Cycle: names},
		}
	}

	r := &run{
		w:      w,
		layers: toposort.Layers(sorted, Provider.Name, dag),
		waves:  make(map[string]int, len(sorted)),
		staged: make(map[string]Mapping, len(sorted)),
	}
	for i, layer := range r.layers {
		for _, p := range layer {
			r.waves[p.Name()] = i
		}
	}
	return r, nil
}

// execute runs every wave in order. Returns the values of every provider it
// computed.
func (r *run) execute() (map[string]Mapping, error) {
	for i, layer := range r.layers {
		names := make([]string, len(layer))
		for j, p := range layer {
			names[j] = p.Name()
		}
		r.w.logger.Debug("metadata: running wave", zap.Int("wave", i), zap.Strings("providers", names))

		if err := r.runWave(i, layer); err != nil {
			return nil, err
		}
	}
	return r.staged, nil
}

// runWave computes the providers of one wave. Batchable providers share one
// walk of the tree; the rest are run through an errgroup.
func (r *run) runWave(wave int, layer []Provider) error {
	contexts := make([]*Context, len(layer))
	var visitors []cst.Visitor
	var computers []*Context
	for i, p := range layer {
		ctx := r.newContext(p, wave)
		contexts[i] = ctx
		if b, ok := p.(Batchable); ok {
			visitors = append(visitors, b.Visitor(ctx))
		} else {
			computers = append(computers, ctx)
		}
	}

	cst.VisitBatched(r.w.module, visitors...)

	var g errgroup.Group
	g.SetLimit(r.w.parallelism)
	for _, ctx := range computers {
		g.Go(func() error {
			return ctx.result(ctx.provider.(Computer).Compute(ctx))
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, ctx := range contexts {
		if err := ctx.result(nil); err != nil {
			return err
		}
	}
	for _, ctx := range contexts {
		r.staged[ctx.provider.Name()] = Mapping{values: ctx.values}
	}
	return nil
}

func (r *run) newContext(p Provider, wave int) *Context {
	declared := make(map[string]struct{})
	for _, dep := range p.Dependencies() {
		declared[dep.Name()] = struct{}{}
	}
	return &Context{
		run:      r,
		provider: p,
		wave:     wave,
		declared: declared,
		logger:   r.w.logger.With(zap.String("provider", p.Name()), zap.Int("wave", wave)),
		values:   make(map[cst.Node]any),
	}
}

// available returns the values of a provider that a provider of the current
// wave may read.
func (r *run) available(name string) (Mapping, bool) {
	if m, ok := r.w.cache[name]; ok {
		return m, true
	}
	m, ok := r.staged[name]
	return m, ok
}

// result combines the error a provider returned with any error it recorded.
func (c *Context) result(err error) error {
	if c.err != nil {
		err = c.err
	}
	if err == nil {
		return nil
	}
	var oe *OrderingError
	var de *DependencyError
	if errors.As(err, &oe) || errors.As(err, &de) {
		return err
	}
	return fmt.Errorf("metadata: provider %q failed: %w", c.provider.Name(), err)
}
