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

package metadata_test

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/bufbuild/pycst/cst"
	"github.com/bufbuild/pycst/internal/cycle"
	"github.com/bufbuild/pycst/metadata"
	"github.com/bufbuild/pycst/parser"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func parse(t *testing.T, source string) *cst.Module {
	t.Helper()
	mod, err := parser.ParseModule(source, parser.Config{})
	require.NoError(t, err)
	return mod
}

// fake is a provider whose value for the module is its name followed by the
// values of its dependencies, such as "c(a(),b())".
type fake struct {
	name    string
	deps    []metadata.Provider
	compute func(*metadata.Context) error // Replaces the default.
	record  func(name string)
	calls   atomic.Int32
}

func newFake(name string, deps ...metadata.Provider) *fake {
	return &fake{name: name, deps: deps}
}

func (p *fake) Name() string                      { return p.name }
func (p *fake) Dependencies() []metadata.Provider { return p.deps }

func (p *fake) Compute(ctx *metadata.Context) error {
	p.calls.Add(1)
	if p.record != nil {
		p.record(p.name)
	}
	if p.compute != nil {
		return p.compute(ctx)
	}
	var deps []string
	for _, dep := range p.deps {
		v, ok, err := metadata.Get[string](ctx, dep, ctx.Module())
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: no value for module", dep.Name())
		}
		deps = append(deps, v)
	}
	ctx.Set(ctx.Module(), fmt.Sprintf("%s(%s)", p.name, strings.Join(deps, ",")))
	return nil
}

func registry(t *testing.T, providers ...metadata.Provider) *metadata.Registry {
	t.Helper()
	r, err := metadata.NewRegistry(providers...)
	require.NoError(t, err)
	return r
}

func wrap(t *testing.T, providers ...metadata.Provider) (*cst.Module, *metadata.Wrapper) {
	t.Helper()
	mod := parse(t, "x = 1\n")
	return mod, metadata.NewWrapper(mod,
		metadata.WithRegistry(registry(t, providers...)),
		metadata.WithLogger(zaptest.NewLogger(t)),
	)
}

func TestResolveWaves(t *testing.T) {
	t.Parallel()

	a := newFake("a")
	b := newFake("b", a)
	c := newFake("c", a)
	d := newFake("d", b, c)

	var mu sync.Mutex
	var order []string
	for _, p := range []*fake{a, b, c, d} {
		p.record = func(name string) {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}

	mod := parse(t, "x = 1\n")
	w := metadata.NewWrapper(mod,
		metadata.WithRegistry(registry(t, a, b, c, d)),
		metadata.WithLogger(zaptest.NewLogger(t)),
		metadata.WithParallelism(4),
	)

	m, err := w.Resolve(d)
	require.NoError(t, err)
	v, ok := metadata.Value[string](m, mod)
	require.True(t, ok)
	assert.Equal(t, "d(b(a()),c(a()))", v)
	assert.Equal(t, []string{"a", "b", "c", "d"}, w.Cached())

	require.Len(t, order, 4)
	assert.Equal(t, "a", order[0])
	assert.ElementsMatch(t, []string{"b", "c"}, order[1:3])
	assert.Equal(t, "d", order[3])

	// Everything is cached now.
	all, err := w.ResolveMany(a, d)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	for _, p := range []*fake{a, b, c, d} {
		assert.EqualValues(t, 1, p.calls.Load(), p.name)
	}

	v, ok = metadata.Lookup[string](w, b, mod)
	assert.True(t, ok)
	assert.Equal(t, "b(a())", v)
	_, ok = metadata.Lookup[int](w, b, mod)
	assert.False(t, ok)
}

func TestResolvePartiallyCached(t *testing.T) {
	t.Parallel()

	a := newFake("a")
	b := newFake("b", a)
	_, w := wrap(t, a, b)

	_, err := w.Resolve(a)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, w.Cached())

	_, err = w.Resolve(b)
	require.NoError(t, err)
	assert.EqualValues(t, 1, a.calls.Load())
	assert.EqualValues(t, 1, b.calls.Load())
}

func TestResolveCycle(t *testing.T) {
	t.Parallel()

	a := newFake("a")
	b := newFake("b", a)
	a.deps = []metadata.Provider{b}
	c := newFake("c", a)
	_, w := wrap(t, a, b, c)

	_, err := w.Resolve(c)
	var de *metadata.DependencyError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, []string{"a", "b", "a"}, de.Cycle)
	var ce *cycle.Error[string]
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, de.Cycle, ce.Cycle)

	assert.Zero(t, a.calls.Load())
	assert.Zero(t, b.calls.Load())
	assert.Zero(t, c.calls.Load())
	assert.Empty(t, w.Cached())
}

func TestResolveUnregistered(t *testing.T) {
	t.Parallel()

	a := newFake("a")
	b := newFake("b", a)
	_, w := wrap(t, b)

	_, err := w.Resolve(a)
	require.ErrorIs(t, err, metadata.ErrUnregistered)
	var de *metadata.DependencyError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "a", de.Provider)
	assert.Empty(t, de.Dependency)

	_, err = w.Resolve(b)
	require.ErrorIs(t, err, metadata.ErrUnregistered)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "b", de.Provider)
	assert.Equal(t, "a", de.Dependency)
	assert.Zero(t, b.calls.Load())
}

func TestResolveOrdering(t *testing.T) {
	t.Parallel()

	a := newFake("a")
	b := newFake("b", a)
	c := newFake("c", a)
	// c reads b, which runs in the same wave. The error is swallowed, but the
	// resolution still fails.
	c.compute = func(ctx *metadata.Context) error {
		_, _, _ = metadata.Get[string](ctx, b, ctx.Module())
		return nil
	}
	_, w := wrap(t, a, b, c)

	_, err := w.ResolveMany(b, c)
	var oe *metadata.OrderingError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, metadata.OrderingError{
		Provider:       "c",
		Dependency:     "b",
		ProviderWave:   1,
		DependencyWave: 1,
	}, *oe)
	assert.Empty(t, w.Cached())

	// b is not being resolved at all.
	_, err = w.Resolve(c)
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, -1, oe.DependencyWave)
	assert.Equal(t, 1, oe.ProviderWave)
}

func TestResolveUndeclared(t *testing.T) {
	t.Parallel()

	a := newFake("a")
	b := newFake("b")
	b.compute = func(ctx *metadata.Context) error {
		_, err := ctx.Mapping(a)
		return err
	}
	_, w := wrap(t, a, b)

	_, err := w.Resolve(a)
	require.NoError(t, err)
	_, err = w.Resolve(b)
	require.ErrorIs(t, err, metadata.ErrUndeclared)
	var de *metadata.DependencyError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "b", de.Provider)
	assert.Equal(t, "a", de.Dependency)
	assert.Equal(t, []string{"a"}, w.Cached())
}

func TestResolveProviderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	a := newFake("a")
	b := newFake("b", a)
	b.compute = func(*metadata.Context) error { return boom }
	c := newFake("c", b)
	_, w := wrap(t, a, b, c)

	_, err := w.Resolve(c)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `provider "b" failed`)
	assert.Zero(t, c.calls.Load())
	// a succeeded, but nothing from a failed resolution is kept.
	assert.Empty(t, w.Cached())

	_, err = w.Resolve(a)
	require.NoError(t, err)
	assert.EqualValues(t, 2, a.calls.Load())
}

func TestResolveParallel(t *testing.T) {
	t.Parallel()

	root := newFake("root")
	var leaves []metadata.Provider
	for i := range 16 {
		leaves = append(leaves, newFake(fmt.Sprintf("leaf%02d", i), root))
	}
	mod := parse(t, "x = 1\n")
	w := metadata.NewWrapper(mod,
		metadata.WithRegistry(registry(t, append(leaves, root)...)),
		metadata.WithParallelism(0),
	)

	// Lookups from many goroutines once the cache is populated.
	out, err := w.ResolveMany(leaves...)
	require.NoError(t, err)
	require.Len(t, out, 16)

	var wg sync.WaitGroup
	for _, leaf := range leaves {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, ok := metadata.Lookup[string](w, leaf, mod)
			assert.True(t, ok)
			assert.Equal(t, leaf.Name()+"(root())", v)
		}()
	}
	wg.Wait()
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := metadata.DefaultRegistry()
	assert.Equal(t, []string{
		"byte_span",
		"expression_context",
		"layout",
		"parent",
		"position",
		"whitespace_inclusive_position",
	}, r.Names())

	p, ok := r.Lookup("position")
	assert.True(t, ok)
	assert.Same(t, metadata.PositionProvider, p)

	err := r.Register(newFake("position"))
	assert.ErrorContains(t, err, "already registered")

	_, err = metadata.NewRegistry(notAProvider{})
	assert.ErrorContains(t, err, "must implement Computer or Batchable")
}

type notAProvider struct{}

func (notAProvider) Name() string                      { return "nope" }
func (notAProvider) Dependencies() []metadata.Provider { return nil }

func TestNewTreeNewCache(t *testing.T) {
	t.Parallel()

	mod := parse(t, "x = 1\n")
	w := metadata.NewWrapper(mod)
	_, err := w.Resolve(metadata.PositionProvider)
	require.NoError(t, err)
	assert.Equal(t, []string{"layout", "position"}, w.Cached())

	renamed, err := cst.Transform(mod, cst.TransformerFuncs{
		OnLeave: func(_, updated cst.Node) (cst.Node, error) {
			if n, ok := updated.(*cst.Name); ok {
				return cst.WithChanges(n, func(n *cst.Name) { n.Value = "longer" })
			}
			return updated, nil
		},
	})
	require.NoError(t, err)

	w2 := metadata.NewWrapper(renamed)
	assert.Empty(t, w2.Cached())
	m, err := w2.Resolve(metadata.PositionProvider)
	require.NoError(t, err)

	// The old tree's nodes are unknown to the new wrapper.
	_, ok := metadata.Value[metadata.CodeRange](m, mod)
	assert.False(t, ok)
	r, ok := metadata.Value[metadata.CodeRange](m, renamed)
	require.True(t, ok)
	assert.Equal(t, "1:0-2:0", r.String())
	assert.True(t, slices.Equal([]string{"layout", "position"}, w.Cached()))
}

func TestSharedNodes(t *testing.T) {
	t.Parallel()

	mod := parse(t, "x = 1\ny = 2\n")
	first := mod.Body[0]
	twice, err := cst.WithChanges(mod, func(m *cst.Module) {
		m.Body = []cst.Statement{first, first}
	})
	require.NoError(t, err)
	require.Equal(t, "x = 1\nx = 1\n", twice.Code())

	w := metadata.NewWrapper(twice)
	_, err = w.Resolve(metadata.PositionProvider)
	var invalid *cst.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, cst.KindSimpleStatementLine, invalid.Kind)
	assert.Empty(t, w.Cached())
	_, err = w.Resolve(metadata.ParentNodeProvider)
	assert.ErrorAs(t, err, &invalid)

	// A deep copy gives each occurrence its own identity.
	copied := cst.DeepCopy(twice)
	m, err := metadata.NewWrapper(copied).Resolve(metadata.PositionProvider)
	require.NoError(t, err)
	var ranges []string
	for _, stmt := range copied.Body {
		r, ok := metadata.Value[metadata.CodeRange](m, stmt)
		require.True(t, ok)
		ranges = append(ranges, r.String())
	}
	assert.Equal(t, []string{"1:0-1:5", "2:0-2:5"}, ranges)

	// Stars carry no data, but are still distinct nodes.
	_, err = metadata.NewWrapper(parse(t, "from a import *\nfrom b import *\n")).Resolve(metadata.ParentNodeProvider)
	assert.NoError(t, err)
}

type nameCollector struct {
	w     *metadata.Wrapper
	names []string
}

func (*nameCollector) Dependencies() []metadata.Provider {
	return []metadata.Provider{metadata.ExpressionContextProvider}
}

func (c *nameCollector) Visit(n cst.Node) bool {
	if name, ok := n.(*cst.Name); ok {
		ec, _ := metadata.Lookup[metadata.ExpressionContext](c.w, metadata.ExpressionContextProvider, name)
		c.names = append(c.names, name.Value+":"+ec.String())
	}
	return true
}

func (*nameCollector) Leave(cst.Node) {}

func TestVisit(t *testing.T) {
	t.Parallel()

	w := metadata.NewWrapper(parse(t, "x = y\n"))
	c := &nameCollector{w: w}
	require.NoError(t, w.Visit(c))
	assert.Equal(t, []string{"x:Store", "y:Load"}, c.names)
}
