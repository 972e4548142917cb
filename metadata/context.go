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
	"fmt"

	"go.uber.org/zap"

	"github.com/bufbuild/pycst/cst"
)

// Context is passed to a provider while it computes its values.
//
// A Context is not safe for concurrent use; a provider that fans out work to
// several goroutines must collect their results before calling [Context.Set].
type Context struct {
	run      *run
	provider Provider
	wave     int
	declared map[string]struct{}
	logger   *zap.Logger

	values map[cst.Node]any
	err    error // The first error recorded by Fail.
}

// Module returns the root of the tree being computed over.
func (c *Context) Module() *cst.Module {
	return c.run.w.module
}

// Logger returns a logger annotated with the provider's name.
func (c *Context) Logger() *zap.Logger {
	return c.logger
}

// Set records the value of this provider for n. Setting a value for the
// same node twice keeps the last one.
func (c *Context) Set(n cst.Node, v any) {
	if n == nil {
		return
	}
	c.values[n] = v
}

// Fail records an error for this provider. Resolution fails with the first
// error recorded, even if the provider otherwise succeeds.
func (c *Context) Fail(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}

// Mapping returns the values of dep, which must be a declared dependency of
// this provider and must have been computed already.
//
// Misuse is recorded with [Context.Fail] as well as returned, so it fails the
// resolution even if the provider ignores the error.
func (c *Context) Mapping(dep Provider) (Mapping, error) {
	name := dep.Name()
	m, ok := c.run.available(name)
	if !ok {
		wave, scheduled := c.run.waves[name]
		if !scheduled {
			wave = -1
		}
		err := &OrderingError{
			Provider:       c.provider.Name(),
			Dependency:     name,
			ProviderWave:   c.wave,
			DependencyWave: wave,
		}
		c.Fail(err)
		return Mapping{}, err
	}
	if _, ok := c.declared[name]; !ok {
		err := &DependencyError{Provider: c.provider.Name(), Dependency: name, Err: ErrUndeclared}
		c.Fail(err)
		return Mapping{}, err
	}
	return m, nil
}

// Get reads the value dep computed for n.
//
// Returns false if dep has no value for n. Returns an error if dep may not be
// read (see [Context.Mapping]) or if its value is not a T.
func Get[T any](c *Context, dep Provider, n cst.Node) (T, bool, error) {
	var zero T
	m, err := c.Mapping(dep)
	if err != nil {
		return zero, false, err
	}
	v, ok := m.Get(n)
	if !ok {
		return zero, false, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, false, fmt.Errorf("metadata: %q has a %T for %v, not a %T", dep.Name(), v, n.Kind(), zero)
	}
	return t, true, nil
}
