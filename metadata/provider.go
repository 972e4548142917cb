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
	"maps"
	"slices"

	"github.com/bufbuild/pycst/cst"
)

// Provider computes one kind of fact about the nodes of a tree.
//
// Every provider must also implement either [Computer] or [Batchable]. If it
// implements both, it is run as a [Batchable].
type Provider interface {
	// Name uniquely identifies the provider within a [Registry]. The values
	// a provider computes are cached by name.
	Name() string
	// Dependencies returns the providers whose values this provider reads.
	// They are always computed first.
	Dependencies() []Provider
}

// Computer is a [Provider] that computes its values in one call, usually by
// walking the tree itself or by consuming the values of its dependencies.
//
// Computers in the same wave may run in parallel with each other.
type Computer interface {
	Provider
	Compute(ctx *Context) error
}

// Batchable is a [Provider] whose values are computed by a visitor.
//
// The visitors of every batchable provider in the same wave share a single
// walk of the tree. A visitor reports failure with [Context.Fail].
type Batchable interface {
	Provider
	Visitor(ctx *Context) cst.Visitor
}

// Dependent is implemented by visitors passed to [Wrapper.Visit] that read
// metadata while they walk.
type Dependent interface {
	Dependencies() []Provider
}

// Registry is the set of providers a [Wrapper] may resolve.
//
// A zero Registry is empty and ready to use.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry returns a registry holding the given providers.
func NewRegistry(providers ...Provider) (*Registry, error) {
	r := new(Registry)
	if err := r.Register(providers...); err != nil {
		return nil, err
	}
	return r, nil
}

// DefaultRegistry returns a new registry holding every provider defined in
// this package.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		LayoutProvider,
		PositionProvider,
		WhitespaceInclusivePositionProvider,
		ByteSpanProvider,
		ParentNodeProvider,
		ExpressionContextProvider,
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Register adds providers to the registry.
//
// Returns an error if a provider implements neither [Computer] nor
// [Batchable], or if its name is already taken.
func (r *Registry) Register(providers ...Provider) error {
	if r.providers == nil {
		r.providers = make(map[string]Provider)
	}
	for _, p := range providers {
		name := p.Name()
		switch p.(type) {
		case Batchable, Computer:
		default:
			return fmt.Errorf("metadata: provider %q (%T) must implement Computer or Batchable", name, p)
		}
		if _, ok := r.providers[name]; ok {
			return fmt.Errorf("metadata: provider %q is already registered", name)
		}
		r.providers[name] = p
	}
	return nil
}

// Lookup returns the provider registered under name.
func (r *Registry) Lookup(name string) (Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

// Names returns the names of every registered provider, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.providers))
}
