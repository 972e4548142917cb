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
)

var (
	// ErrUnregistered is wrapped by a [DependencyError] for a provider that
	// is not in the wrapper's [Registry].
	ErrUnregistered = errors.New("provider is not registered")
	// ErrUndeclared is wrapped by a [DependencyError] for a provider that
	// read from another provider it did not declare as a dependency.
	ErrUndeclared = errors.New("provider was not declared as a dependency")
)

// DependencyError is returned when the dependency graph of a set of providers
// cannot be resolved.
type DependencyError struct {
	Provider   string
	Dependency string   // Empty if the error is about Provider itself.
	Cycle      []string // Set if Err is a cycle; first and last are equal.
	Err        error
}

// Error implements [error].
func (e *DependencyError) Error() string {
	switch {
	case e.Cycle != nil, e.Dependency == "":
		return fmt.Sprintf("metadata: cannot resolve %q: %v", e.Provider, e.Err)
	default:
		return fmt.Sprintf("metadata: %q depends on %q: %v", e.Provider, e.Dependency, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *DependencyError) Unwrap() error {
	return e.Err
}

// OrderingError is returned when a provider reads the values of another
// provider that has not been computed yet.
type OrderingError struct {
	Provider, Dependency string
	// The waves the two providers were scheduled in. A wave of -1 means the
	// provider was not scheduled by this resolution at all.
	ProviderWave, DependencyWave int
}

// Error implements [error].
func (e *OrderingError) Error() string {
	if e.DependencyWave < 0 {
		return fmt.Sprintf(
			"metadata: %q (wave %d) read %q, which is not being resolved",
			e.Provider, e.ProviderWave, e.Dependency,
		)
	}
	return fmt.Sprintf(
		"metadata: %q (wave %d) read %q (wave %d) before it was computed",
		e.Provider, e.ProviderWave, e.Dependency, e.DependencyWave,
	)
}
