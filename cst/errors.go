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

package cst

import "fmt"

// ValidationError is returned when a node violates one of its structural
// invariants. A node that fails validation is never returned to the caller.
type ValidationError struct {
	Kind    Kind   // The kind of node that failed validation.
	Message string // What was wrong with it.
}

func validationErrorf(k Kind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// Error implements [error].
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %v: %s", e.Kind, e.Message)
}

// RemovalError is returned by [Transform] when a transformer returns [Remove]
// for a child that its parent cannot do without.
type RemovalError struct {
	Parent Kind   // The kind of the parent node.
	Field  string // The field the child occupied.
}

// Error implements [error].
func (e *RemovalError) Error() string {
	return fmt.Sprintf("cannot remove required child %s of %v", e.Field, e.Parent)
}

// ReplacementError is returned by [Transform] when a transformer replaces a
// child with a node that cannot occupy that child's slot, such as replacing
// an expression with a statement.
type ReplacementError struct {
	Parent Kind
	Field  string // May be empty for sequence elements.
	Got    Kind
}

// Error implements [error].
func (e *ReplacementError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v cannot contain a %v", e.Parent, e.Got)
	}
	return fmt.Sprintf("%v.%s cannot be a %v", e.Parent, e.Field, e.Got)
}
