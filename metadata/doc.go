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

// Package metadata computes facts about a [cst.Module] that are not stored in
// the tree itself, such as the source position of each node or the node that
// contains it.
//
// Each kind of fact is computed by a [Provider]. Providers may depend on other
// providers; a [Wrapper] resolves a set of providers by computing their
// dependencies first, in waves, and caches the results for the lifetime of
// the tree it wraps. Because nodes are immutable, a transformed tree is a
// different tree and needs a new Wrapper.
//
// Values computed by a provider are keyed by node identity, and are read back
// with [Value] or [Lookup].
package metadata
