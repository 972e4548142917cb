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

// Package cst defines a lossless concrete syntax tree (CST) for Python
// source code.
//
// All nodes of the tree implement the [Node] interface, and the root of a
// tree for a whole file is a *[Module]. Unlike an abstract syntax tree, every
// byte of the original source is owned by exactly one node: whitespace,
// comments, blank lines and parentheses are nodes too. Rendering a tree with
// [Render] (or [Module.Code]) reproduces the parsed source byte-for-byte.
//
// Nodes are immutable once built. They should be created with struct
// literals and then passed through [New], which validates them; [WithChanges]
// produces an edited copy that shares every untouched subtree with the
// original. Two nodes are the same node only if they are the same pointer;
// [Equal] compares nodes structurally instead.
//
// Trees are traversed with [Walk], rewritten with [Transform], and inspected
// by several independent visitors in one pass with [VisitBatched]. Every
// traversal uses an explicit stack, so tree depth is not limited by goroutine
// stack size.
//
// Some formatting fields may be left unset using [Maybe]; their value is
// chosen at render time based on where the node sits (for example, a comma
// after a list element is only emitted if the element is not the last one).
//
// This package does not implement any semantic analysis. Facts derived from
// a tree, such as source positions, are computed by the metadata package.
package cst
