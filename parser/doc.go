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

// Package parser turns Python source code into a lossless concrete syntax
// tree, as defined by the cst package.
//
// The grammar is that of Python 3.0 through 3.8, without assignment
// expressions or positional-only parameters. Which keywords and literals are
// recognized depends on [Config.PythonVersion].
//
// Every byte of the input ends up in the tree, so for any input that parses
// successfully, rendering the returned tree reproduces the input exactly:
//
//	mod, err := parser.ParseModule(src, parser.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	mod.Code() == src // Always true.
//
// Whitespace is attached to nodes following a fixed set of rules. Blank and
// comment lines belong to the statement that follows them, except that lines
// at the end of an indented block that are indented at least as deeply as
// the block belong to the block's footer, lines at the top of the file that
// are separated from the first statement by a blank line belong to the
// module header, and lines after the last statement belong to the module
// footer.
//
// Syntax errors are reported as a *[SyntaxError], which carries the position
// of the error and the offending line of source.
package parser
