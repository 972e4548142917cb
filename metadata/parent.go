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

import "github.com/bufbuild/pycst/cst"

// ParentNodeProvider records the parent of every node except the root.
var ParentNodeProvider Provider = parentProvider{}

type parentProvider struct{}

func (parentProvider) Name() string             { return "parent" }
func (parentProvider) Dependencies() []Provider { return nil }

func (parentProvider) Visitor(ctx *Context) cst.Visitor {
	var stack []cst.Node
	return cst.VisitorFuncs{
		OnVisit: func(n cst.Node) bool {
			if len(stack) > 0 {
				ctx.Set(n, stack[len(stack)-1])
			}
			stack = append(stack, n)
			return true
		},
		OnLeave: func(cst.Node) {
			stack = stack[:len(stack)-1]
		},
	}
}
