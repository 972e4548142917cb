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

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bufbuild/pycst/cst"
	"github.com/bufbuild/pycst/metadata"
)

func newPositionsCommand(a *app) *cobra.Command {
	var at int
	cmd := &cobra.Command{
		Use:   "positions FILE",
		Short: "Print the position and context of every name in a file",
		Long: `Prints the position of every name in a file, along with whether it is
loaded, stored or deleted. With --at, prints every node that covers the byte
at the given offset instead, outermost first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("at") {
				at = -1
			}
			return a.positions(args[0], at)
		},
	}
	cmd.Flags().IntVar(&at, "at", 0, "byte offset to print the covering nodes of")
	return cmd
}

func (a *app) positions(path string, at int) error {
	_, mod, err := a.parseFile(path)
	if err != nil {
		a.printError(a.stderr, err)
		return err
	}

	w := metadata.NewWrapper(mod, metadata.WithLogger(a.logger))
	out, err := w.ResolveMany(metadata.PositionProvider, metadata.ExpressionContextProvider)
	if err != nil {
		return a.fail(err)
	}
	ranges := out[metadata.PositionProvider.Name()]
	contexts := out[metadata.ExpressionContextProvider.Name()]

	var b strings.Builder
	line := func(n cst.Node, extra string) {
		r, _ := metadata.Value[metadata.CodeRange](ranges, n)
		fmt.Fprintf(&b, "%s %s", a.colors.dim.Sprint(r), a.colors.kind.Sprint(n.Kind()))
		if value, ok := leafValue(n); ok {
			fmt.Fprintf(&b, " %s", a.colors.value.Sprint(value))
		}
		if extra != "" {
			fmt.Fprintf(&b, " %s", extra)
		}
		b.WriteString("\n")
	}

	if at >= 0 {
		nodes, err := w.NodesAt(at)
		if err != nil {
			return a.fail(err)
		}
		if len(nodes) == 0 {
			return a.fail(fmt.Errorf("%s: no node at offset %d", path, at))
		}
		for _, n := range nodes {
			line(n, "")
		}
	} else {
		cst.Inspect(mod, func(n cst.Node) bool {
			if name, ok := n.(*cst.Name); ok {
				var extra string
				if ec, ok := metadata.Value[metadata.ExpressionContext](contexts, name); ok {
					extra = ec.String()
				}
				line(name, extra)
			}
			return true
		})
	}
	_, err = fmt.Fprint(a.stdout, b.String())
	return err
}
