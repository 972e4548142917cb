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
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bufbuild/pycst/cst"
	"github.com/bufbuild/pycst/metadata"
)

func newDumpCommand(a *app) *cobra.Command {
	var positions bool
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the syntax tree of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.dump(args[0], positions)
		},
	}
	cmd.Flags().BoolVarP(&positions, "positions", "p", false, "show the position of each node")
	return cmd
}

func (a *app) dump(path string, positions bool) error {
	_, mod, err := a.parseFile(path)
	if err != nil {
		a.printError(a.stderr, err)
		return err
	}

	var ranges metadata.Mapping
	if positions {
		w := metadata.NewWrapper(mod, metadata.WithLogger(a.logger))
		if ranges, err = w.Resolve(metadata.PositionProvider); err != nil {
			return a.fail(err)
		}
	}

	var out strings.Builder
	depth := 0
	cst.Walk(mod, cst.VisitorFuncs{
		OnVisit: func(n cst.Node) bool {
			out.WriteString(strings.Repeat("  ", depth))
			out.WriteString(a.colors.kind.Sprint(n.Kind()))
			if value, ok := leafValue(n); ok {
				out.WriteString(" ")
				out.WriteString(a.colors.value.Sprint(strconv.Quote(value)))
			}
			if r, ok := metadata.Value[metadata.CodeRange](ranges, n); ok {
				out.WriteString(" ")
				out.WriteString(a.colors.dim.Sprint(r))
			}
			out.WriteString("\n")
			depth++
			return true
		},
		OnLeave: func(cst.Node) { depth-- },
	})
	_, err = fmt.Fprint(a.stdout, out.String())
	return err
}

// leafValue returns the text of nodes that hold source text directly.
func leafValue(n cst.Node) (string, bool) {
	switch n := n.(type) {
	case *cst.Name:
		return n.Value, true
	case *cst.Integer:
		return n.Value, true
	case *cst.Float:
		return n.Value, true
	case *cst.Imaginary:
		return n.Value, true
	case *cst.SimpleString:
		return n.Value, true
	case *cst.Comment:
		return n.Value, true
	case *cst.SimpleWhitespace:
		return n.Value, n.Value != ""
	default:
		return "", false
	}
}
