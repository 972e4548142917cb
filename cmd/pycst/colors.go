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
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// colors holds the styles used for terminal output.
type colors struct {
	err, warn, kind, value, dim *color.Color
	added, removed, hunk        *color.Color
}

// newColors returns the styles for mode, which is one of "auto", "always" or
// "never". In auto mode, colors are used only when w is a terminal.
func newColors(mode string, w io.Writer) (*colors, error) {
	var enabled bool
	switch mode {
	case "always":
		enabled = true
	case "never":
	case "auto":
		if f, ok := w.(*os.File); ok {
			enabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	default:
		return nil, fmt.Errorf("invalid color mode %q: must be auto, always or never", mode)
	}

	c := &colors{
		err:     color.New(color.FgRed, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		kind:    color.New(color.FgBlue),
		value:   color.New(color.FgGreen),
		dim:     color.New(color.Faint),
		added:   color.New(color.FgGreen),
		removed: color.New(color.FgRed),
		hunk:    color.New(color.FgCyan),
	}
	for _, style := range []*color.Color{c.err, c.warn, c.kind, c.value, c.dim, c.added, c.removed, c.hunk} {
		if enabled {
			style.EnableColor()
		} else {
			style.DisableColor()
		}
	}
	return c, nil
}

// diff colorizes a unified diff.
func (c *colors) diff(diff string) string {
	var out strings.Builder
	for line := range strings.Lines(diff) {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			out.WriteString(c.dim.Sprint(line))
		case strings.HasPrefix(line, "@@"):
			out.WriteString(c.hunk.Sprint(line))
		case strings.HasPrefix(line, "+"):
			out.WriteString(c.added.Sprint(line))
		case strings.HasPrefix(line, "-"):
			out.WriteString(c.removed.Sprint(line))
		default:
			out.WriteString(line)
		}
	}
	return out.String()
}
