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
	"errors"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/pycst/parser"
	"github.com/bufbuild/pycst/reporter"
)

var errMismatch = errors.New("rendered tree does not match source")

func newRoundtripCommand(a *app) *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "roundtrip PATH...",
		Short: "Check that files render back to exactly their source",
		Long: `Parses each file and renders the tree back to source, reporting any
difference as a diff. Paths may be doublestar globs, such as 'src/**/*.py'.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.roundtrip(args, jobs)
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of files to check at once; 0 uses GOMAXPROCS")
	return cmd
}

// jobLimit returns how many files to check at once for --jobs.
func jobLimit(jobs int) int {
	if jobs <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return jobs
}

func (a *app) roundtrip(args []string, jobs int) error {
	paths, err := expandPaths(args)
	if err != nil {
		return a.fail(err)
	}

	var failed, mismatched atomic.Int32
	handler := reporter.NewHandler(reporter.NewReporter(
		func(reporter.ErrorWithPos) error {
			failed.Add(1)
			return nil
		},
		func(reporter.ErrorWithPos) {
			mismatched.Add(1)
		},
	))

	// Each file's output is buffered so that it is printed in order.
	outputs := make([]strings.Builder, len(paths))
	var g errgroup.Group
	g.SetLimit(jobLimit(jobs))
	for i, path := range paths {
		g.Go(func() error {
			a.checkFile(&outputs[i], handler, path)
			return nil
		})
	}
	_ = g.Wait()
	for i := range outputs {
		fmt.Fprint(a.stdout, outputs[i].String())
	}

	if err := handler.Error(); err != nil {
		if errors.Is(err, reporter.ErrInvalidSource) {
			err = fmt.Errorf("%d of %d files failed to parse", failed.Load(), len(paths))
		}
		return a.fail(err)
	}
	if n := mismatched.Load(); n > 0 {
		return a.fail(fmt.Errorf("%d of %d files did not round-trip", n, len(paths)))
	}
	fmt.Fprintf(a.stdout, "%d %s round-trip\n", len(paths), plural(len(paths), "file"))
	return nil
}

// checkFile checks a single file, writing any problems to out.
func (a *app) checkFile(out io.Writer, handler *reporter.Handler, path string) {
	source, mod, err := a.parseFile(path)
	if err != nil {
		a.printError(out, err)
		_ = handler.HandleError(err)
		return
	}

	got := mod.Code()
	if got == source {
		a.logger.Debug("round-trips", zap.String("path", path))
		return
	}

	pos := position(path, source, firstDifference(source, got))
	handler.HandleWarning(pos, errMismatch)
	fmt.Fprintf(out, "%s %v: %v\n", a.colors.warn.Sprint("warning:"), pos, errMismatch)

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(source),
		B:        difflib.SplitLines(got),
		FromFile: path,
		ToFile:   path + " (rendered)",
		Context:  2,
	})
	if err != nil {
		a.logger.Warn("failed to diff", zap.String("path", path), zap.Error(err))
		return
	}
	fmt.Fprint(out, a.colors.diff(diff))
}

// printError prints err, with a snippet of the offending line if it is a
// syntax error.
func (a *app) printError(out io.Writer, err error) {
	fmt.Fprintf(out, "%s %v\n", a.colors.err.Sprint("error:"), err)
	var se *parser.SyntaxError
	if errors.As(err, &se) {
		fmt.Fprintln(out, a.colors.dim.Sprint(se.Snippet()))
	}
}

// expandPaths expands any globs in args. Each argument must match at least
// one file.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		paths = append(paths, matches...)
	}
	slices.Sort(paths)
	return slices.Compact(paths), nil
}

// firstDifference returns the offset of the first byte at which a and b
// differ.
func firstDifference(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// position converts an offset into source into a position.
func position(path, source string, offset int) reporter.SourcePos {
	_, start := reporter.Line(source, offset)
	return reporter.SourcePos{
		Filename: path,
		Line:     strings.Count(source[:start], "\n") + 1,
		Col:      utf8.RuneCountInString(source[start:offset]) + 1,
		Offset:   offset,
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
