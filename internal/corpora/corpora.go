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

// Package corpora runs table-driven tests whose table lives in the file
// system: each input file is a test case, and its expected outputs are
// golden files next to it.
package corpora

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// A Corpus describes a test data corpus.
type Corpus struct {
	// The root of the test data directory. This path is relative to the file that
	// calls [Corpus.Run].
	Root string

	// An environment variable holding a glob of test cases whose golden files
	// should be rewritten instead of compared.
	Refresh string

	// The file extension (without a dot) of files which define a test case,
	// e.g. "py".
	Extension string
	// Possible outputs of the test. The golden file for an output is the test
	// case's path followed by a dot and Output.Extension. A missing golden
	// file is treated as expecting an empty output.
	Outputs []Output

	// Test executes one test case from the corpus. Returns a slice of strings
	// corresponding to the elements of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Run runs every test case in the corpus as a subtest of t.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)
	t.Logf("corpora: searching for files in %q", root)

	tests, err := doublestar.Glob(os.DirFS(root), "**/*."+c.Extension, doublestar.WithFilesOnly())
	if err != nil {
		t.Fatal("corpora: error while searching test data:", err)
	}
	if len(tests) == 0 {
		t.Fatalf("corpora: no *.%s files in %q", c.Extension, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing test data because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, name := range tests {
		path := filepath.Join(root, filepath.FromSlash(name))
		t.Run(name, func(t *testing.T) {
			bytes, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: error while loading input file %q: %v", path, err)
			}
			results := c.Test(t, name, string(bytes))

			refresh, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				golden := path + "." + output.Extension
				if refresh {
					writeGolden(t, golden, results[i])
					continue
				}

				want, err := os.ReadFile(golden)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while loading output file %q: %v", golden, err)
					continue
				}
				cmp := output.Compare
				if cmp == nil {
					cmp = Diff
				}
				if diff := cmp(results[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", golden, diff)
				}
			}
		})
	}
}

func writeGolden(t *testing.T, path, text string) {
	t.Helper()
	if text == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("corpora: error while deleting output file %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Errorf("corpora: error while writing output file %q: %v", path, err)
	}
}

// Output represents the output of a test case.
type Output struct {
	// The extension of the output's golden file. For a test "foo.py" and an
	// extension of "stderr", the golden file is "foo.py.stderr".
	Extension string

	// The comparison function for this output. Defaults to [Diff].
	Compare Compare
}

// Compare is a comparison function between strings, used in [Output].
//
// Returns empty string if the strings match, otherwise returns an error message.
type Compare func(got, want string) string

// Diff compares got and want byte-for-byte, and returns a colorized unified
// diff if they differ.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	if diff == "" {
		// Only the final line ending differs.
		return fmt.Sprintf("want %q\ngot  %q", want, got)
	}

	lines := strings.Split(diff, "\n")
	for i, s := range lines {
		switch {
		case strings.HasPrefix(s, "+"):
			lines[i] = "\033[1;92m" + s + "\033[0m"
		case strings.HasPrefix(s, "-"):
			lines[i] = "\033[1;91m" + s + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
