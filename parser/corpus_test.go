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

package parser

import (
	"errors"
	"testing"

	"github.com/bufbuild/pycst/cst"
	"github.com/bufbuild/pycst/internal/corpora"
)

// TestCorpus parses every file in testdata. Files that parse must render back
// to exactly their source; files that don't are compared against their
// .stderr golden file.
func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:      "testdata",
		Refresh:   "PYCST_REFRESH",
		Extension: "py",
		Outputs: []corpora.Output{
			{Extension: "stderr"},
		},
		Test: func(t *testing.T, path, text string) []string {
			mod, err := ParseModule(text, Config{})
			if err != nil {
				var syntaxErr *SyntaxError
				if !errors.As(err, &syntaxErr) {
					t.Fatalf("unexpected error type %T: %v", err, err)
				}
				return []string{syntaxErr.Error() + "\n" + syntaxErr.Snippet() + "\n"}
			}

			if diff := corpora.Diff(mod.Code(), text); diff != "" {
				t.Errorf("%s does not round-trip:\n%s", path, diff)
			}
			if err := cst.Validate(mod); err != nil {
				t.Errorf("%s: parsed tree is invalid: %v", path, err)
			}
			return []string{""}
		},
	}
	corpus.Run(t)
}
