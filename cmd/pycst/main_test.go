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
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand(&out, &errOut)
	cmd.SetArgs(append([]string{"--color", "never"}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func write(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write(t, dir, "a.py", "x = 1\n")
	write(t, dir, "pkg/b.py", "def f():\n    return x  # comment\n")
	write(t, dir, "pkg/notes.txt", "not python")

	stdout, stderr, err := run(t, "roundtrip", filepath.Join(dir, "**", "*.py"))
	require.NoError(t, err)
	assert.Equal(t, "2 files round-trip\n", stdout)
	assert.Empty(t, stderr)
}

func TestJobLimit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, runtime.GOMAXPROCS(0), jobLimit(0))
	assert.Equal(t, runtime.GOMAXPROCS(0), jobLimit(-2))
	assert.Equal(t, 3, jobLimit(3))

	dir := t.TempDir()
	write(t, dir, "a.py", "x = 1\n")
	write(t, dir, "b.py", "y = 2\n")
	stdout, _, err := run(t, "roundtrip", "--jobs", "0", filepath.Join(dir, "*.py"))
	require.NoError(t, err)
	assert.Equal(t, "2 files round-trip\n", stdout)
}

func TestRoundtripSyntaxError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := write(t, dir, "good.py", "x = 1\n")
	bad := write(t, dir, "bad.py", "x = (1,\n")

	stdout, stderr, err := run(t, "roundtrip", "-j", "1", good, bad)
	require.Error(t, err)
	assert.Contains(t, stdout, "error: "+bad+":1:5: syntax error: '(' was never closed\n")
	assert.Contains(t, stdout, "  | x = (1,\n  |     ^\n")
	assert.Equal(t, "pycst: 1 of 2 files failed to parse\n", stderr)
}

func TestRoundtripNoMatch(t *testing.T) {
	t.Parallel()

	_, stderr, err := run(t, "roundtrip", filepath.Join(t.TempDir(), "*.py"))
	require.Error(t, err)
	assert.Contains(t, stderr, "no files match")
}

func TestDump(t *testing.T) {
	t.Parallel()

	path := write(t, t.TempDir(), "a.py", "x = y\n")
	stdout, _, err := run(t, "dump", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Module\n  SimpleStatementLine\n    Assign\n")
	assert.Contains(t, stdout, `Name "x"`)
	assert.Contains(t, stdout, `Name "y"`)

	stdout, _, err = run(t, "dump", "--positions", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, `Name "y" 1:4-1:5`)
}

func TestPositions(t *testing.T) {
	t.Parallel()

	path := write(t, t.TempDir(), "a.py", "x = f(y)\ndel x\n")
	stdout, _, err := run(t, "positions", path)
	require.NoError(t, err)
	assert.Equal(t,
		"1:0-1:1 Name x Store\n"+
			"1:4-1:5 Name f Load\n"+
			"1:6-1:7 Name y Load\n"+
			"2:4-2:5 Name x Del\n",
		stdout,
	)

	stdout, _, err = run(t, "positions", "--at", "6", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1:6-1:7 Name y\n")

	_, stderr, err := run(t, "positions", "--at", "100", path)
	require.Error(t, err)
	assert.Contains(t, stderr, "no node at offset 100")
}

func TestConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	config := write(t, dir, "pycst.yaml", "python_version: \"3.5\"\n")
	path := write(t, dir, "a.py", "x = f'a'\n")

	_, _, err := run(t, "--config", config, "roundtrip", path)
	require.Error(t, err)
	_, _, err = run(t, "--config", config, "--python-version", "3.6", "roundtrip", path)
	require.NoError(t, err)

	_, stderr, err := run(t, "--python-version", "9.9", "roundtrip", path)
	require.Error(t, err)
	assert.Contains(t, stderr, "pycst: ")

	_, stderr, err = run(t, "--color", "sometimes", "roundtrip", path)
	require.Error(t, err)
	assert.Contains(t, stderr, "invalid color mode")
}
