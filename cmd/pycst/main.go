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

// Command pycst parses Python source into a concrete syntax tree and
// inspects it.
//
//	pycst roundtrip 'src/**/*.py'   # check that files render back unchanged
//	pycst dump file.py              # print the tree
//	pycst positions file.py         # print the position of every name
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bufbuild/pycst/cst"
	"github.com/bufbuild/pycst/parser"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by every subcommand.
type app struct {
	stdout, stderr io.Writer

	configPath    string
	pythonVersion string
	verbose       bool
	colorMode     string

	config parser.Config
	logger *zap.Logger
	colors *colors
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: zap.NewNop()}
	root := &cobra.Command{
		Use:           "pycst",
		Short:         "Parse and inspect Python concrete syntax trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML file with parser configuration")
	flags.StringVar(&a.pythonVersion, "python-version", "", "Python version to parse, overriding the configuration")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	flags.StringVar(&a.colorMode, "color", "auto", "colorize output: auto, always or never")

	root.AddCommand(
		newRoundtripCommand(a),
		newDumpCommand(a),
		newPositionsCommand(a),
	)
	return root
}

func (a *app) init() error {
	a.config = parser.DefaultConfig()
	if a.configPath != "" {
		config, err := parser.LoadConfig(a.configPath)
		if err != nil {
			return a.fail(err)
		}
		a.config = config
	}
	if a.pythonVersion != "" {
		a.config.PythonVersion = a.pythonVersion
	}
	if err := a.config.Validate(); err != nil {
		return a.fail(err)
	}

	colors, err := newColors(a.colorMode, a.stdout)
	if err != nil {
		return a.fail(err)
	}
	a.colors = colors

	if a.verbose {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		config.OutputPaths = []string{"stderr"}
		logger, err := config.Build()
		if err != nil {
			return a.fail(fmt.Errorf("failed to initialize logger: %w", err))
		}
		a.logger = logger
	}
	return nil
}

// fail prints err to stderr and returns it.
func (a *app) fail(err error) error {
	fmt.Fprintf(a.stderr, "pycst: %v\n", err)
	return err
}

// parseFile reads and parses the file at path.
func (a *app) parseFile(path string) (string, *cst.Module, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	mod, err := parser.ParseModule(string(source), a.config)
	if err != nil {
		var se *parser.SyntaxError
		if errors.As(err, &se) {
			se.Pos.Filename = path
		}
		return string(source), nil, err
	}
	a.logger.Debug("parsed", zap.String("path", path), zap.Int("bytes", len(source)))
	return string(source), mod, nil
}
