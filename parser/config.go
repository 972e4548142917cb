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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPythonVersion is the Python version whose grammar is used when a
// [Config] does not name one.
const DefaultPythonVersion = "3.8"

// Config controls how source code is parsed.
//
// The zero value is ready to use, and is equivalent to [DefaultConfig].
type Config struct {
	// The version of Python whose grammar to parse, such as "3.6". Must be
	// between "3.0" and "3.8". Defaults to [DefaultPythonVersion].
	PythonVersion string `yaml:"python_version"`
	// The encoding recorded on the parsed module. If empty, it is read from
	// a coding comment in the first two lines, falling back to "utf-8".
	Encoding string `yaml:"encoding"`
	// The indentation recorded on the parsed module when the source does
	// not contain any indented block to infer it from.
	DefaultIndent string `yaml:"default_indent"`
	// The newline recorded on the parsed module, and appended to source that
	// does not end in one, when the source does not contain any newline to
	// infer it from.
	DefaultNewline string `yaml:"default_newline"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{PythonVersion: DefaultPythonVersion}
}

// LoadConfig reads a YAML configuration file. Fields that the file leaves out
// take their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	config, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// ParseConfig parses a YAML configuration. Unknown keys are an error.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("invalid parser config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks that every field of the configuration has a supported
// value.
func (c Config) Validate() error {
	if _, err := c.version(); err != nil {
		return err
	}
	switch c.DefaultNewline {
	case "", "\n", "\r\n", "\r":
	default:
		return fmt.Errorf("invalid default newline %q", c.DefaultNewline)
	}
	if strings.Trim(c.DefaultIndent, " \t") != "" {
		return fmt.Errorf("invalid default indent %q: must be made of spaces and tabs", c.DefaultIndent)
	}
	return nil
}

// version is a parsed Python version.
type version struct {
	major, minor int
}

func (c Config) version() (version, error) {
	text := c.PythonVersion
	if text == "" {
		text = DefaultPythonVersion
	}
	major, minor, ok := strings.Cut(text, ".")
	if !ok {
		return version{}, fmt.Errorf("invalid python version %q: expected \"3.x\"", text)
	}
	v := version{}
	var err1, err2 error
	v.major, err1 = strconv.Atoi(major)
	v.minor, err2 = strconv.Atoi(minor)
	if err1 != nil || err2 != nil {
		return version{}, fmt.Errorf("invalid python version %q: expected \"3.x\"", text)
	}
	if v.major != 3 || v.minor < 0 || v.minor > 8 {
		return version{}, fmt.Errorf("unsupported python version %q: must be between 3.0 and 3.8", text)
	}
	return v, nil
}

func (v version) atLeast(minor int) bool {
	return v.minor >= minor
}

func (v version) String() string {
	return fmt.Sprintf("%d.%d", v.major, v.minor)
}
