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

// enum is a helper for generating boilerplate related to Go enums.
//
// To generate boilerplate for a given file, use
//
//	//go:generate go run github.com/bufbuild/pycst/internal/enum kinds.yaml
//
// Each argument is a YAML file containing an array of the Enum type defined
// in this package. The output for foo.yaml is written to foo.go, next to it.
//
//nolint:revive // We use _ in field names to disambiguate them from methods, while still exporting them.
package main

import (
	"bytes"
	"debug/buildinfo"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

type Enum struct {
	Name       string   `yaml:"name"`        // The name of the new type.
	Type       string   `yaml:"type"`        // The underlying type.
	Docs       string   `yaml:"docs"`        // Documentation for the type.
	Total      string   `yaml:"total"`       // The name of a "total values" constant.
	TrimPrefix string   `yaml:"trim_prefix"` // Removed from value names to form their strings.
	Methods    []Method `yaml:"methods"`
	Values_    []Value  `yaml:"values"`
}

func (e *Enum) Values() []Value {
	for i := range e.Values_ {
		e.Values_[i].Parent = e
		e.Values_[i].Idx = i
	}
	return e.Values_
}

// Aliases returns the values that alias another value. They are declared
// apart from the others, so that they do not take up an iota.
func (e *Enum) Aliases() []Value {
	var out []Value
	for _, v := range e.Values() {
		if v.Alias != "" {
			out = append(out, v)
		}
	}
	return out
}

type Value struct {
	Name    string `yaml:"name"`   // The name of the value.
	Alias   string `yaml:"alias"`  // Another value this value aliases, if any.
	String_ string `yaml:"string"` // The string representation of this value.
	Docs    string `yaml:"docs"`   // Documentation for the value.

	Parent *Enum `yaml:"-"`
	Idx    int   `yaml:"-"`
}

// HasSuffixDocs returns whether the docs fit in a comment after the value.
func (v Value) HasSuffixDocs() bool {
	values := v.Parent.Values_
	next := v.Idx + 1
	return v.Docs != "" && !strings.Contains(v.Docs, "\n") &&
		(next >= len(values) || values[next].Docs != "")
}

// HasPrefixDocs returns whether the docs go in a comment above the value.
func (v Value) HasPrefixDocs() bool {
	return v.Docs != "" && !v.HasSuffixDocs()
}

func (v Value) String() string {
	if v.String_ != "" {
		return v.String_
	}
	if v.Parent != nil {
		return strings.TrimPrefix(v.Name, v.Parent.TrimPrefix)
	}
	return v.Name
}

type Method struct {
	Kind  MethodKind `yaml:"kind"` // The kind of method to generate.
	Name_ string     `yaml:"name"` // The method's name; optional for some methods.
	Docs_ string     `yaml:"docs"` // Documentation for the method.
	Skip  []string   `yaml:"skip"` // Enum values to ignore in this method.
}

func (m Method) Name() (string, error) {
	if m.Name_ != "" {
		return m.Name_, nil
	}

	switch m.Kind {
	case MethodFromString:
		return "", fmt.Errorf("missing name for kind: %#v", MethodFromString)
	case MethodGoString:
		return "GoString", nil
	case MethodString:
		return "String", nil
	default:
		return "", fmt.Errorf("unexpected kind: %#v", m.Kind)
	}
}

func (m Method) Docs() string {
	if m.Docs_ != "" {
		return m.Docs_
	}

	switch m.Kind {
	case MethodGoString:
		return "GoString implements [fmt.GoStringer]."
	case MethodString:
		return "String implements [fmt.Stringer]."
	default:
		return ""
	}
}

type MethodKind string

const (
	MethodString     MethodKind = "string"
	MethodGoString   MethodKind = "go-string"
	MethodFromString MethodKind = "from-string"
)

//go:embed enum.go.tmpl
var tmplText string

// makeDocs converts a data into doc comments.
func makeDocs(data, indent string) string {
	if data == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

// input is the data the template is executed with.
type input struct {
	Binary, Package, Path, Config string
	YAML                          []Enum
}

func Main(config string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}

	in := input{
		Package: os.Getenv("GOPACKAGE"),
		Config:  config,
		Path:    strings.TrimSuffix(config, ".yaml") + ".go",
	}

	buildinfo, err := buildinfo.ReadFile(os.Args[0])
	if err != nil {
		return err
	}
	in.Binary = buildinfo.Path

	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(text, &in.YAML); err != nil {
		return err
	}

	out, err := generate(in)
	if err != nil {
		return fmt.Errorf("generating %s: %w", in.Path, err)
	}
	return os.WriteFile(in.Path, out, 0o644)
}

// generate executes the template and formats the result.
func generate(in input) ([]byte, error) {
	tmpl, err := template.New("enum.go.tmpl").Funcs(template.FuncMap{
		"makeDocs": makeDocs,
		"contains": slices.Contains[[]string],
	}).Parse(tmplText)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "enum.go.tmpl", in); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := Main(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
