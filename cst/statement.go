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

package cst

// Expr is an expression used as a statement, such as a function call.
type Expr struct {
	Value Expression
	// Defaults to "; " unless this is the last statement on the line.
	Semicolon Maybe[*Semicolon]
}

// Kind implements [Node].
func (*Expr) Kind() Kind { return KindExpr }

func (n *Expr) mapChildren(m *mapper) Node {
	c := *n
	c.Value = mapRequired(m, "Value", n.Value)
	c.Semicolon = mapMaybe(m, "Semicolon", n.Semicolon)
	return &c
}

func (n *Expr) render(s *state) { n.renderSemicolon(s, "") }

func (n *Expr) renderSemicolon(s *state, def string) {
	start := s.offset()
	s.node(n.Value)
	s.syntax(n, start)
	renderMaybe(s, n.Semicolon, def)
}

func (n *Expr) validate() error {
	if isNil(n.Value) {
		return validationErrorf(n.Kind(), "missing value")
	}
	return nil
}

// Pass is a pass statement.
type Pass struct {
	Semicolon Maybe[*Semicolon]
}

// Kind implements [Node].
func (*Pass) Kind() Kind { return KindPass }

func (n *Pass) mapChildren(m *mapper) Node {
	c := *n
	c.Semicolon = mapMaybe(m, "Semicolon", n.Semicolon)
	return &c
}

func (n *Pass) render(s *state) { n.renderSemicolon(s, "") }

func (n *Pass) renderSemicolon(s *state, def string) {
	renderKeywordStatement(s, n, "pass", n.Semicolon, def)
}

func (*Pass) validate() error { return nil }

// Break is a break statement.
type Break struct {
	Semicolon Maybe[*Semicolon]
}

// Kind implements [Node].
func (*Break) Kind() Kind { return KindBreak }

func (n *Break) mapChildren(m *mapper) Node {
	c := *n
	c.Semicolon = mapMaybe(m, "Semicolon", n.Semicolon)
	return &c
}

func (n *Break) render(s *state) { n.renderSemicolon(s, "") }

func (n *Break) renderSemicolon(s *state, def string) {
	renderKeywordStatement(s, n, "break", n.Semicolon, def)
}

func (*Break) validate() error { return nil }

// Continue is a continue statement.
type Continue struct {
	Semicolon Maybe[*Semicolon]
}

// Kind implements [Node].
func (*Continue) Kind() Kind { return KindContinue }

func (n *Continue) mapChildren(m *mapper) Node {
	c := *n
	c.Semicolon = mapMaybe(m, "Semicolon", n.Semicolon)
	return &c
}

func (n *Continue) render(s *state) { n.renderSemicolon(s, "") }

func (n *Continue) renderSemicolon(s *state, def string) {
	renderKeywordStatement(s, n, "continue", n.Semicolon, def)
}

func (*Continue) validate() error { return nil }

func renderKeywordStatement(s *state, n Node, keyword string, semi Maybe[*Semicolon], def string) {
	start := s.offset()
	s.write(keyword)
	s.syntax(n, start)
	renderMaybe(s, semi, def)
}

// Return is a return statement, with or without a value.
type Return struct {
	// Defaults to " " if there is a value.
	WhitespaceAfterReturn Maybe[*SimpleWhitespace]
	Value                 Expression
	Semicolon             Maybe[*Semicolon]
}

// Kind implements [Node].
func (*Return) Kind() Kind { return KindReturn }

func (n *Return) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceAfterReturn = mapMaybe(m, "WhitespaceAfterReturn", n.WhitespaceAfterReturn)
	c.Value = mapOptional(m, "Value", n.Value)
	c.Semicolon = mapMaybe(m, "Semicolon", n.Semicolon)
	return &c
}

func (n *Return) render(s *state) { n.renderSemicolon(s, "") }

func (n *Return) renderSemicolon(s *state, def string) {
	start := s.offset()
	s.write("return")
	renderMaybe(s, n.WhitespaceAfterReturn, spaceIf(!isNil(n.Value)))
	s.node(n.Value)
	s.syntax(n, start)
	renderMaybe(s, n.Semicolon, def)
}

func (n *Return) validate() error {
	if ws, ok := n.WhitespaceAfterReturn.Get(); ok {
		return checkKeywordSpacing(n.Kind(), "return", nil, nil, n.Value, ws)
	}
	return nil
}

// Raise is a raise statement.
type Raise struct {
	// Defaults to " " if there is an exception.
	WhitespaceAfterRaise Maybe[*SimpleWhitespace]
	Exc                  Expression
	Cause                *From
	Semicolon            Maybe[*Semicolon]
}

// Kind implements [Node].
func (*Raise) Kind() Kind { return KindRaise }

func (n *Raise) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceAfterRaise = mapMaybe(m, "WhitespaceAfterRaise", n.WhitespaceAfterRaise)
	c.Exc = mapOptional(m, "Exc", n.Exc)
	c.Cause = mapOptional(m, "Cause", n.Cause)
	c.Semicolon = mapMaybe(m, "Semicolon", n.Semicolon)
	return &c
}

func (n *Raise) render(s *state) { n.renderSemicolon(s, "") }

func (n *Raise) renderSemicolon(s *state, def string) {
	start := s.offset()
	s.write("raise")
	renderMaybe(s, n.WhitespaceAfterRaise, spaceIf(!isNil(n.Exc)))
	s.node(n.Exc)
	if n.Cause != nil {
		s.nodeWith(n.Cause, func() { n.Cause.renderDefault(s, " ") })
	}
	s.syntax(n, start)
	renderMaybe(s, n.Semicolon, def)
}

func (n *Raise) validate() error {
	if isNil(n.Exc) && n.Cause != nil {
		return validationErrorf(n.Kind(), "must have an exception to specify a cause")
	}
	if ws, ok := n.WhitespaceAfterRaise.Get(); ok {
		if err := checkKeywordSpacing(n.Kind(), "raise", nil, nil, n.Exc, ws); err != nil {
			return err
		}
	}
	if n.Cause != nil {
		if ws, ok := n.Cause.WhitespaceBeforeFrom.Get(); ok {
			return checkKeywordSpacing(n.Kind(), "from", n.Exc, ws, nil, nil)
		}
	}
	return nil
}

// Assert is an assert statement.
type Assert struct {
	WhitespaceAfterAssert *SimpleWhitespace
	Test                  Expression
	// Defaults to ", " if there is a message.
	Comma     *Comma
	Msg       Expression
	Semicolon Maybe[*Semicolon]
}

// Kind implements [Node].
func (*Assert) Kind() Kind { return KindAssert }

func (n *Assert) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceAfterAssert = mapOptional(m, "WhitespaceAfterAssert", n.WhitespaceAfterAssert)
	c.Test = mapRequired(m, "Test", n.Test)
	c.Comma = mapOptional(m, "Comma", n.Comma)
	c.Msg = mapOptional(m, "Msg", n.Msg)
	c.Semicolon = mapMaybe(m, "Semicolon", n.Semicolon)
	return &c
}

func (n *Assert) render(s *state) { n.renderSemicolon(s, "") }

func (n *Assert) renderSemicolon(s *state, def string) {
	start := s.offset()
	s.write("assert")
	s.node(n.WhitespaceAfterAssert)
	s.node(n.Test)
	if !isNil(n.Msg) {
		renderOpen(s, n.Comma, ", ")
		s.node(n.Msg)
	}
	s.syntax(n, start)
	renderMaybe(s, n.Semicolon, def)
}

func (n *Assert) validate() error {
	if isNil(n.Test) {
		return validationErrorf(n.Kind(), "missing test")
	}
	if n.Comma != nil && isNil(n.Msg) {
		return validationErrorf(n.Kind(), "cannot have a trailing comma without a message")
	}
	return checkKeywordSpacing(n.Kind(), "assert", nil, nil, n.Test, n.WhitespaceAfterAssert)
}

// Del is a del statement.
type Del struct {
	WhitespaceAfterDel *SimpleWhitespace
	Target             Expression
	Semicolon          Maybe[*Semicolon]
}

// Kind implements [Node].
func (*Del) Kind() Kind { return KindDel }

func (n *Del) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceAfterDel = mapOptional(m, "WhitespaceAfterDel", n.WhitespaceAfterDel)
	c.Target = mapRequired(m, "Target", n.Target)
	c.Semicolon = mapMaybe(m, "Semicolon", n.Semicolon)
	return &c
}

func (n *Del) render(s *state) { n.renderSemicolon(s, "") }

func (n *Del) renderSemicolon(s *state, def string) {
	start := s.offset()
	s.write("del")
	s.node(n.WhitespaceAfterDel)
	s.node(n.Target)
	s.syntax(n, start)
	renderMaybe(s, n.Semicolon, def)
}

func (n *Del) validate() error {
	if isNil(n.Target) {
		return validationErrorf(n.Kind(), "missing target")
	}
	return checkKeywordSpacing(n.Kind(), "del", nil, nil, n.Target, n.WhitespaceAfterDel)
}

// Global is a global statement.
type Global struct {
	WhitespaceAfterGlobal *SimpleWhitespace
	Names                 []*NameItem
	Semicolon             Maybe[*Semicolon]
}

// Kind implements [Node].
func (*Global) Kind() Kind { return KindGlobal }

func (n *Global) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceAfterGlobal = mapOptional(m, "WhitespaceAfterGlobal", n.WhitespaceAfterGlobal)
	c.Names = mapSeq(m, n.Names)
	c.Semicolon = mapMaybe(m, "Semicolon", n.Semicolon)
	return &c
}

func (n *Global) render(s *state) { n.renderSemicolon(s, "") }

func (n *Global) renderSemicolon(s *state, def string) {
	renderNameList(s, n, "global", n.WhitespaceAfterGlobal, n.Names, n.Semicolon, def)
}

func (n *Global) validate() error {
	return validateNameList(n.Kind(), "global", n.WhitespaceAfterGlobal, n.Names)
}

// Nonlocal is a nonlocal statement.
type Nonlocal struct {
	WhitespaceAfterNonlocal *SimpleWhitespace
	Names                   []*NameItem
	Semicolon               Maybe[*Semicolon]
}

// Kind implements [Node].
func (*Nonlocal) Kind() Kind { return KindNonlocal }

func (n *Nonlocal) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceAfterNonlocal = mapOptional(m, "WhitespaceAfterNonlocal", n.WhitespaceAfterNonlocal)
	c.Names = mapSeq(m, n.Names)
	c.Semicolon = mapMaybe(m, "Semicolon", n.Semicolon)
	return &c
}

func (n *Nonlocal) render(s *state) { n.renderSemicolon(s, "") }

func (n *Nonlocal) renderSemicolon(s *state, def string) {
	renderNameList(s, n, "nonlocal", n.WhitespaceAfterNonlocal, n.Names, n.Semicolon, def)
}

func (n *Nonlocal) validate() error {
	return validateNameList(n.Kind(), "nonlocal", n.WhitespaceAfterNonlocal, n.Names)
}

func renderNameList(s *state, n Node, keyword string, ws *SimpleWhitespace, names []*NameItem, semi Maybe[*Semicolon], def string) {
	start := s.offset()
	s.write(keyword)
	s.node(ws)
	renderCommaSeq(s, names)
	s.syntax(n, start)
	renderMaybe(s, semi, def)
}

func validateNameList(k Kind, keyword string, ws *SimpleWhitespace, names []*NameItem) error {
	if len(names) == 0 {
		return validationErrorf(k, "must have at least one name")
	}
	if isEmptyWhitespace(ws) {
		return validationErrorf(k, "must have at least one space after %q", keyword)
	}
	if _, ok := names[len(names)-1].Comma.Get(); ok {
		return validationErrorf(k, "cannot have a trailing comma")
	}
	return nil
}

// NameItem is a single name of a [Global] or [Nonlocal] statement.
type NameItem struct {
	Name *Name
	// Defaults to ", " unless this is the last name.
	Comma Maybe[*Comma]
}

// Kind implements [Node].
func (*NameItem) Kind() Kind { return KindNameItem }

func (n *NameItem) mapChildren(m *mapper) Node {
	c := *n
	c.Name = mapRequired(m, "Name", n.Name)
	c.Comma = mapMaybe(m, "Comma", n.Comma)
	return &c
}

func (n *NameItem) render(s *state) { n.renderComma(s, "") }

func (n *NameItem) renderComma(s *state, def string) {
	start := s.offset()
	s.node(n.Name)
	s.syntax(n, start)
	renderMaybe(s, n.Comma, def)
}

func (n *NameItem) validate() error {
	if n.Name == nil {
		return validationErrorf(n.Kind(), "missing name")
	}
	return nil
}

// Import is an import statement, such as "import a.b as c, d".
type Import struct {
	WhitespaceAfterImport *SimpleWhitespace
	Names                 []*ImportAlias
	Semicolon             Maybe[*Semicolon]
}

// Kind implements [Node].
func (*Import) Kind() Kind { return KindImport }

func (n *Import) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceAfterImport = mapOptional(m, "WhitespaceAfterImport", n.WhitespaceAfterImport)
	c.Names = mapSeq(m, n.Names)
	c.Semicolon = mapMaybe(m, "Semicolon", n.Semicolon)
	return &c
}

func (n *Import) render(s *state) { n.renderSemicolon(s, "") }

func (n *Import) renderSemicolon(s *state, def string) {
	start := s.offset()
	s.write("import")
	s.node(n.WhitespaceAfterImport)
	renderCommaSeq(s, n.Names)
	s.syntax(n, start)
	renderMaybe(s, n.Semicolon, def)
}

func (n *Import) validate() error {
	if len(n.Names) == 0 {
		return validationErrorf(n.Kind(), "must import at least one name")
	}
	if isEmptyWhitespace(n.WhitespaceAfterImport) {
		return validationErrorf(n.Kind(), "must have at least one space after \"import\"")
	}
	if _, ok := n.Names[len(n.Names)-1].Comma.Get(); ok {
		return validationErrorf(n.Kind(), "cannot have a trailing comma")
	}
	return nil
}

// ImportFrom is a from-import statement, such as "from . import a".
type ImportFrom struct {
	WhitespaceAfterFrom *SimpleWhitespace
	// The leading dots of a relative import.
	Relative []*Dot
	// Either a *Name or an *Attribute. May be nil for a relative import.
	Module                 Expression
	WhitespaceBeforeImport *SimpleWhitespace
	WhitespaceAfterImport  *SimpleWhitespace
	Lpar                   *LeftParen
	Names                  []*ImportAlias
	// Set for "from x import *". Names must then be empty.
	Star      *ImportStar
	Rpar      *RightParen
	Semicolon Maybe[*Semicolon]
}

// Kind implements [Node].
func (*ImportFrom) Kind() Kind { return KindImportFrom }

func (n *ImportFrom) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceAfterFrom = mapOptional(m, "WhitespaceAfterFrom", n.WhitespaceAfterFrom)
	c.Relative = mapSeq(m, n.Relative)
	c.Module = mapOptional(m, "Module", n.Module)
	c.WhitespaceBeforeImport = mapOptional(m, "WhitespaceBeforeImport", n.WhitespaceBeforeImport)
	c.WhitespaceAfterImport = mapOptional(m, "WhitespaceAfterImport", n.WhitespaceAfterImport)
	c.Lpar = mapOptional(m, "Lpar", n.Lpar)
	c.Names = mapSeq(m, n.Names)
	c.Star = mapOptional(m, "Star", n.Star)
	c.Rpar = mapOptional(m, "Rpar", n.Rpar)
	c.Semicolon = mapMaybe(m, "Semicolon", n.Semicolon)
	return &c
}

func (n *ImportFrom) render(s *state) { n.renderSemicolon(s, "") }

func (n *ImportFrom) renderSemicolon(s *state, def string) {
	start := s.offset()
	s.write("from")
	s.node(n.WhitespaceAfterFrom)
	renderSeq(s, n.Relative)
	s.node(n.Module)
	s.node(n.WhitespaceBeforeImport)
	s.write("import")
	s.node(n.WhitespaceAfterImport)
	s.node(n.Lpar)
	s.node(n.Star)
	renderCommaSeq(s, n.Names)
	s.node(n.Rpar)
	s.syntax(n, start)
	renderMaybe(s, n.Semicolon, def)
}

func (n *ImportFrom) validate() error {
	switch {
	case len(n.Relative) == 0 && isNil(n.Module):
		return validationErrorf(n.Kind(), "must have a module or be a relative import")
	case (n.Star == nil) == (len(n.Names) == 0):
		return validationErrorf(n.Kind(), "must import either names or \"*\"")
	case n.Star != nil && (n.Lpar != nil || n.Rpar != nil):
		return validationErrorf(n.Kind(), "cannot parenthesize \"*\"")
	case (n.Lpar == nil) != (n.Rpar == nil):
		return validationErrorf(n.Kind(), "cannot have unbalanced parens")
	case n.Lpar == nil && len(n.Names) > 0 && !n.Names[len(n.Names)-1].Comma.IsDefault():
		return validationErrorf(n.Kind(), "cannot have a trailing comma without parens")
	}
	if !isNil(n.Module) {
		if err := validateDottedName(n.Kind(), n.Module); err != nil {
			return err
		}
	}
	if isEmptyWhitespace(n.WhitespaceBeforeImport) && (len(n.Relative) == 0 || !isNil(n.Module)) {
		return validationErrorf(n.Kind(), "must have at least one space before \"import\"")
	}
	if isEmptyWhitespace(n.WhitespaceAfterImport) && n.Lpar == nil && n.Star == nil {
		return validationErrorf(n.Kind(), "must have at least one space after \"import\"")
	}
	return nil
}

func validateDottedName(k Kind, e Expression) error {
	switch e := e.(type) {
	case *Name:
		return nil
	case *Attribute:
		return validateDottedName(k, e.Value)
	default:
		return validationErrorf(k, "%v is not a dotted name", e.Kind())
	}
}

// ImportAlias is a single imported name, such as "a.b as c".
type ImportAlias struct {
	// Either a *Name or an *Attribute.
	Name   Expression
	AsName *AsName
	// Defaults to ", " unless this is the last name.
	Comma Maybe[*Comma]
}

// Kind implements [Node].
func (*ImportAlias) Kind() Kind { return KindImportAlias }

func (n *ImportAlias) mapChildren(m *mapper) Node {
	c := *n
	c.Name = mapRequired(m, "Name", n.Name)
	c.AsName = mapOptional(m, "AsName", n.AsName)
	c.Comma = mapMaybe(m, "Comma", n.Comma)
	return &c
}

func (n *ImportAlias) render(s *state) { n.renderComma(s, "") }

func (n *ImportAlias) renderComma(s *state, def string) {
	start := s.offset()
	s.node(n.Name)
	s.node(n.AsName)
	s.syntax(n, start)
	renderMaybe(s, n.Comma, def)
}

func (n *ImportAlias) validate() error {
	if isNil(n.Name) {
		return validationErrorf(n.Kind(), "missing name")
	}
	if err := validateDottedName(n.Kind(), n.Name); err != nil {
		return err
	}
	if n.AsName != nil {
		if _, ok := n.AsName.Name.(*Name); !ok {
			return validationErrorf(n.Kind(), "alias must be a name")
		}
	}
	return nil
}

// AsName is the "as x" of an import, a with item, or an except clause.
type AsName struct {
	WhitespaceBeforeAs ParenthesizableWhitespace
	WhitespaceAfterAs  ParenthesizableWhitespace
	// A *Name, or any assignment target in a with item.
	Name Expression
}

// Kind implements [Node].
func (*AsName) Kind() Kind { return KindAsName }

func (n *AsName) mapChildren(m *mapper) Node {
	c := *n
	c.WhitespaceBeforeAs = mapOptional(m, "WhitespaceBeforeAs", n.WhitespaceBeforeAs)
	c.WhitespaceAfterAs = mapOptional(m, "WhitespaceAfterAs", n.WhitespaceAfterAs)
	c.Name = mapRequired(m, "Name", n.Name)
	return &c
}

func (n *AsName) render(s *state) {
	s.node(n.WhitespaceBeforeAs)
	s.write("as")
	s.node(n.WhitespaceAfterAs)
	s.node(n.Name)
}

func (n *AsName) validate() error {
	if isNil(n.Name) {
		return validationErrorf(n.Kind(), "missing name")
	}
	if isEmptyWhitespace(n.WhitespaceBeforeAs) {
		return validationErrorf(n.Kind(), "must have at least one space before \"as\"")
	}
	return checkKeywordSpacing(n.Kind(), "as", nil, nil, n.Name, n.WhitespaceAfterAs)
}

// Assign is an assignment statement with one or more targets, such as
// "a = b = 1".
type Assign struct {
	Targets   []*AssignTarget
	Value     Expression
	Semicolon Maybe[*Semicolon]
}

// Kind implements [Node].
func (*Assign) Kind() Kind { return KindAssign }

func (n *Assign) mapChildren(m *mapper) Node {
	c := *n
	c.Targets = mapSeq(m, n.Targets)
	c.Value = mapRequired(m, "Value", n.Value)
	c.Semicolon = mapMaybe(m, "Semicolon", n.Semicolon)
	return &c
}

func (n *Assign) render(s *state) { n.renderSemicolon(s, "") }

func (n *Assign) renderSemicolon(s *state, def string) {
	start := s.offset()
	renderSeq(s, n.Targets)
	s.node(n.Value)
	s.syntax(n, start)
	renderMaybe(s, n.Semicolon, def)
}

func (n *Assign) validate() error {
	if len(n.Targets) == 0 {
		return validationErrorf(n.Kind(), "must have at least one target")
	}
	if isNil(n.Value) {
		return validationErrorf(n.Kind(), "missing value")
	}
	return nil
}

// AssignTarget is one "target =" of an [Assign].
type AssignTarget struct {
	Target                Expression
	WhitespaceBeforeEqual *SimpleWhitespace
	WhitespaceAfterEqual  *SimpleWhitespace
}

// Kind implements [Node].
func (*AssignTarget) Kind() Kind { return KindAssignTarget }

func (n *AssignTarget) mapChildren(m *mapper) Node {
	c := *n
	c.Target = mapRequired(m, "Target", n.Target)
	c.WhitespaceBeforeEqual = mapOptional(m, "WhitespaceBeforeEqual", n.WhitespaceBeforeEqual)
	c.WhitespaceAfterEqual = mapOptional(m, "WhitespaceAfterEqual", n.WhitespaceAfterEqual)
	return &c
}

func (n *AssignTarget) render(s *state) {
	start := s.offset()
	s.node(n.Target)
	s.syntax(n, start)
	s.node(n.WhitespaceBeforeEqual)
	s.write("=")
	s.node(n.WhitespaceAfterEqual)
}

func (n *AssignTarget) validate() error {
	if isNil(n.Target) {
		return validationErrorf(n.Kind(), "missing target")
	}
	return nil
}

// AnnAssign is an annotated assignment, such as "x: int = 1".
type AnnAssign struct {
	Target     Expression
	Annotation *Annotation
	// Only rendered if there is a value. Defaults to " = ".
	Equal     Maybe[*AssignEqual]
	Value     Expression
	Semicolon Maybe[*Semicolon]
}

// Kind implements [Node].
func (*AnnAssign) Kind() Kind { return KindAnnAssign }

func (n *AnnAssign) mapChildren(m *mapper) Node {
	c := *n
	c.Target = mapRequired(m, "Target", n.Target)
	c.Annotation = mapRequired(m, "Annotation", n.Annotation)
	c.Equal = mapMaybe(m, "Equal", n.Equal)
	c.Value = mapOptional(m, "Value", n.Value)
	c.Semicolon = mapMaybe(m, "Semicolon", n.Semicolon)
	return &c
}

func (n *AnnAssign) render(s *state) { n.renderSemicolon(s, "") }

func (n *AnnAssign) renderSemicolon(s *state, def string) {
	start := s.offset()
	s.node(n.Target)
	renderAnnotation(s, n.Annotation, ":")
	if !isNil(n.Value) {
		renderMaybe(s, n.Equal, " = ")
		s.node(n.Value)
	}
	s.syntax(n, start)
	renderMaybe(s, n.Semicolon, def)
}

func (n *AnnAssign) validate() error {
	if isNil(n.Target) || n.Annotation == nil {
		return validationErrorf(n.Kind(), "missing target or annotation")
	}
	if isNil(n.Value) && !n.Equal.IsDefault() {
		return validationErrorf(n.Kind(), "cannot have an equal sign without a value")
	}
	return nil
}

// AugAssign is an augmented assignment, such as "x += 1".
type AugAssign struct {
	Target    Expression
	Operator  *AugOp
	Value     Expression
	Semicolon Maybe[*Semicolon]
}

// Kind implements [Node].
func (*AugAssign) Kind() Kind { return KindAugAssign }

func (n *AugAssign) mapChildren(m *mapper) Node {
	c := *n
	c.Target = mapRequired(m, "Target", n.Target)
	c.Operator = mapRequired(m, "Operator", n.Operator)
	c.Value = mapRequired(m, "Value", n.Value)
	c.Semicolon = mapMaybe(m, "Semicolon", n.Semicolon)
	return &c
}

func (n *AugAssign) render(s *state) { n.renderSemicolon(s, "") }

func (n *AugAssign) renderSemicolon(s *state, def string) {
	start := s.offset()
	s.node(n.Target)
	s.node(n.Operator)
	s.node(n.Value)
	s.syntax(n, start)
	renderMaybe(s, n.Semicolon, def)
}

func (n *AugAssign) validate() error {
	if isNil(n.Target) || n.Operator == nil || isNil(n.Value) {
		return validationErrorf(n.Kind(), "missing target, operator or value")
	}
	return nil
}

func spaceIf(cond bool) string {
	if cond {
		return " "
	}
	return ""
}
