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

import "strings"

// startsWithWord returns whether the rendered text of n begins with a
// character that would run into a keyword placed directly before it, as in
// "notx".
func startsWithWord(n Node) bool {
	if e, ok := n.(Expression); ok && !isNil(e) && e.parens().Parenthesized() {
		return false
	}
	switch n := n.(type) {
	case *Name, *Integer, *Imaginary, *FormattedString, *Lambda, *Await, *Yield:
		return true
	case *Float:
		return !strings.HasPrefix(n.Value, ".")
	case *SimpleString:
		return n.Prefix() != ""
	case *ConcatenatedString:
		return startsWithWord(n.Left)
	case *Attribute:
		return startsWithWord(n.Value)
	case *Call:
		return startsWithWord(n.Func)
	case *Subscript:
		return startsWithWord(n.Value)
	case *BinaryOperation:
		return startsWithWord(n.Left)
	case *BooleanOperation:
		return startsWithWord(n.Left)
	case *Comparison:
		return startsWithWord(n.Left)
	case *IfExp:
		return startsWithWord(n.Body)
	case *UnaryOperation:
		return n.Operator != nil && n.Operator.Op == KindNot
	case *Tuple:
		if len(n.Elements) == 0 {
			return false
		}
		if el, ok := n.Elements[0].(*Element); ok {
			return startsWithWord(el.Value)
		}
	}
	return false
}

// endsWithWord returns whether the rendered text of n ends with a character
// that would run into a keyword placed directly after it, as in "xor y".
func endsWithWord(n Node) bool {
	if e, ok := n.(Expression); ok && !isNil(e) && e.parens().Parenthesized() {
		return false
	}
	switch n := n.(type) {
	case *Name, *Integer, *Float, *Imaginary, *Attribute:
		return true
	case *BinaryOperation:
		return endsWithWord(n.Right)
	case *BooleanOperation:
		return endsWithWord(n.Right)
	case *Comparison:
		if len(n.Comparisons) == 0 {
			return endsWithWord(n.Left)
		}
		return endsWithWord(n.Comparisons[len(n.Comparisons)-1].Comparator)
	case *UnaryOperation:
		return endsWithWord(n.Expression)
	case *IfExp:
		return endsWithWord(n.Orelse)
	case *Lambda:
		return endsWithWord(n.Body)
	case *Await:
		return endsWithWord(n.Expression)
	case *Yield:
		switch v := n.Value.(type) {
		case nil:
			return true
		case *From:
			return endsWithWord(v.Item)
		default:
			return endsWithWord(v)
		}
	case *Tuple:
		if len(n.Elements) < 2 {
			return false
		}
		switch el := n.Elements[len(n.Elements)-1].(type) {
		case *Element:
			return el.Comma.IsDefault() && endsWithWord(el.Value)
		case *StarredElement:
			return el.Comma.IsDefault() && endsWithWord(el.Value)
		}
	}
	return false
}

// checkKeywordSpacing returns an error if a keyword would run into an
// adjacent expression because the whitespace between them is empty.
func checkKeywordSpacing(k Kind, keyword string, before Node, wsBefore ParenthesizableWhitespace, after Node, wsAfter ParenthesizableWhitespace) error {
	if !isNil(before) && isEmptyWhitespace(wsBefore) && endsWithWord(before) {
		return validationErrorf(k, "must have at least one space before %q", keyword)
	}
	if !isNil(after) && isEmptyWhitespace(wsAfter) && startsWithWord(after) {
		return validationErrorf(k, "must have at least one space after %q", keyword)
	}
	return nil
}
