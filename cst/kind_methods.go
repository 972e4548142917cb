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

//go:generate go run ../internal/enum kind.yaml

var operatorText = map[Kind]string{
	KindAdd:            "+",
	KindSubtract:       "-",
	KindMultiply:       "*",
	KindDivide:         "/",
	KindFloorDivide:    "//",
	KindModulo:         "%",
	KindPower:          "**",
	KindLeftShift:      "<<",
	KindRightShift:     ">>",
	KindBitOr:          "|",
	KindBitAnd:         "&",
	KindBitXor:         "^",
	KindMatrixMultiply: "@",

	KindAnd: "and",
	KindOr:  "or",

	KindLessThan:         "<",
	KindGreaterThan:      ">",
	KindEqual:            "==",
	KindLessThanEqual:    "<=",
	KindGreaterThanEqual: ">=",
	KindNotEqual:         "!=",
	KindIn:               "in",
	KindNotIn:            "not in",
	KindIs:               "is",
	KindIsNot:            "is not",

	KindPlus:      "+",
	KindMinus:     "-",
	KindBitInvert: "~",
	KindNot:       "not",

	KindAddAssign:            "+=",
	KindSubtractAssign:       "-=",
	KindMultiplyAssign:       "*=",
	KindDivideAssign:         "/=",
	KindFloorDivideAssign:    "//=",
	KindModuloAssign:         "%=",
	KindPowerAssign:          "**=",
	KindLeftShiftAssign:      "<<=",
	KindRightShiftAssign:     ">>=",
	KindBitOrAssign:          "|=",
	KindBitAndAssign:         "&=",
	KindBitXorAssign:         "^=",
	KindMatrixMultiplyAssign: "@=",
}

// OperatorText returns the source text for an operator kind, such as "+=" for
// [KindAddAssign]. Returns "" for kinds that are not operators.
func (k Kind) OperatorText() string {
	return operatorText[k]
}

// IsBinaryOperator returns whether k is one of the arithmetic or bitwise
// binary operators.
func (k Kind) IsBinaryOperator() bool {
	return k >= KindAdd && k <= KindMatrixMultiply
}

// IsBooleanOperator returns whether k is "and" or "or".
func (k Kind) IsBooleanOperator() bool {
	return k == KindAnd || k == KindOr
}

// IsComparisonOperator returns whether k is a comparison operator.
func (k Kind) IsComparisonOperator() bool {
	return k >= KindLessThan && k <= KindIsNot
}

// IsUnaryOperator returns whether k is a unary prefix operator.
func (k Kind) IsUnaryOperator() bool {
	return k >= KindPlus && k <= KindNot
}

// IsAugOperator returns whether k is an augmented assignment operator.
func (k Kind) IsAugOperator() bool {
	return k >= KindAddAssign && k <= KindMatrixMultiplyAssign
}

// AugOperatorFor returns the augmented assignment operator for a binary
// operator, e.g. [KindAddAssign] for [KindAdd].
func AugOperatorFor(k Kind) (Kind, bool) {
	if !k.IsBinaryOperator() {
		return InvalidKind, false
	}
	return k - KindAdd + KindAddAssign, true
}

// BinaryOperatorFor is the inverse of [AugOperatorFor].
func BinaryOperatorFor(k Kind) (Kind, bool) {
	if !k.IsAugOperator() {
		return InvalidKind, false
	}
	return k - KindAddAssign + KindAdd, true
}

// Kinds returns every valid kind, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := InvalidKind + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
