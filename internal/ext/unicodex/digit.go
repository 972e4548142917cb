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

package unicodex

// Digit returns the value of r as a digit in base, which must be at most 36.
// Digits past 9 are the letters a to z, in either case.
func Digit(r rune, base byte) (value byte, ok bool) {
	var v rune
	switch lower := r | 0x20; {
	case r >= '0' && r <= '9':
		v = r - '0'
	case lower >= 'a' && lower <= 'z':
		v = lower - 'a' + 10
	default:
		return 0, false
	}
	if v >= rune(base) {
		return 0, false
	}
	return byte(v), true
}
