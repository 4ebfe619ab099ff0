/*
 * IndoScript - A small scripting language with Indonesian keywords
 *
 * Copyright The IndoScript Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lexer

import (
	"github.com/rainerregan/IndoScript/ast"
)

type Token struct {
	// Value is the identifier or number text, the string content,
	// the boolean value, or the unrecognized character
	Value any
	ast.Range
	Type TokenType
}

func (t Token) Is(ty TokenType) bool {
	return t.Type == ty
}

// IsString reports whether the token has the given type and string value,
// e.g. an identifier token for a specific keyword.
func (t Token) IsString(ty TokenType, s string) bool {
	if !t.Is(ty) {
		return false
	}
	value, ok := t.Value.(string)
	return ok && value == s
}

// Source returns the source text of the token.
func (t Token) Source(input []byte) []byte {
	startOffset := t.StartPos.Offset
	endOffset := t.EndPos.Offset + 1

	length := len(input)
	if startOffset >= length {
		return nil
	}
	if endOffset > length {
		endOffset = length
	}
	return input[startOffset:endOffset]
}
