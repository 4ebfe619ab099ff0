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
	"github.com/rainerregan/IndoScript/errors"
)

type TokenType uint8

const EOF rune = -1

const (
	TokenEOF TokenType = iota
	TokenUnknown
	TokenIdentifier
	TokenNumber
	TokenString
	TokenBoolean
	// operators
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenEqualEqual
	TokenNotEqual
	TokenGreaterEqual
	TokenLessEqual
	TokenGreater
	TokenLess
	TokenAmpersandAmpersand
	TokenVerticalBarVerticalBar
	// punctuation
	TokenParenOpen
	TokenParenClose
	TokenBraceOpen
	TokenBraceClose
	TokenBracketOpen
	TokenBracketClose
	TokenComma
	TokenSemicolon
	TokenDot
	TokenEllipsis
	TokenEqual
	// NOTE: not an actual token, must be last item
	TokenMax
)

func init() {
	// ensure all tokens have its string format
	for t := TokenType(0); t < TokenMax; t++ {
		_ = t.String()
	}
}

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenUnknown:
		return "unknown"
	case TokenIdentifier:
		return "identifier"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenBoolean:
		return "boolean"
	case TokenPlus:
		return `'+'`
	case TokenMinus:
		return `'-'`
	case TokenStar:
		return `'*'`
	case TokenSlash:
		return `'/'`
	case TokenEqualEqual:
		return `'=='`
	case TokenNotEqual:
		return `'!='`
	case TokenGreaterEqual:
		return `'>='`
	case TokenLessEqual:
		return `'<='`
	case TokenGreater:
		return `'>'`
	case TokenLess:
		return `'<'`
	case TokenAmpersandAmpersand:
		return `'&&'`
	case TokenVerticalBarVerticalBar:
		return `'||'`
	case TokenParenOpen:
		return `'('`
	case TokenParenClose:
		return `')'`
	case TokenBraceOpen:
		return `'{'`
	case TokenBraceClose:
		return `'}'`
	case TokenBracketOpen:
		return `'['`
	case TokenBracketClose:
		return `']'`
	case TokenComma:
		return `','`
	case TokenSemicolon:
		return `';'`
	case TokenDot:
		return `'.'`
	case TokenEllipsis:
		return `'...'`
	case TokenEqual:
		return `'='`
	default:
		panic(errors.NewUnreachableError())
	}
}

// IsOperator reports whether the token type is a binary operator.
func (t TokenType) IsOperator() bool {
	return t >= TokenPlus && t <= TokenVerticalBarVerticalBar
}

// IsPunctuation reports whether the token type is a delimiter,
// a separator, or the assignment sign.
func (t TokenType) IsPunctuation() bool {
	return t >= TokenParenOpen && t <= TokenEqual
}
