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
	"unicode"

	"github.com/SaveTheRbtz/mph"
)

const (
	wordTrue     = "benar"
	wordFalse    = "salah"
	wordAnd      = "dan"
	wordOr       = "atau"
	wordNotEqual = "tidak_sama"
)

type wordToken struct {
	value any
	ty    TokenType
}

// words are scanned as tokens other than identifiers.
// NOTE: the order of words and wordTokens must match
var words = []string{
	wordTrue,
	wordFalse,
	wordAnd,
	wordOr,
	wordNotEqual,
}

var wordTokens = []wordToken{
	{ty: TokenBoolean, value: true},
	{ty: TokenBoolean, value: false},
	{ty: TokenAmpersandAmpersand},
	{ty: TokenVerticalBarVerticalBar},
	{ty: TokenNotEqual},
}

var wordsTable = mph.Build(words)

// stateFn uses the input lexer to read runes and emit tokens.
//
// It either returns nil when reaching end of file,
// or returns another stateFn for more scanning work.
type stateFn func(*lexer) stateFn

// rootState returns a stateFn that scans the file and emits tokens until
// reaching the end of the file.
func rootState(l *lexer) stateFn {
	for {
		var ty TokenType

		r := l.next()
		switch r {
		case EOF:
			return nil
		case '+':
			ty = TokenPlus
		case '-':
			ty = TokenMinus
		case '*':
			ty = TokenStar
		case '/':
			if l.acceptOne('/') {
				return lineCommentState
			}
			ty = TokenSlash
		case '(':
			ty = TokenParenOpen
		case ')':
			ty = TokenParenClose
		case '{':
			ty = TokenBraceOpen
		case '}':
			ty = TokenBraceClose
		case '[':
			ty = TokenBracketOpen
		case ']':
			ty = TokenBracketClose
		case ',':
			ty = TokenComma
		case ';':
			ty = TokenSemicolon
		case '.':
			if l.acceptString("..") {
				ty = TokenEllipsis
			} else {
				ty = TokenDot
			}
		case '=':
			if l.acceptOne('=') {
				ty = TokenEqualEqual
			} else {
				ty = TokenEqual
			}
		case '!':
			if !l.acceptOne('=') {
				return unknownState
			}
			ty = TokenNotEqual
		case '>':
			if l.acceptOne('=') {
				ty = TokenGreaterEqual
			} else {
				ty = TokenGreater
			}
		case '<':
			if l.acceptOne('=') {
				ty = TokenLessEqual
			} else {
				ty = TokenLess
			}
		case '&':
			if !l.acceptOne('&') {
				return unknownState
			}
			ty = TokenAmpersandAmpersand
		case '|':
			if !l.acceptOne('|') {
				return unknownState
			}
			ty = TokenVerticalBarVerticalBar
		case '"':
			return stringState
		default:
			switch {
			case isIdentifierStart(r):
				return identifierState
			case isDecimalDigit(r):
				return numberState
			case unicode.IsSpace(r):
				return spaceState
			default:
				return unknownState
			}
		}

		l.emitType(ty)
	}
}

func isIdentifierStart(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r == '_'
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || isDecimalDigit(r)
}

func isDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func spaceState(l *lexer) stateFn {
	l.acceptWhile(unicode.IsSpace)
	l.consume()
	return rootState
}

// lineCommentState skips the rest of the line, but not the newline
func lineCommentState(l *lexer) stateFn {
	l.acceptWhile(func(r rune) bool {
		return r != '\n'
	})
	l.consume()
	return rootState
}

// unknownState emits the current word, a single character, as an unknown token
func unknownState(l *lexer) stateFn {
	l.emit(TokenUnknown, string(l.word()))
	return rootState
}

func identifierState(l *lexer) stateFn {
	l.acceptWhile(isIdentifierPart)

	identifier := string(l.word())

	if index, ok := wordsTable.Lookup(identifier); ok {
		token := wordTokens[index]
		l.emit(token.ty, token.value)
	} else {
		l.emit(TokenIdentifier, identifier)
	}

	return rootState
}

func numberState(l *lexer) stateFn {
	l.acceptWhile(isDecimalDigit)
	l.emit(TokenNumber, string(l.word()))
	return rootState
}

// stringState scans a string literal. Strings have no escape sequences.
// An unterminated string extends to the end of the input.
func stringState(l *lexer) stateFn {
	for {
		r := l.next()
		switch r {
		case '"':
			word := l.word()
			l.emit(TokenString, string(word[1:len(word)-1]))
			return rootState

		case EOF:
			l.backupOne()
			l.emit(TokenString, string(l.word()[1:]))
			return nil
		}
	}
}
