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
	"bytes"
	"sync"
	"unicode/utf8"

	"github.com/rainerregan/IndoScript/ast"
	"github.com/rainerregan/IndoScript/errors"
)

// TokenStream is a cursor over the tokens of an input.
// The last token of every stream is an EOF token,
// which is returned repeatedly once the end is reached.
type TokenStream interface {
	// Next consumes and returns the next token
	Next() Token
	// Peek returns the next token without consuming it
	Peek() Token
	// Input returns the whole input as source
	Input() []byte
	// Cursor returns the current position in the stream
	Cursor() int
	// Revert resets the stream to the given cursor position
	Revert(cursor int)
	// Reclaim frees the stream for reuse. It must not be used afterwards
	Reclaim()
}

type position struct {
	line   int
	column int
}

type lexer struct {
	// input is the entire input string
	input []byte
	// tokens contains all tokens of the stream, ending with an EOF token
	tokens []Token
	// startPos is the start position of the current word
	startPos position
	// startOffset is the start offset of the current word
	startOffset int
	// endOffset is the end offset of the current word
	endOffset int
	// prevEndOffset is the previous end offset, used for stepping back
	prevEndOffset int
	// cursor is the offset in the token stream
	cursor int
	// current is the currently scanned rune
	current rune
	// prev is the previously scanned rune, used for stepping back
	prev rune
	// canBackup indicates whether stepping back is allowed
	canBackup bool
}

var _ TokenStream = &lexer{}

func (l *lexer) Next() Token {
	token := l.Peek()
	if l.cursor < len(l.tokens) {
		l.cursor++
	}
	return token
}

func (l *lexer) Peek() Token {
	if l.cursor >= len(l.tokens) {
		return l.tokens[len(l.tokens)-1]
	}
	return l.tokens[l.cursor]
}

func (l *lexer) Input() []byte {
	return l.input
}

func (l *lexer) Cursor() int {
	return l.cursor
}

func (l *lexer) Revert(cursor int) {
	l.cursor = cursor
}

func (l *lexer) clear() {
	l.startOffset = 0
	l.endOffset = 0
	l.prevEndOffset = 0
	l.current = EOF
	l.prev = EOF
	l.canBackup = false
	l.startPos = position{line: 1}
	l.cursor = 0
	l.tokens = l.tokens[:0]
}

func (l *lexer) Reclaim() {
	pool.Put(l)
}

var pool = sync.Pool{
	New: func() any {
		return &lexer{
			tokens: make([]Token, 0, 2048),
		}
	},
}

// Lex scans the whole input into a token stream.
// Lexing never fails: unrecognized characters become unknown tokens,
// which are reported by the parser.
func Lex(input []byte) TokenStream {
	l := pool.Get().(*lexer)
	l.clear()
	l.input = input
	l.run(rootState)
	l.emitEOF()
	return l
}

// run executes the stateFn, which will scan the runes in the input
// and emit tokens.
//
// stateFn might return another stateFn to indicate further scanning work,
// or nil if there is no scanning work left to be done,
// i.e. run will keep running the returned stateFn until no more
// stateFn is returned, which happens when reaching the end of the file.
func (l *lexer) run(state stateFn) {
	for state != nil {
		state = state(l)
	}
}

// next decodes the next rune (UTF8 character) from the input string.
//
// It returns EOF if it reaches the end of the file,
// otherwise returns the scanned rune.
func (l *lexer) next() rune {
	l.canBackup = true

	endOffset := l.endOffset

	// update prevEndOffset and prev so that we can step back one rune.
	l.prevEndOffset = endOffset
	l.prev = l.current

	r := EOF
	w := 1
	if endOffset < len(l.input) {
		r, w = utf8.DecodeRune(l.input[endOffset:])
	}

	l.endOffset += w
	l.current = r

	return r
}

// backupOne steps back one rune.
// Can be called only once per call of next.
func (l *lexer) backupOne() {
	if !l.canBackup {
		panic(errors.NewUnreachableError())
	}
	l.canBackup = false

	l.endOffset = l.prevEndOffset
	l.current = l.prev
}

func (l *lexer) word() []byte {
	return l.input[l.startOffset:l.endOffset]
}

// acceptOne reads one rune ahead.
// It returns true if the next rune matches with the input rune,
// otherwise it steps back one rune and returns false.
func (l *lexer) acceptOne(r rune) bool {
	if l.next() == r {
		return true
	}
	l.backupOne()
	return false
}

// acceptString consumes the given ASCII string if the input continues with it.
func (l *lexer) acceptString(s string) bool {
	if !bytes.HasPrefix(l.input[l.endOffset:], []byte(s)) {
		return false
	}
	l.endOffset += len(s)
	l.current = rune(s[len(s)-1])
	l.canBackup = false
	return true
}

// acceptWhile reads the next runes while the given predicate holds.
func (l *lexer) acceptWhile(f func(rune) bool) {
	for {
		r := l.next()

		if r == EOF || !f(r) {
			l.backupOne()
			return
		}
	}
}

// emit appends a token for the current word and consumes it.
func (l *lexer) emit(ty TokenType, value any) {
	endPos := l.endPos()

	token := Token{
		Type:  ty,
		Value: value,
		Range: ast.NewRange(
			l.startPosition(),
			ast.NewPosition(
				l.endOffset-1,
				endPos.line,
				endPos.column,
			),
		),
	}

	l.tokens = append(l.tokens, token)

	l.consume()
}

func (l *lexer) emitType(ty TokenType) {
	l.emit(ty, nil)
}

func (l *lexer) emitEOF() {
	pos := l.startPosition()
	l.tokens = append(
		l.tokens,
		Token{
			Type:  TokenEOF,
			Range: ast.NewRange(pos, pos),
		},
	)
}

// consume skips the current word without emitting a token.
func (l *lexer) consume() {
	if l.endOffset <= l.startOffset {
		return
	}

	endPos := l.endPos()

	r, _ := utf8.DecodeLastRune(l.word())
	if r == '\n' {
		endPos.line++
		endPos.column = 0
	} else {
		endPos.column++
	}

	l.startPos = endPos
	l.startOffset = l.endOffset
}

func (l *lexer) startPosition() ast.Position {
	return ast.NewPosition(
		l.startOffset,
		l.startPos.line,
		l.startPos.column,
	)
}

// endPos returns the position of the last rune of the current word.
func (l *lexer) endPos() position {
	endPos := l.startPos

	offset := l.startOffset
	for offset < l.endOffset && offset < len(l.input) {
		r, w := utf8.DecodeRune(l.input[offset:])
		if offset+w >= l.endOffset {
			break
		}

		if r == '\n' {
			endPos.line++
			endPos.column = 0
		} else {
			endPos.column++
		}

		offset += w
	}

	return endPos
}
