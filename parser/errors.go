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

package parser

import (
	"fmt"
	"strings"

	"github.com/rainerregan/IndoScript/ast"
	"github.com/rainerregan/IndoScript/common"
	"github.com/rainerregan/IndoScript/errors"
	"github.com/rainerregan/IndoScript/parser/lexer"
	"github.com/rainerregan/IndoScript/pretty"
)

// Error

type Error struct {
	Code   []byte
	Errors []error
}

var _ errors.UserError = Error{}
var _ errors.ParentError = Error{}

func (Error) IsUserError() {}

func (e Error) Error() string {
	var sb strings.Builder
	sb.WriteString("Parsing failed:\n")
	if len(e.Errors) == 0 {
		return sb.String()
	}
	printErr := pretty.NewErrorPrettyPrinter(&sb, false).
		PrettyPrintError(e, nil, map[common.Location][]byte{nil: e.Code})
	if printErr != nil {
		panic(printErr)
	}
	return sb.String()
}

func (e Error) ChildErrors() []error {
	return e.Errors
}

func (e Error) Unwrap() []error {
	return e.Errors
}

// ParseError

type ParseError interface {
	errors.UserError
	ast.HasPosition
	isParseError()
}

// SyntaxError

type SyntaxError struct {
	Message string
	// Token is the offending token
	Token lexer.Token
	Pos   ast.Position
	// Cursor is the index of the offending token in the token stream
	Cursor int
}

func NewSyntaxError(token lexer.Token, cursor int, message string, params ...any) *SyntaxError {
	return &SyntaxError{
		Message: fmt.Sprintf(message, params...),
		Token:   token,
		Pos:     token.StartPos,
		Cursor:  cursor,
	}
}

var _ ParseError = &SyntaxError{}
var _ errors.UserError = &SyntaxError{}

func (*SyntaxError) isParseError() {}

func (*SyntaxError) IsUserError() {}

func (e *SyntaxError) StartPosition() ast.Position {
	return e.Pos
}

func (e *SyntaxError) EndPosition() ast.Position {
	if e.Token.EndPos.Offset < e.Pos.Offset {
		return e.Pos
	}
	return e.Token.EndPos
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// AtEndOfInput reports whether the error was caused by the input ending prematurely.
func (e *SyntaxError) AtEndOfInput() bool {
	return e.Token.Is(lexer.TokenEOF)
}

// RecursionLimitExceededError is reported when expressions or blocks
// are nested deeper than the configured limit

type RecursionLimitExceededError struct {
	Pos   ast.Position
	Limit int
}

var _ ParseError = RecursionLimitExceededError{}
var _ errors.UserError = RecursionLimitExceededError{}
var _ errors.SecondaryError = RecursionLimitExceededError{}

func (RecursionLimitExceededError) isParseError() {}

func (RecursionLimitExceededError) IsUserError() {}

func (e RecursionLimitExceededError) Error() string {
	return fmt.Sprintf(
		"maximum recursion depth exceeded, nesting is limited to %d levels",
		e.Limit,
	)
}

func (e RecursionLimitExceededError) SecondaryError() string {
	return "consider breaking the code into smaller parts or using intermediate variables"
}

func (e RecursionLimitExceededError) StartPosition() ast.Position {
	return e.Pos
}

func (e RecursionLimitExceededError) EndPosition() ast.Position {
	return e.Pos
}
