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

// Package parser turns IndoScript source code into an AST.
//
// The parser is a recursive descent parser over the token stream
// produced by the lexer. Binary operators have no precedence:
// they are applied from left to right.
package parser

import (
	"fmt"

	"github.com/rainerregan/IndoScript/ast"
	"github.com/rainerregan/IndoScript/errors"
	"github.com/rainerregan/IndoScript/parser/lexer"
)

// DefaultDepthLimit is the default limit for the nesting
// of expressions and blocks
const DefaultDepthLimit = 1000

type Config struct {
	// DepthLimit is the maximum nesting depth of expressions and blocks.
	// Zero means DefaultDepthLimit
	DepthLimit int
}

func (c Config) depthLimit() int {
	if c.DepthLimit <= 0 {
		return DefaultDepthLimit
	}
	return c.DepthLimit
}

type parser struct {
	// tokens is a stream of tokens from the lexer
	tokens lexer.TokenStream
	// current is the current token being parsed
	current lexer.Token
	// errors are the parsing errors encountered during parsing
	errors []error
	// config enables certain features
	config Config
	// depth is the current nesting depth of expressions and blocks.
	// It is owned by a single parse call
	depth int
	// blockUnclosed is set when the input ended inside of a block
	blockUnclosed bool
}

// Parse creates a lexer to scan the given input string,
// and uses the given `parse` function to parse tokens into a result.
//
// It can be composed with different parse functions to parse the input string into different results.
// See "ParseExpression", "ParseProgram" as examples.
func Parse[T any](
	input []byte,
	parse func(*parser) T,
	config Config,
) (result T, errs []error) {
	tokens := lexer.Lex(input)
	defer tokens.Reclaim()

	result, errs, _ = parseTokens(tokens, parse, config)
	return
}

func parseTokens[T any](
	tokens lexer.TokenStream,
	parse func(*parser) T,
	config Config,
) (
	result T,
	errs []error,
	blockUnclosed bool,
) {
	p := &parser{
		tokens: tokens,
		config: config,
	}

	defer func() {
		if r := recover(); r != nil {
			var err error
			switch r := r.(type) {
			case errors.InternalError:
				// internal errors percolate up
				panic(r)
			case ParseError:
				err = r
			case error:
				err = errors.NewUnexpectedErrorFromCause(r)
			default:
				err = errors.NewUnexpectedError("parser: %v", r)
			}

			p.report(err)

			var zero T
			result = zero
			errs = p.errors
			blockUnclosed = p.blockUnclosed
		}
	}()

	// Get the initial token
	p.next()

	result = parse(p)

	if !p.current.Is(lexer.TokenEOF) {
		p.panicSyntaxError("unexpected token: %s", p.current.Type)
	}

	return result, p.errors, p.blockUnclosed
}

func (p *parser) report(err error) {
	p.errors = append(p.errors, err)
}

// next moves to the next token
func (p *parser) next() {
	p.current = p.tokens.Next()
}

// cursor returns the index of the current token in the token stream
func (p *parser) cursor() int {
	return p.tokens.Cursor() - 1
}

func (p *parser) syntaxError(message string, params ...any) *SyntaxError {
	return NewSyntaxError(p.current, p.cursor(), message, params...)
}

func (p *parser) panicSyntaxError(message string, params ...any) {
	panic(p.syntaxError(message, params...))
}

// mustOne consumes the current token, which must have the given type
func (p *parser) mustOne(tokenType lexer.TokenType) lexer.Token {
	t := p.current
	if !t.Is(tokenType) {
		p.panicUnexpected("expected token %s", tokenType)
	}
	p.next()
	return t
}

// panicUnexpected reports the current token as unexpected.
// The message describes what was expected instead
func (p *parser) panicUnexpected(expected string, params ...any) {
	description := fmt.Sprintf(expected, params...)

	switch p.current.Type {
	case lexer.TokenEOF:
		p.panicSyntaxError("%s, got end of input", description)
	case lexer.TokenUnknown:
		p.panicSyntaxError("%s, got unknown character %q", description, p.current.Value)
	case lexer.TokenIdentifier:
		p.panicSyntaxError("%s, got identifier %s", description, p.current.Value)
	default:
		p.panicSyntaxError("%s, got %s", description, p.current.Type)
	}
}

// isKeyword reports whether the current token is the given keyword
func (p *parser) isKeyword(keyword string) bool {
	return p.current.IsString(lexer.TokenIdentifier, keyword)
}

// mustKeyword consumes the current token, which must be the given keyword
func (p *parser) mustKeyword(keyword string) lexer.Token {
	t := p.current
	if !p.isKeyword(keyword) {
		p.panicUnexpected("expected keyword %s", keyword)
	}
	p.next()
	return t
}

// mustIdentifier consumes the current token, which must be an identifier
// that is not a hard keyword
func (p *parser) mustIdentifier() ast.Identifier {
	identifier := p.current
	if !identifier.Is(lexer.TokenIdentifier) {
		p.panicUnexpected("expected identifier")
	}

	name := identifier.Value.(string)
	if IsHardKeyword(name) {
		p.panicSyntaxError("expected identifier, got keyword %s", name)
	}

	p.next()

	return tokenToIdentifier(identifier)
}

func tokenToIdentifier(identifier lexer.Token) ast.Identifier {
	return ast.NewIdentifier(
		identifier.Value.(string),
		identifier.StartPos,
	)
}

// enter increases the nesting depth.
// Every call must be paired with a call of leave
func (p *parser) enter() {
	limit := p.config.depthLimit()
	if p.depth > limit {
		panic(RecursionLimitExceededError{
			Pos:   p.current.StartPos,
			Limit: limit,
		})
	}
	p.depth++
}

func (p *parser) leave() {
	p.depth--
}

func newParseError(code []byte, errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return Error{
		Code:   code,
		Errors: errs,
	}
}

// ParseProgram parses a whole program.
func ParseProgram(code []byte, config Config) (program *ast.Program, err error) {
	program, errs := Parse(code, parseProgram, config)
	return program, newParseError(code, errs)
}

// ParseTokens parses a whole program from the given token stream.
// The stream is not reclaimed.
func ParseTokens(tokens lexer.TokenStream, config Config) (program *ast.Program, err error) {
	program, errs, _ := parseTokens(tokens, parseProgram, config)
	return program, newParseError(tokens.Input(), errs)
}

// ParseExpression parses a single expression.
func ParseExpression(code []byte, config Config) (expression ast.Expression, err error) {
	expression, errs := Parse(
		code,
		func(p *parser) ast.Expression {
			return p.parseExpression()
		},
		config,
	)
	return expression, newParseError(code, errs)
}

// ParseReplInput parses the given input of an interactive session.
//
// If the input ended before all blocks and parentheses were closed,
// more input is needed, and inputIsComplete is false.
// An incomplete input is not an error.
func ParseReplInput(code []byte, config Config) (program *ast.Program, inputIsComplete bool, err error) {
	tokens := lexer.Lex(code)
	defer tokens.Reclaim()

	program, errs, blockUnclosed := parseTokens(tokens, parseProgram, config)

	for _, parseErr := range errs {
		if syntaxError, ok := parseErr.(*SyntaxError); ok && syntaxError.AtEndOfInput() {
			return nil, false, nil
		}
	}

	err = newParseError(code, errs)
	if err != nil {
		return nil, true, err
	}

	if blockUnclosed {
		return nil, false, nil
	}

	return program, true, nil
}

func parseProgram(p *parser) *ast.Program {
	statements := p.parseStatements(false)
	return ast.NewProgram(statements)
}
