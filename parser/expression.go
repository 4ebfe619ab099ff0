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
	"strconv"

	"github.com/rainerregan/IndoScript/ast"
	"github.com/rainerregan/IndoScript/errors"
	"github.com/rainerregan/IndoScript/parser/lexer"
)

var binaryOperations = [lexer.TokenMax]ast.Operation{
	lexer.TokenPlus:                   ast.OperationPlus,
	lexer.TokenMinus:                  ast.OperationMinus,
	lexer.TokenStar:                   ast.OperationMul,
	lexer.TokenSlash:                  ast.OperationDiv,
	lexer.TokenEqualEqual:             ast.OperationEqual,
	lexer.TokenNotEqual:               ast.OperationNotEqual,
	lexer.TokenGreaterEqual:           ast.OperationGreaterEqual,
	lexer.TokenLessEqual:              ast.OperationLessEqual,
	lexer.TokenGreater:                ast.OperationGreater,
	lexer.TokenLess:                   ast.OperationLess,
	lexer.TokenAmpersandAmpersand:     ast.OperationAnd,
	lexer.TokenVerticalBarVerticalBar: ast.OperationOr,
}

// parseExpression parses a binary expression.
//
// All operators bind equally and associate to the left:
// `2 + 3 * 4` is `(2 + 3) * 4`.
// The right operand of each operator is a single operand
// with its calls, index accesses, and member accesses
func (p *parser) parseExpression() ast.Expression {
	p.enter()
	defer p.leave()

	left := p.parseOperand()

	for p.current.Type.IsOperator() {
		operation := binaryOperations[p.current.Type]
		p.next()

		right := p.parseOperand()

		left = ast.NewBinaryExpression(operation, left, right)
	}

	return left
}

// parseOperand parses a primary expression, followed by any number of
// invocations `(...)`, index accesses `[...]`, member accesses `.name`,
// and method calls `.name(...)`
func (p *parser) parseOperand() ast.Expression {
	expression := p.parsePrimary()

	for {
		switch p.current.Type {
		case lexer.TokenParenOpen:
			arguments, endPos := p.parseArguments()
			expression = ast.NewInvocationExpression(expression, arguments, endPos)

		case lexer.TokenBracketOpen:
			p.next()
			index := p.parseExpression()
			endToken := p.mustOne(lexer.TokenBracketClose)
			expression = ast.NewIndexExpression(
				expression,
				index,
				ast.NewRange(expression.StartPosition(), endToken.EndPos),
			)

		case lexer.TokenDot:
			p.next()
			identifier := p.mustIdentifier()

			if p.current.Is(lexer.TokenParenOpen) {
				arguments, endPos := p.parseArguments()
				expression = ast.NewMethodCallExpression(
					expression,
					identifier,
					arguments,
					endPos,
				)
			} else {
				expression = ast.NewMemberExpression(expression, identifier)
			}

		default:
			return expression
		}
	}
}

// parseArguments parses a parenthesized, comma-separated argument list.
// It returns the end position of the closing parenthesis
func (p *parser) parseArguments() (arguments []ast.Expression, endPos ast.Position) {
	p.mustOne(lexer.TokenParenOpen)

	for !p.current.Is(lexer.TokenParenClose) {
		argument := p.parseExpression()
		arguments = append(arguments, argument)

		if !p.current.Is(lexer.TokenComma) {
			break
		}
		// Skip the comma
		p.next()
	}

	endToken := p.mustOne(lexer.TokenParenClose)

	return arguments, endToken.EndPos
}

func (p *parser) parsePrimary() ast.Expression {
	token := p.current

	switch token.Type {
	case lexer.TokenNumber:
		p.next()
		return parseNumber(token)

	case lexer.TokenString:
		p.next()
		return ast.NewStringExpression(token.Value.(string), token.Range)

	case lexer.TokenBoolean:
		p.next()
		return ast.NewBoolExpression(token.Value.(bool), token.Range)

	case lexer.TokenBracketOpen:
		return p.parseArrayExpression()

	case lexer.TokenParenOpen:
		p.next()
		expression := p.parseExpression()
		p.mustOne(lexer.TokenParenClose)
		return expression

	case lexer.TokenIdentifier:
		name := token.Value.(string)
		if IsHardKeyword(name) {
			p.panicSyntaxError("unexpected keyword %s in expression", name)
		}
		p.next()
		return ast.NewIdentifierExpression(tokenToIdentifier(token))
	}

	p.panicUnexpected("expected expression")
	panic(errors.NewUnreachableError())
}

func parseNumber(token lexer.Token) *ast.NumberExpression {
	literal := token.Value.(string)

	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		// very long literals are out of range and parse as +Inf
		numErr, ok := err.(*strconv.NumError)
		if !ok || numErr.Err != strconv.ErrRange {
			panic(NewSyntaxError(token, 0, "invalid number literal %s", literal))
		}
	}

	return ast.NewNumberExpression(literal, value, token.Range)
}

// parseArrayExpression parses `[a, ...b, c]`.
// A trailing comma is allowed
func (p *parser) parseArrayExpression() *ast.ArrayExpression {
	startToken := p.mustOne(lexer.TokenBracketOpen)

	var elements []*ast.ArrayElement

	for !p.current.Is(lexer.TokenBracketClose) {
		element := &ast.ArrayElement{}

		if p.current.Is(lexer.TokenEllipsis) {
			element.Spread = true
			element.StartPos = p.current.StartPos
			p.next()
		}

		element.Expression = p.parseExpression()
		elements = append(elements, element)

		if !p.current.Is(lexer.TokenComma) {
			break
		}
		// Skip the comma
		p.next()
	}

	endToken := p.mustOne(lexer.TokenBracketClose)

	return ast.NewArrayExpression(
		elements,
		ast.NewRange(startToken.StartPos, endToken.EndPos),
	)
}
