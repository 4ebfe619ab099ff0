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
	"github.com/rainerregan/IndoScript/ast"
	"github.com/rainerregan/IndoScript/parser/lexer"
)

// parseStatements parses statements until the end of the input,
// or the end of the enclosing block.
// Stray semicolons are skipped
func (p *parser) parseStatements(inBlock bool) (statements []ast.Statement) {
	for {
		switch p.current.Type {
		case lexer.TokenSemicolon:
			p.next()
			continue

		case lexer.TokenEOF:
			return

		case lexer.TokenBraceClose:
			if inBlock {
				return
			}
			p.panicSyntaxError("unexpected %s", p.current.Type)

		default:
			statement := p.parseStatement()
			statements = append(statements, statement)
		}
	}
}

func (p *parser) parseStatement() ast.Statement {
	if p.current.Is(lexer.TokenIdentifier) {
		switch p.current.Value.(string) {
		case KeywordAtur:
			return p.parseVariableDeclaration()
		case KeywordTampilkan:
			return p.parsePrintStatement()
		case KeywordFungsi:
			return p.parseFunctionDeclaration()
		case KeywordKembali:
			return p.parseReturnStatement()
		case KeywordJika:
			return p.parseIfStatement()
		case KeywordSelama:
			return p.parseWhileStatement()
		case KeywordUntuk:
			return p.parseForStatement()
		case KeywordUntukSetiap:
			return p.parseForEachStatement()
		case KeywordKalauTidak:
			p.panicSyntaxError("unexpected %s without %s", KeywordKalauTidak, KeywordJika)
		}

		if assignment := p.parseAssignmentIfPresent(); assignment != nil {
			return assignment
		}
	}

	expression := p.parseExpression()
	return ast.NewExpressionStatement(expression)
}

// parseSimpleStatement parses the initializer or update of a for-statement:
// a variable declaration, an assignment, or an expression
func (p *parser) parseSimpleStatement() ast.Statement {
	if p.isKeyword(KeywordAtur) {
		return p.parseVariableDeclaration()
	}

	if p.current.Is(lexer.TokenIdentifier) {
		if assignment := p.parseAssignmentIfPresent(); assignment != nil {
			return assignment
		}
	}

	expression := p.parseExpression()
	return ast.NewExpressionStatement(expression)
}

// parseAssignmentIfPresent parses an assignment `NAME = EXPR`.
// If the current identifier is not followed by `=`,
// the stream is reverted and nil is returned
func (p *parser) parseAssignmentIfPresent() *ast.AssignmentStatement {
	identifierToken := p.current
	cursor := p.tokens.Cursor()

	p.next()

	if !p.current.Is(lexer.TokenEqual) {
		p.tokens.Revert(cursor)
		p.current = identifierToken
		return nil
	}

	name := identifierToken.Value.(string)
	if IsHardKeyword(name) {
		p.current = identifierToken
		p.tokens.Revert(cursor)
		p.panicSyntaxError("cannot assign to keyword %s", name)
	}

	// Skip the `=`
	p.next()

	value := p.parseExpression()

	return ast.NewAssignmentStatement(
		tokenToIdentifier(identifierToken),
		value,
	)
}

func (p *parser) parseVariableDeclaration() *ast.VariableDeclaration {
	startPos := p.mustKeyword(KeywordAtur).StartPos

	identifier := p.mustIdentifier()

	p.mustOne(lexer.TokenEqual)

	value := p.parseExpression()

	return ast.NewVariableDeclaration(identifier, value, startPos)
}

func (p *parser) parsePrintStatement() *ast.PrintStatement {
	startPos := p.mustKeyword(KeywordTampilkan).StartPos

	expression := p.parseExpression()

	return ast.NewPrintStatement(expression, startPos)
}

func (p *parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	startPos := p.mustKeyword(KeywordFungsi).StartPos

	identifier := p.mustIdentifier()

	parameters := p.parseParameterList()

	body := p.parseBlock()

	return ast.NewFunctionDeclaration(
		identifier,
		parameters,
		body,
		startPos,
	)
}

func (p *parser) parseParameterList() (parameters []ast.Identifier) {
	p.mustOne(lexer.TokenParenOpen)

	for !p.current.Is(lexer.TokenParenClose) {
		parameter := p.mustIdentifier()
		parameters = append(parameters, parameter)

		if !p.current.Is(lexer.TokenComma) {
			break
		}
		// Skip the comma
		p.next()
	}

	p.mustOne(lexer.TokenParenClose)

	return parameters
}

// parseReturnStatement parses `kembali` with an optional expression.
// The expression must start on the same line as the keyword
func (p *parser) parseReturnStatement() *ast.ReturnStatement {
	keyword := p.mustKeyword(KeywordKembali)
	endPosition := keyword.EndPos

	var expression ast.Expression

	switch p.current.Type {
	case lexer.TokenEOF, lexer.TokenSemicolon, lexer.TokenBraceClose:
		break
	default:
		if p.current.StartPos.Line == keyword.EndPos.Line {
			expression = p.parseExpression()
			endPosition = expression.EndPosition()
		}
	}

	return ast.NewReturnStatement(
		expression,
		ast.NewRange(keyword.StartPos, endPosition),
	)
}

// parseTest parses the parenthesized condition of a statement
func (p *parser) parseTest() ast.Expression {
	if !p.current.Is(lexer.TokenParenOpen) {
		p.panicUnexpected("expected condition in parentheses")
	}
	return p.parseExpression()
}

func (p *parser) parseIfStatement() *ast.IfStatement {

	var ifStatements []*ast.IfStatement

	for {
		startPos := p.mustKeyword(KeywordJika).StartPos

		test := p.parseTest()

		thenBlock := p.parseBlock()

		var elseBlock *ast.Block

		parseNested := false

		if p.isKeyword(KeywordKalauTidak) {
			p.next()

			if p.isKeyword(KeywordJika) {
				parseNested = true
			} else {
				elseBlock = p.parseBlock()
			}
		}

		ifStatements = append(ifStatements,
			ast.NewIfStatement(
				test,
				thenBlock,
				elseBlock,
				startPos,
			),
		)

		if !parseNested {
			break
		}
	}

	length := len(ifStatements)

	result := ifStatements[length-1]

	for i := length - 2; i >= 0; i-- {
		outer := ifStatements[i]
		outer.Else = ast.NewBlock(
			[]ast.Statement{result},
			ast.NewRangeFromPositioned(result),
		)
		result = outer
	}

	return result
}

func (p *parser) parseWhileStatement() *ast.WhileStatement {
	startPos := p.mustKeyword(KeywordSelama).StartPos

	test := p.parseTest()

	block := p.parseBlock()

	return ast.NewWhileStatement(test, block, startPos)
}

// parseForStatement parses `untuk (init; test; update) { ... }`.
// All three clauses are optional
func (p *parser) parseForStatement() *ast.ForStatement {
	startPos := p.mustKeyword(KeywordUntuk).StartPos

	p.mustOne(lexer.TokenParenOpen)

	var init ast.Statement
	if !p.current.Is(lexer.TokenSemicolon) {
		init = p.parseSimpleStatement()
	}
	p.mustOne(lexer.TokenSemicolon)

	var test ast.Expression
	if !p.current.Is(lexer.TokenSemicolon) {
		test = p.parseExpression()
	}
	p.mustOne(lexer.TokenSemicolon)

	var update ast.Statement
	if !p.current.Is(lexer.TokenParenClose) {
		update = p.parseSimpleStatement()
	}
	p.mustOne(lexer.TokenParenClose)

	block := p.parseBlock()

	return ast.NewForStatement(
		init,
		test,
		update,
		block,
		startPos,
	)
}

// parseForEachStatement parses `untuk_setiap (x dalam array) { ... }`
func (p *parser) parseForEachStatement() *ast.ForEachStatement {
	startPos := p.mustKeyword(KeywordUntukSetiap).StartPos

	p.mustOne(lexer.TokenParenOpen)

	identifier := p.mustIdentifier()

	p.mustKeyword(KeywordDalam)

	expression := p.parseExpression()

	p.mustOne(lexer.TokenParenClose)

	block := p.parseBlock()

	return ast.NewForEachStatement(
		identifier,
		expression,
		block,
		startPos,
	)
}

// parseBlock parses `{ ... }`.
// A block which is still open at the end of the input is accepted,
// and the parser remembers that the input was incomplete
func (p *parser) parseBlock() *ast.Block {
	p.enter()
	defer p.leave()

	startToken := p.mustOne(lexer.TokenBraceOpen)

	statements := p.parseStatements(true)

	endPos := startToken.EndPos

	if p.current.Is(lexer.TokenBraceClose) {
		endPos = p.current.EndPos
		p.next()
	} else {
		p.blockUnclosed = true
		if count := len(statements); count > 0 {
			endPos = statements[count-1].EndPosition()
		}
	}

	return ast.NewBlock(
		statements,
		ast.NewRange(startToken.StartPos, endPos),
	)
}
