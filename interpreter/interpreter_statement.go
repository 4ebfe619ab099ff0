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

package interpreter

import (
	"fmt"
	"time"

	"github.com/rainerregan/IndoScript/ast"
)

func (interpreter *Interpreter) evalStatement(statement ast.Statement) StatementResult {

	if statement == nil {
		panic(UnknownNodeTypeError{})
	}

	// Recover and re-throw a panic, so that the statement
	// that caused the error is used for its position

	defer interpreter.RecoverErrors(func(internalErr error) {
		panic(internalErr)
	})

	interpreter.statement = statement

	onStatement := interpreter.Config.OnStatement
	if onStatement != nil {
		onStatement(interpreter, statement)
	}

	return ast.AcceptStatement[StatementResult](statement, interpreter)
}

// visitBlock executes the statements of a block in the current environment.
//
// A `kembali` statement directly in the block evaluates its value
// and stops the block. It does not stop an enclosing loop or function
func (interpreter *Interpreter) visitBlock(block *ast.Block) {
	if block == nil {
		return
	}

	for _, statement := range block.Statements {
		result := interpreter.evalStatement(statement)
		if _, ok := result.(ReturnResult); ok {
			return
		}
	}
}

func (interpreter *Interpreter) VisitVariableDeclaration(declaration *ast.VariableDeclaration) StatementResult {
	value := interpreter.evalExpression(declaration.Value)
	interpreter.environment.Set(declaration.Identifier.Identifier, value)
	return nil
}

func (interpreter *Interpreter) VisitAssignmentStatement(assignment *ast.AssignmentStatement) StatementResult {
	value := interpreter.evalExpression(assignment.Value)
	interpreter.environment.Set(assignment.Target.Identifier, value)
	return nil
}

func (interpreter *Interpreter) VisitPrintStatement(statement *ast.PrintStatement) StatementResult {
	value := interpreter.evalExpression(statement.Expression)

	onPrint := interpreter.Config.OnPrint
	if onPrint != nil {
		onPrint(interpreter, value)
	} else {
		fmt.Println(value.String())
	}

	return nil
}

func (interpreter *Interpreter) VisitFunctionDeclaration(declaration *ast.FunctionDeclaration) StatementResult {
	interpreter.environment.Set(
		declaration.Identifier.Identifier,
		NewFunctionValue(declaration),
	)
	return nil
}

func (interpreter *Interpreter) VisitReturnStatement(statement *ast.ReturnStatement) StatementResult {
	var value Value = Null
	if statement.Expression != nil {
		value = interpreter.evalExpression(statement.Expression)
	}
	return ReturnResult{Value: value}
}

func (interpreter *Interpreter) VisitExpressionStatement(statement *ast.ExpressionStatement) StatementResult {
	value := interpreter.evalExpression(statement.Expression)
	return ExpressionResult{Value: value}
}

func (interpreter *Interpreter) VisitIfStatement(statement *ast.IfStatement) StatementResult {
	if Truthy(interpreter.evalExpression(statement.Test)) {
		interpreter.visitBlock(statement.Then)
	} else if statement.Else != nil {
		interpreter.visitBlock(statement.Else)
	}
	return nil
}

func (interpreter *Interpreter) reportLoopIteration(pos ast.HasPosition) {
	onLoopIteration := interpreter.Config.OnLoopIteration
	if onLoopIteration != nil {
		line := pos.StartPosition().Line
		onLoopIteration(interpreter, line)
	}
}

func (interpreter *Interpreter) VisitWhileStatement(statement *ast.WhileStatement) StatementResult {

	iterations := 0

	if interpreter.tracingEnabled() {
		startTime := time.Now()

		defer func() {
			interpreter.reportLoopTrace(tracingWhilePostfix, iterations, time.Since(startTime))
		}()
	}

	for Truthy(interpreter.evalExpression(statement.Test)) {

		interpreter.reportLoopIteration(statement)

		interpreter.visitBlock(statement.Block)

		iterations++
	}

	return nil
}

func (interpreter *Interpreter) VisitForStatement(statement *ast.ForStatement) StatementResult {

	iterations := 0

	if interpreter.tracingEnabled() {
		startTime := time.Now()

		defer func() {
			interpreter.reportLoopTrace(tracingForPostfix, iterations, time.Since(startTime))
		}()
	}

	if statement.Init != nil {
		interpreter.evalStatement(statement.Init)
	}

	for {
		if statement.Test != nil &&
			!Truthy(interpreter.evalExpression(statement.Test)) {

			return nil
		}

		interpreter.reportLoopIteration(statement)

		interpreter.visitBlock(statement.Block)

		iterations++

		if statement.Update != nil {
			interpreter.evalStatement(statement.Update)
		}
	}
}

func (interpreter *Interpreter) VisitForEachStatement(statement *ast.ForEachStatement) StatementResult {

	iterations := 0

	if interpreter.tracingEnabled() {
		startTime := time.Now()

		defer func() {
			interpreter.reportLoopTrace(tracingForEachPostfix, iterations, time.Since(startTime))
		}()
	}

	value := interpreter.evalExpression(statement.Expression)

	array, ok := value.(*ArrayValue)
	if !ok {
		panic(NotAnArrayError{
			Value: value,
			Range: ast.NewRangeFromPositioned(statement.Expression),
		})
	}

	for _, element := range array.Elements {

		interpreter.reportLoopIteration(statement)

		interpreter.visitForEachStatementBody(statement, element)

		iterations++
	}

	return nil
}

// visitForEachStatementBody executes the body of a for-each loop
// in a clone of the current environment, so no binding persists
func (interpreter *Interpreter) visitForEachStatementBody(
	statement *ast.ForEachStatement,
	element Value,
) {
	environment := interpreter.environment

	interpreter.environment = environment.Clone()
	defer func() {
		interpreter.environment = environment
	}()

	interpreter.environment.Set(statement.Identifier.Identifier, element)

	interpreter.visitBlock(statement.Block)
}
