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

package ast

import (
	"github.com/rainerregan/IndoScript/errors"
)

type StatementVisitor[T any] interface {
	VisitVariableDeclaration(*VariableDeclaration) T
	VisitAssignmentStatement(*AssignmentStatement) T
	VisitPrintStatement(*PrintStatement) T
	VisitFunctionDeclaration(*FunctionDeclaration) T
	VisitReturnStatement(*ReturnStatement) T
	VisitExpressionStatement(*ExpressionStatement) T
	VisitIfStatement(*IfStatement) T
	VisitWhileStatement(*WhileStatement) T
	VisitForStatement(*ForStatement) T
	VisitForEachStatement(*ForEachStatement) T
}

func AcceptStatement[T any](statement Statement, visitor StatementVisitor[T]) (_ T) {

	switch statement.ElementType() {

	case ElementTypeVariableDeclaration:
		return visitor.VisitVariableDeclaration(statement.(*VariableDeclaration))

	case ElementTypeAssignmentStatement:
		return visitor.VisitAssignmentStatement(statement.(*AssignmentStatement))

	case ElementTypePrintStatement:
		return visitor.VisitPrintStatement(statement.(*PrintStatement))

	case ElementTypeFunctionDeclaration:
		return visitor.VisitFunctionDeclaration(statement.(*FunctionDeclaration))

	case ElementTypeReturnStatement:
		return visitor.VisitReturnStatement(statement.(*ReturnStatement))

	case ElementTypeExpressionStatement:
		return visitor.VisitExpressionStatement(statement.(*ExpressionStatement))

	case ElementTypeIfStatement:
		return visitor.VisitIfStatement(statement.(*IfStatement))

	case ElementTypeWhileStatement:
		return visitor.VisitWhileStatement(statement.(*WhileStatement))

	case ElementTypeForStatement:
		return visitor.VisitForStatement(statement.(*ForStatement))

	case ElementTypeForEachStatement:
		return visitor.VisitForEachStatement(statement.(*ForEachStatement))
	}

	panic(errors.NewUnreachableError())
}

type ExpressionVisitor[T any] interface {
	VisitNumberExpression(*NumberExpression) T
	VisitStringExpression(*StringExpression) T
	VisitBoolExpression(*BoolExpression) T
	VisitArrayExpression(*ArrayExpression) T
	VisitIdentifierExpression(*IdentifierExpression) T
	VisitIndexExpression(*IndexExpression) T
	VisitMemberExpression(*MemberExpression) T
	VisitMethodCallExpression(*MethodCallExpression) T
	VisitBinaryExpression(*BinaryExpression) T
	VisitInvocationExpression(*InvocationExpression) T
}

func AcceptExpression[T any](expression Expression, visitor ExpressionVisitor[T]) (_ T) {

	switch expression.ElementType() {

	case ElementTypeNumberExpression:
		return visitor.VisitNumberExpression(expression.(*NumberExpression))

	case ElementTypeStringExpression:
		return visitor.VisitStringExpression(expression.(*StringExpression))

	case ElementTypeBoolExpression:
		return visitor.VisitBoolExpression(expression.(*BoolExpression))

	case ElementTypeArrayExpression:
		return visitor.VisitArrayExpression(expression.(*ArrayExpression))

	case ElementTypeIdentifierExpression:
		return visitor.VisitIdentifierExpression(expression.(*IdentifierExpression))

	case ElementTypeIndexExpression:
		return visitor.VisitIndexExpression(expression.(*IndexExpression))

	case ElementTypeMemberExpression:
		return visitor.VisitMemberExpression(expression.(*MemberExpression))

	case ElementTypeMethodCallExpression:
		return visitor.VisitMethodCallExpression(expression.(*MethodCallExpression))

	case ElementTypeBinaryExpression:
		return visitor.VisitBinaryExpression(expression.(*BinaryExpression))

	case ElementTypeInvocationExpression:
		return visitor.VisitInvocationExpression(expression.(*InvocationExpression))
	}

	panic(errors.NewUnreachableError())
}
