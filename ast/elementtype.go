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

//go:generate go run golang.org/x/tools/cmd/stringer -type=ElementType

type ElementType uint64

const (
	ElementTypeUnknown ElementType = iota

	ElementTypeProgram
	ElementTypeBlock

	// Statements

	ElementTypeVariableDeclaration
	ElementTypeAssignmentStatement
	ElementTypePrintStatement
	ElementTypeFunctionDeclaration
	ElementTypeReturnStatement
	ElementTypeExpressionStatement
	ElementTypeIfStatement
	ElementTypeWhileStatement
	ElementTypeForStatement
	ElementTypeForEachStatement

	// Expressions

	ElementTypeNumberExpression
	ElementTypeStringExpression
	ElementTypeBoolExpression
	ElementTypeArrayExpression
	ElementTypeIdentifierExpression
	ElementTypeIndexExpression
	ElementTypeMemberExpression
	ElementTypeMethodCallExpression
	ElementTypeBinaryExpression
	ElementTypeInvocationExpression
)
