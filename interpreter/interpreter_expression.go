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
	"time"

	"github.com/rainerregan/IndoScript/ast"
)

const (
	ArrayPropertyLength      = "panjang"
	ArrayPropertyLengthAlias = "length"
	ArrayMethodAppend        = "tambah"
	ArrayMethodAppendAlias   = "push"
	ArrayMethodForEach       = "setiap"
	ArrayMethodForEachAlias  = "forEach"
)

func (interpreter *Interpreter) evalExpression(expression ast.Expression) Value {
	if expression == nil {
		panic(UnknownNodeTypeError{})
	}
	return ast.AcceptExpression[Value](expression, interpreter)
}

func (interpreter *Interpreter) evalExpressions(expressions []ast.Expression) []Value {
	values := make([]Value, len(expressions))
	for i, expression := range expressions {
		values[i] = interpreter.evalExpression(expression)
	}
	return values
}

func (interpreter *Interpreter) VisitNumberExpression(expression *ast.NumberExpression) Value {
	return NumberValue(expression.Value)
}

func (interpreter *Interpreter) VisitStringExpression(expression *ast.StringExpression) Value {
	return StringValue(expression.Value)
}

func (interpreter *Interpreter) VisitBoolExpression(expression *ast.BoolExpression) Value {
	return BoolValue(expression.Value)
}

func (interpreter *Interpreter) VisitArrayExpression(expression *ast.ArrayExpression) Value {

	var elements []Value

	if interpreter.tracingEnabled() {
		startTime := time.Now()

		defer func() {
			interpreter.reportArrayValueConstructTrace(len(elements), time.Since(startTime))
		}()
	}

	elements = make([]Value, 0, len(expression.Elements))

	for _, element := range expression.Elements {
		value := interpreter.evalExpression(element.Expression)

		if !element.Spread {
			elements = append(elements, value)
			continue
		}

		array, ok := value.(*ArrayValue)
		if !ok {
			panic(NotAnArrayError{
				Value: value,
				Range: ast.NewRangeFromPositioned(element),
			})
		}
		elements = append(elements, array.Elements...)
	}

	return NewArrayValue(elements...)
}

func (interpreter *Interpreter) VisitIdentifierExpression(expression *ast.IdentifierExpression) Value {
	name := expression.Identifier.Identifier

	value, ok := interpreter.environment.Find(name)
	if !ok {
		panic(UndefinedVariableError{
			Name:       name,
			Candidates: interpreter.environment.Names(),
			Range:      ast.NewRangeFromPositioned(expression),
		})
	}

	return value
}

func (interpreter *Interpreter) VisitIndexExpression(expression *ast.IndexExpression) Value {
	target := interpreter.evalExpression(expression.TargetExpression)

	array, ok := target.(*ArrayValue)
	if !ok {
		panic(NotAnArrayError{
			Value: target,
			Range: ast.NewRangeFromPositioned(expression.TargetExpression),
		})
	}

	index := interpreter.evalExpression(expression.IndexingExpression)

	return array.Get(index)
}

func (interpreter *Interpreter) VisitMemberExpression(expression *ast.MemberExpression) Value {
	target := interpreter.evalExpression(expression.Expression)

	name := expression.Identifier.Identifier

	switch name {
	case ArrayPropertyLength, ArrayPropertyLengthAlias:
		array := interpreter.expectArray(target, expression.Expression)
		return NumberValue(array.Count())
	}

	panic(UnknownPropertyError{
		Name:  name,
		Range: ast.NewRangeFromPositioned(expression.Identifier),
	})
}

func (interpreter *Interpreter) VisitMethodCallExpression(expression *ast.MethodCallExpression) Value {
	target := interpreter.evalExpression(expression.Expression)

	name := expression.Identifier.Identifier

	switch name {
	case ArrayMethodAppend, ArrayMethodAppendAlias:
		array := interpreter.expectArray(target, expression.Expression)
		arguments := interpreter.evalExpressions(expression.Arguments)
		return interpreter.appendToArray(array, arguments)

	case ArrayMethodForEach, ArrayMethodForEachAlias:
		array := interpreter.expectArray(target, expression.Expression)
		arguments := interpreter.evalExpressions(expression.Arguments)
		interpreter.forEachArrayElement(array, arguments, expression)
		return Null
	}

	panic(UnknownMethodError{
		Name:  name,
		Range: ast.NewRangeFromPositioned(expression.Identifier),
	})
}

func (interpreter *Interpreter) expectArray(value Value, expression ast.Expression) *ArrayValue {
	array, ok := value.(*ArrayValue)
	if !ok {
		panic(NotAnArrayError{
			Value: value,
			Range: ast.NewRangeFromPositioned(expression),
		})
	}
	return array
}

func (interpreter *Interpreter) appendToArray(array *ArrayValue, values []Value) *ArrayValue {
	if interpreter.tracingEnabled() {
		startTime := time.Now()

		defer func() {
			interpreter.reportArrayValueAppendTrace(len(values), time.Since(startTime))
		}()
	}

	return array.Append(values...)
}

// forEachArrayElement calls the function given as the first argument
// with each element and its index
func (interpreter *Interpreter) forEachArrayElement(
	array *ArrayValue,
	arguments []Value,
	expression *ast.MethodCallExpression,
) {
	var callback Value = Null
	if len(arguments) > 0 {
		callback = arguments[0]
	}

	function, ok := callback.(*FunctionValue)
	if !ok {
		callbackRange := ast.NewRangeFromPositioned(expression)
		if len(expression.Arguments) > 0 {
			callbackRange = ast.NewRangeFromPositioned(expression.Arguments[0])
		}

		panic(NotCallableError{
			Value: callback,
			Range: callbackRange,
		})
	}

	invocationRange := interpreter.locationRange(expression)

	array.Walk(func(index int, element Value) {
		interpreter.invokeFunction(
			function,
			[]Value{element, NumberValue(index)},
			invocationRange,
		)
	})
}

func (interpreter *Interpreter) VisitInvocationExpression(expression *ast.InvocationExpression) Value {
	invoked := interpreter.evalExpression(expression.InvokedExpression)

	function, ok := invoked.(*FunctionValue)
	if !ok {
		panic(NotCallableError{
			Value: invoked,
			Range: ast.NewRangeFromPositioned(expression.InvokedExpression),
		})
	}

	arguments := interpreter.evalExpressions(expression.Arguments)

	return interpreter.invokeFunction(
		function,
		arguments,
		interpreter.locationRange(expression),
	)
}

// VisitBinaryExpression evaluates both operands, left to right,
// before applying the operator.
// The logical operators do not short-circuit
func (interpreter *Interpreter) VisitBinaryExpression(expression *ast.BinaryExpression) Value {
	left := interpreter.evalExpression(expression.Left)
	right := interpreter.evalExpression(expression.Right)

	switch expression.Operation {
	case ast.OperationPlus:
		return interpreter.plus(left, right, expression)

	case ast.OperationMinus,
		ast.OperationMul,
		ast.OperationDiv:

		return interpreter.arithmetic(left, right, expression)

	case ast.OperationEqual:
		return BoolValue(Equal(left, right))

	case ast.OperationNotEqual:
		return BoolValue(!Equal(left, right))

	case ast.OperationLess,
		ast.OperationGreater,
		ast.OperationLessEqual,
		ast.OperationGreaterEqual:

		return interpreter.compare(left, right, expression)

	case ast.OperationAnd:
		return BoolValue(Truthy(left) && Truthy(right))

	case ast.OperationOr:
		return BoolValue(Truthy(left) || Truthy(right))
	}

	panic(UnknownOperatorError{
		Operation: expression.Operation,
		Range:     ast.NewRangeFromPositioned(expression),
	})
}

func (interpreter *Interpreter) invalidOperands(left, right Value, expression *ast.BinaryExpression) InvalidOperandsError {
	return InvalidOperandsError{
		Operation: expression.Operation,
		Left:      left,
		Right:     right,
		Range:     ast.NewRangeFromPositioned(expression),
	}
}

// plus adds two numbers.
// If either operand is a string, the textual forms are concatenated
func (interpreter *Interpreter) plus(left, right Value, expression *ast.BinaryExpression) Value {
	_, leftIsString := left.(StringValue)
	_, rightIsString := right.(StringValue)
	if leftIsString || rightIsString {
		return StringValue(left.String() + right.String())
	}

	leftNumber, leftOK := left.(NumberValue)
	rightNumber, rightOK := right.(NumberValue)
	if !leftOK || !rightOK {
		panic(interpreter.invalidOperands(left, right, expression))
	}

	return leftNumber + rightNumber
}

// arithmetic applies `-`, `*`, or `/` to two numbers.
// Division by zero results in an infinity or NaN
func (interpreter *Interpreter) arithmetic(left, right Value, expression *ast.BinaryExpression) Value {
	leftNumber, leftOK := left.(NumberValue)
	rightNumber, rightOK := right.(NumberValue)
	if !leftOK || !rightOK {
		panic(interpreter.invalidOperands(left, right, expression))
	}

	switch expression.Operation {
	case ast.OperationMinus:
		return leftNumber - rightNumber
	case ast.OperationMul:
		return leftNumber * rightNumber
	default:
		return leftNumber / rightNumber
	}
}

// compare orders two numbers, or two strings lexicographically
func (interpreter *Interpreter) compare(left, right Value, expression *ast.BinaryExpression) Value {
	switch leftValue := left.(type) {
	case NumberValue:
		rightNumber, ok := right.(NumberValue)
		if !ok {
			break
		}
		// NaN is unordered: every comparison is false
		return BoolValue(compareNumbers(expression.Operation, leftValue, rightNumber))

	case StringValue:
		rightString, ok := right.(StringValue)
		if !ok {
			break
		}
		return BoolValue(compareStrings(expression.Operation, leftValue, rightString))
	}

	panic(interpreter.invalidOperands(left, right, expression))
}

func compareNumbers(operation ast.Operation, left, right NumberValue) bool {
	switch operation {
	case ast.OperationLess:
		return left < right
	case ast.OperationGreater:
		return left > right
	case ast.OperationLessEqual:
		return left <= right
	default:
		return left >= right
	}
}

func compareStrings(operation ast.Operation, left, right StringValue) bool {
	switch operation {
	case ast.OperationLess:
		return left < right
	case ast.OperationGreater:
		return left > right
	case ast.OperationLessEqual:
		return left <= right
	default:
		return left >= right
	}
}
