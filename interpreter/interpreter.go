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

// Package interpreter evaluates IndoScript programs.
//
// The interpreter walks the AST of a program and executes it
// against an environment, which maps names to values.
package interpreter

import (
	"fmt"
	"slices"
	"time"

	"golang.org/x/xerrors"

	"github.com/rainerregan/IndoScript/ast"
	"github.com/rainerregan/IndoScript/common"
	"github.com/rainerregan/IndoScript/errors"
)

// StatementResult is the result of executing a statement.
// Statements which produce no result return nil
type StatementResult interface {
	isStatementResult()
}

// ReturnResult is the result of a `kembali` statement
type ReturnResult struct {
	Value Value
}

func (ReturnResult) isStatementResult() {}

// ExpressionResult is the result of an expression statement
type ExpressionResult struct {
	Value Value
}

func (ExpressionResult) isStatementResult() {}

// Invocation is a function call on the call stack
type Invocation struct {
	Function *FunctionValue
	// LocationRange is the range of the call expression
	LocationRange LocationRange
}

type Interpreter struct {
	Program  *ast.Program
	Location common.Location
	Config   *Config

	environment *Environment
	statement   ast.Statement
	callStack   []Invocation
}

var _ ast.StatementVisitor[StatementResult] = &Interpreter{}
var _ ast.ExpressionVisitor[Value] = &Interpreter{}

func NewInterpreter(
	program *ast.Program,
	location common.Location,
	config *Config,
) (*Interpreter, error) {
	if config == nil {
		config = &Config{}
	}

	if config.TracingEnabled && config.OnRecordTrace == nil {
		return nil, errors.NewDefaultUserError("tracing is enabled, but no trace recorder is configured")
	}

	return &Interpreter{
		Program:  program,
		Location: location,
		Config:   config,
	}, nil
}

// Run interprets the program against the given environment.
// A nil environment is replaced by a new, empty environment
func Run(program *ast.Program, env *Environment, config *Config) error {
	inter, err := NewInterpreter(program, nil, config)
	if err != nil {
		return err
	}
	return inter.Interpret(env)
}

// Interpret executes the statements of the program in order.
// Execution stops at the first error.
//
// Bindings made by top-level statements are added to the given environment.
func (interpreter *Interpreter) Interpret(env *Environment) (err error) {
	if env == nil {
		env = NewEnvironment()
	}
	interpreter.environment = env

	// recover internal panics and return them as an error
	defer interpreter.RecoverErrors(func(internalErr error) {
		err = internalErr
	})

	if interpreter.Program != nil {
		interpreter.VisitProgram(interpreter.Program)
	}

	return nil
}

func (interpreter *Interpreter) VisitProgram(program *ast.Program) {
	for _, statement := range program.Statements {
		// a top-level return evaluates its value,
		// but does not stop the program
		interpreter.evalStatement(statement)
	}
}

// ExecuteStatement executes a single statement against the given environment.
// The result is the value of an expression statement, or nil
func (interpreter *Interpreter) ExecuteStatement(
	statement ast.Statement,
	env *Environment,
) (
	result Value,
	err error,
) {
	if env == nil {
		env = NewEnvironment()
	}
	interpreter.environment = env

	defer interpreter.RecoverErrors(func(internalErr error) {
		err = internalErr
	})

	if expressionResult, ok := interpreter.evalStatement(statement).(ExpressionResult); ok {
		result = expressionResult.Value
	}

	return result, nil
}

// EvaluateExpression evaluates a single expression against the given environment
func (interpreter *Interpreter) EvaluateExpression(
	expression ast.Expression,
	env *Environment,
) (
	result Value,
	err error,
) {
	if env == nil {
		env = NewEnvironment()
	}
	interpreter.environment = env

	defer interpreter.RecoverErrors(func(internalErr error) {
		err = internalErr
	})

	return interpreter.evalExpression(expression), nil
}

// Environment returns the environment the interpreter currently executes in
func (interpreter *Interpreter) Environment() *Environment {
	return interpreter.environment
}

func (interpreter *Interpreter) CallStack() []Invocation {
	return interpreter.callStack
}

func (interpreter *Interpreter) GetLocation() common.Location {
	return interpreter.Location
}

func (interpreter *Interpreter) locationRange(hasPosition ast.HasPosition) LocationRange {
	return LocationRange{
		Location: interpreter.Location,
		Range:    ast.NewRangeFromPositioned(hasPosition),
	}
}

func (interpreter *Interpreter) RecoverErrors(onError func(error)) {
	if r := recover(); r != nil {
		onError(interpreter.recoveredError(r))
	}
}

// recoveredError converts a recovered panic into an Error.
// Position and call stack are taken from the current state,
// so the conversion must happen before invocations are unwound
func (interpreter *Interpreter) recoveredError(r any) error {
	err := asIndoScriptError(r)

	// already converted by an inner invocation
	if _, ok := err.(Error); ok {
		return err
	}

	_, ok := err.(ast.HasPosition)
	if !ok && interpreter.statement != nil {
		err = PositionedError{
			Err:   err,
			Range: ast.NewRangeFromPositioned(interpreter.statement),
		}
	}

	return Error{
		Err:        err,
		Location:   interpreter.Location,
		StackTrace: slices.Clone(interpreter.callStack),
	}
}

func asIndoScriptError(r any) error {
	err, isError := r.(error)
	if !isError {
		return errors.NewUnexpectedError("%s", fmt.Sprint(r))
	}

	rootError := err

	for {
		switch typedError := err.(type) {
		case Error,
			errors.InternalError,
			errors.UserError:
			return typedError
		case xerrors.Wrapper:
			err = typedError.Unwrap()
		default:
			return errors.NewUnexpectedErrorFromCause(rootError)
		}
	}
}

// invokeFunction calls the function with the given arguments.
//
// The body is executed in a clone of the caller's environment,
// in which the parameters are bound to the arguments.
// Missing arguments are kosong, extra arguments are ignored.
//
// Only a `kembali` statement directly in the body returns from the function.
// Without one, the result is kosong
func (interpreter *Interpreter) invokeFunction(
	function *FunctionValue,
	arguments []Value,
	invocationRange LocationRange,
) Value {

	config := interpreter.Config

	limit := config.callStackDepthLimit()
	if len(interpreter.callStack) >= limit {
		panic(CallStackLimitExceededError{
			Limit: limit,
			Range: invocationRange.Range,
		})
	}

	onFunctionInvocation := config.OnFunctionInvocation
	if onFunctionInvocation != nil {
		onFunctionInvocation(interpreter)
	}

	if interpreter.tracingEnabled() {
		startTime := time.Now()

		defer func() {
			interpreter.reportFunctionTrace(
				function.Name(),
				len(arguments),
				time.Since(startTime),
			)
		}()
	}

	callerEnvironment := interpreter.environment
	callerStatement := interpreter.statement

	environment := callerEnvironment.Clone()
	for i, parameter := range function.Declaration.Parameters {
		var argument Value = Null
		if i < len(arguments) {
			argument = arguments[i]
		}
		environment.Set(parameter.Identifier, argument)
	}

	interpreter.environment = environment
	interpreter.callStack = append(
		interpreter.callStack,
		Invocation{
			Function:      function,
			LocationRange: invocationRange,
		},
	)

	defer func() {
		var err error
		if r := recover(); r != nil {
			err = interpreter.recoveredError(r)
		}

		interpreter.environment = callerEnvironment
		interpreter.statement = callerStatement
		interpreter.callStack = interpreter.callStack[:len(interpreter.callStack)-1]

		onInvokedFunctionReturn := config.OnInvokedFunctionReturn
		if onInvokedFunctionReturn != nil {
			onInvokedFunctionReturn(interpreter)
		}

		if err != nil {
			panic(err)
		}
	}()

	for _, statement := range function.Declaration.Body.Statements {
		result := interpreter.evalStatement(statement)
		if result, ok := result.(ReturnResult); ok {
			return result.Value
		}
	}

	return Null
}
