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
	"sort"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/rainerregan/IndoScript/ast"
	"github.com/rainerregan/IndoScript/common"
	"github.com/rainerregan/IndoScript/errors"
)

// LocationRange is a range in the code of a location

type LocationRange struct {
	Location common.Location
	ast.Range
}

var EmptyLocationRange = LocationRange{}

// Error is the containing type for all errors produced by the interpreter.
type Error struct {
	Err        error
	Location   common.Location
	StackTrace []Invocation
}

var _ errors.ParentError = Error{}
var _ common.HasLocation = Error{}

func (e Error) Unwrap() error {
	return e.Err
}

func (e Error) Error() string {
	return e.Err.Error()
}

func (e Error) ChildErrors() []error {
	errs := make([]error, 0, 1+len(e.StackTrace))

	for _, invocation := range e.StackTrace {
		if invocation.LocationRange.Location == nil {
			continue
		}

		errs = append(
			errs,
			StackTraceError{
				FunctionName:  invocation.Function.Name(),
				LocationRange: invocation.LocationRange,
			},
		)
	}

	return append(errs, e.Err)
}

func (e Error) ImportLocation() common.Location {
	return e.Location
}

// StackTraceError is a call site on the call stack of an error

type StackTraceError struct {
	FunctionName string
	LocationRange
}

var _ common.HasLocation = StackTraceError{}

func (e StackTraceError) Error() string {
	return fmt.Sprintf("in call of function `%s`", e.FunctionName)
}

func (e StackTraceError) Prefix() string {
	return "note"
}

func (e StackTraceError) ImportLocation() common.Location {
	return e.Location
}

// PositionedError wraps an unpositioned error with position info

type PositionedError struct {
	Err error
	ast.Range
}

func (e PositionedError) Unwrap() error {
	return e.Err
}

func (e PositionedError) Error() string {
	return e.Err.Error()
}

// closestName returns the candidate with the smallest edit distance to the name.
// Candidates which would have to be replaced completely are not suggested
func closestName(name string, candidates []string) (closest string) {
	nameRunes := []rune(name)

	closestDistance := len(name)

	sorted := make([]string, len(candidates))
	copy(sorted, candidates)
	sort.Strings(sorted)

	for _, candidate := range sorted {
		if candidate == name {
			continue
		}

		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)

		if distance < closestDistance && distance < len(candidate) {
			closest = candidate
			closestDistance = distance
		}
	}

	return
}

func suggestion(closest string, fallback string) string {
	if closest == "" {
		return fallback
	}
	return fmt.Sprintf("did you mean `%s`?", closest)
}

// UndefinedVariableError is reported when a name is not bound

type UndefinedVariableError struct {
	Name string
	// Candidates are the names bound at the time of the error
	Candidates []string
	ast.Range
}

var _ errors.UserError = UndefinedVariableError{}
var _ errors.SecondaryError = UndefinedVariableError{}

func (UndefinedVariableError) IsUserError() {}

func (e UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable: `%s`", e.Name)
}

func (e UndefinedVariableError) SecondaryError() string {
	return suggestion(
		closestName(e.Name, e.Candidates),
		"not found in this scope",
	)
}

// NotCallableError is reported when a value which is not a function is called

type NotCallableError struct {
	Value Value
	ast.Range
}

var _ errors.UserError = NotCallableError{}

func (NotCallableError) IsUserError() {}

func (e NotCallableError) Error() string {
	return fmt.Sprintf(
		"cannot call value of type %s: %s",
		e.Value.TypeName(),
		e.Value,
	)
}

// CallStackLimitExceededError is reported when function invocations
// are nested deeper than the configured limit

type CallStackLimitExceededError struct {
	Limit int
	ast.Range
}

var _ errors.UserError = CallStackLimitExceededError{}
var _ errors.SecondaryError = CallStackLimitExceededError{}

func (CallStackLimitExceededError) IsUserError() {}

func (e CallStackLimitExceededError) Error() string {
	return fmt.Sprintf(
		"call stack depth limit exceeded, calls are limited to %d levels",
		e.Limit,
	)
}

func (CallStackLimitExceededError) SecondaryError() string {
	return "only a `kembali` directly in the function body returns from the function"
}

// NotAnArrayError is reported when an array operation is applied to another value

type NotAnArrayError struct {
	Value Value
	ast.Range
}

var _ errors.UserError = NotAnArrayError{}

func (NotAnArrayError) IsUserError() {}

func (e NotAnArrayError) Error() string {
	return fmt.Sprintf(
		"expected array, got %s",
		e.Value.TypeName(),
	)
}

// InvalidOperandsError is reported when an operator
// is applied to values it is not defined for

type InvalidOperandsError struct {
	Operation ast.Operation
	Left      Value
	Right     Value
	ast.Range
}

var _ errors.UserError = InvalidOperandsError{}

func (InvalidOperandsError) IsUserError() {}

func (e InvalidOperandsError) Error() string {
	return fmt.Sprintf(
		"cannot apply operator `%s` to %s and %s",
		e.Operation.Symbol(),
		e.Left.TypeName(),
		e.Right.TypeName(),
	)
}

var arrayProperties = []string{
	ArrayPropertyLength,
	ArrayPropertyLengthAlias,
}

var arrayMethods = []string{
	ArrayMethodAppend,
	ArrayMethodAppendAlias,
	ArrayMethodForEach,
	ArrayMethodForEachAlias,
}

// UnknownPropertyError is reported for an access of an unsupported property

type UnknownPropertyError struct {
	Name string
	ast.Range
}

var _ errors.UserError = UnknownPropertyError{}
var _ errors.SecondaryError = UnknownPropertyError{}

func (UnknownPropertyError) IsUserError() {}

func (e UnknownPropertyError) Error() string {
	return fmt.Sprintf("unknown property: `%s`", e.Name)
}

func (e UnknownPropertyError) SecondaryError() string {
	return suggestion(
		closestName(e.Name, arrayProperties),
		"arrays only have the property `panjang`",
	)
}

// UnknownMethodError is reported for a call of an unsupported method

type UnknownMethodError struct {
	Name string
	ast.Range
}

var _ errors.UserError = UnknownMethodError{}
var _ errors.SecondaryError = UnknownMethodError{}

func (UnknownMethodError) IsUserError() {}

func (e UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown method: `%s`", e.Name)
}

func (e UnknownMethodError) SecondaryError() string {
	return suggestion(
		closestName(e.Name, arrayMethods),
		"arrays only have the methods `tambah` and `setiap`",
	)
}

// UnknownOperatorError is reported for a binary expression
// with an operation the interpreter does not implement.
// The parser never produces such an expression

type UnknownOperatorError struct {
	Operation ast.Operation
	ast.Range
}

var _ errors.InternalError = UnknownOperatorError{}

func (UnknownOperatorError) IsInternalError() {}

func (e UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator: %d", e.Operation)
}

// UnknownNodeTypeError is reported for a missing statement or expression.
// The parser never produces such a program

type UnknownNodeTypeError struct {
	Element ast.Element
}

var _ errors.InternalError = UnknownNodeTypeError{}

func (UnknownNodeTypeError) IsInternalError() {}

func (e UnknownNodeTypeError) Error() string {
	if e.Element == nil {
		return "unknown node type: <nil>"
	}
	return fmt.Sprintf("unknown node type: %s", e.Element.ElementType())
}
