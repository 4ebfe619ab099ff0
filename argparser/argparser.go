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

// Package argparser converts command-line arguments into values
// which are bound to `argumen` when running a program.
package argparser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rainerregan/IndoScript/ast"
	"github.com/rainerregan/IndoScript/errors"
	"github.com/rainerregan/IndoScript/interpreter"
	"github.com/rainerregan/IndoScript/parser"
)

// InvalidArgumentError is reported for an argument which looks like
// a literal but is not a number, string, boolean, or array of those.
type InvalidArgumentError struct {
	Argument string
}

var _ errors.UserError = InvalidArgumentError{}

func (InvalidArgumentError) IsUserError() {}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("argparser: invalid argument: %s", e.Argument)
}

// ParseArguments parses each argument with ParseArgument.
func ParseArguments(args []string) ([]interpreter.Value, error) {
	values := make([]interpreter.Value, len(args))

	for i, arg := range args {
		value, err := ParseArgument(arg)
		if err != nil {
			return nil, err
		}

		values[i] = value
	}

	return values, nil
}

// ParseArgument parses a literal, e.g. `1`, `2.5`, `"a"`, `benar`, or `[1, 2]`.
// An argument which does not parse, e.g. a bare word, is taken as a string.
func ParseArgument(s string) (interpreter.Value, error) {
	trimmed := strings.TrimSpace(s)

	// source code has no decimal literals, but arguments may
	if isDecimal(trimmed) {
		number, err := strconv.ParseFloat(trimmed, 64)
		if err == nil {
			return interpreter.NumberValue(number), nil
		}
	}

	if negated, ok := strings.CutPrefix(trimmed, "-"); ok {
		value, err := ParseArgument(negated)
		if number, isNumber := value.(interpreter.NumberValue); err == nil && isNumber {
			return -number, nil
		}
		return interpreter.StringValue(s), nil
	}

	expression, err := parser.ParseExpression([]byte(trimmed), parser.Config{})
	if err != nil {
		return interpreter.StringValue(s), nil
	}

	if identifier, ok := expression.(*ast.IdentifierExpression); ok {
		return interpreter.StringValue(identifier.Identifier.Identifier), nil
	}

	value, ok := literalValue(expression)
	if !ok {
		return nil, InvalidArgumentError{Argument: s}
	}
	return value, nil
}

func literalValue(expression ast.Expression) (interpreter.Value, bool) {
	switch expression := expression.(type) {
	case *ast.NumberExpression:
		return interpreter.NumberValue(expression.Value), true

	case *ast.StringExpression:
		return interpreter.StringValue(expression.Value), true

	case *ast.BoolExpression:
		return interpreter.BoolValue(expression.Value), true

	case *ast.ArrayExpression:
		elements := make([]interpreter.Value, 0, len(expression.Elements))
		for _, element := range expression.Elements {
			if element.Spread {
				return nil, false
			}
			value, ok := literalValue(element.Expression)
			if !ok {
				return nil, false
			}
			elements = append(elements, value)
		}
		return interpreter.NewArrayValue(elements...), true

	default:
		return nil, false
	}
}

// isDecimal reports whether s has the form `digits.digits`
func isDecimal(s string) bool {
	integer, fraction, found := strings.Cut(s, ".")
	return found &&
		isDigits(integer) &&
		isDigits(fraction)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
