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
	"math"
	"strconv"
	"strings"

	"github.com/rainerregan/IndoScript/errors"
)

// Value is the IndoScript value hierarchy.
//
// The set of values is closed: NumberValue, StringValue, BoolValue,
// NullValue, *ArrayValue, and *FunctionValue.
// Values are never mutated once they are constructed.
type Value interface {
	isValue()
	// TypeName returns the name of the kind of value, used in error messages
	TypeName() string
	// String returns the textual form of the value, as printed by `tampilkan`
	String() string
}

// NumberValue

type NumberValue float64

var _ Value = NumberValue(0)

func (NumberValue) isValue() {}

func (NumberValue) TypeName() string {
	return "number"
}

func (v NumberValue) String() string {
	return FormatNumber(float64(v))
}

// IsInteger reports whether the number has no fractional part
func (v NumberValue) IsInteger() bool {
	f := float64(v)
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// FormatNumber returns the textual form of a number:
// integers without a fraction, other finite numbers in the shortest form
// which reads back to the same number, very large and very small magnitudes
// in exponent form, and `Infinity`, `-Infinity`, and `NaN`
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// also negative zero
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return formatExponent(f)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatExponent formats the number as e.g. `1e+21` or `1.5e-7`,
// without padding the exponent
func formatExponent(f float64) string {
	formatted := strconv.FormatFloat(f, 'e', -1, 64)

	mantissa, exponent, _ := strings.Cut(formatted, "e")
	sign := exponent[:1]
	digits := strings.TrimLeft(exponent[1:], "0")
	if digits == "" {
		digits = "0"
	}

	return mantissa + "e" + sign + digits
}

// StringValue

type StringValue string

var _ Value = StringValue("")

func (StringValue) isValue() {}

func (StringValue) TypeName() string {
	return "string"
}

func (v StringValue) String() string {
	return string(v)
}

// BoolValue

type BoolValue bool

var _ Value = BoolValue(false)

const TrueValue = BoolValue(true)
const FalseValue = BoolValue(false)

func (BoolValue) isValue() {}

func (BoolValue) TypeName() string {
	return "boolean"
}

func (v BoolValue) String() string {
	if v {
		return "benar"
	}
	return "salah"
}

// NullValue is the absence of a value, `kosong`

type NullValue struct{}

var _ Value = NullValue{}

// Null is the only null value
var Null = NullValue{}

func (NullValue) isValue() {}

func (NullValue) TypeName() string {
	return "null"
}

func (NullValue) String() string {
	return "kosong"
}

// Truthy reports whether the value counts as true in a condition.
// `salah`, `0`, `NaN`, the empty string, and `kosong` are false,
// all other values are true
func Truthy(value Value) bool {
	switch value := value.(type) {
	case BoolValue:
		return bool(value)
	case NumberValue:
		f := float64(value)
		return f != 0 && !math.IsNaN(f)
	case StringValue:
		return value != ""
	case NullValue:
		return false
	case *ArrayValue, *FunctionValue:
		return true
	case nil:
		return false
	}

	panic(errors.NewUnreachableError())
}

// Equal reports whether the two values are strictly equal.
// Values of different kinds are never equal.
// Arrays are equal if their elements are equal,
// functions are equal if they were created from the same declaration
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case NumberValue:
		b, ok := b.(NumberValue)
		return ok && a == b

	case StringValue:
		b, ok := b.(StringValue)
		return ok && a == b

	case BoolValue:
		b, ok := b.(BoolValue)
		return ok && a == b

	case NullValue:
		_, ok := b.(NullValue)
		return ok

	case *ArrayValue:
		b, ok := b.(*ArrayValue)
		if !ok || len(a.Elements) != len(b.Elements) {
			return false
		}
		for i, element := range a.Elements {
			if !Equal(element, b.Elements[i]) {
				return false
			}
		}
		return true

	case *FunctionValue:
		b, ok := b.(*FunctionValue)
		return ok && a.Declaration == b.Declaration
	}

	return false
}
