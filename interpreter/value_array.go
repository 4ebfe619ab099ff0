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
	"strings"

	"github.com/rainerregan/IndoScript/ast"
)

// ArrayValue

type ArrayValue struct {
	Elements []Value
}

var _ Value = &ArrayValue{}

func NewArrayValue(elements ...Value) *ArrayValue {
	return &ArrayValue{
		Elements: elements,
	}
}

func (*ArrayValue) isValue() {}

func (*ArrayValue) TypeName() string {
	return "array"
}

// String returns the elements in brackets.
// Nested strings are quoted, e.g. `[1, "a", [benar]]`
func (v *ArrayValue) String() string {
	var builder strings.Builder
	builder.WriteByte('[')
	for i, element := range v.Elements {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(AcceptValue[string](element, elementFormatter{}))
	}
	builder.WriteByte(']')
	return builder.String()
}

func (v *ArrayValue) Count() int {
	return len(v.Elements)
}

// Get returns the element at the given index.
// The result is kosong if the index is not a number,
// not an integer, or out of bounds
func (v *ArrayValue) Get(index Value) Value {
	number, ok := index.(NumberValue)
	if !ok || !number.IsInteger() {
		return Null
	}

	f := float64(number)
	if f < 0 || f >= float64(len(v.Elements)) {
		return Null
	}

	return v.Elements[int(f)]
}

// Append returns a new array with the given values added to the end.
// The receiver is left unchanged
func (v *ArrayValue) Append(values ...Value) *ArrayValue {
	elements := make([]Value, 0, len(v.Elements)+len(values))
	elements = append(elements, v.Elements...)
	elements = append(elements, values...)
	return NewArrayValue(elements...)
}

// Walk calls the function for each element, in order
func (v *ArrayValue) Walk(walkChild func(index int, element Value)) {
	for i, element := range v.Elements {
		walkChild(i, element)
	}
}

// elementFormatter formats an element of an array
type elementFormatter struct{}

var _ ValueVisitor[string] = elementFormatter{}

func (elementFormatter) VisitNumberValue(value NumberValue) string {
	return value.String()
}

func (elementFormatter) VisitStringValue(value StringValue) string {
	return ast.QuoteString(string(value))
}

func (elementFormatter) VisitBoolValue(value BoolValue) string {
	return value.String()
}

func (elementFormatter) VisitNullValue(value NullValue) string {
	return value.String()
}

func (elementFormatter) VisitArrayValue(value *ArrayValue) string {
	return value.String()
}

func (elementFormatter) VisitFunctionValue(value *FunctionValue) string {
	return value.String()
}
