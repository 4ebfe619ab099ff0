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
	"github.com/rainerregan/IndoScript/errors"
)

type ValueVisitor[T any] interface {
	VisitNumberValue(value NumberValue) T
	VisitStringValue(value StringValue) T
	VisitBoolValue(value BoolValue) T
	VisitNullValue(value NullValue) T
	VisitArrayValue(value *ArrayValue) T
	VisitFunctionValue(value *FunctionValue) T
}

func AcceptValue[T any](value Value, visitor ValueVisitor[T]) (_ T) {

	switch value := value.(type) {
	case NumberValue:
		return visitor.VisitNumberValue(value)

	case StringValue:
		return visitor.VisitStringValue(value)

	case BoolValue:
		return visitor.VisitBoolValue(value)

	case NullValue:
		return visitor.VisitNullValue(value)

	case *ArrayValue:
		return visitor.VisitArrayValue(value)

	case *FunctionValue:
		return visitor.VisitFunctionValue(value)
	}

	panic(errors.NewUnreachableError())
}

// EmptyVisitor is a ValueVisitor which calls the given function
// for each kind of value, if any.
// Values without a function result in the zero value
type EmptyVisitor[T any] struct {
	NumberValueVisitor   func(value NumberValue) T
	StringValueVisitor   func(value StringValue) T
	BoolValueVisitor     func(value BoolValue) T
	NullValueVisitor     func(value NullValue) T
	ArrayValueVisitor    func(value *ArrayValue) T
	FunctionValueVisitor func(value *FunctionValue) T
}

var _ ValueVisitor[struct{}] = EmptyVisitor[struct{}]{}

func (v EmptyVisitor[T]) VisitNumberValue(value NumberValue) (_ T) {
	if v.NumberValueVisitor == nil {
		return
	}
	return v.NumberValueVisitor(value)
}

func (v EmptyVisitor[T]) VisitStringValue(value StringValue) (_ T) {
	if v.StringValueVisitor == nil {
		return
	}
	return v.StringValueVisitor(value)
}

func (v EmptyVisitor[T]) VisitBoolValue(value BoolValue) (_ T) {
	if v.BoolValueVisitor == nil {
		return
	}
	return v.BoolValueVisitor(value)
}

func (v EmptyVisitor[T]) VisitNullValue(value NullValue) (_ T) {
	if v.NullValueVisitor == nil {
		return
	}
	return v.NullValueVisitor(value)
}

func (v EmptyVisitor[T]) VisitArrayValue(value *ArrayValue) (_ T) {
	if v.ArrayValueVisitor == nil {
		return
	}
	return v.ArrayValueVisitor(value)
}

func (v EmptyVisitor[T]) VisitFunctionValue(value *FunctionValue) (_ T) {
	if v.FunctionValueVisitor == nil {
		return
	}
	return v.FunctionValueVisitor(value)
}
