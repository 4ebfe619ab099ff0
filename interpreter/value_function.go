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

// FunctionValue is a function declared with `fungsi`.
//
// Functions do not capture their defining environment:
// the body is evaluated in a copy of the caller's environment
type FunctionValue struct {
	Declaration *ast.FunctionDeclaration
}

var _ Value = &FunctionValue{}

func NewFunctionValue(declaration *ast.FunctionDeclaration) *FunctionValue {
	return &FunctionValue{
		Declaration: declaration,
	}
}

func (*FunctionValue) isValue() {}

func (*FunctionValue) TypeName() string {
	return "function"
}

func (f *FunctionValue) Name() string {
	return f.Declaration.Identifier.Identifier
}

func (f *FunctionValue) ParameterNames() []string {
	names := make([]string, len(f.Declaration.Parameters))
	for i, parameter := range f.Declaration.Parameters {
		names[i] = parameter.Identifier
	}
	return names
}

// String returns the signature of the function, e.g. `fungsi tambah(a, b)`
func (f *FunctionValue) String() string {
	var builder strings.Builder
	builder.WriteString("fungsi ")
	builder.WriteString(f.Name())
	builder.WriteByte('(')
	builder.WriteString(strings.Join(f.ParameterNames(), ", "))
	builder.WriteByte(')')
	return builder.String()
}
