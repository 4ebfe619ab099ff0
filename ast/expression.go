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
	"encoding/json"
	"strconv"

	"github.com/turbolent/prettier"
)

// NumberExpression

type NumberExpression struct {
	// Literal is the source text of the number, if any
	Literal string
	Value   float64
	Range
}

var _ Element = &NumberExpression{}
var _ Expression = &NumberExpression{}

func NewNumberExpression(literal string, value float64, r Range) *NumberExpression {
	return &NumberExpression{
		Literal: literal,
		Value:   value,
		Range:   r,
	}
}

func (*NumberExpression) ElementType() ElementType {
	return ElementTypeNumberExpression
}

func (*NumberExpression) isExpression() {}

func (*NumberExpression) Walk(_ func(Element)) {
	// no children
}

func (e *NumberExpression) String() string {
	return Prettier(e)
}

func (e *NumberExpression) Doc() prettier.Doc {
	literal := e.Literal
	if literal == "" {
		literal = strconv.FormatFloat(e.Value, 'f', -1, 64)
	}
	return prettier.Text(literal)
}

func (e *NumberExpression) MarshalJSON() ([]byte, error) {
	type Alias NumberExpression
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "NumberExpression",
		Alias: (*Alias)(e),
	})
}

// StringExpression

type StringExpression struct {
	Value string
	Range
}

var _ Element = &StringExpression{}
var _ Expression = &StringExpression{}

func NewStringExpression(value string, r Range) *StringExpression {
	return &StringExpression{
		Value: value,
		Range: r,
	}
}

func (*StringExpression) ElementType() ElementType {
	return ElementTypeStringExpression
}

func (*StringExpression) isExpression() {}

func (*StringExpression) Walk(_ func(Element)) {
	// no children
}

func (e *StringExpression) String() string {
	return Prettier(e)
}

// QuoteString returns the string literal for the given value.
// String literals have no escape sequences.
func QuoteString(s string) string {
	return `"` + s + `"`
}

func (e *StringExpression) Doc() prettier.Doc {
	return prettier.Text(QuoteString(e.Value))
}

func (e *StringExpression) MarshalJSON() ([]byte, error) {
	type Alias StringExpression
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "StringExpression",
		Alias: (*Alias)(e),
	})
}

// BoolExpression

type BoolExpression struct {
	Value bool
	Range
}

var _ Element = &BoolExpression{}
var _ Expression = &BoolExpression{}

func NewBoolExpression(value bool, r Range) *BoolExpression {
	return &BoolExpression{
		Value: value,
		Range: r,
	}
}

func (*BoolExpression) ElementType() ElementType {
	return ElementTypeBoolExpression
}

func (*BoolExpression) isExpression() {}

func (*BoolExpression) Walk(_ func(Element)) {
	// no children
}

func (e *BoolExpression) String() string {
	return Prettier(e)
}

var boolExpressionTrueDoc prettier.Doc = prettier.Text("benar")
var boolExpressionFalseDoc prettier.Doc = prettier.Text("salah")

func (e *BoolExpression) Doc() prettier.Doc {
	if e.Value {
		return boolExpressionTrueDoc
	} else {
		return boolExpressionFalseDoc
	}
}

func (e *BoolExpression) MarshalJSON() ([]byte, error) {
	type Alias BoolExpression
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "BoolExpression",
		Alias: (*Alias)(e),
	})
}

// ArrayElement is an element of an array literal.
// A spread element splices the elements of another array.
type ArrayElement struct {
	Expression Expression
	Spread     bool
	// StartPos is the position of the spread operator, if any
	StartPos Position `json:"-"`
}

func (e *ArrayElement) StartPosition() Position {
	if e.Spread {
		return e.StartPos
	}
	return e.Expression.StartPosition()
}

func (e *ArrayElement) EndPosition() Position {
	return e.Expression.EndPosition()
}

var arrayElementSpreadDoc prettier.Doc = prettier.Text("...")

func (e *ArrayElement) Doc() prettier.Doc {
	doc := parenthesizedIfBinary(e.Expression)
	if e.Spread {
		return prettier.Concat{
			arrayElementSpreadDoc,
			doc,
		}
	}
	return doc
}

// ArrayExpression

type ArrayExpression struct {
	Elements []*ArrayElement
	Range
}

var _ Element = &ArrayExpression{}
var _ Expression = &ArrayExpression{}

func NewArrayExpression(elements []*ArrayElement, r Range) *ArrayExpression {
	return &ArrayExpression{
		Elements: elements,
		Range:    r,
	}
}

func (*ArrayExpression) ElementType() ElementType {
	return ElementTypeArrayExpression
}

func (*ArrayExpression) isExpression() {}

func (e *ArrayExpression) Walk(walkChild func(Element)) {
	for _, element := range e.Elements {
		if element != nil && element.Expression != nil {
			walkChild(element.Expression)
		}
	}
}

func (e *ArrayExpression) String() string {
	return Prettier(e)
}

var arrayExpressionSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

func (e *ArrayExpression) Doc() prettier.Doc {
	if len(e.Elements) == 0 {
		return prettier.Text("[]")
	}

	elementDocs := make([]prettier.Doc, len(e.Elements))
	for i, element := range e.Elements {
		elementDocs[i] = element.Doc()
	}
	return prettier.WrapBrackets(
		prettier.Join(arrayExpressionSeparatorDoc, elementDocs...),
		prettier.SoftLine{},
	)
}

func (e *ArrayExpression) MarshalJSON() ([]byte, error) {
	type Alias ArrayExpression
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "ArrayExpression",
		Alias: (*Alias)(e),
	})
}

// IdentifierExpression

type IdentifierExpression struct {
	Identifier Identifier
}

var _ Element = &IdentifierExpression{}
var _ Expression = &IdentifierExpression{}

func NewIdentifierExpression(identifier Identifier) *IdentifierExpression {
	return &IdentifierExpression{
		Identifier: identifier,
	}
}

func (*IdentifierExpression) ElementType() ElementType {
	return ElementTypeIdentifierExpression
}

func (*IdentifierExpression) isExpression() {}

func (*IdentifierExpression) Walk(_ func(Element)) {
	// no children
}

func (e *IdentifierExpression) String() string {
	return e.Identifier.Identifier
}

func (e *IdentifierExpression) Doc() prettier.Doc {
	return prettier.Text(e.Identifier.Identifier)
}

func (e *IdentifierExpression) StartPosition() Position {
	return e.Identifier.StartPosition()
}

func (e *IdentifierExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

func (e *IdentifierExpression) MarshalJSON() ([]byte, error) {
	type Alias IdentifierExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "IdentifierExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// IndexExpression

type IndexExpression struct {
	TargetExpression   Expression
	IndexingExpression Expression
	Range
}

var _ Element = &IndexExpression{}
var _ Expression = &IndexExpression{}

func NewIndexExpression(
	targetExpression Expression,
	indexingExpression Expression,
	r Range,
) *IndexExpression {
	return &IndexExpression{
		TargetExpression:   targetExpression,
		IndexingExpression: indexingExpression,
		Range:              r,
	}
}

func (*IndexExpression) ElementType() ElementType {
	return ElementTypeIndexExpression
}

func (*IndexExpression) isExpression() {}

func (e *IndexExpression) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, []Expression{e.TargetExpression, e.IndexingExpression})
}

func (e *IndexExpression) String() string {
	return Prettier(e)
}

func (e *IndexExpression) Doc() prettier.Doc {
	return prettier.Concat{
		parenthesizedIfBinary(e.TargetExpression),
		prettier.WrapBrackets(
			prettier.Indent{
				Doc: e.IndexingExpression.Doc(),
			},
			prettier.SoftLine{},
		),
	}
}

func (e *IndexExpression) MarshalJSON() ([]byte, error) {
	type Alias IndexExpression
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "IndexExpression",
		Alias: (*Alias)(e),
	})
}

// MemberExpression is a property access, e.g. `nilai.panjang`

type MemberExpression struct {
	Expression Expression
	Identifier Identifier
}

var _ Element = &MemberExpression{}
var _ Expression = &MemberExpression{}

func NewMemberExpression(expression Expression, identifier Identifier) *MemberExpression {
	return &MemberExpression{
		Expression: expression,
		Identifier: identifier,
	}
}

func (*MemberExpression) ElementType() ElementType {
	return ElementTypeMemberExpression
}

func (*MemberExpression) isExpression() {}

func (e *MemberExpression) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, []Expression{e.Expression})
}

func (e *MemberExpression) String() string {
	return Prettier(e)
}

var memberExpressionSeparatorDoc prettier.Doc = prettier.Text(".")

func (e *MemberExpression) Doc() prettier.Doc {
	return prettier.Concat{
		parenthesizedIfBinary(e.Expression),
		memberExpressionSeparatorDoc,
		prettier.Text(e.Identifier.Identifier),
	}
}

func (e *MemberExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *MemberExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

func (e *MemberExpression) MarshalJSON() ([]byte, error) {
	type Alias MemberExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "MemberExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// MethodCallExpression is a method invocation, e.g. `nilai.tambah(1)`

type MethodCallExpression struct {
	Expression Expression
	Identifier Identifier
	Arguments  []Expression
	EndPos     Position `json:"-"`
}

var _ Element = &MethodCallExpression{}
var _ Expression = &MethodCallExpression{}

func NewMethodCallExpression(
	expression Expression,
	identifier Identifier,
	arguments []Expression,
	endPos Position,
) *MethodCallExpression {
	return &MethodCallExpression{
		Expression: expression,
		Identifier: identifier,
		Arguments:  arguments,
		EndPos:     endPos,
	}
}

func (*MethodCallExpression) ElementType() ElementType {
	return ElementTypeMethodCallExpression
}

func (*MethodCallExpression) isExpression() {}

func (e *MethodCallExpression) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, []Expression{e.Expression})
	walkExpressions(walkChild, e.Arguments)
}

func (e *MethodCallExpression) String() string {
	return Prettier(e)
}

func (e *MethodCallExpression) Doc() prettier.Doc {
	return prettier.Concat{
		parenthesizedIfBinary(e.Expression),
		memberExpressionSeparatorDoc,
		prettier.Text(e.Identifier.Identifier),
		argumentsDoc(e.Arguments),
	}
}

func (e *MethodCallExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *MethodCallExpression) EndPosition() Position {
	return e.EndPos
}

func (e *MethodCallExpression) MarshalJSON() ([]byte, error) {
	type Alias MethodCallExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "MethodCallExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// BinaryExpression

type BinaryExpression struct {
	Operation Operation
	Left      Expression
	Right     Expression
}

var _ Element = &BinaryExpression{}
var _ Expression = &BinaryExpression{}

func NewBinaryExpression(
	operation Operation,
	left Expression,
	right Expression,
) *BinaryExpression {
	return &BinaryExpression{
		Operation: operation,
		Left:      left,
		Right:     right,
	}
}

func (*BinaryExpression) ElementType() ElementType {
	return ElementTypeBinaryExpression
}

func (*BinaryExpression) isExpression() {}

func (e *BinaryExpression) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, []Expression{e.Left, e.Right})
}

func (e *BinaryExpression) String() string {
	return Prettier(e)
}

// Doc renders the expression. Operators have no precedence and
// are applied left to right, so only a binary right operand
// needs to be parenthesized.
func (e *BinaryExpression) Doc() prettier.Doc {
	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Group{
				Doc: e.Left.Doc(),
			},
			prettier.Line{},
			prettier.Text(e.Operation.Symbol()),
			prettier.Space,
			prettier.Group{
				Doc: parenthesizedIfBinary(e.Right),
			},
		},
	}
}

func (e *BinaryExpression) StartPosition() Position {
	return e.Left.StartPosition()
}

func (e *BinaryExpression) EndPosition() Position {
	return e.Right.EndPosition()
}

func (e *BinaryExpression) MarshalJSON() ([]byte, error) {
	type Alias BinaryExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "BinaryExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// InvocationExpression is a function call, e.g. `tambah(1, 2)`

type InvocationExpression struct {
	InvokedExpression Expression
	Arguments         []Expression
	EndPos            Position `json:"-"`
}

var _ Element = &InvocationExpression{}
var _ Expression = &InvocationExpression{}

func NewInvocationExpression(
	invokedExpression Expression,
	arguments []Expression,
	endPos Position,
) *InvocationExpression {
	return &InvocationExpression{
		InvokedExpression: invokedExpression,
		Arguments:         arguments,
		EndPos:            endPos,
	}
}

func (*InvocationExpression) ElementType() ElementType {
	return ElementTypeInvocationExpression
}

func (*InvocationExpression) isExpression() {}

func (e *InvocationExpression) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, []Expression{e.InvokedExpression})
	walkExpressions(walkChild, e.Arguments)
}

func (e *InvocationExpression) String() string {
	return Prettier(e)
}

func (e *InvocationExpression) Doc() prettier.Doc {
	return prettier.Concat{
		parenthesizedIfBinary(e.InvokedExpression),
		argumentsDoc(e.Arguments),
	}
}

func (e *InvocationExpression) StartPosition() Position {
	return e.InvokedExpression.StartPosition()
}

func (e *InvocationExpression) EndPosition() Position {
	return e.EndPos
}

func (e *InvocationExpression) MarshalJSON() ([]byte, error) {
	type Alias InvocationExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "InvocationExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func argumentsDoc(arguments []Expression) prettier.Doc {
	if len(arguments) == 0 {
		return prettier.Text("()")
	}

	argumentDocs := make([]prettier.Doc, len(arguments))
	for i, argument := range arguments {
		argumentDocs[i] = parenthesizedIfBinary(argument)
	}

	return prettier.WrapParentheses(
		prettier.Join(arrayExpressionSeparatorDoc, argumentDocs...),
		prettier.SoftLine{},
	)
}

func parenthesizedIfBinary(expression Expression) prettier.Doc {
	doc := expression.Doc()
	if _, ok := expression.(*BinaryExpression); ok {
		return prettier.WrapParentheses(doc, prettier.SoftLine{})
	}
	return doc
}
