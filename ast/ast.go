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

// Package ast contains all AST nodes for IndoScript.
// All AST nodes implement the Element interface,
// so have position information
// and can be traversed using the visitor interfaces.
// Elements also implement the json.Marshaler interface
// so can be serialized to a stable JSON format.
package ast

import (
	"strings"

	"github.com/turbolent/prettier"
)

type Element interface {
	HasPosition
	ElementType() ElementType
	Walk(walkChild func(Element))
}

type Statement interface {
	Element
	isStatement()
	Doc() prettier.Doc
}

type Expression interface {
	Element
	isExpression()
	Doc() prettier.Doc
	String() string
}

const prettierMaxLineWidth = 80

const prettierIndent = "    "

// Prettier renders the element's document as source code.
func Prettier(element interface{ Doc() prettier.Doc }) string {
	var builder strings.Builder
	prettier.Prettier(&builder, element.Doc(), prettierMaxLineWidth, prettierIndent)
	return builder.String()
}

func walkExpressions(walkChild func(Element), expressions []Expression) {
	for _, expression := range expressions {
		if expression != nil {
			walkChild(expression)
		}
	}
}

func walkStatements(walkChild func(Element), statements []Statement) {
	for _, statement := range statements {
		if statement != nil {
			walkChild(statement)
		}
	}
}

// Inspect traverses the element and its children in depth-first order.
// Children of an element are only visited if f returns true for it.
func Inspect(element Element, f func(Element) bool) {
	if element == nil || !f(element) {
		return
	}
	element.Walk(func(child Element) {
		Inspect(child, f)
	})
}
