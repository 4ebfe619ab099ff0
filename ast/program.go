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

	"github.com/turbolent/prettier"
)

// Program is the root of a parsed source file or REPL input.
type Program struct {
	Statements []Statement
}

var _ Element = &Program{}

func NewProgram(statements []Statement) *Program {
	return &Program{
		Statements: statements,
	}
}

func (*Program) ElementType() ElementType {
	return ElementTypeProgram
}

func (p *Program) Walk(walkChild func(Element)) {
	walkStatements(walkChild, p.Statements)
}

func (p *Program) StartPosition() Position {
	if len(p.Statements) == 0 {
		return EmptyPosition
	}
	return p.Statements[0].StartPosition()
}

func (p *Program) EndPosition() Position {
	count := len(p.Statements)
	if count == 0 {
		return EmptyPosition
	}
	return p.Statements[count-1].EndPosition()
}

// FunctionDeclarations returns the top-level function declarations.
func (p *Program) FunctionDeclarations() []*FunctionDeclaration {
	var declarations []*FunctionDeclaration
	for _, statement := range p.Statements {
		if declaration, ok := statement.(*FunctionDeclaration); ok {
			declarations = append(declarations, declaration)
		}
	}
	return declarations
}

func (p *Program) String() string {
	return Prettier(p)
}

func (p *Program) Doc() prettier.Doc {
	return statementsDoc(p.Statements)
}

func (p *Program) MarshalJSON() ([]byte, error) {
	type Alias Program
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "Program",
		Range: NewRangeFromPositioned(p),
		Alias: (*Alias)(p),
	})
}
