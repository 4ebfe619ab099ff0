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

// Block

type Block struct {
	Statements []Statement
	Range
}

var _ Element = &Block{}

func NewBlock(statements []Statement, r Range) *Block {
	return &Block{
		Statements: statements,
		Range:      r,
	}
}

func (*Block) ElementType() ElementType {
	return ElementTypeBlock
}

func (b *Block) Walk(walkChild func(Element)) {
	walkStatements(walkChild, b.Statements)
}

func (b *Block) String() string {
	return Prettier(b)
}

var blockStartDoc prettier.Doc = prettier.Text("{")
var blockEndDoc prettier.Doc = prettier.Text("}")
var blockEmptyDoc prettier.Doc = prettier.Text("{}")

func (b *Block) Doc() prettier.Doc {
	if b == nil || len(b.Statements) == 0 {
		return blockEmptyDoc
	}
	return prettier.Concat{
		blockStartDoc,
		prettier.Indent{
			Doc: prettier.Concat{
				prettier.HardLine{},
				statementsDoc(b.Statements),
			},
		},
		prettier.HardLine{},
		blockEndDoc,
	}
}

func (b *Block) MarshalJSON() ([]byte, error) {
	type Alias Block
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "Block",
		Alias: (*Alias)(b),
	})
}

func statementsDoc(statements []Statement) prettier.Doc {
	docs := make([]prettier.Doc, 0, len(statements))
	for _, statement := range statements {
		if statement == nil {
			continue
		}
		docs = append(docs, statement.Doc())
	}
	return prettier.Join(prettier.HardLine{}, docs...)
}

// VariableDeclaration, e.g. `atur x = 1`

type VariableDeclaration struct {
	Identifier Identifier
	Value      Expression
	StartPos   Position `json:"-"`
}

var _ Element = &VariableDeclaration{}
var _ Statement = &VariableDeclaration{}

func NewVariableDeclaration(
	identifier Identifier,
	value Expression,
	startPos Position,
) *VariableDeclaration {
	return &VariableDeclaration{
		Identifier: identifier,
		Value:      value,
		StartPos:   startPos,
	}
}

func (*VariableDeclaration) ElementType() ElementType {
	return ElementTypeVariableDeclaration
}

func (*VariableDeclaration) isStatement() {}

func (d *VariableDeclaration) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, []Expression{d.Value})
}

func (d *VariableDeclaration) String() string {
	return Prettier(d)
}

var variableDeclarationKeywordDoc prettier.Doc = prettier.Text("atur ")
var assignmentOperatorDoc prettier.Doc = prettier.Text(" = ")

func (d *VariableDeclaration) Doc() prettier.Doc {
	return prettier.Group{
		Doc: prettier.Concat{
			variableDeclarationKeywordDoc,
			prettier.Text(d.Identifier.Identifier),
			assignmentOperatorDoc,
			d.Value.Doc(),
		},
	}
}

func (d *VariableDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *VariableDeclaration) EndPosition() Position {
	return d.Value.EndPosition()
}

func (d *VariableDeclaration) MarshalJSON() ([]byte, error) {
	type Alias VariableDeclaration
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "VariableDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// AssignmentStatement, e.g. `x = 2`

type AssignmentStatement struct {
	Target Identifier
	Value  Expression
}

var _ Element = &AssignmentStatement{}
var _ Statement = &AssignmentStatement{}

func NewAssignmentStatement(target Identifier, value Expression) *AssignmentStatement {
	return &AssignmentStatement{
		Target: target,
		Value:  value,
	}
}

func (*AssignmentStatement) ElementType() ElementType {
	return ElementTypeAssignmentStatement
}

func (*AssignmentStatement) isStatement() {}

func (s *AssignmentStatement) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, []Expression{s.Value})
}

func (s *AssignmentStatement) String() string {
	return Prettier(s)
}

func (s *AssignmentStatement) Doc() prettier.Doc {
	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Text(s.Target.Identifier),
			assignmentOperatorDoc,
			s.Value.Doc(),
		},
	}
}

func (s *AssignmentStatement) StartPosition() Position {
	return s.Target.StartPosition()
}

func (s *AssignmentStatement) EndPosition() Position {
	return s.Value.EndPosition()
}

func (s *AssignmentStatement) MarshalJSON() ([]byte, error) {
	type Alias AssignmentStatement
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "AssignmentStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// PrintStatement, e.g. `tampilkan x`

type PrintStatement struct {
	Expression Expression
	StartPos   Position `json:"-"`
}

var _ Element = &PrintStatement{}
var _ Statement = &PrintStatement{}

func NewPrintStatement(expression Expression, startPos Position) *PrintStatement {
	return &PrintStatement{
		Expression: expression,
		StartPos:   startPos,
	}
}

func (*PrintStatement) ElementType() ElementType {
	return ElementTypePrintStatement
}

func (*PrintStatement) isStatement() {}

func (s *PrintStatement) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, []Expression{s.Expression})
}

func (s *PrintStatement) String() string {
	return Prettier(s)
}

var printStatementKeywordDoc prettier.Doc = prettier.Text("tampilkan ")

func (s *PrintStatement) Doc() prettier.Doc {
	return prettier.Concat{
		printStatementKeywordDoc,
		s.Expression.Doc(),
	}
}

func (s *PrintStatement) StartPosition() Position {
	return s.StartPos
}

func (s *PrintStatement) EndPosition() Position {
	return s.Expression.EndPosition()
}

func (s *PrintStatement) MarshalJSON() ([]byte, error) {
	type Alias PrintStatement
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "PrintStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// FunctionDeclaration, e.g. `fungsi tambah(a, b) { kembali a + b }`

type FunctionDeclaration struct {
	Identifier Identifier
	Parameters []Identifier
	Body       *Block
	StartPos   Position `json:"-"`
}

var _ Element = &FunctionDeclaration{}
var _ Statement = &FunctionDeclaration{}

func NewFunctionDeclaration(
	identifier Identifier,
	parameters []Identifier,
	body *Block,
	startPos Position,
) *FunctionDeclaration {
	return &FunctionDeclaration{
		Identifier: identifier,
		Parameters: parameters,
		Body:       body,
		StartPos:   startPos,
	}
}

func (*FunctionDeclaration) ElementType() ElementType {
	return ElementTypeFunctionDeclaration
}

func (*FunctionDeclaration) isStatement() {}

func (d *FunctionDeclaration) Walk(walkChild func(Element)) {
	if d.Body != nil {
		walkChild(d.Body)
	}
}

func (d *FunctionDeclaration) String() string {
	return Prettier(d)
}

var functionDeclarationKeywordDoc prettier.Doc = prettier.Text("fungsi ")
var parameterSeparatorDoc prettier.Doc = prettier.Text(", ")

// ParametersDoc renders a parameter list, e.g. `(a, b)`
func ParametersDoc(parameters []Identifier) prettier.Doc {
	parameterDocs := make([]prettier.Doc, len(parameters))
	for i, parameter := range parameters {
		parameterDocs[i] = prettier.Text(parameter.Identifier)
	}
	return prettier.Concat{
		prettier.Text("("),
		prettier.Join(parameterSeparatorDoc, parameterDocs...),
		prettier.Text(")"),
	}
}

func (d *FunctionDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		functionDeclarationKeywordDoc,
		prettier.Text(d.Identifier.Identifier),
		ParametersDoc(d.Parameters),
		prettier.Space,
		d.Body.Doc(),
	}
}

func (d *FunctionDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *FunctionDeclaration) EndPosition() Position {
	if d.Body == nil {
		return d.Identifier.EndPosition()
	}
	return d.Body.EndPosition()
}

func (d *FunctionDeclaration) MarshalJSON() ([]byte, error) {
	type Alias FunctionDeclaration
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "FunctionDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// ReturnStatement, e.g. `kembali x`

type ReturnStatement struct {
	// Expression is nil for a bare `kembali`
	Expression Expression
	Range
}

var _ Element = &ReturnStatement{}
var _ Statement = &ReturnStatement{}

func NewReturnStatement(expression Expression, r Range) *ReturnStatement {
	return &ReturnStatement{
		Expression: expression,
		Range:      r,
	}
}

func (*ReturnStatement) ElementType() ElementType {
	return ElementTypeReturnStatement
}

func (*ReturnStatement) isStatement() {}

func (s *ReturnStatement) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, []Expression{s.Expression})
}

func (s *ReturnStatement) String() string {
	return Prettier(s)
}

var returnStatementKeywordDoc prettier.Doc = prettier.Text("kembali")

func (s *ReturnStatement) Doc() prettier.Doc {
	if s.Expression == nil {
		return returnStatementKeywordDoc
	}
	return prettier.Concat{
		returnStatementKeywordDoc,
		prettier.Space,
		s.Expression.Doc(),
	}
}

func (s *ReturnStatement) MarshalJSON() ([]byte, error) {
	type Alias ReturnStatement
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "ReturnStatement",
		Alias: (*Alias)(s),
	})
}

// ExpressionStatement

type ExpressionStatement struct {
	Expression Expression
}

var _ Element = &ExpressionStatement{}
var _ Statement = &ExpressionStatement{}

func NewExpressionStatement(expression Expression) *ExpressionStatement {
	return &ExpressionStatement{
		Expression: expression,
	}
}

func (*ExpressionStatement) ElementType() ElementType {
	return ElementTypeExpressionStatement
}

func (*ExpressionStatement) isStatement() {}

func (s *ExpressionStatement) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, []Expression{s.Expression})
}

func (s *ExpressionStatement) String() string {
	return Prettier(s)
}

func (s *ExpressionStatement) Doc() prettier.Doc {
	return s.Expression.Doc()
}

func (s *ExpressionStatement) StartPosition() Position {
	return s.Expression.StartPosition()
}

func (s *ExpressionStatement) EndPosition() Position {
	return s.Expression.EndPosition()
}

func (s *ExpressionStatement) MarshalJSON() ([]byte, error) {
	type Alias ExpressionStatement
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "ExpressionStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// IfStatement
//
// An else-if chain is represented as an else block
// containing a single nested IfStatement.

type IfStatement struct {
	Test     Expression
	Then     *Block
	Else     *Block
	StartPos Position `json:"-"`
}

var _ Element = &IfStatement{}
var _ Statement = &IfStatement{}

func NewIfStatement(
	test Expression,
	thenBlock *Block,
	elseBlock *Block,
	startPos Position,
) *IfStatement {
	return &IfStatement{
		Test:     test,
		Then:     thenBlock,
		Else:     elseBlock,
		StartPos: startPos,
	}
}

func (*IfStatement) ElementType() ElementType {
	return ElementTypeIfStatement
}

func (*IfStatement) isStatement() {}

func (s *IfStatement) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, []Expression{s.Test})
	if s.Then != nil {
		walkChild(s.Then)
	}
	if s.Else != nil {
		walkChild(s.Else)
	}
}

func (s *IfStatement) String() string {
	return Prettier(s)
}

var ifStatementKeywordDoc prettier.Doc = prettier.Text("jika ")
var ifStatementElseKeywordDoc prettier.Doc = prettier.Text(" kalau_tidak ")

func testDoc(test Expression) prettier.Doc {
	return prettier.Group{
		Doc: prettier.WrapParentheses(
			test.Doc(),
			prettier.SoftLine{},
		),
	}
}

// ElseIf returns the nested if statement, if the else block
// is the continuation of an else-if chain.
func (s *IfStatement) ElseIf() (*IfStatement, bool) {
	if s.Else == nil || len(s.Else.Statements) != 1 {
		return nil, false
	}
	elseIf, ok := s.Else.Statements[0].(*IfStatement)
	if !ok || elseIf.StartPos != s.Else.StartPos {
		return nil, false
	}
	return elseIf, true
}

func (s *IfStatement) Doc() prettier.Doc {
	doc := prettier.Concat{
		ifStatementKeywordDoc,
		testDoc(s.Test),
		prettier.Space,
		s.Then.Doc(),
	}

	if s.Else == nil {
		return doc
	}

	doc = append(doc, ifStatementElseKeywordDoc)

	if elseIf, ok := s.ElseIf(); ok {
		return append(doc, elseIf.Doc())
	}

	return append(doc, s.Else.Doc())
}

func (s *IfStatement) StartPosition() Position {
	return s.StartPos
}

func (s *IfStatement) EndPosition() Position {
	if s.Else != nil {
		return s.Else.EndPosition()
	}
	if s.Then != nil {
		return s.Then.EndPosition()
	}
	return s.Test.EndPosition()
}

func (s *IfStatement) MarshalJSON() ([]byte, error) {
	type Alias IfStatement
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "IfStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// WhileStatement, e.g. `selama (x < 3) { ... }`

type WhileStatement struct {
	Test     Expression
	Block    *Block
	StartPos Position `json:"-"`
}

var _ Element = &WhileStatement{}
var _ Statement = &WhileStatement{}

func NewWhileStatement(test Expression, block *Block, startPos Position) *WhileStatement {
	return &WhileStatement{
		Test:     test,
		Block:    block,
		StartPos: startPos,
	}
}

func (*WhileStatement) ElementType() ElementType {
	return ElementTypeWhileStatement
}

func (*WhileStatement) isStatement() {}

func (s *WhileStatement) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, []Expression{s.Test})
	if s.Block != nil {
		walkChild(s.Block)
	}
}

func (s *WhileStatement) String() string {
	return Prettier(s)
}

var whileStatementKeywordDoc prettier.Doc = prettier.Text("selama ")

func (s *WhileStatement) Doc() prettier.Doc {
	return prettier.Concat{
		whileStatementKeywordDoc,
		testDoc(s.Test),
		prettier.Space,
		s.Block.Doc(),
	}
}

func (s *WhileStatement) StartPosition() Position {
	return s.StartPos
}

func (s *WhileStatement) EndPosition() Position {
	if s.Block == nil {
		return s.Test.EndPosition()
	}
	return s.Block.EndPosition()
}

func (s *WhileStatement) MarshalJSON() ([]byte, error) {
	type Alias WhileStatement
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "WhileStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// ForStatement, e.g. `untuk (atur i = 0; i < 3; i = i + 1) { ... }`
//
// Init, Test, and Update are optional.

type ForStatement struct {
	Init     Statement
	Test     Expression
	Update   Statement
	Block    *Block
	StartPos Position `json:"-"`
}

var _ Element = &ForStatement{}
var _ Statement = &ForStatement{}

func NewForStatement(
	init Statement,
	test Expression,
	update Statement,
	block *Block,
	startPos Position,
) *ForStatement {
	return &ForStatement{
		Init:     init,
		Test:     test,
		Update:   update,
		Block:    block,
		StartPos: startPos,
	}
}

func (*ForStatement) ElementType() ElementType {
	return ElementTypeForStatement
}

func (*ForStatement) isStatement() {}

func (s *ForStatement) Walk(walkChild func(Element)) {
	if s.Init != nil {
		walkChild(s.Init)
	}
	walkExpressions(walkChild, []Expression{s.Test})
	if s.Update != nil {
		walkChild(s.Update)
	}
	if s.Block != nil {
		walkChild(s.Block)
	}
}

func (s *ForStatement) String() string {
	return Prettier(s)
}

var forStatementKeywordDoc prettier.Doc = prettier.Text("untuk ")
var forStatementSeparatorDoc prettier.Doc = prettier.Text(";")

func (s *ForStatement) Doc() prettier.Doc {
	header := prettier.Concat{
		prettier.Text("("),
	}
	if s.Init != nil {
		header = append(header, s.Init.Doc())
	}
	header = append(header, forStatementSeparatorDoc)
	if s.Test != nil {
		header = append(header, prettier.Space, s.Test.Doc())
	}
	header = append(header, forStatementSeparatorDoc)
	if s.Update != nil {
		header = append(header, prettier.Space, s.Update.Doc())
	}
	header = append(header, prettier.Text(")"))

	return prettier.Concat{
		forStatementKeywordDoc,
		header,
		prettier.Space,
		s.Block.Doc(),
	}
}

func (s *ForStatement) StartPosition() Position {
	return s.StartPos
}

func (s *ForStatement) EndPosition() Position {
	if s.Block == nil {
		return s.StartPos
	}
	return s.Block.EndPosition()
}

func (s *ForStatement) MarshalJSON() ([]byte, error) {
	type Alias ForStatement
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "ForStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// ForEachStatement, e.g. `untuk_setiap (x dalam daftar) { ... }`

type ForEachStatement struct {
	Identifier Identifier
	Expression Expression
	Block      *Block
	StartPos   Position `json:"-"`
}

var _ Element = &ForEachStatement{}
var _ Statement = &ForEachStatement{}

func NewForEachStatement(
	identifier Identifier,
	expression Expression,
	block *Block,
	startPos Position,
) *ForEachStatement {
	return &ForEachStatement{
		Identifier: identifier,
		Expression: expression,
		Block:      block,
		StartPos:   startPos,
	}
}

func (*ForEachStatement) ElementType() ElementType {
	return ElementTypeForEachStatement
}

func (*ForEachStatement) isStatement() {}

func (s *ForEachStatement) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, []Expression{s.Expression})
	if s.Block != nil {
		walkChild(s.Block)
	}
}

func (s *ForEachStatement) String() string {
	return Prettier(s)
}

var forEachStatementKeywordDoc prettier.Doc = prettier.Text("untuk_setiap (")
var forEachStatementInKeywordDoc prettier.Doc = prettier.Text(" dalam ")

func (s *ForEachStatement) Doc() prettier.Doc {
	return prettier.Concat{
		forEachStatementKeywordDoc,
		prettier.Text(s.Identifier.Identifier),
		forEachStatementInKeywordDoc,
		s.Expression.Doc(),
		prettier.Text(")"),
		prettier.Space,
		s.Block.Doc(),
	}
}

func (s *ForEachStatement) StartPosition() Position {
	return s.StartPos
}

func (s *ForEachStatement) EndPosition() Position {
	if s.Block == nil {
		return s.Expression.EndPosition()
	}
	return s.Block.EndPosition()
}

func (s *ForEachStatement) MarshalJSON() ([]byte, error) {
	type Alias ForEachStatement
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "ForEachStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}
