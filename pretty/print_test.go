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

package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainerregan/IndoScript/ast"
	"github.com/rainerregan/IndoScript/common"
)

type testError struct {
	ast.Range
}

func (testError) Error() string {
	return "test error"
}

type testSecondaryError struct {
	ast.Range
}

func (testSecondaryError) Error() string {
	return "test error"
}

func (testSecondaryError) SecondaryError() string {
	return "did you mean `nilai`?"
}

type testParentError struct {
	children []error
}

func (testParentError) Error() string {
	return "parent"
}

func (e testParentError) ChildErrors() []error {
	return e.children
}

func TestPrintBrokenCode(t *testing.T) {

	t.Parallel()

	const code = `atur x = 1`
	lineCount := len(strings.Split(code, "\n"))

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: ast.Range{
				StartPos: ast.Position{
					// NOTE: line number is after end of code
					Line:   lineCount + 2,
					Column: 0,
				},
				EndPos: ast.Position{
					Line:   lineCount,
					Column: 2,
				},
			},
		},
		location,
		map[common.Location][]byte{
			location: []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:3:0\n",
		sb.String(),
	)
}

func TestPrintTabs(t *testing.T) {

	t.Parallel()

	const code = "\t  \t   atur x = 1"

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: ast.Range{
				StartPos: ast.Position{
					Line:   1,
					Column: 7,
				},
				EndPos: ast.Position{
					Line:   1,
					Column: 10,
				},
			},
		},
		location,
		map[common.Location][]byte{
			location: []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:7\n"+
			"  |\n"+
			"1 | \t  \t   atur x = 1\n"+
			"  | \t  \t   ^^^^\n",
		sb.String(),
	)
}

func TestPrintSecondaryError(t *testing.T) {

	t.Parallel()

	const code = "atur nilai = 1\ntampilkan nilaj"

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testSecondaryError{
			Range: ast.Range{
				StartPos: ast.Position{Line: 2, Column: 10},
				EndPos:   ast.Position{Line: 2, Column: 14},
			},
		},
		nil,
		map[common.Location][]byte{
			nil: []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> 2:10\n"+
			"  |\n"+
			"2 | tampilkan nilaj\n"+
			"  |           ^^^^^ did you mean `nilai`?\n",
		sb.String(),
	)
}

func TestPrintWideCharacters(t *testing.T) {

	t.Parallel()

	const code = `tampilkan "日本" + x`

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 10},
				EndPos:   ast.Position{Line: 1, Column: 13},
			},
		},
		location,
		map[common.Location][]byte{
			location: []byte(code),
		},
	)
	require.NoError(t, err)

	lines := strings.Split(sb.String(), "\n")
	require.Len(t, lines, 6)
	// two quotes of width 1, two characters of width 2
	assert.Equal(t, "  |           ^^^^^^", lines[4])
}

func TestPrintParentError(t *testing.T) {

	t.Parallel()

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testParentError{
			children: []error{
				testError{},
				testError{},
			},
		},
		location,
		nil,
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:0:0\n"+
			"\n"+
			"error: test error\n"+
			" --> test:0:0\n",
		sb.String(),
	)
}

func TestFormatErrorMessage(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		"error: gagal",
		FormatErrorMessage(ErrorPrefix, "gagal", false),
	)

	colored := FormatErrorMessage(ErrorPrefix, "gagal", true)
	assert.Contains(t, colored, "gagal")
	assert.NotEqual(t, "error: gagal", colored)
}

type testNoteError struct {
	ast.Range
}

func (testNoteError) Error() string {
	return "in call of function `f`"
}

func (testNoteError) Prefix() string {
	return "note"
}

func TestPrintParentErrorWithSource(t *testing.T) {

	t.Parallel()

	const code = "f()\nx"

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testParentError{
			children: []error{
				testNoteError{
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0},
						EndPos:   ast.Position{Line: 1, Column: 2},
					},
				},
				testError{
					Range: ast.Range{
						StartPos: ast.Position{Line: 2, Column: 0},
						EndPos:   ast.Position{Line: 2, Column: 0},
					},
				},
			},
		},
		nil,
		map[common.Location][]byte{
			nil: []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"note: in call of function `f`\n"+
			" --> 1:0\n"+
			"  |\n"+
			"1 | f()\n"+
			"  | ^^^\n"+
			"\n"+
			"error: test error\n"+
			" --> 2:0\n"+
			"  |\n"+
			"2 | x\n"+
			"  | ^\n",
		sb.String(),
	)
}
