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

package runtime

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainerregan/IndoScript/common"
	"github.com/rainerregan/IndoScript/interpreter"
)

type replTestSession struct {
	*REPL
	output  *strings.Builder
	results []interpreter.Value
	errors  []error
	codes   []map[common.Location][]byte
}

func newREPLTestSession(t *testing.T) *replTestSession {
	session := &replTestSession{
		output: &strings.Builder{},
	}

	repl, err := NewREPL(
		func(err error, location common.Location, codes map[common.Location][]byte) {
			assert.Equal(t, common.REPLLocation{}, location)
			session.errors = append(session.errors, err)
			session.codes = append(session.codes, codes)
		},
		func(value interpreter.Value) {
			session.results = append(session.results, value)
		},
		Config{
			Output: session.output,
		},
	)
	require.NoError(t, err)

	session.REPL = repl
	return session
}

func TestREPLAccept(t *testing.T) {

	t.Parallel()

	session := newREPLTestSession(t)

	require.True(t, session.Accept([]byte("atur x = 1\n")))
	assert.Empty(t, session.results)

	require.True(t, session.Accept([]byte("x + 1\n")))
	assert.Equal(t, []interpreter.Value{interpreter.NumberValue(2)}, session.results)

	require.True(t, session.Accept([]byte("tampilkan x\n")))
	assert.Equal(t, "1\n", session.output.String())

	// only the value of the trailing expression statement is shown

	session.results = nil
	require.True(t, session.Accept([]byte(`"a"; "b"`+"\n")))
	assert.Equal(t, []interpreter.Value{interpreter.StringValue("b")}, session.results)

	assert.Empty(t, session.errors)
}

func TestREPLIncompleteInput(t *testing.T) {

	t.Parallel()

	session := newREPLTestSession(t)

	code := "fungsi dobel(n) {\n"
	require.False(t, session.Accept([]byte(code)))

	code += "    kembali n * 2\n"
	require.False(t, session.Accept([]byte(code)))

	code += "}\n"
	require.True(t, session.Accept([]byte(code)))

	require.False(t, session.Accept([]byte("dobel(\n")))
	require.True(t, session.Accept([]byte("dobel(\n21)\n")))

	assert.Equal(t, []interpreter.Value{interpreter.NumberValue(42)}, session.results)
	assert.Empty(t, session.errors)
}

func TestREPLNullResult(t *testing.T) {

	t.Parallel()

	session := newREPLTestSession(t)

	require.True(t, session.Accept([]byte("fungsi f() {}\n")))
	require.True(t, session.Accept([]byte("f()\n")))

	assert.Empty(t, session.results)
}

func TestREPLErrors(t *testing.T) {

	t.Parallel()

	session := newREPLTestSession(t)

	require.True(t, session.Accept([]byte("atur x = 1\n")))

	code := []byte("tampilkan y\n")
	require.True(t, session.Accept(code))
	require.Len(t, session.errors, 1)

	var undefinedErr interpreter.UndefinedVariableError
	require.ErrorAs(t, session.errors[0], &undefinedErr)
	assert.Equal(t,
		map[common.Location][]byte{common.REPLLocation{}: code},
		session.codes[0],
	)

	require.True(t, session.Accept([]byte("atur = 2\n")))
	require.Len(t, session.errors, 2)

	// the session continues after errors

	require.True(t, session.Accept([]byte("x\n")))
	assert.Equal(t, []interpreter.Value{interpreter.NumberValue(1)}, session.results)
}

func TestREPLUnboundedRecursion(t *testing.T) {

	t.Parallel()

	session := newREPLTestSession(t)

	require.True(t, session.Accept([]byte("atur x = 1\n")))
	require.True(t, session.Accept([]byte(
		"fungsi f(n) { jika (n <= 0) { kembali 0 } kembali n + f(n - 1) }\n",
	)))
	require.True(t, session.Accept([]byte("f(3)\n")))
	require.Len(t, session.errors, 1)

	var limitErr interpreter.CallStackLimitExceededError
	require.ErrorAs(t, session.errors[0], &limitErr)

	// the session continues in the top-level environment

	require.True(t, session.Accept([]byte("x\n")))
	assert.Equal(t, []interpreter.Value{interpreter.NumberValue(1)}, session.results)
	assert.False(t, session.Environment().Contains("n"))
}

func TestREPLStopsAtFirstError(t *testing.T) {

	t.Parallel()

	session := newREPLTestSession(t)

	require.True(t, session.Accept([]byte("tampilkan 1; tampilkan y; tampilkan 2\n")))

	assert.Equal(t, "1\n", session.output.String())
	assert.Len(t, session.errors, 1)
}

func TestREPLSuggestions(t *testing.T) {

	t.Parallel()

	session := newREPLTestSession(t)

	require.True(t, session.Accept([]byte("atur x = 1\nfungsi f(a, b) {}\natur xs = [x]\n")))

	suggestions := session.Suggestions()
	require.Greater(t, len(suggestions), 3)

	assert.Equal(t,
		[]REPLSuggestion{
			{Name: "f", Description: "fungsi f(a, b)"},
			{Name: "x", Description: "number"},
			{Name: "xs", Description: "array"},
		},
		suggestions[:3],
	)
	assert.Equal(t,
		REPLSuggestion{Name: "atur", Description: "kata kunci"},
		suggestions[3],
	)
}
