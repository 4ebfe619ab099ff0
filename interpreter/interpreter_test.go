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

package interpreter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainerregan/IndoScript/ast"
	. "github.com/rainerregan/IndoScript/interpreter"
	"github.com/rainerregan/IndoScript/parser"
	. "github.com/rainerregan/IndoScript/test_utils/common_utils"
)

type testRun struct {
	prints []string
	env    *Environment
	err    error
}

func parseAndInterpretWithConfig(t *testing.T, code string, config *Config) testRun {
	t.Helper()

	program, err := parser.ParseProgram([]byte(code), parser.Config{})
	require.NoError(t, err)

	var run testRun

	config.OnPrint = func(_ *Interpreter, value Value) {
		run.prints = append(run.prints, value.String())
	}

	inter, err := NewInterpreter(program, TestLocation, config)
	require.NoError(t, err)

	run.env = NewEnvironment()
	run.err = inter.Interpret(run.env)

	return run
}

func parseAndInterpret(t *testing.T, code string) testRun {
	t.Helper()
	return parseAndInterpretWithConfig(t, code, &Config{})
}

func testPrints(t *testing.T, code string, expected ...string) {
	t.Helper()

	run := parseAndInterpret(t, code)
	require.NoError(t, run.err)
	assert.Equal(t, expected, run.prints)
}

func TestInterpretLiterals(t *testing.T) {

	t.Parallel()

	testPrints(t,
		`
          tampilkan 1
          tampilkan "halo"
          tampilkan benar
          tampilkan salah
          tampilkan [1, "a", [benar]]
        `,
		"1",
		"halo",
		"benar",
		"salah",
		`[1, "a", [benar]]`,
	)
}

func TestInterpretVariables(t *testing.T) {

	t.Parallel()

	t.Run("reassignment", func(t *testing.T) {

		t.Parallel()

		testPrints(t, "atur x = 1; x = 2; tampilkan x;", "2")
	})

	t.Run("bindings are added to the environment", func(t *testing.T) {

		t.Parallel()

		run := parseAndInterpret(t, "atur x = 1\natur y = x + 1")
		require.NoError(t, run.err)

		value, ok := run.env.Find("y")
		require.True(t, ok)
		assert.Equal(t, NumberValue(2), value)

		assert.Equal(t, []string{"x", "y"}, run.env.Names())
	})

	t.Run("environment persists across programs", func(t *testing.T) {

		t.Parallel()

		env := NewEnvironment()

		first, err := parser.ParseProgram([]byte("atur x = 41"), parser.Config{})
		require.NoError(t, err)
		require.NoError(t, Run(first, env, &Config{}))

		second, err := parser.ParseProgram([]byte("x = x + 1"), parser.Config{})
		require.NoError(t, err)
		require.NoError(t, Run(second, env, &Config{}))

		value, ok := env.Find("x")
		require.True(t, ok)
		assert.Equal(t, NumberValue(42), value)
	})
}

func TestInterpretOperators(t *testing.T) {

	t.Parallel()

	t.Run("left to right", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              tampilkan 2 + 3 * 4
              tampilkan (2 + 3) * 4
              tampilkan 2 + (3 * 4)
              tampilkan 10 - 4 - 3
            `,
			"20",
			"20",
			"14",
			"3",
		)
	})

	t.Run("division", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              tampilkan 7 / 2
              tampilkan 1 / 0
              tampilkan 0 - 1 / 0
              tampilkan 0 / 0
            `,
			"3.5",
			"Infinity",
			"-Infinity",
			"NaN",
		)
	})

	t.Run("concatenation", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              tampilkan "a" + 1 + 2
              tampilkan 1 + 2 + "a"
              tampilkan "nilai: " + benar
              tampilkan "daftar: " + [1, "b"]
            `,
			"a12",
			"3a",
			"nilai: benar",
			`daftar: [1, "b"]`,
		)
	})

	t.Run("equality is strict", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              tampilkan 1 == "1"
              tampilkan 1 == 1
              tampilkan "a" tidak_sama "b"
              tampilkan [1, [2]] == [1, [2]]
              tampilkan [1] == [1, 2]
              tampilkan [1][5] == [2][5]
              tampilkan (0 / 0) == (0 / 0)
            `,
			"salah",
			"benar",
			"benar",
			"benar",
			"salah",
			"benar",
			"salah",
		)
	})

	t.Run("comparison", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              tampilkan 1 < 2
              tampilkan 2 <= 2
              tampilkan 1 > 2
              tampilkan 3 >= 4
              tampilkan "apel" < "jeruk"
              tampilkan "b" >= "a"
            `,
			"benar",
			"benar",
			"salah",
			"salah",
			"benar",
			"benar",
		)
	})

	t.Run("logical operators use truthiness", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              tampilkan 1 dan "a"
              tampilkan 0 atau ""
              tampilkan [] dan benar
              tampilkan salah || [1][3]
            `,
			"benar",
			"salah",
			"benar",
			"salah",
		)
	})

	t.Run("no short-circuit", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              fungsi efek() {
                  tampilkan "efek"
                  kembali benar
              }
              tampilkan salah dan efek()
              tampilkan benar atau efek()
            `,
			"efek",
			"salah",
			"efek",
			"benar",
		)
	})

	t.Run("invalid operands", func(t *testing.T) {

		t.Parallel()

		for _, code := range []string{
			"tampilkan benar + 1",
			"tampilkan [1] - 1",
			"tampilkan 1 < \"2\"",
			"tampilkan benar > salah",
		} {
			run := parseAndInterpret(t, code)
			RequireError(t, run.err)

			var operandsErr InvalidOperandsError
			require.ErrorAs(t, run.err, &operandsErr, code)
		}
	})
}

func TestInterpretFunctions(t *testing.T) {

	t.Parallel()

	t.Run("return value", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              fungsi tambah(a, b) {
                  kembali a + b
              }
              tampilkan tambah(1, 2)
            `,
			"3",
		)
	})

	t.Run("function value", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              fungsi tambah(a, b) {}
              tampilkan tambah
              tampilkan tambah == tambah
            `,
			"fungsi tambah(a, b)",
			"benar",
		)
	})

	t.Run("no return", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              fungsi f() {
                  atur x = 1
              }
              tampilkan f()
            `,
			"kosong",
		)
	})

	t.Run("bare return", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              fungsi f() {
                  kembali
                  tampilkan "tidak"
              }
              tampilkan f()
            `,
			"kosong",
		)
	})

	t.Run("missing and extra arguments", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              fungsi f(a, b) {
                  tampilkan a
                  tampilkan b
              }
              f(1)
              f(1, 2, 3)
            `,
			"1",
			"kosong",
			"1",
			"2",
		)
	})

	t.Run("updates do not leak back to the caller", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              atur x = 1
              fungsi f() {
                  x = 2
                  atur y = 3
                  tampilkan x
              }
              f()
              tampilkan x
            `,
			"2",
			"1",
		)
	})

	t.Run("body sees the caller's bindings", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              fungsi g() {
                  tampilkan y
              }
              fungsi h() {
                  atur y = 5
                  g()
              }
              h()
            `,
			"5",
		)
	})

	t.Run("nested function declaration stays local", func(t *testing.T) {

		t.Parallel()

		run := parseAndInterpret(t, `
          fungsi luar() {
              fungsi anak() {}
          }
          luar()
          anak()
        `)
		RequireError(t, run.err)

		var undefinedErr UndefinedVariableError
		require.ErrorAs(t, run.err, &undefinedErr)
		assert.Equal(t, "anak", undefinedErr.Name)
	})

	t.Run("return in nested block does not return from function", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              fungsi f(x) {
                  jika (x > 0) {
                      kembali "positif"
                      tampilkan "tidak"
                  }
                  kembali "selesai"
              }
              tampilkan f(1)
            `,
			"selesai",
		)
	})

	t.Run("top-level return continues", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              kembali 1
              tampilkan 2
            `,
			"2",
		)
	})

	t.Run("arguments are evaluated left to right", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              fungsi cetak(x) {
                  tampilkan x
                  kembali x
              }
              fungsi abaikan(a, b) {}
              abaikan(cetak(1), cetak(2))
            `,
			"1",
			"2",
		)
	})
}

func TestInterpretArrays(t *testing.T) {

	t.Parallel()

	t.Run("append returns a new array", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              atur a = [1, 2]
              a.tambah(3)
              tampilkan a.panjang
              a = a.tambah(3)
              tampilkan a.panjang
              tampilkan a.push(4, 5)
              tampilkan a.length
            `,
			"2",
			"3",
			"[1, 2, 3, 4, 5]",
			"3",
		)
	})

	t.Run("index", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              atur a = [10, 20]
              tampilkan a[1]
              tampilkan a[2]
              tampilkan a[0 - 1]
              tampilkan a[1 / 2]
              tampilkan a["0"]
            `,
			"20",
			"kosong",
			"kosong",
			"kosong",
			"kosong",
		)
	})

	t.Run("spread", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              atur a = [1, 2]
              tampilkan [0, ...a, 3, ...[]]
            `,
			"[0, 1, 2, 3]",
		)
	})

	t.Run("for each element", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              fungsi cetak(elemen, indeks) {
                  tampilkan indeks + ": " + elemen
              }
              tampilkan ["a", "b"].setiap(cetak)
              atur satu = [1]
              satu.forEach(cetak)
            `,
			"0: a",
			"1: b",
			"kosong",
			"0: 1",
		)
	})

	t.Run("errors", func(t *testing.T) {

		t.Parallel()

		for _, code := range []string{
			"atur x = 1; tampilkan x.panjang",
			"tampilkan [...1]",
			"tampilkan 5[0]",
			"untuk_setiap (a dalam 5) {}",
			"atur s = \"abc\"; s.tambah(1)",
		} {
			run := parseAndInterpret(t, code)
			RequireError(t, run.err)

			var notAnArrayErr NotAnArrayError
			require.ErrorAs(t, run.err, &notAnArrayErr, code)
		}
	})

	t.Run("for each with non-function", func(t *testing.T) {

		t.Parallel()

		run := parseAndInterpret(t, "[1].setiap(2)")
		RequireError(t, run.err)

		var notCallableErr NotCallableError
		require.ErrorAs(t, run.err, &notCallableErr)
		assert.Equal(t, NumberValue(2), notCallableErr.Value)
	})

	t.Run("unknown property", func(t *testing.T) {

		t.Parallel()

		run := parseAndInterpret(t, "tampilkan [1].panjng")
		RequireError(t, run.err)

		var propertyErr UnknownPropertyError
		require.ErrorAs(t, run.err, &propertyErr)
		assert.Equal(t, "panjng", propertyErr.Name)
		assert.Equal(t, "did you mean `panjang`?", propertyErr.SecondaryError())
	})

	t.Run("unknown method", func(t *testing.T) {

		t.Parallel()

		run := parseAndInterpret(t, "[1].hapus(1)")
		RequireError(t, run.err)

		var methodErr UnknownMethodError
		require.ErrorAs(t, run.err, &methodErr)
		assert.Equal(t, "hapus", methodErr.Name)
	})
}

func TestInterpretControlFlow(t *testing.T) {

	t.Parallel()

	t.Run("if else-if else", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              fungsi periksa(x) {
                  jika (x > 0) {
                      tampilkan "positif"
                  } kalau_tidak jika (x < 0) {
                      tampilkan "negatif"
                  } kalau_tidak {
                      tampilkan "nol"
                  }
              }
              periksa(1)
              periksa(0 - 1)
              periksa(0)
            `,
			"positif",
			"negatif",
			"nol",
		)
	})

	t.Run("if uses the current environment", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              jika (benar) {
                  atur x = 1
              }
              tampilkan x
            `,
			"1",
		)
	})

	t.Run("while", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              atur i = 0
              selama (i < 3) {
                  tampilkan i
                  i = i + 1
              }
            `,
			"0",
			"1",
			"2",
		)
	})

	t.Run("for", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              untuk (atur i = 0; i < 3; i = i + 1) {
                  tampilkan i
              }
              tampilkan i
            `,
			"0",
			"1",
			"2",
			"3",
		)
	})

	t.Run("for each does not persist bindings", func(t *testing.T) {

		t.Parallel()

		run := parseAndInterpret(t, `
          untuk_setiap (x dalam [1, 2]) {
              atur y = x
              tampilkan y
          }
          tampilkan y
        `)
		assert.Equal(t, []string{"1", "2"}, run.prints)

		var undefinedErr UndefinedVariableError
		require.ErrorAs(t, run.err, &undefinedErr)
		assert.Equal(t, "y", undefinedErr.Name)

		assert.False(t, run.env.Contains("x"))
	})

	t.Run("return stops the loop body only", func(t *testing.T) {

		t.Parallel()

		testPrints(t,
			`
              untuk_setiap (x dalam [1, 2]) {
                  tampilkan x
                  kembali
                  tampilkan "tidak"
              }
            `,
			"1",
			"2",
		)
	})
}

func TestInterpretErrors(t *testing.T) {

	t.Parallel()

	t.Run("undefined variable", func(t *testing.T) {

		t.Parallel()

		run := parseAndInterpret(t, "atur nilai = 1\ntampilkan nilia")
		RequireError(t, run.err)

		var interpreterErr Error
		require.ErrorAs(t, run.err, &interpreterErr)
		assert.Equal(t, TestLocation, interpreterErr.Location)

		var undefinedErr UndefinedVariableError
		require.ErrorAs(t, run.err, &undefinedErr)
		assert.Equal(t, "nilia", undefinedErr.Name)
		assert.Equal(t, "did you mean `nilai`?", undefinedErr.SecondaryError())
		assert.Equal(t,
			ast.NewRange(
				ast.Position{Offset: 25, Line: 2, Column: 10},
				ast.Position{Offset: 29, Line: 2, Column: 14},
			),
			undefinedErr.Range,
		)
	})

	t.Run("execution stops at the first error", func(t *testing.T) {

		t.Parallel()

		run := parseAndInterpret(t, "tampilkan 1\ntampilkan x\ntampilkan 2")
		require.Error(t, run.err)
		assert.Equal(t, []string{"1"}, run.prints)
	})

	t.Run("not callable", func(t *testing.T) {

		t.Parallel()

		run := parseAndInterpret(t, "atur x = 1\nx()")
		RequireError(t, run.err)

		var notCallableErr NotCallableError
		require.ErrorAs(t, run.err, &notCallableErr)
		assert.Equal(t, "cannot call value of type number: 1", notCallableErr.Error())
	})

	t.Run("stack trace", func(t *testing.T) {

		t.Parallel()

		run := parseAndInterpret(t, `
          fungsi anak() {
              tampilkan tidakAda
          }
          fungsi luar() {
              anak()
          }
          luar()
        `)
		RequireError(t, run.err)

		var interpreterErr Error
		require.ErrorAs(t, run.err, &interpreterErr)
		require.Len(t, interpreterErr.StackTrace, 2)
		assert.Equal(t, "luar", interpreterErr.StackTrace[0].Function.Name())
		assert.Equal(t, "anak", interpreterErr.StackTrace[1].Function.Name())

		children := interpreterErr.ChildErrors()
		require.Len(t, children, 3)
		assert.IsType(t, StackTraceError{}, children[0])
		assert.IsType(t, UndefinedVariableError{}, children[2])
	})

	t.Run("missing statement", func(t *testing.T) {

		t.Parallel()

		program := ast.NewProgram([]ast.Statement{nil})

		err := Run(program, nil, &Config{})
		RequireError(t, err)

		var nodeErr UnknownNodeTypeError
		require.ErrorAs(t, err, &nodeErr)
	})

	t.Run("missing expression", func(t *testing.T) {

		t.Parallel()

		program := ast.NewProgram([]ast.Statement{
			ast.NewIfStatement(nil, &ast.Block{}, nil, ast.EmptyPosition),
		})

		err := Run(program, nil, &Config{})
		RequireError(t, err)

		var nodeErr UnknownNodeTypeError
		require.ErrorAs(t, err, &nodeErr)

		var positionedErr PositionedError
		require.ErrorAs(t, err, &positionedErr)
	})

	t.Run("unknown operator", func(t *testing.T) {

		t.Parallel()

		program := ast.NewProgram([]ast.Statement{
			ast.NewExpressionStatement(
				ast.NewBinaryExpression(
					ast.OperationUnknown,
					&ast.NumberExpression{Literal: "1", Value: 1},
					&ast.NumberExpression{Literal: "2", Value: 2},
				),
			),
		})

		err := Run(program, nil, &Config{})
		RequireError(t, err)

		var operatorErr UnknownOperatorError
		require.ErrorAs(t, err, &operatorErr)
	})
}

func TestInterpreterEntryPoints(t *testing.T) {

	t.Parallel()

	t.Run("execute statement", func(t *testing.T) {

		t.Parallel()

		program, err := parser.ParseProgram([]byte("atur x = 2\nx * 3"), parser.Config{})
		require.NoError(t, err)

		inter, err := NewInterpreter(program, TestLocation, nil)
		require.NoError(t, err)

		env := NewEnvironment()

		result, err := inter.ExecuteStatement(program.Statements[0], env)
		require.NoError(t, err)
		assert.Nil(t, result)

		result, err = inter.ExecuteStatement(program.Statements[1], env)
		require.NoError(t, err)
		assert.Equal(t, NumberValue(6), result)
	})

	t.Run("evaluate expression", func(t *testing.T) {

		t.Parallel()

		expression, err := parser.ParseExpression([]byte("[1, 2].panjang"), parser.Config{})
		require.NoError(t, err)

		inter, err := NewInterpreter(nil, TestLocation, nil)
		require.NoError(t, err)

		result, err := inter.EvaluateExpression(expression, nil)
		require.NoError(t, err)
		assert.Equal(t, NumberValue(2), result)
	})

	t.Run("tracing without recorder", func(t *testing.T) {

		t.Parallel()

		_, err := NewInterpreter(nil, TestLocation, &Config{TracingEnabled: true})
		require.Error(t, err)
	})
}

func TestInterpreterHooks(t *testing.T) {

	t.Parallel()

	var statements, iterations, invocations, returns int
	var iterationLines []int

	run := parseAndInterpretWithConfig(t,
		`
          fungsi f() {
              kembali 1
          }
          untuk_setiap (x dalam [1, 2]) {
              f()
          }
        `,
		&Config{
			OnStatement: func(_ *Interpreter, _ ast.Statement) {
				statements++
			},
			OnLoopIteration: func(_ *Interpreter, line int) {
				iterations++
				iterationLines = append(iterationLines, line)
			},
			OnFunctionInvocation: func(_ *Interpreter) {
				invocations++
			},
			OnInvokedFunctionReturn: func(_ *Interpreter) {
				returns++
			},
		},
	)
	require.NoError(t, run.err)

	// declaration, loop, and per iteration: call statement and return statement
	assert.Equal(t, 6, statements)
	assert.Equal(t, 2, iterations)
	assert.Equal(t, []int{5, 5}, iterationLines)
	assert.Equal(t, 2, invocations)
	assert.Equal(t, 2, returns)
}

func TestInterpretCallStackLimit(t *testing.T) {

	t.Parallel()

	t.Run("nested return does not stop recursion", func(t *testing.T) {

		t.Parallel()

		run := parseAndInterpret(t, `
          fungsi f(n) {
              jika (n <= 0) {
                  kembali 0
              }
              kembali n + f(n - 1)
          }
          tampilkan f(3)
        `)
		RequireError(t, run.err)
		assert.Empty(t, run.prints)

		var limitErr CallStackLimitExceededError
		require.ErrorAs(t, run.err, &limitErr)
		assert.Equal(t, DefaultCallStackDepthLimit, limitErr.Limit)
		assert.Equal(t, 6, limitErr.StartPos.Line)

		var interpreterErr Error
		require.ErrorAs(t, run.err, &interpreterErr)
		assert.Len(t, interpreterErr.StackTrace, DefaultCallStackDepthLimit)
	})

	t.Run("configured limit", func(t *testing.T) {

		t.Parallel()

		run := parseAndInterpretWithConfig(t,
			`
              fungsi f(n) {
                  tampilkan n
                  f(n + 1)
              }
              f(1)
            `,
			&Config{CallStackDepthLimit: 3},
		)
		RequireError(t, run.err)
		assert.Equal(t, []string{"1", "2", "3"}, run.prints)

		var limitErr CallStackLimitExceededError
		require.ErrorAs(t, run.err, &limitErr)
		assert.Equal(t, 3, limitErr.Limit)
		assert.Equal(t, "call stack depth limit exceeded, calls are limited to 3 levels", limitErr.Error())
	})

	t.Run("conditional recursion within the limit", func(t *testing.T) {

		t.Parallel()

		run := parseAndInterpretWithConfig(t,
			`
              fungsi f(n) {
                  jika (n > 0) {
                      f(n - 1)
                  }
                  tampilkan n
              }
              f(3)
            `,
			&Config{CallStackDepthLimit: 4},
		)
		require.NoError(t, run.err)
		assert.Equal(t, []string{"0", "1", "2", "3"}, run.prints)
	})
}

func TestInterpretStateAfterError(t *testing.T) {

	t.Parallel()

	program, err := parser.ParseProgram(
		[]byte(`
          fungsi f() {
              atur lokal = 1
              tampilkan tidakAda
          }
          f()
        `),
		parser.Config{},
	)
	require.NoError(t, err)

	inter, err := NewInterpreter(program, TestLocation, &Config{
		OnPrint: func(_ *Interpreter, _ Value) {},
	})
	require.NoError(t, err)

	env := NewEnvironment()
	err = inter.Interpret(env)
	RequireError(t, err)

	var interpreterErr Error
	require.ErrorAs(t, err, &interpreterErr)
	require.Len(t, interpreterErr.StackTrace, 1)
	assert.Equal(t, "f", interpreterErr.StackTrace[0].Function.Name())

	// the caller's state is restored when the error unwinds the invocation
	assert.Same(t, env, inter.Environment())
	assert.Empty(t, inter.CallStack())
	assert.False(t, env.Contains("lokal"))
}
