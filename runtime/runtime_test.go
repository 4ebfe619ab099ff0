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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/rainerregan/IndoScript/common"
	"github.com/rainerregan/IndoScript/interpreter"
	"github.com/rainerregan/IndoScript/parser"
	. "github.com/rainerregan/IndoScript/test_utils/common_utils"
)

func runAndCollect(t *testing.T, code string, config Config) (string, error) {
	var output strings.Builder
	config.Output = &output
	err := Run([]byte(code), nil, config)
	return output.String(), err
}

func TestRuntimeRun(t *testing.T) {

	t.Parallel()

	test := func(name, code, expected string) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			output, err := runAndCollect(t, code, Config{})
			require.NoError(t, err)
			assert.Equal(t, expected, output)
		})
	}

	test(
		"literals",
		`
          tampilkan 1
          tampilkan "dua"
          tampilkan benar
          tampilkan [1, "a"]
        `,
		"1\ndua\nbenar\n[1, \"a\"]\n",
	)

	test(
		"reassignment",
		`atur x = 1; x = 2; tampilkan x;`,
		"2\n",
	)

	test(
		"left to right",
		`
          tampilkan 2 + 3 * 4
          tampilkan (2 + 3) * 4
          tampilkan 2 + (3 * 4)
        `,
		"20\n20\n14\n",
	)

	test(
		"call-site scoping",
		`
          atur x = 1
          fungsi f() {
              tampilkan x
              x = 3
              atur y = 4
          }
          fungsi g() {
              atur x = 2
              f()
          }
          g()
          tampilkan x
        `,
		"2\n1\n",
	)

	test(
		"append result",
		`
          atur xs = [1, 2]
          xs.tambah(3)
          tampilkan xs.panjang
          xs = xs.tambah(3)
          tampilkan xs.panjang
        `,
		"2\n3\n",
	)

	test(
		"no short circuit",
		`
          fungsi catat(x) {
              tampilkan x
              kembali x
          }
          atur a = catat(salah) dan catat(benar)
          tampilkan a
        `,
		"salah\nbenar\nsalah\n",
	)

	test(
		"loops",
		`
          atur jumlah = 0
          untuk (atur i = 1; i <= 4; i = i + 1) {
              jumlah = jumlah + i
          }
          tampilkan jumlah
          untuk_setiap (x dalam [1, 2]) {
              tampilkan x * 10
          }
        `,
		"10\n10\n20\n",
	)
}

func TestRuntimeRunEnvironment(t *testing.T) {

	t.Parallel()

	env := interpreter.NewEnvironment()
	env.Set("argumen", interpreter.NewArrayValue(interpreter.StringValue("dunia")))

	var output strings.Builder
	err := Run(
		[]byte(`
          atur salam = "halo " + argumen[0]
          tampilkan salam
        `),
		env,
		Config{Output: &output},
	)
	require.NoError(t, err)
	assert.Equal(t, "halo dunia\n", output.String())

	value, ok := env.Find("salam")
	require.True(t, ok)
	assert.Equal(t, interpreter.StringValue("halo dunia"), value)
}

func TestRuntimeRunErrors(t *testing.T) {

	t.Parallel()

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		output, err := runAndCollect(t, "tampilkan 1\natur = 2", Config{})
		RequireError(t, err)
		assert.Empty(t, output)

		var parseErr parser.Error
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("recursion limit", func(t *testing.T) {
		t.Parallel()

		code := "tampilkan " + strings.Repeat("(", 1001) + "1" + strings.Repeat(")", 1001)

		_, err := runAndCollect(t, code, Config{})
		RequireError(t, err)

		var limitErr parser.RecursionLimitExceededError
		require.ErrorAs(t, err, &limitErr)
	})

	t.Run("configured depth limit", func(t *testing.T) {
		t.Parallel()

		output, err := runAndCollect(
			t,
			"tampilkan ((((1))))",
			Config{ParserConfig: parser.Config{DepthLimit: 2}},
		)
		RequireError(t, err)
		assert.Empty(t, output)
	})

	t.Run("call stack limit", func(t *testing.T) {
		t.Parallel()

		output, err := runAndCollect(
			t,
			`
              fungsi f(n) {
                  jika (n <= 0) {
                      kembali 0
                  }
                  kembali n + f(n - 1)
              }
              tampilkan f(3)
            `,
			Config{},
		)
		RequireError(t, err)
		assert.Empty(t, output)

		var limitErr interpreter.CallStackLimitExceededError
		require.ErrorAs(t, err, &limitErr)
	})

	t.Run("runtime error stops execution", func(t *testing.T) {
		t.Parallel()

		location := common.StringLocation("test.is")

		output, err := runAndCollect(
			t,
			`
              tampilkan 1
              tampilkan y
              tampilkan 2
            `,
			Config{Location: location},
		)
		RequireError(t, err)
		assert.Equal(t, "1\n", output)

		var undefinedErr interpreter.UndefinedVariableError
		require.ErrorAs(t, err, &undefinedErr)

		var interpreterErr interpreter.Error
		require.ErrorAs(t, err, &interpreterErr)
		assert.Equal(t, location, interpreterErr.Location)
	})
}

func TestRuntimeTracing(t *testing.T) {

	t.Parallel()

	var operationNames []string

	output, err := runAndCollect(
		t,
		`
          fungsi f(a) {
              kembali a
          }
          tampilkan f(1)
        `,
		Config{
			OnRecordTrace: func(
				_ *interpreter.Interpreter,
				operationName string,
				_ time.Duration,
				_ []attribute.KeyValue,
			) {
				operationNames = append(operationNames, operationName)
			},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, "1\n", output)
	assert.Equal(t, []string{"function.f"}, operationNames)
}

func TestTraceWriter(t *testing.T) {

	t.Parallel()

	var output strings.Builder
	record := NewTraceWriter(&output)

	record(
		nil,
		"array.construct",
		2*time.Millisecond,
		[]attribute.KeyValue{attribute.Int("count", 3)},
	)

	assert.Equal(t, "trace: array.construct 2ms count=3\n", output.String())
}
