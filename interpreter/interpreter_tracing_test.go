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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/rainerregan/IndoScript/interpreter"
	"github.com/rainerregan/IndoScript/parser"
	. "github.com/rainerregan/IndoScript/test_utils/common_utils"
)

type trace struct {
	operationName string
	attrs         []attribute.KeyValue
}

func interpretWithTracing(t *testing.T, code string) []trace {
	program, err := parser.ParseProgram([]byte(code), parser.Config{})
	require.NoError(t, err)

	var traces []trace

	inter, err := interpreter.NewInterpreter(
		program,
		TestLocation,
		&interpreter.Config{
			TracingEnabled: true,
			OnRecordTrace: func(
				_ *interpreter.Interpreter,
				operationName string,
				_ time.Duration,
				attrs []attribute.KeyValue,
			) {
				traces = append(traces, trace{
					operationName: operationName,
					attrs:         attrs,
				})
			},
		},
	)
	require.NoError(t, err)

	err = inter.Interpret(nil)
	require.NoError(t, err)

	return traces
}

func TestInterpreterTracing(t *testing.T) {

	t.Parallel()

	t.Run("function tracing", func(t *testing.T) {

		t.Parallel()

		traces := interpretWithTracing(t, `
          fungsi f(a) {
              kembali a
          }
          f(1, 2)
        `)

		require.Len(t, traces, 1)
		assert.Equal(t, "function.f", traces[0].operationName)
		assert.Equal(t,
			[]attribute.KeyValue{attribute.Int("arguments", 2)},
			traces[0].attrs,
		)
	})

	t.Run("array tracing", func(t *testing.T) {

		t.Parallel()

		traces := interpretWithTracing(t, `
          atur a = [1, 2, 3]
          a = a.tambah(4)
        `)

		require.Len(t, traces, 2)

		assert.Equal(t, "array.construct", traces[0].operationName)
		assert.Equal(t,
			[]attribute.KeyValue{attribute.Int("count", 3)},
			traces[0].attrs,
		)

		assert.Equal(t, "array.append", traces[1].operationName)
		assert.Equal(t,
			[]attribute.KeyValue{attribute.Int("count", 1)},
			traces[1].attrs,
		)
	})

	t.Run("loop tracing", func(t *testing.T) {

		t.Parallel()

		traces := interpretWithTracing(t, `
          atur i = 0
          selama (i < 2) {
              i = i + 1
          }
          untuk (;salah;) {}
          untuk_setiap (x dalam []) {}
        `)

		operationNames := make([]string, len(traces))
		for i, trace := range traces {
			operationNames[i] = trace.operationName
		}

		assert.Equal(t,
			[]string{
				"loop.while",
				"loop.for",
				"array.construct",
				"loop.forEach",
			},
			operationNames,
		)

		assert.Equal(t,
			[]attribute.KeyValue{attribute.Int("iterations", 2)},
			traces[0].attrs,
		)
	})
}
