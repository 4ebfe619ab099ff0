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
	"time"

	"go.opentelemetry.io/otel/attribute"
)

const (
	// common
	tracingFunctionPrefix = "function."

	// type prefixes
	tracingArrayPrefix = "array."
	tracingLoopPrefix  = "loop."

	// operation postfixes
	tracingConstructPostfix = "construct"
	tracingAppendPostfix    = "append"
	tracingWhilePostfix     = "while"
	tracingForPostfix       = "for"
	tracingForEachPostfix   = "forEach"
)

func (interpreter *Interpreter) tracingEnabled() bool {
	return interpreter.Config.TracingEnabled &&
		interpreter.Config.OnRecordTrace != nil
}

func (interpreter *Interpreter) reportFunctionTrace(
	functionName string,
	argumentCount int,
	duration time.Duration,
) {
	interpreter.Config.OnRecordTrace(
		interpreter,
		tracingFunctionPrefix+functionName,
		duration,
		[]attribute.KeyValue{
			attribute.Int("arguments", argumentCount),
		},
	)
}

func prepareArrayValueTraceAttrs(count int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("count", count),
	}
}

func (interpreter *Interpreter) reportArrayValueConstructTrace(
	count int,
	duration time.Duration,
) {
	interpreter.Config.OnRecordTrace(
		interpreter,
		tracingArrayPrefix+tracingConstructPostfix,
		duration,
		prepareArrayValueTraceAttrs(count),
	)
}

func (interpreter *Interpreter) reportArrayValueAppendTrace(
	count int,
	duration time.Duration,
) {
	interpreter.Config.OnRecordTrace(
		interpreter,
		tracingArrayPrefix+tracingAppendPostfix,
		duration,
		prepareArrayValueTraceAttrs(count),
	)
}

func (interpreter *Interpreter) reportLoopTrace(
	kind string,
	iterations int,
	duration time.Duration,
) {
	interpreter.Config.OnRecordTrace(
		interpreter,
		tracingLoopPrefix+kind,
		duration,
		[]attribute.KeyValue{
			attribute.Int("iterations", iterations),
		},
	)
}
