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
	"fmt"
	"io"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/rainerregan/IndoScript/interpreter"
)

// NewTraceWriter returns a trace recorder which writes one line per trace, e.g.
//
//	trace: function.faktorial 12µs arguments=1
func NewTraceWriter(writer io.Writer) interpreter.OnRecordTraceFunc {
	return func(
		_ *interpreter.Interpreter,
		operationName string,
		duration time.Duration,
		attrs []attribute.KeyValue,
	) {
		_, err := io.WriteString(writer, FormatTrace(operationName, duration, attrs)+"\n")
		if err != nil {
			panic(err)
		}
	}
}

func FormatTrace(operationName string, duration time.Duration, attrs []attribute.KeyValue) string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "trace: %s %s", operationName, duration)
	for _, attr := range attrs {
		_, _ = fmt.Fprintf(&sb, " %s=%s", attr.Key, attr.Value.Emit())
	}
	return sb.String()
}
