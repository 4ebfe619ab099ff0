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

package execute

import (
	"github.com/logrusorgru/aurora/v4"

	"github.com/rainerregan/IndoScript/interpreter"
)

func colorizeResult(value interpreter.Value) string {
	str := value.String()
	return aurora.Colorize(str, aurora.YellowFg|aurora.BrightFg).String()
}

func formatValue(value interpreter.Value, useColor bool) string {
	if value == nil {
		return ""
	}
	if !useColor {
		return value.String()
	}
	return colorizeResult(value)
}

func colorizeError(message string, useColor bool) string {
	if !useColor {
		return message
	}
	return aurora.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}

func colorizeMeta(message string, useColor bool) string {
	if !useColor {
		return message
	}
	return aurora.Colorize(message, aurora.BlueFg|aurora.BrightFg).String()
}
