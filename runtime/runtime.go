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

// Package runtime runs IndoScript programs: it lexes, parses, and interprets
// source code, and optionally collects coverage, profiling, and trace information.
package runtime

import (
	"fmt"
	"io"
	"os"

	"github.com/rainerregan/IndoScript/ast"
	"github.com/rainerregan/IndoScript/common"
	"github.com/rainerregan/IndoScript/interpreter"
	"github.com/rainerregan/IndoScript/parser"
)

type Config struct {
	// Output receives the textual form of each printed value, followed by a newline.
	// If nil, os.Stdout is used
	Output io.Writer
	// Location is the location of the program, used in error messages,
	// coverage reports, and profiles
	Location common.Location
	// ParserConfig configures the parser, e.g. its depth limit
	ParserConfig parser.Config
	// CoverageReport, if set, collects the lines of executed statements
	CoverageReport *CoverageReport
	// ComputationProfile, if set, collects a statement count per call stack
	ComputationProfile *ComputationProfile
	// OnRecordTrace, if set, enables tracing and receives each trace
	OnRecordTrace interpreter.OnRecordTraceFunc
}

func (c Config) output() io.Writer {
	if c.Output == nil {
		return os.Stdout
	}
	return c.Output
}

func (c Config) interpreterConfig() *interpreter.Config {
	output := c.output()

	config := &interpreter.Config{
		OnPrint: func(_ *interpreter.Interpreter, value interpreter.Value) {
			_, err := fmt.Fprintln(output, value.String())
			if err != nil {
				panic(err)
			}
		},
		OnRecordTrace:  c.OnRecordTrace,
		TracingEnabled: c.OnRecordTrace != nil,
	}

	var onStatementHandlers []interpreter.OnStatementFunc
	if c.CoverageReport != nil {
		onStatementHandlers = append(onStatementHandlers, c.CoverageReport.newOnStatementHandler())
	}
	if c.ComputationProfile != nil {
		onStatementHandlers = append(onStatementHandlers, c.ComputationProfile.newOnStatementHandler())
	}

	switch {
	case len(onStatementHandlers) == 1:
		config.OnStatement = onStatementHandlers[0]
	case len(onStatementHandlers) > 1:
		config.OnStatement = func(inter *interpreter.Interpreter, statement ast.Statement) {
			for _, handler := range onStatementHandlers {
				handler(inter, statement)
			}
		}
	}

	return config
}

// Run lexes, parses, and interprets the given code.
//
// Top-level bindings are made in the given environment.
// If the environment is nil, a new environment is used.
// Execution stops at the first error.
func Run(code []byte, env *interpreter.Environment, config Config) error {
	program, err := parser.ParseProgram(code, config.ParserConfig)
	if err != nil {
		return err
	}

	inter, err := interpreter.NewInterpreter(
		program,
		config.Location,
		config.interpreterConfig(),
	)
	if err != nil {
		return err
	}

	return inter.Interpret(env)
}
