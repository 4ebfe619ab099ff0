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
	"github.com/rainerregan/IndoScript/common"
	"github.com/rainerregan/IndoScript/interpreter"
	"github.com/rainerregan/IndoScript/parser"
)

type REPLErrorFunc func(err error, location common.Location, codes map[common.Location][]byte)

type REPLResultFunc func(value interpreter.Value)

// REPL executes the input of an interactive session.
// All inputs of a session share one environment.
type REPL struct {
	config      Config
	inter       *interpreter.Interpreter
	environment *interpreter.Environment
	onError     REPLErrorFunc
	onResult    REPLResultFunc
}

func NewREPL(onError REPLErrorFunc, onResult REPLResultFunc, config Config) (*REPL, error) {
	if config.Location == nil {
		config.Location = common.REPLLocation{}
	}

	inter, err := interpreter.NewInterpreter(
		nil,
		config.Location,
		config.interpreterConfig(),
	)
	if err != nil {
		return nil, err
	}

	return &REPL{
		config:      config,
		inter:       inter,
		environment: interpreter.NewEnvironment(),
		onError:     onError,
		onResult:    onResult,
	}, nil
}

func (r *REPL) Environment() *interpreter.Environment {
	return r.environment
}

func (r *REPL) reportError(err error, code []byte) {
	if r.onError == nil {
		return
	}
	location := r.config.Location
	r.onError(err, location, map[common.Location][]byte{location: code})
}

// Accept parses and executes the given input.
//
// If the input is incomplete, e.g. a block is not closed yet,
// nothing is executed, and inputIsComplete is false.
// The caller should append more input and try again.
//
// The non-null value of a trailing expression statement is passed to onResult.
func (r *REPL) Accept(code []byte) (inputIsComplete bool) {
	program, inputIsComplete, err := parser.ParseReplInput(code, r.config.ParserConfig)
	if !inputIsComplete {
		return false
	}

	if err != nil {
		r.reportError(err, code)
		return true
	}

	statements := program.Statements
	for i, statement := range statements {
		result, err := r.inter.ExecuteStatement(statement, r.environment)
		if err != nil {
			r.reportError(err, code)
			return true
		}

		if i != len(statements)-1 || result == nil || r.onResult == nil {
			continue
		}
		if _, isNull := result.(interpreter.NullValue); isNull {
			continue
		}
		r.onResult(result)
	}

	return true
}

type REPLSuggestion struct {
	Name        string
	Description string
}

const keywordDescription = "kata kunci"

var suggestionDescriber = interpreter.EmptyVisitor[string]{
	FunctionValueVisitor: func(value *interpreter.FunctionValue) string {
		return value.String()
	},
}

// Suggestions returns the names defined in the session, sorted,
// followed by the keywords.
func (r *REPL) Suggestions() []REPLSuggestion {
	suggestions := make([]REPLSuggestion, 0, r.environment.Len()+len(parser.AllKeywords))

	r.environment.ForEach(func(name string, value interpreter.Value) {
		description := interpreter.AcceptValue[string](value, suggestionDescriber)
		if description == "" {
			description = value.TypeName()
		}
		suggestions = append(suggestions, REPLSuggestion{
			Name:        name,
			Description: description,
		})
	})

	for _, keyword := range parser.AllKeywords {
		suggestions = append(suggestions, REPLSuggestion{
			Name:        keyword,
			Description: keywordDescription,
		})
	}

	return suggestions
}
