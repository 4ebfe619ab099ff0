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

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
	"github.com/k0kubun/pp/v3"
	"github.com/tidwall/pretty"

	"github.com/rainerregan/IndoScript/ast"
	"github.com/rainerregan/IndoScript/cmd"
	"github.com/rainerregan/IndoScript/cmd/execute"
	"github.com/rainerregan/IndoScript/common"
	"github.com/rainerregan/IndoScript/parser/lexer"
	"github.com/rainerregan/IndoScript/runtime"
)

type tokenDump struct {
	Type  string
	Value any
	Start string
	End   string
}

func dumpTokens(path string, settings runtime.Settings, streams execute.Streams) int {
	code, err := cmd.ReadSourceFile(path)
	if err != nil {
		_, _ = fmt.Fprintln(streams.Stderr, err)
		return 1
	}

	tokens := lexer.Lex(code)
	defer tokens.Reclaim()

	var dumps []tokenDump
	for {
		token := tokens.Next()
		if token.Is(lexer.TokenEOF) {
			break
		}
		dumps = append(dumps, tokenDump{
			Type:  token.Type.String(),
			Value: token.Value,
			Start: token.StartPos.String(),
			End:   token.EndPos.String(),
		})
	}

	printer := pp.New()
	printer.SetOutput(streams.Stdout)
	printer.SetColoringEnabled(settings.Color)

	_, err = printer.Println(dumps)
	if err != nil {
		_, _ = fmt.Fprintln(streams.Stderr, err)
		return 1
	}
	return 0
}

func parseFile(path string, settings runtime.Settings, streams execute.Streams) (*ast.Program, bool) {
	location := common.StringLocation(path)
	codes := map[common.Location][]byte{}

	program, err := cmd.PrepareProgramFromFile(location, codes, settings.ParserConfig())
	if err != nil {
		if _, ok := codes[location]; !ok {
			_, _ = fmt.Fprintln(streams.Stderr, err)
		} else {
			cmd.PrintError(streams.Stderr, err, location, codes, settings.Color)
		}
		return nil, false
	}

	return program, true
}

func dumpAST(args []string, settings runtime.Settings, streams execute.Streams) int {
	flags := flag.NewFlagSet("ast", flag.ContinueOnError)
	flags.SetOutput(streams.Stderr)
	query := flags.String("query", "", "jq query applied to the JSON of the AST")

	err := flags.Parse(args)
	if err != nil || flags.NArg() != 1 {
		return usageError(streams.Stderr)
	}

	program, ok := parseFile(flags.Arg(0), settings, streams)
	if !ok {
		return 1
	}

	data, err := json.Marshal(program)
	if err != nil {
		_, _ = fmt.Fprintln(streams.Stderr, err)
		return 1
	}

	if *query == "" {
		writeJSON(streams.Stdout, data, settings.Color)
		return 0
	}

	results, err := runQuery(*query, data)
	if err != nil {
		_, _ = fmt.Fprintln(streams.Stderr, err)
		return 1
	}
	for _, result := range results {
		writeJSON(streams.Stdout, result, settings.Color)
	}
	return 0
}

// runQuery applies the jq query to the given JSON document,
// and returns each result as JSON.
func runQuery(source string, data []byte) ([][]byte, error) {
	query, err := gojq.Parse(source)
	if err != nil {
		return nil, err
	}

	var input any
	err = json.Unmarshal(data, &input)
	if err != nil {
		return nil, err
	}

	var results [][]byte

	iter := query.Run(input)
	for {
		value, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := value.(error); ok {
			return nil, err
		}

		result, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func writeJSON(writer io.Writer, data []byte, useColor bool) {
	formatted := pretty.Pretty(data)
	if useColor {
		formatted = pretty.Color(formatted, nil)
	}
	_, _ = writer.Write(formatted)
}

func format(path string, settings runtime.Settings, streams execute.Streams) int {
	program, ok := parseFile(path, settings, streams)
	if !ok {
		return 1
	}

	_, _ = fmt.Fprintln(streams.Stdout, program.String())
	return 0
}
