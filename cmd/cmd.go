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

// Package cmd contains the functionality shared by the command-line tools.
package cmd

import (
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/rainerregan/IndoScript/ast"
	"github.com/rainerregan/IndoScript/common"
	"github.com/rainerregan/IndoScript/parser"
	"github.com/rainerregan/IndoScript/pretty"
)

// SourceFileExtension is the extension of IndoScript source files.
const SourceFileExtension = ".is"

const UsageMessage = "Gunakan: indo <file>" + SourceFileExtension

// ErrNotASourceFile is returned for a path without the source file extension.
var ErrNotASourceFile = goerrors.New(UsageMessage)

// ReadFileError is returned when a source file cannot be read.
type ReadFileError struct {
	Err error
}

func (e ReadFileError) Error() string {
	return fmt.Sprintf("Gagal membaca file: %s", e.Err)
}

func (e ReadFileError) Unwrap() error {
	return e.Err
}

// DecodeSource converts source code to UTF-8.
// A UTF-16 byte order mark selects UTF-16, otherwise the source is UTF-8.
// A UTF-8 byte order mark is removed.
func DecodeSource(data []byte) ([]byte, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

// ReadSourceFile reads and decodes the given IndoScript source file.
func ReadSourceFile(path string) ([]byte, error) {
	if !strings.HasSuffix(path, SourceFileExtension) {
		return nil, ErrNotASourceFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError{Err: err}
	}

	code, err := DecodeSource(data)
	if err != nil {
		return nil, ReadFileError{Err: err}
	}

	return code, nil
}

// PrintError pretty prints the error, including an excerpt of the code it refers to.
func PrintError(
	writer io.Writer,
	err error,
	location common.Location,
	codes map[common.Location][]byte,
	useColor bool,
) {
	printErr := pretty.NewErrorPrettyPrinter(writer, useColor).
		PrettyPrintError(err, location, codes)
	if printErr != nil {
		panic(printErr)
	}
}

// PrepareProgramFromFile reads and parses the given source file.
// The source code is added to codes, for error reporting.
func PrepareProgramFromFile(
	location common.StringLocation,
	codes map[common.Location][]byte,
	config parser.Config,
) (*ast.Program, error) {
	code, err := ReadSourceFile(string(location))
	if err != nil {
		return nil, err
	}
	codes[location] = code

	return parser.ParseProgram(code, config)
}
