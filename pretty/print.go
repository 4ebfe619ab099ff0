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

// Package pretty renders errors for display,
// including an excerpt of the offending source code.
package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rivo/uniseg"

	"github.com/rainerregan/IndoScript/ast"
	"github.com/rainerregan/IndoScript/common"
	"github.com/rainerregan/IndoScript/errors"
)

const ErrorPrefix = "error"

// HasPrefix is implemented by errors which are printed
// with a prefix other than ErrorPrefix, e.g. notes.
type HasPrefix interface {
	Prefix() string
}

func colorizeError(message string) string {
	return aurora.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}

func colorizeMessage(message string) string {
	return aurora.Colorize(message, aurora.BoldFm).String()
}

func colorizeMeta(message string) string {
	return aurora.Colorize(message, aurora.BlueFg|aurora.BrightFg|aurora.BoldFm).String()
}

// FormatErrorMessage returns the message with the given prefix, e.g. `error: <message>`
func FormatErrorMessage(prefix string, message string, useColor bool) string {
	if useColor {
		return colorizeError(prefix+": ") + colorizeMessage(message)
	}
	return prefix + ": " + message
}

type ErrorPrettyPrinter struct {
	writer   io.Writer
	useColor bool
}

func NewErrorPrettyPrinter(writer io.Writer, useColor bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer:   writer,
		useColor: useColor,
	}
}

func (p ErrorPrettyPrinter) writeString(str string) {
	_, err := p.writer.Write([]byte(str))
	if err != nil {
		panic(err)
	}
}

// PrettyPrintError writes the error and, if the error has a position,
// an excerpt of the code it refers to.
//
// The children of parent errors are printed individually.
// Errors which have a location are printed against the code of that location.
func (p ErrorPrettyPrinter) PrettyPrintError(
	err error,
	location common.Location,
	codes map[common.Location][]byte,
) (printErr error) {

	defer func() {
		if r := recover(); r != nil {
			switch r := r.(type) {
			case errors.InternalError:
				panic(r)
			case error:
				printErr = r
			default:
				printErr = fmt.Errorf("%v", r)
			}
		}
	}()

	printed := 0

	var printError func(err error, location common.Location)
	printError = func(err error, location common.Location) {
		if hasLocation, ok := err.(common.HasLocation); ok {
			importLocation := hasLocation.ImportLocation()
			if importLocation != nil {
				location = importLocation
			}
		}

		if parentError, ok := err.(errors.ParentError); ok {
			children := parentError.ChildErrors()
			if len(children) > 0 {
				for _, child := range children {
					printError(child, location)
				}
				return
			}
		}

		if printed > 0 {
			p.writeString("\n")
		}

		p.prettyPrintError(err, location, codes[location])
		printed++
	}

	printError(err, location)

	return nil
}

func (p ErrorPrettyPrinter) prettyPrintError(err error, location common.Location, code []byte) {

	prefix := ErrorPrefix
	if hasPrefix, ok := err.(HasPrefix); ok {
		prefix = hasPrefix.Prefix()
	}

	p.writeString(FormatErrorMessage(prefix, err.Error(), p.useColor))
	p.writeString("\n")

	positioned, ok := err.(ast.HasPosition)
	if !ok {
		return
	}

	var secondaryMessage string
	if secondaryError, ok := err.(errors.SecondaryError); ok {
		secondaryMessage = secondaryError.SecondaryError()
	}

	p.writeCodeExcerpt(
		location,
		code,
		positioned.StartPosition(),
		positioned.EndPosition(),
		secondaryMessage,
	)
}

func (p ErrorPrettyPrinter) writeCodeExcerpt(
	location common.Location,
	code []byte,
	startPos ast.Position,
	endPos ast.Position,
	message string,
) {
	lineNumberString := strconv.Itoa(startPos.Line)
	gutter := strings.Repeat(" ", len(lineNumberString))

	// header, e.g. ` --> test:1:7`

	var header string
	if location == nil {
		header = fmt.Sprintf("%d:%d", startPos.Line, startPos.Column)
	} else {
		header = fmt.Sprintf("%s:%d:%d", location, startPos.Line, startPos.Column)
	}
	p.writeString(gutter)
	p.writeString(p.meta("--> "))
	p.writeString(header)
	p.writeString("\n")

	lines := strings.Split(string(code), "\n")
	lineIndex := startPos.Line - 1
	if lineIndex < 0 || lineIndex >= len(lines) {
		return
	}

	line := []rune(strings.TrimSuffix(lines[lineIndex], "\r"))

	startColumn := startPos.Column
	if startColumn > len(line) {
		startColumn = len(line)
	}

	endColumn := len(line) - 1
	if endPos.Line == startPos.Line {
		endColumn = endPos.Column
	}
	if endColumn >= len(line) {
		endColumn = len(line) - 1
	}

	// empty line

	p.writeString(gutter)
	p.writeString(p.meta(" |"))
	p.writeString("\n")

	// source line

	p.writeString(p.meta(lineNumberString + " | "))
	p.writeString(string(line))
	p.writeString("\n")

	// indicator line, indented to the start column.
	// Tabs are preserved, so the indicator lines up with the source

	var indent strings.Builder
	for _, r := range line[:startColumn] {
		if r == '\t' {
			indent.WriteRune('\t')
		} else {
			indent.WriteString(strings.Repeat(" ", uniseg.StringWidth(string(r))))
		}
	}

	indicatorWidth := 1
	if endColumn >= startColumn {
		width := uniseg.StringWidth(string(line[startColumn : endColumn+1]))
		if width > indicatorWidth {
			indicatorWidth = width
		}
	}

	indicator := strings.Repeat("^", indicatorWidth)
	if message != "" {
		indicator += " " + message
	}

	p.writeString(gutter)
	p.writeString(p.meta(" | "))
	p.writeString(indent.String())
	p.writeString(p.indicator(indicator))
	p.writeString("\n")
}

func (p ErrorPrettyPrinter) meta(s string) string {
	if !p.useColor {
		return s
	}
	return colorizeMeta(s)
}

func (p ErrorPrettyPrinter) indicator(s string) string {
	if !p.useColor {
		return s
	}
	return colorizeError(s)
}
