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
	"strings"

	"github.com/rainerregan/IndoScript/ast"
	"github.com/rainerregan/IndoScript/common"
	"github.com/rainerregan/IndoScript/interpreter"
)

// ProgramFunctionName is the name of the function which
// the top-level statements of a program are attributed to.
const ProgramFunctionName = "<program>"

type profiledFunction struct {
	location  common.Location
	name      string
	startLine int
	endLine   int
}

func (f profiledFunction) containsLine(line int) bool {
	return f.startLine <= line && line <= f.endLine
}

// ComputationProfile collects computation profiling information per location.
// One unit of computation is recorded for each executed statement,
// and attributed to the call stack at the time the statement is executed.
//
// A profile is not safe for concurrent use.
type ComputationProfile struct {
	locationFunctions map[common.Location][]profiledFunction
	stackTraceUsages  map[string]stackTraceUsage
	locationMappings  map[string]string
}

func NewComputationProfile() *ComputationProfile {
	return &ComputationProfile{
		locationFunctions: make(map[common.Location][]profiledFunction),
		stackTraceUsages:  make(map[string]stackTraceUsage),
	}
}

// WithLocationMappings sets the source paths of locations,
// keyed by location ID.
func (p *ComputationProfile) WithLocationMappings(locationMappings map[string]string) {
	p.locationMappings = locationMappings
}

type LocationLine struct {
	Location common.Location
	Line     int
}

type profileStackTrace []LocationLine

type stackTraceUsage struct {
	computation uint64
	stackTrace  profileStackTrace
}

func (s profileStackTrace) aggregateKey() string {
	var sb strings.Builder
	for i, locationLine := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		var locationID common.LocationID
		if locationLine.Location != nil {
			locationID = locationLine.Location.ID()
		}
		_, _ = fmt.Fprintf(&sb, "%s:%d", locationID, locationLine.Line)
	}
	return sb.String()
}

// InspectProgram records the functions of the program, including nested functions.
// The top-level statements are attributed to ProgramFunctionName.
func (p *ComputationProfile) InspectProgram(location common.Location, program *ast.Program) {
	if location == nil || program == nil {
		return
	}
	if _, ok := p.locationFunctions[location]; ok {
		return
	}

	functions := []profiledFunction{
		{
			location:  location,
			name:      ProgramFunctionName,
			startLine: 1,
			endLine:   max(program.EndPosition().Line, 1),
		},
	}

	ast.Inspect(program, func(element ast.Element) bool {
		declaration, ok := element.(*ast.FunctionDeclaration)
		if ok {
			functions = append(functions, profiledFunction{
				location:  location,
				name:      declaration.Identifier.Identifier,
				startLine: declaration.StartPosition().Line,
				endLine:   declaration.EndPosition().Line,
			})
		}
		return true
	})

	p.locationFunctions[location] = functions
}

// functionAtLine returns the innermost function containing the given line.
func (p *ComputationProfile) functionAtLine(locationLine LocationLine) (result profiledFunction, ok bool) {
	for _, function := range p.locationFunctions[locationLine.Location] {
		if !function.containsLine(locationLine.Line) {
			continue
		}
		// functions are recorded in source order,
		// so a later containing function is nested in an earlier one
		result = function
		ok = true
	}
	return
}

func (p *ComputationProfile) sourcePathForLocation(location common.Location) string {
	if mapped, ok := p.locationMappings[string(location.ID())]; ok {
		return mapped
	}
	return location.String()
}

func (p *ComputationProfile) recordComputation(stackTrace profileStackTrace, computation uint64) {
	aggregateKey := stackTrace.aggregateKey()
	usage := p.stackTraceUsages[aggregateKey]
	usage.stackTrace = stackTrace
	usage.computation += computation
	p.stackTraceUsages[aggregateKey] = usage
}

// TotalComputation returns the computation recorded for all stack traces.
func (p *ComputationProfile) TotalComputation() uint64 {
	var total uint64
	for _, usage := range p.stackTraceUsages { // nolint:maprange
		total += usage.computation
	}
	return total
}

func (p *ComputationProfile) newOnStatementHandler() interpreter.OnStatementFunc {
	return func(inter *interpreter.Interpreter, statement ast.Statement) {
		location := inter.Location

		p.InspectProgram(location, inter.Program)

		var stackTrace profileStackTrace

		for _, invocation := range inter.CallStack() {
			locationRange := invocation.LocationRange
			stackTrace = append(
				stackTrace,
				LocationLine{
					Location: locationRange.Location,
					Line:     locationRange.StartPosition().Line,
				},
			)
		}

		stackTrace = append(
			stackTrace,
			LocationLine{
				Location: location,
				Line:     statement.StartPosition().Line,
			},
		)

		p.recordComputation(stackTrace, 1)
	}
}
