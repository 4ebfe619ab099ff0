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
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/rainerregan/IndoScript/ast"
	"github.com/rainerregan/IndoScript/common"
	"github.com/rainerregan/IndoScript/interpreter"
)

// LocationCoverage records coverage information for a location.
type LocationCoverage struct {
	// LineHits contains the hit count for each line.
	// A hit count of 0 means the line was not covered.
	LineHits map[int]int
	// StatementLines are the lines which contain at least one statement.
	StatementLines *bitset.BitSet
	// CoveredStatementLines are the statement lines which were executed.
	CoveredStatementLines *bitset.BitSet
}

// NewLocationCoverage creates and returns a *LocationCoverage
// for the given statement lines.
func NewLocationCoverage(statementLines []int) *LocationCoverage {
	coverage := &LocationCoverage{
		LineHits:              map[int]int{},
		StatementLines:        bitset.New(0),
		CoveredStatementLines: bitset.New(0),
	}
	for _, line := range statementLines {
		if line < 1 {
			continue
		}
		coverage.StatementLines.Set(uint(line))
		coverage.LineHits[line] = 0
	}
	return coverage
}

// AddLineHit increments the hit count for the given line.
func (c *LocationCoverage) AddLineHit(line int) {
	// Lines below 1 are dropped.
	if line < 1 {
		return
	}
	c.LineHits[line]++

	if c.StatementLines.Test(uint(line)) {
		c.CoveredStatementLines.Set(uint(line))
	}
}

// Statements returns the number of lines with statements.
func (c *LocationCoverage) Statements() int {
	return int(c.StatementLines.Count())
}

// CoveredLines returns the count of statement lines which were hit.
func (c *LocationCoverage) CoveredLines() int {
	return int(c.CoveredStatementLines.Count())
}

// MissedLines returns the statement lines which were not hit, in ascending order.
func (c *LocationCoverage) MissedLines() []int {
	missed := c.StatementLines.Difference(c.CoveredStatementLines)

	missedLines := make([]int, 0, missed.Count())
	for line, ok := missed.NextSet(0); ok; line, ok = missed.NextSet(line + 1) {
		missedLines = append(missedLines, int(line))
	}
	return missedLines
}

// Percentage returns the ratio of covered statement lines over all statement lines.
func (c *LocationCoverage) Percentage() string {
	return formatPercentage(c.CoveredLines(), c.Statements())
}

func formatPercentage(covered, total int) string {
	var percentage float64 = 100
	if total != 0 {
		percentage = 100 * float64(covered) / float64(total)
	}
	return fmt.Sprintf("%0.1f%%", percentage)
}

type LocationFilter func(location common.Location) bool

// CoverageReport collects coverage information per location.
// It keeps track of inspected locations, and can also exclude
// locations from coverage collection.
type CoverageReport struct {
	// Contains a *LocationCoverage per location.
	Coverage map[common.Location]*LocationCoverage
	// Contains locations excluded from coverage collection.
	ExcludedLocations map[common.Location]struct{}
	// This filter can be used to inject custom logic on
	// each location/program inspection.
	LocationFilter LocationFilter
}

// NewCoverageReport creates and returns a *CoverageReport.
func NewCoverageReport() *CoverageReport {
	return &CoverageReport{
		Coverage:          map[common.Location]*LocationCoverage{},
		ExcludedLocations: map[common.Location]struct{}{},
	}
}

func (r *CoverageReport) WithLocationFilter(locationFilter LocationFilter) {
	r.LocationFilter = locationFilter
}

func (r *CoverageReport) ExcludeLocation(location common.Location) {
	r.ExcludedLocations[location] = struct{}{}
}

func (r *CoverageReport) IsLocationExcluded(location common.Location) bool {
	_, ok := r.ExcludedLocations[location]
	return ok
}

func (r *CoverageReport) IsLocationInspected(location common.Location) bool {
	_, ok := r.Coverage[location]
	return ok
}

// InspectProgram records the lines of all statements of the program,
// including the statements in function bodies.
//
// Programs without a location, of excluded locations,
// and of locations rejected by the location filter are ignored.
func (r *CoverageReport) InspectProgram(location common.Location, program *ast.Program) {
	if location == nil || program == nil {
		return
	}
	if r.LocationFilter != nil && !r.LocationFilter(location) {
		return
	}
	if r.IsLocationExcluded(location) || r.IsLocationInspected(location) {
		return
	}

	var statementLines []int
	ast.Inspect(program, func(element ast.Element) bool {
		if statement, ok := element.(ast.Statement); ok {
			statementLines = append(statementLines, statement.StartPosition().Line)
		}
		return true
	})

	r.Coverage[location] = NewLocationCoverage(statementLines)
}

// AddLineHit increments the hit count for the given line of the given location.
// Hits for excluded or not yet inspected locations are ignored.
func (r *CoverageReport) AddLineHit(location common.Location, line int) {
	if r.IsLocationExcluded(location) {
		return
	}

	locationCoverage, ok := r.Coverage[location]
	if !ok {
		return
	}
	locationCoverage.AddLineHit(line)
}

func (r *CoverageReport) newOnStatementHandler() interpreter.OnStatementFunc {
	return func(inter *interpreter.Interpreter, statement ast.Statement) {
		location := inter.Location
		r.InspectProgram(location, inter.Program)
		r.AddLineHit(location, statement.StartPosition().Line)
	}
}

// Statements returns the total count of statement lines of all locations.
func (r *CoverageReport) Statements() int {
	total := 0
	for _, locationCoverage := range r.Coverage { // nolint:maprange
		total += locationCoverage.Statements()
	}
	return total
}

// Hits returns the total count of covered statement lines of all locations.
func (r *CoverageReport) Hits() int {
	total := 0
	for _, locationCoverage := range r.Coverage { // nolint:maprange
		total += locationCoverage.CoveredLines()
	}
	return total
}

func (r *CoverageReport) Misses() int {
	return r.Statements() - r.Hits()
}

func (r *CoverageReport) Percentage() string {
	return formatPercentage(r.Hits(), r.Statements())
}

func (r *CoverageReport) String() string {
	if r.Statements() == 0 {
		return "There are no statements to cover"
	}
	return fmt.Sprintf("Coverage: %v of statements", r.Percentage())
}

// Reset flushes the collected coverage information.
// Excluded locations remain intact.
func (r *CoverageReport) Reset() {
	clear(r.Coverage)
}

// CoverageReportSummary contains the key metrics of a CoverageReport.
type CoverageReportSummary struct {
	Locations  int    `json:"locations"`
	Statements int    `json:"statements"`
	Hits       int    `json:"hits"`
	Misses     int    `json:"misses"`
	Coverage   string `json:"coverage"`
}

func (r *CoverageReport) Summary() CoverageReportSummary {
	return CoverageReportSummary{
		Locations:  len(r.Coverage),
		Statements: r.Statements(),
		Hits:       r.Hits(),
		Misses:     r.Misses(),
		Coverage:   r.Percentage(),
	}
}

// sortedLocations returns the inspected locations, ordered by ID
func (r *CoverageReport) sortedLocations() []common.Location {
	locations := make([]common.Location, 0, len(r.Coverage))
	for location := range r.Coverage { // nolint:maprange
		locations = append(locations, location)
	}
	slices.SortFunc(locations, func(a, b common.Location) int {
		return strings.Compare(string(a.ID()), string(b.ID()))
	})
	return locations
}

type locationCoverageJSON struct {
	LineHits    map[int]int `json:"line_hits"`
	MissedLines []int       `json:"missed_lines"`
	Statements  int         `json:"statements"`
	Percentage  string      `json:"percentage"`
}

// MarshalJSON serializes the coverage of each location, keyed by location ID,
// and the IDs of the excluded locations.
func (r *CoverageReport) MarshalJSON() ([]byte, error) {
	coverage := make(map[common.LocationID]locationCoverageJSON, len(r.Coverage))
	for location, locationCoverage := range r.Coverage { // nolint:maprange
		coverage[location.ID()] = locationCoverageJSON{
			LineHits:    locationCoverage.LineHits,
			MissedLines: locationCoverage.MissedLines(),
			Statements:  locationCoverage.Statements(),
			Percentage:  locationCoverage.Percentage(),
		}
	}

	excludedLocationIDs := make([]common.LocationID, 0, len(r.ExcludedLocations))
	for location := range r.ExcludedLocations { // nolint:maprange
		excludedLocationIDs = append(excludedLocationIDs, location.ID())
	}
	slices.Sort(excludedLocationIDs)

	return json.Marshal(&struct {
		Coverage          map[common.LocationID]locationCoverageJSON `json:"coverage"`
		ExcludedLocations []common.LocationID                        `json:"excluded_locations"`
	}{
		Coverage:          coverage,
		ExcludedLocations: excludedLocationIDs,
	})
}

// MarshalLCOV serializes the line coverage of each location to the LCOV format.
func (r *CoverageReport) MarshalLCOV() ([]byte, error) {
	buf := new(bytes.Buffer)
	for _, location := range r.sortedLocations() {
		coverage := r.Coverage[location]

		_, err := fmt.Fprintf(buf, "TN:\nSF:%s\n", location)
		if err != nil {
			return nil, err
		}

		statementLines := coverage.StatementLines
		for line, ok := statementLines.NextSet(0); ok; line, ok = statementLines.NextSet(line + 1) {
			_, err = fmt.Fprintf(buf, "DA:%d,%d\n", line, coverage.LineHits[int(line)])
			if err != nil {
				return nil, err
			}
		}

		_, err = fmt.Fprintf(
			buf,
			"LF:%d\nLH:%d\nend_of_record\n",
			coverage.Statements(),
			coverage.CoveredLines(),
		)
		if err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}
