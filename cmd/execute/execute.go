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

// Package execute runs IndoScript programs and interactive sessions
// for the command-line tool.
package execute

import (
	"fmt"
	"io"
	"os"

	"github.com/rainerregan/IndoScript/argparser"
	"github.com/rainerregan/IndoScript/cmd"
	"github.com/rainerregan/IndoScript/common"
	"github.com/rainerregan/IndoScript/interpreter"
	"github.com/rainerregan/IndoScript/runtime"
)

// ArgumentsVariableName is the variable the script arguments are bound to.
const ArgumentsVariableName = "argumen"

type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

func DefaultStreams() Streams {
	return Streams{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Execute runs the program in the given file, and returns the exit code.
// The arguments are parsed as literals and bound to `argumen`.
func Execute(path string, arguments []string, settings runtime.Settings, streams Streams) int {
	code, err := cmd.ReadSourceFile(path)
	if err != nil {
		_, _ = fmt.Fprintln(streams.Stderr, colorizeError(err.Error(), settings.Color))
		return 1
	}

	location := common.StringLocation(path)
	codes := map[common.Location][]byte{
		location: code,
	}

	values, err := argparser.ParseArguments(arguments)
	if err != nil {
		_, _ = fmt.Fprintln(streams.Stderr, colorizeError(err.Error(), settings.Color))
		return 1
	}

	env := interpreter.NewEnvironment()
	env.Set(ArgumentsVariableName, interpreter.NewArrayValue(values...))

	config := runtime.Config{
		Output:       streams.Stdout,
		Location:     location,
		ParserConfig: settings.ParserConfig(),
	}

	if settings.Trace {
		config.OnRecordTrace = runtime.NewTraceWriter(streams.Stderr)
	}

	var coverageReport *runtime.CoverageReport
	if settings.Coverage {
		coverageReport = runtime.NewCoverageReport()
		config.CoverageReport = coverageReport
	}

	var profile *runtime.ComputationProfile
	if settings.Profile != "" {
		profile = runtime.NewComputationProfile()
		config.ComputationProfile = profile
	}

	exitCode := 0

	err = runtime.Run(code, env, config)
	if err != nil {
		cmd.PrintError(streams.Stderr, err, location, codes, settings.Color)
		exitCode = 1
	}

	if coverageReport != nil {
		_, _ = fmt.Fprintln(streams.Stderr, colorizeMeta(coverageReport.String(), settings.Color))
	}

	if profile != nil {
		err = writeProfile(profile, settings.Profile)
		if err != nil {
			_, _ = fmt.Fprintln(streams.Stderr, colorizeError(err.Error(), settings.Color))
			exitCode = 1
		}
	}

	return exitCode
}

func writeProfile(profile *runtime.ComputationProfile, path string) error {
	exported, err := runtime.NewPProfExporter(profile).Export()
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	err = exported.Write(file)
	if err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
