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

// Command indo runs IndoScript programs, starts an interactive session,
// and inspects and formats source files.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rainerregan/IndoScript/cmd"
	"github.com/rainerregan/IndoScript/cmd/execute"
	"github.com/rainerregan/IndoScript/runtime"
)

// Version is set at build time
var Version = "dev"

const usage = `Gunakan: indo [flags] <perintah> [argumen]

Perintah:
  run <file>.is [argumen...]   jalankan program
  repl                         mulai sesi interaktif (bawaan)
  tokens <file>.is             tampilkan token program
  ast [-query JQ] <file>.is    tampilkan AST program sebagai JSON
  fmt <file>.is                tampilkan program yang telah dirapikan
  version                      tampilkan versi

Flags:
`

var configFlag = flag.String("config", "", "path of the YAML settings file (default: "+runtime.DefaultSettingsFile+" if present)")
var colorFlag = flag.Bool("color", true, "colorize the output")
var traceFlag = flag.Bool("trace", false, "print traces of function calls, array operations, and loops")
var coverageFlag = flag.Bool("coverage", false, "print the statement coverage")
var profileFlag = flag.String("profile", "", "write a pprof profile to the given file")
var depthLimitFlag = flag.Int("depth-limit", 0, "maximum nesting depth of expressions and blocks")

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	settings, err := loadSettings()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(run(flag.Args(), settings, execute.DefaultStreams()))
}

// loadSettings loads the settings file, and applies the flags which were set.
func loadSettings() (runtime.Settings, error) {
	path := *configFlag
	optional := path == ""
	if optional {
		path = runtime.DefaultSettingsFile
	}

	settings, err := runtime.LoadSettings(path, optional)
	if err != nil {
		return runtime.Settings{}, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "color":
			settings.Color = *colorFlag
		case "trace":
			settings.Trace = *traceFlag
		case "coverage":
			settings.Coverage = *coverageFlag
		case "profile":
			settings.Profile = *profileFlag
		case "depth-limit":
			settings.DepthLimit = *depthLimitFlag
		}
	})

	return settings, nil
}

func run(args []string, settings runtime.Settings, streams execute.Streams) int {
	if len(args) == 0 {
		execute.RunREPL(settings)
		return 0
	}

	command, args := args[0], args[1:]

	switch command {
	case "run":
		if len(args) == 0 {
			return usageError(streams.Stderr)
		}
		return execute.Execute(args[0], args[1:], settings, streams)

	case "repl":
		execute.RunREPL(settings)
		return 0

	case "tokens":
		if len(args) != 1 {
			return usageError(streams.Stderr)
		}
		return dumpTokens(args[0], settings, streams)

	case "ast":
		return dumpAST(args, settings, streams)

	case "fmt":
		if len(args) != 1 {
			return usageError(streams.Stderr)
		}
		return format(args[0], settings, streams)

	case "version":
		_, _ = fmt.Fprintf(streams.Stdout, "IndoScript %s\n", Version)
		return 0

	default:
		// `indo program.is` is a shorthand for `indo run program.is`
		return execute.Execute(command, args, settings, streams)
	}
}

func usageError(writer io.Writer) int {
	_, _ = fmt.Fprintln(writer, cmd.UsageMessage)
	return 1
}
