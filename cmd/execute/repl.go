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
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/rainerregan/IndoScript/cmd"
	"github.com/rainerregan/IndoScript/common"
	"github.com/rainerregan/IndoScript/interpreter"
	"github.com/rainerregan/IndoScript/runtime"
)

const (
	replPrompt             = "IndoScript> "
	replContinuationPrompt = "......> "
	replWelcomeMessage     = "IndoScript REPL - Ketik 'keluar' untuk keluar."
	replGoodbyeMessage     = "Sampai jumpa!"
	replExitCommand        = "keluar"
)

const replHelpMessage = `
Masukkan pernyataan untuk menjalankannya.
Perintah diawali dengan titik:

.exit     Keluar dari REPL (sama dengan 'keluar')
.help     Tampilkan pesan bantuan ini

Tekan ^D untuk keluar`

const replAssistanceMessage = `Ketik '.help' untuk bantuan.`

// replSession accumulates input lines until they form a complete input,
// and executes it.
type replSession struct {
	repl               *runtime.REPL
	streams            Streams
	useColor           bool
	lineNumber         int
	lineIsContinuation bool
	code               string
}

func newREPLSession(settings runtime.Settings, streams Streams) (*replSession, error) {
	session := &replSession{
		streams:    streams,
		useColor:   settings.Color,
		lineNumber: 1,
	}

	repl, err := runtime.NewREPL(
		func(err error, location common.Location, codes map[common.Location][]byte) {
			cmd.PrintError(streams.Stderr, err, location, codes, settings.Color)
		},
		func(value interpreter.Value) {
			_, _ = fmt.Fprintln(streams.Stdout, formatValue(value, settings.Color))
		},
		runtime.Config{
			Output:       streams.Stdout,
			ParserConfig: settings.ParserConfig(),
		},
	)
	if err != nil {
		return nil, err
	}

	session.repl = repl
	return session, nil
}

// handleLine processes one line of input.
// The result is true if the session should end.
func (s *replSession) handleLine(line string) (exit bool) {
	defer func() {
		s.lineNumber++
	}()

	trimmed := strings.TrimSpace(line)

	if s.code == "" {
		if trimmed == replExitCommand {
			return s.exit()
		}
		if strings.HasPrefix(trimmed, ".") {
			return s.handleCommand(trimmed)
		}
		if trimmed == "" {
			return false
		}
	}

	// Prefix the code with empty lines,
	// so that error messages match current line number

	if s.code == "" {
		s.code = strings.Repeat("\n", s.lineNumber-1)
	}

	s.code += line + "\n"

	inputIsComplete := s.repl.Accept([]byte(s.code))
	if !inputIsComplete {
		s.lineIsContinuation = true
		return false
	}

	s.lineIsContinuation = false
	s.code = ""
	return false
}

func (s *replSession) handleCommand(command string) (exit bool) {
	switch command {
	case ".exit":
		return s.exit()
	case ".help":
		_, _ = fmt.Fprintln(s.streams.Stdout, replHelpMessage)
	default:
		message := fmt.Sprintf("Perintah tidak dikenal. %s", replAssistanceMessage)
		_, _ = fmt.Fprintln(s.streams.Stdout, colorizeError(message, s.useColor))
	}
	return false
}

func (s *replSession) exit() bool {
	_, _ = fmt.Fprintln(s.streams.Stdout, replGoodbyeMessage)
	return true
}

func (s *replSession) prefix() string {
	if s.lineIsContinuation {
		return replContinuationPrompt
	}
	return replPrompt
}

func (s *replSession) suggest(document prompt.Document) []prompt.Suggest {
	word := document.GetWordBeforeCursor()
	if len(word) == 0 {
		return nil
	}

	var suggests []prompt.Suggest
	for _, suggestion := range s.repl.Suggestions() {
		suggests = append(suggests, prompt.Suggest{
			Text:        suggestion.Name,
			Description: suggestion.Description,
		})
	}

	return prompt.FilterHasPrefix(suggests, word, false)
}

func printREPLWelcome(streams Streams) {
	_, _ = fmt.Fprintf(streams.Stdout, "%s\n%s\n\n", replWelcomeMessage, replAssistanceMessage)
}

// RunREPL runs an interactive session on the terminal.
func RunREPL(settings runtime.Settings) {
	streams := DefaultStreams()

	session, err := newREPLSession(settings, streams)
	if err != nil {
		cmd.PrintError(streams.Stderr, err, nil, nil, settings.Color)
		os.Exit(1)
	}

	printREPLWelcome(streams)

	executor := func(line string) {
		if session.handleLine(line) {
			os.Exit(0)
		}
	}

	changeLivePrefix := func() (string, bool) {
		return session.prefix(), true
	}

	options := []prompt.Option{
		prompt.OptionLivePrefix(changeLivePrefix),
		prompt.OptionTitle("IndoScript"),
	}
	prompt.New(executor, session.suggest, options...).Run()

	_, _ = fmt.Fprintln(streams.Stdout, replGoodbyeMessage)
}
