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
	"testing"

	"github.com/c-bata/go-prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestREPLSession(t *testing.T) (*replSession, *testStreams) {
	streams := &testStreams{}
	session, err := newREPLSession(testSettings(), streams.streams())
	require.NoError(t, err)
	return session, streams
}

func TestREPLSession(t *testing.T) {

	t.Parallel()

	session, streams := newTestREPLSession(t)

	assert.Equal(t, "IndoScript> ", session.prefix())

	require.False(t, session.handleLine("atur xs = [1, 2]"))
	require.False(t, session.handleLine("untuk_setiap (x dalam xs) {"))
	assert.Equal(t, "......> ", session.prefix())

	require.False(t, session.handleLine("    tampilkan x * 2"))
	require.False(t, session.handleLine("}"))
	assert.Equal(t, "IndoScript> ", session.prefix())

	require.False(t, session.handleLine("xs.panjang"))
	require.False(t, session.handleLine(""))

	assert.Equal(t, "2\n4\n2\n", streams.stdout.String())
	assert.Empty(t, streams.stderr.String())
}

func TestREPLSessionErrors(t *testing.T) {

	t.Parallel()

	session, streams := newTestREPLSession(t)

	require.False(t, session.handleLine("atur x = 1"))
	require.False(t, session.handleLine("tampilkan y"))

	// the error refers to the second line of the session
	assert.Contains(t, streams.stderr.String(), "error: undefined variable: `y`")
	assert.Contains(t, streams.stderr.String(), " --> REPL:2:10")

	require.False(t, session.handleLine("tampilkan x"))
	assert.Equal(t, "1\n", streams.stdout.String())
}

func TestREPLSessionCommands(t *testing.T) {

	t.Parallel()

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		session, streams := newTestREPLSession(t)

		require.False(t, session.handleLine(".help"))
		assert.Equal(t, replHelpMessage+"\n", streams.stdout.String())
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		session, streams := newTestREPLSession(t)

		require.False(t, session.handleLine(".apa"))
		assert.Equal(t,
			"Perintah tidak dikenal. Ketik '.help' untuk bantuan.\n",
			streams.stdout.String(),
		)
	})

	for _, command := range []string{"keluar", ".exit", "  keluar  "} {
		t.Run(command, func(t *testing.T) {
			t.Parallel()

			session, streams := newTestREPLSession(t)

			require.True(t, session.handleLine(command))
			assert.Equal(t, "Sampai jumpa!\n", streams.stdout.String())
		})
	}

	t.Run("exit command inside block", func(t *testing.T) {
		t.Parallel()

		session, _ := newTestREPLSession(t)

		require.False(t, session.handleLine("jika (benar) {"))
		require.False(t, session.handleLine("keluar"))
	})
}

func TestREPLSessionSuggest(t *testing.T) {

	t.Parallel()

	session, _ := newTestREPLSession(t)
	require.False(t, session.handleLine("atur untung = 1"))

	buffer := prompt.NewBuffer()
	buffer.InsertText("unt", false, true)

	suggestions := session.suggest(*buffer.Document())

	var texts []string
	for _, suggestion := range suggestions {
		texts = append(texts, suggestion.Text)
	}
	assert.Equal(t, []string{"untung", "untuk", "untuk_setiap"}, texts)

	assert.Empty(t, session.suggest(prompt.Document{}))
}
