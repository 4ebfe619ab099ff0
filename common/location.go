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

package common

import (
	"encoding/json"
	"fmt"
)

// LocationID is a unique identifier for a Location.
type LocationID string

// Location describes the origin of a program, e.g. a file or the REPL.
type Location interface {
	fmt.Stringer
	ID() LocationID
}

// HasLocation is implemented by errors which carry the location
// of the program they occurred in.
type HasLocation interface {
	ImportLocation() Location
}

const StringLocationPrefix = "S"

// StringLocation is the location of a program loaded from a file,
// identified by its path.
type StringLocation string

var _ Location = StringLocation("")

func (l StringLocation) ID() LocationID {
	return LocationID(fmt.Sprintf("%s.%s", StringLocationPrefix, string(l)))
}

func (l StringLocation) String() string {
	return string(l)
}

func (l StringLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type   string
		String string
	}{
		Type:   "StringLocation",
		String: string(l),
	})
}

const REPLLocationPrefix = "REPL"

// REPLLocation is the location of code entered in the REPL.
type REPLLocation struct{}

var _ Location = REPLLocation{}

func (REPLLocation) ID() LocationID {
	return REPLLocationPrefix
}

func (REPLLocation) String() string {
	return REPLLocationPrefix
}

func (REPLLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type string
	}{
		Type: "REPLLocation",
	})
}
