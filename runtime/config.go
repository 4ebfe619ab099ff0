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
	"errors"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/rainerregan/IndoScript/parser"
)

// DefaultSettingsFile is the settings file which is loaded
// from the working directory, if present.
const DefaultSettingsFile = "indo.yaml"

// Settings are the command-line settings, which can be provided
// in a YAML file and overridden by flags.
type Settings struct {
	Color      bool   `yaml:"color"`
	Trace      bool   `yaml:"trace"`
	Coverage   bool   `yaml:"coverage"`
	Profile    string `yaml:"profile"`
	DepthLimit int    `yaml:"depthLimit"`
}

func DefaultSettings() Settings {
	return Settings{
		Color:      true,
		DepthLimit: parser.DefaultDepthLimit,
	}
}

// ParseSettings decodes the given YAML document.
// Fields which are not set keep their default value.
func ParseSettings(data []byte) (Settings, error) {
	settings := DefaultSettings()
	err := yaml.UnmarshalWithOptions(data, &settings, yaml.Strict())
	if err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// LoadSettings reads the settings from the given file.
// A missing file results in the default settings if optional is true.
func LoadSettings(path string, optional bool) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return Settings{}, err
	}
	return ParseSettings(data)
}

func (s Settings) ParserConfig() parser.Config {
	return parser.Config{
		DepthLimit: s.DepthLimit,
	}
}
