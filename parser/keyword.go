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

package parser

import "github.com/SaveTheRbtz/mph"

// NOTE: ensure to update allKeywords when adding a new keyword
const (
	KeywordAtur        = "atur"
	KeywordTampilkan   = "tampilkan"
	KeywordFungsi      = "fungsi"
	KeywordKembali     = "kembali"
	KeywordJika        = "jika"
	KeywordKalauTidak  = "kalau_tidak"
	KeywordSelama      = "selama"
	KeywordUntuk       = "untuk"
	KeywordUntukSetiap = "untuk_setiap"
	KeywordDalam       = "dalam"
	// NOTE: ensure to update allKeywords when adding a new keyword
)

// AllKeywords are all statement keywords.
// The literal words `benar` and `salah`, and the word operators
// `dan`, `atau`, and `tidak_sama` are recognized by the lexer.
var AllKeywords = []string{
	KeywordAtur,
	KeywordTampilkan,
	KeywordFungsi,
	KeywordKembali,
	KeywordJika,
	KeywordKalauTidak,
	KeywordSelama,
	KeywordUntuk,
	KeywordUntukSetiap,
	KeywordDalam,
}

// Keywords that can be used in identifier position without ambiguity.
var softKeywords = []string{
	KeywordDalam,
}

var softKeywordsTable = mph.Build(softKeywords)

// Keywords that aren't allowed in identifier position.
var hardKeywords = filter(
	AllKeywords,
	func(keyword string) bool {
		_, ok := softKeywordsTable.Lookup(keyword)
		return !ok
	},
)

var hardKeywordsTable = mph.Build(hardKeywords)

// IsHardKeyword reports whether the given name is a keyword
// which may not be used as a variable, parameter, or function name.
func IsHardKeyword(name string) bool {
	_, ok := hardKeywordsTable.Lookup(name)
	return ok
}

func filter[T comparable](items []T, f func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if f(item) {
			result = append(result, item)
		}
	}
	return result
}
