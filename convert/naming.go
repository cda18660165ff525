/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/strata/convert/formatter"
	"bennypowers.dev/strata/token"
)

// NamePlaceholder is replaced by the built name in a formatString.
const NamePlaceholder = "{name}"

// PlatformName builds a token's code name from its id and a platform's
// syntax patterns. Nil patterns join the id's words with "-".
//
// The words of the id are cased, joined with the delimiter, and wrapped
// in the prefix and suffix. A formatString containing {name} then
// receives the result.
func PlatformName(id string, sp *token.SyntaxPatterns) string {
	if sp == nil {
		sp = &token.SyntaxPatterns{Delimiter: "-", Capitalization: token.CapitalizationNone}
	}

	words := formatter.SplitIntoWords(id)
	for i, w := range words {
		words[i] = caseWord(w, i == 0, sp.Capitalization)
	}
	name := sp.Prefix + strings.Join(words, sp.Delimiter) + sp.Suffix

	if strings.Contains(sp.FormatString, NamePlaceholder) {
		name = strings.ReplaceAll(sp.FormatString, NamePlaceholder, name)
	}
	return name
}

// caseWord cases one word. Casers keep state, so each call makes its own.
func caseWord(w string, first bool, c token.Capitalization) string {
	switch c {
	case token.CapitalizationUppercase:
		return cases.Upper(language.Und).String(w)
	case token.CapitalizationLowercase:
		return cases.Lower(language.Und).String(w)
	case token.CapitalizationCapitalize:
		return cases.Title(language.Und).String(w)
	case token.CapitalizationCamel:
		if first {
			return cases.Lower(language.Und).String(w)
		}
		return cases.Title(language.Und).String(w)
	default:
		return w
	}
}
