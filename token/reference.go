/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

// aliasPattern matches a whole-string alias such as {color.brand.primary}.
var aliasPattern = regexp.MustCompile(`^\{([^{}]+)\}$`)

// ParseAliasString extracts the token id from a curly brace alias.
// Returns the id and true if the whole value is an alias, empty string and false otherwise.
func ParseAliasString(value string) (string, bool) {
	matches := aliasPattern.FindStringSubmatch(strings.TrimSpace(value))
	if len(matches) != 2 {
		return "", false
	}
	id := strings.TrimSpace(matches[1])
	if id == "" {
		return "", false
	}
	return id, true
}

// AliasString formats a token id as a curly brace alias.
func AliasString(tokenID string) string {
	return "{" + tokenID + "}"
}

// parseAliasObject recognizes the object alias form {"tokenId": "..."}.
func parseAliasObject(m map[string]any) (string, bool) {
	if len(m) != 1 {
		return "", false
	}
	id, ok := m["tokenId"].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
