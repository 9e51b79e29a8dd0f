// File: case.go
// Title: String Case Conversion Utilities
// Description: Implements snake_case conversion of Go identifiers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2025-10-18 v0.2.0: Acronym aware ToSnakeCase, dropped the other conversions

package stringx

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts a string to snake_case.
// Runs of capitals are kept together: "IOTarget" -> "io_target",
// "ForStmt" -> "for_stmt". Spaces and hyphens become underscores.
func ToSnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r) || r == '-':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}

	out := b.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	return out
}
