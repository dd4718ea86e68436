package utils

import (
	"strings"
	"unicode"
)

// NewNullString is a helper for string pointers, returning nil if string is empty.
// Useful for fields that are optional and should stay unset if not provided.
func NewNullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Initials builds the uppercase initials of the whitespace-separated words in
// name, keeping only letters and digits. "Widget Pro" -> "WP".
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}
