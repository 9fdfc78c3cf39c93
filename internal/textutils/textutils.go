// Package textutils holds small string helpers for display labels.
package textutils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Initials returns the upper-cased first letter of the first and last words
// of name: "John Doe" gives "JD", "Cher" gives "C" and "" gives "".
func Initials(name string) string {
	words := strings.Fields(name)
	switch len(words) {
	case 0:
		return ""
	case 1:
		return firstUpper(words[0])
	default:
		return firstUpper(words[0]) + firstUpper(words[len(words)-1])
	}
}

func firstUpper(word string) string {
	r, _ := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r))
}

// PascalCase turns a snake_case key into space separated capitalised words:
// "total_payout" gives "Total Payout".
func PascalCase(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool { return r == '_' || unicode.IsSpace(r) })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Pluralize returns singular when n is 1 and plural otherwise.
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Truncate shortens s to at most width runes, ending with an ellipsis when
// cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
