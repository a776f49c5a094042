package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NFC returns the canonical composed form of a string, so that composed and
// decomposed spellings of the same accented character compare equal.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// ContainsAny checks if a string contains any of the given substrings.
func ContainsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Truncate shortens a string to at most maxLen bytes, appending "..." if
// truncated. The cut lands on a rune boundary so multi-byte characters are
// never split.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
