// Package tokenize produces the word and punctuation tokens the spelling
// pipeline consumes. Words keep internal connectors (periods, plus signs,
// hyphens) so domains and keyboard shortcuts survive as single tokens, while
// apostrophes always surface as standalone tokens so elided contractions can
// be regrouped by the heuristic engine.
package tokenize

import (
	"regexp"
	"strings"

	"github.com/bbalet/stopwords"
)

// Token is one lexical unit with its ordinal position in the sequence.
type Token struct {
	Value string
	Index int
}

// tokenPattern matches either a word (letters/digits with internal
// connectors) or any single non-space rune.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:[._+\-][\p{L}\p{N}]+)*|\S`)

// asciiPunctuation mirrors the ASCII punctuation set; non-ASCII glyphs such
// as the typographic apostrophe are deliberately not included, since the
// heuristic engine needs to see them.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Tokenize splits a normalized sentence into tokens.
func Tokenize(text string) []Token {
	matches := tokenPattern.FindAllString(text, -1)
	tokens := make([]Token, 0, len(matches))
	for i, m := range matches {
		tokens = append(tokens, Token{Value: m, Index: i})
	}
	return tokens
}

// Values returns just the token values, for diagnostics output.
func Values(tokens []Token) []string {
	values := make([]string, len(tokens))
	for i, t := range tokens {
		values[i] = t.Value
	}
	return values
}

// IsPunctuation reports whether a token is a single ASCII punctuation
// character.
func IsPunctuation(token string) bool {
	return len(token) == 1 && strings.ContainsRune(asciiPunctuation, rune(token[0]))
}

// IsStopword reports whether a token is an Italian stopword, matched
// case-insensitively against the embedded corpus.
func IsStopword(token string) bool {
	return strings.TrimSpace(stopwords.CleanString(token, "it", false)) == ""
}
