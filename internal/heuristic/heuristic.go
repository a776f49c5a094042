// Package heuristic decides whether a dictionary miss is a real misspelling
// or a false positive caused by an elided contraction, a multi-word brand
// name, or a format artifact. Dictionaries are single-word, so multi-token
// candidates are re-checked against exact two and three token windows; no
// fuzzy matching.
package heuristic

import (
	"strings"

	"github.com/flodolo/gecko-it-qa/internal/spell"
	"github.com/flodolo/gecko-it-qa/internal/textutil"
)

// Verdict is the outcome of classifying one dictionary miss.
type Verdict int

const (
	OK Verdict = iota
	Misspelled
)

// knownDomains appear in example URLs inside UI strings and are never
// spelling errors.
var knownDomains = []string{"example.com", "mozilla.org"}

// accesskeyPrefixes mark documented keyboard shortcuts (DevTools strings).
var accesskeyPrefixes = []string{"Alt+", "Cmd+", "Ctrl+"}

// apostrophes are the glyphs that split an elided contraction into three
// tokens.
var apostrophes = map[string]bool{"'": true, "’": true}

// Engine classifies dictionary misses using the surrounding token window.
type Engine struct {
	oracle spell.Oracle
}

func NewEngine(oracle spell.Oracle) *Engine {
	return &Engine{oracle: oracle}
}

// Classify inspects the token at index, already reported as misspelled in
// isolation, and decides whether it is a confirmed error. Rules apply in
// fixed order; the first that passes exempts the token.
func (e *Engine) Classify(tokens []string, index int) Verdict {
	token := tokens[index]

	// Acronyms and tokens made up only of non-letter characters compare
	// equal to their own uppercase form.
	if token == strings.ToUpper(token) {
		return OK
	}

	if textutil.ContainsAny(token, knownDomains) || textutil.ContainsAny(token, accesskeyPrefixes) {
		return OK
	}

	// Elided contraction split into three tokens (e.g. cos ’ altro).
	if index+2 < len(tokens) && apostrophes[tokens[index+1]] {
		group := strings.Join(tokens[index:index+3], "")
		if e.oracle.Spell(group) {
			return OK
		}
	}

	// Two-word names (e.g. Common Voice): look forward, then backward.
	if index+1 < len(tokens) {
		group := strings.Join(tokens[index:index+2], " ")
		if e.oracle.Spell(group) {
			return OK
		}
	}
	if index >= 1 {
		group := strings.Join(tokens[index-1:index+1], " ")
		if e.oracle.Spell(group) {
			return OK
		}
	}

	return Misspelled
}
