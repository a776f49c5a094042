// Package placeholder holds the per-format grammars for non-translatable
// placeholders (variables, function calls, printf tokens, entity references,
// environment markers) and removes them from message text before
// tokenization.
package placeholder

import (
	"regexp"
	"strings"
)

// Rule is one compiled placeholder pattern with its replacement. Rules are
// ordered: each applies to the output of the previous one.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// registry maps a file extension to its ordered placeholder rules.
//
// The Fluent reference pattern replaces with "$1 " because Go regexp has no
// lookbehind: the leading (^|[^{]) group re-emits the character consumed to
// reject escaped double braces.
var registry = map[string][]Rule{
	".ftl": {
		// Message references, variables, terms.
		{regexp.MustCompile(`(^|[^{])\{\s*[$|-]?[A-Za-z0-9._-]+(?:[\[(]?[A-Za-z0-9_\-, :"]+[\])])*\s*\}`), "$1 "},
		// DATETIME() and NUMBER() functions.
		{regexp.MustCompile(`\{\s*(?:DATETIME|NUMBER)\(.*\)\s*\}`), " "},
		// Selector expressions.
		{regexp.MustCompile(`\{?\s*\$[a-zA-Z]+\s*->`), " "},
		// Variant names, anchored to line start.
		{regexp.MustCompile(`^\s*\*?\[[a-zA-Z0-9_-]*\]`), " "},
	},
	".properties": {
		// printf-style placeholders (%s, %1$s, ...).
		{regexp.MustCompile(`%(?:[0-9]+\$)?(?:[0-9].)?[sS]`), " "},
		// webl10n plural and brace placeholders.
		{regexp.MustCompile(`\{\[\s?plural\([a-zA-Z]+\)\s?\]\}|\{{1,2}\s?[a-zA-Z_-]+\s?\}{1,2}`), " "},
	},
	".dtd": {
		// Entity references.
		{regexp.MustCompile(`&[A-Za-z0-9.]+;`), " "},
	},
	".ini": {
		// Environment markers.
		{regexp.MustCompile(`%[A-Z_-]+%`), " "},
	},
}

// RulesFor returns the ordered placeholder rules for a file extension, or
// nil when the format has none.
func RulesFor(ext string) []Rule {
	return registry[ext]
}

// apply reruns the pattern until the line stops changing. The (^|[^{])
// guard consumes the character before a match, so back-to-back placeholders
// need another pass to all be caught.
func (r Rule) apply(line string) string {
	for {
		next := r.Pattern.ReplaceAllString(line, r.Replacement)
		if next == line {
			return next
		}
		line = next
	}
}

// Strip removes all placeholders registered for the given extension,
// substituting each match with the rule's replacement. Rules are applied
// line by line so that line-anchored patterns behave on multi-line values.
func Strip(text, ext string) string {
	rules := registry[ext]
	if len(rules) == 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	for i := range lines {
		for _, rule := range rules {
			lines[i] = rule.apply(lines[i])
		}
	}
	return strings.Join(lines, "\n")
}
