package checker

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/flodolo/gecko-it-qa/internal/jsonio"
	"github.com/flodolo/gecko-it-qa/internal/normalize"
	"github.com/flodolo/gecko-it-qa/internal/parser"
	"github.com/flodolo/gecko-it-qa/internal/report"
)

// straightQuotes matches the quote characters that style requires to be
// typographic.
var straightQuotes = regexp.MustCompile(`['"‘]`)

// fluentQuoteSpans are Fluent constructs that legitimately carry double
// quotes; they are removed before deciding whether a quote is a violation.
// The leading (^|[^{]) group stands in for a negative lookbehind on '{'.
var fluentQuoteSpans = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	// Parameterized terms.
	{regexp.MustCompile(`(^|[^{])\{\s*-[A-Za-z0-9._-]+(?:[\[(]?[A-Za-z0-9_\-, :"]+[\])])*\s*\}`), "$1"},
	// DATETIME() and NUMBER() functions.
	{regexp.MustCompile(`\{\s*(?:DATETIME|NUMBER)(.*)\s*\}`), ""},
	// Special characters and the empty string literal.
	{regexp.MustCompile(`\{\s*"[\s{}]?"\s*\}`), ""},
}

// CheckQuotes scans every string for straight quotes, writes the error
// list, and self-prunes the quote exception file down to the entries that
// still matched something.
func (c *Checker) CheckQuotes(entries []parser.StringEntry) ([]string, error) {
	exceptionsPath := filepath.Join(c.cfg.ExceptionsDir, "quotes.json")

	var excepted []string
	if err := jsonio.Read(exceptionsPath, &excepted); err != nil {
		return nil, err
	}
	exceptedSet := make(map[string]bool, len(excepted))
	for _, id := range excepted {
		exceptedSet[id] = true
	}

	var matched []string
	var errors []string

	for _, e := range entries {
		if exceptedSet[e.ID] {
			matched = append(matched, e.ID)
			continue
		}
		if e.Text == "" || !straightQuotes.MatchString(e.Text) {
			continue
		}

		cleaned := normalize.StripMarkup(e.Text)
		for _, span := range fluentQuoteSpans {
			// Rerun until stable: the (^|[^{]) guard consumes a character,
			// so adjacent terms need another pass.
			for {
				next := span.pattern.ReplaceAllString(cleaned, span.replacement)
				if next == cleaned {
					break
				}
				cleaned = next
			}
		}
		if !straightQuotes.MatchString(cleaned) {
			continue
		}

		errors = append(errors, e.ID)
		if c.verbose {
			fmt.Printf("%s: wrong quotes\n%s\n", e.ID, e.Text)
		}
	}

	if err := report.WriteQuoteErrors(filepath.Join(c.cfg.ErrorsDir, "quotes.json"), errors); err != nil {
		return nil, fmt.Errorf("write quote errors: %w", err)
	}

	// Drop exception entries that no longer match any string.
	sort.Strings(matched)
	if !equalStrings(matched, excepted) {
		if err := jsonio.Write(exceptionsPath, matched); err != nil {
			return nil, fmt.Errorf("update quote exceptions: %w", err)
		}
	}

	return errors, nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
