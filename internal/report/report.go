// Package report aggregates per-string verdicts into the run's output
// artifacts and summary counters.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/flodolo/gecko-it-qa/internal/jsonio"
)

// Misspellings collects confirmed spelling errors for one run. It is rebuilt
// from scratch every run and never persisted beyond the output file.
type Misspellings struct {
	// Errors maps string ID to offending tokens in original token order.
	Errors map[string][]string
	// Frequency counts occurrences per offending token across all strings.
	Frequency map[string]int
	// TotalOccurrences is the total number of confirmed errors.
	TotalOccurrences int
}

func NewMisspellings() *Misspellings {
	return &Misspellings{
		Errors:    make(map[string][]string),
		Frequency: make(map[string]int),
	}
}

// Add records the confirmed misspellings for one string.
func (m *Misspellings) Add(id string, tokens []string) {
	if len(tokens) == 0 {
		return
	}
	m.Errors[id] = tokens
	m.TotalOccurrences += len(tokens)
	for _, token := range tokens {
		m.Frequency[token]++
	}
}

// HasErrors reports whether any string produced a confirmed misspelling.
func (m *Misspellings) HasErrors() bool {
	return len(m.Errors) > 0
}

// Write persists the per-string error mapping as JSON.
func (m *Misspellings) Write(path string) error {
	return jsonio.Write(path, m.Errors)
}

// PrintSummary writes aggregate counts and the token frequency table,
// limited to tokens at or above the threshold, most frequent first.
func (m *Misspellings) PrintSummary(w io.Writer, threshold int) {
	if m.TotalOccurrences == 0 {
		return
	}

	fmt.Fprintf(w, "Total number of strings with errors: %d\n", len(m.Errors))
	fmt.Fprintf(w, "Total number of errors: %d\n", m.TotalOccurrences)

	type freq struct {
		token string
		count int
	}
	var frequent []freq
	for token, count := range m.Frequency {
		if count >= threshold {
			frequent = append(frequent, freq{token, count})
		}
	}
	if len(frequent) == 0 {
		return
	}

	sort.Slice(frequent, func(i, j int) bool {
		if frequent[i].count != frequent[j].count {
			return frequent[i].count > frequent[j].count
		}
		return frequent[i].token < frequent[j].token
	})

	fmt.Fprintf(w, "Errors and number of occurrences (only above %d):\n", threshold)
	for _, f := range frequent {
		fmt.Fprintf(w, "%s: %d\n", f.token, f.count)
	}
}

// WriteQuoteErrors persists the sorted list of string IDs with quote
// violations.
func WriteQuoteErrors(path string, ids []string) error {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return jsonio.Write(path, sorted)
}
