package checker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flodolo/gecko-it-qa/internal/exceptions"
	"github.com/flodolo/gecko-it-qa/internal/heuristic"
	"github.com/flodolo/gecko-it-qa/internal/normalize"
	"github.com/flodolo/gecko-it-qa/internal/parser"
	"github.com/flodolo/gecko-it-qa/internal/report"
	"github.com/flodolo/gecko-it-qa/internal/textutil"
	"github.com/flodolo/gecko-it-qa/internal/tokenize"
	"github.com/flodolo/gecko-it-qa/internal/worker"

	"github.com/rs/zerolog/log"
)

// spellingOutcome is the per-string result of the classification pass.
type spellingOutcome struct {
	id string
	// misspellings are the confirmed errors in original token order.
	misspellings []string
	// excuseStillNeeded is true when at least one stored exception token
	// was consulted and still suppresses a live dictionary miss.
	excuseStillNeeded bool
	// normalized and tokenValues feed the verbose diagnostics.
	normalized  string
	tokenValues []string
}

// CheckSpelling runs the spelling pipeline over all entries, writes the
// error report, and reconciles the persisted exception store. It returns
// the report for exit-code and summary purposes.
func (c *Checker) CheckSpelling(ctx context.Context, entries []parser.StringEntry) (*report.Misspellings, error) {
	storePath := filepath.Join(c.cfg.ExceptionsDir, "spelling.json")
	store, err := exceptions.LoadStore(storePath)
	if err != nil {
		return nil, err
	}

	excl, err := exceptions.LoadExclusions(filepath.Join(c.cfg.ExceptionsDir, "spelling_exclusions.json"))
	if err != nil {
		return nil, err
	}

	// Every extracted ID counts as current, including skipped ones: the
	// reconciler only prunes entries whose string is gone from the tree.
	currentIDs := make(map[string]bool, len(entries))
	for _, e := range entries {
		currentIDs[e.ID] = true
	}

	stillNeeded := make(map[string]bool)

	var toCheck []parser.StringEntry
	for _, e := range entries {
		if excl.FileExcluded(filePart(e.ID)) {
			continue
		}
		if excl.StringExcluded(e.ID) {
			// Exceptions for explicitly excluded strings are left alone.
			stillNeeded[e.ID] = true
			continue
		}
		// Fluent .style attributes hold CSS, not prose.
		if extOf(e.ID) == ".ftl" && strings.HasSuffix(e.ID, ".style") {
			continue
		}
		if e.Text == "" || normalize.IsEmptyPlaceholder(e.Text) {
			continue
		}
		toCheck = append(toCheck, e)
	}

	pool := worker.NewPool(c.cfg.WorkerCount,
		func(ctx context.Context, entry parser.StringEntry) (spellingOutcome, error) {
			return c.classifyString(entry, store), nil
		},
	)
	results := pool.Execute(ctx, toCheck)

	// Single-writer reduction, in input order, so report and frequency
	// table are byte-stable across runs.
	misspellings := report.NewMisspellings()
	for _, r := range results {
		outcome := r.Result
		if outcome.excuseStillNeeded {
			stillNeeded[outcome.id] = true
		}
		if len(outcome.misspellings) == 0 {
			continue
		}
		misspellings.Add(outcome.id, outcome.misspellings)
		if c.verbose {
			c.printSpellingDiagnostics(outcome, r.Input.Text)
		}
	}

	if err := misspellings.Write(filepath.Join(c.cfg.ErrorsDir, "spelling.json")); err != nil {
		return nil, fmt.Errorf("write spelling errors: %w", err)
	}

	reconciled := exceptions.Reconcile(store, misspellings.Errors, currentIDs, stillNeeded)
	if err := reconciled.Save(storePath); err != nil {
		return nil, fmt.Errorf("save exception store: %w", err)
	}

	misspellings.PrintSummary(os.Stdout, c.cfg.FrequencyThreshold)

	return misspellings, nil
}

// classifyString normalizes and tokenizes one string, then classifies each
// token. A processing failure is fail-open: the string is logged and treated
// as clean for this run, without feeding the exception store.
func (c *Checker) classifyString(entry parser.StringEntry, store exceptions.Store) spellingOutcome {
	outcome := spellingOutcome{id: entry.ID}

	excused := make(map[string]bool)
	for _, token := range store[entry.ID] {
		excused[token] = true
	}

	cleaned, err := normalize.Normalize(entry.Text, extOf(entry.ID))
	if err != nil {
		log.Error().Err(err).Str("id", entry.ID).Str("text", textutil.Truncate(entry.Text, 80)).Msg("Error normalizing string")
		return outcome
	}
	outcome.normalized = cleaned

	tokens := tokenize.Tokenize(cleaned)
	values := tokenize.Values(tokens)
	outcome.tokenValues = values

	for i, token := range values {
		if excused[token] {
			// Pre-excused tokens skip the heuristic cascade and are never
			// reported; a single probe decides whether the excuse is still
			// suppressing anything.
			if !c.oracle.Spell(token) {
				outcome.excuseStillNeeded = true
			}
			continue
		}

		if tokenize.IsPunctuation(token) {
			continue
		}
		if tokenize.IsStopword(token) {
			continue
		}

		if c.oracle.Spell(token) {
			continue
		}
		if c.engine.Classify(values, i) == heuristic.OK {
			continue
		}

		outcome.misspellings = append(outcome.misspellings, token)
	}

	return outcome
}

func (c *Checker) printSpellingDiagnostics(outcome spellingOutcome, original string) {
	fmt.Printf("%s: spelling error\n", outcome.id)
	for _, token := range outcome.misspellings {
		fmt.Printf("Original: %s\n", original)
		fmt.Printf("Cleaned: %s\n", outcome.normalized)
		fmt.Printf("  %s\n", token)
		fmt.Println(tokenize.Values(tokenize.Tokenize(original)))
		fmt.Println(outcome.tokenValues)
	}
}
