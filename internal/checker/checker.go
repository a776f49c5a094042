// Package checker drives the quality checks over every extracted string:
// extraction, the spelling pipeline with its exception reconciliation, and
// the straight-quote scan.
package checker

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/flodolo/gecko-it-qa/internal/config"
	"github.com/flodolo/gecko-it-qa/internal/filewalker"
	"github.com/flodolo/gecko-it-qa/internal/heuristic"
	"github.com/flodolo/gecko-it-qa/internal/parser"
	"github.com/flodolo/gecko-it-qa/internal/spell"
	"github.com/flodolo/gecko-it-qa/internal/worker"

	"github.com/rs/zerolog/log"
)

// Checker holds the shared, read-only collaborators of a run.
type Checker struct {
	cfg     *config.Config
	oracle  spell.Oracle
	engine  *heuristic.Engine
	verbose bool
}

// New creates a Checker. The oracle must be fully loaded; it is only read
// from here on.
func New(cfg *config.Config, oracle spell.Oracle, verbose bool) *Checker {
	return &Checker{
		cfg:     cfg,
		oracle:  oracle,
		engine:  heuristic.NewEngine(oracle),
		verbose: verbose,
	}
}

// ExtractStrings walks the repository, parses every supported file, and
// returns all string entries sorted by ID. A file that fails to parse is
// logged and left out; it never aborts the run.
func (c *Checker) ExtractStrings(ctx context.Context) ([]parser.StringEntry, error) {
	w := filewalker.NewWalker()
	files, err := w.Walk(c.cfg.RepoPath)
	if err != nil {
		return nil, err
	}

	pool := worker.NewPool(c.cfg.WorkerCount,
		func(ctx context.Context, entry filewalker.FileEntry) (*parser.ParseResult, error) {
			return entry.Parser.Parse(entry.Path, entry.RelPath)
		},
	)
	results := pool.Execute(ctx, files)

	var entries []parser.StringEntry
	for _, r := range results {
		if r.Err != nil {
			log.Error().Err(r.Err).Str("file", r.Input.RelPath).Msg("Error parsing file")
			continue
		}
		if r.Result == nil {
			continue
		}
		entries = append(entries, r.Result.Entries...)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	log.Info().Int("strings", len(entries)).Msg("Extracted strings")
	return entries, nil
}

// filePart returns the file path component of a string ID.
func filePart(id string) string {
	if idx := strings.Index(id, ":"); idx >= 0 {
		return id[:idx]
	}
	return id
}

// extOf returns the lowercase file extension of a string ID's file part.
func extOf(id string) string {
	return strings.ToLower(filepath.Ext(filePart(id)))
}
