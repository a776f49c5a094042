package filewalker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/flodolo/gecko-it-qa/internal/parser"

	"github.com/rs/zerolog/log"
)

// SupportedExtensions lists localization file types handled by the tool.
var SupportedExtensions = map[string]bool{
	".dtd":        true,
	".ftl":        true,
	".inc":        true,
	".ini":        true,
	".properties": true,
}

// excludedFolders are top-level directories that are not part of the
// localization surface under check.
var excludedFolders = map[string]bool{
	"calendar":       true,
	"chat":           true,
	"editor":         true,
	"extensions":     true,
	"mail":           true,
	"other-licenses": true,
	"suite":          true,
}

// Walker traverses a localization tree and dispatches files to the correct
// parser.
type Walker struct {
	parsers []parser.Parser
}

// NewWalker creates a Walker with default parsers.
func NewWalker() *Walker {
	return &Walker{
		parsers: []parser.Parser{
			parser.NewDTDParser(),
			parser.NewFluentParser(),
			parser.NewIncParser(),
			parser.NewINIParser(),
			parser.NewPropertiesParser(),
		},
	}
}

// FileEntry represents a discovered file ready for extraction.
type FileEntry struct {
	Path    string
	RelPath string
	Ext     string
	Parser  parser.Parser
}

// Walk discovers all supported files under the given root directory,
// following symlinked directories. The returned list is sorted by relative
// path so extraction order is stable across runs.
func (w *Walker) Walk(root string) ([]FileEntry, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var entries []FileEntry
	seen := make(map[string]bool)
	w.walkDir(root, root, seen, &entries)

	sort.Slice(entries, func(i, j int) bool { return entries[i].RelPath < entries[j].RelPath })

	log.Info().Int("count", len(entries)).Str("root", root).Msg("Discovered files")
	return entries, nil
}

// walkDir recurses into dir, following symlinks. Each directory is visited
// once by its resolved path, so symlink cycles terminate.
func (w *Walker) walkDir(root, dir string, seen map[string]bool, entries *[]FileEntry) {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		log.Warn().Err(err).Str("path", dir).Msg("Cannot resolve directory")
		return
	}
	if seen[resolved] {
		return
	}
	seen[resolved] = true

	items, err := os.ReadDir(dir)
	if err != nil {
		log.Warn().Err(err).Str("path", dir).Msg("Error reading directory")
		return
	}

	for _, item := range items {
		path := filepath.Join(dir, item.Name())

		// Stat follows symlinks, so linked directories and files are
		// treated like regular ones.
		info, err := os.Stat(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			continue
		}

		if info.IsDir() {
			if dir == root && excludedFolders[item.Name()] {
				continue
			}
			w.walkDir(root, path, seen, entries)
			continue
		}

		w.addFile(root, path, entries)
	}
}

// addFile appends the file to entries when a parser supports its extension.
func (w *Walker) addFile(root, path string, entries *[]FileEntry) {
	ext := strings.ToLower(filepath.Ext(path))
	if !SupportedExtensions[ext] {
		return
	}
	if strings.HasSuffix(path, "region.properties") {
		return
	}

	relPath, err := filepath.Rel(root, path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Cannot compute relative path")
		return
	}
	relPath = filepath.ToSlash(relPath)

	for _, p := range w.parsers {
		if p.CanParse(ext) {
			*entries = append(*entries, FileEntry{
				Path:    path,
				RelPath: relPath,
				Ext:     ext,
				Parser:  p,
			})
			return
		}
	}
}

// ParseFile parses a single file using the appropriate parser.
func (w *Walker) ParseFile(entry FileEntry) (*parser.ParseResult, error) {
	return entry.Parser.Parse(entry.Path, entry.RelPath)
}
