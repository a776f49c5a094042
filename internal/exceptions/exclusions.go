package exceptions

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gobwas/glob"
)

// exclusionsFile is the on-disk shape of the exclusion configuration.
type exclusionsFile struct {
	ExcludedFiles   []string `json:"excluded_files"`
	ExcludedStrings []string `json:"excluded_strings"`
}

// Exclusions holds compiled run-time exclusions: file path prefixes whose
// strings are never checked, and individual string IDs to skip.
type Exclusions struct {
	fileMatchers    []glob.Glob
	excludedStrings map[string]bool
}

// LoadExclusions reads and compiles the exclusion configuration. File
// entries are treated as path prefixes (and may use glob metacharacters).
func LoadExclusions(path string) (*Exclusions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read exclusions file: %w", err)
	}

	var file exclusionsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse exclusions file %s: %w", path, err)
	}

	ex := &Exclusions{
		excludedStrings: make(map[string]bool, len(file.ExcludedStrings)),
	}
	for _, prefix := range file.ExcludedFiles {
		g, err := glob.Compile(prefix + "*")
		if err != nil {
			return nil, fmt.Errorf("compile file exclusion %q: %w", prefix, err)
		}
		ex.fileMatchers = append(ex.fileMatchers, g)
	}
	for _, id := range file.ExcludedStrings {
		ex.excludedStrings[id] = true
	}

	return ex, nil
}

// FileExcluded reports whether a repository-relative file path is excluded.
func (e *Exclusions) FileExcluded(relPath string) bool {
	for _, g := range e.fileMatchers {
		if g.Match(relPath) {
			return true
		}
	}
	return false
}

// StringExcluded reports whether a string ID is explicitly excluded.
func (e *Exclusions) StringExcluded(id string) bool {
	return e.excludedStrings[id]
}
