// Package spell wraps the hunspell dictionary behind the small oracle
// surface the pipeline needs: load once at startup, read-only afterwards.
package spell

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/client9/gospell"
	"github.com/rs/zerolog/log"
)

// Oracle answers whether a single word is correctly spelled.
type Oracle interface {
	// Spell reports whether the word is present in the dictionary.
	Spell(word string) bool
	// AddWord registers an extra valid word for this process lifetime.
	AddWord(word string)
}

// Hunspell is a gospell-backed Oracle reading hunspell .aff/.dic files.
type Hunspell struct {
	speller *gospell.GoSpell
}

// NewHunspell loads the main dictionary pair plus every additional .dic
// wordlist found in the dictionary directory (e.g. a QA-specific wordlist
// with product and brand names).
func NewHunspell(affPath, dicPath string) (*Hunspell, error) {
	speller, err := gospell.NewGoSpell(affPath, dicPath)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", dicPath, err)
	}

	h := &Hunspell{speller: speller}

	dictDir := filepath.Dir(dicPath)
	extras, err := extraWordlists(dictDir, dicPath)
	if err != nil {
		return nil, err
	}
	for _, extra := range extras {
		if err := h.loadWordlist(extra); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// Spell implements Oracle.
func (h *Hunspell) Spell(word string) bool {
	return h.speller.Spell(word)
}

// AddWord implements Oracle.
func (h *Hunspell) AddWord(word string) {
	h.speller.AddWordRaw(word)
}

// loadWordlist feeds one extra .dic file into the speller, skipping the
// leading word-count line when present.
func (h *Hunspell) loadWordlist(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read wordlist %s: %w", path, err)
	}

	added := 0
	for i, line := range strings.Split(string(data), "\n") {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		if i == 0 && isNumeric(word) {
			continue
		}
		// Hunspell entries may carry affix flags after a slash.
		if idx := strings.Index(word, "/"); idx > 0 {
			word = word[:idx]
		}
		h.speller.AddWordRaw(word)
		added++
	}

	log.Info().Str("path", path).Int("words", added).Msg("Loaded extra wordlist")
	return nil
}

// extraWordlists lists additional .dic files in the dictionary directory,
// sorted for a stable load order, excluding the main dictionary itself.
func extraWordlists(dir, mainDic string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.dic"))
	if err != nil {
		return nil, fmt.Errorf("scan dictionary dir: %w", err)
	}

	var extras []string
	for _, m := range matches {
		if m == mainDic {
			continue
		}
		extras = append(extras, m)
	}
	sort.Strings(extras)
	return extras, nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
