// Package exceptions maintains the persisted per-string lists of tokens
// excused from spelling verdicts, and the run-time exclusion configuration.
package exceptions

import (
	"github.com/flodolo/gecko-it-qa/internal/jsonio"

	"github.com/rs/zerolog/log"
)

// Store is the on-disk mapping from string ID to the ordered tokens excused
// from spelling verdicts for that string.
type Store map[string][]string

// LoadStore reads the exception store from a JSON file. A missing file is a
// startup error: the store is part of the repository and its absence means a
// broken checkout.
func LoadStore(path string) (Store, error) {
	store := make(Store)
	if err := jsonio.Read(path, &store); err != nil {
		return nil, err
	}

	log.Debug().Str("path", path).Int("entries", len(store)).Msg("Loaded exception store")
	return store, nil
}

// Save persists the store, replacing the previous file atomically so readers
// between runs never observe a partial write.
func (s Store) Save(path string) error {
	return jsonio.Write(path, s)
}
