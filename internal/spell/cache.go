package spell

import "sync"

// Cached is a memoizing read-through decorator around an Oracle. The same
// words recur across thousands of strings, and heuristic probes synthesize
// repeated multi-token candidates, so lookups are cached for the run. Safe
// for concurrent readers.
type Cached struct {
	oracle Oracle
	mu     sync.RWMutex
	memo   map[string]bool
}

// NewCached wraps an Oracle with an in-memory verdict cache.
func NewCached(oracle Oracle) *Cached {
	return &Cached{
		oracle: oracle,
		memo:   make(map[string]bool),
	}
}

// Spell implements Oracle.
func (c *Cached) Spell(word string) bool {
	c.mu.RLock()
	if v, ok := c.memo[word]; ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	v := c.oracle.Spell(word)

	c.mu.Lock()
	c.memo[word] = v
	c.mu.Unlock()

	return v
}

// AddWord implements Oracle. The memo is reset since prior negative verdicts
// may no longer hold.
func (c *Cached) AddWord(word string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.oracle.AddWord(word)
	c.memo = make(map[string]bool)
}
