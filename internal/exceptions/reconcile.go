package exceptions

// Reconcile prunes and updates the stored exception map against this run's
// output, returning a new map without mutating its inputs.
//
// An entry survives only when all of these hold:
//   - its string ID still exists in the current extraction,
//   - its excuses were still needed this run (at least one stored token is
//     still suppressing a live dictionary miss, or the string is explicitly
//     excluded from checks).
//
// Surviving entries whose live misspelling list differs from the stored one
// are overwritten with the live list: the store tracks currently-excused
// tokens, not a historical ledger. Running Reconcile twice over the same
// inputs yields an identical result.
func Reconcile(stored Store, live map[string][]string, currentIDs, stillNeeded map[string]bool) Store {
	result := make(Store, len(stored))

	for id, tokens := range stored {
		if !currentIDs[id] {
			// String no longer exists.
			continue
		}
		if !stillNeeded[id] {
			// Nothing was excused for this string anymore: either the
			// tokens left the text or the dictionary learned them.
			continue
		}

		if liveTokens, ok := live[id]; ok && !equalTokens(liveTokens, tokens) {
			result[id] = copyTokens(liveTokens)
			continue
		}
		result[id] = copyTokens(tokens)
	}

	return result
}

func equalTokens(a, b []string) bool {
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

func copyTokens(tokens []string) []string {
	out := make([]string, len(tokens))
	copy(out, tokens)
	return out
}
