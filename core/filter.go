package core

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// FilterCurrencies narrows currencies to the entries whose name or code
// contains query, ignoring case. Input order is preserved. An empty query
// returns currencies itself, not a copy.
func FilterCurrencies(currencies []Currency, query string) []Currency {
	if query == "" {
		return currencies
	}
	q := strings.ToLower(query)
	out := make([]Currency, 0, len(currencies))
	for _, c := range currencies {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Code), q) {
			out = append(out, c)
		}
	}
	return out
}

// maxSuggestDistance bounds how far a mistyped code may be from a real one.
const maxSuggestDistance = 1

// SuggestCode returns the currency whose code is closest to query by edit
// distance, for queries that look like a mistyped code. Ties resolve to the
// earlier entry.
func SuggestCode(currencies []Currency, query string) (Currency, bool) {
	q := strings.ToUpper(strings.TrimSpace(query))
	if len(q) < 2 {
		return Currency{}, false
	}
	best := -1
	bestDist := maxSuggestDistance + 1
	for i := range currencies {
		d := levenshtein.ComputeDistance(q, strings.ToUpper(currencies[i].Code))
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return Currency{}, false
	}
	return currencies[best], true
}
