// Package search implements suggestion filtering over a match collection.
package search

import (
	"strings"

	"github.com/rshade/oddspulse/internal/match"
)

// ComputeSuggestions returns the records matching query, in collection order.
//
// A record matches when its ID contains query exactly (case-sensitive), or
// when its lower-cased Name contains the lower-cased query. An empty query
// matches nothing. The result never aliases the input slice.
func ComputeSuggestions(query string, records match.Collection) match.Collection {
	if len(query) == 0 {
		return match.Collection{}
	}

	lowered := strings.ToLower(query)
	suggestions := match.Collection{}
	for _, rec := range records {
		if Matches(rec, query, lowered) {
			suggestions = append(suggestions, rec)
		}
	}
	return suggestions
}

// Matches reports whether rec matches query. lowered must be strings.ToLower(query).
func Matches(rec match.Record, query, lowered string) bool {
	return strings.Contains(rec.ID, query) ||
		strings.Contains(strings.ToLower(rec.Name), lowered)
}
