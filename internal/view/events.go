package view

import (
	"github.com/rshade/oddspulse/internal/match"
	"github.com/rshade/oddspulse/internal/search"
)

// Event is a named input to Reduce.
type Event interface {
	isEvent()
}

// DataLoaded settles the initial fetch. A non-nil Err leaves the collection empty.
type DataLoaded struct {
	Collection match.Collection
	Err        error
}

// QueryChanged replaces the query text.
type QueryChanged struct {
	Query string
}

// MatchSelected selects the record with Record.ID from the collection.
type MatchSelected struct {
	Record match.Record
}

// SelectionCleared closes the detail view.
type SelectionCleared struct{}

func (DataLoaded) isEvent()       {}
func (QueryChanged) isEvent()     {}
func (MatchSelected) isEvent()    {}
func (SelectionCleared) isEvent() {}

// Reduce returns the state that follows s after ev. It never mutates s.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case DataLoaded:
		s.loading = false
		s.collection = match.Collection{}
		if ev.Err == nil && ev.Collection != nil {
			s.collection = ev.Collection
		}
		s.suggestions = search.ComputeSuggestions(s.query, s.collection)
		return s

	case QueryChanged:
		s.query = ev.Query
		s.suggestions = search.ComputeSuggestions(s.query, s.collection)
		return s

	case MatchSelected:
		rec, ok := s.collection.ByID(ev.Record.ID)
		if !ok {
			return s
		}
		s.selected = rec
		s.query = ""
		s.suggestions = match.Collection{}
		return s

	case SelectionCleared:
		s.selected = nil
		s.query = ""
		s.suggestions = match.Collection{}
		return s

	default:
		return s
	}
}
