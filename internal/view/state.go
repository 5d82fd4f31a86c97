// Package view models the search-and-display view as an immutable state
// snapshot advanced by a pure reducer over named events.
package view

import (
	"github.com/rshade/oddspulse/internal/match"
)

// Phase is the derived view-level state.
type Phase int

const (
	// PhaseLoading is the initial phase while the collection is being fetched.
	PhaseLoading Phase = iota
	// PhaseIdle shows no suggestions and no selection.
	PhaseIdle
	// PhaseSuggesting has a non-empty query; suggestions may be empty.
	PhaseSuggesting
	// PhaseSelected shows the detail of one record.
	PhaseSelected
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseIdle:
		return "idle"
	case PhaseSuggesting:
		return "suggesting"
	case PhaseSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the view. Use Reduce to derive the next one.
type State struct {
	loading     bool
	collection  match.Collection
	query       string
	suggestions match.Collection
	selected    *match.Record
}

// Initial returns the loading state with an empty collection.
func Initial() State {
	return State{
		loading:     true,
		collection:  match.Collection{},
		suggestions: match.Collection{},
	}
}

// Loading reports whether the initial fetch is still pending.
func (s State) Loading() bool { return s.loading }

// Collection returns the loaded records.
func (s State) Collection() match.Collection { return s.collection }

// Query returns the current query text.
func (s State) Query() string { return s.query }

// Suggestions returns the records matching the current query.
func (s State) Suggestions() match.Collection { return s.suggestions }

// Selected returns the selected record, or nil.
func (s State) Selected() *match.Record { return s.selected }

// HasSelection reports whether a record is selected.
func (s State) HasSelection() bool { return s.selected != nil }

// Phase derives the view phase. A selection takes precedence over suggestions.
func (s State) Phase() Phase {
	switch {
	case s.loading:
		return PhaseLoading
	case s.selected != nil:
		return PhaseSelected
	case s.query != "":
		return PhaseSuggesting
	default:
		return PhaseIdle
	}
}
