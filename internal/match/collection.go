package match

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Collection errors.
var (
	ErrNotArray    = errors.New("match document must be a JSON array")
	ErrMissingID   = errors.New("match record has no matchId")
	ErrDuplicateID = errors.New("duplicate matchId")
)

// Collection is an ordered, read-only sequence of match records.
type Collection []Record

// Decode parses a match document from r. The document must be a JSON array
// of records, each with a non-empty matchId.
func Decode(r io.Reader) (Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading match document: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var records Collection
	if err = json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("decoding match document: %w", err)
	}

	for i, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrMissingID)
		}
	}

	if records == nil {
		records = Collection{}
	}
	return records, nil
}

// Validate checks collection-level invariants. It returns an error wrapping
// ErrDuplicateID that lists every id seen more than once.
func (c Collection) Validate() error {
	seen := make(map[string]int, len(c))
	var dups []string
	for _, rec := range c {
		seen[rec.ID]++
		if seen[rec.ID] == 2 { //nolint:mnd // Report on the first repeat only.
			dups = append(dups, rec.ID)
		}
	}
	if len(dups) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, strings.Join(dups, ", "))
	}
	return nil
}

// ByID returns the first record with the given id.
func (c Collection) ByID(id string) (*Record, bool) {
	for i := range c {
		if c[i].ID == id {
			return &c[i], true
		}
	}
	return nil, false
}

// Contains reports whether a record with the given id is present.
func (c Collection) Contains(id string) bool {
	_, ok := c.ByID(id)
	return ok
}

// IDs returns the record ids in collection order.
func (c Collection) IDs() []string {
	ids := make([]string, len(c))
	for i, rec := range c {
		ids[i] = rec.ID
	}
	return ids
}
