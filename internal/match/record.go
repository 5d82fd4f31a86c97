package match

import (
	"strconv"
)

// LongOddsThreshold is the value above which an outcome is displayed as long odds.
const LongOddsThreshold = 2.5

// Record is one sporting event's odds listing.
type Record struct {
	// ID is an opaque identifier, unique within a collection.
	ID string `json:"matchId"`

	// Name is the human-readable display name (e.g. team names).
	Name string `json:"match"`

	// Odds holds the odds categories in document order.
	Odds Odds `json:"odds"`
}

// Category is a named group of outcomes, e.g. "1X2" or "Over/Under".
type Category struct {
	Name     string
	Outcomes []Outcome
}

// Outcome is a single labelled odds value within a category.
type Outcome struct {
	Label string
	Value float64
}

// IsLong reports whether the outcome exceeds LongOddsThreshold.
func (o Outcome) IsLong() bool {
	return o.IsAbove(LongOddsThreshold)
}

// IsAbove reports whether the outcome value is strictly greater than threshold.
func (o Outcome) IsAbove(threshold float64) bool {
	return o.Value > threshold
}

// FormatValue renders the value in its shortest decimal form ("1.8", "3.5", "10").
func (o Outcome) FormatValue() string {
	return strconv.FormatFloat(o.Value, 'f', -1, 64)
}

// Labels returns the outcome labels in order, for use as a table header row.
func (c Category) Labels() []string {
	labels := make([]string, len(c.Outcomes))
	for i, o := range c.Outcomes {
		labels[i] = o.Label
	}
	return labels
}

// Values returns the formatted outcome values in order, for use as a table data row.
func (c Category) Values() []string {
	values := make([]string, len(c.Outcomes))
	for i, o := range c.Outcomes {
		values[i] = o.FormatValue()
	}
	return values
}
