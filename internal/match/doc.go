// Package match defines the match record data contract: a sporting event's
// identifier, display name, and odds grouped by category.
//
// Odds categories carry no fixed schema. Each category is an ordered list of
// outcome labels and numeric values, kept in document order so that tables
// render their columns the way the source document lists them.
package match
