// Package listview provides a cursor list for Bubble Tea views.
//
// Only the rows inside the viewport are rendered, and the viewport follows
// the cursor. The owning model decides which keys reach the list, so typing
// into a neighbouring text input never moves the cursor.
package listview
