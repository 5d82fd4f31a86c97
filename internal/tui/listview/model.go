package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// halfViewportDivisor is used to calculate half the viewport height for centering.
const halfViewportDivisor = 2

// RenderFunc renders an item. selected is true for the row under the cursor.
type RenderFunc[T any] func(item T, selected bool) string

// Model is a cursor list over items with a fixed-height viewport.
type Model[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	// cursor is the highlighted item index (0-based)
	cursor int

	// visibleFrom and visibleTo bound the rendered rows; visibleTo is exclusive
	visibleFrom int
	visibleTo   int

	// height is the viewport height in rows; zero or less shows every row
	height int
}

// New creates a list model showing at most height rows.
func New[T any](items []T, height int, renderFunc RenderFunc[T]) *Model[T] {
	m := &Model[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     height,
	}
	m.updateVisibleRange()
	return m
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update moves the cursor on navigation keys. Rune keys are ignored.
//
//nolint:exhaustive // Only navigation keys move the cursor.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyUp, tea.KeyCtrlP:
		m.MoveUp()
	case tea.KeyDown, tea.KeyCtrlN:
		m.MoveDown()
	case tea.KeyPgUp:
		m.SetCursor(m.cursor - m.pageSize())
	case tea.KeyPgDown:
		m.SetCursor(m.cursor + m.pageSize())
	case tea.KeyHome:
		m.SetCursor(0)
	case tea.KeyEnd:
		m.SetCursor(len(m.items) - 1)
	}
	return m, nil
}

// MoveUp moves the cursor one row up, stopping at the first row.
func (m *Model[T]) MoveUp() {
	m.SetCursor(m.cursor - 1)
}

// MoveDown moves the cursor one row down, stopping at the last row.
func (m *Model[T]) MoveDown() {
	m.SetCursor(m.cursor + 1)
}

// SetItems replaces the items and resets the cursor to the first row.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor = 0
	m.updateVisibleRange()
}

// SetHeight changes the viewport height.
func (m *Model[T]) SetHeight(height int) {
	m.height = height
	m.updateVisibleRange()
}

// SetCursor moves the cursor to index, clamped to valid bounds.
func (m *Model[T]) SetCursor(index int) {
	switch {
	case len(m.items) == 0 || index < 0:
		m.cursor = 0
	case index >= len(m.items):
		m.cursor = len(m.items) - 1
	default:
		m.cursor = index
	}
	m.updateVisibleRange()
}

func (m *Model[T]) pageSize() int {
	if m.height <= 0 {
		return len(m.items)
	}
	return m.height
}

// updateVisibleRange keeps the cursor inside the viewport, centring it when possible.
func (m *Model[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom, m.visibleTo = 0, 0
		return
	}
	if m.height <= 0 || m.height >= len(m.items) {
		m.visibleFrom, m.visibleTo = 0, len(m.items)
		return
	}

	from := m.cursor - m.height/halfViewportDivisor
	if from < 0 {
		from = 0
	}
	to := from + m.height
	if to > len(m.items) {
		to = len(m.items)
		from = to - m.height
	}
	m.visibleFrom, m.visibleTo = from, to
}

// View renders the visible rows, one per line.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	lines := make([]string, 0, m.visibleTo-m.visibleFrom)
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		lines = append(lines, m.renderFunc(m.items[i], i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

// Len returns the number of items.
func (m *Model[T]) Len() int {
	return len(m.items)
}

// Cursor returns the highlighted index.
func (m *Model[T]) Cursor() int {
	return m.cursor
}

// VisibleFrom returns the first visible index (inclusive).
func (m *Model[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible index (exclusive).
func (m *Model[T]) VisibleTo() int {
	return m.visibleTo
}

// Hidden returns how many items fall outside the viewport.
func (m *Model[T]) Hidden() int {
	return len(m.items) - (m.visibleTo - m.visibleFrom)
}

// SelectedItem returns the item under the cursor, or nil for an empty list.
func (m *Model[T]) SelectedItem() *T {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return &m.items[m.cursor]
}
