package tui

import "github.com/charmbracelet/lipgloss"

// Colour palette.
const (
	colorAccent  = lipgloss.Color("220")
	colorSubtle  = lipgloss.Color("110")
	colorBorder  = lipgloss.Color("25")
	colorLong    = lipgloss.Color("205")
	colorShort   = lipgloss.Color("35")
	colorBadgeBg = lipgloss.Color("26")
)

// Shared styles.
//
//nolint:gochecknoglobals // Styles are immutable values shared by all views.
var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	LabelStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	ValueStyle = lipgloss.NewStyle().Bold(true)

	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	InfoStyle = lipgloss.NewStyle().Foreground(colorAccent)

	BadgeStyle = lipgloss.NewStyle().Background(colorBadgeBg).Padding(0, 1)

	SelectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	CategoryStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSubtle).Padding(0, 1)

	TableCellStyle = lipgloss.NewStyle().Padding(0, 1)

	LongOddsStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(colorLong)

	ShortOddsStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(colorShort)

	TableBorderStyle = lipgloss.NewStyle().Foreground(colorBorder)

	EmptyStateStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2) //nolint:mnd // Box padding.
)
