package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/oddspulse/internal/match"
)

// RenderOptions controls odds rendering.
type RenderOptions struct {
	// Threshold is the value above which odds use LongOddsStyle.
	Threshold float64
	// Styled enables colour and emphasis. Plain output keeps the borders only.
	Styled bool
	// Width bounds each table. Zero lets tables size to content.
	Width int
}

// DefaultRenderOptions returns styled rendering at the standard threshold.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Threshold: match.LongOddsThreshold, Styled: true}
}

// RenderMatchDetail renders the match header followed by one table per odds category.
func RenderMatchDetail(rec match.Record, opts RenderOptions) string {
	var b strings.Builder

	b.WriteString(styled(opts, HeaderStyle, rec.Name))
	b.WriteString("\n")
	b.WriteString(styled(opts, LabelStyle, "ID: "))
	b.WriteString(styled(opts, ValueStyle, rec.ID))
	b.WriteString("\n")

	if len(rec.Odds) == 0 {
		b.WriteString("\n")
		b.WriteString(styled(opts, SubtleStyle, "No odds available"))
		return b.String()
	}

	for _, cat := range rec.Odds {
		b.WriteString("\n")
		b.WriteString(RenderCategory(cat, opts))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderCategory renders a category title, a header row of outcome labels and
// a single data row of values.
func RenderCategory(cat match.Category, opts RenderOptions) string {
	title := styled(opts, CategoryStyle, cat.Name)
	if len(cat.Outcomes) == 0 {
		return title + "\n" + styled(opts, SubtleStyle, "(no outcomes)")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(cat.Labels()...).
		Row(cat.Values()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle(cat, row, col, opts)
		})
	if opts.Styled {
		t = t.BorderStyle(TableBorderStyle)
	}
	if opts.Width > 0 {
		t = t.Width(opts.Width)
	}

	return title + "\n" + t.String()
}

func cellStyle(cat match.Category, row, col int, opts RenderOptions) lipgloss.Style {
	if !opts.Styled {
		return TableCellStyle
	}
	if row == table.HeaderRow {
		return TableHeaderStyle
	}
	if col >= 0 && col < len(cat.Outcomes) && cat.Outcomes[col].IsAbove(opts.Threshold) {
		return LongOddsStyle
	}
	return ShortOddsStyle
}

// RenderSuggestion renders one suggestion row: the match name and its id badge.
func RenderSuggestion(rec match.Record, selected, styledOut bool) string {
	prefix := "  "
	name := rec.Name
	badge := "[" + rec.ID + "]"
	if styledOut {
		badge = BadgeStyle.Render(rec.ID)
		if selected {
			name = SelectedRowStyle.Render(name)
		}
	}
	if selected {
		prefix = "> "
	}
	return prefix + name + "  " + badge
}

func styled(opts RenderOptions, style lipgloss.Style, s string) string {
	if !opts.Styled {
		return s
	}
	return style.Render(s)
}

// RenderSuggestionTable renders search results as a two-column table of id and name.
func RenderSuggestionTable(records match.Collection, opts RenderOptions) string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.ID, rec.Name})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("MATCH ID", "MATCH").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case !opts.Styled:
				return TableCellStyle
			case row == table.HeaderRow:
				return TableHeaderStyle
			default:
				return TableCellStyle
			}
		})
	if opts.Styled {
		t = t.BorderStyle(TableBorderStyle)
	}
	if opts.Width > 0 {
		t = t.Width(opts.Width)
	}
	return t.String()
}
