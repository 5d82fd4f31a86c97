package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats counts with thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

const (
	appTitle    = "OddsPulse"
	appSubtitle = "Odds at your fingertips"
)

// View renders the current view (Bubble Tea interface).
func (m SearchModel) View() string {
	if m.quit {
		return ""
	}

	sections := []string{
		TitleStyle.Render(appTitle) + "  " + SubtleStyle.Render(appSubtitle),
		"",
		m.renderInput(),
	}

	if m.suggestions.Len() > 0 {
		sections = append(sections, m.renderSuggestions())
	}

	sections = append(sections, "", m.renderMain(), "", m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderInput renders the search box, with a spinner while loading.
func (m SearchModel) renderInput() string {
	if m.state.Loading() {
		return m.input.View() + " " + m.spinner.View()
	}
	return m.input.View()
}

// renderSuggestions renders the dropdown and a count of rows below the fold.
func (m SearchModel) renderSuggestions() string {
	out := m.suggestions.View()
	if hidden := m.suggestions.Hidden(); hidden > 0 {
		out += "\n" + SubtleStyle.Render(printer.Sprintf("  … %d more", hidden))
	}
	return out
}

// renderMain renders the detail panel, the loading message or the empty state.
func (m SearchModel) renderMain() string {
	if rec := m.state.Selected(); rec != nil {
		opts := RenderOptions{
			Threshold: m.opts.LongOddsThreshold,
			Styled:    true,
		}
		return RenderMatchDetail(*rec, opts) + "\n\n" + SubtleStyle.Render("Press ESC to close")
	}

	if m.state.Loading() {
		return m.spinner.View() + " Loading matches..."
	}

	return EmptyStateStyle.Render(
		HeaderStyle.Render("No match selected") + "\n" +
			SubtleStyle.Render("Search for a match above to view live odds"),
	)
}

// renderFooter renders the match count and key help.
func (m SearchModel) renderFooter() string {
	status := "loading"
	if !m.state.Loading() {
		status = printer.Sprintf("%d matches", len(m.state.Collection()))
	}
	help := "↑/↓ move • enter select • esc clear/close • ctrl+c quit"
	return SubtleStyle.Render(fmt.Sprintf("%s | %s", status, help))
}
