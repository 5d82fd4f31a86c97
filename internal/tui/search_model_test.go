package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/oddspulse/internal/match"
	"github.com/rshade/oddspulse/internal/view"
)

func sampleRecords() match.Collection {
	return match.Collection{
		{
			ID:   "101",
			Name: "Real Madrid vs Barcelona",
			Odds: match.Odds{{Name: "1X2", Outcomes: []match.Outcome{
				{Label: "Home", Value: 1.8}, {Label: "Draw", Value: 3.5}, {Label: "Away", Value: 4.2},
			}}},
		},
		{
			ID:   "102",
			Name: "Liverpool vs Chelsea",
			Odds: match.Odds{
				{Name: "1X2", Outcomes: []match.Outcome{{Label: "Home", Value: 2.1}}},
				{Name: "Over/Under", Outcomes: []match.Outcome{
					{Label: "Over 2.5", Value: 1.85}, {Label: "Under 2.5", Value: 1.95},
				}},
			},
		},
		{ID: "201", Name: "Real Sociedad vs Betis"},
	}
}

func staticLoad(records match.Collection, err error) LoadFunc {
	return func(context.Context) (match.Collection, error) {
		return records, err
	}
}

func send(t *testing.T, m SearchModel, msg tea.Msg) SearchModel {
	t.Helper()
	updated, _ := m.Update(msg)
	sm, ok := updated.(SearchModel)
	require.True(t, ok)
	return sm
}

func typeText(t *testing.T, m SearchModel, text string) SearchModel {
	t.Helper()
	for _, r := range text {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func loadedModel(t *testing.T) SearchModel {
	t.Helper()
	m := NewSearchModel(context.Background(), staticLoad(sampleRecords(), nil), SearchOptions{Source: "data.json"})
	return send(t, m, view.DataLoaded{Collection: sampleRecords()})
}

// TestNewSearchModel verifies the model starts loading.
func TestNewSearchModel(t *testing.T) {
	m := NewSearchModel(context.Background(), staticLoad(sampleRecords(), nil), SearchOptions{})

	assert.Equal(t, view.PhaseLoading, m.State().Phase())
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Loading matches...")
	assert.InDelta(t, match.LongOddsThreshold, m.opts.LongOddsThreshold, 1e-9)
}

// TestSearchModel_LoadCmd verifies the load command reports a DataLoaded event.
func TestSearchModel_LoadCmd(t *testing.T) {
	boom := errors.New("boom")
	m := NewSearchModel(context.Background(), staticLoad(nil, boom), SearchOptions{})

	msg := m.loadCmd()()
	ev, ok := msg.(view.DataLoaded)
	require.True(t, ok)
	assert.ErrorIs(t, ev.Err, boom)

	m = NewSearchModel(context.Background(), nil, SearchOptions{})
	ev, ok = m.loadCmd()().(view.DataLoaded)
	require.True(t, ok)
	assert.NoError(t, ev.Err)
	assert.Empty(t, ev.Collection)
}

// TestSearchModel_TypingDisabledWhileLoading verifies keys are ignored before the load settles.
func TestSearchModel_TypingDisabledWhileLoading(t *testing.T) {
	m := NewSearchModel(context.Background(), nil, SearchOptions{})

	m = typeText(t, m, "real")

	assert.Empty(t, m.State().Query())
	assert.Empty(t, m.input.Value())
}

// TestSearchModel_SuggestAndSelect walks Idle → Suggesting → Selected → Idle.
func TestSearchModel_SuggestAndSelect(t *testing.T) {
	m := loadedModel(t)
	assert.Equal(t, view.PhaseIdle, m.State().Phase())
	assert.Contains(t, m.View(), "No match selected")
	assert.Contains(t, m.View(), "3 matches")

	m = typeText(t, m, "real")
	assert.Equal(t, view.PhaseSuggesting, m.State().Phase())
	assert.Equal(t, []string{"101", "201"}, m.State().Suggestions().IDs())
	out := m.View()
	assert.Contains(t, out, "Real Madrid vs Barcelona")
	assert.Contains(t, out, "Real Sociedad vs Betis")
	assert.NotContains(t, out, "Liverpool")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.State().Selected())
	assert.Equal(t, "201", m.State().Selected().ID)
	assert.Empty(t, m.State().Query())
	assert.Empty(t, m.input.Value())
	assert.Empty(t, m.State().Suggestions())
	assert.Zero(t, m.suggestions.Len())
	assert.Contains(t, m.View(), "ID: 201")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.State().Selected())
	assert.Equal(t, view.PhaseIdle, m.State().Phase())
	assert.Empty(t, m.input.Value())
}

// TestSearchModel_DetailShowsOddsTables verifies each category renders labels and values.
func TestSearchModel_DetailShowsOddsTables(t *testing.T) {
	m := typeText(t, loadedModel(t), "102")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	out := m.View()
	for _, want := range []string{"Liverpool vs Chelsea", "1X2", "Over/Under", "Over 2.5", "Under 2.5", "1.85", "1.95", "2.1"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "Press ESC to close")
}

// TestSearchModel_EscClearsQueryFirst verifies Esc clears a typed query before closing the detail.
func TestSearchModel_EscClearsQueryFirst(t *testing.T) {
	m := typeText(t, loadedModel(t), "101")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(t, m, "liv")
	require.Equal(t, []string{"102"}, m.State().Suggestions().IDs())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.State().Query())
	assert.Empty(t, m.State().Suggestions())
	require.NotNil(t, m.State().Selected())
	assert.Equal(t, "101", m.State().Selected().ID)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.State().Selected())
}

// TestSearchModel_BackspaceToEmpty verifies erasing the query hides suggestions.
func TestSearchModel_BackspaceToEmpty(t *testing.T) {
	m := typeText(t, loadedModel(t), "re")
	require.NotEmpty(t, m.State().Suggestions())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Empty(t, m.State().Query())
	assert.Empty(t, m.State().Suggestions())
	assert.Equal(t, view.PhaseIdle, m.State().Phase())
}

// TestSearchModel_EnterWithoutSuggestions verifies Enter is a no-op with nothing to pick.
func TestSearchModel_EnterWithoutSuggestions(t *testing.T) {
	m := typeText(t, loadedModel(t), "zz")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.State().Selected())
	assert.Equal(t, "zz", m.State().Query())
}

// TestSearchModel_LoadFailure verifies a failed load settles silently to an empty view.
func TestSearchModel_LoadFailure(t *testing.T) {
	m := NewSearchModel(context.Background(), nil, SearchOptions{Source: "missing.json"})
	m = send(t, m, view.DataLoaded{Err: errors.New("open missing.json: no such file")})

	assert.False(t, m.State().Loading())
	assert.Empty(t, m.State().Collection())

	out := m.View()
	assert.Contains(t, out, "No match selected")
	assert.NotContains(t, out, "no such file")

	m = typeText(t, m, "real")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.State().Suggestions())
	assert.Nil(t, m.State().Selected())
}

// TestSearchModel_SuggestionLimit verifies the dropdown is capped and reports hidden rows.
func TestSearchModel_SuggestionLimit(t *testing.T) {
	m := NewSearchModel(context.Background(), nil, SearchOptions{SuggestionLimit: 1})
	m = send(t, m, view.DataLoaded{Collection: sampleRecords()})

	m = typeText(t, m, "vs")
	assert.Len(t, m.State().Suggestions(), 3)
	assert.Contains(t, m.View(), "2 more")
}

// TestSearchModel_WindowResize verifies dimensions are tracked.
func TestSearchModel_WindowResize(t *testing.T) {
	m := send(t, loadedModel(t), tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

// TestSearchModel_Quit verifies ctrl+c quits from any phase.
func TestSearchModel_Quit(t *testing.T) {
	m := NewSearchModel(context.Background(), nil, SearchOptions{})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	sm := updated.(SearchModel)
	assert.True(t, sm.Quitting())
	assert.Empty(t, sm.View())
}
