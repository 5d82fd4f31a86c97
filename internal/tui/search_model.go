package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/oddspulse/internal/loader"
	"github.com/rshade/oddspulse/internal/logging"
	"github.com/rshade/oddspulse/internal/match"
	"github.com/rshade/oddspulse/internal/tui/listview"
	"github.com/rshade/oddspulse/internal/view"
)

// Key names handled by the search view.
const (
	keyEnter = "enter"
	keyEsc   = "esc"
	keyCtrlC = "ctrl+c"
	keyUp    = "up"
	keyDown  = "down"
	keyCtrlP = "ctrl+p"
	keyCtrlN = "ctrl+n"
	keyPgUp  = "pgup"
	keyPgDn  = "pgdown"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
	// defaultSuggestionRows bounds the suggestion dropdown when no limit is configured.
	defaultSuggestionRows = 10
	// chromeHeight is the number of rows used by the title, input and footer.
	chromeHeight = 6
	inputWidth   = 48
)

const searchPlaceholder = "Search matches by ID or name..."

// LoadFunc retrieves the match collection.
type LoadFunc func(ctx context.Context) (match.Collection, error)

// SearchOptions configures a SearchModel.
type SearchOptions struct {
	// Source is shown in the footer and logged on failure.
	Source string
	// LongOddsThreshold picks the style for each odds value.
	LongOddsThreshold float64
	// SuggestionLimit caps visible suggestion rows. Zero uses the window height.
	SuggestionLimit int
}

// SearchModel is the Bubble Tea model for searching matches and viewing odds.
// All view state lives in a view.State snapshot advanced by view.Reduce.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type SearchModel struct {
	ctx  context.Context
	log  zerolog.Logger
	load LoadFunc
	opts SearchOptions

	state view.State

	input       textinput.Model
	spinner     spinner.Model
	suggestions *listview.Model[match.Record]

	width  int
	height int
	quit   bool
}

// NewSearchModel creates the search view. The load function runs once from Init.
func NewSearchModel(ctx context.Context, load LoadFunc, opts SearchOptions) SearchModel {
	if opts.LongOddsThreshold == 0 {
		opts.LongOddsThreshold = match.LongOddsThreshold
	}

	input := textinput.New()
	input.Placeholder = searchPlaceholder
	input.Width = inputWidth
	input.Prompt = "> "
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = InfoStyle

	m := SearchModel{
		ctx:     ctx,
		log:     logging.ComponentLogger(*logging.FromContext(ctx), "tui"),
		load:    load,
		opts:    opts,
		state:   view.Initial(),
		input:   input,
		spinner: sp,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.suggestions = listview.New(nil, m.suggestionRows(), m.renderSuggestion)
	return m
}

// Init starts the spinner, the cursor blink and the one-shot data load.
func (m SearchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink, m.loadCmd())
}

// loadCmd runs the load function and reports the outcome as a view.DataLoaded event.
func (m SearchModel) loadCmd() tea.Cmd {
	ctx := m.ctx
	load := m.load
	return func() tea.Msg {
		if load == nil {
			return view.DataLoaded{}
		}
		records, err := load(ctx)
		return view.DataLoaded{Collection: records, Err: err}
	}
}

// Update handles messages and advances the view state.
func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.suggestions.SetHeight(m.suggestionRows())
		return m, nil

	case view.DataLoaded:
		return m.handleDataLoaded(msg)

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m SearchModel) handleDataLoaded(ev view.DataLoaded) (tea.Model, tea.Cmd) {
	if ev.Err != nil {
		loader.LogFailure(m.log, m.opts.Source, ev.Err)
	} else {
		m.log.Debug().Int("matches", len(ev.Collection)).Msg("collection ready")
	}
	m.apply(ev)
	return m, nil
}

func (m SearchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keyCtrlC {
		m.quit = true
		return m, tea.Quit
	}

	// The search box is disabled until the load settles.
	if m.state.Loading() {
		return m, nil
	}

	switch key {
	case keyUp, keyDown, keyCtrlP, keyCtrlN, keyPgUp, keyPgDn:
		if m.suggestions.Len() > 0 {
			m.suggestions.Update(msg)
			return m, nil
		}
	case keyEnter:
		if item := m.suggestions.SelectedItem(); item != nil {
			m.log.Debug().Str("match_id", item.ID).Msg("match selected")
			m.apply(view.MatchSelected{Record: *item})
			m.input.Reset()
		}
		return m, nil
	case keyEsc:
		switch {
		case m.state.Query() != "":
			m.apply(view.QueryChanged{Query: ""})
			m.input.Reset()
		case m.state.HasSelection():
			m.apply(view.SelectionCleared{})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.state.Query() {
		m.apply(view.QueryChanged{Query: m.input.Value()})
	}
	return m, cmd
}

// apply reduces ev into the state and refreshes the suggestion list.
func (m *SearchModel) apply(ev view.Event) {
	before := m.state.Suggestions()
	m.state = view.Reduce(m.state, ev)
	if !sameIDs(before, m.state.Suggestions()) {
		m.suggestions.SetItems(m.state.Suggestions())
	}
}

func (m SearchModel) suggestionRows() int {
	if m.opts.SuggestionLimit > 0 {
		return m.opts.SuggestionLimit
	}
	rows := m.height - chromeHeight
	if rows > defaultSuggestionRows {
		rows = defaultSuggestionRows
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m SearchModel) renderSuggestion(rec match.Record, selected bool) string {
	return RenderSuggestion(rec, selected, true)
}

// State returns the current view state snapshot.
func (m SearchModel) State() view.State {
	return m.state
}

// Quitting reports whether the user asked to exit.
func (m SearchModel) Quitting() bool {
	return m.quit
}

func sameIDs(a, b match.Collection) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
