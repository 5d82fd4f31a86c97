package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain writes unstyled text, for pipes and files.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes coloured text without interaction.
	OutputModeStyled
	// OutputModeInteractive runs the full-screen search view.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the output mode for stdout.
// plain forces OutputModePlain; NO_COLOR or a non-terminal stdout also yields plain.
// A terminal stdout gives OutputModeInteractive when interactive is requested.
func DetectOutputMode(plain, interactive bool) OutputMode {
	return detectOutputMode(plain, interactive, isTerminal(os.Stdout), os.Getenv("NO_COLOR") != "")
}

func detectOutputMode(plain, interactive, tty, noColor bool) OutputMode {
	switch {
	case plain || !tty:
		return OutputModePlain
	case interactive:
		return OutputModeInteractive
	case noColor:
		return OutputModePlain
	default:
		return OutputModeStyled
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms.
}
