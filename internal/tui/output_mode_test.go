package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDetectOutputMode verifies mode selection across inputs.
func TestDetectOutputMode(t *testing.T) {
	tests := []struct {
		name        string
		plain       bool
		interactive bool
		tty         bool
		noColor     bool
		want        OutputMode
	}{
		{name: "pipe", tty: false, interactive: true, want: OutputModePlain},
		{name: "forced plain", plain: true, tty: true, interactive: true, want: OutputModePlain},
		{name: "interactive terminal", tty: true, interactive: true, want: OutputModeInteractive},
		{name: "interactive ignores NO_COLOR", tty: true, interactive: true, noColor: true, want: OutputModeInteractive},
		{name: "styled terminal", tty: true, want: OutputModeStyled},
		{name: "NO_COLOR terminal", tty: true, noColor: true, want: OutputModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectOutputMode(tt.plain, tt.interactive, tt.tty, tt.noColor))
		})
	}
}

// TestOutputMode_String verifies mode names.
func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "unknown", OutputMode(9).String())
}
