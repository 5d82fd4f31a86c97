package config

import (
	"github.com/rshade/oddspulse/internal/logging"
)

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ToLoggingConfig converts the file settings to a logging.Config.
//
// The conversion applies these rules:
//   - Level, Format are copied directly
//   - If File is set, Output becomes "file"
//   - If File is empty, Output is "stderr" for non-interactive runs and
//     "discard" when interactive, so log lines never draw over the TUI
func (lc LoggingConfig) ToLoggingConfig(interactive bool) logging.Config {
	output := logging.OutputStderr
	switch {
	case lc.File != "":
		output = logging.OutputFile
	case interactive:
		output = logging.OutputDiscard
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
