// Package cli implements the oddspulse command tree.
package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/oddspulse/internal/config"
	"github.com/rshade/oddspulse/internal/loader"
	"github.com/rshade/oddspulse/internal/logging"
	"github.com/rshade/oddspulse/internal/match"
	"github.com/rshade/oddspulse/internal/tui"
)

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	source     string
	configPath string
	debug      bool
	plain      bool
}

// session is the per-invocation state built in PersistentPreRunE.
type session struct {
	flags     rootFlags
	cfg       *config.Config
	logResult *logging.Result
	logger    zerolog.Logger
}

// NewRootCmd creates the root Cobra command for the oddspulse CLI.
// Without a subcommand it opens the interactive search view.
func NewRootCmd(ver string) *cobra.Command {
	s := &session{logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "oddspulse",
		Short:         "Search sports matches and view their betting odds",
		Long:          "OddsPulse: search a match collection by id or name and view live odds per market.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return s.cleanup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.runInteractive(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&s.flags.source, "source", "",
		"match document location, a file path or http(s) URL (default \""+loader.DefaultSource+"\")")
	cmd.PersistentFlags().StringVar(&s.flags.configPath, "config", "", "config file (default ~/.oddspulse/config.yaml)")
	cmd.PersistentFlags().BoolVar(&s.flags.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&s.flags.plain, "plain", false, "disable colours and the interactive view")

	cmd.AddCommand(
		newSearchCmd(s),
		newShowCmd(s),
		newServeCmd(s),
		newConfigCmd(s),
		newVersionCmd(ver),
	)
	return cmd
}

const rootCmdExample = `  # Open the interactive search view
  oddspulse

  # Search from a remote document
  oddspulse --source https://example.com/data.json

  # Print matching records as JSON
  oddspulse search madrid --output json

  # Show the odds for one match
  oddspulse show 101

  # Host data.json for the search view
  oddspulse serve --addr :8080 --file data.json`

// interactive reports whether cmd will take over the terminal.
func (s *session) interactive(cmd *cobra.Command) bool {
	return cmd == cmd.Root() && tui.DetectOutputMode(s.flags.plain, true) == tui.OutputModeInteractive
}

// setup loads configuration, applies flag overrides and installs the session logger.
func (s *session) setup(cmd *cobra.Command) error {
	path := s.flags.configPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return err
	}
	if s.flags.source != "" {
		cfg.Source = s.flags.source
	}
	s.cfg = cfg

	interactive := s.interactive(cmd)
	loggingCfg := cfg.Logging
	if s.flags.debug {
		loggingCfg.Level = "debug"
		if !interactive {
			loggingCfg.Format = logging.FormatConsole
			loggingCfg.File = ""
		}
	}

	result, err := logging.New(loggingCfg.ToLoggingConfig(interactive))
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, logging to stderr\n", err)
	}
	s.logResult = result

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	sessionID := logging.NewSessionID()
	ctx = logging.ContextWithSession(ctx, logging.ComponentLogger(result.Logger, "cli"), sessionID)
	s.logger = *logging.FromContext(ctx)
	cmd.SetContext(ctx)

	s.logger.Info().
		Str("command", cmd.Name()).
		Str("source", cfg.Source).
		Bool("interactive", interactive).
		Msg("command started")
	return nil
}

func (s *session) cleanup() error {
	if s.logResult == nil {
		return nil
	}
	return s.logResult.Close()
}

// runInteractive opens the search view, or prints a hint when stdout is not a terminal.
func (s *session) runInteractive(cmd *cobra.Command) error {
	if !s.interactive(cmd) {
		cmd.Println("oddspulse: stdout is not a terminal.")
		cmd.Println("Use 'oddspulse search <query>' or 'oddspulse show <matchId>' for scripted output.")
		return nil
	}

	ctx := cmd.Context()
	l := loader.New(s.cfg.Source)
	model := tui.NewSearchModel(ctx, l.Load, tui.SearchOptions{
		Source:            l.Source(),
		LongOddsThreshold: s.cfg.Display.LongOddsThreshold,
		SuggestionLimit:   s.cfg.Display.SuggestionLimit,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive search: %w", err)
	}
	s.logger.Info().Msg("interactive search closed")
	return nil
}

// loadCollection fetches the collection for non-interactive commands.
// A failure is logged and yields an empty collection, like the search view.
func (s *session) loadCollection(ctx context.Context) match.Collection {
	l := loader.New(s.cfg.Source)
	records, err := l.Load(ctx)
	if err != nil {
		loader.LogFailure(s.logger, l.Source(), err)
		return match.Collection{}
	}
	return records
}

// renderOptions builds odds rendering options for non-interactive output.
func (s *session) renderOptions() tui.RenderOptions {
	return tui.RenderOptions{
		Threshold: s.cfg.Display.LongOddsThreshold,
		Styled:    tui.DetectOutputMode(s.flags.plain, false) == tui.OutputModeStyled,
	}
}
