package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/oddspulse/internal/search"
	"github.com/rshade/oddspulse/internal/tui"
)

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
)

func validateOutput(format string) error {
	switch format {
	case outputTable, outputJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func newSearchCmd(s *session) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Print the matches whose id or name contains the query",
		Long: `Loads the match collection once and prints every record whose id contains
the query (case-sensitive) or whose name contains it (case-insensitive).
An empty query, an empty result or an unavailable document prints nothing.`,
		Example: `  oddspulse search madrid
  oddspulse search 10 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			records := s.loadCollection(cmd.Context())
			results := search.ComputeSuggestions(args[0], records)
			s.logger.Debug().
				Str("query", args[0]).
				Int("results", len(results)).
				Msg("search complete")
			if len(results) == 0 {
				return nil
			}

			if output == outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			opts := s.renderOptions()
			_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSuggestionTable(results, opts))
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")
	return cmd
}
