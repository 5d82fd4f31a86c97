package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/oddspulse/internal/tui"
)

// ErrMatchNotFound is returned by show for an id absent from the collection.
var ErrMatchNotFound = errors.New("match not found")

func newShowCmd(s *session) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <matchId>",
		Short: "Print the odds tables for one match",
		Example: `  oddspulse show 101
  oddspulse show 101 --plain
  oddspulse show 101 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			id := args[0]
			rec, ok := s.loadCollection(cmd.Context()).ByID(id)
			if !ok {
				return fmt.Errorf("%w: %s", ErrMatchNotFound, id)
			}

			if output == outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderMatchDetail(*rec, s.renderOptions()))
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")
	return cmd
}
