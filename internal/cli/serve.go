package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/oddspulse/internal/loader"
	"github.com/rshade/oddspulse/internal/logging"
	"github.com/rshade/oddspulse/internal/server"
)

const defaultServeAddr = ":8080"

func newServeCmd(s *session) *cobra.Command {
	var (
		addr string
		file string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host a match document at /data.json",
		Long: `Serves the match document as a static resource so the search view can load
it with --source http://<addr>/data.json. The file is re-read on every request.
Stops gracefully on SIGINT or SIGTERM.`,
		Example: `  oddspulse serve --addr :8080 --file data.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logging.ComponentLogger(s.logger, "server")
			if _, err := os.Stat(file); err != nil {
				log.Warn().Err(err).Str("file", file).Msg("match document not found, requests will return 404")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cmd.Printf("Serving %s at http://%s%s\n", file, displayAddr(addr), server.DocumentPath)
			return server.ListenAndServe(ctx, addr, server.NewRouter(file, log), log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")
	cmd.Flags().StringVar(&file, "file", loader.DefaultSource, "match document to serve")
	return cmd
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
