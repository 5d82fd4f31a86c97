// Command oddspulse searches a sports match collection and displays its odds.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rshade/oddspulse/internal/cli"
	"github.com/rshade/oddspulse/pkg/version"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

// run executes the command tree and maps any error to an exit code.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return 0
}

// exitCode returns the process exit status for err.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
