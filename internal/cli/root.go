// Package cli provides the command-line interface for infowriter-convert.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/infowriter-convert/internal/cli/commands"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
)

// Execute runs the root command with the process arguments and returns the exit code.
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the root command with args and returns the exit code.
// The banner is printed first, for every invocation including help and usage errors.
// Fatal errors are printed to stderr followed by the usage text.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	_, _ = fmt.Fprintln(stdout, commands.Banner)

	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "✗ Error: %v\n", err)
		_, _ = fmt.Fprintln(stderr)
		_, _ = fmt.Fprint(stderr, rootCmd.UsageString())
		return ExitError
	}
	return ExitOK
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := commands.NewConvertCommand()
	rootCmd.Version = commands.Version
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	return rootCmd
}
