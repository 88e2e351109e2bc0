// brief generates a strategic event brief from a JSON payload on the command
// line, without running the server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gestion-eventos/briefd/pkg/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "brief",
		Short:         "Assemble strategic event briefs from approved proposals",
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(validateCmd())
	return rootCmd
}
