package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loom",
		Short: "A minimal server-hosted UI tree renderer",
		Long: `Loom renders declarative tree descriptions into a live UI tree
and keeps it synchronized with minimal mutation.

The tree lives on the server; a thin client forwards events over a
WebSocket and swaps in the re-rendered document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("loom %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
