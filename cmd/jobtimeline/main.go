package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "jobtimeline",
	Short: "Timeline dashboard for SQL Server Agent job history",
	Long: `jobtimeline serves a single auto-refreshing page that charts recent
SQL Server Agent job runs on a rolling 24-hour clock.

Examples:
  jobtimeline serve                        # subdaily jobs on :80
  jobtimeline serve --view daily           # daily jobs on :3002
  PORT=8080 jobtimeline serve -c jobs.yaml # override the port`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "jobtimeline %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
