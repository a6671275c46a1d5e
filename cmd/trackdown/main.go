// Command trackdown audits whether code changes promised by tracker tickets
// have actually landed in git history.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trackdown",
	Short: "Audit git history for issue-tracker tickets",
	Long: `trackdown reconciles an issue tracker with git history.

It answers one question for a release engineer: of the tickets that promise
a code change, which ones have no commit mentioning them?

Two modes are available:
  commits    search history for ticket identifiers given directly
  reconcile  expand source tracker issues into linked target tickets,
             then report the tickets with no matching commit`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
