package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/relengtools/trackdown/internal/git"
)

var commitsCmd = &cobra.Command{
	Use:   "commits [flags] TICKET...",
	Short: "Show commits mentioning the given tickets",
	Long: `Search git history for commits whose message mentions any of the
given ticket identifiers. Matching commits are printed one per line, most
recent first, exactly as "git log --oneline" reports them.

Examples:
  # Find commits for two tickets in the current repository
  trackdown commits LPS-32 LPS-33

  # Search a specific repository and branch
  trackdown commits -r ~/src/portal -b 6.2.x LPS-41798`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		repoPath, _ := cmd.Flags().GetString("repository")
		branch, _ := cmd.Flags().GetString("branch")

		ctx := context.Background()

		g, err := git.NewGit(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		commits, err := g.Log(ctx, repoPath, git.TicketFlags(args, branch))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		for _, commit := range commits {
			fmt.Println(commit)
		}
	},
}

func init() {
	commitsCmd.Flags().StringP("repository", "r", ".", "Path to the git repository")
	commitsCmd.Flags().StringP("branch", "b", "", "Branch to restrict the search to")
	rootCmd.AddCommand(commitsCmd)
}
